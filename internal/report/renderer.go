// Package report renders product transparency reports as PDF documents.
//
// The layout is a fixed sequence of sections: title banner, product
// information, transparency analysis (overall score and grade), score
// breakdown, optional recommendations, key findings, footer. Output is
// deterministic: for a fixed product, score and render timestamp the emitted
// bytes are identical across calls.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"prism/internal/domain"
)

type rgb struct{ r, g, b int }

var (
	colorTitle   = rgb{102, 126, 234}
	colorHeading = rgb{45, 55, 72}
	colorBody    = rgb{0, 0, 0}
	colorGrade   = rgb{74, 85, 104}
	colorFooter  = rgb{160, 174, 192}

	colorGood = rgb{72, 187, 120}
	colorWarn = rgb{246, 173, 85}
	colorBad  = rgb{245, 101, 101}
)

// scoreColor maps an overall score to its band color: >=80 good, >=60
// warning, below that bad.
func scoreColor(score int) rgb {
	switch {
	case score >= 80:
		return colorGood
	case score >= 60:
		return colorWarn
	default:
		return colorBad
	}
}

// keyFindings is static boilerplate, identical for every report.
var keyFindings = []string{
	"Product information is complete and detailed",
	"Manufacturing process transparency can be improved",
	"Consider adding certification information",
	"Health and safety standards documentation recommended",
}

// Filename returns the download filename proposed for a product's report.
func Filename(productID string) string {
	return "transparency-report-" + productID + ".pdf"
}

// Renderer lays out transparency reports. The zero value renders without
// stream compression; NewRenderer enables it.
type Renderer struct {
	compress bool
}

func NewRenderer() *Renderer { return &Renderer{compress: true} }

// Render writes the report for product and score to w. The score must be
// complete; score resolution guarantees that, so a validation failure here is
// a contract violation and aborts before any byte is written. generatedAt is
// both the printed generation date and the document's creation date, which
// keeps output byte-identical under a fixed clock.
func (r *Renderer) Render(w io.Writer, product domain.Product, score domain.TransparencyScore, generatedAt time.Time) error {
	if err := score.Validate(); err != nil {
		return fmt.Errorf("render transparency report: %w", err)
	}

	b := newBuilder(r.compress, generatedAt)
	b.titleBanner()
	b.productInformation(product)
	b.transparencyAnalysis(score)
	b.scoreBreakdown(score.Breakdown)
	b.recommendations(score.Recommendations)
	b.keyFindings()
	b.footer(generatedAt)
	return b.flush(w)
}

// Section text, kept as pure helpers so layout content is testable without
// decoding PDF streams.

func productLines(p domain.Product) []string {
	return []string{
		"Product Name: " + p.Name,
		"Category: " + p.Category,
		"Company: " + p.CompanyName,
		"Description: " + p.Description,
	}
}

func overallScoreLine(score int) string {
	return fmt.Sprintf("Overall Score: %d/100", score)
}

func gradeLine(grade string) string {
	return "Grade: " + grade
}

// breakdownLines prints the five sub-scores against their documented maxima.
// The denominators are emitted literally; downstream consumers key on them
// even where they disagree with the default breakdown values (see DESIGN.md).
func breakdownLines(b domain.ScoreBreakdown) []string {
	return []string{
		fmt.Sprintf("• Basic Information: %d/30", b.BasicInfo),
		fmt.Sprintf("• Description Quality: %d/20", b.DescriptionQuality),
		fmt.Sprintf("• Ingredient Transparency: %d/20", b.IngredientTransparency),
		fmt.Sprintf("• Certifications: %d/15", b.Certifications),
		fmt.Sprintf("• Manufacturing Information: %d/15", b.ManufacturingInfo),
	}
}

func generatedOnLine(generatedAt time.Time) string {
	return "Generated on: " + generatedAt.Format("January 2, 2006")
}

// builder appends sections to a gofpdf document in the fixed report order.
type builder struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func newBuilder(compress bool, generatedAt time.Time) *builder {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(compress)
	pdf.SetCreationDate(generatedAt)
	pdf.SetModificationDate(generatedAt)
	pdf.SetTitle("Product Transparency Report", false)
	pdf.AddPage()
	return &builder{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

func (b *builder) setColor(c rgb) { b.pdf.SetTextColor(c.r, c.g, c.b) }

func (b *builder) heading(text string, size float64) {
	b.pdf.SetFont("Helvetica", "U", size)
	b.setColor(colorHeading)
	b.pdf.CellFormat(0, 8, b.tr(text), "", 1, "L", false, 0, "")
	b.pdf.Ln(2)
}

func (b *builder) line(text string) {
	b.pdf.MultiCell(0, 6, b.tr(text), "", "L", false)
}

func (b *builder) titleBanner() {
	b.pdf.SetFont("Helvetica", "B", 24)
	b.setColor(colorTitle)
	b.pdf.CellFormat(0, 12, "Product Transparency Report", "", 1, "C", false, 0, "")
	b.pdf.Ln(10)
}

func (b *builder) productInformation(p domain.Product) {
	b.heading("Product Information", 16)
	b.pdf.SetFont("Helvetica", "", 12)
	b.setColor(colorBody)
	for _, line := range productLines(p) {
		b.line(line)
	}
	b.pdf.Ln(10)
}

func (b *builder) transparencyAnalysis(score domain.TransparencyScore) {
	b.heading("Transparency Analysis", 16)

	b.pdf.SetFont("Helvetica", "B", 14)
	b.setColor(scoreColor(score.Score))
	b.line(overallScoreLine(score.Score))

	b.pdf.SetFont("Helvetica", "", 12)
	b.setColor(colorGrade)
	b.line(gradeLine(score.Grade))
	b.pdf.Ln(5)
}

func (b *builder) scoreBreakdown(breakdown domain.ScoreBreakdown) {
	b.heading("Score Breakdown:", 14)
	b.pdf.SetFont("Helvetica", "", 11)
	b.setColor(colorBody)
	for _, line := range breakdownLines(breakdown) {
		b.line(line)
	}
	b.pdf.Ln(8)
}

// recommendations is the only conditional section: absent when the sequence
// is empty, one bullet per item in input order otherwise.
func (b *builder) recommendations(recs []string) {
	if len(recs) == 0 {
		return
	}
	b.heading("Recommendations for Improvement:", 14)
	b.pdf.SetFont("Helvetica", "", 11)
	b.setColor(colorBody)
	for _, rec := range recs {
		b.line("• " + rec)
	}
	b.pdf.Ln(8)
}

func (b *builder) keyFindings() {
	b.heading("Key Findings", 16)
	b.pdf.SetFont("Helvetica", "", 11)
	b.setColor(colorBody)
	for _, finding := range keyFindings {
		b.line("• " + finding)
	}
	b.pdf.Ln(10)
}

func (b *builder) footer(generatedAt time.Time) {
	b.pdf.SetFont("Helvetica", "", 9)
	b.setColor(colorFooter)
	b.pdf.CellFormat(0, 5, b.tr(generatedOnLine(generatedAt)), "", 1, "C", false, 0, "")
	b.pdf.CellFormat(0, 5, "Product Transparency Platform", "", 1, "C", false, 0, "")
}

// flush finalizes the document and streams it to w. gofpdf accumulates
// layout errors internally; Output surfaces the first of them, or the
// writer's error if the caller went away mid-stream.
func (b *builder) flush(w io.Writer) error {
	return b.pdf.Output(w)
}
