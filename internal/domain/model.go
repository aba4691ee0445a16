package domain

import "time"

// Core domain models. Wire shapes (JSON envelopes, scorer payloads) live with
// their adapters; these carry the field names the stores and the scorer agree on.

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	CompanyName string    `json:"company_name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewProduct carries the caller-supplied fields of a product; the store owns
// id and created_at.
type NewProduct struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	CompanyName string `json:"company_name"`
	Description string `json:"description"`
}

// ScoreBreakdown holds the named sub-scores of a transparency assessment.
// The values are independently sourced facets of the same assessment; they
// are not required to sum to the overall score.
type ScoreBreakdown struct {
	BasicInfo              int `json:"basic_info"`
	DescriptionQuality     int `json:"description_quality"`
	IngredientTransparency int `json:"ingredient_transparency"`
	Certifications         int `json:"certifications"`
	ManufacturingInfo      int `json:"manufacturing_info"`
}

// TransparencyScore is computed per report request and never persisted by the
// render path itself.
type TransparencyScore struct {
	Score           int            `json:"score"`
	Grade           string         `json:"grade"`
	Breakdown       ScoreBreakdown `json:"breakdown"`
	Recommendations []string       `json:"recommendations"`
}
