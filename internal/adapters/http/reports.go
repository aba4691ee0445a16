package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"prism/internal/domain"
	"prism/internal/ports"
	"prism/internal/report"
)

// handleGenerateReport streams a freshly rendered PDF to the caller. The
// product read happens before any header is written, so an unknown id yields
// a JSON 404 and the renderer is never invoked. Once streaming starts there
// is no way back; render errors after the first byte are only logged.
func (s *Server) handleGenerateReport(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	product, score, err := s.reports.Resolve(r.Context(), productID)
	if errors.Is(err, ports.ErrNotFound) {
		respondNotFound(w, "Product not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error generating report", err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename="+report.Filename(productID))

	cw := &countingWriter{w: w}
	if err := s.renderer.Render(cw, product, score, s.now()); err != nil {
		if cw.n == 0 {
			w.Header().Del("Content-Disposition")
			respondError(w, http.StatusInternalServerError, "Error generating report", err)
			return
		}
		s.log.Error("report stream aborted",
			zap.String("product_id", productID),
			zap.Int64("bytes_written", cw.n),
			zap.Error(err))
	}
}

func (s *Server) handleSaveReport(w http.ResponseWriter, r *http.Request) {
	var nr domain.NewReport
	if err := json.NewDecoder(r.Body).Decode(&nr); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	stored, err := s.reports.Save(r.Context(), nr)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error saving report", err)
		return
	}
	respondData(w, http.StatusCreated, stored)
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	stored, err := s.reports.GetByProduct(r.Context(), chi.URLParam(r, "productID"))
	if errors.Is(err, ports.ErrNotFound) {
		respondNotFound(w, "Report not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching report", err)
		return
	}
	respondData(w, http.StatusOK, stored)
}

// countingWriter tracks whether any report bytes reached the response, which
// decides between a JSON error and a silently truncated stream.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
