package httpadapter

import (
	"encoding/json"
	"net/http"

	"prism/internal/services/questions"
)

type questionRequest struct {
	ProductInfo     string   `json:"product_info"`
	PreviousAnswers []string `json:"previous_answers"`
}

// handleGenerateQuestions proxies the AI question generator. The service
// falls back to a static set on collaborator failure, so this endpoint only
// errors on a bad request body.
func (s *Server) handleGenerateQuestions(w http.ResponseWriter, r *http.Request) {
	var req questionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	qs, source, err := s.questions.Generate(r.Context(), req.ProductInfo, req.PreviousAnswers)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error generating questions", err)
		return
	}
	body := map[string]any{"success": true, "questions": qs}
	if source == questions.SourceFallback {
		body["source"] = source
	}
	writeJSON(w, http.StatusOK, body)
}
