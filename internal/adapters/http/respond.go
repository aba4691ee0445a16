package httpadapter

import (
	"encoding/json"
	"net/http"
)

// JSON envelopes: {"success":true,"data":...} on success,
// {"success":false,"message":...,"error":...} on failure. Report generation
// is the one endpoint that answers with a binary body instead; its failures
// still use these envelopes, so callers check the content type.

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func respondData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, map[string]any{"success": true, "data": data})
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"success": true, "message": message})
}

func respondNotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, map[string]any{"success": false, "message": message})
}

func respondError(w http.ResponseWriter, status int, message string, err error) {
	body := map[string]any{"success": false, "message": message}
	if err != nil {
		body["error"] = err.Error()
	}
	writeJSON(w, status, body)
}
