package chi

import (
	"encoding/json"
	"net/http"
)

// Error codes returned in the error response body.
const (
	codeBadRequest         = "bad_request"
	codeValidationFailed   = "validation_failed"
	codeDocumentNotFound   = "document_not_found"
	codeDocumentExists     = "document_already_exists"
	codeCollectionNotFound = "collection_not_found"
	codeUnauthorized       = "unauthorized"
	codeInternalError      = "internal_error"
)

type documentPayload struct {
	ID      string         `json:"id,omitempty"`
	Content string         `json:"content"`
	Meta    map[string]any `json:"meta,omitempty"`
}

type writeRequest struct {
	Documents []documentPayload `json:"documents"`
}

type writeResponse struct {
	Written int `json:"written"`
}

type updateResponse struct {
	Updated int `json:"updated"`
}

type deleteRequest struct {
	IDs           []string `json:"ids"`
	IgnoreMissing *bool    `json:"ignore_missing,omitempty"`
}

type filterRequest struct {
	Filters map[string]any `json:"filters"`
}

type documentsResponse struct {
	Documents  []documentPayload `json:"documents"`
	NextCursor string            `json:"next_cursor,omitempty"`
}

type countResponse struct {
	Count int `json:"count"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}
