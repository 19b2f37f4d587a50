package httpvalidate

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/vtree/pkg/report"
)

// Response is the body written for failures.
type Response struct {
	Code     string         `json:"code"`
	Message  string         `json:"message,omitempty"`
	Success  bool           `json:"success"`
	Results  report.Encoded `json:"results,omitempty"`
	ReportID string         `json:"report_id,omitempty"`
}

const (
	CodeValidationFailed = "validation_failed"
	CodeBadRequest       = "bad_request"
	CodeNotFound         = "not_found"
	CodeInternal         = "internal_error"
)

// WriteJSON writes body with the given status.
func WriteJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

func decodeStatus(err error) int {
	switch {
	case errors.Is(err, ErrUnsupportedMediaType), errors.Is(err, ErrMissingContentType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusBadRequest
	}
}
