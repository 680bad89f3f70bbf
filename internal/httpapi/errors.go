package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/doclens/doclens/docerrors"
	"github.com/doclens/doclens/generator"
)

// errorBody is the structured error payload for every non-2xx response.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// statusFor maps the error taxonomy onto HTTP statuses. Malformed input
// is the caller's fault; upstream fetch and model failures are gateway
// errors; anything unclassified is a server error.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, docerrors.ErrInvalidSpecification):
		return http.StatusBadRequest, "invalid_specification"
	case errors.Is(err, docerrors.ErrUnsupportedDialect):
		return http.StatusUnprocessableEntity, "unsupported_dialect"
	case errors.Is(err, docerrors.ErrFetchFailed):
		return http.StatusBadGateway, "fetch_failed"
	case errors.Is(err, docerrors.ErrAnalysisFailed):
		return http.StatusBadGateway, "analysis_failed"
	case errors.Is(err, generator.ErrUnsupportedLanguage):
		return http.StatusBadRequest, "unsupported_language"
	case errors.Is(err, docerrors.ErrConfig):
		return http.StatusBadRequest, "invalid_request"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func writeError(w http.ResponseWriter, err error) {
	status, code := statusFor(err)
	writeJSON(w, status, errorBody{Error: code, Message: err.Error()})
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid_request", Message: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
