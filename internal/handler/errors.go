package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/wanderwise/backend/internal/domain"
	"github.com/wanderwise/backend/internal/handler/gen"
)

func errorBody(code, message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: code, Message: message}}
}

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the message because the handler is the layer that
// knows what was being looked up.
func notFoundBody(message string) gen.ErrorResponse {
	return errorBody("not_found", message)
}

// validationBody returns an ErrorResponse for a domain validation failure.
// The message is extracted from the wrapped domain.ErrValidation error.
func validationBody(err error) gen.ErrorResponse {
	return errorBody("validation_error", unwrapMessage(err, domain.ErrValidation))
}

// requestBody returns an ErrorResponse for a bad request rejected before
// reaching the service layer (e.g. missing or malformed body).
func requestBody(message string) gen.ErrorResponse {
	return errorBody("validation_error", message)
}

func conflictBody(err error) gen.ErrorResponse {
	return errorBody("conflict", unwrapMessage(err, domain.ErrConflict))
}

// writeError writes the error envelope for responses produced outside the
// strict handlers: authorization, parameter binding and body decoding.
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody(code, message))
}

// requestError handles bodies the strict handler could not decode. A body
// over the size limit answers 413; anything else answers 422.
func (s *Server) requestError(w http.ResponseWriter, _ *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, "payload_too_large", "request body too large")
		return
	}
	writeError(w, http.StatusUnprocessableEntity, "validation_error", fmt.Sprintf("invalid request body: %v", err))
}

// responseError handles errors a handler returned instead of a typed
// response. They are logged and reported as 500 without leaking their text.
func (s *Server) responseError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
}

// paramError handles path and query parameters that failed to bind.
func paramError(w http.ResponseWriter, _ *http.Request, err error) {
	writeError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
}

// unwrapMessage extracts the human-readable part that follows sentinel in a
// wrapped error, e.g.
// "service.UserService.Create: validation error: invalid email format" -> "invalid email format".
// Without a detail the sentinel text itself is returned.
func unwrapMessage(err, sentinel error) string {
	msg := err.Error()
	marker := sentinel.Error() + ": "
	if i := strings.Index(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return sentinel.Error()
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
