package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	domerrors "github.com/marshad7/taskflow/internal/domain/errors"
)

// writeErr sends JSON { "error": message, "code": errCode }. If
// errCode is empty, a default is derived from the HTTP code.
func writeErr(w http.ResponseWriter, code int, errCode string, message string) {
	if errCode == "" {
		errCode = defaultErrCode(code)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message, "code": errCode})
}

func defaultErrCode(httpCode int) string {
	switch httpCode {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeTooManyRequests
	default:
		return ErrCodeInternal
	}
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeDomainErr maps application errors onto the HTTP contract.
// Anything unmapped is a store failure: logged in full, surfaced as a
// generic 500.
func writeDomainErr(w http.ResponseWriter, log zerolog.Logger, err error) {
	var ve *domerrors.ValidationError
	switch {
	case errors.As(err, &ve):
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, ve.Msg)
	case errors.Is(err, domerrors.ErrEmailTaken):
		writeErr(w, http.StatusConflict, ErrCodeConflict, err.Error())
	case errors.Is(err, domerrors.ErrAccountNotFound):
		writeErr(w, http.StatusNotFound, ErrCodeAccountNotFound, err.Error())
	case errors.Is(err, domerrors.ErrInvalidCredentials):
		writeErr(w, http.StatusUnauthorized, ErrCodeInvalidCredentials, err.Error())
	case errors.Is(err, domerrors.ErrUnauthenticated):
		writeErr(w, http.StatusUnauthorized, ErrCodeUnauthorized, err.Error())
	case errors.Is(err, domerrors.ErrTaskNotFound):
		writeErr(w, http.StatusNotFound, ErrCodeNotFound, err.Error())
	default:
		log.Error().Err(err).Msg("store failure")
		writeErr(w, http.StatusInternalServerError, ErrCodeInternal, "internal error")
	}
}
