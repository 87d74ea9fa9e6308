package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"foodbridge/internal/domain"
	"foodbridge/internal/middleware"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes are stable; only the messages localize.
var errorMessages = map[string]map[string]string{
	"en": {
		"bad_request":         "invalid payload",
		"validation_failed":   "validation failed",
		"not_found":           "record not found",
		"conflict":            "status transition not allowed",
		"unavailable":         "database unavailable",
		"internal":            "internal server error",
		"playground_rejected": "query rejected",
	},
	"id": {
		"bad_request":         "muatan tidak valid",
		"validation_failed":   "validasi gagal",
		"not_found":           "data tidak ditemukan",
		"conflict":            "perubahan status tidak diizinkan",
		"unavailable":         "basis data tidak tersedia",
		"internal":            "terjadi kesalahan internal",
		"playground_rejected": "kueri ditolak",
	},
}

func (a *App) error(w http.ResponseWriter, r *http.Request, status int, code, detail string) {
	locale := middleware.LocaleFromContext(r.Context())
	messages, ok := errorMessages[locale]
	if !ok {
		messages = errorMessages["en"]
	}
	msg, ok := messages[code]
	if !ok {
		msg = errorMessages["en"]["internal"]
	}
	if detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, detail)
	}
	a.json(w, status, errorBody{Error: errorDetail{Code: code, Message: msg}})
}

// domainError maps the repository error taxonomy onto HTTP responses.
// Transition conflicts wrap ErrValidation, so they are checked first.
func (a *App) domainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, r, http.StatusNotFound, "not_found", "")
	case errors.Is(err, domain.ErrInvalidTransition):
		a.error(w, r, http.StatusConflict, "conflict", "")
	case errors.Is(err, domain.ErrValidation):
		var ve *domain.ValidationError
		detail := ""
		if errors.As(err, &ve) {
			detail = fmt.Sprintf("%s: %s", ve.Field, ve.Reason)
		}
		a.error(w, r, http.StatusBadRequest, "validation_failed", detail)
	case errors.Is(err, domain.ErrUnavailable):
		a.Logger.Error().Err(err).Msg("database unavailable")
		a.error(w, r, http.StatusServiceUnavailable, "unavailable", "")
	default:
		a.Logger.Error().Err(err).Msg("unhandled repository error")
		a.error(w, r, http.StatusInternalServerError, "internal", "")
	}
}
