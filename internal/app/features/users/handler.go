// internal/app/features/users/handler.go

// Package users is the HTTP boundary for user records. Everything here is
// email-addressed — the only id-addressed user read lives on the materias
// endpoint of the schooldata surface.
package users

import (
	"encoding/json"
	"net/http"

	userstore "github.com/Elikson/fucapi-backend/internal/app/store/users"
	"github.com/Elikson/fucapi-backend/internal/app/system/mailer"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler holds the user store and the mailer for recovery email delivery.
type Handler struct {
	Users   *userstore.Store
	Mailer  *mailer.Mailer
	BaseURL string
	Log     *zap.Logger
}

// NewHandler constructs the users Handler. baseURL is the frontend origin
// the recovery link points at.
func NewHandler(db *mongo.Database, m *mailer.Mailer, baseURL string, logger *zap.Logger) *Handler {
	return &Handler{
		Users:   userstore.New(db),
		Mailer:  m,
		BaseURL: baseURL,
		Log:     logger,
	}
}

func (h *Handler) respondJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Log.Error("response encode failed", zap.Error(err))
	}
}

func (h *Handler) respondMessage(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(msg))
}

// fail mirrors the schooldata boundary: every failure is a 500 with the
// error's message or a generic fallback, no per-kind status codes.
func (h *Handler) fail(w http.ResponseWriter, err error, fallback string) {
	msg := fallback
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	h.Log.Error(fallback, zap.Error(err))
	http.Error(w, msg, http.StatusInternalServerError)
}
