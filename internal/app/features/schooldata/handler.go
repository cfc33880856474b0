// internal/app/features/schooldata/handler.go

// Package schooldata is the HTTP boundary for school records, their nested
// subjects, and the user materias endpoint. Handlers translate store and
// resolver calls into the wire shapes the existing clients consume.
package schooldata

import (
	"encoding/json"
	"net/http"

	"github.com/Elikson/fucapi-backend/internal/app/enrollment"
	schoolstore "github.com/Elikson/fucapi-backend/internal/app/store/schools"
	subjectstore "github.com/Elikson/fucapi-backend/internal/app/store/subjects"
	userstore "github.com/Elikson/fucapi-backend/internal/app/store/users"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler holds the stores and resolver behind the /schooldata surface.
type Handler struct {
	Schools  *schoolstore.Store
	Subjects *subjectstore.Store
	Resolver *enrollment.Resolver
	Log      *zap.Logger
}

// NewHandler constructs the schooldata Handler and its stores.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	schools := schoolstore.New(db)
	users := userstore.New(db)
	return &Handler{
		Schools:  schools,
		Subjects: subjectstore.New(db),
		Resolver: enrollment.New(users, schools, logger),
		Log:      logger,
	}
}

// respondJSON writes v as a 200 JSON response.
func (h *Handler) respondJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Log.Error("response encode failed", zap.Error(err))
	}
}

// respondMessage writes a plain-text success message, the shape mutation
// callers already parse.
func (h *Handler) respondMessage(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(msg))
}

// fail surfaces any failure as a 500 with the error's message, falling back
// to a generic one. Error kinds are not differentiated at this boundary;
// existing consumers depend on the uniform signaling.
func (h *Handler) fail(w http.ResponseWriter, err error, fallback string) {
	msg := fallback
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	h.Log.Error(fallback, zap.Error(err))
	http.Error(w, msg, http.StatusInternalServerError)
}
