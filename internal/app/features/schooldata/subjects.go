// internal/app/features/schooldata/subjects.go
package schooldata

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Elikson/fucapi-backend/internal/app/system/timeouts"
	"github.com/Elikson/fucapi-backend/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
)

// ListSubjects handles GET /schooldata/{id}/disciplinas. A school with no
// subjects (or no school at all) answers with an empty list.
func (h *Handler) ListSubjects(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	subjects, err := h.Subjects.List(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, err, "could not list disciplinas")
		return
	}
	h.respondJSON(w, subjects)
}

// CreateSubject handles POST /schooldata/{id}/disciplinas and returns the
// fully materialized subject, defaults filled and id assigned.
func (h *Handler) CreateSubject(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var subject models.Subject
	if err := json.NewDecoder(r.Body).Decode(&subject); err != nil {
		h.fail(w, err, "could not create disciplina")
		return
	}

	created, err := h.Subjects.Create(ctx, chi.URLParam(r, "id"), subject)
	if err != nil {
		h.fail(w, err, "could not create disciplina")
		return
	}
	h.respondJSON(w, created)
}

// GetSubject handles GET /schooldata/{id}/disciplinas/{disciplinaId}.
func (h *Handler) GetSubject(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	subject, err := h.Subjects.GetByID(ctx, chi.URLParam(r, "id"), chi.URLParam(r, "disciplinaId"))
	if err != nil {
		h.fail(w, err, "could not fetch disciplina")
		return
	}
	h.respondJSON(w, subject)
}

// UpdateSubject handles PUT /schooldata/{id}/disciplinas/{disciplinaId}.
func (h *Handler) UpdateSubject(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	var fields bson.M
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		h.fail(w, err, "could not update disciplina")
		return
	}

	if err := h.Subjects.Update(ctx, chi.URLParam(r, "id"), chi.URLParam(r, "disciplinaId"), fields); err != nil {
		h.fail(w, err, "could not update disciplina")
		return
	}
	h.respondMessage(w, "disciplina updated successfully")
}

// DeleteSubject handles DELETE /schooldata/{id}/disciplinas/{disciplinaId}.
func (h *Handler) DeleteSubject(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := h.Subjects.Delete(ctx, chi.URLParam(r, "id"), chi.URLParam(r, "disciplinaId")); err != nil {
		h.fail(w, err, "could not delete disciplina")
		return
	}
	h.respondMessage(w, "disciplina deleted successfully")
}
