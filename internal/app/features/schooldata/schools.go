// internal/app/features/schooldata/schools.go
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

// List handles GET /schooldata — every school record, unfiltered.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	schools, err := h.Schools.List(ctx)
	if err != nil {
		h.fail(w, err, "could not list school records")
		return
	}
	if schools == nil {
		schools = []models.School{}
	}
	h.respondJSON(w, schools)
}

// Create handles POST /schooldata. The write is fire-and-forget from the
// caller's side: success carries a message, not the created record.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var school models.School
	if err := json.NewDecoder(r.Body).Decode(&school); err != nil {
		h.fail(w, err, "could not create record")
		return
	}

	if _, err := h.Schools.Create(ctx, school); err != nil {
		h.fail(w, err, "could not create record")
		return
	}
	h.respondMessage(w, "record created successfully")
}

// GetByID handles GET /schooldata/{id}.
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	school, err := h.Schools.GetByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, err, "could not fetch record by id")
		return
	}
	h.respondJSON(w, school)
}

// Update handles PUT /schooldata/{id}. The body is shallow-merged into the
// stored record field by field.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	var fields bson.M
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		h.fail(w, err, "could not update record by id")
		return
	}

	if err := h.Schools.Update(ctx, chi.URLParam(r, "id"), fields); err != nil {
		h.fail(w, err, "could not update record by id")
		return
	}
	h.respondMessage(w, "record updated successfully")
}

// Delete handles DELETE /schooldata/{id}. Nested subjects go with the
// record.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := h.Schools.Delete(ctx, chi.URLParam(r, "id")); err != nil {
		h.fail(w, err, "could not delete record by id")
		return
	}
	h.respondMessage(w, "record deleted successfully")
}
