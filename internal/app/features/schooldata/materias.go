// internal/app/features/schooldata/materias.go
package schooldata

import (
	"context"
	"net/http"

	"github.com/Elikson/fucapi-backend/internal/app/enrollment"
	"github.com/Elikson/fucapi-backend/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

// materiasResponse wraps the resolver output in the envelope the clients
// expect: a plain string array on the legacy path, enriched subject objects
// otherwise.
type materiasResponse struct {
	Materias enrollment.Materias `json:"materias"`
}

// Materias handles GET /schooldata/materias/{id}: the resolved subject list
// for a user. An unknown user id is an error; an empty enrollment or a set
// of ids that matches nothing is just an empty list.
func (h *Handler) Materias(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	materias, err := h.Resolver.Resolve(ctx, chi.URLParam(r, "id"))
	if err == enrollment.ErrUserNotFound {
		h.fail(w, nil, "user or class not found")
		return
	}
	if err != nil {
		h.fail(w, err, "could not fetch materias")
		return
	}
	h.respondJSON(w, materiasResponse{Materias: materias})
}
