// internal/app/features/schooldata/routes.go
package schooldata

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter mounted under /schooldata. The materias path
// is registered before the id wildcard so it never shadows a school lookup.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/materias/{id}", h.Materias)

	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)

	r.Get("/{id}/disciplinas", h.ListSubjects)
	r.Post("/{id}/disciplinas", h.CreateSubject)
	r.Get("/{id}/disciplinas/{disciplinaId}", h.GetSubject)
	r.Put("/{id}/disciplinas/{disciplinaId}", h.UpdateSubject)
	r.Delete("/{id}/disciplinas/{disciplinaId}", h.DeleteSubject)

	return r
}
