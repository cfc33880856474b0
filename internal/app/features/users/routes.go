// internal/app/features/users/routes.go
package users

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter mounted under /users. recover-password is
// registered before the email wildcard so it resolves as its own path.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Post("/recover-password", h.RecoverPassword)

	r.Get("/{email}", h.GetByEmail)
	r.Put("/{email}", h.Update)
	r.Delete("/{email}", h.Delete)

	return r
}
