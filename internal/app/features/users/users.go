// internal/app/features/users/users.go
package users

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Elikson/fucapi-backend/internal/app/system/timeouts"
	"github.com/Elikson/fucapi-backend/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
)

// List handles GET /users.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	users, err := h.Users.List(ctx)
	if err != nil {
		h.fail(w, err, "could not list users")
		return
	}
	if users == nil {
		users = []models.User{}
	}
	h.respondJSON(w, users)
}

// Create handles POST /users. Duplicate emails are rejected by the store's
// pre-check; like every other failure here, that surfaces as a 500 with the
// "already registered" message.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		h.fail(w, err, "could not create user")
		return
	}

	if _, err := h.Users.Create(ctx, user); err != nil {
		h.fail(w, err, "could not create user")
		return
	}
	h.respondMessage(w, "user created successfully")
}

// GetByEmail handles GET /users/{email}.
func (h *Handler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.GetByEmail(ctx, chi.URLParam(r, "email"))
	if err != nil {
		h.fail(w, err, "could not fetch user")
		return
	}
	h.respondJSON(w, user)
}

// Update handles PUT /users/{email}. The body is shallow-merged into the
// stored record.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	var fields bson.M
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		h.fail(w, err, "could not update user")
		return
	}

	if err := h.Users.UpdateByEmail(ctx, chi.URLParam(r, "email"), fields); err != nil {
		h.fail(w, err, "could not update user")
		return
	}
	h.respondMessage(w, "user updated successfully")
}

// Delete handles DELETE /users/{email}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := h.Users.DeleteByEmail(ctx, chi.URLParam(r, "email")); err != nil {
		h.fail(w, err, "could not delete user")
		return
	}
	h.respondMessage(w, "user deleted successfully")
}
