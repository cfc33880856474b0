// internal/app/features/users/recover.go
package users

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Elikson/fucapi-backend/internal/app/system/mailer"
	"github.com/Elikson/fucapi-backend/internal/app/system/timeouts"
	"go.uber.org/zap"
)

type recoverRequest struct {
	Email string `json:"email"`
}

// RecoverPassword handles POST /users/recover-password. The user is flagged
// with pendingUpdatePassword before the email goes out; delivery itself is
// best-effort — a failed send is logged but does not fail the request,
// matching how the flow has always behaved.
func (h *Handler) RecoverPassword(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	var req recoverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, err, "could not send recovery email")
		return
	}

	user, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		h.fail(w, err, "could not send recovery email")
		return
	}

	if err := h.Users.MarkPendingPasswordUpdate(ctx, req.Email); err != nil {
		h.fail(w, err, "could not send recovery email")
		return
	}

	email := mailer.BuildPasswordResetEmail(mailer.PasswordResetEmailData{
		SiteName:  "FUCAPI",
		ResetLink: fmt.Sprintf("%s/recover-password/%s", h.BaseURL, user.ID),
	})
	email.To = user.Email
	if err := h.Mailer.Send(email); err != nil {
		h.Log.Warn("recovery email delivery failed",
			zap.String("email", user.Email),
			zap.Error(err))
	}

	h.respondMessage(w, "recovery email sent")
}
