// internal/app/system/mailer/templates.go
package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

// PasswordResetEmailData holds data for the password recovery email.
type PasswordResetEmailData struct {
	SiteName  string
	ResetLink string
}

// BuildPasswordResetEmail creates the recovery email with both HTML and
// text bodies. The link points at the frontend's recover-password screen
// for the user's id.
func BuildPasswordResetEmail(data PasswordResetEmailData) Email {
	return Email{
		To:       "", // Set by caller
		Subject:  "Password recovery",
		TextBody: buildPasswordResetText(data),
		HTMLBody: buildPasswordResetHTML(data),
	}
}

func buildPasswordResetText(data PasswordResetEmailData) string {
	var buf bytes.Buffer
	buf.WriteString("Hello, you requested a password reset.\n\n")
	buf.WriteString("To proceed, open this link:\n")
	buf.WriteString(data.ResetLink + "\n\n")
	buf.WriteString(fmt.Sprintf("If you did not request a reset, you can safely ignore this email. — %s\n", data.SiteName))
	return buf.String()
}

func buildPasswordResetHTML(data PasswordResetEmailData) string {
	tmpl := template.Must(template.New("password_reset").Parse(passwordResetHTMLTemplate))
	var buf bytes.Buffer
	_ = tmpl.Execute(&buf, data)
	return buf.String()
}

const passwordResetHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>Reset Password</title>
  <style>
    body { font-family: Arial, sans-serif; text-align: center; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .btn {
      background-color: #C16130;
      color: white !important;
      text-decoration: none;
      border-radius: 5px;
      padding: 10px;
    }
  </style>
</head>
<body>
  <div class="container">
    <h2>Reset Password</h2>
    <p>Hello, you requested a password reset for your {{.SiteName}} account.</p>
    <p>To proceed, click the button below:</p>
    <a href="{{.ResetLink}}" class="btn">Reset Password</a>
    <br>
    <p>If you did not request a reset, you can safely ignore this email.</p>
  </div>
</body>
</html>
`
