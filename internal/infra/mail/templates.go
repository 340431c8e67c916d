package mail

import (
	"strings"
	"text/template"

	"courier/internal/errors"
)

// Plain-text bodies for the three account notifications. Kept as templates so
// the wording lives in one place and the mailer only fills in names and links.
var (
	welcomeTemplate = template.Must(template.New("welcome").Parse(
		`Hi {{.Name}},

Welcome to Courier! Your account is ready.

You can now log in and start tracking your packages.

The Courier team
`))

	resetTemplate = template.Must(template.New("reset").Parse(
		`Hi {{.Name}},

We received a request to reset your password. Open the link below to choose a
new one. The link is valid for a single use and expires shortly.

{{.ResetURL}}

If you did not request this, you can safely ignore this email.

The Courier team
`))

	resetConfirmationTemplate = template.Must(template.New("resetConfirmation").Parse(
		`Hi {{.Name}},

Your password was changed successfully. If this wasn't you, request a new
password reset immediately.

The Courier team
`))
)

type templateData struct {
	Name     string
	ResetURL string
}

func renderBody(tmpl *template.Template, data templateData) (string, error) {
	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.Wrapf(err, "failed to render %s template", tmpl.Name())
	}

	return buf.String(), nil
}
