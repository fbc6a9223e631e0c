package mail

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"
)

//go:embed offer_notification.tmpl
var offerNotificationTmpl string

var bodyTmpl = template.Must(template.New("offer_notification").Parse(offerNotificationTmpl))

// OfferParams carries the submission fields rendered into the
// notification mail.
type OfferParams struct {
	Name     string
	Email    string
	Currency string
}

// OfferSubject returns the notification subject line for a submission.
func OfferSubject(name string) string {
	return fmt.Sprintf("来自%s的意向", name)
}

// OfferBody renders the plain-text notification body.
func OfferBody(p OfferParams) (string, error) {
	var buf bytes.Buffer
	if err := bodyTmpl.Execute(&buf, p); err != nil {
		return "", fmt.Errorf("rendering offer notification body: %w", err)
	}
	return buf.String(), nil
}
