package mail

import (
	"fmt"
	"html"
	"strings"

	"github.com/evermore-weddings/evermore/internal/models"
)

// buildLayout wraps body content in the shared email shell.
func buildLayout(heading, body string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;background:#faf8f5;font-family:Georgia,serif;color:#3d3833;">
  <div style="max-width:560px;margin:0 auto;padding:32px 24px;">
    <h1 style="font-size:22px;font-weight:normal;letter-spacing:1px;margin:0 0 24px 0;">%s</h1>
    %s
    <p style="font-size:12px;color:#9a958e;margin-top:32px;border-top:1px solid #e8e4de;padding-top:16px;">
      Evermore Weddings &amp; Events &middot; San Diego, California
    </p>
  </div>
</body>
</html>`, heading, body)
}

// detailRow renders one label/value line, skipping empty values.
func detailRow(label, value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf(
		`<p style="margin:4px 0;font-size:14px;"><strong>%s:</strong> %s</p>`,
		label, html.EscapeString(value))
}

// ConfirmationBody renders the email sent back to the submitter.
// formattedDate is the long-form wedding date, empty when none was
// given.
func ConfirmationBody(sub models.ContactSubmission, formattedDate string) string {
	var b strings.Builder

	fmt.Fprintf(&b, `<p style="font-size:15px;line-height:1.6;">Dear %s,</p>`,
		html.EscapeString(firstName(sub.Name)))
	b.WriteString(`<p style="font-size:15px;line-height:1.6;">Thank you for reaching out. We have received your inquiry and will be in touch within two business days.</p>`)

	if formattedDate != "" || sub.Venue != "" {
		b.WriteString(`<div style="background:#fff;border:1px solid #e8e4de;border-radius:6px;padding:16px;margin:16px 0;">`)
		b.WriteString(detailRow("Wedding date", formattedDate))
		b.WriteString(detailRow("Venue", sub.Venue))
		b.WriteString(`</div>`)
	}

	b.WriteString(`<p style="font-size:15px;line-height:1.6;">With love,<br>The Evermore team</p>`)
	return buildLayout("We can't wait to hear your story", b.String())
}

// NotificationBody renders the internal email sent to the business.
func NotificationBody(sub models.ContactSubmission, formattedDate string) string {
	var b strings.Builder

	b.WriteString(detailRow("Name", sub.Name))
	b.WriteString(detailRow("Email", sub.Email))
	b.WriteString(detailRow("Phone", sub.Phone))
	b.WriteString(detailRow("Wedding date", formattedDate))
	b.WriteString(detailRow("Venue", sub.Venue))
	if sub.Message != "" {
		fmt.Fprintf(&b,
			`<div style="background:#fff;border:1px solid #e8e4de;border-radius:6px;padding:16px;margin:16px 0;font-size:14px;line-height:1.6;">%s</div>`,
			html.EscapeString(sub.Message))
	}
	return buildLayout("New inquiry from "+html.EscapeString(sub.Name), b.String())
}

func firstName(full string) string {
	if i := strings.IndexByte(strings.TrimSpace(full), ' '); i > 0 {
		return strings.TrimSpace(full)[:i]
	}
	return strings.TrimSpace(full)
}
