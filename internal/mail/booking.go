package mail

import (
	"fmt"
	"strings"
)

// Booking holds the submitted form fields, unescaped.
type Booking struct {
	Name      string
	Email     string
	Phone     string
	EventType string
	EventDate string
	Venue     string
	Message   string
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML replaces the five HTML-significant characters with entities.
func EscapeHTML(s string) string { return htmlEscaper.Replace(s) }

// BookingMessage renders the notification sent to the site owner.  Every
// user-supplied value is escaped before it reaches the HTML; replies go to
// the submitter.
func BookingMessage(b Booking, from, to string) Message {
	phone := b.Phone
	if phone == "" {
		phone = "Not provided"
	}
	var (
		name      = EscapeHTML(b.Name)
		email     = EscapeHTML(b.Email)
		eventType = EscapeHTML(b.EventType)
		eventDate = EscapeHTML(b.EventDate)
		venue     = EscapeHTML(b.Venue)
		message   = strings.ReplaceAll(EscapeHTML(b.Message), "\n", "<br>")
	)
	html := fmt.Sprintf(bookingTpl,
		name, email, email, EscapeHTML(phone), eventType, eventDate, venue, message)

	return Message{
		From:    from,
		To:      []string{to},
		Subject: fmt.Sprintf("New Booking Request: %s - %s", eventType, eventDate),
		HTML:    html,
		ReplyTo: b.Email,
	}
}

const bookingTpl = `
<h2>New Booking Request</h2>
<table style="border-collapse: collapse; width: 100%%; max-width: 600px;">
  <tr>
    <td style="padding: 10px; border: 1px solid #ddd; font-weight: bold;">Name</td>
    <td style="padding: 10px; border: 1px solid #ddd;">%s</td>
  </tr>
  <tr>
    <td style="padding: 10px; border: 1px solid #ddd; font-weight: bold;">Email</td>
    <td style="padding: 10px; border: 1px solid #ddd;"><a href="mailto:%s">%s</a></td>
  </tr>
  <tr>
    <td style="padding: 10px; border: 1px solid #ddd; font-weight: bold;">Phone</td>
    <td style="padding: 10px; border: 1px solid #ddd;">%s</td>
  </tr>
  <tr>
    <td style="padding: 10px; border: 1px solid #ddd; font-weight: bold;">Event Type</td>
    <td style="padding: 10px; border: 1px solid #ddd;">%s</td>
  </tr>
  <tr>
    <td style="padding: 10px; border: 1px solid #ddd; font-weight: bold;">Event Date</td>
    <td style="padding: 10px; border: 1px solid #ddd;">%s</td>
  </tr>
  <tr>
    <td style="padding: 10px; border: 1px solid #ddd; font-weight: bold;">Venue/Location</td>
    <td style="padding: 10px; border: 1px solid #ddd;">%s</td>
  </tr>
</table>
<h3>Message:</h3>
<p style="background: #f5f5f5; padding: 15px; border-radius: 5px;">%s</p>
<hr>
<p style="color: #666; font-size: 12px;">This booking request was sent from your website.</p>
`
