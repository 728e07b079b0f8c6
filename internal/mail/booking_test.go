package mail

import (
	"strings"
	"testing"
)

func TestEscapeHTML(t *testing.T) {
	got := EscapeHTML(`<a href="x">Tom & Jerry's</a>`)
	want := "&lt;a href=&quot;x&quot;&gt;Tom &amp; Jerry&#39;s&lt;/a&gt;"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBookingMessageEscapesEveryField(t *testing.T) {
	const evil = "<script>alert(1)</script>"
	msg := BookingMessage(Booking{
		Name:      evil,
		Email:     "a@example.com",
		EventType: evil,
		EventDate: evil,
		Venue:     evil,
		Message:   evil + "\nsecond line",
	}, "from@example.com", "owner@example.com")

	if strings.Contains(msg.HTML, "<script>") {
		t.Fatal("raw markup reached the email body")
	}
	if n := strings.Count(msg.HTML, "&lt;script&gt;"); n != 5 {
		t.Errorf("escaped script count = %d, want 5", n)
	}
	if strings.Contains(msg.Subject, "<script>") {
		t.Error("subject not escaped")
	}
	if !strings.Contains(msg.HTML, "&lt;/script&gt;<br>second line") {
		t.Error("newlines not turned into <br>")
	}
}

func TestBookingMessageEnvelope(t *testing.T) {
	msg := BookingMessage(Booking{
		Name: "Ana", Email: "ana@example.com", EventType: "Wedding", EventDate: "2026-06-01",
		Venue: "Hall", Message: "Please play.",
	}, "Booking <b@example.com>", "owner@example.com")

	if msg.Subject != "New Booking Request: Wedding - 2026-06-01" {
		t.Errorf("subject = %q", msg.Subject)
	}
	if msg.ReplyTo != "ana@example.com" {
		t.Errorf("reply-to = %q", msg.ReplyTo)
	}
	if len(msg.To) != 1 || msg.To[0] != "owner@example.com" || msg.From != "Booking <b@example.com>" {
		t.Errorf("envelope = %+v", msg)
	}
	if !strings.Contains(msg.HTML, "Not provided") {
		t.Error("missing phone placeholder")
	}
	if !strings.Contains(msg.HTML, "width: 100%;") {
		t.Error("template percent sign mangled")
	}
}
