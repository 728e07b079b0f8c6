package mail

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
)

func TestResendSend(t *testing.T) {
	var got resendPayload
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"abc"}`))
	}))
	defer srv.Close()

	c := NewResendClient("re_test", srv.URL)
	err := c.Send(context.Background(), Message{
		From: "f@example.com", To: []string{"t@example.com"}, Subject: "s", HTML: "<p>x</p>", ReplyTo: "r@example.com",
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if auth != "Bearer re_test" {
		t.Errorf("Authorization = %q", auth)
	}
	if got.From != "f@example.com" || got.ReplyTo != "r@example.com" || got.HTML != "<p>x</p>" {
		t.Errorf("payload = %+v", got)
	}
}

func TestResendErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"invalid from"}`))
	}))
	defer srv.Close()

	err := NewResendClient("k", srv.URL).Send(context.Background(), Message{To: []string{"t@example.com"}})
	if err == nil || !strings.Contains(err.Error(), "422") || !strings.Contains(err.Error(), "invalid from") {
		t.Errorf("got %v", err)
	}
}
