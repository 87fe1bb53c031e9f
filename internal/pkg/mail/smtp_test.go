package mail

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestNewSMTP(t *testing.T) {

	t.Run("RequiresHostAndPort", func(t *testing.T) {

		// Arrange
		cfg := SMTPConfig{Host: "smtp.example.com"}

		// Act
		_, err := NewSMTP(cfg)

		// Assert
		if !errors.Is(err, ErrSMTPHostPortRequired) {
			t.Fatalf("expected ErrSMTPHostPortRequired, got %v", err)
		}
	})

	t.Run("BuildsAddrFromHostAndPort", func(t *testing.T) {

		// Arrange
		cfg := SMTPConfig{Host: "smtp.example.com", Port: 587}

		// Act
		s, err := NewSMTP(cfg)

		// Assert
		if err != nil {
			t.Fatalf("NewSMTP returned error: %v", err)
		}
		if s.addr != "smtp.example.com:587" {
			t.Fatalf("addr = %q, want smtp.example.com:587", s.addr)
		}
	})
}

func TestSMTPSend(t *testing.T) {

	t.Run("RejectsMessageWithoutRecipients", func(t *testing.T) {

		// Arrange
		s, err := NewSMTP(SMTPConfig{Host: "smtp.example.com", Port: 587, From: "noreply@example.com"})
		if err != nil {
			t.Fatalf("NewSMTP returned error: %v", err)
		}

		// Act
		err = s.Send(context.Background(), Message{Subject: "hello"})

		// Assert
		if !errors.Is(err, ErrSMTPNoRecipients) {
			t.Fatalf("expected ErrSMTPNoRecipients, got %v", err)
		}
	})

	t.Run("RejectsMessageWithoutSender", func(t *testing.T) {

		// Arrange
		s, err := NewSMTP(SMTPConfig{Host: "smtp.example.com", Port: 587})
		if err != nil {
			t.Fatalf("NewSMTP returned error: %v", err)
		}

		// Act
		err = s.Send(context.Background(), Message{To: []string{"tenant@example.com"}})

		// Assert
		if !errors.Is(err, ErrSMTPNoSender) {
			t.Fatalf("expected ErrSMTPNoSender, got %v", err)
		}
	})

	t.Run("StopsWhenContextAlreadyCanceled", func(t *testing.T) {

		// Arrange
		s, err := NewSMTP(SMTPConfig{Host: "smtp.example.com", Port: 587, From: "noreply@example.com"})
		if err != nil {
			t.Fatalf("NewSMTP returned error: %v", err)
		}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// Act
		err = s.Send(ctx, Message{To: []string{"tenant@example.com"}})

		// Assert
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})
}

func TestBareAddress(t *testing.T) {

	t.Run("StripsDisplayName", func(t *testing.T) {

		// Arrange
		cases := map[string]string{
			"RentTrack <noreply@example.com>": "noreply@example.com",
			"<noreply@example.com>":           "noreply@example.com",
			"noreply@example.com":             "noreply@example.com",
			"  noreply@example.com  ":         "noreply@example.com",
		}

		for in, want := range cases {
			// Act
			got := bareAddress(in)

			// Assert
			if got != want {
				t.Fatalf("bareAddress(%q) = %q, want %q", in, got, want)
			}
		}
	})
}

func TestBuildBody(t *testing.T) {

	t.Run("PlainTextOnly", func(t *testing.T) {

		// Arrange
		msg := Message{TextBody: "hello"}

		// Act
		body, contentType := buildBody(msg)

		// Assert
		if body != "hello" {
			t.Fatalf("body = %q, want hello", body)
		}
		if contentType != "text/plain; charset=UTF-8" {
			t.Fatalf("content type = %q", contentType)
		}
	})

	t.Run("HTMLOnly", func(t *testing.T) {

		// Arrange
		msg := Message{HTMLBody: "<p>hello</p>"}

		// Act
		body, contentType := buildBody(msg)

		// Assert
		if body != "<p>hello</p>" {
			t.Fatalf("body = %q", body)
		}
		if contentType != "text/html; charset=UTF-8" {
			t.Fatalf("content type = %q", contentType)
		}
	})

	t.Run("BothBodiesProduceMultipartAlternative", func(t *testing.T) {

		// Arrange
		msg := Message{TextBody: "hello", HTMLBody: "<p>hello</p>"}

		// Act
		body, contentType := buildBody(msg)

		// Assert
		if !strings.HasPrefix(contentType, "multipart/alternative; boundary=") {
			t.Fatalf("content type = %q", contentType)
		}
		boundary := strings.TrimPrefix(contentType, "multipart/alternative; boundary=")
		if !strings.Contains(body, "--"+boundary+"\r\n") {
			t.Fatalf("body missing boundary %q:\n%s", boundary, body)
		}
		if !strings.HasSuffix(body, "--"+boundary+"--") {
			t.Fatalf("body missing closing boundary:\n%s", body)
		}
		if !strings.Contains(body, "Content-Type: text/plain; charset=UTF-8") {
			t.Fatalf("body missing text part:\n%s", body)
		}
		if !strings.Contains(body, "Content-Type: text/html; charset=UTF-8") {
			t.Fatalf("body missing html part:\n%s", body)
		}
	})
}
