package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMiddlewareSharedSecret(t *testing.T) {

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("PassesWithCorrectSecret", func(t *testing.T) {

		// Arrange
		h := MiddlewareSharedSecret("s3cret")(okHandler)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cron/daily", nil)
		req.Header.Set("Authorization", "Bearer s3cret")
		rec := httptest.NewRecorder()

		// Act
		h.ServeHTTP(rec, req)

		// Assert
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
	})

	t.Run("RejectsMissingHeader", func(t *testing.T) {

		// Arrange
		h := MiddlewareSharedSecret("s3cret")(okHandler)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cron/daily", nil)
		rec := httptest.NewRecorder()

		// Act
		h.ServeHTTP(rec, req)

		// Assert
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
		}
	})

	t.Run("RejectsWrongSecret", func(t *testing.T) {

		// Arrange
		h := MiddlewareSharedSecret("s3cret")(okHandler)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cron/daily", nil)
		req.Header.Set("Authorization", "Bearer nope")
		rec := httptest.NewRecorder()

		// Act
		h.ServeHTTP(rec, req)

		// Assert
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
		}
	})

	t.Run("RejectsMalformedScheme", func(t *testing.T) {

		// Arrange
		h := MiddlewareSharedSecret("s3cret")(okHandler)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cron/daily", nil)
		req.Header.Set("Authorization", "Basic s3cret")
		rec := httptest.NewRecorder()

		// Act
		h.ServeHTTP(rec, req)

		// Assert
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
		}
	})

	t.Run("EmptyConfiguredSecretRejectsEveryRequest", func(t *testing.T) {

		// Arrange
		h := MiddlewareSharedSecret("")(okHandler)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cron/daily", nil)
		req.Header.Set("Authorization", "Bearer ")
		rec := httptest.NewRecorder()

		// Act
		h.ServeHTTP(rec, req)

		// Assert
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
		}
	})
}
