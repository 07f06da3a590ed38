package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const testSecret = "test-secret"

func TestSignAndVerifyToken(t *testing.T) {
	token, err := SignToken(testSecret, "user-123", "jordan@example.com", time.Hour)
	if err != nil {
		t.Fatalf("SignToken: %v", err)
	}

	claims, err := VerifyToken(testSecret, token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if claims.Subject != "user-123" {
		t.Errorf("subject = %q, want user-123", claims.Subject)
	}
	if claims.Email != "jordan@example.com" {
		t.Errorf("email = %q", claims.Email)
	}
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	token, err := SignToken(testSecret, "user-123", "", time.Hour)
	if err != nil {
		t.Fatalf("SignToken: %v", err)
	}
	if _, err := VerifyToken("other-secret", token); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestVerifyTokenExpired(t *testing.T) {
	token, err := SignToken(testSecret, "user-123", "", -time.Minute)
	if err != nil {
		t.Fatalf("SignToken: %v", err)
	}
	if _, err := VerifyToken(testSecret, token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestAuthJWTMiddleware(t *testing.T) {
	var gotUserID string
	handler := AuthJWT(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("no header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := SignToken(testSecret, "user-9", "a@b.c", time.Hour)
		if err != nil {
			t.Fatalf("SignToken: %v", err)
		}
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if gotUserID != "user-9" {
			t.Errorf("user id = %q, want user-9", gotUserID)
		}
	})
}

func TestOptionalAuthJWT(t *testing.T) {
	var gotUserID string
	handler := OptionalAuthJWT(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("anonymous passes through", func(t *testing.T) {
		gotUserID = "sentinel"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if gotUserID != "" {
			t.Errorf("user id = %q, want empty", gotUserID)
		}
	})

	t.Run("valid token attaches identity", func(t *testing.T) {
		token, err := SignToken(testSecret, "user-7", "", time.Hour)
		if err != nil {
			t.Fatalf("SignToken: %v", err)
		}
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if gotUserID != "user-7" {
			t.Errorf("user id = %q, want user-7", gotUserID)
		}
	})
}
