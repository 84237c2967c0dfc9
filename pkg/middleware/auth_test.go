package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ledger-book/pkg/token"
	"ledger-book/pkg/utils"

	"go.uber.org/zap"
)

func authedRequest(t *testing.T, handler http.Handler, header string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response not JSON: %v (%s)", err, rec.Body.String())
	}
	if body.Success {
		t.Error("error response has success=true")
	}
	return body.Error
}

func TestAuthRejections(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler reached without valid token")
	})
	handler := Auth(tokens, zap.NewNop())(next)

	expired := token.NewManager("test-secret", -time.Minute)
	expiredToken, _, err := expired.Issue("7b9f0a52-1f9e-4f53-9c9e-1dd2f4a8a001", "a@b.test", "A")
	if err != nil {
		t.Fatalf("issue expired token: %v", err)
	}

	foreign := token.NewManager("other-secret", time.Hour)
	foreignToken, _, err := foreign.Issue("7b9f0a52-1f9e-4f53-9c9e-1dd2f4a8a001", "a@b.test", "A")
	if err != nil {
		t.Fatalf("issue foreign token: %v", err)
	}

	badUserID := token.NewManager("test-secret", time.Hour)
	badIDToken, _, err := badUserID.Issue("not-a-uuid", "a@b.test", "A")
	if err != nil {
		t.Fatalf("issue bad-id token: %v", err)
	}

	tests := []struct {
		name    string
		header  string
		wantErr string
	}{
		{"missing header", "", "Authorization header missing"},
		{"not bearer", "Basic abc123", "Invalid authorization header format"},
		{"bare token", "sometoken", "Invalid authorization header format"},
		{"empty bearer", "Bearer ", "Invalid authorization header format"},
		{"garbage token", "Bearer garbage", "Invalid or expired token"},
		{"expired token", "Bearer " + expiredToken, "Invalid or expired token"},
		{"wrong signature", "Bearer " + foreignToken, "Invalid or expired token"},
		{"malformed user id", "Bearer " + badIDToken, "Invalid or expired token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := authedRequest(t, handler, tt.header)
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
			if got := decodeError(t, rec); got != tt.wantErr {
				t.Errorf("error = %q, want %q", got, tt.wantErr)
			}
		})
	}
}

func TestAuthPassesIdentity(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)
	tokenStr, _, err := tokens.Issue("7b9f0a52-1f9e-4f53-9c9e-1dd2f4a8a001", "owner@shop.test", "Owner")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		user, ok := utils.GetAuthUserFromContext(r.Context())
		if !ok {
			t.Fatal("no auth user in context")
		}
		if user.ID.String() != "7b9f0a52-1f9e-4f53-9c9e-1dd2f4a8a001" {
			t.Errorf("user id = %s", user.ID)
		}
		if user.Email != "owner@shop.test" || user.Name != "Owner" {
			t.Errorf("identity = %q/%q", user.Email, user.Name)
		}
	})

	rec := authedRequest(t, Auth(tokens, zap.NewNop())(next), "Bearer "+tokenStr)
	if !called {
		t.Fatalf("handler not reached, status %d body %s", rec.Code, rec.Body.String())
	}
}
