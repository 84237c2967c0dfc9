package wire

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ledger-book/internal/adaptor"
	"ledger-book/internal/dto/request"
	"ledger-book/internal/dto/response"
	"ledger-book/internal/usecase"
	"ledger-book/pkg/token"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func testRouter() http.Handler {
	handler := adaptor.NewHandler(&usecase.Service{}, zap.NewNop())
	return setupRouter(handler, token.NewManager("test-secret", time.Hour), zap.NewNop())
}

func do(t *testing.T, router http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) (success bool, message, errMsg string) {
	t.Helper()
	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response not JSON: %v (%s)", err, rec.Body.String())
	}
	return body.Success, body.Message, body.Error
}

func TestHealthEndpoint(t *testing.T) {
	rec := do(t, testRouter(), http.MethodGet, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if success, message, _ := decode(t, rec); !success || message != "OK" {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestUnknownRouteEnvelope(t *testing.T) {
	rec := do(t, testRouter(), http.MethodGet, "/api/nope")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if success, _, errMsg := decode(t, rec); success || errMsg != "Resource not found" {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestWrongMethodEnvelope(t *testing.T) {
	rec := do(t, testRouter(), http.MethodDelete, "/health")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
	if success, _, errMsg := decode(t, rec); success || errMsg == "" {
		t.Errorf("body = %s", rec.Body.String())
	}
}

// echoUserService answers with the id the handler resolved.
type echoUserService struct{}

func (echoUserService) GetByID(_ context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	return &response.UserResponse{ID: userID.String()}, nil
}

func (echoUserService) Update(_ context.Context, userID uuid.UUID, _ *request.UpdateUserRequest) (*response.UserResponse, error) {
	return &response.UserResponse{ID: userID.String()}, nil
}

func (echoUserService) Delete(context.Context, uuid.UUID) error { return nil }

// The bare /api/users path resolves to the caller's own record.
func TestBareUsersRouteServesOwnRecord(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)
	handler := adaptor.NewHandler(&usecase.Service{User: echoUserService{}}, zap.NewNop())
	router := setupRouter(handler, tokens, zap.NewNop())

	userID := uuid.New()
	tok, _, err := tokens.Issue(userID.String(), "asha@shop.test", "Asha")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body.String())
	}
	if success, message, _ := decode(t, rec); !success || message != "User retrieved successfully" {
		t.Errorf("body = %s", rec.Body.String())
	}

	var body struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response not JSON: %v", err)
	}
	if body.Data.ID != userID.String() {
		t.Errorf("data.id = %q, want token subject %q", body.Data.ID, userID)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := testRouter()
	paths := []string{
		"/api/users",
		"/api/users/profile",
		"/api/customers",
		"/api/transactions",
		"/api/reminders",
		"/api/reports/balance",
		"/api/reports/summary",
		"/api/reports/dashboard",
	}

	for _, path := range paths {
		rec := do(t, router, http.MethodGet, path)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("GET %s status = %d, want 401", path, rec.Code)
			continue
		}
		if _, _, errMsg := decode(t, rec); errMsg != "Authorization header missing" {
			t.Errorf("GET %s error = %q", path, errMsg)
		}
	}
}
