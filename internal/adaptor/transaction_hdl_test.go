package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ledger-book/internal/dto/request"
	"ledger-book/internal/dto/response"
	"ledger-book/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type stubTransactionService struct {
	listReq   *request.ListTransactionsRequest
	createReq *request.CreateTransactionRequest
}

func (s *stubTransactionService) List(_ context.Context, _ uuid.UUID, req *request.ListTransactionsRequest) (*response.PaginatedResponse[response.TransactionResponse], error) {
	s.listReq = req
	return response.NewPaginatedResponse([]response.TransactionResponse{}, req.Page, req.PerPage, 0), nil
}

func (s *stubTransactionService) Get(_ context.Context, _, _ uuid.UUID) (*response.TransactionResponse, error) {
	return &response.TransactionResponse{}, nil
}

func (s *stubTransactionService) Create(_ context.Context, _ uuid.UUID, req *request.CreateTransactionRequest) (*response.TransactionResponse, error) {
	s.createReq = req
	return &response.TransactionResponse{ID: uuid.New().String()}, nil
}

func (s *stubTransactionService) Update(_ context.Context, _, _ uuid.UUID, _ *request.UpdateTransactionRequest) (*response.TransactionResponse, error) {
	return &response.TransactionResponse{}, nil
}

func (s *stubTransactionService) Delete(_ context.Context, _, _ uuid.UUID) error { return nil }

func TestTransactionListPageSizeParameter(t *testing.T) {
	tests := []struct {
		query       string
		wantPerPage int
	}{
		{"page=1&limit=10", 10},
		{"page=1&per_page=15", 15},
		{"limit=10&per_page=15", 10},
		{"type=credit", 0},
	}

	for _, tt := range tests {
		svc := &stubTransactionService{}
		h := NewTransactionHandler(svc, zap.NewNop())

		rec := getAuthed(t, h.List, "/api/transactions?"+tt.query)
		if rec.Code != http.StatusOK {
			t.Fatalf("query %q: status = %d (%s)", tt.query, rec.Code, rec.Body.String())
		}
		if svc.listReq.PerPage != tt.wantPerPage {
			t.Errorf("query %q: PerPage = %d, want %d", tt.query, svc.listReq.PerPage, tt.wantPerPage)
		}
	}
}

func postTransaction(t *testing.T, h *TransactionHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/transactions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	ctx := utils.SetAuthUserContext(req.Context(), utils.AuthUser{ID: uuid.New(), Email: "a@b.test", Name: "A"})
	rec := httptest.NewRecorder()
	h.Create(rec, req.WithContext(ctx))
	return rec
}

func TestTransactionCreateRequiresAmount(t *testing.T) {
	svc := &stubTransactionService{}
	h := NewTransactionHandler(svc, zap.NewNop())

	customerID := uuid.New().String()

	// A body without amount is rejected before reaching the service.
	rec := postTransaction(t, h, `{"customer_id":"`+customerID+`","type":"credit","description":"rice"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (%s)", rec.Code, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	if env.Error != "Validation failed" {
		t.Errorf("error = %q", env.Error)
	}
	var details map[string]string
	if err := json.Unmarshal(env.Details, &details); err != nil {
		t.Fatalf("details not a field map: %v", err)
	}
	if details["amount"] == "" {
		t.Errorf("missing detail for amount: %v", details)
	}
	if svc.createReq != nil {
		t.Error("service was called despite missing amount")
	}

	// An explicit zero amount is still a present amount.
	rec = postTransaction(t, h, `{"customer_id":"`+customerID+`","type":"credit","amount":0,"description":"settled"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (%s)", rec.Code, rec.Body.String())
	}
	if svc.createReq == nil || svc.createReq.Amount == nil {
		t.Fatal("service did not receive the amount")
	}
	if !svc.createReq.Amount.IsZero() {
		t.Errorf("Amount = %s, want 0", svc.createReq.Amount)
	}
}
