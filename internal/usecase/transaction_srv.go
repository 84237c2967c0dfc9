package usecase

import (
	"context"
	"fmt"
	"time"

	"ledger-book/internal/data/entity"
	"ledger-book/internal/data/repository"
	"ledger-book/internal/dto/request"
	"ledger-book/internal/dto/response"
	"ledger-book/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TransactionService interface {
	List(ctx context.Context, userID uuid.UUID, req *request.ListTransactionsRequest) (*response.PaginatedResponse[response.TransactionResponse], error)
	Get(ctx context.Context, userID, transactionID uuid.UUID) (*response.TransactionResponse, error)
	Create(ctx context.Context, userID uuid.UUID, req *request.CreateTransactionRequest) (*response.TransactionResponse, error)
	Update(ctx context.Context, userID, transactionID uuid.UUID, req *request.UpdateTransactionRequest) (*response.TransactionResponse, error)
	Delete(ctx context.Context, userID, transactionID uuid.UUID) error
}

type transactionService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewTransactionService(repo *repository.Repository, config *utils.Config, log *zap.Logger) TransactionService {
	return &transactionService{
		repo:   repo,
		config: config,
		log:    log,
	}
}

// buildFilter translates the raw query parameters into a repository filter.
// Unparsable values are ignored rather than rejected so that a bad filter
// degrades to a broader listing instead of an error.
func (ts *transactionService) buildFilter(req *request.ListTransactionsRequest, limit, offset int) *repository.TransactionFilter {
	filter := &repository.TransactionFilter{
		Search: req.Search,
		Limit:  limit,
		Offset: offset,
	}
	if req.CustomerID != "" {
		if id, err := uuid.Parse(req.CustomerID); err == nil {
			filter.CustomerID = &id
		}
	}
	if entity.ValidTransactionType(req.Type) {
		txType := entity.TransactionType(req.Type)
		filter.Type = &txType
	}
	if req.StartDate != "" {
		if start, err := utils.ParseDate(req.StartDate); err == nil {
			filter.StartDate = &start
		}
	}
	if req.EndDate != "" {
		if end, err := utils.ParseDate(req.EndDate); err == nil {
			filter.EndDate = &end
		}
	}
	return filter
}

func (ts *transactionService) List(ctx context.Context, userID uuid.UUID, req *request.ListTransactionsRequest) (*response.PaginatedResponse[response.TransactionResponse], error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	perPage := utils.ClampPageSize(req.PerPage, ts.config.Pagination.DefaultPageSize, ts.config.Pagination.MaxPageSize)
	filter := ts.buildFilter(req, perPage, utils.CalculateOffset(page, perPage))

	transactions, err := ts.repo.Transaction.FindAll(ctx, userID, filter)
	if err != nil {
		ts.log.Error("Failed to list transactions", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to get transactions")
	}

	total, err := ts.repo.Transaction.Count(ctx, userID, filter)
	if err != nil {
		ts.log.Error("Failed to count transactions", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to count transactions")
	}

	transactionResponses := make([]response.TransactionResponse, len(transactions))
	for i, tx := range transactions {
		transactionResponses[i] = response.NewTransactionResponse(tx)
	}

	return response.NewPaginatedResponse(transactionResponses, page, perPage, total), nil
}

func (ts *transactionService) Get(ctx context.Context, userID, transactionID uuid.UUID) (*response.TransactionResponse, error) {
	tx, err := ts.repo.Transaction.FindByID(ctx, transactionID, userID)
	if err != nil {
		ts.log.Error("Failed to find transaction", zap.Error(err), zap.String("transaction_id", transactionID.String()))
		return nil, fmt.Errorf("failed to get transaction")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction not found")
	}

	resp := response.NewTransactionResponse(tx)
	return &resp, nil
}

func (ts *transactionService) Create(ctx context.Context, userID uuid.UUID, req *request.CreateTransactionRequest) (*response.TransactionResponse, error) {
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("customer not found")
	}

	// The customer must belong to the authenticated user. A foreign or
	// unknown customer id is indistinguishable from a missing one.
	customer, err := ts.repo.Customer.FindByID(ctx, customerID, userID)
	if err != nil {
		ts.log.Error("Failed to verify customer", zap.Error(err), zap.String("customer_id", customerID.String()))
		return nil, fmt.Errorf("failed to create transaction")
	}
	if customer == nil {
		return nil, fmt.Errorf("customer not found")
	}

	date := time.Now()
	if req.Date != "" {
		if parsed, err := utils.ParseDate(req.Date); err == nil {
			date = parsed
		}
	}

	now := time.Now()
	tx := &entity.Transaction{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:      userID,
		CustomerID:  customerID,
		Type:        entity.TransactionType(req.Type),
		Amount:      *req.Amount,
		Description: utils.SanitizeString(req.Description),
		Category:    utils.SanitizeStringPtr(req.Category),
		Date:        date,
		ImageURL:    req.ImageURL,
	}

	if err := ts.repo.Transaction.Create(ctx, tx); err != nil {
		ts.log.Error("Failed to create transaction", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to create transaction")
	}

	ts.log.Info("Transaction created",
		zap.String("transaction_id", tx.ID.String()),
		zap.String("customer_id", customerID.String()),
		zap.String("type", req.Type),
		zap.String("amount", req.Amount.String()))

	created, err := ts.repo.Transaction.FindByID(ctx, tx.ID, userID)
	if err != nil || created == nil {
		ts.log.Error("Failed to reload transaction after create", zap.Error(err), zap.String("transaction_id", tx.ID.String()))
		return nil, fmt.Errorf("failed to create transaction")
	}

	resp := response.NewTransactionResponse(created)
	return &resp, nil
}

func (ts *transactionService) Update(ctx context.Context, userID, transactionID uuid.UUID, req *request.UpdateTransactionRequest) (*response.TransactionResponse, error) {
	existing, err := ts.repo.Transaction.FindByID(ctx, transactionID, userID)
	if err != nil {
		ts.log.Error("Failed to find transaction for update", zap.Error(err), zap.String("transaction_id", transactionID.String()))
		return nil, fmt.Errorf("failed to get transaction")
	}
	if existing == nil {
		return nil, fmt.Errorf("transaction not found")
	}

	tx := existing.Transaction

	if req.CustomerID != nil {
		customerID, err := uuid.Parse(*req.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("customer not found")
		}
		if customerID != tx.CustomerID {
			customer, err := ts.repo.Customer.FindByID(ctx, customerID, userID)
			if err != nil {
				ts.log.Error("Failed to verify customer", zap.Error(err), zap.String("customer_id", customerID.String()))
				return nil, fmt.Errorf("failed to update transaction")
			}
			if customer == nil {
				return nil, fmt.Errorf("customer not found")
			}
			tx.CustomerID = customerID
		}
	}

	if req.Type != nil {
		tx.Type = entity.TransactionType(*req.Type)
	}
	if req.Amount != nil {
		tx.Amount = *req.Amount
	}
	if req.Description != nil {
		tx.Description = utils.SanitizeString(*req.Description)
	}
	if req.Category != nil {
		tx.Category = utils.SanitizeStringPtr(req.Category)
	}
	if req.Date != nil {
		if parsed, err := utils.ParseDate(*req.Date); err == nil {
			tx.Date = parsed
		}
	}
	if req.ImageURL != nil {
		tx.ImageURL = req.ImageURL
	}

	tx.UpdatedAt = time.Now()

	if err := ts.repo.Transaction.Update(ctx, &tx); err != nil {
		ts.log.Error("Failed to update transaction", zap.Error(err), zap.String("transaction_id", transactionID.String()))
		return nil, fmt.Errorf("failed to update transaction")
	}

	updated, err := ts.repo.Transaction.FindByID(ctx, transactionID, userID)
	if err != nil || updated == nil {
		ts.log.Error("Failed to reload transaction after update", zap.Error(err), zap.String("transaction_id", transactionID.String()))
		return nil, fmt.Errorf("failed to update transaction")
	}

	ts.log.Info("Transaction updated", zap.String("transaction_id", transactionID.String()))

	resp := response.NewTransactionResponse(updated)
	return &resp, nil
}

func (ts *transactionService) Delete(ctx context.Context, userID, transactionID uuid.UUID) error {
	existing, err := ts.repo.Transaction.FindByID(ctx, transactionID, userID)
	if err != nil {
		ts.log.Error("Failed to find transaction for delete", zap.Error(err), zap.String("transaction_id", transactionID.String()))
		return fmt.Errorf("failed to delete transaction")
	}
	if existing == nil {
		return fmt.Errorf("transaction not found")
	}

	if err := ts.repo.Transaction.Delete(ctx, transactionID, userID); err != nil {
		ts.log.Error("Failed to delete transaction", zap.Error(err), zap.String("transaction_id", transactionID.String()))
		return fmt.Errorf("failed to delete transaction")
	}

	ts.log.Info("Transaction deleted",
		zap.String("transaction_id", transactionID.String()),
		zap.String("user_id", userID.String()))

	return nil
}
