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
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CustomerService interface {
	List(ctx context.Context, userID uuid.UUID, req *request.ListCustomersRequest) (*response.PaginatedResponse[response.CustomerResponse], error)
	Get(ctx context.Context, userID, customerID uuid.UUID) (*response.CustomerResponse, error)
	Create(ctx context.Context, userID uuid.UUID, req *request.CreateCustomerRequest) (*response.CustomerResponse, error)
	Update(ctx context.Context, userID, customerID uuid.UUID, req *request.UpdateCustomerRequest) (*response.CustomerResponse, error)
	Delete(ctx context.Context, userID, customerID uuid.UUID) error
}

type customerService struct {
	repo   *repository.Repository // customer + transaction repos
	config *utils.Config
	log    *zap.Logger
}

func NewCustomerService(repo *repository.Repository, config *utils.Config, log *zap.Logger) CustomerService {
	return &customerService{
		repo:   repo,
		config: config,
		log:    log,
	}
}

func (cs *customerService) List(ctx context.Context, userID uuid.UUID, req *request.ListCustomersRequest) (*response.PaginatedResponse[response.CustomerResponse], error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	perPage := utils.ClampPageSize(req.PerPage, cs.config.Pagination.DefaultPageSize, cs.config.Pagination.MaxPageSize)
	offset := utils.CalculateOffset(page, perPage)

	var customerResponses []response.CustomerResponse
	if req.WithBalance {
		customers, err := cs.repo.Customer.FindAllWithBalance(ctx, userID, perPage, offset, req.Search)
		if err != nil {
			cs.log.Error("Failed to list customers with balance", zap.Error(err), zap.String("user_id", userID.String()))
			return nil, fmt.Errorf("failed to get customers")
		}
		customerResponses = make([]response.CustomerResponse, len(customers))
		for i, customer := range customers {
			customerResponses[i] = response.NewCustomerWithBalanceResponse(customer)
		}
	} else {
		customers, err := cs.repo.Customer.FindAll(ctx, userID, perPage, offset, req.Search)
		if err != nil {
			cs.log.Error("Failed to list customers", zap.Error(err), zap.String("user_id", userID.String()))
			return nil, fmt.Errorf("failed to get customers")
		}
		customerResponses = make([]response.CustomerResponse, len(customers))
		for i, customer := range customers {
			customerResponses[i] = response.NewCustomerResponse(customer)
		}
	}

	total, err := cs.repo.Customer.Count(ctx, userID, req.Search)
	if err != nil {
		cs.log.Error("Failed to count customers", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to count customers")
	}

	return response.NewPaginatedResponse(customerResponses, page, perPage, total), nil
}

// Get returns one customer with the derived ledger balance attached.
func (cs *customerService) Get(ctx context.Context, userID, customerID uuid.UUID) (*response.CustomerResponse, error) {
	customer, err := cs.repo.Customer.FindByID(ctx, customerID, userID)
	if err != nil {
		cs.log.Error("Failed to find customer", zap.Error(err), zap.String("customer_id", customerID.String()))
		return nil, fmt.Errorf("failed to get customer")
	}
	if customer == nil {
		return nil, fmt.Errorf("customer not found")
	}

	balance, err := cs.repo.Transaction.GetBalance(ctx, userID, &customerID)
	if err != nil {
		cs.log.Error("Failed to get customer balance", zap.Error(err), zap.String("customer_id", customerID.String()))
		return nil, fmt.Errorf("failed to get customer")
	}

	resp := response.NewCustomerResponse(customer)
	resp.Balance = &balance
	return &resp, nil
}

func (cs *customerService) Create(ctx context.Context, userID uuid.UUID, req *request.CreateCustomerRequest) (*response.CustomerResponse, error) {
	phoneTaken, err := cs.repo.Customer.PhoneExists(ctx, req.Phone, userID, nil)
	if err != nil {
		cs.log.Error("Failed to check customer phone", zap.Error(err), zap.String("phone", req.Phone))
		return nil, fmt.Errorf("failed to check phone")
	}
	if phoneTaken {
		return nil, fmt.Errorf("customer with this phone number already exists")
	}

	creditLimit := decimal.Zero
	if req.CreditLimit != nil {
		creditLimit = *req.CreditLimit
	}

	now := time.Now()
	customer := &entity.Customer{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:      userID,
		Name:        utils.SanitizeString(req.Name),
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     utils.SanitizeStringPtr(req.Address),
		Category:    utils.SanitizeStringPtr(req.Category),
		CreditLimit: creditLimit,
	}

	if err := cs.repo.Customer.Create(ctx, customer); err != nil {
		cs.log.Error("Failed to create customer", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to create customer")
	}

	cs.log.Info("Customer created",
		zap.String("customer_id", customer.ID.String()),
		zap.String("user_id", userID.String()))

	resp := response.NewCustomerResponse(customer)
	return &resp, nil
}

func (cs *customerService) Update(ctx context.Context, userID, customerID uuid.UUID, req *request.UpdateCustomerRequest) (*response.CustomerResponse, error) {
	customer, err := cs.repo.Customer.FindByID(ctx, customerID, userID)
	if err != nil {
		cs.log.Error("Failed to find customer for update", zap.Error(err), zap.String("customer_id", customerID.String()))
		return nil, fmt.Errorf("failed to get customer")
	}
	if customer == nil {
		return nil, fmt.Errorf("customer not found")
	}

	// Keeping the current phone is allowed; the duplicate check excludes
	// the record being updated.
	if req.Phone != nil && *req.Phone != customer.Phone {
		taken, err := cs.repo.Customer.PhoneExists(ctx, *req.Phone, userID, &customerID)
		if err != nil {
			cs.log.Error("Failed to check customer phone", zap.Error(err), zap.String("phone", *req.Phone))
			return nil, fmt.Errorf("failed to check phone")
		}
		if taken {
			return nil, fmt.Errorf("customer with this phone number already exists")
		}
		customer.Phone = *req.Phone
	}

	if req.Name != nil {
		customer.Name = utils.SanitizeString(*req.Name)
	}
	if req.Email != nil {
		customer.Email = req.Email
	}
	if req.Address != nil {
		customer.Address = utils.SanitizeStringPtr(req.Address)
	}
	if req.Category != nil {
		customer.Category = utils.SanitizeStringPtr(req.Category)
	}
	if req.CreditLimit != nil {
		customer.CreditLimit = *req.CreditLimit
	}

	customer.UpdatedAt = time.Now()

	if err := cs.repo.Customer.Update(ctx, customer); err != nil {
		cs.log.Error("Failed to update customer", zap.Error(err), zap.String("customer_id", customerID.String()))
		return nil, fmt.Errorf("failed to update customer")
	}

	updated, err := cs.repo.Customer.FindByID(ctx, customerID, userID)
	if err != nil || updated == nil {
		cs.log.Error("Failed to reload customer after update", zap.Error(err), zap.String("customer_id", customerID.String()))
		return nil, fmt.Errorf("failed to update customer")
	}

	cs.log.Info("Customer updated", zap.String("customer_id", customerID.String()))

	resp := response.NewCustomerResponse(updated)
	return &resp, nil
}

func (cs *customerService) Delete(ctx context.Context, userID, customerID uuid.UUID) error {
	customer, err := cs.repo.Customer.FindByID(ctx, customerID, userID)
	if err != nil {
		cs.log.Error("Failed to find customer for delete", zap.Error(err), zap.String("customer_id", customerID.String()))
		return fmt.Errorf("failed to delete customer")
	}
	if customer == nil {
		return fmt.Errorf("customer not found")
	}

	if err := cs.repo.Customer.Delete(ctx, customerID, userID); err != nil {
		cs.log.Error("Failed to delete customer", zap.Error(err), zap.String("customer_id", customerID.String()))
		return fmt.Errorf("failed to delete customer")
	}

	cs.log.Info("Customer deleted",
		zap.String("customer_id", customerID.String()),
		zap.String("user_id", userID.String()))

	return nil
}
