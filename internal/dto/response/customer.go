package response

import (
	"time"

	"ledger-book/internal/data/entity"

	"github.com/shopspring/decimal"
)

type CustomerResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Phone       string           `json:"phone"`
	Email       *string          `json:"email,omitempty"`
	Address     *string          `json:"address,omitempty"`
	Category    *string          `json:"category,omitempty"`
	CreditLimit decimal.Decimal  `json:"credit_limit"`
	Balance     *decimal.Decimal `json:"balance,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func NewCustomerResponse(customer *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          customer.ID.String(),
		Name:        customer.Name,
		Phone:       customer.Phone,
		Email:       customer.Email,
		Address:     customer.Address,
		Category:    customer.Category,
		CreditLimit: customer.CreditLimit,
		CreatedAt:   customer.CreatedAt,
		UpdatedAt:   customer.UpdatedAt,
	}
}

func NewCustomerWithBalanceResponse(customer *entity.CustomerWithBalance) CustomerResponse {
	resp := NewCustomerResponse(&customer.Customer)
	balance := customer.Balance
	resp.Balance = &balance
	return resp
}
