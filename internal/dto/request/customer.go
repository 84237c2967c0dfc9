package request

import (
	"github.com/shopspring/decimal"
)

type CreateCustomerRequest struct {
	Name        string           `json:"name" validate:"required"`
	Phone       string           `json:"phone" validate:"required,e164ish"`
	Email       *string          `json:"email" validate:"omitempty,email"`
	Address     *string          `json:"address"`
	Category    *string          `json:"category"`
	CreditLimit *decimal.Decimal `json:"credit_limit" validate:"omitempty,gte=0"`
}

type UpdateCustomerRequest struct {
	Name        *string          `json:"name"`
	Phone       *string          `json:"phone" validate:"omitempty,e164ish"`
	Email       *string          `json:"email" validate:"omitempty,email"`
	Address     *string          `json:"address"`
	Category    *string          `json:"category"`
	CreditLimit *decimal.Decimal `json:"credit_limit" validate:"omitempty,gte=0"`
}

// ListCustomersRequest is parsed from query parameters, not a JSON body.
type ListCustomersRequest struct {
	Page        int
	PerPage     int
	Search      string
	WithBalance bool
}
