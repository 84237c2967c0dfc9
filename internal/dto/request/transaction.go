package request

import (
	"github.com/shopspring/decimal"
)

type CreateTransactionRequest struct {
	CustomerID  string           `json:"customer_id" validate:"required,uuid"`
	Type        string           `json:"type" validate:"required,oneof=credit debit"`
	Amount      *decimal.Decimal `json:"amount" validate:"required,gte=0"`
	Description string           `json:"description" validate:"required"`
	Category    *string          `json:"category"`
	Date        string           `json:"date" validate:"omitempty,datetime=2006-01-02"`
	ImageURL    *string          `json:"image_url" validate:"omitempty,url"`
}

type UpdateTransactionRequest struct {
	CustomerID  *string          `json:"customer_id" validate:"omitempty,uuid"`
	Type        *string          `json:"type" validate:"omitempty,oneof=credit debit"`
	Amount      *decimal.Decimal `json:"amount" validate:"omitempty,gte=0"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Date        *string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
	ImageURL    *string          `json:"image_url" validate:"omitempty,url"`
}

// ListTransactionsRequest is parsed from query parameters, not a JSON body.
type ListTransactionsRequest struct {
	Page       int
	PerPage    int
	CustomerID string
	Type       string
	StartDate  string
	EndDate    string
	Search     string
}
