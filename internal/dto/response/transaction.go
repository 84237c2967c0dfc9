package response

import (
	"time"

	"ledger-book/internal/data/entity"

	"github.com/shopspring/decimal"
)

type TransactionResponse struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description"`
	Category     *string         `json:"category,omitempty"`
	Date         string          `json:"date"`
	ImageURL     *string         `json:"image_url,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func NewTransactionResponse(tx *entity.TransactionWithCustomer) TransactionResponse {
	return TransactionResponse{
		ID:           tx.ID.String(),
		CustomerID:   tx.CustomerID.String(),
		CustomerName: tx.CustomerName,
		Type:         string(tx.Type),
		Amount:       tx.Amount,
		Description:  tx.Description,
		Category:     tx.Category,
		Date:         tx.Date.Format("2006-01-02"),
		ImageURL:     tx.ImageURL,
		CreatedAt:    tx.CreatedAt,
		UpdatedAt:    tx.UpdatedAt,
	}
}
