package response

import (
	"time"

	"ledger-book/internal/data/entity"

	"github.com/shopspring/decimal"
)

type ReminderResponse struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	DueAmount    decimal.Decimal `json:"due_amount"`
	DueDate      string          `json:"due_date"`
	Channel      string          `json:"channel"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func NewReminderResponse(reminder *entity.ReminderWithCustomer) ReminderResponse {
	return ReminderResponse{
		ID:           reminder.ID.String(),
		CustomerID:   reminder.CustomerID.String(),
		CustomerName: reminder.CustomerName,
		DueAmount:    reminder.DueAmount,
		DueDate:      reminder.DueDate.Format("2006-01-02"),
		Channel:      string(reminder.Channel),
		Status:       string(reminder.Status),
		CreatedAt:    reminder.CreatedAt,
		UpdatedAt:    reminder.UpdatedAt,
	}
}
