package request

import (
	"github.com/shopspring/decimal"
)

type CreateReminderRequest struct {
	CustomerID string          `json:"customer_id" validate:"required,uuid"`
	DueAmount  decimal.Decimal `json:"due_amount" validate:"gte=0"`
	DueDate    string          `json:"due_date" validate:"required,datetime=2006-01-02"`
	Channel    string          `json:"channel" validate:"required,oneof=sms whatsapp email"`
}

type UpdateReminderRequest struct {
	DueAmount *decimal.Decimal `json:"due_amount" validate:"omitempty,gte=0"`
	DueDate   *string          `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Channel   *string          `json:"channel" validate:"omitempty,oneof=sms whatsapp email"`
	Status    *string          `json:"status" validate:"omitempty,oneof=pending sent snoozed paid"`
}
