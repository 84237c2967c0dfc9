package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReminderChannel string

const (
	ReminderChannelSMS      ReminderChannel = "sms"
	ReminderChannelWhatsApp ReminderChannel = "whatsapp"
	ReminderChannelEmail    ReminderChannel = "email"
)

type ReminderStatus string

const (
	ReminderStatusPending ReminderStatus = "pending"
	ReminderStatusSent    ReminderStatus = "sent"
	ReminderStatusSnoozed ReminderStatus = "snoozed"
	ReminderStatusPaid    ReminderStatus = "paid"
)

func ValidReminderStatus(s string) bool {
	switch ReminderStatus(s) {
	case ReminderStatusPending, ReminderStatusSent, ReminderStatusSnoozed, ReminderStatusPaid:
		return true
	}
	return false
}

// Reminder is a payment nudge a user schedules against a customer's dues.
// Nothing in this service ever sends one; it is bookkeeping only.
type Reminder struct {
	Base
	UserID     uuid.UUID       `db:"user_id"`
	CustomerID uuid.UUID       `db:"customer_id"`
	DueAmount  decimal.Decimal `db:"due_amount"`
	DueDate    time.Time       `db:"due_date"`
	Channel    ReminderChannel `db:"channel"`
	Status     ReminderStatus  `db:"status"`
}

// ReminderWithCustomer joins in the customer's name for listings.
type ReminderWithCustomer struct {
	Reminder
	CustomerName string `db:"customer_name"`
}
