package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionCredit TransactionType = "credit"
	TransactionDebit  TransactionType = "debit"
)

// ValidTransactionType reports whether s is one of the two ledger
// transaction kinds.
func ValidTransactionType(s string) bool {
	return s == string(TransactionCredit) || s == string(TransactionDebit)
}

// Transaction is a single ledger entry against a customer. Amount is
// always non-negative; the type carries the sign.
type Transaction struct {
	Base
	UserID      uuid.UUID       `db:"user_id"`
	CustomerID  uuid.UUID       `db:"customer_id"`
	Type        TransactionType `db:"type"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	Category    *string         `db:"category"`
	Date        time.Time       `db:"date"`
	ImageURL    *string         `db:"image_url"`
}

// TransactionWithCustomer joins in the customer's name for listings.
type TransactionWithCustomer struct {
	Transaction
	CustomerName string `db:"customer_name"`
}
