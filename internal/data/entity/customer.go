package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Customer is always scoped to its owning user; phone is unique per owner.
type Customer struct {
	Base
	UserID      uuid.UUID       `db:"user_id"`
	Name        string          `db:"name"`
	Phone       string          `db:"phone"`
	Email       *string         `db:"email"`
	Address     *string         `db:"address"`
	Category    *string         `db:"category"`
	CreditLimit decimal.Decimal `db:"credit_limit"`
}

// CustomerWithBalance carries the derived ledger balance alongside the
// customer row. The balance is never stored.
type CustomerWithBalance struct {
	Customer
	Balance decimal.Decimal `db:"balance"`
}
