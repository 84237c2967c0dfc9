package repository

import (
	"ledger-book/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User        UserRepository
	Customer    CustomerRepository
	Transaction TransactionRepository
	Reminder    ReminderRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:        NewUserRepository(db, log),
		Customer:    NewCustomerRepository(db, log),
		Transaction: NewTransactionRepository(db, log),
		Reminder:    NewReminderRepository(db, log),
	}
}
