package usecase

import (
	"ledger-book/internal/data/repository"
	"ledger-book/pkg/token"
	"ledger-book/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth        AuthService
	User        UserService
	Customer    CustomerService
	Transaction TransactionService
	Report      ReportService
	Reminder    ReminderService
}

func NewService(repo *repository.Repository, config *utils.Config, tokens *token.Manager, log *zap.Logger) *Service {
	return &Service{
		Auth:        NewAuthService(repo.User, tokens, log),
		User:        NewUserService(repo.User, log),
		Customer:    NewCustomerService(repo, config, log),
		Transaction: NewTransactionService(repo, config, log),
		Report:      NewReportService(repo, config, log),
		Reminder:    NewReminderService(repo, log),
	}
}
