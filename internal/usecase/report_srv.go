package usecase

import (
	"context"
	"fmt"
	"time"

	"ledger-book/internal/data/entity"
	"ledger-book/internal/data/repository"
	"ledger-book/internal/dto/response"
	"ledger-book/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// dashboardLatestCount is the number of recent entries the dashboard shows.
const dashboardLatestCount = 5

type ReportService interface {
	Balance(ctx context.Context, userID uuid.UUID, customerID *uuid.UUID) (*response.BalanceReport, error)
	Summary(ctx context.Context, userID uuid.UUID, startDate, endDate *time.Time) (*response.SummaryReport, error)
	CustomerReport(ctx context.Context, userID, customerID uuid.UUID, startDate, endDate *time.Time) (*response.CustomerReport, error)
	Dashboard(ctx context.Context, userID uuid.UUID) (*response.DashboardReport, error)
}

type reportService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewReportService(repo *repository.Repository, config *utils.Config, log *zap.Logger) ReportService {
	return &reportService{
		repo:   repo,
		config: config,
		log:    log,
	}
}

func (rs *reportService) Balance(ctx context.Context, userID uuid.UUID, customerID *uuid.UUID) (*response.BalanceReport, error) {
	if customerID != nil {
		customer, err := rs.repo.Customer.FindByID(ctx, *customerID, userID)
		if err != nil {
			rs.log.Error("Failed to verify customer", zap.Error(err), zap.String("customer_id", customerID.String()))
			return nil, fmt.Errorf("failed to get balance")
		}
		if customer == nil {
			return nil, fmt.Errorf("customer not found")
		}
	}

	balance, err := rs.repo.Transaction.GetBalance(ctx, userID, customerID)
	if err != nil {
		rs.log.Error("Failed to get balance", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to get balance")
	}

	report := &response.BalanceReport{
		Balance:          balance,
		FormattedBalance: utils.FormatCurrency(balance, rs.config.Report.CurrencySymbol),
	}
	if customerID != nil {
		id := customerID.String()
		report.CustomerID = &id
	}
	return report, nil
}

func (rs *reportService) Summary(ctx context.Context, userID uuid.UUID, startDate, endDate *time.Time) (*response.SummaryReport, error) {
	summaries, err := rs.repo.Transaction.GetSummary(ctx, userID, startDate, endDate)
	if err != nil {
		rs.log.Error("Failed to get summary", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to get summary")
	}

	report := &response.SummaryReport{
		Period:  reportPeriod(startDate, endDate),
		Summary: make(map[string]response.TypeSummaryEntry, len(summaries)),
	}

	for _, s := range summaries {
		report.Summary[string(s.Type)] = response.TypeSummaryEntry{
			Count:           s.Count,
			TotalAmount:     s.Total,
			FormattedAmount: utils.FormatCurrency(s.Total, rs.config.Report.CurrencySymbol),
		}
		switch s.Type {
		case entity.TransactionCredit:
			report.Totals.TotalCredit = s.Total
		case entity.TransactionDebit:
			report.Totals.TotalDebit = s.Total
		}
		report.Totals.TotalTransactions += s.Count
	}

	// A type with no transactions in the period still appears with zeros.
	for _, t := range []entity.TransactionType{entity.TransactionCredit, entity.TransactionDebit} {
		if _, ok := report.Summary[string(t)]; !ok {
			report.Summary[string(t)] = response.TypeSummaryEntry{
				TotalAmount:     decimal.Zero,
				FormattedAmount: utils.FormatCurrency(decimal.Zero, rs.config.Report.CurrencySymbol),
			}
		}
	}

	report.Totals.NetBalance = report.Totals.TotalCredit.Sub(report.Totals.TotalDebit)
	report.Totals.FormattedNetBalance = utils.FormatCurrency(report.Totals.NetBalance, rs.config.Report.CurrencySymbol)

	return report, nil
}

func (rs *reportService) CustomerReport(ctx context.Context, userID, customerID uuid.UUID, startDate, endDate *time.Time) (*response.CustomerReport, error) {
	customer, err := rs.repo.Customer.FindByID(ctx, customerID, userID)
	if err != nil {
		rs.log.Error("Failed to find customer for report", zap.Error(err), zap.String("customer_id", customerID.String()))
		return nil, fmt.Errorf("failed to get customer report")
	}
	if customer == nil {
		return nil, fmt.Errorf("customer not found")
	}

	filter := &repository.TransactionFilter{
		CustomerID: &customerID,
		StartDate:  startDate,
		EndDate:    endDate,
		Limit:      rs.config.Report.MaxRows,
	}
	transactions, err := rs.repo.Transaction.FindAll(ctx, userID, filter)
	if err != nil {
		rs.log.Error("Failed to list transactions for report", zap.Error(err), zap.String("customer_id", customerID.String()))
		return nil, fmt.Errorf("failed to get customer report")
	}

	report := &response.CustomerReport{
		Customer:     response.NewCustomerResponse(customer),
		Period:       reportPeriod(startDate, endDate),
		Transactions: make([]response.TransactionResponse, len(transactions)),
	}

	for i, tx := range transactions {
		report.Transactions[i] = response.NewTransactionResponse(tx)
		switch tx.Type {
		case entity.TransactionCredit:
			report.Summary.TotalCredit = report.Summary.TotalCredit.Add(tx.Amount)
			report.Summary.CreditCount++
		case entity.TransactionDebit:
			report.Summary.TotalDebit = report.Summary.TotalDebit.Add(tx.Amount)
			report.Summary.DebitCount++
		}
	}

	report.Summary.NetBalance = report.Summary.TotalCredit.Sub(report.Summary.TotalDebit)
	report.Summary.FormattedNetBalance = utils.FormatCurrency(report.Summary.NetBalance, rs.config.Report.CurrencySymbol)
	report.Summary.TotalTransactions = report.Summary.CreditCount + report.Summary.DebitCount

	return report, nil
}

func (rs *reportService) Dashboard(ctx context.Context, userID uuid.UUID) (*response.DashboardReport, error) {
	summaries, err := rs.repo.Transaction.GetSummary(ctx, userID, nil, nil)
	if err != nil {
		rs.log.Error("Failed to get summary for dashboard", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to get dashboard")
	}

	report := &response.DashboardReport{}
	for _, s := range summaries {
		switch s.Type {
		case entity.TransactionCredit:
			report.TotalCredit = s.Total
		case entity.TransactionDebit:
			report.TotalDebit = s.Total
		}
	}
	report.Balance = report.TotalCredit.Sub(report.TotalDebit)

	latest, err := rs.repo.Transaction.FindLatest(ctx, userID, dashboardLatestCount)
	if err != nil {
		rs.log.Error("Failed to get latest transactions", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to get dashboard")
	}

	report.LatestEntries = make([]response.TransactionResponse, len(latest))
	for i, tx := range latest {
		report.LatestEntries[i] = response.NewTransactionResponse(tx)
	}

	return report, nil
}

func reportPeriod(startDate, endDate *time.Time) response.ReportPeriod {
	var period response.ReportPeriod
	if startDate != nil {
		s := utils.FormatDate(*startDate)
		period.StartDate = &s
	}
	if endDate != nil {
		e := utils.FormatDate(*endDate)
		period.EndDate = &e
	}
	return period
}
