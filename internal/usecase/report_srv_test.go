package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestBalanceReport(t *testing.T) {
	repo, _, transactions := newTestRepository()
	customers := NewCustomerService(repo, testConfig(), testLogger())
	svc := NewReportService(repo, testConfig(), testLogger())
	ctx := context.Background()
	userID := uuid.New()
	customerID := seedCustomer(t, customers, userID, "Asha", "+919876543210")
	otherID := seedCustomer(t, customers, userID, "Binu", "+919876543211")

	now := time.Now()
	seedTransaction(t, transactions, userID, customerID, "credit", "1500", now)
	seedTransaction(t, transactions, userID, customerID, "debit", "250.50", now)
	seedTransaction(t, transactions, userID, otherID, "credit", "100", now)

	overall, err := svc.Balance(ctx, userID, nil)
	if err != nil {
		t.Fatalf("Balance() error = %v", err)
	}
	if want := decimal.RequireFromString("1349.50"); !overall.Balance.Equal(want) {
		t.Errorf("overall balance = %s, want %s", overall.Balance, want)
	}
	if overall.FormattedBalance != "₹1,349.50" {
		t.Errorf("FormattedBalance = %q", overall.FormattedBalance)
	}
	if overall.CustomerID != nil {
		t.Error("overall report carries a customer id")
	}

	scoped, err := svc.Balance(ctx, userID, &customerID)
	if err != nil {
		t.Fatalf("Balance(customer) error = %v", err)
	}
	if want := decimal.RequireFromString("1249.50"); !scoped.Balance.Equal(want) {
		t.Errorf("scoped balance = %s, want %s", scoped.Balance, want)
	}
	if scoped.CustomerID == nil || *scoped.CustomerID != customerID.String() {
		t.Errorf("scoped CustomerID = %v", scoped.CustomerID)
	}
}

func TestBalanceReportUnknownCustomer(t *testing.T) {
	repo, _, _ := newTestRepository()
	svc := NewReportService(repo, testConfig(), testLogger())
	unknown := uuid.New()

	if _, err := svc.Balance(context.Background(), uuid.New(), &unknown); err == nil || err.Error() != "customer not found" {
		t.Errorf("Balance() error = %v, want customer not found", err)
	}
}

func TestSummaryReport(t *testing.T) {
	repo, _, transactions := newTestRepository()
	customers := NewCustomerService(repo, testConfig(), testLogger())
	svc := NewReportService(repo, testConfig(), testLogger())
	ctx := context.Background()
	userID := uuid.New()
	customerID := seedCustomer(t, customers, userID, "Asha", "+919876543210")

	jan := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	seedTransaction(t, transactions, userID, customerID, "credit", "1000", jan)
	seedTransaction(t, transactions, userID, customerID, "credit", "500", feb)
	seedTransaction(t, transactions, userID, customerID, "debit", "300", feb)

	report, err := svc.Summary(ctx, userID, nil, nil)
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}

	credit := report.Summary["credit"]
	if credit.Count != 2 || !credit.TotalAmount.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("credit entry = %+v", credit)
	}
	debit := report.Summary["debit"]
	if debit.Count != 1 || !debit.TotalAmount.Equal(decimal.NewFromInt(300)) {
		t.Errorf("debit entry = %+v", debit)
	}
	if !report.Totals.NetBalance.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("NetBalance = %s, want 1200", report.Totals.NetBalance)
	}
	if report.Totals.TotalTransactions != 3 {
		t.Errorf("TotalTransactions = %d, want 3", report.Totals.TotalTransactions)
	}
	if report.Period.StartDate != nil || report.Period.EndDate != nil {
		t.Errorf("Period = %+v, want open", report.Period)
	}

	// Scoped to February only.
	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
	scoped, err := svc.Summary(ctx, userID, &start, &end)
	if err != nil {
		t.Fatalf("Summary(period) error = %v", err)
	}
	if scoped.Totals.TotalTransactions != 2 {
		t.Errorf("scoped TotalTransactions = %d, want 2", scoped.Totals.TotalTransactions)
	}
	if scoped.Period.StartDate == nil || *scoped.Period.StartDate != "2026-02-01" {
		t.Errorf("Period.StartDate = %v", scoped.Period.StartDate)
	}
}

func TestSummaryReportEmpty(t *testing.T) {
	repo, _, _ := newTestRepository()
	svc := NewReportService(repo, testConfig(), testLogger())

	report, err := svc.Summary(context.Background(), uuid.New(), nil, nil)
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}

	// Both types appear with zeros even with no data at all.
	for _, key := range []string{"credit", "debit"} {
		entry, ok := report.Summary[key]
		if !ok {
			t.Errorf("missing %q entry", key)
			continue
		}
		if entry.Count != 0 || !entry.TotalAmount.IsZero() {
			t.Errorf("%q entry = %+v, want zeros", key, entry)
		}
	}
	if !report.Totals.NetBalance.IsZero() {
		t.Errorf("NetBalance = %s, want 0", report.Totals.NetBalance)
	}
}

func TestCustomerReport(t *testing.T) {
	repo, _, transactions := newTestRepository()
	customers := NewCustomerService(repo, testConfig(), testLogger())
	svc := NewReportService(repo, testConfig(), testLogger())
	ctx := context.Background()
	userID := uuid.New()
	customerID := seedCustomer(t, customers, userID, "Asha", "+919876543210")
	otherID := seedCustomer(t, customers, userID, "Binu", "+919876543211")

	now := time.Now()
	seedTransaction(t, transactions, userID, customerID, "credit", "800", now)
	seedTransaction(t, transactions, userID, customerID, "debit", "200", now)
	seedTransaction(t, transactions, userID, otherID, "credit", "999", now)

	report, err := svc.CustomerReport(ctx, userID, customerID, nil, nil)
	if err != nil {
		t.Fatalf("CustomerReport() error = %v", err)
	}
	if report.Customer.ID != customerID.String() {
		t.Errorf("Customer.ID = %q", report.Customer.ID)
	}
	if len(report.Transactions) != 2 {
		t.Errorf("Transactions = %d rows, want 2", len(report.Transactions))
	}
	if report.Summary.CreditCount != 1 || report.Summary.DebitCount != 1 {
		t.Errorf("counts = %d/%d, want 1/1", report.Summary.CreditCount, report.Summary.DebitCount)
	}
	if !report.Summary.NetBalance.Equal(decimal.NewFromInt(600)) {
		t.Errorf("NetBalance = %s, want 600", report.Summary.NetBalance)
	}

	if _, err := svc.CustomerReport(ctx, userID, uuid.New(), nil, nil); err == nil || err.Error() != "customer not found" {
		t.Errorf("CustomerReport(unknown) error = %v, want customer not found", err)
	}
}

func TestDashboardReport(t *testing.T) {
	repo, _, transactions := newTestRepository()
	customers := NewCustomerService(repo, testConfig(), testLogger())
	svc := NewReportService(repo, testConfig(), testLogger())
	ctx := context.Background()
	userID := uuid.New()
	customerID := seedCustomer(t, customers, userID, "Asha", "+919876543210")

	now := time.Now()
	seedTransaction(t, transactions, userID, customerID, "credit", "700", now)
	seedTransaction(t, transactions, userID, customerID, "debit", "150", now)

	report, err := svc.Dashboard(ctx, userID)
	if err != nil {
		t.Fatalf("Dashboard() error = %v", err)
	}
	if !report.TotalCredit.Equal(decimal.NewFromInt(700)) {
		t.Errorf("TotalCredit = %s", report.TotalCredit)
	}
	if !report.TotalDebit.Equal(decimal.NewFromInt(150)) {
		t.Errorf("TotalDebit = %s", report.TotalDebit)
	}
	if !report.Balance.Equal(decimal.NewFromInt(550)) {
		t.Errorf("Balance = %s", report.Balance)
	}
	if len(report.LatestEntries) != 2 {
		t.Errorf("LatestEntries = %d rows, want 2", len(report.LatestEntries))
	}
}
