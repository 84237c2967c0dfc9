package response

import (
	"github.com/shopspring/decimal"
)

type BalanceReport struct {
	Balance          decimal.Decimal `json:"balance"`
	FormattedBalance string          `json:"formatted_balance"`
	CustomerID       *string         `json:"customer_id,omitempty"`
}

type ReportPeriod struct {
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

type TypeSummaryEntry struct {
	Count           int64           `json:"count"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	FormattedAmount string          `json:"formatted_amount"`
}

type SummaryTotals struct {
	TotalCredit         decimal.Decimal `json:"total_credit"`
	TotalDebit          decimal.Decimal `json:"total_debit"`
	NetBalance          decimal.Decimal `json:"net_balance"`
	FormattedNetBalance string          `json:"formatted_net_balance"`
	TotalTransactions   int64           `json:"total_transactions"`
}

type SummaryReport struct {
	Period  ReportPeriod                `json:"period"`
	Summary map[string]TypeSummaryEntry `json:"summary"`
	Totals  SummaryTotals               `json:"totals"`
}

type CustomerReportSummary struct {
	TotalCredit         decimal.Decimal `json:"total_credit"`
	TotalDebit          decimal.Decimal `json:"total_debit"`
	NetBalance          decimal.Decimal `json:"net_balance"`
	FormattedNetBalance string          `json:"formatted_net_balance"`
	CreditCount         int64           `json:"credit_count"`
	DebitCount          int64           `json:"debit_count"`
	TotalTransactions   int64           `json:"total_transactions"`
}

type CustomerReport struct {
	Customer     CustomerResponse      `json:"customer"`
	Period       ReportPeriod          `json:"period"`
	Summary      CustomerReportSummary `json:"summary"`
	Transactions []TransactionResponse `json:"transactions"`
}

type DashboardReport struct {
	TotalCredit   decimal.Decimal       `json:"total_credit"`
	TotalDebit    decimal.Decimal       `json:"total_debit"`
	Balance       decimal.Decimal       `json:"balance"`
	LatestEntries []TransactionResponse `json:"latest_entries"`
}
