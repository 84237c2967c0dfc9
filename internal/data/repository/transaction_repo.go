package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ledger-book/internal/data/entity"
	"ledger-book/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// TransactionFilter narrows listings and counts. Date bounds are
// inclusive and compared at date granularity.
type TransactionFilter struct {
	CustomerID *uuid.UUID
	Type       *entity.TransactionType
	StartDate  *time.Time
	EndDate    *time.Time
	Search     string
	Limit      int
	Offset     int
}

// TypeSummary is one row of the grouped per-type aggregate.
type TypeSummary struct {
	Type  entity.TransactionType
	Count int64
	Total decimal.Decimal
}

type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) error
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.TransactionWithCustomer, error)
	FindAll(ctx context.Context, userID uuid.UUID, filter *TransactionFilter) ([]*entity.TransactionWithCustomer, error)
	Count(ctx context.Context, userID uuid.UUID, filter *TransactionFilter) (int64, error)
	Update(ctx context.Context, tx *entity.Transaction) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
	GetBalance(ctx context.Context, userID uuid.UUID, customerID *uuid.UUID) (decimal.Decimal, error)
	GetSummary(ctx context.Context, userID uuid.UUID, startDate, endDate *time.Time) ([]TypeSummary, error)
	FindLatest(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.TransactionWithCustomer, error)
}

type transactionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTransactionRepository(db database.PgxIface, log *zap.Logger) TransactionRepository {
	return &transactionRepository{
		db:  db,
		log: log.With(zap.String("repository", "transaction")),
	}
}

func (tr *transactionRepository) Create(ctx context.Context, tx *entity.Transaction) error {
	query := `
		INSERT INTO transactions (id, user_id, customer_id, type, amount, description,
		                          category, date, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := tr.db.Exec(ctx, query,
		tx.ID,
		tx.UserID,
		tx.CustomerID,
		tx.Type,
		tx.Amount,
		tx.Description,
		tx.Category,
		tx.Date,
		tx.ImageURL,
		tx.CreatedAt,
		tx.UpdatedAt,
	)

	if err != nil {
		tr.log.Error("Failed to create transaction",
			zap.Error(err),
			zap.String("user_id", tx.UserID.String()),
			zap.String("customer_id", tx.CustomerID.String()),
		)
		return fmt.Errorf("create transaction for customer %s: %w", tx.CustomerID.String(), err)
	}

	return nil
}

const transactionSelect = `
	SELECT t.id, t.user_id, t.customer_id, c.name, t.type, t.amount, t.description,
	       t.category, t.date, t.image_url, t.created_at, t.updated_at
	FROM transactions t
	JOIN customers c ON c.id = t.customer_id
`

func scanTransaction(row pgx.Row) (*entity.TransactionWithCustomer, error) {
	var tx entity.TransactionWithCustomer
	err := row.Scan(
		&tx.ID,
		&tx.UserID,
		&tx.CustomerID,
		&tx.CustomerName,
		&tx.Type,
		&tx.Amount,
		&tx.Description,
		&tx.Category,
		&tx.Date,
		&tx.ImageURL,
		&tx.CreatedAt,
		&tx.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (tr *transactionRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.TransactionWithCustomer, error) {
	query := transactionSelect + ` WHERE t.id = $1 AND t.user_id = $2`

	tx, err := scanTransaction(tr.db.QueryRow(ctx, query, id, userID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		tr.log.Error("Failed to find transaction by ID",
			zap.Error(err),
			zap.String("transaction_id", id.String()),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find transaction by ID %s: %w", id.String(), err)
	}

	return tx, nil
}

// appendTransactionFilters ANDs the optional equality, range, and search
// predicates onto a query already scoped by owner. Returns the extended
// args slice.
func appendTransactionFilters(qb *strings.Builder, args []any, filter *TransactionFilter) []any {
	if filter == nil {
		return args
	}

	if filter.CustomerID != nil {
		fmt.Fprintf(qb, " AND t.customer_id = $%d", len(args)+1)
		args = append(args, *filter.CustomerID)
	}

	if filter.Type != nil {
		fmt.Fprintf(qb, " AND t.type = $%d", len(args)+1)
		args = append(args, *filter.Type)
	}

	if filter.StartDate != nil {
		fmt.Fprintf(qb, " AND t.date >= $%d", len(args)+1)
		args = append(args, *filter.StartDate)
	}

	if filter.EndDate != nil {
		fmt.Fprintf(qb, " AND t.date <= $%d", len(args)+1)
		args = append(args, *filter.EndDate)
	}

	if filter.Search != "" {
		n := len(args) + 1
		fmt.Fprintf(qb, " AND (t.description ILIKE $%d OR c.name ILIKE $%d)", n, n)
		args = append(args, "%"+filter.Search+"%")
	}

	return args
}

// FindAll retrieves an owner's transactions, newest ledger date first with
// creation time as tiebreaker so pagination stays stable.
func (tr *transactionRepository) FindAll(ctx context.Context, userID uuid.UUID, filter *TransactionFilter) ([]*entity.TransactionWithCustomer, error) {
	if filter == nil {
		filter = &TransactionFilter{}
	}

	var qb strings.Builder
	qb.WriteString(transactionSelect)
	qb.WriteString(` WHERE t.user_id = $1`)

	args := []any{userID}
	args = appendTransactionFilters(&qb, args, filter)

	qb.WriteString(" ORDER BY t.date DESC, t.created_at DESC")
	if filter.Limit > 0 {
		fmt.Fprintf(&qb, " LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := tr.db.Query(ctx, qb.String(), args...)
	if err != nil {
		tr.log.Error("Failed to find all transactions",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find all transactions for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var txs []*entity.TransactionWithCustomer
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			tr.log.Error("Failed to scan transaction row", zap.Error(err))
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}
		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		tr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate transaction rows: %w", err)
	}

	return txs, nil
}

// Count mirrors FindAll's predicate for pagination metadata.
func (tr *transactionRepository) Count(ctx context.Context, userID uuid.UUID, filter *TransactionFilter) (int64, error) {
	var qb strings.Builder
	qb.WriteString(`
		SELECT COUNT(*)
		FROM transactions t
		JOIN customers c ON c.id = t.customer_id
		WHERE t.user_id = $1
	`)

	args := []any{userID}
	args = appendTransactionFilters(&qb, args, filter)

	var count int64
	err := tr.db.QueryRow(ctx, qb.String(), args...).Scan(&count)
	if err != nil {
		tr.log.Error("Failed to count transactions",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count transactions for user %s: %w", userID.String(), err)
	}

	return count, nil
}

func (tr *transactionRepository) Update(ctx context.Context, tx *entity.Transaction) error {
	query := `
		UPDATE transactions
		SET customer_id = $3, type = $4, amount = $5, description = $6,
		    category = $7, date = $8, image_url = $9, updated_at = $10
		WHERE id = $1 AND user_id = $2
	`

	result, err := tr.db.Exec(ctx, query,
		tx.ID,
		tx.UserID,
		tx.CustomerID,
		tx.Type,
		tx.Amount,
		tx.Description,
		tx.Category,
		tx.Date,
		tx.ImageURL,
		tx.UpdatedAt,
	)

	if err != nil {
		tr.log.Error("Failed to update transaction",
			zap.Error(err),
			zap.String("transaction_id", tx.ID.String()),
		)
		return fmt.Errorf("update transaction %s: %w", tx.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("transaction %s not found", tx.ID.String())
	}

	return nil
}

func (tr *transactionRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query := `DELETE FROM transactions WHERE id = $1 AND user_id = $2`

	result, err := tr.db.Exec(ctx, query, id, userID)
	if err != nil {
		tr.log.Error("Failed to delete transaction",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete transaction %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("transaction %s not found", id.String())
	}

	tr.log.Info("Transaction deleted", zap.String("id", id.String()))
	return nil
}

// GetBalance computes credits minus debits for the owner, optionally
// narrowed to one customer. Absent rows yield zero.
func (tr *transactionRepository) GetBalance(ctx context.Context, userID uuid.UUID, customerID *uuid.UUID) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN type = 'credit' THEN amount ELSE -amount END), 0)
		FROM transactions
		WHERE user_id = $1
	`
	args := []any{userID}

	if customerID != nil {
		query += ` AND customer_id = $2`
		args = append(args, *customerID)
	}

	var balance decimal.Decimal
	err := tr.db.QueryRow(ctx, query, args...).Scan(&balance)
	if err != nil {
		tr.log.Error("Failed to get balance",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return decimal.Zero, fmt.Errorf("get balance for user %s: %w", userID.String(), err)
	}

	return balance, nil
}

// GetSummary groups count and total per transaction type over an optional
// inclusive date range.
func (tr *transactionRepository) GetSummary(ctx context.Context, userID uuid.UUID, startDate, endDate *time.Time) ([]TypeSummary, error) {
	var qb strings.Builder
	qb.WriteString(`
		SELECT type, COUNT(*), COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE user_id = $1
	`)

	args := []any{userID}
	if startDate != nil {
		fmt.Fprintf(&qb, " AND date >= $%d", len(args)+1)
		args = append(args, *startDate)
	}
	if endDate != nil {
		fmt.Fprintf(&qb, " AND date <= $%d", len(args)+1)
		args = append(args, *endDate)
	}
	qb.WriteString(` GROUP BY type`)

	rows, err := tr.db.Query(ctx, qb.String(), args...)
	if err != nil {
		tr.log.Error("Failed to get transaction summary",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("get transaction summary for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var summaries []TypeSummary
	for rows.Next() {
		var s TypeSummary
		if err := rows.Scan(&s.Type, &s.Count, &s.Total); err != nil {
			tr.log.Error("Failed to scan summary row", zap.Error(err))
			return nil, fmt.Errorf("scan summary row: %w", err)
		}
		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		tr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate summary rows: %w", err)
	}

	return summaries, nil
}

// FindLatest returns the most recently recorded transactions for the
// dashboard feed.
func (tr *transactionRepository) FindLatest(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.TransactionWithCustomer, error) {
	query := transactionSelect + `
		WHERE t.user_id = $1
		ORDER BY t.created_at DESC
		LIMIT $2
	`

	rows, err := tr.db.Query(ctx, query, userID, limit)
	if err != nil {
		tr.log.Error("Failed to find latest transactions",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find latest transactions for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var txs []*entity.TransactionWithCustomer
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			tr.log.Error("Failed to scan transaction row", zap.Error(err))
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}
		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		tr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate transaction rows: %w", err)
	}

	return txs, nil
}
