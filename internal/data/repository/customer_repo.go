package repository

import (
	"context"
	"fmt"
	"strings"

	"ledger-book/internal/data/entity"
	"ledger-book/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Customer, error)
	FindAll(ctx context.Context, userID uuid.UUID, limit, offset int, search string) ([]*entity.Customer, error)
	FindAllWithBalance(ctx context.Context, userID uuid.UUID, limit, offset int, search string) ([]*entity.CustomerWithBalance, error)
	Count(ctx context.Context, userID uuid.UUID, search string) (int64, error)
	PhoneExists(ctx context.Context, phone string, userID uuid.UUID, excludeID *uuid.UUID) (bool, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type customerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCustomerRepository(db database.PgxIface, log *zap.Logger) CustomerRepository {
	return &customerRepository{
		db:  db,
		log: log.With(zap.String("repository", "customer")),
	}
}

func (cr *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, user_id, name, phone, email, address,
		                       category, credit_limit, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := cr.db.Exec(ctx, query,
		customer.ID,
		customer.UserID,
		customer.Name,
		customer.Phone,
		customer.Email,
		customer.Address,
		customer.Category,
		customer.CreditLimit,
		customer.CreatedAt,
		customer.UpdatedAt,
	)

	if err != nil {
		cr.log.Error("Failed to create customer",
			zap.Error(err),
			zap.String("user_id", customer.UserID.String()),
			zap.String("phone", customer.Phone),
		)
		return fmt.Errorf("create customer %s: %w", customer.Name, err)
	}

	return nil
}

func (cr *customerRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Customer, error) {
	query := `
		SELECT id, user_id, name, phone, email, address,
		       category, credit_limit, created_at, updated_at
		FROM customers
		WHERE id = $1 AND user_id = $2
	`

	var customer entity.Customer
	err := cr.db.QueryRow(ctx, query, id, userID).Scan(
		&customer.ID,
		&customer.UserID,
		&customer.Name,
		&customer.Phone,
		&customer.Email,
		&customer.Address,
		&customer.Category,
		&customer.CreditLimit,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to find customer by ID",
			zap.Error(err),
			zap.String("customer_id", id.String()),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find customer by ID %s: %w", id.String(), err)
	}

	return &customer, nil
}

// appendCustomerSearch ANDs in a case-insensitive substring match over
// name, phone, and email. Returns the extended args slice.
func appendCustomerSearch(qb *strings.Builder, args []any, search string) []any {
	if search == "" {
		return args
	}
	n := len(args) + 1
	fmt.Fprintf(qb, " AND (name ILIKE $%d OR phone ILIKE $%d OR email ILIKE $%d)", n, n, n)
	return append(args, "%"+search+"%")
}

// FindAll retrieves an owner's customers, name ascending, optionally
// narrowed by a search term.
func (cr *customerRepository) FindAll(ctx context.Context, userID uuid.UUID, limit, offset int, search string) ([]*entity.Customer, error) {
	var qb strings.Builder
	qb.WriteString(`
		SELECT id, user_id, name, phone, email, address,
		       category, credit_limit, created_at, updated_at
		FROM customers
		WHERE user_id = $1
	`)

	args := []any{userID}
	args = appendCustomerSearch(&qb, args, search)

	fmt.Fprintf(&qb, " ORDER BY name ASC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := cr.db.Query(ctx, qb.String(), args...)
	if err != nil {
		cr.log.Error("Failed to find all customers",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all customers for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var customers []*entity.Customer
	for rows.Next() {
		var customer entity.Customer
		err := rows.Scan(
			&customer.ID,
			&customer.UserID,
			&customer.Name,
			&customer.Phone,
			&customer.Email,
			&customer.Address,
			&customer.Category,
			&customer.CreditLimit,
			&customer.CreatedAt,
			&customer.UpdatedAt,
		)
		if err != nil {
			cr.log.Error("Failed to scan customer row", zap.Error(err))
			return nil, fmt.Errorf("scan customer row: %w", err)
		}
		customers = append(customers, &customer)
	}

	if err := rows.Err(); err != nil {
		cr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate customer rows: %w", err)
	}

	return customers, nil
}

// FindAllWithBalance is FindAll with the derived ledger balance joined in:
// sum of credits minus debits per customer, zero when no transactions.
func (cr *customerRepository) FindAllWithBalance(ctx context.Context, userID uuid.UUID, limit, offset int, search string) ([]*entity.CustomerWithBalance, error) {
	var qb strings.Builder
	qb.WriteString(`
		SELECT c.id, c.user_id, c.name, c.phone, c.email, c.address,
		       c.category, c.credit_limit, c.created_at, c.updated_at,
		       COALESCE(SUM(CASE WHEN t.type = 'credit' THEN t.amount ELSE -t.amount END), 0) AS balance
		FROM customers c
		LEFT JOIN transactions t ON t.customer_id = c.id
		WHERE c.user_id = $1
	`)

	args := []any{userID}
	if search != "" {
		n := len(args) + 1
		fmt.Fprintf(&qb, " AND (c.name ILIKE $%d OR c.phone ILIKE $%d OR c.email ILIKE $%d)", n, n, n)
		args = append(args, "%"+search+"%")
	}

	fmt.Fprintf(&qb, " GROUP BY c.id ORDER BY c.name ASC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := cr.db.Query(ctx, qb.String(), args...)
	if err != nil {
		cr.log.Error("Failed to find customers with balance",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find customers with balance for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var customers []*entity.CustomerWithBalance
	for rows.Next() {
		var customer entity.CustomerWithBalance
		err := rows.Scan(
			&customer.ID,
			&customer.UserID,
			&customer.Name,
			&customer.Phone,
			&customer.Email,
			&customer.Address,
			&customer.Category,
			&customer.CreditLimit,
			&customer.CreatedAt,
			&customer.UpdatedAt,
			&customer.Balance,
		)
		if err != nil {
			cr.log.Error("Failed to scan customer balance row", zap.Error(err))
			return nil, fmt.Errorf("scan customer balance row: %w", err)
		}
		customers = append(customers, &customer)
	}

	if err := rows.Err(); err != nil {
		cr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate customer balance rows: %w", err)
	}

	return customers, nil
}

// Count mirrors FindAll's predicate for pagination metadata.
func (cr *customerRepository) Count(ctx context.Context, userID uuid.UUID, search string) (int64, error) {
	var qb strings.Builder
	qb.WriteString(`SELECT COUNT(*) FROM customers WHERE user_id = $1`)

	args := []any{userID}
	args = appendCustomerSearch(&qb, args, search)

	var count int64
	err := cr.db.QueryRow(ctx, qb.String(), args...).Scan(&count)
	if err != nil {
		cr.log.Error("Failed to count customers",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count customers for user %s: %w", userID.String(), err)
	}

	return count, nil
}

// PhoneExists checks per-owner phone uniqueness with an optional
// exclude-id for update-in-place.
func (cr *customerRepository) PhoneExists(ctx context.Context, phone string, userID uuid.UUID, excludeID *uuid.UUID) (bool, error) {
	query := `SELECT COUNT(*) FROM customers WHERE phone = $1 AND user_id = $2`
	args := []any{phone, userID}

	if excludeID != nil {
		query += ` AND id != $3`
		args = append(args, *excludeID)
	}

	var count int64
	err := cr.db.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		cr.log.Error("Failed to check customer phone existence",
			zap.Error(err),
			zap.String("phone", phone),
			zap.String("user_id", userID.String()),
		)
		return false, fmt.Errorf("check customer phone exists %s: %w", phone, err)
	}

	return count > 0, nil
}

func (cr *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	query := `
		UPDATE customers
		SET name = $3, phone = $4, email = $5, address = $6,
		    category = $7, credit_limit = $8, updated_at = $9
		WHERE id = $1 AND user_id = $2
	`

	result, err := cr.db.Exec(ctx, query,
		customer.ID,
		customer.UserID,
		customer.Name,
		customer.Phone,
		customer.Email,
		customer.Address,
		customer.Category,
		customer.CreditLimit,
		customer.UpdatedAt,
	)

	if err != nil {
		cr.log.Error("Failed to update customer",
			zap.Error(err),
			zap.String("customer_id", customer.ID.String()),
		)
		return fmt.Errorf("update customer %s: %w", customer.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("customer %s not found", customer.ID.String())
	}

	return nil
}

func (cr *customerRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query := `DELETE FROM customers WHERE id = $1 AND user_id = $2`

	result, err := cr.db.Exec(ctx, query, id, userID)
	if err != nil {
		cr.log.Error("Failed to delete customer",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete customer %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("customer %s not found", id.String())
	}

	cr.log.Info("Customer deleted", zap.String("id", id.String()))
	return nil
}
