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

type ReminderRepository interface {
	Create(ctx context.Context, reminder *entity.Reminder) error
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.ReminderWithCustomer, error)
	FindAll(ctx context.Context, userID uuid.UUID, status *entity.ReminderStatus, customerID *uuid.UUID) ([]*entity.ReminderWithCustomer, error)
	Update(ctx context.Context, reminder *entity.Reminder) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type reminderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReminderRepository(db database.PgxIface, log *zap.Logger) ReminderRepository {
	return &reminderRepository{
		db:  db,
		log: log.With(zap.String("repository", "reminder")),
	}
}

func (rr *reminderRepository) Create(ctx context.Context, reminder *entity.Reminder) error {
	query := `
		INSERT INTO reminders (id, user_id, customer_id, due_amount, due_date,
		                       channel, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := rr.db.Exec(ctx, query,
		reminder.ID,
		reminder.UserID,
		reminder.CustomerID,
		reminder.DueAmount,
		reminder.DueDate,
		reminder.Channel,
		reminder.Status,
		reminder.CreatedAt,
		reminder.UpdatedAt,
	)

	if err != nil {
		rr.log.Error("Failed to create reminder",
			zap.Error(err),
			zap.String("user_id", reminder.UserID.String()),
			zap.String("customer_id", reminder.CustomerID.String()),
		)
		return fmt.Errorf("create reminder for customer %s: %w", reminder.CustomerID.String(), err)
	}

	return nil
}

const reminderSelect = `
	SELECT r.id, r.user_id, r.customer_id, c.name, r.due_amount, r.due_date,
	       r.channel, r.status, r.created_at, r.updated_at
	FROM reminders r
	JOIN customers c ON c.id = r.customer_id
`

func scanReminder(row pgx.Row) (*entity.ReminderWithCustomer, error) {
	var reminder entity.ReminderWithCustomer
	err := row.Scan(
		&reminder.ID,
		&reminder.UserID,
		&reminder.CustomerID,
		&reminder.CustomerName,
		&reminder.DueAmount,
		&reminder.DueDate,
		&reminder.Channel,
		&reminder.Status,
		&reminder.CreatedAt,
		&reminder.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &reminder, nil
}

func (rr *reminderRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.ReminderWithCustomer, error) {
	query := reminderSelect + ` WHERE r.id = $1 AND r.user_id = $2`

	reminder, err := scanReminder(rr.db.QueryRow(ctx, query, id, userID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		rr.log.Error("Failed to find reminder by ID",
			zap.Error(err),
			zap.String("reminder_id", id.String()),
		)
		return nil, fmt.Errorf("find reminder by ID %s: %w", id.String(), err)
	}

	return reminder, nil
}

// FindAll retrieves an owner's reminders, soonest due first, optionally
// narrowed by status and customer.
func (rr *reminderRepository) FindAll(ctx context.Context, userID uuid.UUID, status *entity.ReminderStatus, customerID *uuid.UUID) ([]*entity.ReminderWithCustomer, error) {
	var qb strings.Builder
	qb.WriteString(reminderSelect)
	qb.WriteString(` WHERE r.user_id = $1`)

	args := []any{userID}
	if status != nil {
		fmt.Fprintf(&qb, " AND r.status = $%d", len(args)+1)
		args = append(args, *status)
	}
	if customerID != nil {
		fmt.Fprintf(&qb, " AND r.customer_id = $%d", len(args)+1)
		args = append(args, *customerID)
	}

	qb.WriteString(` ORDER BY r.due_date ASC, r.created_at DESC`)

	rows, err := rr.db.Query(ctx, qb.String(), args...)
	if err != nil {
		rr.log.Error("Failed to find all reminders",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find all reminders for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var reminders []*entity.ReminderWithCustomer
	for rows.Next() {
		reminder, err := scanReminder(rows)
		if err != nil {
			rr.log.Error("Failed to scan reminder row", zap.Error(err))
			return nil, fmt.Errorf("scan reminder row: %w", err)
		}
		reminders = append(reminders, reminder)
	}

	if err := rows.Err(); err != nil {
		rr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate reminder rows: %w", err)
	}

	return reminders, nil
}

func (rr *reminderRepository) Update(ctx context.Context, reminder *entity.Reminder) error {
	query := `
		UPDATE reminders
		SET due_amount = $3, due_date = $4, channel = $5, status = $6, updated_at = $7
		WHERE id = $1 AND user_id = $2
	`

	result, err := rr.db.Exec(ctx, query,
		reminder.ID,
		reminder.UserID,
		reminder.DueAmount,
		reminder.DueDate,
		reminder.Channel,
		reminder.Status,
		reminder.UpdatedAt,
	)

	if err != nil {
		rr.log.Error("Failed to update reminder",
			zap.Error(err),
			zap.String("reminder_id", reminder.ID.String()),
		)
		return fmt.Errorf("update reminder %s: %w", reminder.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reminder %s not found", reminder.ID.String())
	}

	return nil
}

func (rr *reminderRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query := `DELETE FROM reminders WHERE id = $1 AND user_id = $2`

	result, err := rr.db.Exec(ctx, query, id, userID)
	if err != nil {
		rr.log.Error("Failed to delete reminder",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete reminder %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reminder %s not found", id.String())
	}

	return nil
}
