package repository

import (
	"context"
	"fmt"

	"ledger-book/internal/data/entity"
	"ledger-book/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	EmailExists(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error)
	PhoneExists(ctx context.Context, phone string, excludeID *uuid.UUID) (bool, error)
	Update(ctx context.Context, user *entity.User) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

// Create inserts a new user record into the database
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, name, email, phone, password_hash, address,
		                   profile_image, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := ur.db.Exec(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.Phone,
		user.PasswordHash,
		user.Address,
		user.ProfileImage,
		user.IsActive,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (ur *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `
		SELECT id, name, email, phone, password_hash, address,
		       profile_image, is_active, created_at, updated_at
		FROM users
		WHERE id = $1 AND is_active = TRUE
	`

	var user entity.User
	err := ur.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Phone,
		&user.PasswordHash,
		&user.Address,
		&user.ProfileImage,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return nil, fmt.Errorf("find user by ID %s: %w", id.String(), err)
	}

	return &user, nil
}

func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, name, email, phone, password_hash, address,
		       profile_image, is_active, created_at, updated_at
		FROM users
		WHERE email = $1 AND is_active = TRUE
	`

	var user entity.User
	err := ur.db.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Phone,
		&user.PasswordHash,
		&user.Address,
		&user.ProfileImage,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	return &user, nil
}

// EmailExists checks global email uniqueness. excludeID lets a user keep
// their own email on update without tripping the duplicate check.
func (ur *userRepository) EmailExists(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error) {
	query := `SELECT COUNT(*) FROM users WHERE email = $1 AND is_active = TRUE`
	args := []any{email}

	if excludeID != nil {
		query += ` AND id != $2`
		args = append(args, *excludeID)
	}

	var count int64
	err := ur.db.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		ur.log.Error("Failed to check email existence",
			zap.Error(err),
			zap.String("email", email),
		)
		return false, fmt.Errorf("check email exists %s: %w", email, err)
	}

	return count > 0, nil
}

func (ur *userRepository) PhoneExists(ctx context.Context, phone string, excludeID *uuid.UUID) (bool, error) {
	query := `SELECT COUNT(*) FROM users WHERE phone = $1 AND is_active = TRUE`
	args := []any{phone}

	if excludeID != nil {
		query += ` AND id != $2`
		args = append(args, *excludeID)
	}

	var count int64
	err := ur.db.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		ur.log.Error("Failed to check phone existence",
			zap.Error(err),
			zap.String("phone", phone),
		)
		return false, fmt.Errorf("check phone exists %s: %w", phone, err)
	}

	return count > 0, nil
}

func (ur *userRepository) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		SET name = $2, email = $3, phone = $4, password_hash = $5,
		    address = $6, profile_image = $7, updated_at = $8
		WHERE id = $1 AND is_active = TRUE
	`

	result, err := ur.db.Exec(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.Phone,
		user.PasswordHash,
		user.Address,
		user.ProfileImage,
		user.UpdatedAt,
	)

	if err != nil {
		ur.log.Error("Failed to update user",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return fmt.Errorf("update user %s: %w", user.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", user.ID.String())
	}

	return nil
}

// Deactivate soft-deletes a user by clearing the active flag.
func (ur *userRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE users SET is_active = FALSE, updated_at = NOW() WHERE id = $1 AND is_active = TRUE`

	result, err := ur.db.Exec(ctx, query, id)
	if err != nil {
		ur.log.Error("Failed to deactivate user",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("deactivate user %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", id.String())
	}

	ur.log.Info("User deactivated", zap.String("id", id.String()))
	return nil
}
