package usecase

import (
	"context"
	"fmt"
	"time"

	"ledger-book/internal/data/repository"
	"ledger-book/internal/dto/request"
	"ledger-book/internal/dto/response"
	"ledger-book/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
	Update(ctx context.Context, userID uuid.UUID, req *request.UpdateUserRequest) (*response.UserResponse, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log,
	}
}

func (us *userService) GetByID(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := us.userRepo.FindByID(ctx, userID)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to get user")
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	resp := response.NewUserResponse(user)
	return &resp, nil
}

func (us *userService) Update(ctx context.Context, userID uuid.UUID, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	user, err := us.userRepo.FindByID(ctx, userID)
	if err != nil {
		us.log.Error("Failed to find user for update", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to get user")
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	// A user updating their own email/phone to its current value must not
	// trip the duplicate check; the check excludes their own record.
	if req.Email != nil && *req.Email != user.Email {
		taken, err := us.userRepo.EmailExists(ctx, *req.Email, &userID)
		if err != nil {
			us.log.Error("Failed to check email", zap.Error(err), zap.String("email", *req.Email))
			return nil, fmt.Errorf("failed to check email")
		}
		if taken {
			return nil, fmt.Errorf("email already exists")
		}
		user.Email = *req.Email
	}

	if req.Phone != nil && *req.Phone != user.Phone {
		taken, err := us.userRepo.PhoneExists(ctx, *req.Phone, &userID)
		if err != nil {
			us.log.Error("Failed to check phone", zap.Error(err), zap.String("phone", *req.Phone))
			return nil, fmt.Errorf("failed to check phone")
		}
		if taken {
			return nil, fmt.Errorf("phone number already exists")
		}
		user.Phone = *req.Phone
	}

	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			us.log.Error("Failed to hash password", zap.Error(err))
			return nil, fmt.Errorf("failed to process password")
		}
		user.PasswordHash = hashed
	}

	if req.Name != nil {
		user.Name = utils.SanitizeString(*req.Name)
	}
	if req.Address != nil {
		user.Address = utils.SanitizeStringPtr(req.Address)
	}
	if req.ProfileImage != nil {
		user.ProfileImage = req.ProfileImage
	}

	user.UpdatedAt = time.Now()

	if err := us.userRepo.Update(ctx, user); err != nil {
		us.log.Error("Failed to update user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to update user")
	}

	// Re-fetch for a consistent representation
	updated, err := us.userRepo.FindByID(ctx, userID)
	if err != nil || updated == nil {
		us.log.Error("Failed to reload user after update", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to update user")
	}

	us.log.Info("User updated", zap.String("user_id", userID.String()))

	resp := response.NewUserResponse(updated)
	return &resp, nil
}

func (us *userService) Delete(ctx context.Context, userID uuid.UUID) error {
	user, err := us.userRepo.FindByID(ctx, userID)
	if err != nil {
		us.log.Error("Failed to find user for delete", zap.Error(err), zap.String("user_id", userID.String()))
		return fmt.Errorf("failed to delete user")
	}
	if user == nil {
		return fmt.Errorf("user not found")
	}

	if err := us.userRepo.Deactivate(ctx, userID); err != nil {
		us.log.Error("Failed to deactivate user", zap.Error(err), zap.String("user_id", userID.String()))
		return fmt.Errorf("failed to delete user")
	}

	us.log.Info("User deleted", zap.String("user_id", userID.String()), zap.String("email", user.Email))
	return nil
}
