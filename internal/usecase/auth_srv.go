package usecase

import (
	"context"
	"fmt"
	"time"

	"ledger-book/internal/data/entity"
	"ledger-book/internal/data/repository"
	"ledger-book/internal/dto/request"
	"ledger-book/internal/dto/response"
	"ledger-book/pkg/token"
	"ledger-book/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *token.Manager
	log      *zap.Logger
}

func NewAuthService(userRepo repository.UserRepository, tokens *token.Manager, log *zap.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		log:      log,
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	// Uniqueness checks run before the insert; the DB constraints stay as
	// the backstop for races.
	emailTaken, err := s.userRepo.EmailExists(ctx, req.Email, nil)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email")
	}
	if emailTaken {
		return nil, fmt.Errorf("email already exists")
	}

	phoneTaken, err := s.userRepo.PhoneExists(ctx, req.Phone, nil)
	if err != nil {
		s.log.Error("Failed to check phone", zap.Error(err), zap.String("phone", req.Phone))
		return nil, fmt.Errorf("failed to check phone")
	}
	if phoneTaken {
		return nil, fmt.Errorf("phone number already exists")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         utils.SanitizeString(req.Name),
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hashedPassword,
		Address:      utils.SanitizeStringPtr(req.Address),
		IsActive:     true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to create account")
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return s.issueAuthResponse(user)
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to find user")
	}

	// The same error for unknown email and wrong password; the response
	// must not reveal whether the email exists.
	if user == nil {
		s.log.Warn("Login attempt for unknown email", zap.String("email", req.Email))
		return nil, fmt.Errorf("invalid email or password")
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("invalid email or password")
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	return s.issueAuthResponse(user)
}

func (s *authService) issueAuthResponse(user *entity.User) (*response.AuthResponse, error) {
	signed, expiresAt, err := s.tokens.Issue(user.ID.String(), user.Email, user.Name)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to issue token")
	}

	return &response.AuthResponse{
		User:      response.NewUserResponse(user),
		Token:     signed,
		ExpiresAt: expiresAt,
	}, nil
}
