package usecase

import (
	"context"
	"fmt"
	"time"

	"ledger-book/internal/data/entity"
	"ledger-book/internal/data/repository"
	"ledger-book/internal/dto/request"
	"ledger-book/internal/dto/response"
	"ledger-book/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReminderService interface {
	List(ctx context.Context, userID uuid.UUID, status, customerID string) ([]response.ReminderResponse, error)
	Get(ctx context.Context, userID, reminderID uuid.UUID) (*response.ReminderResponse, error)
	Create(ctx context.Context, userID uuid.UUID, req *request.CreateReminderRequest) (*response.ReminderResponse, error)
	Update(ctx context.Context, userID, reminderID uuid.UUID, req *request.UpdateReminderRequest) (*response.ReminderResponse, error)
	Delete(ctx context.Context, userID, reminderID uuid.UUID) error
}

type reminderService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReminderService(repo *repository.Repository, log *zap.Logger) ReminderService {
	return &reminderService{
		repo: repo,
		log:  log,
	}
}

func (rs *reminderService) List(ctx context.Context, userID uuid.UUID, status, customerID string) ([]response.ReminderResponse, error) {
	// Invalid filter values are ignored rather than rejected.
	var statusFilter *entity.ReminderStatus
	if entity.ValidReminderStatus(status) {
		s := entity.ReminderStatus(status)
		statusFilter = &s
	}
	var customerFilter *uuid.UUID
	if customerID != "" {
		if id, err := uuid.Parse(customerID); err == nil {
			customerFilter = &id
		}
	}

	reminders, err := rs.repo.Reminder.FindAll(ctx, userID, statusFilter, customerFilter)
	if err != nil {
		rs.log.Error("Failed to list reminders", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to get reminders")
	}

	reminderResponses := make([]response.ReminderResponse, len(reminders))
	for i, reminder := range reminders {
		reminderResponses[i] = response.NewReminderResponse(reminder)
	}
	return reminderResponses, nil
}

func (rs *reminderService) Get(ctx context.Context, userID, reminderID uuid.UUID) (*response.ReminderResponse, error) {
	reminder, err := rs.repo.Reminder.FindByID(ctx, reminderID, userID)
	if err != nil {
		rs.log.Error("Failed to find reminder", zap.Error(err), zap.String("reminder_id", reminderID.String()))
		return nil, fmt.Errorf("failed to get reminder")
	}
	if reminder == nil {
		return nil, fmt.Errorf("reminder not found")
	}

	resp := response.NewReminderResponse(reminder)
	return &resp, nil
}

func (rs *reminderService) Create(ctx context.Context, userID uuid.UUID, req *request.CreateReminderRequest) (*response.ReminderResponse, error) {
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("customer not found")
	}

	customer, err := rs.repo.Customer.FindByID(ctx, customerID, userID)
	if err != nil {
		rs.log.Error("Failed to verify customer", zap.Error(err), zap.String("customer_id", customerID.String()))
		return nil, fmt.Errorf("failed to create reminder")
	}
	if customer == nil {
		return nil, fmt.Errorf("customer not found")
	}

	dueDate, err := utils.ParseDate(req.DueDate)
	if err != nil {
		return nil, fmt.Errorf("invalid due date")
	}

	now := time.Now()
	reminder := &entity.Reminder{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:     userID,
		CustomerID: customerID,
		DueAmount:  req.DueAmount,
		DueDate:    dueDate,
		Channel:    entity.ReminderChannel(req.Channel),
		Status:     entity.ReminderStatusPending,
	}

	if err := rs.repo.Reminder.Create(ctx, reminder); err != nil {
		rs.log.Error("Failed to create reminder", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to create reminder")
	}

	rs.log.Info("Reminder created",
		zap.String("reminder_id", reminder.ID.String()),
		zap.String("customer_id", customerID.String()))

	created, err := rs.repo.Reminder.FindByID(ctx, reminder.ID, userID)
	if err != nil || created == nil {
		rs.log.Error("Failed to reload reminder after create", zap.Error(err), zap.String("reminder_id", reminder.ID.String()))
		return nil, fmt.Errorf("failed to create reminder")
	}

	resp := response.NewReminderResponse(created)
	return &resp, nil
}

func (rs *reminderService) Update(ctx context.Context, userID, reminderID uuid.UUID, req *request.UpdateReminderRequest) (*response.ReminderResponse, error) {
	existing, err := rs.repo.Reminder.FindByID(ctx, reminderID, userID)
	if err != nil {
		rs.log.Error("Failed to find reminder for update", zap.Error(err), zap.String("reminder_id", reminderID.String()))
		return nil, fmt.Errorf("failed to get reminder")
	}
	if existing == nil {
		return nil, fmt.Errorf("reminder not found")
	}

	reminder := existing.Reminder

	if req.DueAmount != nil {
		reminder.DueAmount = *req.DueAmount
	}
	if req.DueDate != nil {
		dueDate, err := utils.ParseDate(*req.DueDate)
		if err != nil {
			return nil, fmt.Errorf("invalid due date")
		}
		reminder.DueDate = dueDate
	}
	if req.Channel != nil {
		reminder.Channel = entity.ReminderChannel(*req.Channel)
	}
	if req.Status != nil {
		reminder.Status = entity.ReminderStatus(*req.Status)
	}

	reminder.UpdatedAt = time.Now()

	if err := rs.repo.Reminder.Update(ctx, &reminder); err != nil {
		rs.log.Error("Failed to update reminder", zap.Error(err), zap.String("reminder_id", reminderID.String()))
		return nil, fmt.Errorf("failed to update reminder")
	}

	updated, err := rs.repo.Reminder.FindByID(ctx, reminderID, userID)
	if err != nil || updated == nil {
		rs.log.Error("Failed to reload reminder after update", zap.Error(err), zap.String("reminder_id", reminderID.String()))
		return nil, fmt.Errorf("failed to update reminder")
	}

	rs.log.Info("Reminder updated", zap.String("reminder_id", reminderID.String()))

	resp := response.NewReminderResponse(updated)
	return &resp, nil
}

func (rs *reminderService) Delete(ctx context.Context, userID, reminderID uuid.UUID) error {
	existing, err := rs.repo.Reminder.FindByID(ctx, reminderID, userID)
	if err != nil {
		rs.log.Error("Failed to find reminder for delete", zap.Error(err), zap.String("reminder_id", reminderID.String()))
		return fmt.Errorf("failed to delete reminder")
	}
	if existing == nil {
		return fmt.Errorf("reminder not found")
	}

	if err := rs.repo.Reminder.Delete(ctx, reminderID, userID); err != nil {
		rs.log.Error("Failed to delete reminder", zap.Error(err), zap.String("reminder_id", reminderID.String()))
		return fmt.Errorf("failed to delete reminder")
	}

	rs.log.Info("Reminder deleted",
		zap.String("reminder_id", reminderID.String()),
		zap.String("user_id", userID.String()))

	return nil
}
