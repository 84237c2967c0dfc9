package usecase

import (
	"context"
	"time"

	"ledger-book/internal/data/entity"
	"ledger-book/internal/data/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// In-memory repository fakes. They implement just enough of the real
// postgres behavior for the service tests: owner scoping, is_active
// filtering, and exclude-id uniqueness checks.

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	u := *user
	f.users[user.ID] = &u
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok || !u.IsActive {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email && u.IsActive {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) EmailExists(_ context.Context, email string, excludeID *uuid.UUID) (bool, error) {
	for _, u := range f.users {
		if !u.IsActive || u.Email != email {
			continue
		}
		if excludeID != nil && u.ID == *excludeID {
			continue
		}
		return true, nil
	}
	return false, nil
}

func (f *fakeUserRepo) PhoneExists(_ context.Context, phone string, excludeID *uuid.UUID) (bool, error) {
	for _, u := range f.users {
		if !u.IsActive || u.Phone != phone {
			continue
		}
		if excludeID != nil && u.ID == *excludeID {
			continue
		}
		return true, nil
	}
	return false, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	u := *user
	f.users[user.ID] = &u
	return nil
}

func (f *fakeUserRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	if u, ok := f.users[id]; ok {
		u.IsActive = false
	}
	return nil
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
}

func (f *fakeCustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	c := *customer
	f.customers[customer.ID] = &c
	return nil
}

func (f *fakeCustomerRepo) FindByID(_ context.Context, id, userID uuid.UUID) (*entity.Customer, error) {
	c, ok := f.customers[id]
	if !ok || c.UserID != userID {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (f *fakeCustomerRepo) FindAll(_ context.Context, userID uuid.UUID, limit, offset int, search string) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range f.customers {
		if c.UserID == userID {
			copied := *c
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeCustomerRepo) FindAllWithBalance(_ context.Context, userID uuid.UUID, limit, offset int, search string) ([]*entity.CustomerWithBalance, error) {
	var out []*entity.CustomerWithBalance
	for _, c := range f.customers {
		if c.UserID == userID {
			out = append(out, &entity.CustomerWithBalance{Customer: *c, Balance: decimal.Zero})
		}
	}
	return out, nil
}

func (f *fakeCustomerRepo) Count(_ context.Context, userID uuid.UUID, search string) (int64, error) {
	var n int64
	for _, c := range f.customers {
		if c.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (f *fakeCustomerRepo) PhoneExists(_ context.Context, phone string, userID uuid.UUID, excludeID *uuid.UUID) (bool, error) {
	for _, c := range f.customers {
		if c.UserID != userID || c.Phone != phone {
			continue
		}
		if excludeID != nil && c.ID == *excludeID {
			continue
		}
		return true, nil
	}
	return false, nil
}

func (f *fakeCustomerRepo) Update(_ context.Context, customer *entity.Customer) error {
	c := *customer
	f.customers[customer.ID] = &c
	return nil
}

func (f *fakeCustomerRepo) Delete(_ context.Context, id, userID uuid.UUID) error {
	if c, ok := f.customers[id]; ok && c.UserID == userID {
		delete(f.customers, id)
	}
	return nil
}

type fakeTransactionRepo struct {
	customers    *fakeCustomerRepo
	transactions map[uuid.UUID]*entity.Transaction
}

func newFakeTransactionRepo(customers *fakeCustomerRepo) *fakeTransactionRepo {
	return &fakeTransactionRepo{
		customers:    customers,
		transactions: make(map[uuid.UUID]*entity.Transaction),
	}
}

func (f *fakeTransactionRepo) withCustomer(tx *entity.Transaction) *entity.TransactionWithCustomer {
	name := ""
	if c, ok := f.customers.customers[tx.CustomerID]; ok {
		name = c.Name
	}
	return &entity.TransactionWithCustomer{Transaction: *tx, CustomerName: name}
}

func (f *fakeTransactionRepo) matches(tx *entity.Transaction, filter *repository.TransactionFilter) bool {
	if filter == nil {
		return true
	}
	if filter.CustomerID != nil && tx.CustomerID != *filter.CustomerID {
		return false
	}
	if filter.Type != nil && tx.Type != *filter.Type {
		return false
	}
	if filter.StartDate != nil && tx.Date.Before(*filter.StartDate) {
		return false
	}
	if filter.EndDate != nil && tx.Date.After(*filter.EndDate) {
		return false
	}
	return true
}

func (f *fakeTransactionRepo) Create(_ context.Context, tx *entity.Transaction) error {
	copied := *tx
	f.transactions[tx.ID] = &copied
	return nil
}

func (f *fakeTransactionRepo) FindByID(_ context.Context, id, userID uuid.UUID) (*entity.TransactionWithCustomer, error) {
	tx, ok := f.transactions[id]
	if !ok || tx.UserID != userID {
		return nil, nil
	}
	return f.withCustomer(tx), nil
}

func (f *fakeTransactionRepo) FindAll(_ context.Context, userID uuid.UUID, filter *repository.TransactionFilter) ([]*entity.TransactionWithCustomer, error) {
	var out []*entity.TransactionWithCustomer
	for _, tx := range f.transactions {
		if tx.UserID == userID && f.matches(tx, filter) {
			out = append(out, f.withCustomer(tx))
		}
	}
	return out, nil
}

func (f *fakeTransactionRepo) Count(_ context.Context, userID uuid.UUID, filter *repository.TransactionFilter) (int64, error) {
	var n int64
	for _, tx := range f.transactions {
		if tx.UserID == userID && f.matches(tx, filter) {
			n++
		}
	}
	return n, nil
}

func (f *fakeTransactionRepo) Update(_ context.Context, tx *entity.Transaction) error {
	copied := *tx
	f.transactions[tx.ID] = &copied
	return nil
}

func (f *fakeTransactionRepo) Delete(_ context.Context, id, userID uuid.UUID) error {
	if tx, ok := f.transactions[id]; ok && tx.UserID == userID {
		delete(f.transactions, id)
	}
	return nil
}

func (f *fakeTransactionRepo) GetBalance(_ context.Context, userID uuid.UUID, customerID *uuid.UUID) (decimal.Decimal, error) {
	balance := decimal.Zero
	for _, tx := range f.transactions {
		if tx.UserID != userID {
			continue
		}
		if customerID != nil && tx.CustomerID != *customerID {
			continue
		}
		if tx.Type == entity.TransactionCredit {
			balance = balance.Add(tx.Amount)
		} else {
			balance = balance.Sub(tx.Amount)
		}
	}
	return balance, nil
}

func (f *fakeTransactionRepo) GetSummary(_ context.Context, userID uuid.UUID, startDate, endDate *time.Time) ([]repository.TypeSummary, error) {
	byType := map[entity.TransactionType]*repository.TypeSummary{}
	for _, tx := range f.transactions {
		if tx.UserID != userID {
			continue
		}
		if startDate != nil && tx.Date.Before(*startDate) {
			continue
		}
		if endDate != nil && tx.Date.After(*endDate) {
			continue
		}
		s, ok := byType[tx.Type]
		if !ok {
			s = &repository.TypeSummary{Type: tx.Type, Total: decimal.Zero}
			byType[tx.Type] = s
		}
		s.Count++
		s.Total = s.Total.Add(tx.Amount)
	}
	var out []repository.TypeSummary
	for _, s := range byType {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeTransactionRepo) FindLatest(_ context.Context, userID uuid.UUID, limit int) ([]*entity.TransactionWithCustomer, error) {
	var out []*entity.TransactionWithCustomer
	for _, tx := range f.transactions {
		if tx.UserID == userID && len(out) < limit {
			out = append(out, f.withCustomer(tx))
		}
	}
	return out, nil
}

type fakeReminderRepo struct {
	customers *fakeCustomerRepo
	reminders map[uuid.UUID]*entity.Reminder
}

func newFakeReminderRepo(customers *fakeCustomerRepo) *fakeReminderRepo {
	return &fakeReminderRepo{
		customers: customers,
		reminders: make(map[uuid.UUID]*entity.Reminder),
	}
}

func (f *fakeReminderRepo) withCustomer(reminder *entity.Reminder) *entity.ReminderWithCustomer {
	name := ""
	if c, ok := f.customers.customers[reminder.CustomerID]; ok {
		name = c.Name
	}
	return &entity.ReminderWithCustomer{Reminder: *reminder, CustomerName: name}
}

func (f *fakeReminderRepo) Create(_ context.Context, reminder *entity.Reminder) error {
	copied := *reminder
	f.reminders[reminder.ID] = &copied
	return nil
}

func (f *fakeReminderRepo) FindByID(_ context.Context, id, userID uuid.UUID) (*entity.ReminderWithCustomer, error) {
	reminder, ok := f.reminders[id]
	if !ok || reminder.UserID != userID {
		return nil, nil
	}
	return f.withCustomer(reminder), nil
}

func (f *fakeReminderRepo) FindAll(_ context.Context, userID uuid.UUID, status *entity.ReminderStatus, customerID *uuid.UUID) ([]*entity.ReminderWithCustomer, error) {
	var out []*entity.ReminderWithCustomer
	for _, reminder := range f.reminders {
		if reminder.UserID != userID {
			continue
		}
		if status != nil && reminder.Status != *status {
			continue
		}
		if customerID != nil && reminder.CustomerID != *customerID {
			continue
		}
		out = append(out, f.withCustomer(reminder))
	}
	return out, nil
}

func (f *fakeReminderRepo) Update(_ context.Context, reminder *entity.Reminder) error {
	copied := *reminder
	f.reminders[reminder.ID] = &copied
	return nil
}

func (f *fakeReminderRepo) Delete(_ context.Context, id, userID uuid.UUID) error {
	if reminder, ok := f.reminders[id]; ok && reminder.UserID == userID {
		delete(f.reminders, id)
	}
	return nil
}

// newTestRepository bundles the fakes the way the services expect.
func newTestRepository() (*repository.Repository, *fakeCustomerRepo, *fakeTransactionRepo) {
	users := newFakeUserRepo()
	customers := newFakeCustomerRepo()
	transactions := newFakeTransactionRepo(customers)
	reminders := newFakeReminderRepo(customers)
	return &repository.Repository{
		User:        users,
		Customer:    customers,
		Transaction: transactions,
		Reminder:    reminders,
	}, customers, transactions
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
