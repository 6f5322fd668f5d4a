package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/flyfox-ai/funnel/internal/entity"
	"github.com/flyfox-ai/funnel/internal/infra/queue"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Upsert(ctx context.Context, lead *entity.Lead) (bool, error) {
	args := m.Called(ctx, lead)
	return args.Bool(0), args.Error(1)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) TransitionStatus(ctx context.Context, id, from, to, notes string) error {
	args := m.Called(ctx, id, from, to, notes)
	return args.Error(0)
}

func (m *MockLeadRepository) UpdateScore(ctx context.Context, id string, score int) error {
	args := m.Called(ctx, id, score)
	return args.Error(0)
}

// MockTrialRepository
type MockTrialRepository struct {
	mock.Mock
}

func (m *MockTrialRepository) Create(ctx context.Context, trial *entity.Trial) error {
	args := m.Called(ctx, trial)
	return args.Error(0)
}

func (m *MockTrialRepository) FindByID(ctx context.Context, id string) (*entity.Trial, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Trial), args.Error(1)
}

func (m *MockTrialRepository) FindLatestByLeadID(ctx context.Context, leadID string) (*entity.Trial, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Trial), args.Error(1)
}

// MockConversionRepository
type MockConversionRepository struct {
	mock.Mock
}

func (m *MockConversionRepository) Track(ctx context.Context, conv *entity.Conversion, activity *entity.SalesActivity) error {
	args := m.Called(ctx, conv, activity)
	return args.Error(0)
}

func (m *MockConversionRepository) Analytics(ctx context.Context) (*entity.ConversionAnalytics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ConversionAnalytics), args.Error(1)
}

// MockCustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(ctx context.Context, c *entity.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id string) (*entity.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Customer), args.Error(1)
}

func (m *MockCustomerRepository) SetGatewayCustomerID(ctx context.Context, id, gatewayID string) error {
	args := m.Called(ctx, id, gatewayID)
	return args.Error(0)
}

// MockSessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, s *entity.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSessionRepository) FindByToken(ctx context.Context, token string) (*entity.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Session), args.Error(1)
}

func (m *MockSessionRepository) Revoke(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// MockActivityRepository
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Append(ctx context.Context, a *entity.SalesActivity) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockActivityRepository) ListByLeadID(ctx context.Context, leadID string, limit int) ([]*entity.SalesActivity, error) {
	args := m.Called(ctx, leadID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.SalesActivity), args.Error(1)
}

// MockPaymentGateway
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreateCustomer(ctx context.Context, email, name string) (string, error) {
	args := m.Called(ctx, email, name)
	return args.String(0), args.Error(1)
}

func (m *MockPaymentGateway) CreateCharge(ctx context.Context, amountCents int64, currency, gatewayCustomerID string) (string, error) {
	args := m.Called(ctx, amountCents, currency, gatewayCustomerID)
	return args.String(0), args.Error(1)
}

// MockNotificationProducer
type MockNotificationProducer struct {
	mock.Mock
}

func (m *MockNotificationProducer) PublishNotification(ctx context.Context, payload queue.NotificationPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}
