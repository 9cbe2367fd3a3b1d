package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dentalhub/leads-api/internal/entity"
	"github.com/dentalhub/leads-api/internal/infra/queue"
)

type MockDemoRequestRepository struct {
	mock.Mock
}

func (m *MockDemoRequestRepository) Create(ctx context.Context, req *entity.DemoRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockDemoRequestRepository) List(ctx context.Context) ([]*entity.DemoRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.DemoRequest), args.Error(1)
}

func (m *MockDemoRequestRepository) UpdateStatus(ctx context.Context, id, status string) (*entity.DemoRequest, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DemoRequest), args.Error(1)
}

type MockNewsletterRepository struct {
	mock.Mock
}

func (m *MockNewsletterRepository) Subscribe(ctx context.Context, sub *entity.Newsletter) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockNewsletterRepository) Unsubscribe(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockNewsletterRepository) ListActive(ctx context.Context) ([]*entity.Newsletter, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Newsletter), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Upsert(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockDentistRepository struct {
	mock.Mock
}

func (m *MockDentistRepository) Create(ctx context.Context, d *entity.Dentist) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDentistRepository) FindByUserID(ctx context.Context, userID string) (*entity.Dentist, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Dentist), args.Error(1)
}

// capturePublisher records published lead events and signals on a channel so
// tests can wait for the fire-and-forget goroutine.
type capturePublisher struct {
	events chan queue.LeadCapturedPayload
}

func newCapturePublisher() *capturePublisher {
	return &capturePublisher{events: make(chan queue.LeadCapturedPayload, 8)}
}

func (p *capturePublisher) PublishLeadCaptured(ctx context.Context, payload queue.LeadCapturedPayload) error {
	p.events <- payload
	return nil
}
