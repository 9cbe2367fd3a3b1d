package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/dentalhub/leads-api/internal/entity"
)

const someRequestID = "6b9f2c84-1d2e-4a5b-9c3d-7e8f90123456"

func TestDemoRequestAdmin_UpdateStatus_RejectsUnknownLabel(t *testing.T) {
	repo := new(MockDemoRequestRepository)
	uc := NewDemoRequestAdminUseCase(repo, zap.NewNop())

	out, err := uc.UpdateStatus(context.Background(), someRequestID, "archived")

	assert.Nil(t, out)
	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, CodeInvalidStatus, domainErr.Code)
	assert.Equal(t, "status", domainErr.Fields[0].Field)
	repo.AssertNotCalled(t, "UpdateStatus")
}

func TestDemoRequestAdmin_UpdateStatus_UnknownIDIsNotFound(t *testing.T) {
	repo := new(MockDemoRequestRepository)
	repo.On("UpdateStatus", mock.Anything, someRequestID, entity.DemoStatusContacted).
		Return(nil, entity.ErrNotFound)

	uc := NewDemoRequestAdminUseCase(repo, zap.NewNop())

	out, err := uc.UpdateStatus(context.Background(), someRequestID, entity.DemoStatusContacted)

	assert.Nil(t, out)
	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, CodeNotFound, domainErr.Code)
}

func TestDemoRequestAdmin_UpdateStatus_MalformedIDIsNotFound(t *testing.T) {
	repo := new(MockDemoRequestRepository)
	uc := NewDemoRequestAdminUseCase(repo, zap.NewNop())

	out, err := uc.UpdateStatus(context.Background(), "not-a-uuid", entity.DemoStatusContacted)

	assert.Nil(t, out)
	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, CodeNotFound, domainErr.Code)
	repo.AssertNotCalled(t, "UpdateStatus")
}

func TestDemoRequestAdmin_UpdateStatus_AnyTransitionAllowed(t *testing.T) {
	// No state machine: completed back to pending is fine.
	repo := new(MockDemoRequestRepository)
	repo.On("UpdateStatus", mock.Anything, someRequestID, entity.DemoStatusPending).
		Return(&entity.DemoRequest{ID: someRequestID, Status: entity.DemoStatusPending}, nil)

	uc := NewDemoRequestAdminUseCase(repo, zap.NewNop())

	out, err := uc.UpdateStatus(context.Background(), someRequestID, entity.DemoStatusPending)

	assert.NoError(t, err)
	assert.Equal(t, entity.DemoStatusPending, out.Status)
	repo.AssertExpectations(t)
}

func TestDemoRequestAdmin_List(t *testing.T) {
	repo := new(MockDemoRequestRepository)
	repo.On("List", mock.Anything).Return([]*entity.DemoRequest{
		{ID: "a", Email: "a@b.com"},
		{ID: "b", Email: "a@b.com"},
	}, nil)

	uc := NewDemoRequestAdminUseCase(repo, zap.NewNop())

	out, err := uc.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, out, 2)
}
