package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/dentalhub/leads-api/internal/entity"
)

func TestUserProfileUpsert_RequiresID(t *testing.T) {
	repo := new(MockUserRepository)
	uc := NewUserProfileUseCase(repo, zap.NewNop())

	out, err := uc.Upsert(context.Background(), UpsertUserInput{Email: "demo@dentalautomations.io"})

	assert.Nil(t, out)
	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "id", domainErr.Fields[0].Field)
	repo.AssertNotCalled(t, "Upsert")
}

func TestUserProfileUpsert_RefreshesTimestamps(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("Upsert", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		u := args.Get(1).(*entity.User)
		u.CreatedAt = time.Now().Add(-time.Hour)
		u.UpdatedAt = time.Now()
	}).Return(nil)

	uc := NewUserProfileUseCase(repo, zap.NewNop())

	out, err := uc.Upsert(context.Background(), UpsertUserInput{
		ID:        "demo-user-123",
		Email:     "demo@dentalautomations.io",
		FirstName: "Dr. Sarah",
	})

	assert.NoError(t, err)
	assert.Equal(t, "demo-user-123", out.ID)
	assert.True(t, out.UpdatedAt.After(out.CreatedAt))
	repo.AssertExpectations(t)
}

func TestUserProfileGetByID_NotFound(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, "missing").Return(nil, entity.ErrNotFound)

	uc := NewUserProfileUseCase(repo, zap.NewNop())

	out, err := uc.GetByID(context.Background(), "missing")

	assert.Nil(t, out)
	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, CodeNotFound, domainErr.Code)
}

func TestDentistProfileCreate_RequiresPracticeName(t *testing.T) {
	repo := new(MockDentistRepository)
	uc := NewDentistProfileUseCase(repo, zap.NewNop())

	out, err := uc.Create(context.Background(), "demo-user-123", CreateDentistInput{})

	assert.Nil(t, out)
	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "practiceName", domainErr.Fields[0].Field)
	repo.AssertNotCalled(t, "Create")
}

func TestDentistProfileCreate_DuplicateLicense(t *testing.T) {
	repo := new(MockDentistRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(entity.ErrConflict)

	uc := NewDentistProfileUseCase(repo, zap.NewNop())

	out, err := uc.Create(context.Background(), "demo-user-123", CreateDentistInput{
		PracticeName:  "Bright Smiles",
		LicenseNumber: "DDS-100",
	})

	assert.Nil(t, out)
	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "licenseNumber", domainErr.Fields[0].Field)
}
