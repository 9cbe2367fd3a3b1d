package usecase

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/dentalhub/leads-api/internal/entity"
)

// UserProfileUseCase serves the session collaborator: it refreshes the
// profile row on every login event and answers the current-user query.
type UserProfileUseCase struct {
	Repo   entity.UserRepository
	Logger *zap.Logger
}

func NewUserProfileUseCase(repo entity.UserRepository, logger *zap.Logger) *UserProfileUseCase {
	return &UserProfileUseCase{Repo: repo, Logger: logger}
}

// Upsert creates or refreshes the profile keyed by the externally supplied
// identifier. Called once per login.
func (uc *UserProfileUseCase) Upsert(ctx context.Context, input UpsertUserInput) (*entity.User, error) {
	if strings.TrimSpace(input.ID) == "" {
		return nil, validationFailed([]ValidationError{{"id", "is required"}})
	}

	user := &entity.User{
		ID:              input.ID,
		Email:           input.Email,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		ProfileImageURL: input.ProfileImageURL,
	}

	if err := uc.Repo.Upsert(ctx, user); err != nil {
		uc.Logger.Error("failed to upsert user profile", zap.String("user_id", input.ID), zap.Error(err))
		return nil, storageFailed()
	}

	return user, nil
}

// GetByID returns the profile for an authenticated caller.
func (uc *UserProfileUseCase) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, &DomainError{Code: CodeNotFound, Message: "user not found"}
		}
		uc.Logger.Error("failed to fetch user profile", zap.String("user_id", id), zap.Error(err))
		return nil, storageFailed()
	}
	return user, nil
}
