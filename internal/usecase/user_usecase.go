package usecase

import (
	"context"
	"time"

	"github.com/Praveenramisetti76/ShareSphere/internal/domain/entity"
	"github.com/Praveenramisetti76/ShareSphere/internal/domain/repository"
	"github.com/Praveenramisetti76/ShareSphere/pkg/errors"
)

type UserUseCase struct {
	userRepo repository.UserRepository
	itemRepo repository.ItemRepository
}

func NewUserUseCase(userRepo repository.UserRepository, itemRepo repository.ItemRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		itemRepo: itemRepo,
	}
}

// UserProfile is the public profile view with listing counts attached.
type UserProfile struct {
	*entity.User
	ItemsCount          int64 `json:"items_count"`
	AvailableItemsCount int64 `json:"available_items_count"`
}

type UpdatePreferencesInput struct {
	Notifications *entity.NotificationPrefs
	Privacy       *entity.PrivacyPrefs
}

func (uc *UserUseCase) GetProfile(ctx context.Context, id string) (*UserProfile, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	itemsCount, err := uc.itemRepo.CountByOwner(ctx, id, "")
	if err != nil {
		return nil, err
	}

	availableCount, err := uc.itemRepo.CountByOwner(ctx, id, entity.ItemStatusAvailable)
	if err != nil {
		return nil, err
	}

	return &UserProfile{
		User:                user,
		ItemsCount:          itemsCount,
		AvailableItemsCount: availableCount,
	}, nil
}

// ListUsers returns everyone except the caller, for picking a message
// recipient.
func (uc *UserUseCase) ListUsers(ctx context.Context, excludeID string) ([]*entity.UserSummary, error) {
	users, err := uc.userRepo.List(ctx, excludeID)
	if err != nil {
		return nil, err
	}

	summaries := make([]*entity.UserSummary, len(users))
	for i, user := range users {
		summaries[i] = user.Summary()
	}

	return summaries, nil
}

func (uc *UserUseCase) SearchUsers(ctx context.Context, query, city string, page, limit int) ([]*entity.User, int64, error) {
	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}
	return uc.userRepo.Search(ctx, query, city, limit, offset)
}

// GetStats aggregates a user's listing activity for the profile page.
func (uc *UserUseCase) GetStats(ctx context.Context, id string) (*repository.OwnerItemStats, error) {
	if _, err := uc.userRepo.GetByID(ctx, id); err != nil {
		return nil, errors.NotFound("User", err)
	}
	return uc.itemRepo.OwnerStats(ctx, id)
}

func (uc *UserUseCase) UpdatePreferences(ctx context.Context, id string, input UpdatePreferencesInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	if input.Notifications != nil {
		user.Preferences.Notifications = *input.Notifications
	}
	if input.Privacy != nil {
		user.Preferences.Privacy = *input.Privacy
	}
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// RateUser folds a 1-5 rating into the target's running average.
func (uc *UserUseCase) RateUser(ctx context.Context, targetID, raterID string, rating float64) (*entity.UserRating, error) {
	if targetID == raterID {
		return nil, errors.SelfReference("Cannot rate yourself")
	}

	if rating < 1 || rating > 5 {
		return nil, errors.BadRequest("Rating must be between 1 and 5", nil)
	}

	if _, err := uc.userRepo.GetByID(ctx, targetID); err != nil {
		return nil, errors.NotFound("User", err)
	}

	return uc.userRepo.AddRating(ctx, targetID, rating)
}
