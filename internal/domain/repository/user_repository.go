package repository

import (
	"context"

	"github.com/Praveenramisetti76/ShareSphere/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, excludeID string) ([]*entity.User, error)
	Search(ctx context.Context, query, city string, limit, offset int) ([]*entity.User, int64, error)

	// AddRating folds a new rating into the user's running average in a
	// single atomic step.
	AddRating(ctx context.Context, id string, rating float64) (*entity.UserRating, error)
}
