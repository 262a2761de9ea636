package repository

import (
	"context"

	"github.com/Praveenramisetti76/ShareSphere/internal/domain/entity"
)

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// OwnerItemStats aggregates a user's listings for the profile stats view.
type OwnerItemStats struct {
	TotalItems     int64           `json:"total_items"`
	AvailableItems int64           `json:"available_items"`
	GivenAwayItems int64           `json:"given_away_items"`
	SoldItems      int64           `json:"sold_items"`
	TotalViews     int64           `json:"total_views"`
	TotalLikes     int64           `json:"total_likes"`
	CategoryStats  []CategoryCount `json:"category_stats"`
}

type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	Delete(ctx context.Context, id string) error

	// List applies equality filters (category, condition, sharingType, city,
	// status) plus min_price/max_price range keys, an optional free-text
	// search over title/description/tags/category, and one of the named
	// sort modes (newest, oldest, price-low, price-high, popular).
	List(ctx context.Context, filter map[string]interface{}, search, sort string, limit, offset int) ([]*entity.Item, int64, error)
	ListByOwner(ctx context.Context, ownerID, status string, limit, offset int) ([]*entity.Item, int64, error)
	CountByOwner(ctx context.Context, ownerID, status string) (int64, error)

	// Engagement counters. IncrementViews is a single-step atomic add;
	// ToggleLike and UpsertInterest run as store transactions so concurrent
	// toggles cannot lose updates.
	IncrementViews(ctx context.Context, id string) error
	ToggleLike(ctx context.Context, id, userID string) (liked bool, likeCount int, err error)
	UpsertInterest(ctx context.Context, id string, interest entity.Interest) error

	OwnerStats(ctx context.Context, ownerID string) (*OwnerItemStats, error)
}
