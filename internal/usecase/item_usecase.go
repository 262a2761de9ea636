package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Praveenramisetti76/ShareSphere/internal/domain/entity"
	"github.com/Praveenramisetti76/ShareSphere/internal/domain/repository"
	"github.com/Praveenramisetti76/ShareSphere/pkg/errors"
	"github.com/Praveenramisetti76/ShareSphere/pkg/logger"
)

type ItemUseCase struct {
	itemRepo     repository.ItemRepository
	userRepo     repository.UserRepository
	itemLifetime time.Duration
}

func NewItemUseCase(itemRepo repository.ItemRepository, userRepo repository.UserRepository, itemLifetime time.Duration) *ItemUseCase {
	if itemLifetime <= 0 {
		itemLifetime = entity.DefaultItemLifetime
	}
	return &ItemUseCase{
		itemRepo:     itemRepo,
		userRepo:     userRepo,
		itemLifetime: itemLifetime,
	}
}

type CreateItemInput struct {
	Title        string
	Description  string
	Category     string
	Condition    string
	Images       []string
	SharingType  string
	Price        float64
	Location     entity.ItemLocation
	Tags         []string
	Dimensions   entity.ItemDimensions
	Pickup       *entity.PickupOptions
	Availability entity.ItemAvailability
	IsDonation   bool
	CharityInfo  entity.CharityInfo
}

type UpdateItemInput struct {
	Title        *string
	Description  *string
	Category     *string
	Condition    *string
	Images       []string
	Status       *string
	SharingType  *string
	Price        *float64
	Location     *entity.ItemLocation
	Tags         []string
	Dimensions   *entity.ItemDimensions
	Pickup       *entity.PickupOptions
	Availability *entity.ItemAvailability
}

type ListItemsInput struct {
	Category    string
	Condition   string
	SharingType string
	Status      string
	City        string
	Search      string
	MinPrice    float64
	MaxPrice    float64
	Sort        string
	Page        int
	Limit       int
}

// ItemWithOwner pairs a listing with the owner's public identity for display.
type ItemWithOwner struct {
	*entity.Item
	Owner *entity.UserSummary `json:"owner,omitempty"`
}

func (uc *ItemUseCase) CreateItem(ctx context.Context, ownerID string, input CreateItemInput) (*entity.Item, error) {
	if !entity.ValidItemCategory(input.Category) {
		return nil, errors.BadRequest("Invalid category", nil)
	}
	if !entity.ValidItemCondition(input.Condition) {
		return nil, errors.BadRequest("Invalid condition", nil)
	}
	if !entity.ValidSharingType(input.SharingType) {
		return nil, errors.BadRequest("Invalid sharing type", nil)
	}
	if len(input.Images) == 0 {
		return nil, errors.BadRequest("At least one image is required", nil)
	}
	if input.Price < 0 {
		return nil, errors.BadRequest("Price must be a positive number", nil)
	}

	owner, err := uc.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	pickup := entity.PickupOptions{HomePickup: true, PublicLocation: true}
	if input.Pickup != nil {
		pickup = *input.Pickup
	}

	location := input.Location
	if location == (entity.ItemLocation{}) {
		location = entity.ItemLocation{
			City:    owner.Location.City,
			State:   owner.Location.State,
			Country: owner.Location.Country,
		}
	}

	now := time.Now()
	item := &entity.Item{
		Title:           input.Title,
		Description:     input.Description,
		Category:        input.Category,
		Condition:       input.Condition,
		Images:          input.Images,
		OwnerID:         ownerID,
		Status:          entity.ItemStatusAvailable,
		SharingType:     input.SharingType,
		Price:           input.Price,
		Location:        location,
		Tags:            input.Tags,
		Dimensions:      input.Dimensions,
		Pickup:          pickup,
		Availability:    input.Availability,
		Likes:           []string{},
		InterestedUsers: []entity.Interest{},
		IsDonation:      input.IsDonation,
		CharityInfo:     input.CharityInfo,
		CreatedAt:       now,
		UpdatedAt:       now,
		ExpiresAt:       now.Add(uc.itemLifetime),
	}

	if err := uc.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// GetItemByID fetches a listing. An authenticated viewer bumps the view
// counter; the bump is fire-and-forget and never per-viewer deduplicated.
func (uc *ItemUseCase) GetItemByID(ctx context.Context, id, viewerID string) (*ItemWithOwner, error) {
	item, err := uc.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if viewerID != "" {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := uc.itemRepo.IncrementViews(ctx, id); err != nil {
				logger.Warn("Failed to increment views for item %s: %v", id, err)
			}
		}()
	}

	return uc.withOwner(ctx, item), nil
}

func (uc *ItemUseCase) ListItems(ctx context.Context, viewerID string, input ListItemsInput) ([]*ItemWithOwner, int64, error) {
	filter := make(map[string]interface{})

	if input.Status != "" {
		filter["status"] = input.Status
	} else {
		// Browsing defaults to what can still be requested.
		filter["status"] = entity.ItemStatusAvailable
	}
	if input.Category != "" {
		filter["category"] = input.Category
	}
	if input.Condition != "" {
		filter["condition"] = input.Condition
	}
	if input.SharingType != "" {
		filter["sharingType"] = input.SharingType
	}
	if input.City != "" {
		filter["city"] = input.City
	}
	if input.MinPrice > 0 {
		filter["min_price"] = input.MinPrice
	}
	if input.MaxPrice > 0 {
		filter["max_price"] = input.MaxPrice
	}

	offset := (input.Page - 1) * input.Limit
	if offset < 0 {
		offset = 0
	}

	items, total, err := uc.itemRepo.List(ctx, filter, input.Search, input.Sort, input.Limit, offset)
	if err != nil {
		return nil, 0, err
	}

	if viewerID != "" {
		ids := make([]string, len(items))
		for i, item := range items {
			ids[i] = item.ID
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			for _, id := range ids {
				if err := uc.itemRepo.IncrementViews(ctx, id); err != nil {
					logger.Warn("Failed to increment views for item %s: %v", id, err)
				}
			}
		}()
	}

	return uc.withOwners(ctx, items), total, nil
}

func (uc *ItemUseCase) ListByOwnerID(ctx context.Context, ownerID, status string, page, limit int) ([]*ItemWithOwner, int64, error) {
	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	items, total, err := uc.itemRepo.ListByOwner(ctx, ownerID, status, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	return uc.withOwners(ctx, items), total, nil
}

func (uc *ItemUseCase) UpdateItem(ctx context.Context, id, ownerID string, input UpdateItemInput) (*entity.Item, error) {
	item, err := uc.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if item.OwnerID != ownerID {
		return nil, errors.Forbidden("You don't have permission to update this item", nil)
	}

	if input.Status != nil && *input.Status != item.Status {
		if !item.CanTransitionTo(*input.Status) {
			return nil, errors.Conflict(fmt.Sprintf("Item status cannot change from %s to %s", item.Status, *input.Status))
		}
		item.Status = *input.Status
	}

	if input.Title != nil {
		item.Title = *input.Title
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Category != nil {
		if !entity.ValidItemCategory(*input.Category) {
			return nil, errors.BadRequest("Invalid category", nil)
		}
		item.Category = *input.Category
	}
	if input.Condition != nil {
		if !entity.ValidItemCondition(*input.Condition) {
			return nil, errors.BadRequest("Invalid condition", nil)
		}
		item.Condition = *input.Condition
	}
	if len(input.Images) > 0 {
		item.Images = input.Images
	}
	if input.SharingType != nil {
		if !entity.ValidSharingType(*input.SharingType) {
			return nil, errors.BadRequest("Invalid sharing type", nil)
		}
		item.SharingType = *input.SharingType
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, errors.BadRequest("Price must be a positive number", nil)
		}
		item.Price = *input.Price
	}
	if input.Location != nil {
		item.Location = *input.Location
	}
	if input.Tags != nil {
		item.Tags = input.Tags
	}
	if input.Dimensions != nil {
		item.Dimensions = *input.Dimensions
	}
	if input.Pickup != nil {
		item.Pickup = *input.Pickup
	}
	if input.Availability != nil {
		item.Availability = *input.Availability
	}
	item.UpdatedAt = time.Now()

	if err := uc.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (uc *ItemUseCase) DeleteItem(ctx context.Context, id, ownerID string) error {
	item, err := uc.itemRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if item.OwnerID != ownerID {
		return errors.Forbidden("You don't have permission to delete this item", nil)
	}

	return uc.itemRepo.Delete(ctx, id)
}

// ToggleLike flips the viewer's membership in the like set and returns the
// new state. Calling it twice restores the original state.
func (uc *ItemUseCase) ToggleLike(ctx context.Context, id, userID string) (bool, int, error) {
	return uc.itemRepo.ToggleLike(ctx, id, userID)
}

// ExpressInterest records or refreshes the user's interest entry on a
// listing. One entry per user; a repeat replaces the message and timestamp.
func (uc *ItemUseCase) ExpressInterest(ctx context.Context, id, userID, message string) error {
	item, err := uc.itemRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if item.OwnerID == userID {
		return errors.SelfReference("Cannot express interest in your own item")
	}

	return uc.itemRepo.UpsertInterest(ctx, id, entity.Interest{
		UserID:  userID,
		Message: message,
		Date:    time.Now(),
	})
}

func (uc *ItemUseCase) withOwner(ctx context.Context, item *entity.Item) *ItemWithOwner {
	resolved := &ItemWithOwner{Item: item}
	if owner, err := uc.userRepo.GetByID(ctx, item.OwnerID); err == nil {
		resolved.Owner = owner.Summary()
	}
	return resolved
}

func (uc *ItemUseCase) withOwners(ctx context.Context, items []*entity.Item) []*ItemWithOwner {
	cache := make(map[string]*entity.UserSummary)
	resolved := make([]*ItemWithOwner, len(items))

	for i, item := range items {
		summary, ok := cache[item.OwnerID]
		if !ok {
			if owner, err := uc.userRepo.GetByID(ctx, item.OwnerID); err == nil {
				summary = owner.Summary()
			}
			cache[item.OwnerID] = summary
		}
		resolved[i] = &ItemWithOwner{Item: item, Owner: summary}
	}

	return resolved
}
