package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Praveenramisetti76/ShareSphere/internal/domain/entity"
	"github.com/Praveenramisetti76/ShareSphere/pkg/errors"
)

func setupItemTest(t *testing.T) (*ItemUseCase, *fakeItemRepo) {
	t.Helper()

	userRepo := newFakeUserRepo()
	itemRepo := newFakeItemRepo()

	ctx := context.Background()
	require.NoError(t, userRepo.Create(ctx, &entity.User{
		ID:       "owner",
		Username: "owner",
		Location: entity.UserLocation{City: "Portland", State: "OR", Country: "US"},
	}))
	require.NoError(t, userRepo.Create(ctx, &entity.User{ID: "viewer", Username: "viewer"}))

	return NewItemUseCase(itemRepo, userRepo, 0), itemRepo
}

func validCreateInput() CreateItemInput {
	return CreateItemInput{
		Title:       "Old bookshelf",
		Description: "Solid pine, some scratches",
		Category:    "Furniture",
		Condition:   "Good",
		Images:      []string{"https://example.com/shelf.jpg"},
		SharingType: entity.SharingTypeGiveAway,
	}
}

func TestCreateItemDefaults(t *testing.T) {
	uc, _ := setupItemTest(t)

	item, err := uc.CreateItem(context.Background(), "owner", validCreateInput())
	require.NoError(t, err)

	assert.Equal(t, entity.ItemStatusAvailable, item.Status)
	// Location falls back to the owner's profile.
	assert.Equal(t, "Portland", item.Location.City)
	assert.True(t, item.Pickup.HomePickup)
	assert.True(t, item.ExpiresAt.After(item.CreatedAt))
	assert.Empty(t, item.Likes)
}

func TestCreateItemUsesConfiguredLifetime(t *testing.T) {
	_, itemRepo := setupItemTest(t)
	userRepo := newFakeUserRepo()
	ctx := context.Background()
	require.NoError(t, userRepo.Create(ctx, &entity.User{ID: "owner", Username: "owner"}))

	uc := NewItemUseCase(itemRepo, userRepo, 30*24*time.Hour)

	item, err := uc.CreateItem(ctx, "owner", validCreateInput())
	require.NoError(t, err)

	assert.WithinDuration(t, item.CreatedAt.Add(30*24*time.Hour), item.ExpiresAt, time.Minute)
}

func TestCreateItemDefaultLifetime(t *testing.T) {
	uc, _ := setupItemTest(t)

	item, err := uc.CreateItem(context.Background(), "owner", validCreateInput())
	require.NoError(t, err)

	assert.WithinDuration(t, item.CreatedAt.Add(entity.DefaultItemLifetime), item.ExpiresAt, time.Minute)
}

func TestCreateItemValidation(t *testing.T) {
	uc, _ := setupItemTest(t)
	ctx := context.Background()

	noImages := validCreateInput()
	noImages.Images = nil
	_, err := uc.CreateItem(ctx, "owner", noImages)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	badCategory := validCreateInput()
	badCategory.Category = "Spaceships"
	_, err = uc.CreateItem(ctx, "owner", badCategory)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	negativePrice := validCreateInput()
	negativePrice.Price = -5
	_, err = uc.CreateItem(ctx, "owner", negativePrice)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestUpdateItemOwnerOnly(t *testing.T) {
	uc, _ := setupItemTest(t)
	ctx := context.Background()

	item, err := uc.CreateItem(ctx, "owner", validCreateInput())
	require.NoError(t, err)

	title := "Updated title"
	_, err = uc.UpdateItem(ctx, item.ID, "viewer", UpdateItemInput{Title: &title})
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	updated, err := uc.UpdateItem(ctx, item.ID, "owner", UpdateItemInput{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Updated title", updated.Title)
}

func TestUpdateItemRejectsInvalidSharingType(t *testing.T) {
	uc, _ := setupItemTest(t)
	ctx := context.Background()

	item, err := uc.CreateItem(ctx, "owner", validCreateInput())
	require.NoError(t, err)

	bogus := "Rental"
	_, err = uc.UpdateItem(ctx, item.ID, "owner", UpdateItemInput{SharingType: &bogus})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	sell := entity.SharingTypeSell
	updated, err := uc.UpdateItem(ctx, item.ID, "owner", UpdateItemInput{SharingType: &sell})
	require.NoError(t, err)
	assert.Equal(t, entity.SharingTypeSell, updated.SharingType)
}

func TestUpdateItemStatusFollowsLifecycle(t *testing.T) {
	uc, _ := setupItemTest(t)
	ctx := context.Background()

	item, err := uc.CreateItem(ctx, "owner", validCreateInput())
	require.NoError(t, err)

	reserved := entity.ItemStatusReserved
	updated, err := uc.UpdateItem(ctx, item.ID, "owner", UpdateItemInput{Status: &reserved})
	require.NoError(t, err)
	assert.Equal(t, entity.ItemStatusReserved, updated.Status)

	given := entity.ItemStatusGivenAway
	updated, err = uc.UpdateItem(ctx, item.ID, "owner", UpdateItemInput{Status: &given})
	require.NoError(t, err)
	assert.Equal(t, entity.ItemStatusGivenAway, updated.Status)

	// Terminal status is frozen.
	available := entity.ItemStatusAvailable
	_, err = uc.UpdateItem(ctx, item.ID, "owner", UpdateItemInput{Status: &available})
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestToggleLikeIsAnInvolution(t *testing.T) {
	uc, itemRepo := setupItemTest(t)
	ctx := context.Background()

	item, err := uc.CreateItem(ctx, "owner", validCreateInput())
	require.NoError(t, err)

	liked, count, err := uc.ToggleLike(ctx, item.ID, "viewer")
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, 1, count)

	liked, count, err = uc.ToggleLike(ctx, item.ID, "viewer")
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, 0, count)

	stored, err := itemRepo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Likes)
}

func TestExpressInterestUpserts(t *testing.T) {
	uc, itemRepo := setupItemTest(t)
	ctx := context.Background()

	item, err := uc.CreateItem(ctx, "owner", validCreateInput())
	require.NoError(t, err)

	require.NoError(t, uc.ExpressInterest(ctx, item.ID, "viewer", "I want this"))
	require.NoError(t, uc.ExpressInterest(ctx, item.ID, "viewer", "still interested"))

	stored, err := itemRepo.GetByID(ctx, item.ID)
	require.NoError(t, err)

	// One entry per user, latest message wins.
	require.Len(t, stored.InterestedUsers, 1)
	assert.Equal(t, "still interested", stored.InterestedUsers[0].Message)
}

func TestExpressInterestInOwnItem(t *testing.T) {
	uc, _ := setupItemTest(t)
	ctx := context.Background()

	item, err := uc.CreateItem(ctx, "owner", validCreateInput())
	require.NoError(t, err)

	err = uc.ExpressInterest(ctx, item.ID, "owner", "mine anyway")
	assert.True(t, errors.Is(err, "SELF_REFERENCE"))
}

func TestDeleteItemOwnerOnly(t *testing.T) {
	uc, itemRepo := setupItemTest(t)
	ctx := context.Background()

	item, err := uc.CreateItem(ctx, "owner", validCreateInput())
	require.NoError(t, err)

	err = uc.DeleteItem(ctx, item.ID, "viewer")
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	require.NoError(t, uc.DeleteItem(ctx, item.ID, "owner"))

	_, err = itemRepo.GetByID(ctx, item.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestListItemsDefaultsToAvailable(t *testing.T) {
	uc, itemRepo := setupItemTest(t)
	ctx := context.Background()

	_, err := uc.CreateItem(ctx, "owner", validCreateInput())
	require.NoError(t, err)

	sold := validCreateInput()
	soldItem, err := uc.CreateItem(ctx, "owner", sold)
	require.NoError(t, err)
	soldItem.Status = entity.ItemStatusSold
	require.NoError(t, itemRepo.Update(ctx, soldItem))

	items, total, err := uc.ListItems(ctx, "", ListItemsInput{Page: 1, Limit: 20})
	require.NoError(t, err)

	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, entity.ItemStatusAvailable, items[0].Status)
}
