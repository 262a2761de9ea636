package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Praveenramisetti76/ShareSphere/internal/domain/entity"
	"github.com/Praveenramisetti76/ShareSphere/pkg/errors"
)

func setupRequestTest(t *testing.T) (*RequestUseCase, *fakeUserRepo, *fakeItemRepo, *fakeRequestRepo) {
	t.Helper()

	userRepo := newFakeUserRepo()
	itemRepo := newFakeItemRepo()
	requestRepo := newFakeRequestRepo()

	ctx := context.Background()
	require.NoError(t, userRepo.Create(ctx, &entity.User{ID: "owner", Username: "owner"}))
	require.NoError(t, userRepo.Create(ctx, &entity.User{ID: "requester", Username: "requester"}))
	require.NoError(t, itemRepo.Create(ctx, &entity.Item{
		ID:      "item-1",
		Title:   "Bookshelf",
		OwnerID: "owner",
		Status:  entity.ItemStatusAvailable,
	}))

	return NewRequestUseCase(requestRepo, itemRepo, userRepo), userRepo, itemRepo, requestRepo
}

func TestCreateRequest(t *testing.T) {
	uc, _, _, _ := setupRequestTest(t)
	ctx := context.Background()

	request, err := uc.CreateRequest(ctx, "requester", "item-1", "I could use this")
	require.NoError(t, err)

	assert.Equal(t, entity.RequestStatusPending, request.Status)
	assert.Equal(t, "owner", request.OwnerID)
	assert.Equal(t, "requester", request.RequesterID)
	assert.NotNil(t, request.Item)
	assert.Equal(t, "Bookshelf", request.Item.Title)
}

func TestCreateRequestForOwnItem(t *testing.T) {
	uc, _, _, _ := setupRequestTest(t)

	_, err := uc.CreateRequest(context.Background(), "owner", "item-1", "")

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SELF_REFERENCE", appErr.Code)
}

func TestCreateRequestForMissingItem(t *testing.T) {
	uc, _, _, _ := setupRequestTest(t)

	_, err := uc.CreateRequest(context.Background(), "requester", "no-such-item", "")

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestCreateDuplicateRequestBlocked(t *testing.T) {
	uc, _, _, _ := setupRequestTest(t)
	ctx := context.Background()

	_, err := uc.CreateRequest(ctx, "requester", "item-1", "first")
	require.NoError(t, err)

	_, err = uc.CreateRequest(ctx, "requester", "item-1", "second")

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DUPLICATE_REQUEST", appErr.Code)
}

func TestNewRequestAllowedAfterRejection(t *testing.T) {
	uc, _, _, _ := setupRequestTest(t)
	ctx := context.Background()

	first, err := uc.CreateRequest(ctx, "requester", "item-1", "")
	require.NoError(t, err)

	_, err = uc.RespondToRequest(ctx, first.ID, "owner", entity.RequestStatusRejected, "sorry")
	require.NoError(t, err)

	// A rejected request no longer blocks the requester.
	second, err := uc.CreateRequest(ctx, "requester", "item-1", "trying again")
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusPending, second.Status)
}

func TestRespondToRequest(t *testing.T) {
	uc, _, _, _ := setupRequestTest(t)
	ctx := context.Background()

	request, err := uc.CreateRequest(ctx, "requester", "item-1", "")
	require.NoError(t, err)

	updated, err := uc.RespondToRequest(ctx, request.ID, "owner", entity.RequestStatusApproved, "come pick it up")
	require.NoError(t, err)

	assert.Equal(t, entity.RequestStatusApproved, updated.Status)
	assert.Equal(t, "come pick it up", updated.ResponseMessage)
	assert.NotNil(t, updated.RespondedAt)
}

func TestRespondRequiresOwner(t *testing.T) {
	uc, _, _, _ := setupRequestTest(t)
	ctx := context.Background()

	request, err := uc.CreateRequest(ctx, "requester", "item-1", "")
	require.NoError(t, err)

	_, err = uc.RespondToRequest(ctx, request.ID, "requester", entity.RequestStatusApproved, "")

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FORBIDDEN", appErr.Code)
}

func TestRespondToTerminalRequestRejected(t *testing.T) {
	uc, _, _, _ := setupRequestTest(t)
	ctx := context.Background()

	request, err := uc.CreateRequest(ctx, "requester", "item-1", "")
	require.NoError(t, err)

	_, err = uc.RespondToRequest(ctx, request.ID, "owner", entity.RequestStatusRejected, "")
	require.NoError(t, err)

	// Terminal requests are frozen: no second response may land.
	_, err = uc.RespondToRequest(ctx, request.ID, "owner", entity.RequestStatusApproved, "")

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CONFLICT", appErr.Code)
}

func TestRespondCannotSkipApproval(t *testing.T) {
	uc, _, _, _ := setupRequestTest(t)
	ctx := context.Background()

	request, err := uc.CreateRequest(ctx, "requester", "item-1", "")
	require.NoError(t, err)

	// pending -> completed is not in the workflow table.
	_, err = uc.RespondToRequest(ctx, request.ID, "owner", entity.RequestStatusCompleted, "")

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CONFLICT", appErr.Code)
}

func TestRespondRejectsInvalidStatus(t *testing.T) {
	uc, _, _, _ := setupRequestTest(t)
	ctx := context.Background()

	request, err := uc.CreateRequest(ctx, "requester", "item-1", "")
	require.NoError(t, err)

	for _, status := range []string{"pending", "cancelled", ""} {
		_, err = uc.RespondToRequest(ctx, request.ID, "owner", status, "")

		var appErr *errors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "BAD_REQUEST", appErr.Code, "status %q", status)
	}
}

func TestListSentAndReceived(t *testing.T) {
	uc, userRepo, itemRepo, _ := setupRequestTest(t)
	ctx := context.Background()

	require.NoError(t, userRepo.Create(ctx, &entity.User{ID: "third", Username: "third"}))
	require.NoError(t, itemRepo.Create(ctx, &entity.Item{
		ID:      "item-2",
		OwnerID: "third",
		Status:  entity.ItemStatusAvailable,
	}))

	_, err := uc.CreateRequest(ctx, "requester", "item-1", "")
	require.NoError(t, err)
	_, err = uc.CreateRequest(ctx, "requester", "item-2", "")
	require.NoError(t, err)

	sent, err := uc.ListSent(ctx, "requester")
	require.NoError(t, err)
	assert.Len(t, sent, 2)

	received, err := uc.ListReceived(ctx, "owner")
	require.NoError(t, err)
	assert.Len(t, received, 1)
	assert.Equal(t, "item-1", received[0].ItemID)
}
