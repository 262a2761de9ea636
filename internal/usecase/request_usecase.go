package usecase

import (
	"context"
	"time"

	"github.com/Praveenramisetti76/ShareSphere/internal/domain/entity"
	"github.com/Praveenramisetti76/ShareSphere/internal/domain/repository"
	"github.com/Praveenramisetti76/ShareSphere/pkg/errors"
)

type RequestUseCase struct {
	requestRepo repository.RequestRepository
	itemRepo    repository.ItemRepository
	userRepo    repository.UserRepository
}

func NewRequestUseCase(
	requestRepo repository.RequestRepository,
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
) *RequestUseCase {
	return &RequestUseCase{
		requestRepo: requestRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
	}
}

// RequestWithDetails pairs a request with requester, owner and item identity
// resolved for display.
type RequestWithDetails struct {
	*entity.Request
	Requester *entity.UserSummary `json:"requester,omitempty"`
	Owner     *entity.UserSummary `json:"owner,omitempty"`
	Item      *entity.ItemSummary `json:"item,omitempty"`
}

func (uc *RequestUseCase) CreateRequest(ctx context.Context, requesterID, itemID, message string) (*RequestWithDetails, error) {
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if item.OwnerID == requesterID {
		return nil, errors.SelfReference("Cannot request your own item")
	}

	// One active request per (requester, item). Rejected or completed
	// history does not block a new one.
	existing, err := uc.requestRepo.FindActive(ctx, requesterID, itemID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.DuplicateRequest("Request already exists for this item")
	}

	now := time.Now()
	request := &entity.Request{
		RequesterID: requesterID,
		ItemID:      itemID,
		OwnerID:     item.OwnerID, // snapshot, not a live reference
		Status:      entity.RequestStatusPending,
		Message:     message,
		RequestedAt: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	return uc.withDetails(ctx, request), nil
}

// ListReceived returns requests addressed to the owner, newest first.
func (uc *RequestUseCase) ListReceived(ctx context.Context, ownerID string) ([]*RequestWithDetails, error) {
	requests, err := uc.requestRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return uc.withDetailsAll(ctx, requests), nil
}

// ListSent returns requests the user has made, newest first.
func (uc *RequestUseCase) ListSent(ctx context.Context, requesterID string) ([]*RequestWithDetails, error) {
	requests, err := uc.requestRepo.ListByRequester(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	return uc.withDetailsAll(ctx, requests), nil
}

// RespondToRequest moves a request through the approval workflow. Only the
// owner snapshot taken at creation may respond, and transitions outside
// pending→{approved,rejected}, approved→{completed} are rejected, so a
// request in a terminal state is frozen.
func (uc *RequestUseCase) RespondToRequest(ctx context.Context, id, actingUserID, newStatus, responseMessage string) (*RequestWithDetails, error) {
	if !entity.ValidRequestStatus(newStatus) || newStatus == entity.RequestStatusPending {
		return nil, errors.BadRequest("Invalid request status", nil)
	}

	request, err := uc.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if request.OwnerID != actingUserID {
		return nil, errors.Forbidden("Not authorized to update this request", nil)
	}

	if !request.CanTransitionTo(newStatus) {
		return nil, errors.Conflict("Request status cannot change from " + request.Status + " to " + newStatus)
	}

	// The repository re-checks the transition inside a transaction; two
	// racing responses cannot both apply.
	updated, err := uc.requestRepo.Respond(ctx, id, newStatus, responseMessage)
	if err != nil {
		return nil, err
	}

	return uc.withDetails(ctx, updated), nil
}

func (uc *RequestUseCase) withDetails(ctx context.Context, request *entity.Request) *RequestWithDetails {
	resolved := &RequestWithDetails{Request: request}

	if requester, err := uc.userRepo.GetByID(ctx, request.RequesterID); err == nil {
		resolved.Requester = requester.Summary()
	}
	if owner, err := uc.userRepo.GetByID(ctx, request.OwnerID); err == nil {
		resolved.Owner = owner.Summary()
	}
	if item, err := uc.itemRepo.GetByID(ctx, request.ItemID); err == nil {
		resolved.Item = item.Summary()
	}

	return resolved
}

func (uc *RequestUseCase) withDetailsAll(ctx context.Context, requests []*entity.Request) []*RequestWithDetails {
	resolved := make([]*RequestWithDetails, len(requests))
	for i, request := range requests {
		resolved[i] = uc.withDetails(ctx, request)
	}
	return resolved
}
