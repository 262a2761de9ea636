package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Praveenramisetti76/ShareSphere/internal/domain/entity"
	"github.com/Praveenramisetti76/ShareSphere/internal/domain/repository"
	"github.com/Praveenramisetti76/ShareSphere/pkg/errors"
)

type firestoreRequestRepository struct {
	client *firestore.Client
}

func NewFirestoreRequestRepository(client *firestore.Client) repository.RequestRepository {
	return &firestoreRequestRepository{
		client: client,
	}
}

func (r *firestoreRequestRepository) Create(ctx context.Context, request *entity.Request) error {
	if request.ID == "" {
		request.ID = uuid.New().String()
	}

	now := time.Now()
	if request.CreatedAt.IsZero() {
		request.CreatedAt = now
	}
	if request.RequestedAt.IsZero() {
		request.RequestedAt = now
	}
	request.UpdatedAt = now

	_, err := r.client.Collection("requests").Doc(request.ID).Set(ctx, request)
	if err != nil {
		return errors.Internal("Failed to create request", err)
	}

	return nil
}

func (r *firestoreRequestRepository) GetByID(ctx context.Context, id string) (*entity.Request, error) {
	doc, err := r.client.Collection("requests").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Request", err)
		}
		return nil, errors.Internal("Failed to get request", err)
	}

	var request entity.Request
	if err := doc.DataTo(&request); err != nil {
		return nil, errors.Internal("Failed to parse request data", err)
	}

	return &request, nil
}

func (r *firestoreRequestRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Request, error) {
	return r.listByField(ctx, "ownerId", ownerID)
}

func (r *firestoreRequestRepository) ListByRequester(ctx context.Context, requesterID string) ([]*entity.Request, error) {
	return r.listByField(ctx, "requesterId", requesterID)
}

func (r *firestoreRequestRepository) listByField(ctx context.Context, field, value string) ([]*entity.Request, error) {
	iter := r.client.Collection("requests").Query.
		Where(field, "==", value).
		OrderBy("requestedAt", firestore.Desc).
		Documents(ctx)

	var requests []*entity.Request
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate requests", err)
		}

		var request entity.Request
		if err := doc.DataTo(&request); err != nil {
			return nil, errors.Internal("Failed to parse request data", err)
		}
		requests = append(requests, &request)
	}

	return requests, nil
}

func (r *firestoreRequestRepository) FindActive(ctx context.Context, requesterID, itemID string) (*entity.Request, error) {
	iter := r.client.Collection("requests").Query.
		Where("requesterId", "==", requesterID).
		Where("itemId", "==", itemID).
		Where("status", "in", []string{entity.RequestStatusPending, entity.RequestStatusApproved}).
		Limit(1).
		Documents(ctx)

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Internal("Failed to look up active request", err)
	}

	var request entity.Request
	if err := doc.DataTo(&request); err != nil {
		return nil, errors.Internal("Failed to parse request data", err)
	}

	return &request, nil
}

// Respond re-reads the request inside a transaction and applies the status
// change only if the workflow table still allows it, so concurrent responses
// cannot both land. RespondedAt is written once, on the first transition
// away from pending.
func (r *firestoreRequestRepository) Respond(ctx context.Context, id, newStatus, responseMessage string) (*entity.Request, error) {
	docRef := r.client.Collection("requests").Doc(id)

	var updated entity.Request

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Request", err)
			}
			return errors.Internal("Failed to get request", err)
		}

		var request entity.Request
		if err := doc.DataTo(&request); err != nil {
			return errors.Internal("Failed to parse request data", err)
		}

		if !request.CanTransitionTo(newStatus) {
			return errors.Conflict("Request status cannot change from " + request.Status + " to " + newStatus)
		}

		now := time.Now()
		request.Status = newStatus
		request.ResponseMessage = responseMessage
		if request.RespondedAt == nil {
			request.RespondedAt = &now
		}
		request.UpdatedAt = now

		updated = request
		return tx.Set(docRef, &request)
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}
