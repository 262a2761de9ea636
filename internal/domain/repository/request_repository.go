package repository

import (
	"context"

	"github.com/Praveenramisetti76/ShareSphere/internal/domain/entity"
)

type RequestRepository interface {
	Create(ctx context.Context, request *entity.Request) error
	GetByID(ctx context.Context, id string) (*entity.Request, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Request, error)
	ListByRequester(ctx context.Context, requesterID string) ([]*entity.Request, error)

	// FindActive returns the pending or approved request for the
	// (requester, item) pair, or nil when none exists.
	FindActive(ctx context.Context, requesterID, itemID string) (*entity.Request, error)

	// Respond applies a status transition inside a store transaction: the
	// current status is re-read and checked against the workflow table, so
	// two racing responses cannot both win. RespondedAt is set on the first
	// transition away from pending and never overwritten.
	Respond(ctx context.Context, id, status, responseMessage string) (*entity.Request, error)
}
