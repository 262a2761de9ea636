package entity

import (
	"time"
)

const (
	RequestStatusPending   = "pending"
	RequestStatusApproved  = "approved"
	RequestStatusRejected  = "rejected"
	RequestStatusCompleted = "completed"
)

// requestStatusTransitions is the approval workflow. rejected and completed
// are terminal; an approved request can only move on to completed.
var requestStatusTransitions = map[string][]string{
	RequestStatusPending:   {RequestStatusApproved, RequestStatusRejected},
	RequestStatusApproved:  {RequestStatusCompleted},
	RequestStatusRejected:  {},
	RequestStatusCompleted: {},
}

// Request is a proposal by one user to receive an item from its owner.
// OwnerID is a snapshot of the item owner at creation time; authorization on
// responses always uses the snapshot, so the record stays valid for audit
// even if the item changes hands later.
type Request struct {
	ID          string `json:"id" firestore:"id"`
	RequesterID string `json:"requester_id" firestore:"requesterId"`
	ItemID      string `json:"item_id" firestore:"itemId"`
	OwnerID     string `json:"owner_id" firestore:"ownerId"`
	Status      string `json:"status" firestore:"status"`

	Message         string `json:"message,omitempty" firestore:"message,omitempty"`
	ResponseMessage string `json:"response_message,omitempty" firestore:"responseMessage,omitempty"`

	RequestedAt time.Time  `json:"requested_at" firestore:"requestedAt"`
	RespondedAt *time.Time `json:"responded_at,omitempty" firestore:"respondedAt,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

func (r *Request) CanTransitionTo(next string) bool {
	for _, allowed := range requestStatusTransitions[r.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (r *Request) IsTerminal() bool {
	return r.Status == RequestStatusRejected || r.Status == RequestStatusCompleted
}

// IsActive reports whether the request still blocks the requester from
// opening another one for the same item.
func (r *Request) IsActive() bool {
	return r.Status == RequestStatusPending || r.Status == RequestStatusApproved
}

func ValidRequestStatus(status string) bool {
	switch status {
	case RequestStatusPending, RequestStatusApproved, RequestStatusRejected, RequestStatusCompleted:
		return true
	}
	return false
}
