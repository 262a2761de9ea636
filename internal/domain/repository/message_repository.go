package repository

import (
	"context"
	"time"

	"github.com/Praveenramisetti76/ShareSphere/internal/domain/entity"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	GetByID(ctx context.Context, id string) (*entity.Message, error)
	Delete(ctx context.Context, id string) error
	MarkRead(ctx context.Context, id string, readAt time.Time) error

	// ListThread returns the messages between two users about one item,
	// oldest first.
	ListThread(ctx context.Context, userID, counterpartID, itemID string, limit, offset int) ([]*entity.Message, int64, error)

	// MarkThreadRead flips every unread message from senderID to receiverID
	// about the item to read. Returns how many messages were updated.
	MarkThreadRead(ctx context.Context, itemID, senderID, receiverID string, readAt time.Time) (int, error)

	// ListConversations groups every message the user participates in by
	// counterpart, keeping the most recent message per bucket and counting
	// unread messages addressed to the user, ordered by recency.
	ListConversations(ctx context.Context, userID string, limit, offset int) ([]*entity.Conversation, int64, error)

	CountUnread(ctx context.Context, userID string) (int64, error)
}
