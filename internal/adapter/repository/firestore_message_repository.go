package repository

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Praveenramisetti76/ShareSphere/internal/domain/entity"
	"github.com/Praveenramisetti76/ShareSphere/internal/domain/repository"
	"github.com/Praveenramisetti76/ShareSphere/pkg/errors"
	"github.com/Praveenramisetti76/ShareSphere/pkg/logger"
)

type firestoreMessageRepository struct {
	client *firestore.Client
}

func NewFirestoreMessageRepository(client *firestore.Client) repository.MessageRepository {
	return &firestoreMessageRepository{
		client: client,
	}
}

func (r *firestoreMessageRepository) Create(ctx context.Context, message *entity.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("messages").Doc(message.ID).Set(ctx, message)
	if err != nil {
		return errors.Internal("Failed to create message", err)
	}

	return nil
}

func (r *firestoreMessageRepository) GetByID(ctx context.Context, id string) (*entity.Message, error) {
	doc, err := r.client.Collection("messages").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Message", err)
		}
		return nil, errors.Internal("Failed to get message", err)
	}

	var message entity.Message
	if err := doc.DataTo(&message); err != nil {
		return nil, errors.Internal("Failed to parse message data", err)
	}

	return &message, nil
}

func (r *firestoreMessageRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("messages").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete message", err)
	}

	return nil
}

func (r *firestoreMessageRepository) MarkRead(ctx context.Context, id string, readAt time.Time) error {
	_, err := r.client.Collection("messages").Doc(id).Update(ctx, []firestore.Update{
		{Path: "isRead", Value: true},
		{Path: "readAt", Value: readAt},
	})
	if err != nil {
		return errors.Internal("Failed to mark message as read", err)
	}

	return nil
}

// ListThread merges the two message directions for one (user, counterpart,
// item) triple. Firestore cannot OR across fields, so each direction is its
// own query.
func (r *firestoreMessageRepository) ListThread(ctx context.Context, userID, counterpartID, itemID string, limit, offset int) ([]*entity.Message, int64, error) {
	sent, err := r.threadDirection(ctx, itemID, userID, counterpartID)
	if err != nil {
		return nil, 0, err
	}
	received, err := r.threadDirection(ctx, itemID, counterpartID, userID)
	if err != nil {
		return nil, 0, err
	}

	messages := append(sent, received...)
	sort.Slice(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})

	total := int64(len(messages))

	if offset >= len(messages) {
		return []*entity.Message{}, total, nil
	}
	end := len(messages)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	return messages[offset:end], total, nil
}

func (r *firestoreMessageRepository) threadDirection(ctx context.Context, itemID, senderID, receiverID string) ([]*entity.Message, error) {
	docs, err := r.client.Collection("messages").Query.
		Where("itemId", "==", itemID).
		Where("senderId", "==", senderID).
		Where("receiverId", "==", receiverID).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to load thread messages", err)
	}

	messages := make([]*entity.Message, 0, len(docs))
	for _, doc := range docs {
		var message entity.Message
		if err := doc.DataTo(&message); err != nil {
			return nil, errors.Internal("Failed to parse message data", err)
		}
		messages = append(messages, &message)
	}

	return messages, nil
}

func (r *firestoreMessageRepository) MarkThreadRead(ctx context.Context, itemID, senderID, receiverID string, readAt time.Time) (int, error) {
	docs, err := r.client.Collection("messages").Query.
		Where("itemId", "==", itemID).
		Where("senderId", "==", senderID).
		Where("receiverId", "==", receiverID).
		Where("isRead", "==", false).
		Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to load unread thread messages", err)
	}

	updated := 0
	for _, doc := range docs {
		_, err := doc.Ref.Update(ctx, []firestore.Update{
			{Path: "isRead", Value: true},
			{Path: "readAt", Value: readAt},
		})
		if err != nil {
			logger.Warn("Failed to mark message %s read: %v", doc.Ref.ID, err)
			continue
		}
		updated++
	}

	return updated, nil
}

// ListConversations builds the counterpart projection in memory: Firestore
// offers no group-by, so all of the user's messages are loaded and bucketed
// by the other party, keeping the latest message and an unread tally per
// bucket.
func (r *firestoreMessageRepository) ListConversations(ctx context.Context, userID string, limit, offset int) ([]*entity.Conversation, int64, error) {
	messages, err := r.allForUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	buckets := make(map[string]*entity.Conversation)
	for _, message := range messages {
		counterpart := message.Counterpart(userID)

		bucket, ok := buckets[counterpart]
		if !ok {
			bucket = &entity.Conversation{CounterpartID: counterpart}
			buckets[counterpart] = bucket
		}

		if bucket.LastMessage == nil || message.CreatedAt.After(bucket.LastMessage.CreatedAt) {
			bucket.LastMessage = message
		}
		if message.ReceiverID == userID && !message.IsRead {
			bucket.UnreadCount++
		}
	}

	conversations := make([]*entity.Conversation, 0, len(buckets))
	for _, bucket := range buckets {
		conversations = append(conversations, bucket)
	}
	sort.Slice(conversations, func(i, j int) bool {
		return conversations[i].LastMessage.CreatedAt.After(conversations[j].LastMessage.CreatedAt)
	})

	total := int64(len(conversations))

	if offset >= len(conversations) {
		return []*entity.Conversation{}, total, nil
	}
	end := len(conversations)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	return conversations[offset:end], total, nil
}

func (r *firestoreMessageRepository) allForUser(ctx context.Context, userID string) ([]*entity.Message, error) {
	var messages []*entity.Message

	for _, field := range []string{"senderId", "receiverId"} {
		docs, err := r.client.Collection("messages").Query.
			Where(field, "==", userID).
			Documents(ctx).GetAll()
		if err != nil {
			return nil, errors.Internal("Failed to load user messages", err)
		}

		for _, doc := range docs {
			var message entity.Message
			if err := doc.DataTo(&message); err != nil {
				return nil, errors.Internal("Failed to parse message data", err)
			}
			messages = append(messages, &message)
		}
	}

	return messages, nil
}

func (r *firestoreMessageRepository) CountUnread(ctx context.Context, userID string) (int64, error) {
	docs, err := r.client.Collection("messages").Query.
		Where("receiverId", "==", userID).
		Where("isRead", "==", false).
		Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count unread messages", err)
	}

	return int64(len(docs)), nil
}
