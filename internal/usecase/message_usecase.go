package usecase

import (
	"context"
	"time"

	"github.com/Praveenramisetti76/ShareSphere/internal/domain/entity"
	"github.com/Praveenramisetti76/ShareSphere/internal/domain/repository"
	"github.com/Praveenramisetti76/ShareSphere/pkg/errors"
	"github.com/Praveenramisetti76/ShareSphere/pkg/logger"
)

type MessageUseCase struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	itemRepo    repository.ItemRepository
}

func NewMessageUseCase(
	messageRepo repository.MessageRepository,
	userRepo repository.UserRepository,
	itemRepo repository.ItemRepository,
) *MessageUseCase {
	return &MessageUseCase{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		itemRepo:    itemRepo,
	}
}

type OfferInput struct {
	Amount     float64
	Currency   string
	ValidUntil *time.Time
}

type SendMessageInput struct {
	ReceiverID      string
	ItemID          string
	Content         string
	MessageType     string
	Attachments     []entity.Attachment
	Offer           *OfferInput
	ParentMessageID string
}

type MessageWithUsers struct {
	*entity.Message
	Sender   *entity.UserSummary `json:"sender,omitempty"`
	Receiver *entity.UserSummary `json:"receiver,omitempty"`
}

// ConversationWithUser is a conversation bucket with the counterpart's
// identity resolved.
type ConversationWithUser struct {
	*entity.Conversation
	Counterpart *entity.UserSummary `json:"counterpart,omitempty"`
}

// Thread is the (counterpart, item) scoped message history, oldest first.
type Thread struct {
	Messages    []*entity.Message   `json:"messages"`
	Counterpart *entity.UserSummary `json:"counterpart"`
	Item        *entity.ItemSummary `json:"item"`
}

func (uc *MessageUseCase) SendMessage(ctx context.Context, senderID string, input SendMessageInput) (*MessageWithUsers, error) {
	if senderID == input.ReceiverID {
		return nil, errors.SelfReference("Cannot send message to yourself")
	}

	if input.MessageType == "" {
		input.MessageType = entity.MessageTypeInquiry
	}
	if !entity.ValidMessageType(input.MessageType) {
		return nil, errors.BadRequest("Invalid message type", nil)
	}

	receiver, err := uc.userRepo.GetByID(ctx, input.ReceiverID)
	if err != nil {
		return nil, errors.NotFound("Receiver", err)
	}

	if _, err := uc.itemRepo.GetByID(ctx, input.ItemID); err != nil {
		return nil, err
	}

	// Replies always reference an already persisted message, keeping the
	// reply tree acyclic by construction.
	if input.ParentMessageID != "" {
		if _, err := uc.messageRepo.GetByID(ctx, input.ParentMessageID); err != nil {
			return nil, errors.NotFound("Parent message", err)
		}
	}

	var offer *entity.Offer
	if input.Offer != nil {
		currency := input.Offer.Currency
		if currency == "" {
			currency = "USD"
		}
		offer = &entity.Offer{
			Amount:     input.Offer.Amount,
			Currency:   currency,
			ValidUntil: input.Offer.ValidUntil,
		}
	}

	message := &entity.Message{
		SenderID:        senderID,
		ReceiverID:      input.ReceiverID,
		ItemID:          input.ItemID,
		Content:         input.Content,
		MessageType:     input.MessageType,
		IsRead:          false,
		Attachments:     input.Attachments,
		Offer:           offer,
		Status:          entity.OfferStatusPending,
		ParentMessageID: input.ParentMessageID,
		CreatedAt:       time.Now(),
	}

	if err := uc.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	resolved := &MessageWithUsers{Message: message, Receiver: receiver.Summary()}
	if sender, err := uc.userRepo.GetByID(ctx, senderID); err == nil {
		resolved.Sender = sender.Summary()
	}

	return resolved, nil
}

// ListConversations is a read-only projection: one bucket per counterpart
// across every item discussed with them, newest activity first. This is
// deliberately coarser than GetThread, which is scoped to a single item.
func (uc *MessageUseCase) ListConversations(ctx context.Context, userID string, page, limit int) ([]*ConversationWithUser, int64, error) {
	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	conversations, total, err := uc.messageRepo.ListConversations(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	resolved := make([]*ConversationWithUser, len(conversations))
	for i, conv := range conversations {
		resolved[i] = &ConversationWithUser{Conversation: conv}
		if counterpart, err := uc.userRepo.GetByID(ctx, conv.CounterpartID); err == nil {
			resolved[i].Counterpart = counterpart.Summary()
		}
	}

	return resolved, total, nil
}

// GetThread returns the message history with one counterpart about one item,
// oldest first. Fetching a thread always marks every unread message
// addressed to the caller in it as read; the returned messages reflect the
// applied flags, so a second fetch is a pure read.
func (uc *MessageUseCase) GetThread(ctx context.Context, userID, counterpartID, itemID string, page, limit int) (*Thread, int64, error) {
	counterpart, err := uc.userRepo.GetByID(ctx, counterpartID)
	if err != nil {
		return nil, 0, errors.NotFound("User", err)
	}

	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, 0, err
	}

	uc.markThreadRead(ctx, itemID, counterpartID, userID)

	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	messages, total, err := uc.messageRepo.ListThread(ctx, userID, counterpartID, itemID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	return &Thread{
		Messages:    messages,
		Counterpart: counterpart.Summary(),
		Item:        item.Summary(),
	}, total, nil
}

// markThreadRead is the named side-effecting step behind GetThread: every
// unread message from the counterpart to the reader in this thread flips to
// read. A failure here does not fail the fetch.
func (uc *MessageUseCase) markThreadRead(ctx context.Context, itemID, senderID, receiverID string) {
	updated, err := uc.messageRepo.MarkThreadRead(ctx, itemID, senderID, receiverID, time.Now())
	if err != nil {
		logger.Warn("Failed to mark thread read (item=%s, receiver=%s): %v", itemID, receiverID, err)
		return
	}
	if updated > 0 {
		logger.Debug("Marked %d messages read (item=%s, receiver=%s)", updated, itemID, receiverID)
	}
}

// MarkRead marks a single message read. Only the receiver may do this, and
// repeating it is a no-op.
func (uc *MessageUseCase) MarkRead(ctx context.Context, messageID, actingUserID string) error {
	message, err := uc.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return err
	}

	if message.ReceiverID != actingUserID {
		return errors.Forbidden("Not authorized to mark this message as read", nil)
	}

	if message.IsRead {
		return nil
	}

	return uc.messageRepo.MarkRead(ctx, messageID, time.Now())
}

// DeleteMessage removes a message. Sender only; replies are left in place
// with a dangling parent reference.
func (uc *MessageUseCase) DeleteMessage(ctx context.Context, messageID, actingUserID string) error {
	message, err := uc.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return err
	}

	if message.SenderID != actingUserID {
		return errors.Forbidden("Not authorized to delete this message", nil)
	}

	return uc.messageRepo.Delete(ctx, messageID)
}

func (uc *MessageUseCase) CountUnread(ctx context.Context, userID string) (int64, error) {
	return uc.messageRepo.CountUnread(ctx, userID)
}
