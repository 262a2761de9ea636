package entity

import (
	"time"
)

const (
	MessageTypeInquiry     = "Inquiry"
	MessageTypeOffer       = "Offer"
	MessageTypeArrangement = "Arrangement"
	MessageTypeGeneral     = "General"
)

// Offer lifecycle states. Only meaningful on Offer-type messages and
// independent of the read flag.
const (
	OfferStatusPending  = "Pending"
	OfferStatusAccepted = "Accepted"
	OfferStatusDeclined = "Declined"
	OfferStatusExpired  = "Expired"
)

type Attachment struct {
	URL         string `json:"url" firestore:"url"`
	Description string `json:"description,omitempty" firestore:"description,omitempty"`
}

type Offer struct {
	Amount     float64    `json:"amount" firestore:"amount"`
	Currency   string     `json:"currency" firestore:"currency"`
	ValidUntil *time.Time `json:"valid_until,omitempty" firestore:"validUntil,omitempty"`
}

// Message is a single exchange between two users, always scoped to one item.
// ReadAt is set exactly once, when IsRead flips from false to true.
type Message struct {
	ID         string `json:"id" firestore:"id"`
	SenderID   string `json:"sender_id" firestore:"senderId"`
	ReceiverID string `json:"receiver_id" firestore:"receiverId"`
	ItemID     string `json:"item_id" firestore:"itemId"`
	Content    string `json:"content" firestore:"content"`

	MessageType string     `json:"message_type" firestore:"messageType"`
	IsRead      bool       `json:"is_read" firestore:"isRead"`
	ReadAt      *time.Time `json:"read_at,omitempty" firestore:"readAt,omitempty"`

	Attachments []Attachment `json:"attachments,omitempty" firestore:"attachments,omitempty"`
	Offer       *Offer       `json:"offer,omitempty" firestore:"offer,omitempty"`
	Status      string       `json:"status" firestore:"status"`

	ParentMessageID string `json:"parent_message_id,omitempty" firestore:"parentMessageId,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

// Counterpart returns the other party of the message relative to userID.
func (m *Message) Counterpart(userID string) string {
	if m.SenderID == userID {
		return m.ReceiverID
	}
	return m.SenderID
}

// Conversation is a derived projection, never stored: all messages with one
// counterpart collapsed into a single bucket regardless of item. The thread
// view is the finer-grained (counterpart, item) read.
type Conversation struct {
	CounterpartID string   `json:"counterpart_id"`
	LastMessage   *Message `json:"last_message"`
	UnreadCount   int      `json:"unread_count"`
}

func ValidMessageType(messageType string) bool {
	switch messageType {
	case MessageTypeInquiry, MessageTypeOffer, MessageTypeArrangement, MessageTypeGeneral:
		return true
	}
	return false
}
