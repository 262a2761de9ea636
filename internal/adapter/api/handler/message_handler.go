package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Praveenramisetti76/ShareSphere/internal/domain/entity"
	"github.com/Praveenramisetti76/ShareSphere/internal/usecase"
	"github.com/Praveenramisetti76/ShareSphere/pkg/errors"
	"github.com/Praveenramisetti76/ShareSphere/pkg/response"
)

type MessageHandler struct {
	messageUseCase *usecase.MessageUseCase
}

func NewMessageHandler(messageUseCase *usecase.MessageUseCase) *MessageHandler {
	return &MessageHandler{
		messageUseCase: messageUseCase,
	}
}

type offerRequest struct {
	Amount     float64    `json:"amount" validate:"required,gt=0"`
	Currency   string     `json:"currency" validate:"omitempty,len=3"`
	ValidUntil *time.Time `json:"valid_until"`
}

type sendMessageRequest struct {
	ReceiverID      string              `json:"receiver_id" validate:"required"`
	ItemID          string              `json:"item_id" validate:"required"`
	Content         string              `json:"content" validate:"required,max=1000"`
	MessageType     string              `json:"message_type"`
	Attachments     []entity.Attachment `json:"attachments"`
	Offer           *offerRequest       `json:"offer"`
	ParentMessageID string              `json:"parent_message_id"`
}

func (h *MessageHandler) SendMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	senderID := c.Get("uid").(string)

	input := usecase.SendMessageInput{
		ReceiverID:      req.ReceiverID,
		ItemID:          req.ItemID,
		Content:         req.Content,
		MessageType:     req.MessageType,
		Attachments:     req.Attachments,
		ParentMessageID: req.ParentMessageID,
	}
	if req.Offer != nil {
		input.Offer = &usecase.OfferInput{
			Amount:     req.Offer.Amount,
			Currency:   req.Offer.Currency,
			ValidUntil: req.Offer.ValidUntil,
		}
	}

	message, err := h.messageUseCase.SendMessage(c.Request().Context(), senderID, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}

func (h *MessageHandler) ListConversations(c echo.Context) error {
	userID := c.Get("uid").(string)
	pagination := response.GetListParams(c)

	conversations, total, err := h.messageUseCase.ListConversations(
		c.Request().Context(),
		userID,
		pagination.Page,
		pagination.Limit,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, conversations, total, pagination.Page, pagination.Limit, len(conversations))
}

// GetThread returns the history with one counterpart about one item. Opening
// a thread marks its unread messages to the caller as read.
func (h *MessageHandler) GetThread(c echo.Context) error {
	userID := c.Get("uid").(string)
	counterpartID := c.Param("userId")

	itemID := c.QueryParam("item_id")
	if itemID == "" {
		return response.Error(c, errors.BadRequest("item_id query parameter is required", nil))
	}

	pagination := response.GetListParams(c)

	thread, total, err := h.messageUseCase.GetThread(
		c.Request().Context(),
		userID,
		counterpartID,
		itemID,
		pagination.Page,
		pagination.Limit,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, thread, total, pagination.Page, pagination.Limit, len(thread.Messages))
}

func (h *MessageHandler) MarkRead(c echo.Context) error {
	id := c.Param("id")
	userID := c.Get("uid").(string)

	if err := h.messageUseCase.MarkRead(c.Request().Context(), id, userID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Message marked as read",
	})
}

func (h *MessageHandler) DeleteMessage(c echo.Context) error {
	id := c.Param("id")
	userID := c.Get("uid").(string)

	if err := h.messageUseCase.DeleteMessage(c.Request().Context(), id, userID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Message deleted successfully",
	})
}

func (h *MessageHandler) CountUnread(c echo.Context) error {
	userID := c.Get("uid").(string)

	count, err := h.messageUseCase.CountUnread(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]int64{
		"unread_count": count,
	})
}
