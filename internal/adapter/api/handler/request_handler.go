package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/Praveenramisetti76/ShareSphere/internal/usecase"
	"github.com/Praveenramisetti76/ShareSphere/pkg/response"
)

type RequestHandler struct {
	requestUseCase *usecase.RequestUseCase
}

func NewRequestHandler(requestUseCase *usecase.RequestUseCase) *RequestHandler {
	return &RequestHandler{
		requestUseCase: requestUseCase,
	}
}

type createRequestRequest struct {
	ItemID  string `json:"item_id" validate:"required"`
	Message string `json:"message" validate:"max=500"`
}

type respondRequestRequest struct {
	Status          string `json:"status" validate:"required,oneof=approved rejected completed"`
	ResponseMessage string `json:"response_message" validate:"max=500"`
}

func (h *RequestHandler) CreateRequest(c echo.Context) error {
	var req createRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	requesterID := c.Get("uid").(string)

	request, err := h.requestUseCase.CreateRequest(c.Request().Context(), requesterID, req.ItemID, req.Message)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, request)
}

// ListReceived returns requests made against the caller's listings.
func (h *RequestHandler) ListReceived(c echo.Context) error {
	ownerID := c.Get("uid").(string)

	requests, err := h.requestUseCase.ListReceived(c.Request().Context(), ownerID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, requests)
}

// ListSent returns requests the caller has made for other people's listings.
func (h *RequestHandler) ListSent(c echo.Context) error {
	requesterID := c.Get("uid").(string)

	requests, err := h.requestUseCase.ListSent(c.Request().Context(), requesterID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, requests)
}

func (h *RequestHandler) RespondToRequest(c echo.Context) error {
	id := c.Param("id")

	var req respondRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	actingUserID := c.Get("uid").(string)

	request, err := h.requestUseCase.RespondToRequest(
		c.Request().Context(),
		id,
		actingUserID,
		req.Status,
		req.ResponseMessage,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, request)
}
