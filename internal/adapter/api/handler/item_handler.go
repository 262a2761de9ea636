package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Praveenramisetti76/ShareSphere/internal/domain/entity"
	"github.com/Praveenramisetti76/ShareSphere/internal/usecase"
	"github.com/Praveenramisetti76/ShareSphere/pkg/response"
)

type ItemHandler struct {
	itemUseCase *usecase.ItemUseCase
}

func NewItemHandler(itemUseCase *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{
		itemUseCase: itemUseCase,
	}
}

type createItemRequest struct {
	Title        string                   `json:"title" validate:"required,min=3,max=100"`
	Description  string                   `json:"description" validate:"required,min=10,max=1000"`
	Category     string                   `json:"category" validate:"required"`
	Condition    string                   `json:"condition" validate:"required"`
	Images       []string                 `json:"images" validate:"required,min=1,dive,url"`
	SharingType  string                   `json:"sharing_type" validate:"required"`
	Price        float64                  `json:"price" validate:"gte=0"`
	Location     entity.ItemLocation      `json:"location"`
	Tags         []string                 `json:"tags"`
	Dimensions   entity.ItemDimensions    `json:"dimensions"`
	Pickup       *entity.PickupOptions    `json:"pickup"`
	Availability entity.ItemAvailability  `json:"availability"`
	IsDonation   bool                     `json:"is_donation"`
	CharityInfo  entity.CharityInfo       `json:"charity_info"`
}

type updateItemRequest struct {
	Title        *string                  `json:"title" validate:"omitempty,min=3,max=100"`
	Description  *string                  `json:"description" validate:"omitempty,min=10,max=1000"`
	Category     *string                  `json:"category"`
	Condition    *string                  `json:"condition"`
	Images       []string                 `json:"images" validate:"omitempty,dive,url"`
	Status       *string                  `json:"status"`
	SharingType  *string                  `json:"sharing_type"`
	Price        *float64                 `json:"price" validate:"omitempty,gte=0"`
	Location     *entity.ItemLocation     `json:"location"`
	Tags         []string                 `json:"tags"`
	Dimensions   *entity.ItemDimensions   `json:"dimensions"`
	Pickup       *entity.PickupOptions    `json:"pickup"`
	Availability *entity.ItemAvailability `json:"availability"`
}

type expressInterestRequest struct {
	Message string `json:"message" validate:"max=500"`
}

func (h *ItemHandler) CreateItem(c echo.Context) error {
	var req createItemRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	ownerID := c.Get("uid").(string)

	item, err := h.itemUseCase.CreateItem(c.Request().Context(), ownerID, usecase.CreateItemInput{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Condition:    req.Condition,
		Images:       req.Images,
		SharingType:  req.SharingType,
		Price:        req.Price,
		Location:     req.Location,
		Tags:         req.Tags,
		Dimensions:   req.Dimensions,
		Pickup:       req.Pickup,
		Availability: req.Availability,
		IsDonation:   req.IsDonation,
		CharityInfo:  req.CharityInfo,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, item)
}

func (h *ItemHandler) GetItem(c echo.Context) error {
	id := c.Param("id")

	var viewerID string
	if uid, ok := c.Get("uid").(string); ok && uid != "" {
		viewerID = uid
	}

	item, err := h.itemUseCase.GetItemByID(c.Request().Context(), id, viewerID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, item)
}

func (h *ItemHandler) ListItems(c echo.Context) error {
	var minPrice, maxPrice float64
	if s := c.QueryParam("min_price"); s != "" {
		minPrice, _ = strconv.ParseFloat(s, 64)
	}
	if s := c.QueryParam("max_price"); s != "" {
		maxPrice, _ = strconv.ParseFloat(s, 64)
	}

	var viewerID string
	if uid, ok := c.Get("uid").(string); ok && uid != "" {
		viewerID = uid
	}

	pagination := response.GetListParams(c)

	items, total, err := h.itemUseCase.ListItems(c.Request().Context(), viewerID, usecase.ListItemsInput{
		Category:    c.QueryParam("category"),
		Condition:   c.QueryParam("condition"),
		SharingType: c.QueryParam("sharing_type"),
		Status:      c.QueryParam("status"),
		City:        c.QueryParam("city"),
		Search:      c.QueryParam("search"),
		MinPrice:    minPrice,
		MaxPrice:    maxPrice,
		Sort:        c.QueryParam("sort"),
		Page:        pagination.Page,
		Limit:       pagination.Limit,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, items, total, pagination.Page, pagination.Limit, len(items))
}

func (h *ItemHandler) ListMyItems(c echo.Context) error {
	ownerID := c.Get("uid").(string)
	pagination := response.GetListParams(c)

	items, total, err := h.itemUseCase.ListByOwnerID(
		c.Request().Context(),
		ownerID,
		c.QueryParam("status"),
		pagination.Page,
		pagination.Limit,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, items, total, pagination.Page, pagination.Limit, len(items))
}

func (h *ItemHandler) ListUserItems(c echo.Context) error {
	ownerID := c.Param("id")
	pagination := response.GetListParams(c)

	items, total, err := h.itemUseCase.ListByOwnerID(
		c.Request().Context(),
		ownerID,
		c.QueryParam("status"),
		pagination.Page,
		pagination.Limit,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, items, total, pagination.Page, pagination.Limit, len(items))
}

func (h *ItemHandler) UpdateItem(c echo.Context) error {
	id := c.Param("id")

	var req updateItemRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	ownerID := c.Get("uid").(string)

	item, err := h.itemUseCase.UpdateItem(c.Request().Context(), id, ownerID, usecase.UpdateItemInput{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Condition:    req.Condition,
		Images:       req.Images,
		Status:       req.Status,
		SharingType:  req.SharingType,
		Price:        req.Price,
		Location:     req.Location,
		Tags:         req.Tags,
		Dimensions:   req.Dimensions,
		Pickup:       req.Pickup,
		Availability: req.Availability,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, item)
}

func (h *ItemHandler) DeleteItem(c echo.Context) error {
	id := c.Param("id")
	ownerID := c.Get("uid").(string)

	if err := h.itemUseCase.DeleteItem(c.Request().Context(), id, ownerID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Item deleted successfully",
	})
}

func (h *ItemHandler) ToggleLike(c echo.Context) error {
	id := c.Param("id")
	userID := c.Get("uid").(string)

	liked, likeCount, err := h.itemUseCase.ToggleLike(c.Request().Context(), id, userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"liked":      liked,
		"like_count": likeCount,
	})
}

func (h *ItemHandler) ExpressInterest(c echo.Context) error {
	id := c.Param("id")

	var req expressInterestRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	if err := h.itemUseCase.ExpressInterest(c.Request().Context(), id, userID, req.Message); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Interest recorded",
	})
}
