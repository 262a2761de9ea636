package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/Praveenramisetti76/ShareSphere/internal/domain/entity"
	"github.com/Praveenramisetti76/ShareSphere/internal/usecase"
	"github.com/Praveenramisetti76/ShareSphere/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type updatePreferencesRequest struct {
	Notifications *entity.NotificationPrefs `json:"notifications"`
	Privacy       *entity.PrivacyPrefs      `json:"privacy"`
}

type rateUserRequest struct {
	Rating float64 `json:"rating" validate:"required,gte=1,lte=5"`
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	id := c.Param("id")

	profile, err := h.userUseCase.GetProfile(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profile)
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	userID := c.Get("uid").(string)

	users, err := h.userUseCase.ListUsers(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, users)
}

func (h *UserHandler) SearchUsers(c echo.Context) error {
	pagination := response.GetListParams(c)

	users, total, err := h.userUseCase.SearchUsers(
		c.Request().Context(),
		c.QueryParam("q"),
		c.QueryParam("city"),
		pagination.Page,
		pagination.Limit,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, users, total, pagination.Page, pagination.Limit, len(users))
}

func (h *UserHandler) GetStats(c echo.Context) error {
	id := c.Param("id")

	stats, err := h.userUseCase.GetStats(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stats)
}

func (h *UserHandler) UpdatePreferences(c echo.Context) error {
	var req updatePreferencesRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	user, err := h.userUseCase.UpdatePreferences(c.Request().Context(), userID, usecase.UpdatePreferencesInput{
		Notifications: req.Notifications,
		Privacy:       req.Privacy,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) RateUser(c echo.Context) error {
	id := c.Param("id")

	var req rateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	raterID := c.Get("uid").(string)

	rating, err := h.userUseCase.RateUser(c.Request().Context(), id, raterID, req.Rating)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, rating)
}
