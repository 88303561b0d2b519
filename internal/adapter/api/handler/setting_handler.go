package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"voltmarket/internal/domain/entity"
	"voltmarket/internal/usecase"
	"voltmarket/pkg/response"
)

type SettingHandler struct {
	settingsUseCase *usecase.SettingsUseCase
}

func NewSettingHandler(settingsUseCase *usecase.SettingsUseCase) *SettingHandler {
	return &SettingHandler{
		settingsUseCase: settingsUseCase,
	}
}

// GetPublic returns the active, non-deleted settings the marketing site
// reads.
func (h *SettingHandler) GetPublic(c echo.Context) error {
	active, deleted := true, false
	settings, err := h.settingsUseCase.GetAll(c.Request().Context(), entity.SettingFilter{
		IsActive:  &active,
		IsDeleted: &deleted,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, settings)
}

// List returns settings filtered by the optional isActive/isDeleted query
// params. An absent param leaves that field unconstrained.
func (h *SettingHandler) List(c echo.Context) error {
	var filter entity.SettingFilter
	if v := c.QueryParam("is_active"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			filter.IsActive = &b
		}
	}
	if v := c.QueryParam("is_deleted"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			filter.IsDeleted = &b
		}
	}

	settings, err := h.settingsUseCase.GetAll(c.Request().Context(), filter)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, settings)
}

func (h *SettingHandler) Update(c echo.Context) error {
	adminID := c.Get("uid").(string)
	key := entity.SettingKey(c.Param("key"))

	var req struct {
		Value interface{} `json:"value"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	setting, err := h.settingsUseCase.Update(c.Request().Context(), key, req.Value, adminID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, setting)
}

func (h *SettingHandler) Delete(c echo.Context) error {
	adminID := c.Get("uid").(string)
	key := entity.SettingKey(c.Param("key"))

	setting, err := h.settingsUseCase.Delete(c.Request().Context(), key, adminID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, setting)
}
