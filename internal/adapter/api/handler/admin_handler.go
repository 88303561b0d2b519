package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"voltmarket/internal/usecase"
	"voltmarket/pkg/errors"
	"voltmarket/pkg/response"
)

type AdminHandler struct {
	approvalUseCase *usecase.ApprovalUseCase
}

func NewAdminHandler(approvalUseCase *usecase.ApprovalUseCase) *AdminHandler {
	return &AdminHandler{
		approvalUseCase: approvalUseCase,
	}
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	limit, offset := pagination(c)
	accountType := c.QueryParam("account_type")

	accounts, total, err := h.approvalUseCase.ListAccounts(c.Request().Context(), accountType, limit, offset)
	if err != nil {
		return response.Error(c, err)
	}

	page := offset/limit + 1
	return response.Paginated(c, accounts, total, page, limit)
}

func (h *AdminHandler) ListUnderReview(c echo.Context) error {
	limit, offset := pagination(c)

	accounts, total, err := h.approvalUseCase.ListUnderReview(c.Request().Context(), limit, offset)
	if err != nil {
		return response.Error(c, err)
	}

	page := offset/limit + 1
	return response.Paginated(c, accounts, total, page, limit)
}

func (h *AdminHandler) ApproveBusiness(c echo.Context) error {
	adminID := c.Get("uid").(string)
	userID := c.Param("id")
	if userID == "" {
		return response.Error(c, errors.BadRequest("User ID is required", nil))
	}

	account, err := h.approvalUseCase.Approve(c.Request().Context(), adminID, userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, account)
}

func (h *AdminHandler) RejectBusiness(c echo.Context) error {
	adminID := c.Get("uid").(string)
	userID := c.Param("id")
	if userID == "" {
		return response.Error(c, errors.BadRequest("User ID is required", nil))
	}

	var req struct {
		Reason string `json:"reason" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	account, err := h.approvalUseCase.Reject(c.Request().Context(), adminID, userID, req.Reason)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, account)
}

func (h *AdminHandler) GrantAdmin(c echo.Context) error {
	userID := c.Param("id")
	if userID == "" {
		return response.Error(c, errors.BadRequest("User ID is required", nil))
	}

	var req struct {
		Admin *bool `json:"admin" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.approvalUseCase.GrantAdmin(c.Request().Context(), userID, *req.Admin); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Admin claim updated; takes effect on next token refresh",
	})
}

func pagination(c echo.Context) (limit, offset int) {
	limit = 20
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}
	if v, err := strconv.Atoi(c.QueryParam("offset")); err == nil && v > 0 {
		offset = v
	}
	return limit, offset
}
