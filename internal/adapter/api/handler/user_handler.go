package handler

import (
	"github.com/labstack/echo/v4"

	"voltmarket/internal/domain/service"
	"voltmarket/internal/usecase"
	"voltmarket/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type updateProfileRequest struct {
	FirstName   string `json:"first_name" validate:"omitempty,min=1"`
	LastName    string `json:"last_name" validate:"omitempty,min=1"`
	Phone       string `json:"phone" validate:"omitempty,e164"`
	CompanyName string `json:"company_name" validate:"omitempty,min=2"`
}

// GetMe returns the profile together with the authorization view derived
// from this request's verified claims.
func (h *UserHandler) GetMe(c echo.Context) error {
	uid := c.Get("uid").(string)
	claims, _ := c.Get("claims").(map[string]interface{})

	account, err := h.userUseCase.GetProfile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	roles := service.ResolveRoles(claims, account)

	return response.Success(c, map[string]interface{}{
		"account":             account,
		"roles":               roles.Roles,
		"is_admin":            roles.IsAdmin,
		"is_profile_complete": account.IsProfileComplete(),
	})
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	account, err := h.userUseCase.UpdateProfile(c.Request().Context(), uid, usecase.UpdateProfileInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Phone:       req.Phone,
		CompanyName: req.CompanyName,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, account)
}

// SyncVerification is the explicit reconciliation entry point; the setup
// flow calls it after the user clicks the verification link.
func (h *UserHandler) SyncVerification(c echo.Context) error {
	uid := c.Get("uid").(string)

	account, err := h.userUseCase.SyncEmailVerification(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"is_email_verified":   account.IsEmailVerified,
		"is_profile_complete": account.IsProfileComplete(),
	})
}
