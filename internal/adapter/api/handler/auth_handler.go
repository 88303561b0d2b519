package handler

import (
	"github.com/labstack/echo/v4"

	"voltmarket/internal/domain/entity"
	"voltmarket/internal/domain/service"
	"voltmarket/internal/usecase"
	"voltmarket/pkg/logger"
	"voltmarket/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
	userUseCase *usecase.UserUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase, userUseCase *usecase.UserUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		userUseCase: userUseCase,
	}
}

type registerRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Phone       string `json:"phone" validate:"omitempty,e164"`
	AccountType string `json:"account_type" validate:"required,oneof=individual business"`
	CompanyName string `json:"company_name" validate:"required_if=AccountType business"`
}

type accountResponse struct {
	ID                string   `json:"id"`
	Email             string   `json:"email"`
	FirstName         string   `json:"first_name"`
	LastName          string   `json:"last_name"`
	AccountType       string   `json:"account_type"`
	IsEmailVerified   bool     `json:"is_email_verified"`
	IsProfileComplete bool     `json:"is_profile_complete"`
	Roles             []string `json:"roles"`
	ApprovalStatus    string   `json:"approval_status,omitempty"`
}

type authResponse struct {
	Token        string          `json:"token"`
	RefreshToken string          `json:"refresh_token"`
	Account      accountResponse `json:"account"`
}

func newAccountResponse(account *entity.Account, roles service.RoleSet) accountResponse {
	resp := accountResponse{
		ID:                account.ID,
		Email:             account.Email,
		FirstName:         account.FirstName,
		LastName:          account.LastName,
		AccountType:       string(account.AccountType),
		IsEmailVerified:   account.IsEmailVerified,
		IsProfileComplete: account.IsProfileComplete(),
		Roles:             roles.Roles,
	}
	if account.BusinessInfo != nil {
		resp.ApprovalStatus = string(account.BusinessInfo.Status)
	}
	return resp
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Register(c.Request().Context(), usecase.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Phone:       req.Phone,
		AccountType: entity.AccountType(req.AccountType),
		CompanyName: req.CompanyName,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, authResponse{
		Token:        result.Token,
		RefreshToken: result.RefreshToken,
		Account:      newAccountResponse(result.Account, service.ResolveRoles(nil, result.Account)),
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.Error(c, err)
	}

	// Reconcile the profile's verified flag with the provider after a fresh
	// session. Failure is non-fatal; the provider value wins for this
	// response either way.
	account, err := h.userUseCase.SyncEmailVerification(c.Request().Context(), result.Account.ID)
	if err != nil {
		logger.Warn("Verification sync failed for %s: %v", result.Account.ID, err)
		account = result.Account
	}

	return response.Success(c, authResponse{
		Token:        result.Token,
		RefreshToken: result.RefreshToken,
		Account:      newAccountResponse(account, service.ResolveRoles(nil, account)),
	})
}

func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	var req struct {
		IDToken string `json:"id_token" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.LoginWithGoogle(c.Request().Context(), req.IDToken)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, authResponse{
		Token:        result.Token,
		RefreshToken: result.RefreshToken,
		Account:      newAccountResponse(result.Account, service.ResolveRoles(nil, result.Account)),
	})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.authUseCase.Logout(c.Request().Context(), uid); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Successfully logged out",
	})
}

func (h *AuthHandler) SendVerification(c echo.Context) error {
	token := c.Get("token").(string)

	if err := h.authUseCase.SendEmailVerification(c.Request().Context(), token); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Verification email sent",
	})
}

func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req struct {
		CurrentPassword string `json:"current_password" validate:"required"`
		NewPassword     string `json:"new_password" validate:"required,min=8"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	if err := h.authUseCase.ChangePassword(c.Request().Context(), uid, req.CurrentPassword, req.NewPassword); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Password updated successfully",
	})
}

func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req struct {
		Email string `json:"email" validate:"required,email"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.authUseCase.ResetPassword(c.Request().Context(), req.Email); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Password reset email sent",
	})
}
