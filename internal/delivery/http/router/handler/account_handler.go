// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"agrosikkim/config"
	"agrosikkim/internal/delivery/http/response"
	domainerrors "agrosikkim/internal/domain/errors"
	"agrosikkim/internal/domain/service"
	"agrosikkim/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	signUpSuccessMessage = "User created"
	signInSuccessMessage = "Signed in successfully"
)

// AccountHandler holds dependencies for the registration and sign-in handlers.
type AccountHandler struct {
	uc       usecase.AccountUsecase
	tokenSvc service.TokenService
	cfg      *config.Config
	logger   *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
// The token service is nil when issuance is disabled.
func NewAccountHandler(uc usecase.AccountUsecase, tokenSvc service.TokenService, cfg *config.Config, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:       uc,
		tokenSvc: tokenSvc,
		cfg:      cfg,
		logger:   logger,
	}
}

// SignUp handles the farmer registration request. Malformed bodies and
// missing credentials are rejected here, before the use case or the
// store is touched.
func (h *AccountHandler) SignUp(c echo.Context) error {
	var input *usecase.SignUpInput
	if err := c.Bind(&input); err != nil || input == nil {
		return domainerrors.ErrInvalidRequestBody.WrapMessage("bind sign-up input")
	}
	if err := c.Validate(input); err != nil {
		return domainerrors.ErrMissingCredentials.WrapMessage("sign-up input validation")
	}

	if _, err := h.uc.SignUp(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	// The created record is deliberately not echoed back.
	return response.Message(c, http.StatusCreated, signUpSuccessMessage)
}

// SignIn handles the credential verification request.
func (h *AccountHandler) SignIn(c echo.Context) error {
	var input *usecase.SignInInput
	if err := c.Bind(&input); err != nil || input == nil {
		return domainerrors.ErrInvalidRequestBody.WrapMessage("bind sign-in input")
	}
	if err := c.Validate(input); err != nil {
		return domainerrors.ErrMissingCredentials.WrapMessage("sign-in input validation")
	}

	output, err := h.uc.SignIn(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	if h.issueTokens() {
		accessToken, refreshToken, err := h.tokenSvc.GenerateTokens(output.Identity.FarmerID)
		if err != nil {
			h.logger.Error("token generation failed", "error", err.Error())

			return domainerrors.ErrSignInFailed.WrapMessage("generate session tokens")
		}

		return response.MessageWithTokens(c, http.StatusOK, signInSuccessMessage, accessToken, refreshToken)
	}

	return response.Message(c, http.StatusOK, signInSuccessMessage)
}

func (h *AccountHandler) issueTokens() bool {
	return h.tokenSvc != nil && h.cfg.Auth != nil && h.cfg.Auth.IssueTokens
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
