package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/codejunkiedev/betterbooks-sub003/internal/core/domain"
	portssvc "github.com/codejunkiedev/betterbooks-sub003/internal/core/ports/services"
	"github.com/codejunkiedev/betterbooks-sub003/internal/dto"
	"github.com/codejunkiedev/betterbooks-sub003/internal/middleware"
	"github.com/gin-gonic/gin"
)

// GoogleOAuthHandler handles Google OAuth related requests. It depends on
// the Google OAuth service, user service, and token service.
type GoogleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
	userService        portssvc.UserSvcFacade
	tokenService       portssvc.TokenSvcFacade
}

// NewGoogleOAuthHandler creates a new instance of GoogleOAuthHandler.
func NewGoogleOAuthHandler(
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade,
	userService portssvc.UserSvcFacade,
	tokenService portssvc.TokenSvcFacade,
) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		googleOAuthService: googleOAuthService,
		userService:        userService,
		tokenService:       tokenService,
	}
}

// ExchangeCodeRequest defines the expected JSON body for the /google/exchange-code endpoint.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// ExchangeCodeGoogle handles the POST request from the frontend containing
// the authorization code from Google. It exchanges the code for Google
// tokens, validates the ID token, creates or retrieves the user, generates
// an application JWT, and returns it.
// @Summary Exchange authorization code for access token
// @Description Exchange a Google authorization code for an application token
// @Tags oauth
// @Accept json
// @Produce json
// @Param code body ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse "Invalid authorization code"
// @Failure 500 {object} ErrorResponse "Failed to exchange authorization code"
// @Router /auth/google/exchange-code [post]
func (h *GoogleOAuthHandler) ExchangeCodeGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.ErrorContext(ctx, "Failed to bind JSON for exchange code request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload: " + err.Error()})
		return
	}

	// 1. Exchange authorization code for Google tokens
	oauth2Token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, req.Code)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		if strings.Contains(strings.ToLower(err.Error()), "invalid_grant") || strings.Contains(strings.ToLower(err.Error()), "bad request") {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid or expired authorization code provided by Google."})
			return
		}
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to communicate with Google OAuth service."})
		return
	}

	// Extract ID token from Google's response
	idTokenString, ok := oauth2Token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		logger.ErrorContext(ctx, "ID token not found in Google's token response")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve ID token from Google."})
		return
	}

	// 2. Validate Google's ID Token
	payload, err := h.googleOAuthService.ValidateGoogleIDToken(ctx, idTokenString)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to validate Google ID token", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid Google ID token."})
		return
	}

	info := googleUserInfoFromClaims(payload.Claims)
	if info.Email == "" {
		logger.ErrorContext(ctx, "Google ID token payload missing email claim")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Google profile is missing an email address."})
		return
	}

	// 3. Find or create the application user
	user, err := h.userService.GetOrCreateGoogleUser(ctx, info)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to get or create user from Google profile", slog.String("error", err.Error()))
		respondWithAppError(c, err, "Failed to sign in with Google")
		return
	}

	// 4. Issue the application token
	token, expiresAt, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.ToUserResponse(user),
	})
}

func googleUserInfoFromClaims(claims map[string]any) domain.GoogleUserInfo {
	var info domain.GoogleUserInfo
	if v, ok := claims["sub"].(string); ok {
		info.ID = v
	}
	if v, ok := claims["email"].(string); ok {
		info.Email = v
	}
	if v, ok := claims["name"].(string); ok {
		info.Name = v
	}
	if v, ok := claims["picture"].(string); ok {
		info.Picture = v
	}
	if v, ok := claims["email_verified"].(bool); ok {
		info.VerifiedEmail = v
	}
	return info
}
