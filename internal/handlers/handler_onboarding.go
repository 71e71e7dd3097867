package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/codejunkiedev/betterbooks-sub003/internal/apperrors"
	portssvc "github.com/codejunkiedev/betterbooks-sub003/internal/core/ports/services"
	"github.com/codejunkiedev/betterbooks-sub003/internal/dto"
	"github.com/codejunkiedev/betterbooks-sub003/internal/middleware"
	"github.com/gin-gonic/gin"
)

// OnboardingHandler handles the company onboarding endpoint.
type OnboardingHandler struct {
	onboardingService portssvc.OnboardingSvcFacade
}

// NewOnboardingHandler creates a new OnboardingHandler.
func NewOnboardingHandler(s portssvc.OnboardingSvcFacade) *OnboardingHandler {
	return &OnboardingHandler{onboardingService: s}
}

// registerOnboardingRoutes sets up the routes for onboarding.
func registerOnboardingRoutes(rg *gin.RouterGroup, svc portssvc.OnboardingSvcFacade) {
	h := NewOnboardingHandler(svc)
	rg.POST("/onboarding", h.CompleteOnboarding)
}

// CompleteOnboarding godoc
// @Summary Complete company onboarding
// @Description Creates a company with its chart of accounts, optional opening balance, optional tax profile and workflow progress in one atomic run. On any hard failure the partially created resources are rolled back.
// @Tags onboarding
// @Accept json
// @Produce json
// @Param onboarding body dto.CompleteOnboardingRequest true "Onboarding details"
// @Success 201 {object} dto.OnboardingResponse
// @Failure 400 {object} ErrorResponse "Validation failure"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "Conflicting resource"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /onboarding [post]
func (h *OnboardingHandler) CompleteOnboarding(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req dto.CompleteOnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	result, err := h.onboardingService.CompleteOnboarding(ctx, req, userID)
	if err != nil {
		logger.ErrorContext(ctx, "Onboarding failed", slog.String("error", err.Error()))
		respondWithAppError(c, err, "Failed to complete onboarding")
		return
	}

	c.JSON(http.StatusCreated, dto.ToOnboardingResponse(result))
}

// respondWithAppError maps service errors to HTTP status codes.
func respondWithAppError(c *gin.Context, err error, fallback string) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsConflict(err):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}
