package handlers

import (
	"net/http"
	"strconv"

	portssvc "github.com/codejunkiedev/betterbooks-sub003/internal/core/ports/services"
	"github.com/codejunkiedev/betterbooks-sub003/internal/dto"
	"github.com/codejunkiedev/betterbooks-sub003/internal/middleware"
	"github.com/gin-gonic/gin"
)

// CompanyHandler handles read endpoints for companies.
type CompanyHandler struct {
	companyService portssvc.CompanySvcFacade
}

// NewCompanyHandler creates a new CompanyHandler.
func NewCompanyHandler(s portssvc.CompanySvcFacade) *CompanyHandler {
	return &CompanyHandler{companyService: s}
}

// registerCompanyRoutes sets up the routes for companies.
func registerCompanyRoutes(rg *gin.RouterGroup, svc portssvc.CompanySvcFacade) {
	h := NewCompanyHandler(svc)
	companies := rg.Group("/companies")
	{
		companies.GET("", h.ListCompanies)
		companies.GET("/:company_id", h.GetCompanyOverview)
		companies.GET("/:company_id/activities", h.ListCompanyActivities)
	}
}

// ListCompanies godoc
// @Summary List companies
// @Description Lists all companies owned by the authenticated user.
// @Tags companies
// @Produce json
// @Success 200 {object} dto.ListCompaniesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies [get]
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	companies, err := h.companyService.ListCompanies(ctx, userID)
	if err != nil {
		respondWithAppError(c, err, "Failed to list companies")
		return
	}

	c.JSON(http.StatusOK, dto.ToListCompaniesResponse(companies))
}

// GetCompanyOverview godoc
// @Summary Get company overview
// @Description Retrieves a company owned by the authenticated user together with a summary of the resources created for it.
// @Tags companies
// @Produce json
// @Param company_id path string true "Company ID"
// @Success 200 {object} dto.CompanyOverviewResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id} [get]
func (h *CompanyHandler) GetCompanyOverview(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	companyID := c.Param("company_id")
	if companyID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Company ID is required"})
		return
	}

	overview, err := h.companyService.GetCompanyOverview(ctx, companyID, userID)
	if err != nil {
		respondWithAppError(c, err, "Failed to get company overview")
		return
	}

	c.JSON(http.StatusOK, overview)
}

// ListCompanyActivities godoc
// @Summary List company activities
// @Description Retrieves one page of a company's audit trail, newest first.
// @Tags companies
// @Produce json
// @Param company_id path string true "Company ID"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param next_token query string false "Cursor returned by the previous page"
// @Success 200 {object} dto.ListActivitiesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/activities [get]
func (h *CompanyHandler) ListCompanyActivities(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	companyID := c.Param("company_id")
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid limit parameter"})
		return
	}
	nextToken := c.Query("next_token")

	page, err := h.companyService.ListCompanyActivities(ctx, companyID, userID, limit, nextToken)
	if err != nil {
		respondWithAppError(c, err, "Failed to list company activities")
		return
	}

	c.JSON(http.StatusOK, page)
}
