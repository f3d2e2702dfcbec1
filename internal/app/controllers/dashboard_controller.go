package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrekaya/folio-gateway/internal/app/models/dto"
	"github.com/emrekaya/folio-gateway/internal/app/services"
	"github.com/emrekaya/folio-gateway/internal/middleware"
)

// DashboardController serves the admin dashboard cross-tabulation.
type DashboardController struct {
	orgService services.OrgService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(orgService services.OrgService) *DashboardController {
	return &DashboardController{orgService: orgService}
}

// Summary returns role counts and per-section totals
// @Summary Get the dashboard summary
// @Description Role counts and per-section submission totals for the filtered population. Selecting "all colleges" resets the faculty filter.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param college query string false "College ID filter"
// @Param faculty query string false "Faculty ID filter"
// @Success 200 {object} dto.APIResponse{data=services.DashboardSummary} "Summary"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /dashboard [get]
func (c *DashboardController) Summary(ctx *gin.Context) {
	var filter services.DashboardFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid filter")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	snap, err := c.orgService.Snapshot(ctx, middleware.Token(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Error loading dashboard data")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(services.Summarize(snap, filter), ""))
}

// FacultyOptions returns the faculty filter choices for a college
// @Summary Get faculty filter options
// @Description Faculties reachable from the college, directly or through their lead. Empty college means the faculty filter is disabled.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param college query string false "College ID"
// @Success 200 {object} dto.APIResponse "Faculty options"
// @Router /dashboard/faculty-options [get]
func (c *DashboardController) FacultyOptions(ctx *gin.Context) {
	snap, err := c.orgService.Snapshot(ctx, middleware.Token(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Error loading dashboard data")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(services.FacultyOptions(snap, ctx.Query("college")), ""))
}
