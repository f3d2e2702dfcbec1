package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/emrekaya/folio-gateway/internal/app/services"
	"github.com/emrekaya/folio-gateway/internal/middleware"
)

// ExportController streams the generated portfolio PDF.
type ExportController struct {
	portfolioService services.PortfolioService
	exportService    *services.ExportService
}

// NewExportController creates a new ExportController
func NewExportController(portfolioService services.PortfolioService, exportService *services.ExportService) *ExportController {
	return &ExportController{
		portfolioService: portfolioService,
		exportService:    exportService,
	}
}

// Export generates the portfolio PDF for a student
// @Summary Export a student's approved portfolio as PDF
// @Description Cover page, one table per section with approved items only, signature block, watermark and page numbers
// @Tags faculty
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {file} binary "PDF document"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/export [get]
func (c *ExportController) Export(ctx *gin.Context) {
	token := middleware.Token(ctx)

	rec, err := c.portfolioService.Student(ctx, token, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Error loading student")
		return
	}

	data, err := c.exportService.GeneratePortfolioPDF(ctx, token, *rec)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Error generating portfolio document")
		return
	}

	filename := fmt.Sprintf("portfolio-%s.pdf", sanitizeFilename(rec.Name))
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, "application/pdf", data)
}

func sanitizeFilename(name string) string {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return "student"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '-', r == '_':
			return '-'
		}
		return -1
	}, name)
}
