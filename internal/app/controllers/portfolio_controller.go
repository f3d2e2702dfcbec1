package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrekaya/folio-gateway/internal/app/hierarchy"
	"github.com/emrekaya/folio-gateway/internal/app/models"
	"github.com/emrekaya/folio-gateway/internal/app/models/dto"
	"github.com/emrekaya/folio-gateway/internal/app/services"
	"github.com/emrekaya/folio-gateway/internal/middleware"
	"github.com/emrekaya/folio-gateway/internal/upstream"
)

// PortfolioController serves the twelve section editors, the profile and
// the faculty review action.
type PortfolioController struct {
	portfolioService services.PortfolioService
}

// NewPortfolioController creates a new PortfolioController
func NewPortfolioController(portfolioService services.PortfolioService) *PortfolioController {
	return &PortfolioController{portfolioService: portfolioService}
}

// Sections lists the section schemas
// @Summary Get the portfolio section catalog
// @Description The fixed twelve categories with their labels and required fields
// @Tags portfolio
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "Section catalog"
// @Router /portfolio/sections [get]
func (c *PortfolioController) Sections(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(models.Categories, ""))
}

// List returns the caller's items in one section
// @Summary List items of a section
// @Tags portfolio
// @Produce json
// @Security BearerAuth
// @Param section path string true "Section key" example(researchPublications)
// @Success 200 {object} dto.APIResponse "Items"
// @Failure 404 {object} dto.ErrorResponse "Unknown section"
// @Router /portfolio/{section} [get]
func (c *PortfolioController) List(ctx *gin.Context) {
	items, err := c.portfolioService.List(ctx, middleware.Token(ctx), ctx.Param("section"))
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Error loading items")
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(items, ""))
}

// Create adds an item to a section
// @Summary Create an item
// @Description Fields are section-specific; required fields come from the section schema
// @Tags portfolio
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param section path string true "Section key"
// @Param request body object true "Item fields"
// @Success 201 {object} dto.APIResponse "Item created"
// @Failure 400 {object} dto.ErrorResponse "Missing required fields"
// @Router /portfolio/{section} [post]
func (c *PortfolioController) Create(ctx *gin.Context) {
	var fields map[string]any
	if err := ctx.ShouldBindJSON(&fields); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid item data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.portfolioService.Create(ctx, middleware.Token(ctx), ctx.Param("section"), fields); err != nil {
		middleware.HandleAPIError(ctx, err, "Error adding item")
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(nil, "Item created"))
}

// Update rewrites an item
// @Summary Update an item
// @Tags portfolio
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param section path string true "Section key"
// @Param itemId path string true "Item ID"
// @Param request body object true "Item fields"
// @Success 200 {object} dto.APIResponse "Item updated"
// @Failure 400 {object} dto.ErrorResponse "Missing required fields"
// @Router /portfolio/{section}/{itemId} [put]
func (c *PortfolioController) Update(ctx *gin.Context) {
	var fields map[string]any
	if err := ctx.ShouldBindJSON(&fields); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid item data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.portfolioService.Update(ctx, middleware.Token(ctx), ctx.Param("section"), ctx.Param("itemId"), fields); err != nil {
		middleware.HandleAPIError(ctx, err, "Error updating item")
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Item updated"))
}

// Delete removes an item
// @Summary Delete an item
// @Tags portfolio
// @Produce json
// @Security BearerAuth
// @Param section path string true "Section key"
// @Param itemId path string true "Item ID"
// @Success 200 {object} dto.APIResponse "Item deleted"
// @Router /portfolio/{section}/{itemId} [delete]
func (c *PortfolioController) Delete(ctx *gin.Context) {
	if err := c.portfolioService.Delete(ctx, middleware.Token(ctx), ctx.Param("section"), ctx.Param("itemId")); err != nil {
		middleware.HandleAPIError(ctx, err, "Error deleting item")
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Item deleted"))
}

// Summary returns the caller's submission aggregates
// @Summary Get own submission stats
// @Tags portfolio
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=hierarchy.Stats} "Aggregates"
// @Router /portfolio/summary [get]
func (c *PortfolioController) Summary(ctx *gin.Context) {
	rec, err := c.portfolioService.Me(ctx, middleware.Token(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Error loading portfolio")
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(hierarchy.StatsFor(rec.Portfolio), ""))
}

// Profile returns the caller's profile
// @Summary Get own profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "Student record with profile"
// @Router /profile [get]
func (c *PortfolioController) Profile(ctx *gin.Context) {
	rec, err := c.portfolioService.Me(ctx, middleware.Token(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Error loading profile")
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(rec, ""))
}

// UpdateProfile rewrites the caller's profile fields
// @Summary Update own profile
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Profile true "Profile fields"
// @Success 200 {object} dto.APIResponse "Profile updated"
// @Router /profile [put]
func (c *PortfolioController) UpdateProfile(ctx *gin.Context) {
	var profile models.Profile
	if err := ctx.ShouldBindJSON(&profile); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid profile data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.portfolioService.UpdateProfile(ctx, middleware.Token(ctx), profile); err != nil {
		middleware.HandleAPIError(ctx, err, "Error updating profile")
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Profile updated"))
}

// UploadPhoto stores a profile image
// @Summary Upload a profile photo
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image file"
// @Success 200 {object} dto.APIResponse{data=dto.UploadResponse} "Stored path"
// @Failure 400 {object} dto.ErrorResponse "No file supplied"
// @Router /profile/photo [post]
func (c *PortfolioController) UploadPhoto(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "No file supplied")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Error reading uploaded file")
		return
	}
	defer file.Close()

	path, err := c.portfolioService.UploadPhoto(ctx, middleware.Token(ctx), fileHeader.Filename, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Error uploading photo")
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.UploadResponse{Path: path}, "Photo uploaded"))
}

// Student returns one student's record for faculty review
// @Summary Get a student's full record
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse "Student record with stats"
// @Router /students/{id} [get]
func (c *PortfolioController) Student(ctx *gin.Context) {
	rec, err := c.portfolioService.Student(ctx, middleware.Token(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Error loading student")
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{
		"student": rec,
		"stats":   hierarchy.StatsFor(rec.Portfolio),
	}, ""))
}

// Review records a faculty decision on one item
// @Summary Approve or reject a portfolio item
// @Description Rejection requires non-empty feedback; such requests are refused before reaching the upstream
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ReviewRequest true "Review decision"
// @Success 200 {object} dto.APIResponse "Review recorded"
// @Failure 400 {object} dto.ErrorResponse "Missing feedback on rejection"
// @Router /review [put]
func (c *PortfolioController) Review(ctx *gin.Context) {
	var req dto.ReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid review data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	err := c.portfolioService.Review(ctx, middleware.Token(ctx), upstream.ReviewInput{
		StudentID: req.StudentID,
		Section:   req.Section,
		ItemID:    req.ItemID,
		Status:    models.ItemStatus(req.Status),
		Feedback:  req.Feedback,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Error submitting review")
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Review recorded"))
}
