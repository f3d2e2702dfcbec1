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

// OrgController serves the organization tree and its admin mutations.
type OrgController struct {
	orgService services.OrgService
}

// NewOrgController creates a new OrgController
func NewOrgController(orgService services.OrgService) *OrgController {
	return &OrgController{orgService: orgService}
}

// Snapshot returns the full organization state
// @Summary Get colleges and users
// @Description Returns every college and user; the hierarchy endpoints derive their views from this state
// @Tags organization
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=services.OrgSnapshot} "Organization snapshot"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /org [get]
func (c *OrgController) Snapshot(ctx *gin.Context) {
	snap, err := c.orgService.Snapshot(ctx, middleware.Token(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Error loading organization data")
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(snap, ""))
}

// nodeWithStats decorates users with their submission aggregates. Only student
// rows carry portfolio data; others report zeros.
type nodeWithStats struct {
	models.StudentRecord
	Stats hierarchy.Stats `json:"stats"`
}

func withStats(users []models.StudentRecord) []nodeWithStats {
	out := make([]nodeWithStats, 0, len(users))
	for _, u := range users {
		out = append(out, nodeWithStats{StudentRecord: u, Stats: hierarchy.StatsFor(u.Portfolio)})
	}
	return out
}

// Leads lists the lead faculties of a college
// @Summary Get the lead faculties of a college
// @Tags organization
// @Produce json
// @Security BearerAuth
// @Param id path string true "College ID"
// @Success 200 {object} dto.APIResponse "Lead faculties"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /org/colleges/{id}/leads [get]
func (c *OrgController) Leads(ctx *gin.Context) {
	snap, err := c.orgService.Snapshot(ctx, middleware.Token(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Error loading organization data")
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(withStats(hierarchy.LeadsOf(snap.Users, ctx.Param("id"))), ""))
}

// Faculties lists the faculties under a lead
// @Summary Get the faculties supervised by a lead faculty
// @Tags organization
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lead faculty ID"
// @Success 200 {object} dto.APIResponse "Faculties"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /org/leads/{id}/faculties [get]
func (c *OrgController) Faculties(ctx *gin.Context) {
	snap, err := c.orgService.Snapshot(ctx, middleware.Token(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Error loading organization data")
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(withStats(hierarchy.FacultiesOf(snap.Users, ctx.Param("id"))), ""))
}

// Students lists the students under a faculty
// @Summary Get the students supervised by a faculty
// @Tags organization
// @Produce json
// @Security BearerAuth
// @Param id path string true "Faculty ID"
// @Success 200 {object} dto.APIResponse "Students with submission stats"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /org/faculties/{id}/students [get]
func (c *OrgController) Students(ctx *gin.Context) {
	snap, err := c.orgService.Snapshot(ctx, middleware.Token(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Error loading organization data")
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(withStats(hierarchy.StudentsOf(snap.Users, ctx.Param("id"))), ""))
}

// CollegeLeadCandidates lists who may become a college's lead
// @Summary Get reassignment candidates for a college lead
// @Description Other leads across the system plus the college's own faculties (promotion candidates)
// @Tags organization
// @Produce json
// @Security BearerAuth
// @Param id path string true "College ID"
// @Success 200 {object} dto.APIResponse "Candidates"
// @Router /org/colleges/{id}/lead-candidates [get]
func (c *OrgController) CollegeLeadCandidates(ctx *gin.Context) {
	snap, err := c.orgService.Snapshot(ctx, middleware.Token(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Error loading organization data")
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(services.CollegeLeadCandidates(snap, ctx.Param("id")), ""))
}

// FacultyLeadCandidates lists the leads a faculty may move under
// @Summary Get reassignment candidates for a faculty's lead
// @Description Every lead faculty except the current one
// @Tags organization
// @Produce json
// @Security BearerAuth
// @Param id path string true "Faculty ID"
// @Success 200 {object} dto.APIResponse "Candidates"
// @Router /org/faculties/{id}/lead-candidates [get]
func (c *OrgController) FacultyLeadCandidates(ctx *gin.Context) {
	snap, err := c.orgService.Snapshot(ctx, middleware.Token(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Error loading organization data")
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(services.FacultyLeadCandidates(snap, ctx.Param("id")), ""))
}

// CreateCollege registers a new college
// @Summary Create a college
// @Tags organization
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCollegeRequest true "College information"
// @Success 201 {object} dto.APIResponse "College created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /org/colleges [post]
func (c *OrgController) CreateCollege(ctx *gin.Context) {
	var req dto.CreateCollegeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid college data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.orgService.CreateCollege(ctx, middleware.Token(ctx), req.Name, req.Location)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Error adding college")
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(result, result.Message))
}

// onboard handles the shared body of the four account-creation endpoints.
func (c *OrgController) onboard(ctx *gin.Context, role models.Role, fallback string) {
	var req dto.OnboardUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid user data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.orgService.OnboardUser(ctx, middleware.Token(ctx), role, upstream.OnboardUserInput{
		Name:      req.Name,
		Email:     req.Email,
		CollegeID: req.College,
		ParentID:  req.AssignedTo,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err, fallback)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(result, result.Message))
}

// CreateLeadFaculty registers a lead faculty account
// @Summary Create a lead faculty
// @Tags organization
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.OnboardUserRequest true "Account information"
// @Success 201 {object} dto.APIResponse "Account created"
// @Router /org/lead-faculties [post]
func (c *OrgController) CreateLeadFaculty(ctx *gin.Context) {
	c.onboard(ctx, models.RoleLeadFaculty, "Error adding lead faculty")
}

// CreateFaculty registers a faculty account
// @Summary Create a faculty
// @Tags organization
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.OnboardUserRequest true "Account information"
// @Success 201 {object} dto.APIResponse "Account created"
// @Router /org/faculties [post]
func (c *OrgController) CreateFaculty(ctx *gin.Context) {
	c.onboard(ctx, models.RoleFaculty, "Error adding faculty")
}

// CreateStudent registers a student account
// @Summary Create a student
// @Tags organization
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.OnboardUserRequest true "Account information"
// @Success 201 {object} dto.APIResponse "Account created"
// @Router /org/students [post]
func (c *OrgController) CreateStudent(ctx *gin.Context) {
	c.onboard(ctx, models.RoleStudent, "Error adding student")
}

// CreateAdmin registers an admin account
// @Summary Create an admin
// @Tags organization
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.OnboardUserRequest true "Account information"
// @Success 201 {object} dto.APIResponse "Account created"
// @Router /org/admins [post]
func (c *OrgController) CreateAdmin(ctx *gin.Context) {
	c.onboard(ctx, models.RoleAdmin, "Error adding admin")
}

// DeleteCollege removes a college
// @Summary Delete a college
// @Description Deletes the college upstream (relationships cascade there) and returns the refreshed snapshot. Clients showing the deleted node should step back to its parent level.
// @Tags organization
// @Produce json
// @Security BearerAuth
// @Param id path string true "College ID"
// @Success 200 {object} dto.APIResponse{data=services.OrgSnapshot} "Refreshed snapshot"
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Router /org/colleges/{id} [delete]
func (c *OrgController) DeleteCollege(ctx *gin.Context) {
	snap, err := c.orgService.DeleteCollege(ctx, middleware.Token(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Error deleting college")
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(snap, "College deleted"))
}

// DeleteUser removes a user
// @Summary Delete a user
// @Tags organization
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} dto.APIResponse{data=services.OrgSnapshot} "Refreshed snapshot"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /org/users/{id} [delete]
func (c *OrgController) DeleteUser(ctx *gin.Context) {
	snap, err := c.orgService.DeleteUser(ctx, middleware.Token(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Error deleting user")
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(snap, "User deleted"))
}

// ReassignCollegeLead installs a new lead for a college
// @Summary Reassign a college's lead faculty
// @Tags organization
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "College ID"
// @Param request body dto.ReassignLeadRequest true "New lead"
// @Success 200 {object} dto.APIResponse{data=services.OrgSnapshot} "Refreshed snapshot"
// @Router /org/colleges/{id}/lead [put]
func (c *OrgController) ReassignCollegeLead(ctx *gin.Context) {
	var req dto.ReassignLeadRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid lead data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	snap, err := c.orgService.ReassignCollegeLead(ctx, middleware.Token(ctx), ctx.Param("id"), req.LeadFacultyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Error reassigning lead faculty")
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(snap, "Lead faculty reassigned"))
}

// ReassignFacultyLead moves a faculty under a different lead
// @Summary Reassign a faculty's supervising lead
// @Tags organization
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Faculty ID"
// @Param request body dto.ReassignLeadRequest true "New lead"
// @Success 200 {object} dto.APIResponse{data=services.OrgSnapshot} "Refreshed snapshot"
// @Router /org/users/{id}/lead [put]
func (c *OrgController) ReassignFacultyLead(ctx *gin.Context) {
	var req dto.ReassignLeadRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid lead data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	snap, err := c.orgService.ReassignFacultyLead(ctx, middleware.Token(ctx), ctx.Param("id"), req.LeadFacultyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Error reassigning lead faculty")
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(snap, "Lead faculty reassigned"))
}

// Promote elevates a faculty to lead of their college
// @Summary Promote a faculty to lead faculty
// @Description The upstream demotes any incumbent lead of the same college atomically
// @Tags organization
// @Produce json
// @Security BearerAuth
// @Param id path string true "Faculty ID"
// @Success 200 {object} dto.APIResponse{data=services.OrgSnapshot} "Refreshed snapshot"
// @Failure 409 {object} dto.ErrorResponse "User is not a faculty or has no college"
// @Router /org/faculties/{id}/promote [put]
func (c *OrgController) Promote(ctx *gin.Context) {
	snap, err := c.orgService.Promote(ctx, middleware.Token(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Error promoting faculty")
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(snap, "Faculty promoted"))
}
