package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/emrekaya/folio-gateway/internal/app/controllers"
	"github.com/emrekaya/folio-gateway/internal/app/models"
	"github.com/emrekaya/folio-gateway/internal/app/models/dto"
	"github.com/emrekaya/folio-gateway/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	orgController *controllers.OrgController,
	portfolioController *controllers.PortfolioController,
	dashboardController *controllers.DashboardController,
	exportController *controllers.ExportController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/forgot-password", authController.ForgotPassword)
		auth.POST("/reset-password", authController.ResetPassword)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(middleware.AuthRequired())
	{
		authenticated.POST("/auth/change-password", authController.ChangePassword)

		// Organization management: admins and super admins only
		org := authenticated.Group("/org")
		org.Use(middleware.RoleRequired(string(models.RoleAdmin), string(models.RoleSuperAdmin)))
		{
			org.GET("", orgController.Snapshot)
			org.GET("/colleges/:id/leads", orgController.Leads)
			org.GET("/leads/:id/faculties", orgController.Faculties)
			org.GET("/faculties/:id/students", orgController.Students)
			org.GET("/colleges/:id/lead-candidates", orgController.CollegeLeadCandidates)
			org.GET("/faculties/:id/lead-candidates", orgController.FacultyLeadCandidates)

			org.POST("/colleges", orgController.CreateCollege)
			org.POST("/lead-faculties", orgController.CreateLeadFaculty)
			org.POST("/faculties", orgController.CreateFaculty)
			org.POST("/students", orgController.CreateStudent)

			org.DELETE("/colleges/:id", orgController.DeleteCollege)
			org.DELETE("/users/:id", orgController.DeleteUser)

			org.PUT("/colleges/:id/lead", orgController.ReassignCollegeLead)
			org.PUT("/users/:id/lead", orgController.ReassignFacultyLead)
			org.PUT("/faculties/:id/promote", orgController.Promote)

			// Admin accounts may only be created by a super admin
			org.POST("/admins",
				middleware.RoleRequired(string(models.RoleSuperAdmin)),
				orgController.CreateAdmin)
		}

		// Dashboard: any staff role
		dashboard := authenticated.Group("/dashboard")
		dashboard.Use(middleware.RoleRequired(
			string(models.RoleAdmin),
			string(models.RoleSuperAdmin),
			string(models.RoleLeadFaculty),
			string(models.RoleFaculty),
		))
		{
			dashboard.GET("", dashboardController.Summary)
			dashboard.GET("/faculty-options", dashboardController.FacultyOptions)
		}

		// Portfolio editors: students own their sections
		portfolio := authenticated.Group("/portfolio")
		{
			portfolio.GET("/sections", portfolioController.Sections)
			portfolio.GET("/summary", portfolioController.Summary)

			portfolioStudent := portfolio.Group("")
			portfolioStudent.Use(middleware.RoleRequired(string(models.RoleStudent)))
			{
				portfolioStudent.GET("/:section", portfolioController.List)
				portfolioStudent.POST("/:section", portfolioController.Create)
				portfolioStudent.PUT("/:section/:itemId", portfolioController.Update)
				portfolioStudent.DELETE("/:section/:itemId", portfolioController.Delete)
			}
		}

		// Profile
		profile := authenticated.Group("/profile")
		{
			profile.GET("", portfolioController.Profile)
			profile.PUT("", portfolioController.UpdateProfile)
			profile.POST("/photo", portfolioController.UploadPhoto)
		}

		// Faculty review and export
		faculty := authenticated.Group("")
		faculty.Use(middleware.RoleRequired(string(models.RoleFaculty), string(models.RoleLeadFaculty)))
		{
			faculty.GET("/students/:id", portfolioController.Student)
			faculty.PUT("/review", portfolioController.Review)
			faculty.GET("/students/:id/export", exportController.Export)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewAPIResponse(gin.H{"status": "ok"}, ""))
	})
}
