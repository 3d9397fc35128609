package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/campusvoice/feedback-service/internal/services"
	"github.com/campusvoice/feedback-service/internal/utils"
)

type HandlerManager struct {
	authHandler     *AuthHandler
	feedbackHandler *FeedbackHandler
	catalogHandler  *CatalogHandler
}

func NewHandlerManager(
	authService services.AuthService,
	feedbackService services.FeedbackService,
	catalogService services.CatalogService,
	exportService services.ExportService,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		authHandler:     NewAuthHandler(authService, logger),
		feedbackHandler: NewFeedbackHandler(feedbackService, exportService, logger),
		catalogHandler:  NewCatalogHandler(catalogService, logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", HealthCheck)

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", hm.authHandler.Login)
			auth.POST("/signup", hm.authHandler.Signup)
		}

		feedback := v1.Group("/feedback")
		{
			feedback.POST("", hm.feedbackHandler.SubmitFeedback)
			feedback.GET("", hm.feedbackHandler.ListFeedback)
			feedback.PUT("/:id", hm.feedbackHandler.UpdateFeedback)
			feedback.DELETE("/:id", hm.feedbackHandler.DeleteFeedback)
			feedback.POST("/sample-data", hm.feedbackHandler.InitializeSampleData)
			feedback.GET("/export", hm.feedbackHandler.ExportFeedback)
		}

		courses := v1.Group("/courses")
		{
			courses.GET("", hm.catalogHandler.ListCourses)
			courses.POST("", hm.catalogHandler.AddCourse)
			courses.POST("/ensure", hm.catalogHandler.EnsureCourse)
			courses.DELETE("/:id", hm.catalogHandler.DeleteCourse)
		}

		faculties := v1.Group("/faculties")
		{
			faculties.GET("", hm.catalogHandler.ListFaculties)
			faculties.POST("", hm.catalogHandler.AddFaculty)
			faculties.DELETE("/:id", hm.catalogHandler.DeleteFaculty)

			// Assignment management
			faculties.GET("/:id/courses", hm.catalogHandler.CoursesByFaculty)
			faculties.POST("/:id/courses/:course_id", hm.catalogHandler.AssignCourse)
			faculties.DELETE("/:id/courses/:course_id", hm.catalogHandler.UnassignCourse)
		}
	}
}
