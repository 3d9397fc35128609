package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusvoice/feedback-service/internal/services"
	"github.com/campusvoice/feedback-service/internal/utils"
)

type CatalogHandler struct {
	BaseHandler
	catalogService services.CatalogService
}

func NewCatalogHandler(catalogService services.CatalogService, logger utils.Logger) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler:    NewBaseHandler(logger),
		catalogService: catalogService,
	}
}

type AddCatalogEntryRequest struct {
	Name string `json:"name" binding:"required"`
}

// ListCourses returns the course catalog
func (h *CatalogHandler) ListCourses(c *gin.Context) {
	courses, err := h.catalogService.Courses(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err, "Failed to load courses. Please try again.")
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, "", courses)
}

// AddCourse creates a course from its name
func (h *CatalogHandler) AddCourse(c *gin.Context) {
	var req AddCatalogEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request payload", err)
		return
	}

	created, err := h.catalogService.AddCourse(c.Request.Context(), req.Name)
	if err != nil {
		h.handleServiceError(c, err, "Failed to add course. Please try again.")
		return
	}

	h.RespondWithSuccess(c, http.StatusCreated, "Course added successfully", created)
}

// EnsureCourse returns the course with the given name, creating it if needed
func (h *CatalogHandler) EnsureCourse(c *gin.Context) {
	var req AddCatalogEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request payload", err)
		return
	}

	course, err := h.catalogService.EnsureCourseExists(c.Request.Context(), req.Name)
	if err != nil {
		h.handleServiceError(c, err, "Failed to ensure course exists. Please try again.")
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "", course)
}

// DeleteCourse removes a course; existing feedback and assignment lists are
// left untouched
func (h *CatalogHandler) DeleteCourse(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	if err := h.catalogService.DeleteCourse(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err, "Failed to delete course. Please try again.")
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Course deleted successfully", nil)
}

// ListFaculties returns the faculty catalog
func (h *CatalogHandler) ListFaculties(c *gin.Context) {
	faculties, err := h.catalogService.Faculties(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err, "Failed to load faculties. Please try again.")
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, "", faculties)
}

// AddFaculty creates a faculty member with an empty assignment list
func (h *CatalogHandler) AddFaculty(c *gin.Context) {
	var req AddCatalogEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request payload", err)
		return
	}

	created, err := h.catalogService.AddFaculty(c.Request.Context(), req.Name)
	if err != nil {
		h.handleServiceError(c, err, "Failed to add faculty. Please try again.")
		return
	}

	h.RespondWithSuccess(c, http.StatusCreated, "Faculty added successfully", created)
}

// DeleteFaculty removes a faculty member
func (h *CatalogHandler) DeleteFaculty(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	if err := h.catalogService.DeleteFaculty(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err, "Failed to delete faculty. Please try again.")
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Faculty deleted successfully", nil)
}

// CoursesByFaculty lists the courses currently assigned to a faculty member
func (h *CatalogHandler) CoursesByFaculty(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	courses, err := h.catalogService.CoursesByFaculty(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err, "Failed to load faculty courses. Please try again.")
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "", courses)
}

// AssignCourse adds a course to a faculty's assignment list, idempotently
func (h *CatalogHandler) AssignCourse(c *gin.Context) {
	facultyID := h.parseIDParam(c, "id")
	if facultyID == 0 {
		return
	}
	courseID := h.parseIDParam(c, "course_id")
	if courseID == 0 {
		return
	}

	faculty, err := h.catalogService.AssignCourse(c.Request.Context(), facultyID, courseID)
	if err != nil {
		h.handleServiceError(c, err, "Failed to assign course. Please try again.")
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Course assigned successfully", faculty)
}

// UnassignCourse removes a course from a faculty's assignment list
func (h *CatalogHandler) UnassignCourse(c *gin.Context) {
	facultyID := h.parseIDParam(c, "id")
	if facultyID == 0 {
		return
	}
	courseID := h.parseIDParam(c, "course_id")
	if courseID == 0 {
		return
	}

	faculty, err := h.catalogService.UnassignCourse(c.Request.Context(), facultyID, courseID)
	if err != nil {
		h.handleServiceError(c, err, "Failed to unassign course. Please try again.")
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Course unassigned successfully", faculty)
}
