package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusvoice/feedback-service/internal/services"
	"github.com/campusvoice/feedback-service/internal/utils"
)

type FeedbackHandler struct {
	BaseHandler
	feedbackService services.FeedbackService
	exportService   services.ExportService
}

func NewFeedbackHandler(
	feedbackService services.FeedbackService,
	exportService services.ExportService,
	logger utils.Logger,
) *FeedbackHandler {
	return &FeedbackHandler{
		BaseHandler:     NewBaseHandler(logger),
		feedbackService: feedbackService,
		exportService:   exportService,
	}
}

// SubmitFeedback creates a new feedback record
func (h *FeedbackHandler) SubmitFeedback(c *gin.Context) {
	var req services.SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request payload", err)
		return
	}

	created, err := h.feedbackService.Submit(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err, "Failed to submit feedback. Please try again.")
		return
	}

	h.RespondWithSuccess(c, http.StatusCreated, "Feedback submitted successfully", created)
}

// ListFeedback returns all feedback, or only one student's records when the
// email query parameter is present.
func (h *FeedbackHandler) ListFeedback(c *gin.Context) {
	all, err := h.feedbackService.List(c.Request.Context(), c.Query("email"))
	if err != nil {
		h.handleServiceError(c, err, "Failed to load feedback. Please try again.")
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "", all)
}

// UpdateFeedback patches the mutable fields of a feedback record
func (h *FeedbackHandler) UpdateFeedback(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	var req services.UpdateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request payload", err)
		return
	}

	updated, err := h.feedbackService.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err, "Failed to update feedback. Please try again.")
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Feedback updated successfully", updated)
}

// DeleteFeedback removes a feedback record
func (h *FeedbackHandler) DeleteFeedback(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	if err := h.feedbackService.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err, "Failed to delete feedback. Please try again.")
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Feedback deleted successfully", nil)
}

// InitializeSampleData seeds the demo records on a fresh store
func (h *FeedbackHandler) InitializeSampleData(c *gin.Context) {
	data, err := h.feedbackService.InitializeSampleData(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err, "Failed to initialize data")
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "", data)
}

// ExportFeedback streams the full collection as a CSV or Excel report.
func (h *FeedbackHandler) ExportFeedback(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")

	switch format {
	case "csv":
		data, err := h.exportService.ExportFeedbackToCSV(c.Request.Context())
		if err != nil {
			h.handleServiceError(c, err, "Failed to export feedback. Please try again.")
			return
		}
		c.Header("Content-Disposition", `attachment; filename="feedback.csv"`)
		c.Data(http.StatusOK, "text/csv", data)
	case "xlsx":
		data, err := h.exportService.ExportFeedbackToExcel(c.Request.Context())
		if err != nil {
			h.handleServiceError(c, err, "Failed to export feedback. Please try again.")
			return
		}
		c.Header("Content-Disposition", `attachment; filename="feedback.xlsx"`)
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	default:
		h.RespondWithError(c, http.StatusBadRequest, "Unsupported export format", nil, format)
	}
}
