package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campusvoice/feedback-service/internal/services"
	"github.com/campusvoice/feedback-service/internal/utils"
)

// ===== COMMON RESPONSE STRUCTURES =====

// Envelope is the uniform response wrapper: success plus either data or a
// user-facing message.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// ===== BASE HANDLER STRUCT =====

// BaseHandler provides shared responding and logging for all handlers
type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{
		logger: logger,
	}
}

// RespondWithSuccess sends the success envelope
func (h *BaseHandler) RespondWithSuccess(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// RespondWithError sends a consistent error response and logs it
func (h *BaseHandler) RespondWithError(c *gin.Context, statusCode int, message string, err error, details ...interface{}) {
	resp := ErrorResponse{
		Success: false,
		Message: message,
	}
	if len(details) > 0 {
		resp.Details = details[0]
	}

	if err != nil {
		h.logger.LogError(err, message,
			"status_code", statusCode,
			"method", c.Request.Method,
			"path", c.Request.URL.Path)
	} else {
		h.logger.Warn(message,
			"status_code", statusCode,
			"method", c.Request.Method,
			"path", c.Request.URL.Path)
	}

	c.JSON(statusCode, resp)
}

// parseIDParam reads a numeric id path parameter, responding with 400 and
// returning 0 when it is malformed.
func (h *BaseHandler) parseIDParam(c *gin.Context, param string) int64 {
	idStr := c.Param(param)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id == 0 {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid "+param, err)
		return 0
	}
	return id
}

// handleServiceError translates a service error into the envelope.
// fallbackMessage covers unexpected faults, in the "Failed to … Please try
// again." wording the clients display verbatim.
func (h *BaseHandler) handleServiceError(c *gin.Context, err error, fallbackMessage string) {
	var validationErrors services.ValidationErrors
	switch {
	case errors.As(err, &validationErrors):
		h.RespondWithError(c, http.StatusBadRequest, "Validation failed", err, validationErrors)
	case services.IsValidation(err):
		h.RespondWithError(c, http.StatusBadRequest, err.Error(), err)
	case services.IsNotFound(err):
		h.RespondWithError(c, http.StatusNotFound, err.Error(), err)
	case services.IsConflict(err):
		h.RespondWithError(c, http.StatusConflict, err.Error(), err)
	default:
		h.RespondWithError(c, http.StatusInternalServerError, fallbackMessage, err)
	}
}

// HealthCheck responds with the service liveness payload.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "feedback-service",
	})
}
