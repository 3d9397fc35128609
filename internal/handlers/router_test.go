package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusvoice/feedback-service/internal/events"
	"github.com/campusvoice/feedback-service/internal/services"
	"github.com/campusvoice/feedback-service/internal/store"
	"github.com/campusvoice/feedback-service/internal/utils"
	"github.com/campusvoice/feedback-service/internal/validator"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	slogLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	logger := utils.NewSlogLogger(slogLogger)

	st := store.NewMemoryStore()
	require.NoError(t, services.EnsureDefaults(context.Background(), st, slogLogger))

	v := validator.New()
	publisher := events.NewMockEventPublisher(slogLogger)

	authService := services.NewAuthService(st, slogLogger, v, 0)
	feedbackService := services.NewFeedbackService(st, slogLogger, v, publisher, 0)
	catalogService := services.NewCatalogService(st, slogLogger, publisher, 0)
	exportService := services.NewExportService(st, slogLogger, 0)

	router := gin.New()
	NewHandlerManager(authService, feedbackService, catalogService, exportService, logger).SetupRoutes(router)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "feedback-service", body["service"])
}

func TestLoginEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    "admin@college.edu",
		"password": "admin123",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["token"])

	rec = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    "admin@college.edu",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body = decodeEnvelope(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Incorrect password", body["message"])
}

func TestSignupEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/signup", gin.H{
		"firstName": "Jane",
		"lastName":  "Smith",
		"email":     "jane@student.edu",
		"password":  "secret12",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "Account created successfully", body["message"])

	// Duplicate email is a conflict.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/auth/signup", gin.H{
		"firstName": "Jane",
		"lastName":  "Again",
		"email":     "jane@student.edu",
		"password":  "secret12",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	body = decodeEnvelope(t, rec)
	assert.Equal(t, "Email already registered", body["message"])
}

func TestFeedbackEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/feedback", gin.H{
		"studentName":  "John Doe",
		"studentEmail": "john@student.edu",
		"facultyName":  "Dr. Sarah Wilson",
		"course":       "AI Basics",
		"rating":       5,
		"comments":     "Great course",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "Feedback submitted successfully", body["message"])
	created := body["data"].(map[string]any)
	id := int64(created["id"].(float64))
	require.NotZero(t, id)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/feedback?email=john@student.edu", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	body = decodeEnvelope(t, rec)
	assert.Len(t, body["data"], 1)

	rec = doJSON(t, router, http.MethodPut, "/api/v1/feedback/12345", gin.H{"rating": 3})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	body = decodeEnvelope(t, rec)
	assert.Equal(t, "Feedback not found", body["message"])

	// Out-of-range rating fails validation with field details.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/feedback", gin.H{
		"studentName":  "John Doe",
		"studentEmail": "john@student.edu",
		"facultyName":  "Dr. Sarah Wilson",
		"course":       "AI Basics",
		"rating":       9,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body = decodeEnvelope(t, rec)
	assert.Equal(t, "Validation failed", body["message"])
	assert.NotEmpty(t, body["details"])
}

func TestCatalogEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/courses", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Len(t, body["data"], 6)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/courses", gin.H{"name": "Compilers"})
	assert.Equal(t, http.StatusCreated, rec.Code)
	body = decodeEnvelope(t, rec)
	assert.Equal(t, "Course added successfully", body["message"])

	rec = doJSON(t, router, http.MethodGet, "/api/v1/faculties/1/courses", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	body = decodeEnvelope(t, rec)
	assert.Len(t, body["data"], 2)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/faculties/1/courses/6", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	body = decodeEnvelope(t, rec)
	assert.Equal(t, "Course assigned successfully", body["message"])

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/faculties/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	body = decodeEnvelope(t, rec)
	assert.Equal(t, "Faculty not found", body["message"])

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/courses/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/feedback/export?format=csv", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "feedback.csv")

	rec = doJSON(t, router, http.MethodGet, "/api/v1/feedback/export?format=pdf", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
