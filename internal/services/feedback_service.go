package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/campusvoice/feedback-service/internal/events"
	"github.com/campusvoice/feedback-service/internal/models"
	"github.com/campusvoice/feedback-service/internal/store"
	"github.com/campusvoice/feedback-service/internal/validator"
)

// FeedbackService is the feedback CRUD surface. Every operation is one
// read-modify-write cycle against the feedbackData collection; there is no
// cross-operation locking, matching the storage contract it mocks.
type FeedbackService interface {
	Submit(ctx context.Context, req *SubmitFeedbackRequest) (*models.Feedback, error)

	// List returns every record, or only those whose studentEmail equals
	// emailFilter when it is non-empty. Insertion order is preserved.
	List(ctx context.Context, emailFilter string) ([]models.Feedback, error)

	Update(ctx context.Context, id int64, req *UpdateFeedbackRequest) (*models.Feedback, error)
	Delete(ctx context.Context, id int64) error

	// InitializeSampleData seeds three canned records the first time the
	// collection key is seen. An existing collection is returned as-is,
	// even when the caller has deleted every record from it.
	InitializeSampleData(ctx context.Context) ([]models.Feedback, error)
}

type SubmitFeedbackRequest struct {
	StudentName  string `json:"studentName" validate:"required"`
	StudentEmail string `json:"studentEmail" validate:"required,email"`
	FacultyName  string `json:"facultyName" validate:"required"`
	Course       string `json:"course" validate:"required"`
	Rating       int    `json:"rating" validate:"rating"`
	Comments     string `json:"comments" validate:"max=500"`
}

// UpdateFeedbackRequest patches the owner-mutable fields. Identity and
// provenance fields (id, date, studentName, studentEmail) never change.
type UpdateFeedbackRequest struct {
	FacultyName *string `json:"facultyName,omitempty"`
	Course      *string `json:"course,omitempty"`
	Rating      *int    `json:"rating,omitempty" validate:"omitempty,rating"`
	Comments    *string `json:"comments,omitempty" validate:"omitempty,max=500"`
}

type feedbackService struct {
	store     store.Store
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
	latency   latency
}

func NewFeedbackService(
	st store.Store,
	logger *slog.Logger,
	v *validator.Validator,
	publisher events.EventPublisher,
	delay time.Duration,
) FeedbackService {
	return &feedbackService{
		store:     st,
		logger:    logger,
		validator: v,
		publisher: publisher,
		latency:   latency{delay: delay},
	}
}

func (s *feedbackService) Submit(ctx context.Context, req *SubmitFeedbackRequest) (*models.Feedback, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	all, _, err := s.loadFeedback(ctx)
	if err != nil {
		return nil, err
	}

	created := models.Feedback{
		ID:           nextID(),
		StudentName:  req.StudentName,
		StudentEmail: req.StudentEmail,
		FacultyName:  req.FacultyName,
		Course:       req.Course,
		Rating:       req.Rating,
		Comments:     req.Comments,
		Date:         localeDate(),
	}

	all = append(all, created)
	if err := s.store.Write(ctx, models.StorageKeyFeedback, all); err != nil {
		return nil, fmt.Errorf("failed to save feedback: %w", err)
	}

	if err := s.latency.simulate(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("Feedback submitted",
		"feedback_id", created.ID,
		"student_email", created.StudentEmail,
		"rating", created.Rating)

	s.publish(ctx, events.NewEvent(events.EventFeedbackSubmitted, events.FeedbackSubmittedEvent{
		FeedbackID:   created.ID,
		StudentEmail: created.StudentEmail,
		FacultyName:  created.FacultyName,
		Course:       created.Course,
		Rating:       created.Rating,
	}))

	return &created, nil
}

func (s *feedbackService) List(ctx context.Context, emailFilter string) ([]models.Feedback, error) {
	all, _, err := s.loadFeedback(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.latency.simulate(ctx); err != nil {
		return nil, err
	}

	if emailFilter == "" {
		return all, nil
	}

	filtered := []models.Feedback{}
	for _, fb := range all {
		if fb.StudentEmail == emailFilter {
			filtered = append(filtered, fb)
		}
	}
	return filtered, nil
}

func (s *feedbackService) Update(ctx context.Context, id int64, req *UpdateFeedbackRequest) (*models.Feedback, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	all, _, err := s.loadFeedback(ctx)
	if err != nil {
		return nil, err
	}

	index := indexOfFeedback(all, id)
	if index == -1 {
		return nil, ErrFeedbackNotFound
	}

	record := &all[index]
	if req.FacultyName != nil {
		record.FacultyName = *req.FacultyName
	}
	if req.Course != nil {
		record.Course = *req.Course
	}
	if req.Rating != nil {
		record.Rating = *req.Rating
	}
	if req.Comments != nil {
		record.Comments = *req.Comments
	}
	record.UpdatedAt = localeDate()

	if err := s.store.Write(ctx, models.StorageKeyFeedback, all); err != nil {
		return nil, fmt.Errorf("failed to save feedback: %w", err)
	}

	if err := s.latency.simulate(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("Feedback updated", "feedback_id", record.ID)

	s.publish(ctx, events.NewEvent(events.EventFeedbackUpdated, events.FeedbackUpdatedEvent{
		FeedbackID:   record.ID,
		StudentEmail: record.StudentEmail,
		Rating:       record.Rating,
		UpdatedAt:    record.UpdatedAt,
	}))

	updated := *record
	return &updated, nil
}

func (s *feedbackService) Delete(ctx context.Context, id int64) error {
	all, _, err := s.loadFeedback(ctx)
	if err != nil {
		return err
	}

	index := indexOfFeedback(all, id)
	if index == -1 {
		return ErrFeedbackNotFound
	}

	deleted := all[index]
	all = append(all[:index], all[index+1:]...)
	if err := s.store.Write(ctx, models.StorageKeyFeedback, all); err != nil {
		return fmt.Errorf("failed to save feedback: %w", err)
	}

	if err := s.latency.simulate(ctx); err != nil {
		return err
	}

	s.logger.Info("Feedback deleted", "feedback_id", deleted.ID)

	s.publish(ctx, events.NewEvent(events.EventFeedbackDeleted, events.FeedbackDeletedEvent{
		FeedbackID:   deleted.ID,
		StudentEmail: deleted.StudentEmail,
	}))

	return nil
}

func (s *feedbackService) InitializeSampleData(ctx context.Context) ([]models.Feedback, error) {
	existing, found, err := s.loadFeedback(ctx)
	if err != nil {
		return nil, err
	}

	// An empty-but-present collection means the caller deleted everything;
	// reseeding would resurrect records behind their back.
	if found {
		if err := s.latency.simulate(ctx); err != nil {
			return nil, err
		}
		return existing, nil
	}

	seeded := sampleFeedback()
	if err := s.store.Write(ctx, models.StorageKeyFeedback, seeded); err != nil {
		return nil, fmt.Errorf("failed to save feedback: %w", err)
	}

	if err := s.latency.simulate(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("Seeded sample feedback", "count", len(seeded))
	return seeded, nil
}

func (s *feedbackService) loadFeedback(ctx context.Context) ([]models.Feedback, bool, error) {
	all := []models.Feedback{}
	found, err := s.store.Read(ctx, models.StorageKeyFeedback, &all)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load feedback: %w", err)
	}
	return all, found, nil
}

func (s *feedbackService) publish(ctx context.Context, event *events.NotificationEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishNotificationEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish event", "event_type", event.Type, "error", err)
	}
}

func indexOfFeedback(all []models.Feedback, id int64) int {
	for i := range all {
		if all[i].ID == id {
			return i
		}
	}
	return -1
}
