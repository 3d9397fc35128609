package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/campusvoice/feedback-service/internal/events"
	"github.com/campusvoice/feedback-service/internal/models"
	"github.com/campusvoice/feedback-service/internal/store"
)

// CatalogService manages courses, faculties and the faculty-course
// assignment lists.
//
// Deletions do not cascade: feedback keeps its denormalized names and
// assignment lists keep dangling course ids. CoursesByFaculty filters those
// out on read instead.
type CatalogService interface {
	Courses(ctx context.Context) ([]models.Course, error)
	Faculties(ctx context.Context) ([]models.Faculty, error)

	AddCourse(ctx context.Context, name string) (*models.Course, error)
	AddFaculty(ctx context.Context, name string) (*models.Faculty, error)
	DeleteCourse(ctx context.Context, id int64) error
	DeleteFaculty(ctx context.Context, id int64) error

	// EnsureCourseExists returns the course matching name
	// case-insensitively, creating it when absent.
	EnsureCourseExists(ctx context.Context, name string) (*models.Course, error)

	CoursesByFaculty(ctx context.Context, facultyID int64) ([]models.Course, error)
	AssignCourse(ctx context.Context, facultyID, courseID int64) (*models.Faculty, error)
	UnassignCourse(ctx context.Context, facultyID, courseID int64) (*models.Faculty, error)
}

type catalogService struct {
	store     store.Store
	logger    *slog.Logger
	publisher events.EventPublisher
	latency   latency
}

func NewCatalogService(st store.Store, logger *slog.Logger, publisher events.EventPublisher, delay time.Duration) CatalogService {
	return &catalogService{
		store:     st,
		logger:    logger,
		publisher: publisher,
		latency:   latency{delay: delay},
	}
}

func (s *catalogService) Courses(ctx context.Context) ([]models.Course, error) {
	courses, err := s.loadCourses(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.latency.simulate(ctx); err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *catalogService) Faculties(ctx context.Context) ([]models.Faculty, error) {
	faculties, err := s.loadFaculties(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.latency.simulate(ctx); err != nil {
		return nil, err
	}
	return faculties, nil
}

func (s *catalogService) AddCourse(ctx context.Context, name string) (*models.Course, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, NewValidationError("name", "is required", name)
	}

	courses, err := s.loadCourses(ctx)
	if err != nil {
		return nil, err
	}

	created := models.Course{ID: nextID(), Name: name}
	courses = append(courses, created)
	if err := s.store.Write(ctx, models.StorageKeyCourses, courses); err != nil {
		return nil, fmt.Errorf("failed to save courses: %w", err)
	}

	if err := s.latency.simulate(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("Course added", "course_id", created.ID, "name", created.Name)
	return &created, nil
}

func (s *catalogService) AddFaculty(ctx context.Context, name string) (*models.Faculty, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, NewValidationError("name", "is required", name)
	}

	faculties, err := s.loadFaculties(ctx)
	if err != nil {
		return nil, err
	}

	created := models.Faculty{ID: nextID(), Name: name, AssignedCourses: []int64{}}
	faculties = append(faculties, created)
	if err := s.store.Write(ctx, models.StorageKeyFaculties, faculties); err != nil {
		return nil, fmt.Errorf("failed to save faculties: %w", err)
	}

	if err := s.latency.simulate(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("Faculty added", "faculty_id", created.ID, "name", created.Name)
	return &created, nil
}

func (s *catalogService) DeleteCourse(ctx context.Context, id int64) error {
	courses, err := s.loadCourses(ctx)
	if err != nil {
		return err
	}

	index := -1
	for i := range courses {
		if courses[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return ErrCourseNotFound
	}

	// Feedback records and assignment lists referencing this course are
	// left untouched.
	courses = append(courses[:index], courses[index+1:]...)
	if err := s.store.Write(ctx, models.StorageKeyCourses, courses); err != nil {
		return fmt.Errorf("failed to save courses: %w", err)
	}

	if err := s.latency.simulate(ctx); err != nil {
		return err
	}

	s.logger.Info("Course deleted", "course_id", id)
	return nil
}

func (s *catalogService) DeleteFaculty(ctx context.Context, id int64) error {
	faculties, err := s.loadFaculties(ctx)
	if err != nil {
		return err
	}

	index := -1
	for i := range faculties {
		if faculties[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return ErrFacultyNotFound
	}

	faculties = append(faculties[:index], faculties[index+1:]...)
	if err := s.store.Write(ctx, models.StorageKeyFaculties, faculties); err != nil {
		return fmt.Errorf("failed to save faculties: %w", err)
	}

	if err := s.latency.simulate(ctx); err != nil {
		return err
	}

	s.logger.Info("Faculty deleted", "faculty_id", id)
	return nil
}

func (s *catalogService) EnsureCourseExists(ctx context.Context, name string) (*models.Course, error) {
	courses, err := s.loadCourses(ctx)
	if err != nil {
		return nil, err
	}

	normalized := strings.ToLower(strings.TrimSpace(name))
	for i := range courses {
		if strings.ToLower(courses[i].Name) == normalized {
			existing := courses[i]
			return &existing, nil
		}
	}

	return s.AddCourse(ctx, name)
}

func (s *catalogService) CoursesByFaculty(ctx context.Context, facultyID int64) ([]models.Course, error) {
	faculties, err := s.loadFaculties(ctx)
	if err != nil {
		return nil, err
	}

	faculty := findFaculty(faculties, facultyID)
	if faculty == nil {
		return nil, ErrFacultyNotFound
	}

	courses, err := s.loadCourses(ctx)
	if err != nil {
		return nil, err
	}

	// Course-collection order, dangling assignment ids dropped.
	assigned := []models.Course{}
	for _, course := range courses {
		if faculty.IsAssigned(course.ID) {
			assigned = append(assigned, course)
		}
	}

	if err := s.latency.simulate(ctx); err != nil {
		return nil, err
	}
	return assigned, nil
}

func (s *catalogService) AssignCourse(ctx context.Context, facultyID, courseID int64) (*models.Faculty, error) {
	faculties, err := s.loadFaculties(ctx)
	if err != nil {
		return nil, err
	}

	faculty := findFaculty(faculties, facultyID)
	if faculty == nil {
		return nil, ErrFacultyNotFound
	}

	if !faculty.IsAssigned(courseID) {
		faculty.AssignedCourses = append(faculty.AssignedCourses, courseID)
		if err := s.store.Write(ctx, models.StorageKeyFaculties, faculties); err != nil {
			return nil, fmt.Errorf("failed to save faculties: %w", err)
		}

		s.publish(ctx, events.NewEvent(events.EventCourseAssigned, events.CourseAssignmentEvent{
			FacultyID:   faculty.ID,
			FacultyName: faculty.Name,
			CourseID:    courseID,
		}))
	}

	if err := s.latency.simulate(ctx); err != nil {
		return nil, err
	}

	updated := *faculty
	return &updated, nil
}

func (s *catalogService) UnassignCourse(ctx context.Context, facultyID, courseID int64) (*models.Faculty, error) {
	faculties, err := s.loadFaculties(ctx)
	if err != nil {
		return nil, err
	}

	faculty := findFaculty(faculties, facultyID)
	if faculty == nil {
		return nil, ErrFacultyNotFound
	}

	for i, id := range faculty.AssignedCourses {
		if id == courseID {
			faculty.AssignedCourses = append(faculty.AssignedCourses[:i], faculty.AssignedCourses[i+1:]...)
			if err := s.store.Write(ctx, models.StorageKeyFaculties, faculties); err != nil {
				return nil, fmt.Errorf("failed to save faculties: %w", err)
			}

			s.publish(ctx, events.NewEvent(events.EventCourseUnassigned, events.CourseAssignmentEvent{
				FacultyID:   faculty.ID,
				FacultyName: faculty.Name,
				CourseID:    courseID,
			}))
			break
		}
	}

	if err := s.latency.simulate(ctx); err != nil {
		return nil, err
	}

	updated := *faculty
	return &updated, nil
}

func (s *catalogService) loadCourses(ctx context.Context) ([]models.Course, error) {
	courses := []models.Course{}
	if _, err := s.store.Read(ctx, models.StorageKeyCourses, &courses); err != nil {
		return nil, fmt.Errorf("failed to load courses: %w", err)
	}
	return courses, nil
}

func (s *catalogService) loadFaculties(ctx context.Context) ([]models.Faculty, error) {
	faculties := []models.Faculty{}
	if _, err := s.store.Read(ctx, models.StorageKeyFaculties, &faculties); err != nil {
		return nil, fmt.Errorf("failed to load faculties: %w", err)
	}
	return faculties, nil
}

func (s *catalogService) publish(ctx context.Context, event *events.NotificationEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishNotificationEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish event", "event_type", event.Type, "error", err)
	}
}

func findFaculty(faculties []models.Faculty, id int64) *models.Faculty {
	for i := range faculties {
		if faculties[i].ID == id {
			return &faculties[i]
		}
	}
	return nil
}
