package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/campusvoice/feedback-service/internal/models"
	"github.com/campusvoice/feedback-service/internal/store"
)

// Default catalog shipped with a fresh store. The earlier build re-declared
// these inside every operation; they are seeded exactly once here instead.

func defaultUsers() []models.User {
	return []models.User{
		{ID: 1, FirstName: "Admin", LastName: "User", Email: "admin@college.edu", Password: "admin123", Role: models.RoleAdmin},
	}
}

func defaultCourses() []models.Course {
	return []models.Course{
		{ID: 1, Name: "Data Structures"},
		{ID: 2, Name: "Web Development"},
		{ID: 3, Name: "AI Basics"},
		{ID: 4, Name: "Machine Learning"},
		{ID: 5, Name: "Deep Learning"},
		{ID: 6, Name: "Database Management"},
	}
}

func defaultFaculties() []models.Faculty {
	return []models.Faculty{
		{ID: 1, Name: "Dr. Sarah Wilson", AssignedCourses: []int64{3, 1}},
		{ID: 2, Name: "Prof. Michael Brown", AssignedCourses: []int64{4, 2}},
		{ID: 3, Name: "Dr. Emily Davis", AssignedCourses: []int64{5, 4}},
		{ID: 4, Name: "Dr. John Smith", AssignedCourses: []int64{2, 6}},
		{ID: 5, Name: "Dr. Lisa Anderson", AssignedCourses: []int64{1, 3}},
	}
}

func sampleFeedback() []models.Feedback {
	today := localeDate()
	return []models.Feedback{
		{
			ID:           1,
			StudentName:  "John Doe",
			StudentEmail: "john@student.edu",
			FacultyName:  "Dr. Sarah Wilson",
			Course:       "AI Basics",
			Rating:       5,
			Comments:     "Excellent course! Dr. Wilson explains complex concepts very clearly.",
			Date:         today,
		},
		{
			ID:           2,
			StudentName:  "Jane Smith",
			StudentEmail: "jane@student.edu",
			FacultyName:  "Prof. Michael Brown",
			Course:       "Machine Learning",
			Rating:       4,
			Comments:     "Good course content, but could use more practical examples.",
			Date:         today,
		},
		{
			ID:           3,
			StudentName:  "Mike Johnson",
			StudentEmail: "mike@student.edu",
			FacultyName:  "Dr. Emily Davis",
			Course:       "Deep Learning",
			Rating:       5,
			Comments:     "Amazing course! The hands-on projects were very helpful.",
			Date:         today,
		},
	}
}

// EnsureDefaults seeds the user and catalog collections on a fresh store.
// Collections already present are left untouched, so callers may run it on
// every startup. The feedback collection is deliberately not seeded here:
// its sample data flows through InitializeSampleData, which must see the key
// absent on first use.
func EnsureDefaults(ctx context.Context, st store.Store, logger *slog.Logger) error {
	seed := func(key string, value any) error {
		var ignored any
		found, err := st.Read(ctx, key, &ignored)
		if err != nil {
			return fmt.Errorf("failed to inspect %q: %w", key, err)
		}
		if found {
			return nil
		}
		logger.Info("Seeding default collection", "key", key)
		return st.Write(ctx, key, value)
	}

	if err := seed(models.StorageKeyUsers, defaultUsers()); err != nil {
		return err
	}
	if err := seed(models.StorageKeyCourses, defaultCourses()); err != nil {
		return err
	}
	if err := seed(models.StorageKeyFaculties, defaultFaculties()); err != nil {
		return err
	}
	return nil
}
