package events

import (
	"time"

	"github.com/ThreeDotsLabs/watermill"
)

// EventType represents different types of notification events
type EventType string

const (
	// Feedback events
	EventFeedbackSubmitted EventType = "feedback.submitted"
	EventFeedbackUpdated   EventType = "feedback.updated"
	EventFeedbackDeleted   EventType = "feedback.deleted"

	// Catalog events
	EventCourseAssigned   EventType = "course.assigned"
	EventCourseUnassigned EventType = "course.unassigned"
)

// NotificationEvent is the base event structure for all notification events
type NotificationEvent struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Source    string                 `json:"source"`
	Version   string                 `json:"version"`
	Data      interface{}            `json:"data"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// Feedback notification event payloads

type FeedbackSubmittedEvent struct {
	FeedbackID   int64  `json:"feedback_id"`
	StudentEmail string `json:"student_email"`
	FacultyName  string `json:"faculty_name"`
	Course       string `json:"course"`
	Rating       int    `json:"rating"`
}

type FeedbackUpdatedEvent struct {
	FeedbackID   int64  `json:"feedback_id"`
	StudentEmail string `json:"student_email"`
	Rating       int    `json:"rating"`
	UpdatedAt    string `json:"updated_at"`
}

type FeedbackDeletedEvent struct {
	FeedbackID   int64  `json:"feedback_id"`
	StudentEmail string `json:"student_email"`
}

// Catalog notification event payloads

type CourseAssignmentEvent struct {
	FacultyID   int64  `json:"faculty_id"`
	FacultyName string `json:"faculty_name"`
	CourseID    int64  `json:"course_id"`
}

// NewEvent builds a notification event with the service envelope filled in.
func NewEvent(eventType EventType, data interface{}) *NotificationEvent {
	return &NotificationEvent{
		ID:        GenerateEventID(),
		Type:      eventType,
		Timestamp: time.Now(),
		Source:    "feedback-service",
		Version:   "1.0",
		Data:      data,
	}
}

// GenerateEventID returns a unique id for a notification event.
func GenerateEventID() string {
	return watermill.NewUUID()
}
