package models

// StorageKeyFeedback is the collection key feedback records live under.
// Sample-data seeding distinguishes this key being absent from it holding an
// empty list, so the key must never be written speculatively on read.
const StorageKeyFeedback = "feedbackData"

// Feedback is one student submission for a faculty-course pair. Faculty and
// course are denormalized name copies, not references: catalog deletions and
// renames leave these fields untouched.
type Feedback struct {
	ID           int64  `json:"id"`
	StudentName  string `json:"studentName"`
	StudentEmail string `json:"studentEmail"`
	FacultyName  string `json:"facultyName"`
	Course       string `json:"course"`
	Rating       int    `json:"rating"`
	Comments     string `json:"comments"`
	Date         string `json:"date"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
}
