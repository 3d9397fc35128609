package models

// Collection keys for the catalog records.
const (
	StorageKeyCourses   = "courses"
	StorageKeyFaculties = "faculties"
)

type Course struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Faculty is a teaching staff member. AssignedCourses holds course ids, each
// at most once; order carries no meaning. Deleting a course does not scrub
// these lists, so dangling ids are expected and filtered on read.
type Faculty struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	AssignedCourses []int64 `json:"assignedCourses"`
}

// IsAssigned reports whether the course id is on the faculty's list.
func (f *Faculty) IsAssigned(courseID int64) bool {
	for _, id := range f.AssignedCourses {
		if id == courseID {
			return true
		}
	}
	return false
}
