package domain

import (
	"errors"
	"time"
)

var ErrCourseNotFound = errors.New("course not found")

// CourseOwner is the subset of User attributes exposed alongside a course.
type CourseOwner struct {
	ID           int64
	FirstName    string
	LastName     string
	EmailAddress string
}

type Course struct {
	ID              int64
	UserID          int64 // owner, immutable after creation
	Title           string
	Description     string
	EstimatedTime   *string
	MaterialsNeeded *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Owner *CourseOwner // populated on owner-joined reads
}

// OwnedBy reports whether userID may mutate or delete this course.
func (c *Course) OwnedBy(userID int64) bool {
	return c.UserID == userID
}
