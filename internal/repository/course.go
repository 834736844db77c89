package repository

import (
	"context"

	"github.com/danabekov/course-catalog/internal/domain"
)

type CourseRepository interface {
	// List returns all courses joined with their owner attributes.
	List(ctx context.Context) ([]*domain.Course, error)
	// FindByID returns the course joined with its owner attributes.
	// A missing id yields domain.ErrCourseNotFound.
	FindByID(ctx context.Context, id int64) (*domain.Course, error)
	Create(ctx context.Context, course *domain.Course) (*domain.Course, error)
	// Update rewrites the mutable columns. The owner column is never touched.
	Update(ctx context.Context, course *domain.Course) error
	// Delete removes the course. A missing id yields domain.ErrCourseNotFound.
	Delete(ctx context.Context, id int64) error
}
