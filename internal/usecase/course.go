package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/danabekov/course-catalog/internal/domain"
	"github.com/danabekov/course-catalog/internal/repository"
)

type CourseUsecase struct {
	repo repository.CourseRepository
}

func NewCourseUsecase(repo repository.CourseRepository) *CourseUsecase {
	return &CourseUsecase{repo: repo}
}

type CourseInput struct {
	Title           string
	Description     string
	EstimatedTime   *string
	MaterialsNeeded *string
}

func (u *CourseUsecase) List(ctx context.Context) ([]*domain.Course, error) {
	courses, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

func (u *CourseUsecase) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	course, err := u.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrCourseNotFound) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, fmt.Errorf("get course: %w", err)
	}
	return course, nil
}

// Create stores a new course owned by the acting user. The owner comes from
// the authenticated identity, never from the request body.
func (u *CourseUsecase) Create(ctx context.Context, actorID int64, input CourseInput) (*domain.Course, error) {
	created, err := u.repo.Create(ctx, &domain.Course{
		UserID:          actorID,
		Title:           input.Title,
		Description:     input.Description,
		EstimatedTime:   input.EstimatedTime,
		MaterialsNeeded: input.MaterialsNeeded,
	})
	if err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}
	return created, nil
}

// Update rewrites a course's mutable fields. Existence is decided before
// ownership: a missing id is ErrCourseNotFound for everyone, ownership
// mismatch on an existing course is ErrNotOwner. The owner itself is never
// changed.
func (u *CourseUsecase) Update(ctx context.Context, id, actorID int64, input CourseInput) error {
	course, err := u.authorizeOwner(ctx, id, actorID)
	if err != nil {
		return err
	}

	course.Title = input.Title
	course.Description = input.Description
	course.EstimatedTime = input.EstimatedTime
	course.MaterialsNeeded = input.MaterialsNeeded

	if err := u.repo.Update(ctx, course); err != nil {
		if errors.Is(err, domain.ErrCourseNotFound) {
			return domain.ErrCourseNotFound
		}
		return fmt.Errorf("update course: %w", err)
	}
	return nil
}

// Delete removes a course, subject to the same existence-then-ownership
// order as Update. Deleting an already-deleted id reports ErrCourseNotFound.
func (u *CourseUsecase) Delete(ctx context.Context, id, actorID int64) error {
	course, err := u.authorizeOwner(ctx, id, actorID)
	if err != nil {
		return err
	}

	if err := u.repo.Delete(ctx, course.ID); err != nil {
		if errors.Is(err, domain.ErrCourseNotFound) {
			return domain.ErrCourseNotFound
		}
		return fmt.Errorf("delete course: %w", err)
	}
	return nil
}

// authorizeOwner loads the course and enforces the ownership rule for
// mutations. The not-found check always wins over the ownership check.
func (u *CourseUsecase) authorizeOwner(ctx context.Context, id, actorID int64) (*domain.Course, error) {
	course, err := u.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrCourseNotFound) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, fmt.Errorf("find course: %w", err)
	}

	if !course.OwnedBy(actorID) {
		return nil, domain.ErrNotOwner
	}
	return course, nil
}
