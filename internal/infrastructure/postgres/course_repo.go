package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/danabekov/course-catalog/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CourseRepository struct {
	pool *pgxpool.Pool
}

func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

const courseWithOwnerColumns = `
	c.id, c.user_id, c.title, c.description, c.estimated_time,
	c.materials_needed, c.created_at, c.updated_at,
	u.id, u.first_name, u.last_name, u.email_address`

func (r *CourseRepository) List(ctx context.Context) ([]*domain.Course, error) {
	query := `
		SELECT ` + courseWithOwnerColumns + `
		FROM courses c
		JOIN users u ON u.id = c.user_id
		ORDER BY c.id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer rows.Close()

	courses := []*domain.Course{}
	for rows.Next() {
		c, err := scanCourseWithOwner(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

func (r *CourseRepository) FindByID(ctx context.Context, id int64) (*domain.Course, error) {
	query := `
		SELECT ` + courseWithOwnerColumns + `
		FROM courses c
		JOIN users u ON u.id = c.user_id
		WHERE c.id = $1`

	return scanCourseWithOwner(r.pool.QueryRow(ctx, query, id))
}

func (r *CourseRepository) Create(ctx context.Context, course *domain.Course) (*domain.Course, error) {
	query := `
		INSERT INTO courses (user_id, title, description, estimated_time, materials_needed)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, title, description, estimated_time,
		          materials_needed, created_at, updated_at`

	row := r.pool.QueryRow(ctx, query,
		course.UserID,
		course.Title,
		course.Description,
		course.EstimatedTime,
		course.MaterialsNeeded,
	)

	var c domain.Course
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.Title,
		&c.Description,
		&c.EstimatedTime,
		&c.MaterialsNeeded,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}
	return &c, nil
}

func (r *CourseRepository) Update(ctx context.Context, course *domain.Course) error {
	query := `
		UPDATE courses
		SET    title            = $2,
		       description      = $3,
		       estimated_time   = $4,
		       materials_needed = $5,
		       updated_at       = NOW()
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		course.ID,
		course.Title,
		course.Description,
		course.EstimatedTime,
		course.MaterialsNeeded,
	)
	if err != nil {
		return fmt.Errorf("update course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

func scanCourseWithOwner(row pgx.Row) (*domain.Course, error) {
	var (
		c domain.Course
		o domain.CourseOwner
	)
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.Title,
		&c.Description,
		&c.EstimatedTime,
		&c.MaterialsNeeded,
		&c.CreatedAt,
		&c.UpdatedAt,
		&o.ID,
		&o.FirstName,
		&o.LastName,
		&o.EmailAddress,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, fmt.Errorf("scan course: %w", err)
	}
	c.Owner = &o
	return &c, nil
}
