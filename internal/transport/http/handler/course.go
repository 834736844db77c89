package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danabekov/course-catalog/internal/domain"
	"github.com/danabekov/course-catalog/internal/transport/http/middleware"
	"github.com/danabekov/course-catalog/internal/usecase"
	"github.com/danabekov/course-catalog/internal/validate"
	"github.com/gin-gonic/gin"
)

// courseUsecaser is the subset of CourseUsecase the handler needs.
type courseUsecaser interface {
	List(ctx context.Context) ([]*domain.Course, error)
	GetByID(ctx context.Context, id int64) (*domain.Course, error)
	Create(ctx context.Context, actorID int64, input usecase.CourseInput) (*domain.Course, error)
	Update(ctx context.Context, id, actorID int64, input usecase.CourseInput) error
	Delete(ctx context.Context, id, actorID int64) error
}

type CourseHandler struct {
	courseUsecase courseUsecaser
	logger        *slog.Logger
}

func NewCourseHandler(courseUsecase courseUsecaser, logger *slog.Logger) *CourseHandler {
	return &CourseHandler{courseUsecase: courseUsecase, logger: logger.With("component", "course_handler")}
}

type courseRequest struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`
}

func (r courseRequest) rules() []validate.Rule {
	return []validate.Rule{
		{Field: "title", Value: r.Title, Valid: validate.NotBlank,
			Message: `Please provide a "title" for the course`},
		{Field: "description", Value: r.Description, Valid: validate.NotBlank,
			Message: `Please provide a "description" for the course`},
	}
}

func (r courseRequest) input() usecase.CourseInput {
	return usecase.CourseInput{
		Title:           r.Title,
		Description:     r.Description,
		EstimatedTime:   r.EstimatedTime,
		MaterialsNeeded: r.MaterialsNeeded,
	}
}

type courseOwnerResponse struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}

type courseResponse struct {
	ID              int64                `json:"id"`
	UserID          int64                `json:"userId"`
	Title           string               `json:"title"`
	Description     string               `json:"description"`
	EstimatedTime   *string              `json:"estimatedTime"`
	MaterialsNeeded *string              `json:"materialsNeeded"`
	Owner           *courseOwnerResponse `json:"owner,omitempty"`
}

func toCourseResponse(c *domain.Course) courseResponse {
	resp := courseResponse{
		ID:              c.ID,
		UserID:          c.UserID,
		Title:           c.Title,
		Description:     c.Description,
		EstimatedTime:   c.EstimatedTime,
		MaterialsNeeded: c.MaterialsNeeded,
	}
	if c.Owner != nil {
		resp.Owner = &courseOwnerResponse{
			ID:           c.Owner.ID,
			FirstName:    c.Owner.FirstName,
			LastName:     c.Owner.LastName,
			EmailAddress: c.Owner.EmailAddress,
		}
	}
	return resp
}

// GET /courses
func (h *CourseHandler) List(ctx *gin.Context) {
	courses, err := h.courseUsecase.List(ctx.Request.Context())
	if err != nil {
		h.logger.ErrorContext(ctx.Request.Context(), "list courses", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": errInternalServer})
		return
	}

	items := make([]courseResponse, len(courses))
	for i, c := range courses {
		items[i] = toCourseResponse(c)
	}
	ctx.JSON(http.StatusOK, gin.H{"courses": items})
}

// GET /courses/:id
func (h *CourseHandler) GetByID(ctx *gin.Context) {
	id, ok := h.courseID(ctx)
	if !ok {
		return
	}

	course, err := h.courseUsecase.GetByID(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrCourseNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": errNoCourseFound})
			return
		}
		h.logger.ErrorContext(ctx.Request.Context(), "get course", "course_id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": errInternalServer})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"course": toCourseResponse(course)})
}

// POST /courses
// The authenticated user becomes the owner.
func (h *CourseHandler) Create(ctx *gin.Context) {
	var req courseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if msgs := validate.Run(req.rules()); len(msgs) > 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": msgs})
		return
	}

	actor := middleware.CurrentUser(ctx)

	course, err := h.courseUsecase.Create(ctx.Request.Context(), actor.ID, req.input())
	if err != nil {
		h.logger.ErrorContext(ctx.Request.Context(), "create course", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": errInternalServer})
		return
	}

	ctx.Header("Location", fmt.Sprintf("/courses/%d", course.ID))
	ctx.Status(http.StatusCreated)
}

// PUT /courses/:id
func (h *CourseHandler) Update(ctx *gin.Context) {
	var req courseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Validation runs before the store is touched, ahead of the
	// existence and ownership checks.
	if msgs := validate.Run(req.rules()); len(msgs) > 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": msgs})
		return
	}

	id, ok := h.courseID(ctx)
	if !ok {
		return
	}

	actor := middleware.CurrentUser(ctx)

	err := h.courseUsecase.Update(ctx.Request.Context(), id, actor.ID, req.input())
	if err != nil {
		h.respondMutationError(ctx, id, "update course", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// DELETE /courses/:id
func (h *CourseHandler) Delete(ctx *gin.Context) {
	id, ok := h.courseID(ctx)
	if !ok {
		return
	}

	actor := middleware.CurrentUser(ctx)

	err := h.courseUsecase.Delete(ctx.Request.Context(), id, actor.ID)
	if err != nil {
		h.respondMutationError(ctx, id, "delete course", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// courseID parses the :id param. A non-numeric id cannot name an existing
// course, so it reports not-found rather than a validation error.
func (h *CourseHandler) courseID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"message": errNoCourseFound})
		return 0, false
	}
	return id, true
}

func (h *CourseHandler) respondMutationError(ctx *gin.Context, id int64, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrCourseNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"message": errNoCourseFound})
	case errors.Is(err, domain.ErrNotOwner):
		ctx.JSON(http.StatusForbidden, gin.H{"message": errAccessDenied})
	default:
		h.logger.ErrorContext(ctx.Request.Context(), op, "course_id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": errInternalServer})
	}
}
