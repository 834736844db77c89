package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danabekov/course-catalog/internal/domain"
	"github.com/danabekov/course-catalog/internal/transport/http/middleware"
	"github.com/danabekov/course-catalog/internal/usecase"
	"github.com/danabekov/course-catalog/internal/validate"
	"github.com/gin-gonic/gin"
)

// userUsecaser is the subset of UserUsecase the handler needs.
// Defined here (point of use) so tests can inject a fake.
type userUsecaser interface {
	Register(ctx context.Context, input usecase.RegisterUserInput) (*domain.User, error)
	Delete(ctx context.Context, id, actorID int64) error
}

type UserHandler struct {
	userUsecase userUsecaser
	logger      *slog.Logger
}

func NewUserHandler(userUsecase userUsecaser, logger *slog.Logger) *UserHandler {
	return &UserHandler{userUsecase: userUsecase, logger: logger.With("component", "user_handler")}
}

type registerUserRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	Password     string `json:"password"`
}

func (r registerUserRequest) rules() []validate.Rule {
	return []validate.Rule{
		{Field: "firstName", Value: r.FirstName, Valid: validate.NotBlank,
			Message: `Please provide a value for "first name"`},
		{Field: "lastName", Value: r.LastName, Valid: validate.NotBlank,
			Message: `Please provide a value for "last name"`},
		{Field: "emailAddress", Value: r.EmailAddress, Valid: validate.NotBlank,
			Message: `Please provide a value for "email address"`},
		{Field: "emailAddress", Value: r.EmailAddress, Valid: validate.Email,
			Message: `Please enter a valid "email address"`},
		{Field: "password", Value: r.Password, Valid: validate.NotBlank,
			Message: `Please provide a value for "password"`},
	}
}

type userResponse struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}

// GET /users
// Returns the identity resolved by the auth middleware.
func (h *UserHandler) GetCurrent(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)

	ctx.JSON(http.StatusOK, userResponse{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		EmailAddress: user.EmailAddress,
	})
}

// POST /users
// Open route: registration is how credentials come to exist.
func (h *UserHandler) Register(ctx *gin.Context) {
	var req registerUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if msgs := validate.Run(req.rules()); len(msgs) > 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": msgs})
		return
	}

	_, err := h.userUsecase.Register(ctx.Request.Context(), usecase.RegisterUserInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		EmailAddress: req.EmailAddress,
		Password:     req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			ctx.JSON(http.StatusBadRequest, gin.H{"message": errEmailTaken})
			return
		}
		h.logger.ErrorContext(ctx.Request.Context(), "register user", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": errInternalServer})
		return
	}

	ctx.Header("Location", "/")
	ctx.Status(http.StatusCreated)
}

// DELETE /users/:id
// A user may only delete their own account.
func (h *UserHandler) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		// A non-numeric id cannot name an existing user.
		ctx.JSON(http.StatusNotFound, gin.H{"message": errNoUserFound})
		return
	}

	actor := middleware.CurrentUser(ctx)

	err = h.userUsecase.Delete(ctx.Request.Context(), id, actor.ID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"message": errNoUserFound})
		case errors.Is(err, domain.ErrNotOwner):
			ctx.JSON(http.StatusForbidden, gin.H{"message": errAccessDenied})
		default:
			h.logger.ErrorContext(ctx.Request.Context(), "delete user", "user_id", id, "error", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"message": errInternalServer})
		}
		return
	}

	ctx.Status(http.StatusNoContent)
}
