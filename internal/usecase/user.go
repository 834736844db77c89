package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/danabekov/course-catalog/internal/domain"
	"github.com/danabekov/course-catalog/internal/password"
	"github.com/danabekov/course-catalog/internal/repository"
)

type UserUsecase struct {
	repo       repository.UserRepository
	bcryptCost int
}

func NewUserUsecase(repo repository.UserRepository, bcryptCost int) *UserUsecase {
	return &UserUsecase{repo: repo, bcryptCost: bcryptCost}
}

type RegisterUserInput struct {
	FirstName    string
	LastName     string
	EmailAddress string
	Password     string
}

// Register hashes the password and creates the user. The unique index on
// email_address decides races between concurrent registrations; a loser
// surfaces as domain.ErrEmailTaken.
func (u *UserUsecase) Register(ctx context.Context, input RegisterUserInput) (*domain.User, error) {
	digest, err := password.Hash(input.Password, u.bcryptCost)
	if err != nil {
		return nil, err
	}

	created, err := u.repo.Create(ctx, &domain.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		EmailAddress: input.EmailAddress,
		PasswordHash: digest,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

// Authenticate resolves the user behind a login attempt. The two failure
// modes stay distinct here so callers can log them; they must collapse to
// one response at the HTTP boundary.
func (u *UserUsecase) Authenticate(ctx context.Context, email, plaintext string) (*domain.User, error) {
	user, err := u.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnknownUser
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	if !password.Verify(plaintext, user.PasswordHash) {
		return nil, domain.ErrBadPassword
	}
	return user, nil
}

// Delete removes the user with the given id. Existence is checked before
// ownership, so a missing user is always ErrUserNotFound no matter who asks;
// an existing user may only be deleted by themselves.
func (u *UserUsecase) Delete(ctx context.Context, id, actorID int64) error {
	user, err := u.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	if user.ID != actorID {
		return domain.ErrNotOwner
	}

	if err := u.repo.Delete(ctx, user.ID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
