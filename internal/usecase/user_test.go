package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/danabekov/course-catalog/internal/domain"
	"github.com/danabekov/course-catalog/internal/password"
	"github.com/danabekov/course-catalog/internal/usecase"
)

// ---- fakes ----

type fakeUserRepo struct {
	create      func(ctx context.Context, user *domain.User) (*domain.User, error)
	findByEmail func(ctx context.Context, email string) (*domain.User, error)
	findByID    func(ctx context.Context, id int64) (*domain.User, error)
	delete      func(ctx context.Context, id int64) error
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return r.create(ctx, user)
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findByEmail(ctx, email)
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.findByID(ctx, id)
}

func (r *fakeUserRepo) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, id)
}

const testBcryptCost = 4

// ---- Register ----

func TestRegister_StoresDigestNotPlaintext(t *testing.T) {
	var stored *domain.User
	repo := &fakeUserRepo{
		create: func(_ context.Context, user *domain.User) (*domain.User, error) {
			stored = user
			created := *user
			created.ID = 1
			return &created, nil
		},
	}

	created, err := usecase.NewUserUsecase(repo, testBcryptCost).Register(context.Background(), usecase.RegisterUserInput{
		FirstName:    "Joe",
		LastName:     "Smith",
		EmailAddress: "joe@smith.com",
		Password:     "joepassword",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("created.ID = %d, want 1", created.ID)
	}
	if stored.PasswordHash == "joepassword" {
		t.Fatal("plaintext password stored")
	}
	if !password.Verify("joepassword", stored.PasswordHash) {
		t.Error("stored digest does not verify against the original password")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := &fakeUserRepo{
		create: func(_ context.Context, _ *domain.User) (*domain.User, error) {
			return nil, domain.ErrEmailTaken
		},
	}

	_, err := usecase.NewUserUsecase(repo, testBcryptCost).Register(context.Background(), usecase.RegisterUserInput{
		FirstName:    "Joe",
		LastName:     "Smith",
		EmailAddress: "joe@smith.com",
		Password:     "joepassword",
	})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
}

// ---- Authenticate ----

func authUser(t *testing.T) *domain.User {
	t.Helper()
	digest, err := password.Hash("secret1", testBcryptCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return &domain.User{ID: 7, EmailAddress: "a@x.com", PasswordHash: digest}
}

func TestAuthenticate_Success_ReturnsExactUser(t *testing.T) {
	user := authUser(t)
	repo := &fakeUserRepo{
		findByEmail: func(_ context.Context, email string) (*domain.User, error) {
			if email != user.EmailAddress {
				t.Errorf("looked up %q, want %q", email, user.EmailAddress)
			}
			return user, nil
		},
	}

	got, err := usecase.NewUserUsecase(repo, testBcryptCost).Authenticate(context.Background(), "a@x.com", "secret1")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("got user %d, want %d", got.ID, user.ID)
	}
}

func TestAuthenticate_UnknownEmail(t *testing.T) {
	repo := &fakeUserRepo{
		findByEmail: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}

	_, err := usecase.NewUserUsecase(repo, testBcryptCost).Authenticate(context.Background(), "nobody@x.com", "secret1")
	if !errors.Is(err, domain.ErrUnknownUser) {
		t.Errorf("err = %v, want ErrUnknownUser", err)
	}
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	user := authUser(t)
	repo := &fakeUserRepo{
		findByEmail: func(_ context.Context, _ string) (*domain.User, error) {
			return user, nil
		},
	}

	_, err := usecase.NewUserUsecase(repo, testBcryptCost).Authenticate(context.Background(), "a@x.com", "wrong")
	if !errors.Is(err, domain.ErrBadPassword) {
		t.Errorf("err = %v, want ErrBadPassword", err)
	}
}

func TestAuthenticate_RepoError_NotAnAuthFailure(t *testing.T) {
	repo := &fakeUserRepo{
		findByEmail: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, errors.New("connection refused")
		},
	}

	_, err := usecase.NewUserUsecase(repo, testBcryptCost).Authenticate(context.Background(), "a@x.com", "secret1")
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, domain.ErrUnknownUser) || errors.Is(err, domain.ErrBadPassword) {
		t.Errorf("store error reported as auth failure: %v", err)
	}
}

// ---- Delete ----

func TestDeleteUser_MissingID(t *testing.T) {
	repo := &fakeUserRepo{
		findByID: func(_ context.Context, _ int64) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}

	err := usecase.NewUserUsecase(repo, testBcryptCost).Delete(context.Background(), 99, 99)
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}

func TestDeleteUser_NotSelf(t *testing.T) {
	repo := &fakeUserRepo{
		findByID: func(_ context.Context, id int64) (*domain.User, error) {
			return &domain.User{ID: id}, nil
		},
		delete: func(_ context.Context, _ int64) error {
			t.Fatal("delete must not run for a non-owner")
			return nil
		},
	}

	err := usecase.NewUserUsecase(repo, testBcryptCost).Delete(context.Background(), 1, 2)
	if !errors.Is(err, domain.ErrNotOwner) {
		t.Errorf("err = %v, want ErrNotOwner", err)
	}
}

func TestDeleteUser_Self(t *testing.T) {
	var deleted int64
	repo := &fakeUserRepo{
		findByID: func(_ context.Context, id int64) (*domain.User, error) {
			return &domain.User{ID: id}, nil
		},
		delete: func(_ context.Context, id int64) error {
			deleted = id
			return nil
		},
	}

	if err := usecase.NewUserUsecase(repo, testBcryptCost).Delete(context.Background(), 5, 5); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted != 5 {
		t.Errorf("deleted id = %d, want 5", deleted)
	}
}
