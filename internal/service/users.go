package service

import (
	"context"
	"errors"
	"fmt"

	"yatube/internal/model"

	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=users.go -destination=./user_storage_mock.go -package=service
type UserStorage interface {
	CreateUser(ctx context.Context, user model.User) (model.User, error)
	GetUserByID(ctx context.Context, userID int64) (model.User, error)
	GetUserByUsername(ctx context.Context, username string) (model.User, error)
}

type UserService struct {
	userStorage UserStorage
}

func NewUserService(userStorage UserStorage) *UserService {
	return &UserService{userStorage: userStorage}
}

func (s *UserService) CreateUser(ctx context.Context, req CreateUserRequest) (model.User, error) {
	if err := validateStruct(req); err != nil {
		return model.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.userStorage.CreateUser(ctx, model.User{
		Username:     req.Username,
		PasswordHash: string(hash),
	})
	if errors.Is(err, ErrUsernameTaken) {
		return model.User{}, NewValidationError("username", ErrUsernameTaken.Error()).WithCause(err)
	}
	return u, err
}

// Authenticate checks the password and returns the matching user. Unknown
// usernames and wrong passwords are indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (model.User, error) {
	u, err := s.userStorage.GetUserByUsername(ctx, username)
	if errors.Is(err, ErrNotFound) {
		return model.User{}, ErrUnauthorized
	}
	if err != nil {
		return model.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return model.User{}, ErrUnauthorized
	}
	return u, nil
}

func (s *UserService) GetUserByID(ctx context.Context, userID int64) (model.User, error) {
	if userID <= 0 {
		return model.User{}, ErrNotFound
	}
	return s.userStorage.GetUserByID(ctx, userID)
}

// ResolveUser looks a user up by id or, when no id is given, by username.
func (s *UserService) ResolveUser(ctx context.Context, ref UserRef) (model.User, error) {
	return resolveUser(ctx, s.userStorage, ref)
}

func resolveUser(ctx context.Context, users UserStorage, ref UserRef) (model.User, error) {
	switch {
	case ref.ID > 0:
		return users.GetUserByID(ctx, ref.ID)
	case ref.Username != "":
		return users.GetUserByUsername(ctx, ref.Username)
	default:
		return model.User{}, ErrNotFound
	}
}
