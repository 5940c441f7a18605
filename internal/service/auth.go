package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
)

var (
	ErrEmptyCredentials   = errors.New("username and password must not be empty")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type UserRI interface {
	InsertUnique(ctx context.Context, username, password string) (bool, error)
	FindByCredentials(ctx context.Context, username, password string) (int64, bool, error)
}

type AuthS struct {
	repo UserRI
	log  *zap.Logger
}

func NewAuthService(repo UserRI, log *zap.Logger) *AuthS {
	return &AuthS{
		repo: repo,
		log:  log,
	}
}

// Register stores the pair verbatim and returns false when the username is
// taken. Retry prompting and password confirmation belong to the adapters.
func (a *AuthS) Register(ctx context.Context, username, password string) (bool, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return false, ErrEmptyCredentials
	}

	created, err := a.repo.InsertUnique(ctx, username, password)
	if err != nil {
		a.log.Error("failed to register user", zap.String("username", username), zap.Error(err))
		return false, err
	}

	return created, nil
}

// Authenticate resolves the user id for a verbatim credential match. A miss
// is ErrInvalidCredentials; rate limiting and lockout are adapter policy.
func (a *AuthS) Authenticate(ctx context.Context, username, password string) (int64, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return 0, ErrEmptyCredentials
	}

	id, found, err := a.repo.FindByCredentials(ctx, username, password)
	if err != nil {
		a.log.Error("failed to authenticate user", zap.String("username", username), zap.Error(err))
		return 0, err
	}
	if !found {
		return 0, ErrInvalidCredentials
	}

	return id, nil
}
