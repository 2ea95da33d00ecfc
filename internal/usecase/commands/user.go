package commands

//go:generate mockgen -source=user.go -destination=../../../tests/mock/commands/user_mock.go -package=commandsmock

import (
	"context"
	"log/slog"

	"travelmate/internal/domain/user"
	"travelmate/internal/infra"
	"travelmate/internal/pkg/errs"
)

var (
	ErrUserNotFound = errs.Mark(errs.New("user not found"), errs.ErrNotFound)
	ErrEmailTaken   = errs.Mark(errs.New("email already registered"), errs.ErrConflict)
)

type CreateUserRequest struct {
	Name        string
	Email       string
	Preferences *user.Preferences
}

type UserCommands interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (*user.User, error)
	UpdatePreferences(ctx context.Context, userID int64, prefs *user.Preferences) (*user.User, error)
}

type userCommandsImpl struct {
	repo   UserRepository
	logger *slog.Logger
}

func NewUserCommands(repo UserRepository, logger *slog.Logger) UserCommands {
	return &userCommandsImpl{repo: repo, logger: logger}
}

func (uc *userCommandsImpl) CreateUser(ctx context.Context, req CreateUserRequest) (*user.User, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, err
	}
	u, err := user.NewUser(req.Name, email, req.Preferences)
	if err != nil {
		return nil, err
	}

	created, err := uc.repo.Create(ctx, u)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	uc.logger.Info("user registered", slog.Int64("user_id", created.ID))
	return created, nil
}

// UpdatePreferences replaces the stored preferences with prefs.
func (uc *userCommandsImpl) UpdatePreferences(ctx context.Context, userID int64, prefs *user.Preferences) (*user.User, error) {
	updated, err := uc.repo.UpdatePreferences(ctx, userID, prefs)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return updated, nil
}
