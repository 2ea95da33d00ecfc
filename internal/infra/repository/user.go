package repository

import (
	"context"
	"log/slog"

	"travelmate/internal/domain/user"
	"travelmate/internal/infra"
	"travelmate/internal/infra/memstore"
)

type UserRepository struct {
	store  *memstore.Store
	logger *slog.Logger
}

func NewUserRepository(store *memstore.Store, logger *slog.Logger) *UserRepository {
	return &UserRepository{
		store:  store,
		logger: logger,
	}
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	u, ok := r.store.Users.Get(id)
	if !ok {
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "user not found", nil)
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*user.User, error) {
	found := r.store.Users.ListN(func(u *user.User) bool {
		return u.SameEmail(email.Value())
	}, 1)
	if len(found) == 0 {
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "user not found by email", nil)
	}
	return &found[0], nil
}

// Create inserts u unless another user already holds the same email.
func (r *UserRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	created, ok := r.store.Users.CreateUnless(*u, func(existing *user.User) bool {
		return existing.SameEmail(u.Email)
	})
	if !ok {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDuplicateKey, "email already registered", nil)
	}
	return &created, nil
}

// UpdatePreferences replaces the preferences blob wholesale.
func (r *UserRepository) UpdatePreferences(ctx context.Context, id int64, prefs *user.Preferences) (*user.User, error) {
	updated, ok := r.store.Users.Update(id, func(u *user.User) {
		u.Preferences = prefs
	})
	if !ok {
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "user not found", nil)
	}
	return &updated, nil
}
