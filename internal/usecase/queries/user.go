package queries

//go:generate mockgen -source=user.go -destination=../../../tests/mock/queries/user_mock.go -package=queriesmock -exclude_interfaces=UserReadStore

import (
	"context"

	"travelmate/internal/domain/user"
	"travelmate/internal/infra"
	"travelmate/internal/pkg/errs"
)

var ErrUserNotFound = errs.Mark(errs.New("user not found"), errs.ErrNotFound)

type UserQueries interface {
	GetUser(ctx context.Context, id int64) (*user.User, error)
	GetUserByEmail(ctx context.Context, email string) (*user.User, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id int64) (*user.User, error)
	FindByEmail(ctx context.Context, email user.Email) (*user.User, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetUser(ctx context.Context, id int64) (*user.User, error) {
	u, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (q *userQueriesImpl) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	addr, err := user.NewEmail(email)
	if err != nil {
		return nil, err
	}

	u, err := q.readStore.FindByEmail(ctx, addr)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
