package commands

//go:generate mockgen -source=savedtrip.go -destination=../../../tests/mock/commands/savedtrip_mock.go -package=commandsmock

import (
	"context"

	"travelmate/internal/domain/savedtrip"
	"travelmate/internal/infra"
	"travelmate/internal/pkg/errs"
)

var ErrSavedTripNotFound = errs.Mark(errs.New("saved trip not found"), errs.ErrNotFound)

type SavedTripCommands interface {
	CreateSavedTrip(ctx context.Context, params savedtrip.NewSavedTripParams) (*savedtrip.SavedTrip, error)
	DeleteSavedTrip(ctx context.Context, id int64) error
}

type savedTripCommandsImpl struct {
	repo SavedTripRepository
}

func NewSavedTripCommands(repo SavedTripRepository) SavedTripCommands {
	return &savedTripCommandsImpl{repo: repo}
}

func (uc *savedTripCommandsImpl) CreateSavedTrip(ctx context.Context, params savedtrip.NewSavedTripParams) (*savedtrip.SavedTrip, error) {
	s, err := savedtrip.NewSavedTrip(params)
	if err != nil {
		return nil, err
	}
	return uc.repo.Create(ctx, s)
}

func (uc *savedTripCommandsImpl) DeleteSavedTrip(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrSavedTripNotFound
		}
		return err
	}
	return nil
}
