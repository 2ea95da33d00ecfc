package commands

//go:generate mockgen -source=trip.go -destination=../../../tests/mock/commands/trip_mock.go -package=commandsmock

import (
	"context"

	"travelmate/internal/domain/trip"
	"travelmate/internal/infra"
	"travelmate/internal/pkg/errs"
)

var ErrTripNotFound = errs.Mark(errs.New("trip not found"), errs.ErrNotFound)

type TripCommands interface {
	CreateTrip(ctx context.Context, params trip.NewTripParams) (*trip.Trip, error)
	UpdateTrip(ctx context.Context, id int64, p trip.Patch) (*trip.Trip, error)
	DeleteTrip(ctx context.Context, id int64) error
}

type tripCommandsImpl struct {
	repo TripRepository
}

func NewTripCommands(repo TripRepository) TripCommands {
	return &tripCommandsImpl{repo: repo}
}

func (uc *tripCommandsImpl) CreateTrip(ctx context.Context, params trip.NewTripParams) (*trip.Trip, error) {
	t, err := trip.NewTrip(params)
	if err != nil {
		return nil, err
	}
	return uc.repo.Create(ctx, t)
}

// UpdateTrip validates only the fields present in p, then merges them. An
// empty patch returns the stored trip unchanged.
func (uc *tripCommandsImpl) UpdateTrip(ctx context.Context, id int64, p trip.Patch) (*trip.Trip, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var (
		updated *trip.Trip
		err     error
	)
	if p.IsEmpty() {
		updated, err = uc.repo.FindByID(ctx, id)
	} else {
		updated, err = uc.repo.Update(ctx, id, p)
	}
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (uc *tripCommandsImpl) DeleteTrip(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrTripNotFound
		}
		return err
	}
	return nil
}
