package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"escapade/infras/bookingapi"
	"escapade/infras/otel"
	"escapade/internal/domains/catalog/model"
	"escapade/shared/constant"
)

const (
	pathActivities = "/activities"
	pathSpots      = "/spots"
	pathSessions   = "/sessions"
)

// Catalog reads activities, spots and active sessions from the external
// booking API.
type Catalog interface {
	Activities(ctx context.Context) ([]model.Activity, error)
	Spots(ctx context.Context) ([]model.Spot, error)
	Sessions(ctx context.Context) ([]model.Session, error)
}

type catalogImpl struct {
	api  bookingapi.Client
	otel otel.Otel
}

func New(api bookingapi.Client, ot otel.Otel) Catalog {
	return &catalogImpl{
		api:  api,
		otel: ot,
	}
}

func (r *catalogImpl) Activities(ctx context.Context) (res []model.Activity, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Activities")
	defer scope.End()
	defer scope.TraceIfError(err)

	var records []model.ActivityRecord
	if err = r.api.Get(ctx, pathActivities, &records); err != nil {
		return nil, fmt.Errorf("failed to fetch activities: %w", err)
	}

	res = make([]model.Activity, len(records))
	for i, record := range records {
		res[i] = model.ActivityFromRecord(record)
	}

	return res, nil
}

func (r *catalogImpl) Spots(ctx context.Context) (res []model.Spot, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Spots")
	defer scope.End()
	defer scope.TraceIfError(err)

	var records []model.SpotRecord
	if err = r.api.Get(ctx, pathSpots, &records); err != nil {
		return nil, fmt.Errorf("failed to fetch spots: %w", err)
	}

	res = make([]model.Spot, len(records))
	for i, record := range records {
		res[i] = model.SpotFromRecord(record)
	}

	return res, nil
}

func (r *catalogImpl) Sessions(ctx context.Context) (res []model.Session, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Sessions")
	defer scope.End()
	defer scope.TraceIfError(err)

	var records []model.SessionRecord
	if err = r.api.Get(ctx, pathSessions, &records); err != nil {
		return nil, fmt.Errorf("failed to fetch sessions: %w", err)
	}

	res = make([]model.Session, len(records))
	for i, record := range records {
		res[i] = model.SessionFromRecord(record)
	}

	return res, nil
}
