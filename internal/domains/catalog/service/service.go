package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Catalog=MockCatalogService

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"escapade/config"
	"escapade/infras/otel"
	"escapade/infras/s3"
	"escapade/internal/domains/catalog/model"
	"escapade/internal/domains/catalog/repository"
	"escapade/shared/cache"
	"escapade/shared/constant"
	"escapade/shared/failure"
)

const (
	cacheActivities = "catalog:activities"
	cacheSpots      = "catalog:spots"
	cacheSessions   = "catalog:sessions"
)

// Catalog serves the read-only activity/spot/session lists with a staleness
// window, and owns their invalidation after successful bookings.
type Catalog interface {
	Activities(ctx context.Context) ([]model.Activity, error)
	Spots(ctx context.Context) ([]model.Spot, error)
	Sessions(ctx context.Context) ([]model.Session, error)
	Session(ctx context.Context, id string) (model.Session, error)
	SpotsForActivity(ctx context.Context, activityID string) ([]model.Spot, error)
	Activity(ctx context.Context, id string) (model.Activity, error)
	InvalidateSessions(ctx context.Context)
}

type serviceImpl struct {
	repo  repository.Catalog
	cfg   *config.Config
	cache cache.RedisCache
	media s3.Media
	otel  otel.Otel
}

func New(repo repository.Catalog, cfg *config.Config, cache cache.RedisCache, media s3.Media, ot otel.Otel) Catalog {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		media: media,
		otel:  ot,
	}
}

func (s *serviceImpl) Activities(ctx context.Context) (res []model.Activity, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Activities")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheActivities, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheActivities).Msg("cache hit for activities")

		return res, nil
	}

	res, err = s.repo.Activities(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get activities")

		return nil, fmt.Errorf("failed to get activities: %w", err)
	}

	s.saveToCache(ctx, cacheActivities, res)

	return res, nil
}

func (s *serviceImpl) Spots(ctx context.Context) (res []model.Spot, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Spots")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheSpots, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheSpots).Msg("cache hit for spots")

		return res, nil
	}

	res, err = s.repo.Spots(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get spots")

		return nil, fmt.Errorf("failed to get spots: %w", err)
	}

	for i := range res {
		if res[i].Photo == constant.Empty {
			continue
		}

		url, err := s.media.SpotPhotoURL(ctx, res[i].Photo)
		if err != nil {
			log.Error().Err(err).Str("spot", res[i].ID).Msg("failed to resolve spot photo URL")

			continue
		}

		res[i].PhotoURL = url
	}

	s.saveToCache(ctx, cacheSpots, res)

	return res, nil
}

func (s *serviceImpl) Sessions(ctx context.Context) (res []model.Session, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Sessions")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheSessions, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheSessions).Msg("cache hit for sessions")

		return res, nil
	}

	res, err = s.repo.Sessions(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get sessions")

		return nil, fmt.Errorf("failed to get sessions: %w", err)
	}

	s.saveToCache(ctx, cacheSessions, res)

	return res, nil
}

func (s *serviceImpl) Session(ctx context.Context, id string) (res model.Session, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Session")
	defer scope.End()
	defer scope.TraceIfError(err)

	sessions, err := s.Sessions(ctx)
	if err != nil {
		return res, err
	}

	for _, session := range sessions {
		if session.ID == id {
			return session, nil
		}
	}

	return res, failure.NotFound("session not found") //nolint:wrapcheck
}

func (s *serviceImpl) Activity(ctx context.Context, id string) (res model.Activity, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Activity")
	defer scope.End()
	defer scope.TraceIfError(err)

	activities, err := s.Activities(ctx)
	if err != nil {
		return res, err
	}

	for _, activity := range activities {
		if activity.ID == id {
			return activity, nil
		}
	}

	return res, failure.NotFound("activity not found") //nolint:wrapcheck
}

// SpotsForActivity returns exactly the spots whose practiced activities
// include the given activity id.
func (s *serviceImpl) SpotsForActivity(ctx context.Context, activityID string) (res []model.Spot, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SpotsForActivity")
	defer scope.End()
	defer scope.TraceIfError(err)

	spots, err := s.Spots(ctx)
	if err != nil {
		return nil, err
	}

	res = make([]model.Spot, 0, len(spots))
	for _, spot := range spots {
		if spot.Practices(activityID) {
			res = append(res, spot)
		}
	}

	return res, nil
}

// InvalidateSessions drops the cached session list so capacity numbers are
// refetched after a successful booking.
func (s *serviceImpl) InvalidateSessions(ctx context.Context) {
	if err := s.cache.Delete(ctx, cacheSessions); err != nil {
		log.Error().Err(err).Msg("failed to invalidate session cache")
	}
}

func (s *serviceImpl) saveToCache(ctx context.Context, key string, value any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, key, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save catalog data to cache")
		}
	}()
}
