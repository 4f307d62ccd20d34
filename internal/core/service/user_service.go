package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ridenow/user-service/internal/api/metrics"
	"github.com/ridenow/user-service/internal/core/domain"
	"github.com/ridenow/user-service/internal/core/ports"
)

// DefaultCacheTTL is how long a user snapshot stays in the cache.
const DefaultCacheTTL = 300 * time.Second

// UserService implements create/read for users with cache-aside semantics.
// The store is authoritative; cache failures are logged and treated as
// misses (fail-open), store failures are always returned.
type UserService struct {
	repo   ports.UserRepository
	cache  ports.UserCache
	ttl    time.Duration
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, cache ports.UserCache, ttl time.Duration, logger zerolog.Logger) *UserService {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &UserService{repo: repo, cache: cache, ttl: ttl, logger: logger}
}

// CreateUser stores a new user and caches it.
//
// The cache check, the store check and the insert are not atomic: two
// concurrent creates for one id can both pass the checks. The store's unique
// id is the final arbiter and the losing insert is reported as
// domain.ErrAlreadyExistsInStore.
func (s *UserService) CreateUser(ctx context.Context, user domain.UserRecord) (*domain.UserRecord, error) {
	if err := user.Validate(); err != nil {
		return nil, err
	}
	key := domain.CacheKey(user.ID)

	if _, hit := s.lookupCache(ctx, "create", key); hit {
		metrics.DuplicateRejectionsTotal.WithLabelValues("cache").Inc()
		return nil, domain.ErrAlreadyExists
	}

	_, found, err := s.repo.FindByID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	if found {
		metrics.DuplicateRejectionsTotal.WithLabelValues("store").Inc()
		return nil, domain.ErrAlreadyExistsInStore
	}

	if err := s.repo.Insert(ctx, &user); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			s.logger.Info().Str("user_id", user.ID).Msg("lost create race at store")
			metrics.DuplicateRejectionsTotal.WithLabelValues("insert_race").Inc()
			return nil, domain.ErrAlreadyExistsInStore
		}
		s.logger.Debug().Err(err).Str("user_id", user.ID).Msg("failed to insert user")
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.fillCache(ctx, key, &user)

	metrics.UsersCreatedTotal.Inc()
	s.logger.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user created")
	return &user, nil
}

// GetUser returns the cached user when present, otherwise loads it from the
// store and caches it. It never invalidates cache entries.
func (s *UserService) GetUser(ctx context.Context, id string) (*domain.UserRecord, error) {
	if id == "" {
		return nil, domain.ErrNotFound
	}
	key := domain.CacheKey(id)

	if cached, hit := s.lookupCache(ctx, "get", key); hit {
		return cached, nil
	}

	user, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if !found {
		metrics.StoreFallbacksTotal.WithLabelValues("not_found").Inc()
		return nil, domain.ErrNotFound
	}
	metrics.StoreFallbacksTotal.WithLabelValues("found").Inc()

	s.fillCache(ctx, key, user)
	return user, nil
}

// lookupCache reports a hit only when the cache answered with a value. Any
// cache error counts as a miss.
func (s *UserService) lookupCache(ctx context.Context, op, key string) (*domain.UserRecord, bool) {
	user, found, err := s.cache.Get(ctx, key)
	switch {
	case err != nil:
		metrics.CacheLookupsTotal.WithLabelValues(op, metrics.ResultError).Inc()
		s.logger.Warn().Err(err).Str("key", key).Msg("cache lookup failed, falling back to store")
		return nil, false
	case !found || user == nil:
		metrics.CacheLookupsTotal.WithLabelValues(op, metrics.ResultMiss).Inc()
		return nil, false
	}
	metrics.CacheLookupsTotal.WithLabelValues(op, metrics.ResultHit).Inc()
	return user, true
}

// fillCache writes user to the cache. A failed write is not fatal: the entry
// is rebuilt from the store on a later read.
func (s *UserService) fillCache(ctx context.Context, key string, user *domain.UserRecord) {
	if err := s.cache.Set(ctx, key, user, s.ttl); err != nil {
		metrics.CacheWriteErrorsTotal.Inc()
		s.logger.Warn().Err(err).Str("key", key).Msg("failed to cache user")
	}
}
