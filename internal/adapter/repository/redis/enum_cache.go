package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/apbooks/glcore/internal/domain"
	"github.com/apbooks/glcore/internal/usecase"
)

// CachedEnumRepository caches code-table lookups in front of another
// EnumRepository. Code tables change rarely, so a short TTL keeps the
// hot path off the database without a manual invalidation story.
type CachedEnumRepository struct {
	inner usecase.EnumRepository
	cache usecase.Cache
	ttl   time.Duration
}

// NewCachedEnumRepository creates a caching decorator around inner.
func NewCachedEnumRepository(inner usecase.EnumRepository, cache usecase.Cache, ttl time.Duration) *CachedEnumRepository {
	return &CachedEnumRepository{
		inner: inner,
		cache: cache,
		ttl:   ttl,
	}
}

// GetByCode resolves a code, serving from cache when possible. Cache
// failures fall through to the inner repository.
func (r *CachedEnumRepository) GetByCode(ctx context.Context, enumDomain, code string) (*domain.EnumValue, error) {
	key := "enum:" + enumDomain + ":" + code

	if raw, err := r.cache.Get(ctx, key); err == nil {
		var value domain.EnumValue
		if err := json.Unmarshal(raw, &value); err == nil {
			return &value, nil
		}
	}

	value, err := r.inner.GetByCode(ctx, enumDomain, code)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(value); err == nil {
		// Best effort; a failed Set only costs the next caller a DB hit.
		_ = r.cache.Set(ctx, key, raw, r.ttl)
	}

	return value, nil
}
