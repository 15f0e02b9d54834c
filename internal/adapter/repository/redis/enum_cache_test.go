package redis

import (
	"context"
	"testing"
	"time"

	"github.com/apbooks/glcore/internal/domain"
)

type countingEnumRepo struct {
	calls int
	value *domain.EnumValue
	err   error
}

func (r *countingEnumRepo) GetByCode(ctx context.Context, enumDomain, code string) (*domain.EnumValue, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.value, nil
}

func TestCachedEnumRepository_SecondLookupServedFromCache(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	inner := &countingEnumRepo{
		value: &domain.EnumValue{ID: "e1", Domain: domain.EnumPaymentStatus, Code: "P", Description: "Paid"},
	}
	repo := NewCachedEnumRepository(inner, NewCache(client), time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		value, err := repo.GetByCode(ctx, domain.EnumPaymentStatus, "P")
		if err != nil {
			t.Fatalf("lookup %d failed: %v", i, err)
		}
		if value.Description != "Paid" {
			t.Fatalf("lookup %d returned %+v", i, value)
		}
	}

	if inner.calls != 1 {
		t.Fatalf("expected 1 inner call, got %d", inner.calls)
	}
}

func TestCachedEnumRepository_MissPropagatesError(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	inner := &countingEnumRepo{err: domain.ErrEnumValueNotFound}
	repo := NewCachedEnumRepository(inner, NewCache(client), time.Minute)

	if _, err := repo.GetByCode(context.Background(), domain.EnumPaymentStatus, "X"); err == nil {
		t.Fatal("expected error for unknown code")
	}

	// Failed lookups are never cached.
	if _, err := repo.GetByCode(context.Background(), domain.EnumPaymentStatus, "X"); err == nil {
		t.Fatal("expected error on second lookup")
	}
	if inner.calls != 2 {
		t.Fatalf("expected 2 inner calls, got %d", inner.calls)
	}
}

func TestCachedEnumRepository_CorruptCacheEntryFallsThrough(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewCache(client)
	ctx := context.Background()
	if err := cache.Set(ctx, "enum:"+domain.EnumPaymentType+":A", []byte("not json"), time.Minute); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	inner := &countingEnumRepo{
		value: &domain.EnumValue{ID: "e2", Domain: domain.EnumPaymentType, Code: "A", Description: "ACH"},
	}
	repo := NewCachedEnumRepository(inner, cache, time.Minute)

	value, err := repo.GetByCode(ctx, domain.EnumPaymentType, "A")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if value.ID != "e2" || inner.calls != 1 {
		t.Fatalf("expected fallthrough to inner repo, got %+v calls=%d", value, inner.calls)
	}
}
