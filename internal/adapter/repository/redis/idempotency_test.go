package redis

import (
	"context"
	"testing"
	"time"
)

func TestIdempotencyStore_ReplaysExistingResponse(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	if err := client.Set(ctx, store.prefix+"pay-1", `{"id":"p1"}`, time.Minute).Err(); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	exists, resp, err := store.CheckAndSet(ctx, "pay-1", nil, time.Minute)
	if err != nil {
		t.Fatalf("CheckAndSet failed: %v", err)
	}
	if !exists {
		t.Fatal("expected key to exist")
	}
	if string(resp) != `{"id":"p1"}` {
		t.Fatalf("unexpected replayed response: %s", resp)
	}
}

func TestIdempotencyStore_ReservesNewKey(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	exists, resp, err := store.CheckAndSet(ctx, "pay-2", nil, time.Minute)
	if err != nil {
		t.Fatalf("CheckAndSet failed: %v", err)
	}
	if exists || resp != nil {
		t.Fatalf("expected fresh key, got exists=%v resp=%s", exists, resp)
	}

	// The placeholder blocks concurrent writers until Update runs.
	val, err := client.Get(ctx, store.prefix+"pay-2").Result()
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if val != "processing" {
		t.Fatalf("expected processing placeholder, got %s", val)
	}
}

func TestIdempotencyStore_CheckAndSetStoresProvidedResponse(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	exists, _, err := store.CheckAndSet(ctx, "pay-3", []byte("stored"), time.Minute)
	if err != nil {
		t.Fatalf("CheckAndSet failed: %v", err)
	}
	if exists {
		t.Fatal("expected fresh key")
	}

	val, err := client.Get(ctx, store.prefix+"pay-3").Result()
	if err != nil || val != "stored" {
		t.Fatalf("expected stored response, got val=%s err=%v", val, err)
	}
}

func TestIdempotencyStore_UpdateOverwritesPlaceholder(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	if _, _, err := store.CheckAndSet(ctx, "pay-4", nil, time.Minute); err != nil {
		t.Fatalf("CheckAndSet failed: %v", err)
	}

	if err := store.Update(ctx, "pay-4", []byte(`{"ok":true}`), time.Minute); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	val, err := client.Get(ctx, store.prefix+"pay-4").Result()
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if val != `{"ok":true}` {
		t.Fatalf("expected final response, got %s", val)
	}
}
