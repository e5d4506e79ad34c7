package cache

import (
	"context"
	"testing"
	"time"

	"health-automation-backend/pkg/jwt"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T) (*tokenStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewTokenStore(client).(*tokenStore), mr
}

func TestStoreAndExists(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)

	if err := store.Store(ctx, jwt.AccessToken, 7, "abc", time.Minute); err != nil {
		t.Fatalf("Store: %v", err)
	}
	if !mr.Exists("access_token:7:abc") {
		t.Fatal("expected access_token:7:abc to be set")
	}

	ok, err := store.Exists(ctx, jwt.AccessToken, 7, "abc")
	if err != nil || !ok {
		t.Fatalf("Exists = %v, %v; want true, nil", ok, err)
	}

	ok, _ = store.Exists(ctx, jwt.RefreshToken, 7, "abc")
	if ok {
		t.Fatal("refresh token must not be found under the access key")
	}
}

func TestStoredTokensExpire(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)

	_ = store.Store(ctx, jwt.RefreshToken, 1, "r1", time.Minute)
	mr.FastForward(2 * time.Minute)

	ok, err := store.Exists(ctx, jwt.RefreshToken, 1, "r1")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("token should have expired")
	}
}

func TestRevoke(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	_ = store.Store(ctx, jwt.AccessToken, 1, "a1", time.Minute)
	if err := store.Revoke(ctx, jwt.AccessToken, 1, "a1"); err != nil {
		t.Fatal(err)
	}
	if ok, _ := store.Exists(ctx, jwt.AccessToken, 1, "a1"); ok {
		t.Fatal("token still present after revoke")
	}
}

func TestRevokeAllOnlyTouchesOneUser(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)

	for i, id := range []string{"a", "b", "c"} {
		_ = store.Store(ctx, jwt.AccessToken, 1, id, time.Minute)
		_ = store.Store(ctx, jwt.RefreshToken, 1, id, time.Minute)
		_ = store.Store(ctx, jwt.AccessToken, 10+int64(i), id, time.Minute)
	}

	if err := store.RevokeAll(ctx, 1); err != nil {
		t.Fatalf("RevokeAll: %v", err)
	}

	for _, key := range mr.Keys() {
		if key == "access_token:1:a" || key == "refresh_token:1:b" {
			t.Fatalf("key %s survived RevokeAll", key)
		}
	}
	if len(mr.Keys()) != 3 {
		t.Fatalf("expected the 3 keys of other users to remain, got %v", mr.Keys())
	}
}
