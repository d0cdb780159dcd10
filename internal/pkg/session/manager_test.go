package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func newTestManager(t *testing.T) (*Manager, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	m := NewManager(client, Config{TTL: time.Hour}, zerolog.Nop())
	return m, mr
}

func TestEstablishAndResolve(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	token, err := m.Establish(ctx, 42)
	if err != nil {
		t.Fatalf("Establish: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	userID, ok := m.Resolve(ctx, token)
	if !ok || userID != 42 {
		t.Fatalf("Resolve = (%d, %v), want (42, true)", userID, ok)
	}
}

func TestResolveFailsClosed(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	if _, ok := m.Resolve(ctx, ""); ok {
		t.Fatal("empty token must not resolve")
	}
	if _, ok := m.Resolve(ctx, "deadbeef"); ok {
		t.Fatal("unknown token must not resolve")
	}
}

func TestResolveRefreshesExpiry(t *testing.T) {
	m, mr := newTestManager(t)
	ctx := context.Background()

	token, err := m.Establish(ctx, 7)
	if err != nil {
		t.Fatalf("Establish: %v", err)
	}

	// Halfway to expiry a hit should push the deadline out again.
	mr.FastForward(30 * time.Minute)
	if _, ok := m.Resolve(ctx, token); !ok {
		t.Fatal("session expired too early")
	}
	mr.FastForward(45 * time.Minute)
	if _, ok := m.Resolve(ctx, token); !ok {
		t.Fatal("sliding expiry was not refreshed")
	}

	mr.FastForward(2 * time.Hour)
	if _, ok := m.Resolve(ctx, token); ok {
		t.Fatal("session must expire after the TTL passes untouched")
	}
}

func TestDestroy(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	token, err := m.Establish(ctx, 9)
	if err != nil {
		t.Fatalf("Establish: %v", err)
	}
	if err := m.Destroy(ctx, token); err != nil {
		t.Fatalf("Destroy: %v", err)
	}
	if _, ok := m.Resolve(ctx, token); ok {
		t.Fatal("destroyed session must not resolve")
	}

	// Destroying again, or destroying nothing, is fine.
	if err := m.Destroy(ctx, token); err != nil {
		t.Fatalf("repeat Destroy: %v", err)
	}
	if err := m.Destroy(ctx, ""); err != nil {
		t.Fatalf("Destroy with empty token: %v", err)
	}
}
