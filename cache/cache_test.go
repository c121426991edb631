package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemory_PutGet(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m := NewMemory(func() time.Time { return now })
	ctx := context.Background()

	m.Put(ctx, "k", "v", 10*time.Minute)
	got, ok := m.Get(ctx, "k")
	if !ok || got != "v" {
		t.Fatalf("Get = (%q, %v), want (v, true)", got, ok)
	}
}

func TestMemory_Expiry(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m := NewMemory(func() time.Time { return now })
	ctx := context.Background()

	m.Put(ctx, "k", "v", 10*time.Minute)

	now = now.Add(10*time.Minute + time.Second)
	if _, ok := m.Get(ctx, "k"); ok {
		t.Fatal("expected entry to expire")
	}
}

func TestMemory_Miss(t *testing.T) {
	m := NewMemory(nil)
	if _, ok := m.Get(context.Background(), "absent"); ok {
		t.Fatal("expected miss")
	}
}

func TestFingerprint_Normalizes(t *testing.T) {
	a := Fingerprint("OpenTable", "https://Example.com/R/X", "2")
	b := Fingerprint("opentable", "https://example.com/r/x", "2")
	if a != b {
		t.Error("fingerprint should be case-insensitive")
	}
	if a == Fingerprint("opentable", "https://example.com/r/x", "4") {
		t.Error("different party sizes must not collide")
	}
}
