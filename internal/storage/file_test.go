package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func TestFileKVRoundTrip(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer kv.Close()
	ctx := context.Background()

	if _, ok, err := kv.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok=%t err=%v, want absent", ok, err)
	}

	if err := kv.Set(ctx, "presently-people", `{"people":[]}`); err != nil {
		t.Fatal(err)
	}
	value, ok, err := kv.Get(ctx, "presently-people")
	if err != nil || !ok {
		t.Fatalf("Get() = ok=%t err=%v", ok, err)
	}
	if value != `{"people":[]}` {
		t.Errorf("value = %q", value)
	}

	// Overwrites replace.
	if err := kv.Set(ctx, "presently-people", "v2"); err != nil {
		t.Fatal(err)
	}
	value, _, _ = kv.Get(ctx, "presently-people")
	if value != "v2" {
		t.Errorf("value after overwrite = %q, want v2", value)
	}
}

func TestFileKVRemove(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer kv.Close()
	ctx := context.Background()

	if err := kv.Set(ctx, "k", "v"); err != nil {
		t.Fatal(err)
	}
	if err := kv.Remove(ctx, "k"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := kv.Get(ctx, "k"); ok {
		t.Error("key survived removal")
	}

	// Removing a missing key is not an error.
	if err := kv.Remove(ctx, "k"); err != nil {
		t.Errorf("Remove(missing) = %v, want nil", err)
	}
}

func TestFileKVEscapesKeys(t *testing.T) {
	dir := t.TempDir()
	kv, err := NewFileKV(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer kv.Close()
	ctx := context.Background()

	// Keys with path-hostile characters stay inside the data directory.
	key := "@ads/lastInterstitial"
	if err := kv.Set(ctx, key, "12345"); err != nil {
		t.Fatal(err)
	}
	value, ok, err := kv.Get(ctx, key)
	if err != nil || !ok || value != "12345" {
		t.Fatalf("Get() = %q, ok=%t, err=%v", value, ok, err)
	}

	if matches, _ := filepath.Glob(filepath.Join(dir, "*", "*")); len(matches) != 0 {
		t.Errorf("key escaped into a subdirectory: %v", matches)
	}
}

func TestMemoryKVRoundTrip(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	if err := kv.Set(ctx, "k", "v"); err != nil {
		t.Fatal(err)
	}
	value, ok, err := kv.Get(ctx, "k")
	if err != nil || !ok || value != "v" {
		t.Fatalf("Get() = %q, ok=%t, err=%v", value, ok, err)
	}
	if err := kv.Remove(ctx, "k"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := kv.Get(ctx, "k"); ok {
		t.Error("key survived removal")
	}
}
