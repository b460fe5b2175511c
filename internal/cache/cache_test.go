package cache

import (
	"testing"
	"time"
)

func TestKey_Deterministic(t *testing.T) {
	a := Key("https://example.gov/bulk/2024/cm24.zip")
	b := Key("https://example.gov/bulk/2024/cm24.zip")
	if a != b {
		t.Errorf("expected identical keys, got %q and %q", a, b)
	}
	if a == Key("https://example.gov/bulk/2022/cm22.zip") {
		t.Error("expected different keys for different sources")
	}
}

func TestDiskCache_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Hour)

	if err := c.Set("k1", []byte("payload"), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	val, found := c.Get("k1")
	if !found {
		t.Fatal("expected hit after set")
	}
	if string(val) != "payload" {
		t.Errorf("expected payload, got %q", val)
	}

	age, ok := c.Age("k1")
	if !ok {
		t.Fatal("expected age for live entry")
	}
	if age > time.Minute {
		t.Errorf("unexpected age %v", age)
	}
}

func TestDiskCache_Expiry(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Hour)

	if err := c.Set("k1", []byte("payload"), time.Nanosecond); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	if _, found := c.Get("k1"); found {
		t.Error("expected expired entry to miss")
	}
}

func TestLayeredCache_PromotesDiskHit(t *testing.T) {
	dir := t.TempDir()
	c := NewLayeredCache(time.Hour, dir, time.Hour)

	// Write through the disk layer only, then read through the stack.
	if err := c.disk.Set("k1", []byte("cold"), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	val, found := c.Get("k1")
	if !found || string(val) != "cold" {
		t.Fatalf("expected disk hit, got found=%v val=%q", found, val)
	}

	if _, found := c.memory.Get("k1"); !found {
		t.Error("expected disk hit to be promoted to memory")
	}
}

func TestLayeredCache_Delete(t *testing.T) {
	dir := t.TempDir()
	c := NewLayeredCache(time.Hour, dir, time.Hour)

	if err := c.Set("k1", []byte("v"), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := c.Delete("k1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, found := c.Get("k1"); found {
		t.Error("expected miss after delete")
	}
}
