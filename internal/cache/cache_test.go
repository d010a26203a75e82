package cache

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestKey(t *testing.T) {
	a := Key("https://pleiades.stoa.org/places/1/json")
	b := Key("https://pleiades.stoa.org/places/2/json")
	if a == b {
		t.Error("Expected distinct keys for distinct URLs")
	}
	if a != Key("https://pleiades.stoa.org/places/1/json") {
		t.Error("Expected stable keys")
	}
	if !strings.HasPrefix(a, "origo:v1:") {
		t.Errorf("Expected versioned prefix, got %q", a)
	}
}

func TestDiskCache_RoundTrip(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Hour)
	key := Key("https://example.org/doc")

	if _, found := c.Get(key); found {
		t.Error("Expected miss on empty cache")
	}
	if err := c.Set(key, []byte("payload"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	val, found := c.Get(key)
	if !found || !bytes.Equal(val, []byte("payload")) {
		t.Errorf("Expected payload back, got %q (found=%v)", val, found)
	}
}

func TestDiskCache_Expiry(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Hour)
	key := Key("https://example.org/doc")

	if err := c.Set(key, []byte("payload"), -time.Second); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, found := c.Get(key); found {
		t.Error("Expected expired entry to miss")
	}
}

func TestLayeredCache_PromotesDiskHits(t *testing.T) {
	dir := t.TempDir()
	c := NewLayeredCache(time.Hour, dir, time.Hour)
	key := Key("https://example.org/doc")

	// seed only the disk layer
	if err := NewDiskCache(dir, time.Hour).Set(key, []byte("payload"), 0); err != nil {
		t.Fatalf("seed disk: %v", err)
	}
	val, found := c.Get(key)
	if !found || string(val) != "payload" {
		t.Fatalf("Expected disk hit, got %q (found=%v)", val, found)
	}
	if _, found := c.memory.Get(key); !found {
		t.Error("Expected promotion into the memory layer")
	}
}
