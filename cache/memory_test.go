package cache

import (
	"testing"
)

func TestMemory_GetSet(t *testing.T) {
	c := NewMemory[string]()
	key := Key{Category: "app", Locale: "de"}

	c.Set(key, "value1")

	val, ok := c.Get(key)
	if !ok {
		t.Error("Get should return true for existing key")
	}
	if val != "value1" {
		t.Errorf("Get returned %q, want %q", val, "value1")
	}

	// Test missing key
	val, ok = c.Get(Key{Category: "app", Locale: "de-DE"})
	if ok {
		t.Error("Get should return false for missing key")
	}
	if val != "" {
		t.Errorf("Get should return zero value for missing key, got %q", val)
	}
}

func TestMemory_Overwrite(t *testing.T) {
	c := NewMemory[string]()
	key := Key{Category: "app", Locale: "de"}

	c.Set(key, "value1")
	c.Set(key, "value2")

	val, ok := c.Get(key)
	if !ok {
		t.Error("Key should exist")
	}
	if val != "value2" {
		t.Errorf("Value should be overwritten, got %q, want %q", val, "value2")
	}
}

func TestMemory_Delete(t *testing.T) {
	c := NewMemory[int]()
	key := Key{Category: "app", Locale: "fr"}

	c.Set(key, 1)
	c.Delete(key)

	if _, ok := c.Get(key); ok {
		t.Error("Deleted key should not be found")
	}

	// Deleting a missing key is a no-op
	c.Delete(Key{Category: "missing"})
}

func TestMemory_EmptyLocaleIsDistinct(t *testing.T) {
	c := NewMemory[string]()

	c.Set(Key{Category: "app"}, "default")
	c.Set(Key{Category: "app", Locale: "en"}, "english")

	if v, _ := c.Get(Key{Category: "app"}); v != "default" {
		t.Errorf("got %q, want %q", v, "default")
	}
	if c.Len() != 2 {
		t.Errorf("Cache should have length 2, got %d", c.Len())
	}
}

func TestMemory_LenClear(t *testing.T) {
	c := NewMemory[string]()

	if c.Len() != 0 {
		t.Errorf("Empty cache should have length 0, got %d", c.Len())
	}

	c.Set(Key{Category: "a"}, "1")
	c.Set(Key{Category: "b"}, "2")
	c.Clear()

	if c.Len() != 0 {
		t.Errorf("Cleared cache should have length 0, got %d", c.Len())
	}
}
