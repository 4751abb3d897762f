package catalog

import (
	"errors"
	"testing"

	"github.com/felipecasali/iphoneshopping-sub000/internal/domain/entities"
)

func TestRegistry_Lookup(t *testing.T) {
	reg := NewDefaultRegistry()

	t.Run("exact match", func(t *testing.T) {
		e, err := reg.Lookup(entities.DeviceTypePhone, "iPhone 13")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.BasePrice != 4199 || e.ReleaseYear != 2021 {
			t.Fatalf("unexpected entry: %+v", e)
		}
	})

	t.Run("model match is case insensitive", func(t *testing.T) {
		if _, err := reg.Lookup(entities.DeviceTypePhone, "  iphone 13 "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown model", func(t *testing.T) {
		_, err := reg.Lookup(entities.DeviceTypePhone, "iPhone 99")
		if !errors.Is(err, entities.ErrDeviceNotFound) {
			t.Fatalf("expected ErrDeviceNotFound, got %v", err)
		}
	})

	t.Run("type is part of the key", func(t *testing.T) {
		_, err := reg.Lookup(entities.DeviceTypeTablet, "iPhone 13")
		if !errors.Is(err, entities.ErrDeviceNotFound) {
			t.Fatalf("expected ErrDeviceNotFound, got %v", err)
		}
	})
}

func TestRegistry_ValidatesStaticData(t *testing.T) {
	expectPanic := func(t *testing.T, entries []entities.DeviceCatalogEntry) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Fatalf("expected panic")
			}
		}()
		NewRegistry(entries)
	}

	t.Run("empty tiers", func(t *testing.T) {
		expectPanic(t, []entities.DeviceCatalogEntry{
			{Type: entities.DeviceTypePhone, Model: "x", StorageTiers: nil},
		})
	})

	t.Run("non increasing tiers", func(t *testing.T) {
		expectPanic(t, []entities.DeviceCatalogEntry{
			{Type: entities.DeviceTypePhone, Model: "x", StorageTiers: []int{128, 128}},
		})
	})

	t.Run("duplicate key", func(t *testing.T) {
		expectPanic(t, []entities.DeviceCatalogEntry{
			{Type: entities.DeviceTypePhone, Model: "x", StorageTiers: []int{64}},
			{Type: entities.DeviceTypePhone, Model: "X", StorageTiers: []int{64}},
		})
	})
}

func TestDefaultRegistryIsWellFormed(t *testing.T) {
	reg := NewDefaultRegistry()
	if reg.Len() == 0 {
		t.Fatalf("default registry is empty")
	}
}
