// Package catalog holds the static device registry. Entries are compiled in,
// indexed once at startup and never mutated, so lookups are safe from any
// number of goroutines.
package catalog

import (
	"fmt"
	"strings"

	"github.com/felipecasali/iphoneshopping-sub000/internal/domain/entities"
	"github.com/felipecasali/iphoneshopping-sub000/internal/usecase/interfaces"
)

type catalogKey struct {
	deviceType entities.DeviceType
	model      string
}

// Registry is an immutable index of sellable device models keyed by
// (deviceType, lowercased model).

type Registry struct {
	entries map[catalogKey]entities.DeviceCatalogEntry
}

var _ interfaces.IDeviceCatalog = (*Registry)(nil)

// NewRegistry indexes the given entries. It panics on malformed static data
// (duplicate keys, empty or non-increasing storage tiers); the catalog is
// compiled in, so a bad entry is a programming error, not a runtime input.
func NewRegistry(entries []entities.DeviceCatalogEntry) *Registry {
	idx := make(map[catalogKey]entities.DeviceCatalogEntry, len(entries))
	for _, e := range entries {
		if len(e.StorageTiers) == 0 {
			panic(fmt.Sprintf("catalog: %s %q has no storage tiers", e.Type, e.Model))
		}
		for i := 1; i < len(e.StorageTiers); i++ {
			if e.StorageTiers[i] <= e.StorageTiers[i-1] {
				panic(fmt.Sprintf("catalog: %s %q storage tiers not strictly increasing: %v", e.Type, e.Model, e.StorageTiers))
			}
		}
		if e.BasePrice < 0 {
			panic(fmt.Sprintf("catalog: %s %q has negative base price", e.Type, e.Model))
		}
		key := keyFor(e.Type, e.Model)
		if _, dup := idx[key]; dup {
			panic(fmt.Sprintf("catalog: duplicate entry %s %q", e.Type, e.Model))
		}
		idx[key] = e
	}
	return &Registry{entries: idx}
}

// NewDefaultRegistry builds the registry over the production catalog.
func NewDefaultRegistry() *Registry {
	return NewRegistry(defaultEntries)
}

// Lookup resolves a device by exact (type, model) match; model comparison is
// case-insensitive.
func (r *Registry) Lookup(deviceType entities.DeviceType, model string) (entities.DeviceCatalogEntry, error) {
	e, ok := r.entries[keyFor(deviceType, model)]
	if !ok {
		return entities.DeviceCatalogEntry{}, fmt.Errorf("%w: %s %q", entities.ErrDeviceNotFound, deviceType, model)
	}
	return e, nil
}

// Len reports how many models the registry indexes.
func (r *Registry) Len() int {
	return len(r.entries)
}

func keyFor(deviceType entities.DeviceType, model string) catalogKey {
	return catalogKey{deviceType: deviceType, model: strings.ToLower(strings.TrimSpace(model))}
}

var defaultEntries = []entities.DeviceCatalogEntry{
	{
		Type:         entities.DeviceTypePhone,
		Model:        "iPhone 15 Pro",
		StorageTiers: []int{128, 256, 512, 1024},
		Colors:       []string{"Natural Titanium", "Blue Titanium", "White Titanium", "Black Titanium"},
		ReleaseYear:  2023,
		BasePrice:    6599,
	},
	{
		Type:         entities.DeviceTypePhone,
		Model:        "iPhone 15",
		StorageTiers: []int{128, 256, 512},
		Colors:       []string{"Black", "Blue", "Green", "Yellow", "Pink"},
		ReleaseYear:  2023,
		BasePrice:    5299,
	},
	{
		Type:         entities.DeviceTypePhone,
		Model:        "iPhone 14 Pro",
		StorageTiers: []int{128, 256, 512, 1024},
		Colors:       []string{"Space Black", "Silver", "Gold", "Deep Purple"},
		ReleaseYear:  2022,
		BasePrice:    5499,
	},
	{
		Type:         entities.DeviceTypePhone,
		Model:        "iPhone 14",
		StorageTiers: []int{128, 256, 512},
		Colors:       []string{"Midnight", "Starlight", "Blue", "Purple", "Red"},
		ReleaseYear:  2022,
		BasePrice:    4599,
	},
	{
		Type:         entities.DeviceTypePhone,
		Model:        "iPhone 13",
		StorageTiers: []int{128, 256, 512},
		Colors:       []string{"Midnight", "Starlight", "Blue", "Pink", "Green", "Red"},
		ReleaseYear:  2021,
		BasePrice:    4199,
	},
	{
		Type:         entities.DeviceTypePhone,
		Model:        "iPhone 12",
		StorageTiers: []int{64, 128, 256},
		Colors:       []string{"Black", "White", "Blue", "Green", "Purple", "Red"},
		ReleaseYear:  2020,
		BasePrice:    3099,
	},
	{
		Type:         entities.DeviceTypePhone,
		Model:        "iPhone 11",
		StorageTiers: []int{64, 128, 256},
		Colors:       []string{"Black", "White", "Green", "Yellow", "Purple", "Red"},
		ReleaseYear:  2019,
		BasePrice:    2299,
	},
	{
		Type:         entities.DeviceTypePhone,
		Model:        "iPhone SE",
		StorageTiers: []int{64, 128, 256},
		Colors:       []string{"Midnight", "Starlight", "Red"},
		ReleaseYear:  2022,
		BasePrice:    1999,
	},
	{
		Type:         entities.DeviceTypeTablet,
		Model:        "iPad Pro 12.9",
		StorageTiers: []int{128, 256, 512, 1024, 2048},
		Colors:       []string{"Space Gray", "Silver"},
		ReleaseYear:  2022,
		BasePrice:    6799,
	},
	{
		Type:         entities.DeviceTypeTablet,
		Model:        "iPad Air",
		StorageTiers: []int{64, 256},
		Colors:       []string{"Space Gray", "Starlight", "Pink", "Purple", "Blue"},
		ReleaseYear:  2022,
		BasePrice:    3799,
	},
	{
		Type:         entities.DeviceTypeTablet,
		Model:        "iPad",
		StorageTiers: []int{64, 256},
		Colors:       []string{"Silver", "Blue", "Pink", "Yellow"},
		ReleaseYear:  2022,
		BasePrice:    2599,
	},
	{
		Type:         entities.DeviceTypeTablet,
		Model:        "iPad mini",
		StorageTiers: []int{64, 256},
		Colors:       []string{"Space Gray", "Starlight", "Pink", "Purple"},
		ReleaseYear:  2021,
		BasePrice:    3299,
	},
}
