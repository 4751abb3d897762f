package entities

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDeviceNotFound    = errors.New("device not found")
	ErrInvalidDeviceType = errors.New("invalid device type")
	ErrInvalidStorage    = errors.New("storage not offered for device")
)

// DeviceType distinguishes the two sellable product lines.
//
// The questionnaire sends free-form strings ("iphone", "IPAD", ...); use
// ParseDeviceType to normalize them instead of casting.

type DeviceType string

const (
	DeviceTypePhone  DeviceType = "phone"
	DeviceTypeTablet DeviceType = "tablet"
)

// ParseDeviceType maps raw questionnaire values to a DeviceType.
func ParseDeviceType(raw string) (DeviceType, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "phone", "iphone", "smartphone":
		return DeviceTypePhone, nil
	case "tablet", "ipad":
		return DeviceTypeTablet, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDeviceType, raw)
	}
}

// DeviceCatalogEntry is one sellable model in the static device registry.
//
// Catalog notes:
//   - (Type, Model) is the stable composite key; Model is unique within Type.
//   - StorageTiers is non-empty and strictly increasing; index 0 is the
//     base tier the BasePrice refers to.
//   - Colors are informational only and never priced.

type DeviceCatalogEntry struct {
	Type         DeviceType `json:"type"`
	Model        string     `json:"model"`
	StorageTiers []int      `json:"storage_tiers"`
	Colors       []string   `json:"colors"`
	ReleaseYear  int        `json:"release_year"`
	BasePrice    int64      `json:"base_price"`
}

// StorageTierIndex returns the position of storageGB inside the entry's tier
// list, or ErrInvalidStorage when the device was never sold with that tier.
func (e DeviceCatalogEntry) StorageTierIndex(storageGB int) (int, error) {
	for i, tier := range e.StorageTiers {
		if tier == storageGB {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %dGB not in %v for %s", ErrInvalidStorage, storageGB, e.StorageTiers, e.Model)
}

// AgeYears is the device generation age used by the minimum-value floor
// brackets. Never negative, even for an asOf year before the release year.
func (e DeviceCatalogEntry) AgeYears(asOfYear int) int {
	age := asOfYear - e.ReleaseYear
	if age < 0 {
		return 0
	}
	return age
}
