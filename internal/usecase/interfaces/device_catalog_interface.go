package interfaces

import "github.com/felipecasali/iphoneshopping-sub000/internal/domain/entities"

// IDeviceCatalog abstracts the static device registry.
//
// Lookups are exact on (deviceType, model), side-effect free and safe for
// concurrent use; no context is taken because the registry never does I/O.
type IDeviceCatalog interface {
	Lookup(deviceType entities.DeviceType, model string) (entities.DeviceCatalogEntry, error)
}
