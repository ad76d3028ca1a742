package extract

import (
	"fmt"

	"faena/internal/domain"
)

// Adapter converts one source unit of a known format into draft records.
type Adapter interface {
	Extract(unit domain.SourceUnit) ([]*Draft, error)
}

// adapters is the format-keyed adapter registry, populated by RegisterAdapter.
var adapters = map[domain.SourceFormat]Adapter{}

// RegisterAdapter registers an adapter for a source format.
func RegisterAdapter(format domain.SourceFormat, a Adapter) {
	adapters[format] = a
}

// ForFormat returns the registered adapter for a source format.
func ForFormat(format domain.SourceFormat) (Adapter, error) {
	a, ok := adapters[format]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, format)
	}
	return a, nil
}
