package catalog

import (
	_ "embed"
	"fmt"
)

//go:embed default_catalog.json
var defaultCatalogJSON []byte

// Default returns the built-in question set, used when no catalog file
// is configured.
func Default() (*Catalog, error) {
	cat, err := Parse(defaultCatalogJSON)
	if err != nil {
		return nil, fmt.Errorf("built-in catalog: %w", err)
	}
	return cat, nil
}
