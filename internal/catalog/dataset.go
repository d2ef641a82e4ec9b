package catalog

import (
	_ "embed"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

// Default returns the catalog embedded in the binary, used when no catalog
// file is supplied on the command line.
func Default() (*Catalog, error) {
	return parse(defaultCatalog, "embedded catalog")
}
