package formatters

import (
	"sort"
	"sync"

	"github.com/5l1v3r1/plaso/config"
	"github.com/5l1v3r1/plaso/logging"
)

// Catalog maps data_type to its compiled template. Catalogs are
// immutable once built - rendering takes no locks.
type Catalog struct {
	templates        map[string]*Template
	default_template *Template
}

// Get returns the template registered for the data_type. Rendering
// callers should fall back to DefaultTemplate() when this misses.
func (self *Catalog) Get(data_type string) (*Template, bool) {
	result, pres := self.templates[data_type]
	return result, pres
}

// DefaultTemplate returns the fallback entry. It always exists and
// always renders.
func (self *Catalog) DefaultTemplate() *Template {
	return self.default_template
}

// List returns all registered data types in sorted order.
func (self *Catalog) List() []string {
	result := make([]string, 0, len(self.templates))
	for k := range self.templates {
		result = append(result, k)
	}
	sort.Strings(result)
	return result
}

func (self *Catalog) Len() int {
	return len(self.templates)
}

var (
	mu             sync.Mutex
	global_catalog *Catalog
)

// GetGlobalCatalog returns the process wide catalog, building it
// from the config on first use.
func GetGlobalCatalog(config_obj *config.Config) (*Catalog, error) {
	mu.Lock()
	defer mu.Unlock()

	if global_catalog == nil {
		catalog, err := LoadCatalog(config_obj)
		if err != nil {
			return nil, err
		}
		global_catalog = catalog
	}

	return global_catalog, nil
}

// SetGlobalCatalog replaces the whole catalog reference. In flight
// renders keep the catalog they already resolved, so they observe
// either the old or the new catalog entirely.
func SetGlobalCatalog(catalog *Catalog) {
	mu.Lock()
	defer mu.Unlock()

	global_catalog = catalog
}

// LoadCatalog assembles a catalog according to the config: the built
// in definitions unless disabled, then any definition directories on
// top.
func LoadCatalog(config_obj *config.Config) (*Catalog, error) {
	builder := NewCatalogBuilder()

	if config_obj == nil || !config_obj.DisableBuiltinDefinitions {
		err := builder.LoadBuiltinDefinitions(config_obj)
		if err != nil {
			return nil, err
		}
	}

	if config_obj != nil {
		logger := logging.GetLogger(config_obj, &logging.CatalogComponent)
		for _, dirname := range config_obj.DefinitionDirectories {
			count, err := builder.LoadDirectory(config_obj, dirname)
			if err != nil {
				return nil, err
			}
			logger.Info("Loaded %d definitions from %s", count, dirname)
		}
	}

	return builder.Build(), nil
}
