package formatters

import (
	"embed"

	"github.com/5l1v3r1/plaso/config"
	"github.com/5l1v3r1/plaso/logging"
)

//go:embed definitions/*.yaml
var builtin_definitions embed.FS

// LoadBuiltinDefinitions loads the compiled in catalog entries.
// Individual broken files are logged and skipped - shipping one bad
// definition must not disable formatting altogether.
func (self *CatalogBuilder) LoadBuiltinDefinitions(
	config_obj *config.Config) error {
	files, err := builtin_definitions.ReadDir("definitions")
	if err != nil {
		return err
	}

	count := 0
	logger := logging.GetLogger(config_obj, &logging.CatalogComponent)
	for _, file := range files {
		data, err := builtin_definitions.ReadFile(
			"definitions/" + file.Name())
		if err != nil {
			logger.Error("Cant read asset %s: %v", file.Name(), err)
			continue
		}

		loaded, err := self.LoadYaml(string(data))
		if err != nil {
			logger.Error("Cant parse asset %s: %v", file.Name(), err)
			continue
		}
		count += loaded
	}

	logger.Debug("Loaded %d built in formatter definitions", count)
	return nil
}
