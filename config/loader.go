package config

import (
	"io/ioutil"
	"os"

	"github.com/Velocidex/yaml/v2"
	"github.com/go-errors/errors"
)

type loaderFunction struct {
	name        string
	loader_func func(self *Loader) (*Config, error)
}

type validatorFunction struct {
	name      string
	validator func(self *Loader, config_obj *Config) error
}

// Loader assembles a valid configuration from a number of potential
// sources. Loaders are tried in order until one produces a config,
// then all validators run over the result.
type Loader struct {
	verbose bool

	loaders    []loaderFunction
	validators []validatorFunction
}

func (self *Loader) Copy() *Loader {
	return &Loader{
		verbose:    self.verbose,
		loaders:    append([]loaderFunction{}, self.loaders...),
		validators: append([]validatorFunction{}, self.validators...),
	}
}

func (self *Loader) WithVerbose(verbose bool) *Loader {
	self = self.Copy()
	self.verbose = verbose
	return self
}

func (self *Loader) WithFileLoader(filename string) *Loader {
	if filename == "" {
		return self
	}

	self = self.Copy()
	self.loaders = append(self.loaders, loaderFunction{
		name: "FileLoader",
		loader_func: func(self *Loader) (*Config, error) {
			return read_config_from_file(filename)
		}})
	return self
}

// Used when no config file is provided - everything comes from flags
// and the built in definitions.
func (self *Loader) WithDefaultLoader() *Loader {
	self = self.Copy()
	self.loaders = append(self.loaders, loaderFunction{
		name: "DefaultLoader",
		loader_func: func(self *Loader) (*Config, error) {
			return GetDefaultConfig(), nil
		}})
	return self
}

func (self *Loader) WithDefinitionDirectory(dirname string) *Loader {
	if dirname == "" {
		return self
	}

	self = self.Copy()
	self.validators = append(self.validators, validatorFunction{
		name: "WithDefinitionDirectory",
		validator: func(self *Loader, config_obj *Config) error {
			st, err := os.Stat(dirname)
			if err != nil {
				return errors.New("Definition directory not accessible: " +
					dirname)
			}
			if !st.IsDir() {
				return errors.New("Not a directory: " + dirname)
			}
			config_obj.DefinitionDirectories = append(
				config_obj.DefinitionDirectories, dirname)
			return nil
		}})
	return self
}

func (self *Loader) WithRequiredDefinitions() *Loader {
	self = self.Copy()
	self.validators = append(self.validators, validatorFunction{
		name: "WithRequiredDefinitions",
		validator: func(self *Loader, config_obj *Config) error {
			if config_obj.DisableBuiltinDefinitions &&
				len(config_obj.DefinitionDirectories) == 0 {
				return errors.New(
					"Built in definitions are disabled and no " +
						"definition directories are given")
			}
			return nil
		}})
	return self
}

func (self *Loader) Validate(config_obj *Config) error {
	for _, validator := range self.validators {
		err := validator.validator(self, config_obj)
		if err != nil {
			return err
		}
	}
	return nil
}

func (self *Loader) LoadAndValidate() (*Config, error) {
	for _, loader := range self.loaders {
		config_obj, err := loader.loader_func(self)
		if err == nil {
			if self.verbose {
				config_obj.Verbose = true
			}
			return config_obj, self.Validate(config_obj)
		}

		// Only keep trying other loaders on soft errors.
		if self.verbose {
			os.Stderr.WriteString(
				loader.name + ": " + err.Error() + "\n")
		}
	}
	return nil, errors.New("Unable to load config from any source")
}

func read_config_from_file(filename string) (*Config, error) {
	result := &Config{}

	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}

	err = yaml.UnmarshalStrict(data, result)
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}

	return result, nil
}
