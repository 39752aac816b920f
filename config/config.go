package config

// Config controls how the formatter catalog is assembled and how the
// tools report their progress.
type Config struct {
	// Additional directories containing formatter definition files
	// (*.yaml). These are loaded on top of the built in catalog.
	DefinitionDirectories []string `json:"definition_directories,omitempty" yaml:"definition_directories,omitempty"`

	// Do not load the compiled in definitions. The catalog then only
	// contains definitions loaded from DefinitionDirectories. The
	// default template is always available regardless.
	DisableBuiltinDefinitions bool `json:"disable_builtin_definitions,omitempty" yaml:"disable_builtin_definitions,omitempty"`

	Verbose bool `json:"verbose,omitempty" yaml:"verbose,omitempty"`

	// Log rendering fallbacks to the default template. Useful when
	// tuning a catalog against a new event source.
	LogUnknownDataTypes bool `json:"log_unknown_data_types,omitempty" yaml:"log_unknown_data_types,omitempty"`
}

func GetDefaultConfig() *Config {
	return &Config{}
}
