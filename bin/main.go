package main

import (
	"os"

	"github.com/5l1v3r1/plaso/config"
	"github.com/5l1v3r1/plaso/formatters"
	kingpin "github.com/alecthomas/kingpin/v2"
)

type CommandHandler func(command string) bool

var (
	app = kingpin.New("plaso",
		"Render structured forensic events into human readable log lines.")

	config_path = app.Flag("config", "The configuration file.").
			Short('c').Envar("PLASO_CONFIG").String()

	definitions_dir = app.Flag("definitions",
		"A directory containing additional formatter definitions.").String()

	disable_builtin_flag = app.Flag("nobuiltin",
		"Do not load the built in formatter definitions.").Bool()

	verbose_flag = app.Flag(
		"verbose", "Enable verbose logging.").Short('v').
		Default("false").Bool()

	command_handlers []CommandHandler
)

func makeDefaultConfigLoader() *config.Loader {
	return new(config.Loader).
		WithVerbose(*verbose_flag).
		WithFileLoader(*config_path).
		WithDefaultLoader().
		WithDefinitionDirectory(*definitions_dir).
		WithRequiredDefinitions()
}

func loadConfig() *config.Config {
	config_obj, err := makeDefaultConfigLoader().LoadAndValidate()
	kingpin.FatalIfError(err, "Unable to load config.")

	if *disable_builtin_flag {
		config_obj.DisableBuiltinDefinitions = true
	}

	return config_obj
}

func loadCatalog(config_obj *config.Config) *formatters.Catalog {
	catalog, err := formatters.LoadCatalog(config_obj)
	kingpin.FatalIfError(err, "Unable to load formatter catalog.")

	return catalog
}

func main() {
	app.HelpFlag.Short('h')
	app.UsageTemplate(kingpin.CompactUsageTemplate)
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	for _, command_handler := range command_handlers {
		if command_handler(command) {
			break
		}
	}
}
