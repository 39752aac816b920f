package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/5l1v3r1/plaso/formatters"
	"github.com/Velocidex/yaml/v2"
	kingpin "github.com/alecthomas/kingpin/v2"
)

var (
	catalog_command = app.Command(
		"catalog", "Inspect the formatter catalog.")

	catalog_list_command = catalog_command.Command(
		"list", "List all registered data types.")

	catalog_show_command = catalog_command.Command(
		"show", "Show the definition for one data type.")
	catalog_show_data_type = catalog_show_command.Arg(
		"data_type", "The data type to show.").Required().String()

	catalog_verify_command = catalog_command.Command(
		"verify", "Validate a definition file without loading it.")
	catalog_verify_file = catalog_verify_command.Arg(
		"file", "A formatter definition file.").Required().String()
)

func doCatalogList() {
	config_obj := loadConfig()
	catalog := loadCatalog(config_obj)

	for _, data_type := range catalog.List() {
		fmt.Println(data_type)
	}
}

func doCatalogShow() {
	config_obj := loadConfig()
	catalog := loadCatalog(config_obj)

	template, pres := catalog.Get(*catalog_show_data_type)
	if !pres {
		kingpin.Fatalf("No formatter registered for %q - the default "+
			"template would be used.", *catalog_show_data_type)
	}

	serialized, err := yaml.Marshal(template.Definition())
	kingpin.FatalIfError(err, "Unable to serialize definition.")

	os.Stdout.Write(serialized)
}

func doCatalogVerify() {
	data, err := ioutil.ReadFile(*catalog_verify_file)
	kingpin.FatalIfError(err, "Unable to read definition file.")

	count, err := formatters.NewCatalogBuilder().LoadYaml(string(data))
	kingpin.FatalIfError(err, "Definition file invalid.")

	fmt.Printf("OK: %d definitions\n", count)
}

func init() {
	command_handlers = append(command_handlers, func(command string) bool {
		switch command {
		case catalog_list_command.FullCommand():
			doCatalogList()
		case catalog_show_command.FullCommand():
			doCatalogShow()
		case catalog_verify_command.FullCommand():
			doCatalogVerify()
		default:
			return false
		}
		return true
	})
}
