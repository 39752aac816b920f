package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/5l1v3r1/plaso/formatters"
	"github.com/5l1v3r1/plaso/json"
	"github.com/5l1v3r1/plaso/logging"
	"github.com/Velocidex/ordereddict"
	kingpin "github.com/alecthomas/kingpin/v2"
)

var (
	format_command = app.Command(
		"format", "Render events from a JSONL file.")

	format_command_events = format_command.Arg(
		"events", "Path to a JSONL event file ('-' reads stdin). "+
			"Each line holds a data_type key and the event attributes.").
		Required().String()

	format_command_output = format_command.Flag(
		"output", "Output format.").Default("text").Enum("text", "jsonl")
)

func doFormat() {
	config_obj := loadConfig()
	catalog := loadCatalog(config_obj)
	logger := logging.GetLogger(config_obj, &logging.ToolComponent)

	fd := os.Stdin
	if *format_command_events != "-" {
		var err error
		fd, err = os.Open(*format_command_events)
		kingpin.FatalIfError(err, "Unable to open event file.")
		defer fd.Close()
	}

	count := 0
	scanner := bufio.NewScanner(fd)
	// Event lines can be large (EVT strings, cookie payloads).
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		row := ordereddict.NewDict()
		err := json.Unmarshal(line, row)
		if err != nil {
			logger.Error("Skipping malformed event line: %v", err)
			continue
		}

		rendered := catalog.GetMessages(config_obj, makeEvent(row))
		emitRendered(rendered)
		count++
	}
	kingpin.FatalIfError(scanner.Err(), "Unable to read event file.")

	logger.Debug("Rendered %d events", count)
}

// makeEvent splits an event row into the data_type tag and the
// attribute mapping.
func makeEvent(row *ordereddict.Dict) *formatters.Event {
	data_type, _ := row.GetString("data_type")

	attrs := ordereddict.NewDict()
	for _, key := range row.Keys() {
		if key == "data_type" {
			continue
		}
		value, _ := row.Get(key)
		attrs.Set(key, value)
	}

	return &formatters.Event{
		DataType:   data_type,
		Attributes: attrs,
	}
}

func emitRendered(rendered *formatters.RenderedEvent) {
	if *format_command_output == "jsonl" {
		fmt.Println(json.MustMarshalString(rendered))
		return
	}

	fmt.Printf("[%s] %s\n", rendered.ShortSource, rendered.Message)
}

func init() {
	command_handlers = append(command_handlers, func(command string) bool {
		if command == format_command.FullCommand() {
			doFormat()
			return true
		}
		return false
	})
}
