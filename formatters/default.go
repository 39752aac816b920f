package formatters

import (
	"fmt"
	"strings"

	"github.com/Velocidex/ordereddict"
)

// The fallback entry used for records whose data_type has no
// registered template. It renders the raw attributes of the record
// so no event is ever lost to a missing definition.
const default_template_yaml = `
type: 'basic'
data_type: 'event'
message: '<WARNING DEFAULT FORMATTER> Attributes: {attribute_driven}'
short_message: '<DEFAULT> {attribute_driven}'
short_source: 'EVENT'
source: 'Unknown'
`

var default_template *Template

func defaultTemplate() *Template {
	return default_template
}

// The synthetic attribute consumed by the default template.
const attribute_driven = "attribute_driven"

// withAttributeDump returns a copy of the attributes with the
// attribute_driven dump added. The caller's dict is never mutated -
// renders must not write into records.
func withAttributeDump(attrs *ordereddict.Dict) *ordereddict.Dict {
	result := ordereddict.NewDict()
	pieces := []string{}

	for _, key := range attrs.Keys() {
		value, _ := attrs.Get(key)
		result.Set(key, value)
		pieces = append(pieces, fmt.Sprintf(
			"%s: %s", key, attributeString(value)))
	}

	result.Set(attribute_driven, strings.Join(pieces, " "))
	return result
}

func init() {
	builder := NewCatalogBuilder()
	count, err := builder.LoadYaml(default_template_yaml)
	if err != nil || count != 1 {
		panic(fmt.Sprintf("broken default template: %v", err))
	}

	default_template, _ = builder.templates["event"]
}
