package formatters

import (
	"strings"

	"github.com/5l1v3r1/plaso/config"
	"github.com/5l1v3r1/plaso/logging"
	"github.com/5l1v3r1/plaso/utils"
	"github.com/Velocidex/ordereddict"
)

// Short messages derived from the long form are elided at this
// length.
const max_short_message = 80

// Event is a caller supplied record: a data_type tag and the
// attribute values extracted from the underlying artifact. The
// renderer does not own or mutate events.
type Event struct {
	DataType   string
	Attributes *ordereddict.Dict
}

// RenderedEvent is the result of formatting one event. Rendering
// always produces one - there is no error path.
type RenderedEvent struct {
	Message      string `json:"message"`
	ShortMessage string `json:"short_message"`
	ShortSource  string `json:"short_source"`
	Source       string `json:"source"`

	// True when the data_type had an explicit catalog entry, false
	// when the default template was used.
	Matched bool `json:"matched"`
}

// GetMessages renders the event against this catalog. Unknown data
// types fall back to the default template, missing attributes
// degrade per template kind, so every event formats to something.
func (self *Catalog) GetMessages(
	config_obj *config.Config, event *Event) *RenderedEvent {

	attrs := event.Attributes
	if attrs == nil {
		attrs = ordereddict.NewDict()
	}

	template, matched := self.Get(event.DataType)
	if !matched {
		if config_obj != nil && config_obj.LogUnknownDataTypes {
			logger := logging.GetLogger(config_obj, &logging.GenericComponent)
			logger.Warn("Using default formatter for data type: %s",
				event.DataType)
		}
		template = self.DefaultTemplate()
		attrs = withAttributeDump(attrs)
	}

	message := expandFragments(template, template.message, attrs)

	var short_message string
	if template.has_short {
		short_message = expandFragments(template, template.short_message, attrs)
	} else {
		short_message = message
		if len(short_message) > max_short_message {
			short_message = short_message[:max_short_message-3] + "..."
		}
	}

	return &RenderedEvent{
		Message:      message,
		ShortMessage: short_message,
		ShortSource:  template.ShortSource,
		Source:       template.Source,
		Matched:      matched,
	}
}

// expandFragments runs the substitution algorithm for one message
// spec. Basic templates substitute unconditionally, conditional
// templates drop whole fragments whose attributes are missing and
// join the survivors with the separator.
func expandFragments(
	template *Template, fragments []*Fragment,
	attrs *ordereddict.Dict) string {

	parts := make([]string, 0, len(fragments))

	for _, fragment := range fragments {
		if template.Type == TYPE_CONDITIONAL {
			part, ok := expandConditional(fragment, attrs)
			if !ok {
				continue
			}
			parts = append(parts, part)
		} else {
			parts = append(parts, expandBasic(fragment, attrs))
		}
	}

	separator := ""
	if template.Type == TYPE_CONDITIONAL {
		separator = template.Separator
	}

	// Log lines are single lines.
	return stripNewlines(strings.Join(parts, separator))
}

// expandBasic substitutes every placeholder, using the empty string
// for missing attributes. Never fails.
func expandBasic(fragment *Fragment, attrs *ordereddict.Dict) string {
	return fragment.expand(func(name string) string {
		value, pres := attrs.Get(name)
		if !pres {
			return ""
		}
		return attributeString(value)
	})
}

// expandConditional emits the fragment only when every referenced
// attribute is present with non trivial content. Fragments with no
// placeholders are literals and always emit.
func expandConditional(fragment *Fragment, attrs *ordereddict.Dict) (
	string, bool) {
	for _, name := range fragment.Placeholders() {
		value, pres := attrs.Get(name)
		if !pres || isEmptyValue(value) {
			return "", false
		}
	}

	return expandBasic(fragment, attrs), true
}

// isEmptyValue gates conditional fragments. Only true absence and
// trivial string content count as empty: the string "0", numeric
// zero and boolean false all stringify to real content and must
// render. Never gate on language truthiness.
func isEmptyValue(value interface{}) bool {
	return strings.TrimSpace(attributeString(value)) == ""
}

func attributeString(value interface{}) string {
	if utils.IsNil(value) {
		return ""
	}
	return utils.ToString(value)
}

func stripNewlines(in string) string {
	if !strings.ContainsAny(in, "\r\n") {
		return in
	}
	in = strings.Replace(in, "\r", "", -1)
	return strings.Replace(in, "\n", "", -1)
}
