package formatters

// Valid values for the type discriminator in a template definition.
const (
	TYPE_BASIC       = "basic"
	TYPE_CONDITIONAL = "conditional"

	// Separator used between conditional fragments when the
	// definition does not give one.
	DEFAULT_SEPARATOR = " "
)

// MessageSpec is either a single format string (basic templates) or
// an ordered list of format strings (conditional templates). The
// YAML shape is part of the catalog format and both forms must round
// trip unchanged.
type MessageSpec struct {
	Single string
	Pieces []string
	IsList bool
}

func (self *MessageSpec) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var single string
	err := unmarshal(&single)
	if err == nil {
		self.Single = single
		self.IsList = false
		return nil
	}

	var pieces []string
	err = unmarshal(&pieces)
	if err != nil {
		return err
	}

	self.Pieces = pieces
	self.IsList = true
	return nil
}

func (self MessageSpec) MarshalYAML() (interface{}, error) {
	if self.IsList {
		return self.Pieces, nil
	}
	return self.Single, nil
}

// IsEmpty reports whether the spec was not given at all.
func (self MessageSpec) IsEmpty() bool {
	return !self.IsList && self.Single == ""
}

// TemplateDefinition is the exact on disk YAML shape of one catalog
// entry. Definitions are stored as independent documents in a multi
// document YAML stream.
type TemplateDefinition struct {
	Type         string      `json:"type" yaml:"type"`
	DataType     string      `json:"data_type" yaml:"data_type"`
	Message      MessageSpec `json:"message" yaml:"message"`
	ShortMessage MessageSpec `json:"short_message,omitempty" yaml:"short_message,omitempty"`
	Separator    *string     `json:"separator,omitempty" yaml:"separator,omitempty"`
	ShortSource  string      `json:"short_source" yaml:"short_source"`
	Source       string      `json:"source" yaml:"source"`
}

// Template is the compiled, immutable form of one definition.
// Templates are never modified after the catalog is built so they
// may be shared between concurrent renders without locking.
type Template struct {
	DataType    string
	Type        string
	Separator   string
	ShortSource string
	Source      string

	message       []*Fragment
	short_message []*Fragment

	// A basic template may omit the short form, in which case the
	// short message is derived from the long one.
	has_short bool

	definition *TemplateDefinition
}

// Definition returns the original declarative form of the template.
func (self *Template) Definition() *TemplateDefinition {
	return self.definition
}

// A fragment either is or contains placeholder references. Segments
// alternate between literal runs and placeholder substitutions.
type segment struct {
	literal     string
	placeholder string
}

// Fragment is one compiled format string. For basic templates the
// whole message is a single fragment, for conditional templates each
// list entry is its own fragment.
type Fragment struct {
	raw          string
	segments     []segment
	placeholders []string
}

func (self *Fragment) Raw() string {
	return self.raw
}

// Placeholders returns the attribute names this fragment references,
// in order of first appearance.
func (self *Fragment) Placeholders() []string {
	return self.placeholders
}

// expand substitutes every placeholder using the resolver. Literal
// runs are copied through unchanged. Substituted values are inserted
// as literal text and never rescanned.
func (self *Fragment) expand(resolve func(name string) string) string {
	result := make([]byte, 0, len(self.raw))
	for _, seg := range self.segments {
		if seg.placeholder != "" {
			result = append(result, resolve(seg.placeholder)...)
		} else {
			result = append(result, seg.literal...)
		}
	}
	return string(result)
}
