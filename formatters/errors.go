package formatters

import (
	"fmt"

	errors "github.com/pkg/errors"
)

// Structural problems that make a definition unloadable. Rendering
// itself never produces errors - a record that cannot be formatted
// perfectly is still rendered in degraded form.
var (
	ErrUnknownType       = errors.New("unknown template type")
	ErrDuplicateDataType = errors.New("duplicate data_type")
	ErrMalformedTemplate = errors.New("malformed placeholder")
	ErrEmptyMessageList  = errors.New("empty message list")
	ErrMissingDataType   = errors.New("missing data_type")
)

// DefinitionError reports a structural problem in one template
// definition together with the data_type it belongs to, so broken
// entries in a large catalog can be found quickly.
type DefinitionError struct {
	DataType string
	Reason   string
	Err      error
}

func (self *DefinitionError) Error() string {
	data_type := self.DataType
	if data_type == "" {
		data_type = "<unknown>"
	}
	return fmt.Sprintf("template definition %q: %v: %s",
		data_type, self.Err, self.Reason)
}

func (self *DefinitionError) Unwrap() error {
	return self.Err
}

// Cause is used by github.com/pkg/errors.
func (self *DefinitionError) Cause() error {
	return self.Err
}

func definitionError(data_type string, cause error,
	format string, args ...interface{}) error {
	return &DefinitionError{
		DataType: data_type,
		Reason:   fmt.Sprintf(format, args...),
		Err:      cause,
	}
}
