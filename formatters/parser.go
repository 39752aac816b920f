package formatters

import (
	"regexp"
	"strings"

	"github.com/5l1v3r1/plaso/utils"
)

// Placeholder names follow attribute naming in the event sources.
var placeholderNameRegex = regexp.MustCompile("^[a-zA-Z0-9_]+$")

// parseFragment compiles one format string into alternating literal
// runs and {name} placeholders. A '{' always opens a placeholder; a
// lone '}' is literal text (fragments like "] {body}" rely on that).
func parseFragment(raw string) (*Fragment, error) {
	result := &Fragment{raw: raw}

	literal_start := 0
	for i := 0; i < len(raw); i++ {
		if raw[i] != '{' {
			continue
		}

		end := strings.IndexByte(raw[i+1:], '}')
		if end < 0 {
			return nil, definitionError("", ErrMalformedTemplate,
				"unterminated placeholder in %q", raw)
		}

		name := raw[i+1 : i+1+end]
		if !placeholderNameRegex.MatchString(name) {
			return nil, definitionError("", ErrMalformedTemplate,
				"invalid placeholder name %q in %q", name, raw)
		}

		if literal_start < i {
			result.segments = append(result.segments, segment{
				literal: raw[literal_start:i],
			})
		}
		result.segments = append(result.segments, segment{
			placeholder: name,
		})
		if !utils.InString(result.placeholders, name) {
			result.placeholders = append(result.placeholders, name)
		}

		i += end + 1
		literal_start = i + 1
	}

	if literal_start < len(raw) {
		result.segments = append(result.segments, segment{
			literal: raw[literal_start:],
		})
	}

	return result, nil
}

// parseSpec compiles a message spec into its fragment list. Basic
// specs produce exactly one fragment.
func parseSpec(spec MessageSpec) ([]*Fragment, error) {
	if !spec.IsList {
		fragment, err := parseFragment(spec.Single)
		if err != nil {
			return nil, err
		}
		return []*Fragment{fragment}, nil
	}

	result := make([]*Fragment, 0, len(spec.Pieces))
	for _, piece := range spec.Pieces {
		fragment, err := parseFragment(piece)
		if err != nil {
			return nil, err
		}
		result = append(result, fragment)
	}
	return result, nil
}
