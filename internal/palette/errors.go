package palette

import "fmt"

// ParseError reports a malformed external color representation, such as a
// hex string of the wrong length or an unknown harmony name.
type ParseError struct {
	Input  string // the rejected input, verbatim
	Reason string // why it was rejected
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse color %q: %s", e.Input, e.Reason)
}

// NameNotFoundError reports a color name lookup with no matching entry in
// the CSS name table.
type NameNotFoundError struct {
	Name string
}

func (e *NameNotFoundError) Error() string {
	return fmt.Sprintf("no color named %q", e.Name)
}
