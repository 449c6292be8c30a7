package tarot

import (
	"fmt"
	"strings"
)

// ReadError is returned when the input cannot be read
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("error reading %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// ParseError is returned when the input is not well-formed JSON
type ParseError struct {
	Path string
	// Offset is the byte offset of the syntax error, or 0 when unknown
	Offset int64
	Err    error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("parse error")
	if e.Path != "" {
		fmt.Fprintf(&b, " in %s", e.Path)
	}
	if e.Offset > 0 {
		fmt.Fprintf(&b, " at offset %d", e.Offset)
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Violation is a single schema violation
type Violation struct {
	// Field is the JSON path of the offending value, "(root)" for the document
	Field       string
	Description string
}

func (v Violation) String() string {
	if v.Field == "" || v.Field == "(root)" {
		return v.Description
	}
	return v.Field + ": " + v.Description
}

// SchemaError is returned when a record is missing a field or has one of the
// wrong type
type SchemaError struct {
	Path       string
	Violations []Violation
}

func (e *SchemaError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.String())
	}

	if e.Path == "" {
		return "schema error: " + strings.Join(msgs, "; ")
	}
	return fmt.Sprintf("schema error in %s: %s", e.Path, strings.Join(msgs, "; "))
}
