package tarot

import (
	"encoding/json"
	"errors"

	"github.com/spf13/afero"
)

// DefaultFileName is the input file read when no other is given
const DefaultFileName = "tarot_interpretations.json"

// Load reads and decodes a tarot interpretations document from fs
func Load(fs afero.Fs, path string) (*Document, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	return decode(path, data)
}

// Decode parses a tarot interpretations document.
//
// Malformed JSON yields a *ParseError, a record missing a field or holding
// one of the wrong shape yields a *SchemaError.
func Decode(data []byte) (*Document, error) {
	return decode("", data)
}

func decode(path string, data []byte) (*Document, error) {
	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, newParseError(path, err)
	}

	if err := validate(path, data); err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, newParseError(path, err)
	}

	return &doc, nil
}

func newParseError(path string, err error) *ParseError {
	pErr := &ParseError{Path: path, Err: err}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		pErr.Offset = syntaxErr.Offset
	}

	return pErr
}
