package tarot

import (
	"encoding/json"
	"sync"

	"github.com/invopop/jsonschema"
	"github.com/xeipuuv/gojsonschema"
)

// SchemaID is the $id of the tarot interpretations schema
const SchemaID = "https://raw.githubusercontent.com/arcanaland/fortunes/main/tarot.schema.json"

// Schema reflects the JSON schema of a tarot interpretations document.
//
// Unknown fields are allowed, every declared field is required.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		DoNotReference:            true,
		ExpandedStruct:            true,
		AllowAdditionalProperties: true,
	}
	schema := reflector.Reflect(&Document{})

	schema.ID = SchemaID
	schema.Title = "Tarot interpretations"

	return schema
}

var schemaOnce = sync.OnceValues(func() (string, error) {
	b, err := json.Marshal(Schema())
	return string(b), err
})

// validate checks well-formed JSON against Schema
func validate(path string, data []byte) error {
	schema, err := schemaOnce()
	if err != nil {
		return err
	}

	result, err := gojsonschema.Validate(gojsonschema.NewStringLoader(schema), gojsonschema.NewBytesLoader(data))
	if err != nil {
		return err
	}

	if result.Valid() {
		return nil
	}

	violations := make([]Violation, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		violations = append(violations, Violation{
			Field:       re.Field(),
			Description: re.Description(),
		})
	}

	return &SchemaError{Path: path, Violations: violations}
}
