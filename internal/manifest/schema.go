package manifest

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "https://github.com/jorge-barreto/syllabus/topics.schema.json"

//go:embed topics.schema.json
var schemaJSON []byte

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("parsing embedded schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("adding embedded schema: %w", err)
	}
	return compiler.Compile(schemaURL)
})

// validateSchema checks the shape of a decoded YAML document. Only types
// and unknown keys are enforced; missing values are left to registry
// validation.
func validateSchema(raw any) error {
	schema, err := compiledSchema()
	if err != nil {
		return err
	}

	// Round-trip through JSON so numbers arrive as json.Number.
	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("converting to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("converting to JSON: %w", err)
	}
	return schema.Validate(inst)
}
