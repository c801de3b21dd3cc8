package config

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// configSchema is the JSON Schema every config file must satisfy. Keeping
// it embedded means the CLI validates configs without any schema files on
// disk, regardless of working directory.
const configSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "candidate-ingest config",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "files": {
      "type": "array",
      "items": {"type": "string", "minLength": 1}
    },
    "vocab": {"type": "string"},
    "output_dir": {"type": "string"},
    "no_dedupe": {"type": "boolean"},
    "verbose": {"type": "boolean"},
    "jobs": {"type": "integer", "minimum": 0}
  }
}`

// validateConfigJSON checks raw config bytes against the embedded schema
// and reports every violation at once.
func validateConfigJSON(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(configSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to validate config: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("config schema violations:")
	for _, desc := range result.Errors() {
		sb.WriteString(fmt.Sprintf("\n  - %s: %s", desc.Field(), desc.Description()))
	}
	return fmt.Errorf("%s", sb.String())
}
