package enhance

import (
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// suggestionsSchema constrains the enhancement response: a list of
// suggestion objects with bounded priorities and categories.
const suggestionsSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["suggestions"],
  "properties": {
    "suggestions": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["priority", "category", "issue", "action"],
        "properties": {
          "priority": {"type": "string", "enum": ["high", "medium", "low"]},
          "category": {"type": "string", "enum": ["keyword", "format", "experience", "structure", "content"]},
          "issue": {"type": "string", "minLength": 1},
          "action": {"type": "string", "minLength": 1},
          "estimated_impact": {"type": "string"}
        }
      }
    }
  }
}`

// similaritySchema constrains the semantic similarity response to a single
// bounded integer.
const similaritySchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["similarity"],
  "properties": {
    "similarity": {"type": "integer", "minimum": 0, "maximum": 100}
  }
}`

// validateAgainst checks a raw JSON document against a schema and returns a
// ParseError describing the first violations on failure.
func validateAgainst(schema, document, operation string) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewStringLoader(document),
	)
	if err != nil {
		return &ParseError{Operation: operation, Err: err}
	}
	if result.Valid() {
		return nil
	}

	var details []string
	for _, desc := range result.Errors() {
		details = append(details, desc.String())
	}
	return &ParseError{Operation: operation, Detail: strings.Join(details, "; ")}
}
