package history

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// recordSchema is the minimum a stored record must satisfy to be loaded at all.
// Anything beyond these three fields is coalesced by Normalize.
const recordSchema = `{
	"type": "object",
	"required": ["id", "createdAt", "jdText"],
	"properties": {
		"id": {
			"anyOf": [
				{"type": "string", "minLength": 1},
				{"type": "number"}
			]
		},
		"createdAt": {"type": "string", "minLength": 1},
		"jdText": {"type": "string"}
	}
}`

var compiledRecordSchema = mustSchema(recordSchema)

func mustSchema(src string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("history: invalid record schema: %v", err))
	}
	return s
}

// checkRecord validates one raw JSON record against recordSchema.
func checkRecord(raw []byte) error {
	result, err := compiledRecordSchema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	if result.Valid() {
		return nil
	}
	first := result.Errors()[0]
	return fmt.Errorf("malformed record: %s: %s", first.Field(), first.Description())
}
