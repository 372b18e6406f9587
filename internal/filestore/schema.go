package filestore

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/thenoetrevino/listo/internal/models"
)

const schemaURL = "task-list.schema.json"

// taskListSchema describes one list document: an array of task objects
const taskListSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["description", "completed"],
    "properties": {
      "id": {"type": "integer", "minimum": 1},
      "description": {"type": "string", "minLength": 1},
      "completed": {"type": "boolean"},
      "deadline": {"type": ["string", "null"], "format": "date"},
      "priority": {"type": ["string", "null"]},
      "category": {"type": ["string", "null"]}
    }
  }
}`

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	if err := compiler.AddResource(schemaURL, strings.NewReader(taskListSchema)); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	return compiler.Compile(schemaURL)
})

// validate checks a decoded document against the task list schema
func validate(doc interface{}) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %s", models.ErrDataCorruption, firstCause(err))
	}
	return nil
}

// firstCause digs out the innermost schema error, which names the
// offending location instead of the generic top-level failure.
func firstCause(err error) string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err.Error()
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	loc := ve.InstanceLocation
	if loc == "" {
		loc = "/"
	}
	return fmt.Sprintf("%s: %s", loc, ve.Message)
}
