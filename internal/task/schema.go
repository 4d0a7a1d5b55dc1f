package task

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// taskSchema is the JSON Schema for a single task document. It is embedded
// so doctor can audit a collection without any schema file on disk.
const taskSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["title", "priority", "status", "created_at"],
  "properties": {
    "id": {"type": "string", "pattern": "^[0-9a-f]{24}$"},
    "title": {"type": "string", "minLength": 1, "maxLength": 200},
    "description": {"type": "string", "maxLength": 1000},
    "due_date": {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"},
    "priority": {"enum": ["High", "Medium", "Low"]},
    "status": {"enum": ["Pending", "In Progress", "Completed"]},
    "created_at": {"type": "string"}
  },
  "additionalProperties": false
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func compiled() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("task.schema.json", strings.NewReader(taskSchema)); err != nil {
			schemaErr = fmt.Errorf("add task schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile("task.schema.json")
	})
	return compiledSchema, schemaErr
}

// ValidateDocument checks the task's JSON form against the embedded schema,
// applying the required-field, enum, pattern, and length rules in one pass.
// Only decoded fields are visible here, so stray fields on documents written
// by other tools are not detected.
func (t *Task) ValidateDocument() error {
	schema, err := compiled()
	if err != nil {
		// Schema unusable, fall back to the minimal checks.
		return t.Validate()
	}

	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("marshal task for validation: %w", err)
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("unmarshal task for validation: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("task %s: %w", t.ID.Hex(), flattenSchemaError(err))
	}
	return nil
}

// flattenSchemaError reduces a jsonschema validation error tree to its
// leaf causes, one per line.
func flattenSchemaError(err error) error {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err
	}
	leaves := collectLeaves(ve, nil)
	if len(leaves) == 0 {
		return err
	}
	return fmt.Errorf("%s", strings.Join(leaves, "; "))
}

func collectLeaves(err *jsonschema.ValidationError, acc []string) []string {
	if err == nil {
		return acc
	}
	if len(err.Causes) == 0 {
		loc := strings.TrimPrefix(err.InstanceLocation, "/")
		if loc == "" {
			return append(acc, err.Message)
		}
		return append(acc, fmt.Sprintf("%s: %s", loc, err.Message))
	}
	for _, cause := range err.Causes {
		acc = collectLeaves(cause, acc)
	}
	return acc
}
