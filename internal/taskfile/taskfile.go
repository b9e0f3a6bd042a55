// Package taskfile loads task definition documents. JSON documents are
// checked against the embedded JSON Schema before decoding; both formats go
// through Task.Validate afterwards, so a loaded task is always well-formed.
package taskfile

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/fieldstudy/formsource/pkg/types"
)

// Supported document formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

//go:embed task.schema.json
var taskSchemaJSON string

// schemaURL is the resource name the embedded schema is compiled under.
const schemaURL = "https://formsource.fieldstudy.dev/task.schema.json"

// taskSchema is the compiled document schema. Compiling an embedded,
// checked-in schema cannot fail at runtime, hence MustCompile semantics.
var taskSchema = func() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(schemaURL, strings.NewReader(taskSchemaJSON)); err != nil {
		panic(fmt.Sprintf("add task schema resource: %v", err))
	}
	return c.MustCompile(schemaURL)
}()

// Load reads and decodes the task definition at path. The format is taken
// from the file extension: .json, .yaml, or .yml. Returns
// types.ErrUnknownFormat for other extensions.
func Load(path string) (types.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Task{}, fmt.Errorf("read task definition: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return Decode(data, FormatJSON)
	case ".yaml", ".yml":
		return Decode(data, FormatYAML)
	default:
		return types.Task{}, types.ErrUnknownFormat
	}
}

// Decode parses a task definition document in the given format and
// validates it. Schema violations and semantic validation failures both
// wrap types.ErrInvalidDocument.
func Decode(data []byte, format string) (types.Task, error) {
	var task types.Task

	switch format {
	case FormatJSON:
		if err := validateSchema(data); err != nil {
			return types.Task{}, err
		}
		if err := json.Unmarshal(data, &task); err != nil {
			return types.Task{}, fmt.Errorf("%w: %v", types.ErrInvalidDocument, err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&task); err != nil {
			return types.Task{}, fmt.Errorf("%w: %v", types.ErrInvalidDocument, err)
		}
	default:
		return types.Task{}, types.ErrUnknownFormat
	}

	if err := task.Validate(); err != nil {
		return types.Task{}, fmt.Errorf("%w: %v", types.ErrInvalidDocument, err)
	}
	return task, nil
}

// validateSchema checks a JSON document against the embedded task schema.
func validateSchema(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", types.ErrInvalidDocument, err)
	}
	if err := taskSchema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", types.ErrInvalidDocument, err)
	}
	return nil
}
