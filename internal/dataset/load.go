package dataset

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// File names expected inside the data directory.
const (
	StudentsFile    = "students.json"
	AssessmentsFile = "assessments.json"
	QuestionsFile   = "questions.json"
	ResponsesFile   = "student-responses.json"
)

// schemaCache caches compiled JSON schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// Load reads and validates the four dataset files from dir and returns
// an immutable snapshot. The whole load fails on the first file that is
// missing, unparseable, or fails schema validation.
func Load(dir string) (*Snapshot, error) {
	var students []Student
	if err := loadFile(filepath.Join(dir, StudentsFile), "students", studentsSchema, &students); err != nil {
		return nil, err
	}

	var assessments []Assessment
	if err := loadFile(filepath.Join(dir, AssessmentsFile), "assessments", assessmentsSchema, &assessments); err != nil {
		return nil, err
	}

	var questions []Question
	if err := loadFile(filepath.Join(dir, QuestionsFile), "questions", questionsSchema, &questions); err != nil {
		return nil, err
	}

	var responses []StudentResponse
	if err := loadFile(filepath.Join(dir, ResponsesFile), "student-responses", responsesSchema, &responses); err != nil {
		return nil, err
	}

	slog.Debug("loaded dataset",
		"dir", dir,
		"students", len(students),
		"assessments", len(assessments),
		"questions", len(questions),
		"responses", len(responses),
	)

	return NewSnapshot(students, assessments, questions, responses), nil
}

// loadFile reads path, validates the raw JSON against the named schema,
// then unmarshals it into out.
func loadFile(path, name string, schema map[string]any, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	compiled, err := compiledSchema(name, schema)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", name, err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("validate %s: %w", path, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// compiledSchema returns a cached compiled schema or compiles and caches it.
func compiledSchema(name string, definition map[string]any) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The jsonschema library expects a parsed JSON value (any), not raw
	// bytes. Marshal then unmarshal to get a clean any representation.
	defBytes, err := json.Marshal(definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(name, compiled)
	return compiled, nil
}
