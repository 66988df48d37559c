package quiz

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const packSchemaURL = "schema://studyhall/quiz-pack.json"

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// packSchema returns the compiled pack schema, compiling it on first use.
func packSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not raw
		// bytes. Marshal then unmarshal to get a clean any representation.
		raw, err := json.Marshal(PackSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal pack schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(raw, &parsed); err != nil {
			compileErr = fmt.Errorf("parse pack schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(packSchemaURL, parsed); err != nil {
			compileErr = fmt.Errorf("add pack schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(packSchemaURL)
	})
	return compiledSchema, compileErr
}

// ParsePack validates raw pack JSON against the schema, decodes it, and
// runs the structural Validate check on every quiz.
func ParsePack(raw []byte) ([]Quiz, error) {
	sch, err := packSchema()
	if err != nil {
		return nil, err
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := sch.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var quizzes []Quiz
	if err := json.Unmarshal(raw, &quizzes); err != nil {
		return nil, fmt.Errorf("decode quizzes: %w", err)
	}
	for i := range quizzes {
		if err := quizzes[i].Validate(); err != nil {
			return nil, err
		}
	}
	return quizzes, nil
}

// LoadPackDir loads every .json quiz pack in dir, in filename order.
// A missing directory is not an error; an invalid pack file is.
func LoadPackDir(dir string) ([]Quiz, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read quiz pack dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var all []Quiz
	for _, name := range names {
		path := filepath.Join(dir, name)
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read quiz pack %s: %w", name, err)
		}
		quizzes, err := ParsePack(raw)
		if err != nil {
			return nil, fmt.Errorf("quiz pack %s: %w", name, err)
		}
		all = append(all, quizzes...)
	}
	return all, nil
}
