package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ErrInvalidFile indicates the leaderboard file does not match the entry schema.
var ErrInvalidFile = errors.New("invalid leaderboard file")

// entrySchema describes the on-disk leaderboard format. Ranks and values
// may be written as strings or numbers.
var entrySchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"rank":  map[string]any{"type": []any{"string", "integer"}},
			"label": map[string]any{"type": "string", "minLength": 1},
			"value": map[string]any{"type": []any{"string", "number"}},
			"image": map[string]any{"type": "string"},
		},
		"required": []any{"label", "value"},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a decoded JSON document, not Go literals.
		defBytes, err := json.Marshal(entrySchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://leaderboard.json"
		if err := c.AddResource(url, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}

// FileSource reads leaderboard entries from a JSON file on every call.
type FileSource struct {
	Path string
}

var _ Source = (*FileSource)(nil)

// NewFileSource creates a FileSource for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (f *FileSource) Top(_ context.Context, limit int) ([]Entry, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read leaderboard file: %w", err)
	}
	entries, err := ParseEntries(data)
	if err != nil {
		return nil, err
	}
	return truncate(entries, limit), nil
}

// ParseEntries validates and decodes a JSON array of entries. Entries
// without a rank are ranked by their position.
func ParseEntries(data []byte) ([]Entry, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}

	sch, err := schema()
	if err != nil {
		return nil, fmt.Errorf("compile leaderboard schema: %w", err)
	}
	if err := sch.Validate(parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}

	items := parsed.([]any)
	entries := make([]Entry, 0, len(items))
	for i, item := range items {
		obj := item.(map[string]any)
		e := Entry{
			Rank:  scalarString(obj["rank"]),
			Label: obj["label"].(string),
			Value: scalarString(obj["value"]),
		}
		if img, ok := obj["image"].(string); ok {
			e.Image = img
		}
		if e.Rank == "" {
			e.Rank = strconv.Itoa(i + 1)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func scalarString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}
