package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/starford/recipes/internal/apperr"
	"github.com/starford/recipes/internal/models"
)

// JSONFile implements Provider backed by a single JSON array document.
type JSONFile struct {
	path string
	mu   sync.Mutex // serializes Append
}

// Verify *JSONFile satisfies Provider at compile time.
var _ Provider = (*JSONFile)(nil)

// NewJSONFile returns a store for the document at path. The file does not
// need to exist yet.
func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: filepath.Clean(path)}
}

// Path returns the backing file location.
func (f *JSONFile) Path() string {
	return f.path
}

// Load reads and decodes the whole collection.
func (f *JSONFile) Load(ctx context.Context) ([]models.Recipe, error) {
	return Go(ctx, f.read).Await()
}

// Append loads the collection, adds r and overwrites the backing file.
// A malformed existing document aborts the append before anything is written.
func (f *JSONFile) Append(ctx context.Context, r models.Recipe) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	recipes, err := f.Load(ctx)
	if err != nil {
		return err
	}
	recipes = append(recipes, r.Normalize())

	data, err := json.MarshalIndent(recipes, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: encode: %w", err)
	}
	data = append(data, '\n')

	_, err = Go(ctx, func(ctx context.Context) (struct{}, error) {
		if err := ctx.Err(); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, writeAtomic(f.path, data)
	}).Await()
	if err != nil {
		return fmt.Errorf("%w: %s: %w", apperr.ErrWrite, f.path, err)
	}
	return nil
}

func (f *JSONFile) read(ctx context.Context) ([]models.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return []models.Recipe{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", f.path, err)
	}
	// A zero-length file is what a freshly touched recipes.json looks like.
	if len(bytes.TrimSpace(data)) == 0 {
		return []models.Recipe{}, nil
	}

	var recipes []models.Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", apperr.ErrParse, f.path, err)
	}
	out := make([]models.Recipe, len(recipes))
	for i, r := range recipes {
		out[i] = r.Normalize()
	}
	return out, nil
}
