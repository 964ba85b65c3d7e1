// Package testutil provides shared test helpers for setting up recipe stores.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/starford/recipes/internal/models"
	"github.com/starford/recipes/internal/storage"
)

// TestStore creates a JSON store in a temporary directory, seeded with recipes.
func TestStore(t *testing.T, recipes ...models.Recipe) *storage.JSONFile {
	t.Helper()
	store := storage.NewJSONFile(filepath.Join(t.TempDir(), "recipes.json"))
	for _, r := range recipes {
		if err := store.Append(context.Background(), r); err != nil {
			t.Fatal(err)
		}
	}
	return store
}
