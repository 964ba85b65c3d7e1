// Package storage persists the recipe collection and exported recipe files.
package storage

import (
	"context"

	"github.com/starford/recipes/internal/models"
)

// Provider is the interface for recipe collection persistence.
type Provider interface {
	// Load returns the full collection. A missing backing file yields an
	// empty collection.
	Load(ctx context.Context) ([]models.Recipe, error)
	// Append adds r to the end of the collection and rewrites the backing
	// file. Implementations must perform the read-modify-write as a single
	// serialized operation.
	Append(ctx context.Context, r models.Recipe) error
}
