package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-pcg/domain"
	"github.com/google/uuid"
)

// LevelRepo defines the interface for level persistence operations.
type LevelRepo interface {
	// Save inserts or updates a level record in the repository.
	Save(ctx context.Context, level *dmn.LevelRecord) error

	// ByID retrieves a level record by its unique ID.
	// Returns dmn.ErrLevelNotFound if no record matches.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.LevelRecord, error)

	// ByAuthor retrieves the records saved by author, newest first.
	ByAuthor(ctx context.Context, author string) ([]*dmn.LevelRecord, error)
}
