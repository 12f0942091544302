package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-pcg/domain"
	"github.com/beka-birhanu/vinom-pcg/pcg"
	"github.com/google/uuid"
)

// LevelService generates, stores and replays levels.
type LevelService interface {
	Generate(ctx context.Context, params pcg.Parameters) (*dmn.Level, error)
	Save(ctx context.Context, params pcg.Parameters, author string) (*dmn.LevelRecord, error)
	Replay(ctx context.Context, id uuid.UUID) (*dmn.Level, error)
	ByAuthor(ctx context.Context, author string) ([]*dmn.LevelRecord, error)
	Pregenerate(ctx context.Context, params []pcg.Parameters) ([]*dmn.Level, error)
}

// PresetSource resolves named parameter sets.
type PresetSource interface {
	Preset(name string) (pcg.Parameters, error)
	Names() []string
}
