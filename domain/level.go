// Package domain holds the level models shared by the service and its adapters.
package domain

import (
	"time"

	"github.com/beka-birhanu/vinom-pcg/analysis"
	"github.com/beka-birhanu/vinom-pcg/pcg"
	"github.com/google/uuid"
)

// Level is a generated level ready to be served.
type Level struct {
	Grid   *pcg.Grid
	Seed   int
	Params pcg.Parameters // Params.Seed always equals Seed
	Report analysis.Report
}

// LevelRecord is a persisted level. Only the inputs are stored: replaying
// Params regenerates the grid.
type LevelRecord struct {
	ID        uuid.UUID      `bson:"_id"`
	Seed      int            `bson:"seed"`
	Params    pcg.Parameters `bson:"params"`
	Author    string         `bson:"author"`
	CreatedAt time.Time      `bson:"createdAt"`
}

// LevelRecordConfig holds the values needed to create a LevelRecord.
type LevelRecordConfig struct {
	ID     uuid.UUID
	Params pcg.Parameters
	Author string
}

// NewLevelRecord validates the parameters and creates a record.
// The seed must already be resolved so that the record is replayable.
func NewLevelRecord(cfg LevelRecordConfig) (*LevelRecord, error) {
	if err := cfg.Params.Validate(); err != nil {
		return nil, err
	}
	if cfg.Params.Seed == pcg.RandomSeed {
		return nil, ErrUnresolvedSeed
	}
	if cfg.ID == uuid.Nil {
		cfg.ID = uuid.New()
	}
	return &LevelRecord{
		ID:        cfg.ID,
		Seed:      cfg.Params.Seed,
		Params:    cfg.Params,
		Author:    cfg.Author,
		CreatedAt: time.Now().UTC(),
	}, nil
}
