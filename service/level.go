package service

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"

	"github.com/beka-birhanu/vinom-pcg/analysis"
	"github.com/beka-birhanu/vinom-pcg/codec"
	dmn "github.com/beka-birhanu/vinom-pcg/domain"
	"github.com/beka-birhanu/vinom-pcg/pcg"
	"github.com/beka-birhanu/vinom-pcg/service/i"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	defaultPrefix  = "pcg"
	defaultWorkers = 4
	levelKeyFmt    = "%s:level:%016x"
)

var (
	ErrInvalidParameters = errors.New("invalid level parameters")
	ErrLevelNotFound     = dmn.ErrLevelNotFound
	ErrNilDependency     = errors.New("nil dependency")
)

// Options tunes a LevelService.
type Options struct {
	Prefix  string // Prefix of cache keys
	Workers int    // Concurrent generations in Pregenerate
}

// LevelService generates levels, caches the explicitly seeded ones and
// stores replayable records.
type LevelService struct {
	repo   i.LevelRepo
	cache  i.LevelCache
	logger i.Logger
	opts   *Options
}

// NewLevelService creates a LevelService. A nil cache disables caching.
func NewLevelService(repo i.LevelRepo, cache i.LevelCache, logger i.Logger, opts *Options) (i.LevelService, error) {
	if repo == nil || logger == nil {
		return nil, ErrNilDependency
	}
	if opts == nil {
		opts = &Options{}
	}
	if opts.Prefix == "" {
		opts.Prefix = defaultPrefix
	}
	if opts.Workers <= 0 {
		opts.Workers = defaultWorkers
	}

	return &LevelService{
		repo:   repo,
		cache:  cache,
		logger: logger,
		opts:   opts,
	}, nil
}

// Generate validates params and generates the level. Levels with an explicit
// seed are served from the cache when possible.
func (s *LevelService) Generate(ctx context.Context, params pcg.Parameters) (*dmn.Level, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParameters, err)
	}

	explicit := params.Seed != pcg.RandomSeed
	params = params.Normalize()
	params.Seed = pcg.ResolveSeed(params.Seed)

	build := func() []byte {
		return codec.MarshalResult(pcg.Generate(params), params)
	}

	var payload []byte
	if explicit && s.cache != nil {
		key := s.cacheKey(params)
		b, err := s.cache.Fetch(ctx, key, func() ([]byte, error) {
			return build(), nil
		})
		if err != nil {
			s.logger.Warning(fmt.Sprintf("Level cache unavailable for %s: %v", key, err))
		}
		payload = b
	}
	if payload == nil {
		payload = build()
	}

	lvl, err := decode(payload)
	if err != nil {
		return nil, fmt.Errorf("decode level: %w", err)
	}
	return lvl, nil
}

// Save stores a replayable record of params for author.
func (s *LevelService) Save(ctx context.Context, params pcg.Parameters, author string) (*dmn.LevelRecord, error) {
	rec, err := dmn.NewLevelRecord(dmn.LevelRecordConfig{
		ID:     uuid.New(),
		Params: params,
		Author: author,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParameters, err)
	}

	if err := s.repo.Save(ctx, rec); err != nil {
		return nil, fmt.Errorf("save level: %w", err)
	}
	s.logger.Info(fmt.Sprintf("Saved level: ID=%s Seed=%d Author=%s", rec.ID, rec.Seed, rec.Author))
	return rec, nil
}

// Replay loads the record id and regenerates its level.
func (s *LevelService) Replay(ctx context.Context, id uuid.UUID) (*dmn.Level, error) {
	rec, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.Generate(ctx, rec.Params)
}

// ByAuthor lists the records saved by author, newest first.
func (s *LevelService) ByAuthor(ctx context.Context, author string) ([]*dmn.LevelRecord, error) {
	return s.repo.ByAuthor(ctx, author)
}

// Pregenerate generates every parameter set concurrently. The returned
// levels keep the input order. The first failure cancels the rest.
func (s *LevelService) Pregenerate(ctx context.Context, params []pcg.Parameters) ([]*dmn.Level, error) {
	levels := make([]*dmn.Level, len(params))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Workers)

	for idx, p := range params {
		g.Go(func() error {
			lvl, err := s.Generate(gctx, p)
			if err != nil {
				return fmt.Errorf("level %d: %w", idx, err)
			}
			levels[idx] = lvl
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	s.logger.Info(fmt.Sprintf("Pregenerated %d levels", len(levels)))
	return levels, nil
}

func (s *LevelService) cacheKey(params pcg.Parameters) string {
	h := fnv.New64a()
	_, _ = h.Write(codec.MarshalParams(params))
	return fmt.Sprintf(levelKeyFmt, s.opts.Prefix, h.Sum64())
}

func decode(payload []byte) (*dmn.Level, error) {
	level, err := codec.Unmarshal(payload)
	if err != nil {
		return nil, err
	}
	return &dmn.Level{
		Grid:   level.Grid,
		Seed:   level.Seed,
		Params: level.Params,
		Report: analysis.AnalyzeGrid(level.Grid),
	}, nil
}
