package i

import "context"

// LevelCache stores encoded levels by key.
type LevelCache interface {
	// Fetch returns the value cached under key. On a miss it calls build,
	// stores the result and returns it. Concurrent callers for the same key
	// should build at most once.
	Fetch(ctx context.Context, key string, build func() ([]byte, error)) ([]byte, error)
}
