package domain

import "errors"

var (
	ErrUnresolvedSeed = errors.New("seed must be explicit to store a level")
	ErrLevelNotFound  = errors.New("level not found")
)
