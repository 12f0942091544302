package domain

import (
	"testing"

	"github.com/beka-birhanu/vinom-pcg/pcg"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLevelRecord(t *testing.T) {
	t.Run("Valid parameters", func(t *testing.T) {
		p := pcg.DefaultParameters()
		p.Seed = 42
		rec, err := NewLevelRecord(LevelRecordConfig{Params: p, Author: "ada"})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, rec.ID)
		assert.Equal(t, 42, rec.Seed)
		assert.Equal(t, "ada", rec.Author)
		assert.False(t, rec.CreatedAt.IsZero())
	})

	t.Run("Keeps a given ID", func(t *testing.T) {
		id := uuid.New()
		p := pcg.DefaultParameters()
		p.Seed = 1
		rec, err := NewLevelRecord(LevelRecordConfig{ID: id, Params: p})
		require.NoError(t, err)
		assert.Equal(t, id, rec.ID)
	})

	t.Run("Random seed is rejected", func(t *testing.T) {
		_, err := NewLevelRecord(LevelRecordConfig{Params: pcg.DefaultParameters()})
		assert.ErrorIs(t, err, ErrUnresolvedSeed)
	})

	t.Run("Invalid parameters are rejected", func(t *testing.T) {
		p := pcg.DefaultParameters()
		p.Seed = 3
		p.Width = 1
		_, err := NewLevelRecord(LevelRecordConfig{Params: p})
		assert.Error(t, err)
	})
}
