package pcg

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnionFind(t *testing.T) {
	t.Run("Every node starts as its own set", func(t *testing.T) {
		uf := NewUnionFind(slices.Values([]string{"a", "b", "c"}))
		assert.Equal(t, 3, uf.Sets())
		assert.Equal(t, "a", uf.Find("a"))
		assert.Equal(t, "b", uf.Find("b"))
		assert.False(t, uf.Connected("a", "b"))
	})

	t.Run("Duplicate nodes are ignored", func(t *testing.T) {
		uf := NewUnionFind(slices.Values([]int{1, 1, 2}))
		assert.Equal(t, 2, uf.Sets())
	})

	t.Run("Union merges and reports no-op on same set", func(t *testing.T) {
		uf := NewUnionFind(slices.Values([]int{1, 2, 3}))
		assert.True(t, uf.Union(1, 2))
		assert.False(t, uf.Union(2, 1))
		assert.True(t, uf.Connected(1, 2))
		assert.Equal(t, 2, uf.Sets())
	})

	t.Run("Rank tie attaches b under a", func(t *testing.T) {
		uf := NewUnionFind(slices.Values([]int{1, 2, 3}))
		uf.Union(1, 2)
		assert.Equal(t, 1, uf.Find(2))

		// 1 now has rank 1, so the lower-ranked 3 goes under it regardless of order.
		uf.Union(3, 1)
		assert.Equal(t, 1, uf.Find(3))
		assert.Equal(t, 1, uf.Sets())
	})

	t.Run("Find compresses paths", func(t *testing.T) {
		uf := NewUnionFind(slices.Values([]int{1, 2, 3, 4}))
		uf.Union(1, 2)
		uf.Union(3, 4)
		uf.Union(1, 3) // 3 under 1, 4 still points to 3
		assert.Equal(t, 3, uf.parent[4])
		assert.Equal(t, 1, uf.Find(4))
		assert.Equal(t, 1, uf.parent[4])
	})

	t.Run("Unknown node panics", func(t *testing.T) {
		uf := NewUnionFind(slices.Values([]Position{{X: 0, Y: 0}}))
		assert.Panics(t, func() { uf.Find(Position{X: 5, Y: 5}) })
		assert.Panics(t, func() { uf.Union(Position{X: 0, Y: 0}, Position{X: 1, Y: 1}) })
	})
}
