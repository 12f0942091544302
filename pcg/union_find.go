package pcg

import (
	"errors"
	"fmt"
	"iter"
)

var ErrUnknownNode = errors.New("union-find: unknown node")

// UnionFind is a disjoint-set forest with path compression and union by rank.
type UnionFind[T comparable] struct {
	parent map[T]T
	rank   map[T]int
	sets   int
}

// NewUnionFind creates a UnionFind where every node starts in its own set.
func NewUnionFind[T comparable](nodes iter.Seq[T]) *UnionFind[T] {
	uf := &UnionFind[T]{
		parent: make(map[T]T),
		rank:   make(map[T]int),
	}
	for n := range nodes {
		if _, ok := uf.parent[n]; ok {
			continue
		}
		uf.parent[n] = n
		uf.rank[n] = 0
		uf.sets++
	}
	return uf
}

// Find returns the representative of the set containing x.
// It panics with ErrUnknownNode if x was not a construction node.
func (uf *UnionFind[T]) Find(x T) T {
	p, ok := uf.parent[x]
	if !ok {
		panic(fmt.Errorf("%w: %v", ErrUnknownNode, x))
	}
	if p != x {
		uf.parent[x] = uf.Find(p) // Path compression
	}
	return uf.parent[x]
}

// Union merges the sets containing a and b.
// It returns false when they already share a set.
func (uf *UnionFind[T]) Union(a, b T) bool {
	rootA := uf.Find(a)
	rootB := uf.Find(b)
	if rootA == rootB {
		return false
	}

	switch {
	case uf.rank[rootA] < uf.rank[rootB]:
		uf.parent[rootA] = rootB
	case uf.rank[rootA] > uf.rank[rootB]:
		uf.parent[rootB] = rootA
	default:
		uf.parent[rootB] = rootA
		uf.rank[rootA]++
	}
	uf.sets--
	return true
}

// Connected reports whether a and b share a set.
func (uf *UnionFind[T]) Connected(a, b T) bool {
	return uf.Find(a) == uf.Find(b)
}

// Sets returns the number of disjoint sets.
func (uf *UnionFind[T]) Sets() int {
	return uf.sets
}
