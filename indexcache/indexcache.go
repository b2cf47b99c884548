// Package indexcache adds a process-local, size-bounded cache of built
// match indexes in front of commatch.New, so that matching the same
// reference blob against many target blobs does not pay for rebuilding the
// HashMatch key table or the TreeMatch suffix tree on every call.
package indexcache

import (
	"fmt"
	"hash/maphash"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/seiflotfy/commatch"
	"github.com/seiflotfy/commatch/hashmatch"
	"github.com/seiflotfy/commatch/suffixtree"
	"github.com/seiflotfy/commatch/treematch"
)

// cacheKey identifies a built index by a content fingerprint of the
// reference blob, its length, and the algorithm/threshold it was built for.
// The fingerprint is a plain non-cryptographic hash: a collision between
// two distinct same-length blobs is possible in principle (and would be
// observed as a stale cache hit), but is astronomically unlikely and is
// accepted as a performance-cache risk, not a correctness guarantee.
type cacheKey struct {
	fingerprint uint64
	length      int
	spec        commatch.AlgoSpec
}

// builtIndex holds whichever half of a match index depends only on the
// reference blob: a HashMatch key table, or a TreeMatch suffix tree. Exactly
// one field is populated, chosen by which AlgoSpec built it.
type builtIndex struct {
	hashTable *hashmatch.Table
	tree      *suffixtree.Tree
}

// Cache caches built indexes, evicting least-recently-used entries once it
// reaches its configured size. The zero value is not usable; construct with
// New.
type Cache struct {
	indexes *lru.Cache[cacheKey, *builtIndex]
	seed    maphash.Seed
}

// New creates a Cache holding at most size built indexes. Panics if size is
// not positive.
func New(size int) *Cache {
	indexes, err := lru.New[cacheKey, *builtIndex](size)
	if err != nil {
		panic(fmt.Sprintf("indexcache: %v", err))
	}
	return &Cache{indexes: indexes, seed: maphash.MakeSeed()}
}

func (c *Cache) fingerprint(data []byte) uint64 {
	var h maphash.Hash
	h.SetSeed(c.seed)
	h.Write(data)
	return h.Sum64()
}

// Enumerator returns a commatch.Enumerator over (first, second) for spec,
// reusing a previously cached index over first when one is available and
// caching a freshly built one otherwise. The returned enumerator behaves
// identically to commatch.New(first, second, spec) — caching is purely an
// optimization and has no observable effect on the sequence it produces.
func (c *Cache) Enumerator(first, second []byte, spec commatch.AlgoSpec) commatch.Enumerator {
	key := cacheKey{
		fingerprint: c.fingerprint(first),
		length:      len(first),
		spec:        spec,
	}

	if idx, ok := c.indexes.Get(key); ok {
		return fromIndex(idx, first, second, spec)
	}

	idx := buildIndex(first, spec)
	c.indexes.Add(key, idx)
	return fromIndex(idx, first, second, spec)
}

// Len returns the number of indexes currently cached.
func (c *Cache) Len() int { return c.indexes.Len() }

// Purge evicts every cached index.
func (c *Cache) Purge() { c.indexes.Purge() }

func buildIndex(first []byte, spec commatch.AlgoSpec) *builtIndex {
	switch s := spec.(type) {
	case commatch.HashMatch:
		return &builtIndex{hashTable: hashmatch.BuildTable(first, hashmatch.KeyWidth(s.K))}
	case commatch.TreeMatch:
		return &builtIndex{tree: suffixtree.New(first)}
	default:
		panic(fmt.Sprintf("indexcache: unknown AlgoSpec %T", spec))
	}
}

func fromIndex(idx *builtIndex, first, second []byte, spec commatch.AlgoSpec) commatch.Enumerator {
	switch s := spec.(type) {
	case commatch.HashMatch:
		return commatch.WrapHashEnumerator(hashmatch.NewFromTable(idx.hashTable, first, second))
	case commatch.TreeMatch:
		return commatch.WrapTreeEnumerator(treematch.NewFromTree(idx.tree, first, second, s.MinLength))
	default:
		panic(fmt.Sprintf("indexcache: unknown AlgoSpec %T", spec))
	}
}
