// Package treematch finds common substrings between two byte slices by
// building a generalized suffix tree over the first blob and walking it
// against the second: a bounded-depth dive establishes a minimum-length
// seed, then a resumable depth-first backtrace enumerates every maximal
// match reachable from that seed.
package treematch

import (
	"errors"

	"github.com/seiflotfy/commatch/suffixtree"
)

// alphabetSize mirrors suffixtree's internal fan-out width: 256 byte values
// plus the sentinel slot.
const alphabetSize = suffixtree.SentinelSlot + 1

// ErrNonPositiveMinLength is panicked by New and NewFromTree when
// constructed with a minimum match length below 1. This is a programmer
// error; the caller must not reach this path, so it is not surfaced as a
// recoverable error.
var ErrNonPositiveMinLength = errors.New("treematch: minLength must be at least 1")

// Match is a maximal common substring, expressed as (first_pos, second_pos,
// length) into the two blobs the enumerator was built over.
type Match struct {
	FirstPos, SecondPos, Length int
}

// FirstEnd is FirstPos+Length.
func (m Match) FirstEnd() int { return m.FirstPos + m.Length }

// SecondEnd is SecondPos+Length.
func (m Match) SecondEnd() int { return m.SecondPos + m.Length }

type frame struct {
	node, idx int
}

// Enumerator is a lazy, resettable sequence of maximal matches at least
// minLength bytes long. Not safe for concurrent use; borrows first and
// second for its lifetime, which must not be mutated while it is alive.
type Enumerator struct {
	first, second []byte
	tree          *suffixtree.Tree
	minLength     int

	i           int
	backtrace   []frame
	matchLength int
	depth       int
	diag        map[int]int
}

// New builds a suffix tree over first and returns an Enumerator over
// (first, second). Panics if minLength < 1. Equivalent to
// NewFromTree(suffixtree.New(first), first, second, minLength) but without
// the option to reuse the tree across calls.
func New(first, second []byte, minLength int) *Enumerator {
	return NewFromTree(suffixtree.New(first), first, second, minLength)
}

// NewFromTree wraps a previously built suffix tree around a (first, second)
// pair. first must be the same blob the tree was built from; this is not
// checked. Panics if minLength < 1.
func NewFromTree(tree *suffixtree.Tree, first, second []byte, minLength int) *Enumerator {
	if minLength < 1 {
		panic(ErrNonPositiveMinLength)
	}
	return &Enumerator{
		first:     first,
		second:    second,
		tree:      tree,
		minLength: minLength,
		diag:      make(map[int]int),
	}
}

// Reset zeroes the enumerator's cursor, backtrace stack, and diagonal
// de-duplication map, without rebuilding the suffix tree. A drain after
// Reset reproduces the original sequence exactly.
func (e *Enumerator) Reset() {
	e.i = 0
	e.backtrace = e.backtrace[:0]
	e.diag = make(map[int]int)
}

// extendAlong walks edge labelled node's incoming edge, adding to
// matchLength for each byte that still agrees between first and second at
// the given depth offset, stopping at the first mismatch or at the end of
// second.
func (e *Enumerator) extendAlong(node int) {
	start := e.tree.Nodes[node].Start
	length := e.tree.EdgeLength(node)
	for j := 0; j < length; j++ {
		firstIdx := start + j
		secondIdx := e.i + e.depth + j
		if secondIdx < len(e.second) && e.first[firstIdx] == e.second[secondIdx] {
			e.matchLength++
		} else {
			break
		}
	}
}

// Next produces the next maximal match of length at least minLength, or
// (Match{}, false) when the sequence is exhausted. second_pos is
// monotonically non-decreasing across calls.
func (e *Enumerator) Next() (Match, bool) {
	for e.i < len(e.second) {
		if len(e.backtrace) == 0 {
			e.matchLength = 0
			e.depth = 0
			cur := 0
			for e.matchLength == e.depth && e.matchLength < e.minLength {
				secondIdx := e.i + e.depth
				if secondIdx >= len(e.second) {
					break
				}
				next, ok := e.tree.Edge(cur, int(e.second[secondIdx]))
				if !ok {
					break
				}
				e.extendAlong(next)
				e.depth += e.tree.EdgeLength(next)
				cur = next
			}
			if e.matchLength < e.minLength {
				e.i++
				continue
			}
			e.backtrace = append(e.backtrace, frame{node: cur, idx: 0})
		}

		for len(e.backtrace) > 0 {
			top := e.backtrace[len(e.backtrace)-1]
			cur, idx := top.node, top.idx
			for idx < alphabetSize {
				next, ok := e.tree.Edge(cur, idx)
				if ok {
					if e.matchLength == e.depth {
						e.extendAlong(next)
					}
					e.depth += e.tree.EdgeLength(next)
					e.backtrace = append(e.backtrace, frame{node: next, idx: 0})
					break
				}
				idx++
			}

			newTop := e.backtrace[len(e.backtrace)-1]
			switch {
			case cur != newTop.node:
				e.backtrace[len(e.backtrace)-2].idx = idx + 1
			case newTop.idx == 0:
				m := Match{
					FirstPos:  e.tree.Nodes[cur].End - e.depth,
					SecondPos: e.i,
					Length:    e.matchLength,
				}
				e.depth -= e.tree.EdgeLength(cur)
				if e.depth < e.matchLength {
					e.matchLength = e.depth
				}
				e.backtrace = e.backtrace[:len(e.backtrace)-1]

				delta := m.FirstPos - m.SecondPos
				if reach, seen := e.diag[delta]; !seen || reach <= m.SecondPos {
					e.diag[delta] = m.SecondPos + m.Length
					if len(e.backtrace) == 0 {
						e.i++
					}
					return m, true
				}
			default:
				e.depth -= e.tree.EdgeLength(cur)
				if e.depth < e.matchLength {
					e.matchLength = e.depth
				}
				e.backtrace = e.backtrace[:len(e.backtrace)-1]
			}
		}
		e.i++
	}
	return Match{}, false
}
