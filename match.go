// Package commatch finds common substrings between two byte blobs. It
// exposes two interchangeable enumerator implementations — a hash-indexed
// seed-and-extend scanner (package hashmatch) and a suffix-tree traversal
// (package treematch) — behind a single dispatcher, plus a set of linear
// reducers (longest match, top-N matches, patch set, unique ranges) built on
// top of either.
package commatch

// Match is a maximal common substring: A[FirstPos:FirstEnd()] equals
// B[SecondPos:SecondEnd()] for whichever (A, B) pair the enumerator that
// produced it was built over.
type Match struct {
	FirstPos, SecondPos, Length int
}

// FirstEnd is FirstPos+Length.
func (m Match) FirstEnd() int { return m.FirstPos + m.Length }

// SecondEnd is SecondPos+Length.
func (m Match) SecondEnd() int { return m.SecondPos + m.Length }

// Range is a half-open byte range [Lo, Hi) into a blob.
type Range struct {
	Lo, Hi int
}

// AlgoSpec selects one of the two enumerator implementations and its
// threshold parameter. The only implementations are HashMatch and TreeMatch;
// the marker method keeps the set closed to this package's callers.
type AlgoSpec interface {
	isAlgoSpec()
}

// HashMatch selects the hash-indexed seed-and-extend enumerator with key
// width K. K must be one of hashmatch.SupportedKeyWidths.
type HashMatch struct {
	K int
}

func (HashMatch) isAlgoSpec() {}

// TreeMatch selects the suffix-tree enumerator with minimum match length
// MinLength. MinLength must be at least 1.
type TreeMatch struct {
	MinLength int
}

func (TreeMatch) isAlgoSpec() {}

// Enumerator is a lazy, resettable sequence of Match values. Implementations
// are not safe for concurrent use.
type Enumerator interface {
	// Next produces the next match, or (Match{}, false) when exhausted.
	Next() (Match, bool)
	// Reset restarts the sequence from the beginning without rebuilding the
	// underlying index.
	Reset()
}
