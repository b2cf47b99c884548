// Package hashmatch finds common substrings between two byte slices using a
// hash-indexed seed-and-extend enumerator: a key table over fixed-width
// windows of the reference blob lets the target blob be scanned for
// candidate seeds in amortized linear time, with each seed extended
// rightward into a maximal match.
package hashmatch

import "errors"

// ErrUnsupportedKeyWidth is panicked by BuildTable, New, and UniqueStrings
// when asked for a key width outside the fixed supported set. This is a
// programmer error: the caller must not reach this path, so it is not
// surfaced as a recoverable error.
var ErrUnsupportedKeyWidth = errors.New("hashmatch: unsupported key width")

// KeyWidth is the byte width of the sliding window used to seed matches.
// Only the widths in SupportedKeyWidths are valid.
type KeyWidth int

// SupportedKeyWidths lists the only key widths HashMatch accepts.
var SupportedKeyWidths = []KeyWidth{1, 2, 3, 4, 5, 6, 7, 8, 10, 12, 14, 16, 20, 24, 28, 32, 40, 48, 56, 64}

// Supported reports whether k is one of the fixed supported widths.
func (k KeyWidth) Supported() bool {
	for _, s := range SupportedKeyWidths {
		if s == k {
			return true
		}
	}
	return false
}

// Match is a maximal common substring, expressed as (first_pos, second_pos,
// length) into the two blobs the enumerator was built over.
type Match struct {
	FirstPos, SecondPos, Length int
}

// FirstEnd is FirstPos+Length.
func (m Match) FirstEnd() int { return m.FirstPos + m.Length }

// SecondEnd is SecondPos+Length.
func (m Match) SecondEnd() int { return m.SecondPos + m.Length }

// Table is the reusable, first-blob-only half of a HashMatch index: a
// mapping from every k-byte window of first to the ascending list of
// positions where it occurs. Building a Table costs O(len(first)); the same
// Table can seed any number of Enumerators over different second blobs via
// NewFromTable, avoiding repeated index construction when the reference blob
// is matched against many targets.
type Table struct {
	k       int
	buckets map[string][]int
}

// BuildTable scans first with a sliding window of width k and returns the
// resulting key table. Panics with ErrUnsupportedKeyWidth if k is not one of
// SupportedKeyWidths.
func BuildTable(first []byte, k KeyWidth) *Table {
	if !k.Supported() {
		panic(ErrUnsupportedKeyWidth)
	}
	kk := int(k)
	t := &Table{k: kk, buckets: make(map[string][]int)}
	for p := 0; p+kk <= len(first); p++ {
		window := string(first[p : p+kk])
		t.buckets[window] = append(t.buckets[window], p)
	}
	return t
}

// KeyWidth returns the width the table was built with.
func (t *Table) KeyWidth() KeyWidth { return KeyWidth(t.k) }

// Enumerator is a lazy, resettable sequence of maximal matches of length at
// least the table's key width. Not safe for concurrent use; borrows first
// and second for its lifetime, which must not be mutated while it is alive.
type Enumerator struct {
	first, second []byte
	table         *Table
	j, i          int
	diag          map[int]int
}

// New builds a key table over first and returns an Enumerator over
// (first, second). Equivalent to NewFromTable(BuildTable(first, k), first, second)
// but without the option to reuse the table across calls.
func New(first, second []byte, k KeyWidth) *Enumerator {
	return NewFromTable(BuildTable(first, k), first, second)
}

// NewFromTable wraps a previously built Table around a (first, second) pair.
// first must be the same blob the table was built from; this is not checked.
func NewFromTable(table *Table, first, second []byte) *Enumerator {
	return &Enumerator{
		first:  first,
		second: second,
		table:  table,
		diag:   make(map[int]int),
	}
}

// Reset zeroes the enumerator's cursors and clears the diagonal
// de-duplication map, without rebuilding the key table. A drain after Reset
// reproduces the original sequence exactly.
func (e *Enumerator) Reset() {
	e.j = 0
	e.i = 0
	e.diag = make(map[int]int)
}

// Next produces the next maximal match, or (Match{}, false) when the
// sequence is exhausted. second_pos is monotonically non-decreasing across
// calls; within one j, candidates are tried in ascending first_pos order.
func (e *Enumerator) Next() (Match, bool) {
	k := e.table.k
	for e.j+k <= len(e.second) {
		window := string(e.second[e.j : e.j+k])
		positions := e.table.buckets[window]
		for e.i < len(positions) {
			p := positions[e.i]
			e.i++

			delta := p - e.j
			if reach, ok := e.diag[delta]; ok && reach >= e.j {
				continue
			}

			length := 0
			for p+length < len(e.first) && e.j+length < len(e.second) &&
				e.first[p+length] == e.second[e.j+length] {
				length++
			}

			e.diag[delta] = e.j + length
			return Match{FirstPos: p, SecondPos: e.j, Length: length}, true
		}
		e.j++
		e.i = 0
	}
	return Match{}, false
}
