package commatch

// LongestCommonSubstring drains the enumerator built from (first, second,
// spec) and returns the match with the greatest Length, ties broken in
// favor of the first-seen (smaller SecondPos) match. Returns Match{} if no
// match is found.
func LongestCommonSubstring(first, second []byte, spec AlgoSpec) Match {
	e := New(first, second, spec)
	var longest Match
	for {
		m, ok := e.Next()
		if !ok {
			break
		}
		if m.Length > longest.Length {
			longest = m
		}
	}
	return longest
}

// LongestCommonSubstrings drains the enumerator built from (first, second,
// spec) and returns up to n matches, ordered by descending Length, ties
// broken by enumeration order (earlier-seen matches sort first).
func LongestCommonSubstrings(first, second []byte, spec AlgoSpec, n int) []Match {
	if n <= 0 {
		return nil
	}
	e := New(first, second, spec)
	top := make([]Match, 0, n+1)
	threshold := 0

	for {
		m, ok := e.Next()
		if !ok {
			break
		}
		if m.Length <= threshold {
			continue
		}
		pos := 0
		for pos < len(top) && top[pos].Length > m.Length {
			pos++
		}
		top = append(top, Match{})
		copy(top[pos+1:], top[pos:])
		top[pos] = m
		if len(top) > n {
			top = top[:n]
			threshold = top[len(top)-1].Length
		}
	}
	return top
}

// PatchSet drains the enumerator built from (first, second, spec) and
// greedily builds a minimal set of non-overlapping (in second) matches that
// collectively cover as much of second as enumeration order allows. See P7.
func PatchSet(first, second []byte, spec AlgoSpec) []Match {
	e := New(first, second, spec)

	var patches []Match
	m, ok := e.Next()
	if !ok {
		return nil
	}
	patches = append(patches, m)

	for {
		m, ok = e.Next()
		if !ok {
			break
		}
		last := &patches[len(patches)-1]
		if m.SecondEnd() <= last.SecondEnd() {
			continue
		}
		switch {
		case m.SecondPos == last.SecondPos:
			*last = m
		case m.SecondPos < last.SecondPos:
			overlap := last.SecondPos - m.SecondPos
			m.FirstPos += overlap
			m.SecondPos += overlap
			m.Length -= overlap
			*last = m
		case m.SecondPos > last.SecondPos && m.SecondPos < last.SecondEnd():
			overlap := last.SecondEnd() - m.SecondPos
			m.FirstPos += overlap
			m.SecondPos += overlap
			m.Length -= overlap
			patches = append(patches, m)
		default:
			patches = append(patches, m)
		}
	}
	return patches
}

// UniqueStrings drains the enumerator built from (first, second, spec) and
// returns the half-open ranges of second not covered by any emitted match.
// This is the exact, post-extension complement of PatchSet's coverage (see
// P8); for the cheaper pre-extension approximation at seed granularity, see
// hashmatch.UniqueStrings.
func UniqueStrings(first, second []byte, spec AlgoSpec) []Range {
	e := New(first, second, spec)

	var ranges []Range
	covered := 0
	for {
		m, ok := e.Next()
		if !ok {
			break
		}
		if m.SecondPos > covered {
			ranges = append(ranges, Range{Lo: covered, Hi: m.SecondPos})
		}
		if end := m.SecondEnd(); end > covered {
			covered = end
		}
	}
	if covered < len(second) {
		ranges = append(ranges, Range{Lo: covered, Hi: len(second)})
	}
	return ranges
}
