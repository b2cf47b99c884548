package commatch

import (
	"fmt"

	"github.com/seiflotfy/commatch/hashmatch"
	"github.com/seiflotfy/commatch/treematch"
)

// New builds an Enumerator over (first, second) using the algorithm and
// threshold selected by spec. Panics if spec is a HashMatch with an
// unsupported key width, a TreeMatch with MinLength < 1, or an AlgoSpec
// implementation from outside this package.
func New(first, second []byte, spec AlgoSpec) Enumerator {
	switch s := spec.(type) {
	case HashMatch:
		return WrapHashEnumerator(hashmatch.New(first, second, hashmatch.KeyWidth(s.K)))
	case TreeMatch:
		return WrapTreeEnumerator(treematch.New(first, second, s.MinLength))
	default:
		panic(fmt.Sprintf("commatch: unknown AlgoSpec %T", spec))
	}
}

type hashEnumeratorAdapter struct {
	inner *hashmatch.Enumerator
}

func (a *hashEnumeratorAdapter) Next() (Match, bool) {
	m, ok := a.inner.Next()
	return Match{FirstPos: m.FirstPos, SecondPos: m.SecondPos, Length: m.Length}, ok
}

func (a *hashEnumeratorAdapter) Reset() { a.inner.Reset() }

// WrapHashEnumerator adapts a hashmatch.Enumerator to the commatch.Enumerator
// interface. Exported so packages that build and cache hashmatch indexes
// directly (such as indexcache) can reuse the same adapter without importing
// back into commatch from hashmatch.
func WrapHashEnumerator(e *hashmatch.Enumerator) Enumerator {
	return &hashEnumeratorAdapter{inner: e}
}

type treeEnumeratorAdapter struct {
	inner *treematch.Enumerator
}

func (a *treeEnumeratorAdapter) Next() (Match, bool) {
	m, ok := a.inner.Next()
	return Match{FirstPos: m.FirstPos, SecondPos: m.SecondPos, Length: m.Length}, ok
}

func (a *treeEnumeratorAdapter) Reset() { a.inner.Reset() }

// WrapTreeEnumerator adapts a treematch.Enumerator to the commatch.Enumerator
// interface. See WrapHashEnumerator.
func WrapTreeEnumerator(e *treematch.Enumerator) Enumerator {
	return &treeEnumeratorAdapter{inner: e}
}
