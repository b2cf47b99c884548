package suffixtree

import (
	"strings"
	"testing"
)

func countLeaves(t *Tree) int {
	leaves := 0
	for i := range t.Nodes {
		hasChild := false
		for _, c := range t.Nodes[i].Edges {
			if c != noNode {
				hasChild = true
				break
			}
		}
		if !hasChild {
			leaves++
		}
	}
	return leaves
}

func TestLeafCountMatchesDataLengthPlusOne(t *testing.T) {
	cases := []string{
		"banana",
		"abcdefghijklmnopqrstuvwxyz",
		"aaaaaaaa",
		"",
		"a",
		"mississippi",
	}
	for _, s := range cases {
		tree := New([]byte(s))
		if got, want := countLeaves(tree), len(s)+1; got != want {
			t.Errorf("New(%q): leaf count = %d, want %d", s, got, want)
		}
	}
}

func TestInternalNodesHaveAtLeastTwoChildren(t *testing.T) {
	tree := New([]byte("abcabxabcd"))
	for i := range tree.Nodes {
		if i == root {
			continue
		}
		children := 0
		for _, c := range tree.Nodes[i].Edges {
			if c != noNode {
				children++
			}
		}
		if children == 1 {
			t.Errorf("node %d has exactly one child, want 0 (leaf) or >=2 (internal)", i)
		}
	}
}

func TestNoTwoEdgesShareFirstByte(t *testing.T) {
	tree := New([]byte("abcabxabcd"))
	for i := range tree.Nodes {
		seen := map[byte]int{}
		for slot, c := range tree.Nodes[i].Edges {
			if c == noNode || slot == SentinelSlot {
				continue
			}
			first := tree.data[tree.Nodes[c].Start]
			if prev, ok := seen[first]; ok {
				t.Errorf("node %d: edges at slots %d and %d both start with byte %q", i, prev, slot, first)
			}
			seen[first] = slot
		}
	}
}

func TestEveryRootToLeafPathSpellsASuffix(t *testing.T) {
	data := []byte("banana")
	tree := New(data)

	var walk func(node int, path []byte)
	suffixes := map[string]bool{}
	for i := 0; i <= len(data); i++ {
		suffixes[string(data[i:])] = true
	}
	found := map[string]bool{}
	walk = func(node int, path []byte) {
		hasChild := false
		for slot, c := range tree.Nodes[node].Edges {
			if c == noNode {
				continue
			}
			hasChild = true
			if slot == SentinelSlot {
				found[string(path)] = true
				continue
			}
			label := data[tree.Nodes[c].Start:tree.Nodes[c].End]
			walk(c, append(append([]byte{}, path...), label...))
		}
		if !hasChild {
			found[string(path)] = true
		}
	}
	walk(root, nil)

	for s := range suffixes {
		if !found[s] {
			t.Errorf("suffix %q of %q not found as a root-to-leaf path", s, data)
		}
	}
}

func TestEmptyDataBuildsDegenerateTree(t *testing.T) {
	tree := New([]byte{})
	if len(tree.Nodes) == 0 {
		t.Fatal("expected at least the root node")
	}
	if got := countLeaves(tree); got != 1 {
		t.Errorf("leaf count = %d, want 1", got)
	}
}

func TestToGraphvizProducesWellFormedDigraph(t *testing.T) {
	tree := New([]byte("banana"))
	out := tree.ToGraphviz()
	if !strings.HasPrefix(out, "digraph {\n") || !strings.HasSuffix(out, "}") {
		t.Fatalf("ToGraphviz output is not a well-formed digraph: %q", out)
	}
	if !strings.Contains(out, "NODE_0") {
		t.Error("expected root node declaration in graphviz output")
	}
}
