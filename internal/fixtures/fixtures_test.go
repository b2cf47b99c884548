package fixtures

import "testing"

func TestTemplatesMinesAtLeastOneTemplatePerMessageFamily(t *testing.T) {
	templates := Templates()
	if len(templates) < 4 {
		t.Fatalf("got %d templates, want at least 4 (one per seed message family): %v", len(templates), templates)
	}
}

func TestPairIsDeterministicPerSeed(t *testing.T) {
	templates := Templates()
	if len(templates) == 0 {
		t.Fatal("no templates mined")
	}

	a1, b1 := Pair(templates[0], 42)
	a2, b2 := Pair(templates[0], 42)
	if string(a1) != string(a2) || string(b1) != string(b2) {
		t.Fatalf("Pair is not deterministic for a fixed seed")
	}
}

func TestPairVariesAcrossSeeds(t *testing.T) {
	templates := Templates()
	if len(templates) == 0 {
		t.Fatal("no templates mined")
	}

	a1, _ := Pair(templates[0], 1)
	a2, _ := Pair(templates[0], 2)
	if string(a1) == string(a2) {
		t.Fatalf("Pair produced identical output for different seeds")
	}
}
