// Package fixtures synthesizes (first, second) byte-blob pairs for property
// tests, using github.com/jaeyo/go-drain3 to mine log-line templates from a
// small seed corpus. Mining templates (rather than hand-writing them) gives
// test pairs realistic, variable-length shared substrings interleaved with
// independently varying filler, which is closer to the kind of input this
// module is meant to diff than purely synthetic random bytes.
package fixtures

import (
	"fmt"
	"math/rand"
	"strings"

	drain3 "github.com/jaeyo/go-drain3/pkg/drain3"
)

// seedLines is a small corpus of log-shaped lines sharing structure across
// a handful of message families, which drain3 clusters into templates with
// "<*>" wildcards over the varying fields.
var seedLines = []string{
	"connection from 10.0.0.1 accepted on port 8080",
	"connection from 10.0.0.2 accepted on port 8080",
	"connection from 10.0.0.3 accepted on port 9090",
	"connection from 10.0.0.4 accepted on port 9090",
	"request GET /api/v1/users completed in 12ms",
	"request GET /api/v1/orders completed in 45ms",
	"request POST /api/v1/users completed in 8ms",
	"request POST /api/v1/orders completed in 91ms",
	"worker pool resized from 4 to 8 workers",
	"worker pool resized from 8 to 16 workers",
	"worker pool resized from 16 to 4 workers",
	"cache eviction removed 132 entries in shard 3",
	"cache eviction removed 57 entries in shard 1",
	"cache eviction removed 998 entries in shard 7",
}

// Templates mines seedLines with drain3 and returns the distinct templates
// discovered, in the order drain3 first created each cluster.
func Templates() []string {
	miner, err := drain3.NewDrain()
	if err != nil {
		panic(err)
	}

	var templates []string
	seen := map[string]bool{}
	for _, line := range seedLines {
		cluster, _, err := miner.AddLogMessage(line)
		if err != nil || cluster == nil {
			continue
		}
		template := cluster.GetTemplate()
		if seen[template] {
			continue
		}
		seen[template] = true
		templates = append(templates, template)
	}
	return templates
}

// Pair instantiates template twice with independently randomized filler for
// each "<*>" wildcard, deterministically from seed, and returns the two
// resulting lines as byte blobs. The non-wildcard portions of the template
// are byte-identical between the two blobs; the wildcard fillers usually
// differ, giving a pair with known, partial shared structure.
func Pair(template string, seed int) (first, second []byte) {
	rng := rand.New(rand.NewSource(int64(seed)))
	return []byte(fillWildcards(template, rng)), []byte(fillWildcards(template, rng))
}

func fillWildcards(template string, rng *rand.Rand) string {
	const wildcard = "<*>"
	var b strings.Builder
	rest := template
	for {
		idx := strings.Index(rest, wildcard)
		if idx < 0 {
			b.WriteString(rest)
			break
		}
		b.WriteString(rest[:idx])
		fmt.Fprintf(&b, "%d", rng.Intn(1_000_000))
		rest = rest[idx+len(wildcard):]
	}
	return b.String()
}
