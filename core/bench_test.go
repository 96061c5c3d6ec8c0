package core_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlflow/core"
)

// buildDenseNetwork wires roughly p·V² random arcs with capacities in
// [1, maxCap]. Deterministic seed keeps runs comparable.
func buildDenseNetwork(b *testing.B, nodes int, p float64, maxCap int64, seed int64) *core.Network {
	b.Helper()
	r := rand.New(rand.NewSource(seed))
	n, err := core.NewNetwork(nodes)
	if err != nil {
		b.Fatal(err)
	}
	for u := 0; u < nodes; u++ {
		for v := 0; v < nodes; v++ {
			if u == v || r.Float64() >= p {
				continue
			}
			if err = n.AddEdge(u, v, r.Int63n(maxCap)+1); err != nil {
				b.Fatal(err)
			}
		}
	}
	return n
}

// BenchmarkAddEdge measures arena construction throughput.
func BenchmarkAddEdge(b *testing.B) {
	for i := 0; i < b.N; i++ {
		buildDenseNetwork(b, 200, 0.05, 50, 42)
	}
}

// BenchmarkClone measures the clone-per-algorithm copy cost.
func BenchmarkClone(b *testing.B) {
	n := buildDenseNetwork(b, 500, 0.02, 50, 4242)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = n.Clone()
	}
}
