package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/dprim/prim_kruskal"
)

// BenchmarkKruskal measures performance on a random connected graph with 500 vertices.
func BenchmarkKruskal(b *testing.B) {
	g := buildMediumGraph(b, 500, 0.05, 42) // pre‐build graph once
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Kruskal(g)
	}
}

// BenchmarkPrim measures performance on the same graph, always starting from vertex 0.
func BenchmarkPrim(b *testing.B) {
	g := buildMediumGraph(b, 500, 0.05, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Prim(g, 0)
	}
}
