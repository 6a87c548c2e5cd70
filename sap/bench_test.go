package sap_test

import (
	"testing"

	"github.com/katalvlaran/wordnet/digraph"
	"github.com/katalvlaran/wordnet/sap"
)

// binaryHierarchy returns a complete binary tree with edges child→parent,
// vertex 0 being the root.
func binaryHierarchy(b *testing.B, n int) *digraph.Digraph {
	b.Helper()
	g, err := digraph.Build(n, digraph.Hierarchy(2))
	if err != nil {
		b.Fatal(err)
	}

	return g
}

// BenchmarkLength_DeepLeaves queries two leaves in opposite subtrees,
// the worst case for a tree: both frontiers climb to the root.
func BenchmarkLength_DeepLeaves(b *testing.B) {
	const n = 1<<16 - 1
	s, err := sap.New(binaryHierarchy(b, n))
	if err != nil {
		b.Fatal(err)
	}
	left, right := n/2, n-1

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Length(left, right)
	}
}

// BenchmarkQuery_Siblings measures the early-exit path for close vertices.
func BenchmarkQuery_Siblings(b *testing.B) {
	const n = 1<<16 - 1
	s, err := sap.New(binaryHierarchy(b, n))
	if err != nil {
		b.Fatal(err)
	}
	vs, ws := []int{n - 2}, []int{n - 1}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Query(vs, ws)
	}
}

// BenchmarkQuery_RandomHierarchy runs multi-source queries on a DAG with
// shared ancestors, closer to a real noun hierarchy than a tree.
func BenchmarkQuery_RandomHierarchy(b *testing.B) {
	const n = 1 << 15
	g, err := digraph.Build(n, digraph.RandomHierarchy(3), digraph.WithSeed(11))
	if err != nil {
		b.Fatal(err)
	}
	s, err := sap.New(g)
	if err != nil {
		b.Fatal(err)
	}
	vs, ws := []int{n - 1, n - 7, n / 2}, []int{n - 3, n / 3}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Query(vs, ws)
	}
}
