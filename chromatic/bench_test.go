// Package chromatic_test provides benchmarks for the stability and
// experiment hot paths.
package chromatic_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/chromatroid/chromatic"
	"github.com/katalvlaran/chromatroid/matroid"
	"github.com/katalvlaran/chromatroid/setcomposition"
)

// BenchmarkIsStable measures the predicate on U(6,3) against a
// singleton chain of {1..6}.
func BenchmarkIsStable(b *testing.B) {
	m, _ := matroid.Uniform(6, 3)
	opi, _ := setcomposition.Parse("(1|2|3|4|5|6)")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = chromatic.IsStable(m, opi)
	}
}

// BenchmarkNCQSymFunc measures the full stable-catalog sweep for
// U(4,2): 75 set compositions per call.
func BenchmarkNCQSymFunc(b *testing.B) {
	sc := setcomposition.NewCache()
	m, _ := matroid.Uniform(4, 2)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = chromatic.NCQSymFunc(m, sc)
	}
}

// BenchmarkFullStabilityMatrix measures end-to-end assembly of the
// d = 4 experiment (24 matroids × 75 set compositions).
func BenchmarkFullStabilityMatrix(b *testing.B) {
	sc := setcomposition.NewCache()
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = chromatic.FullStabilityMatrix(ctx, 4, sc)
	}
}
