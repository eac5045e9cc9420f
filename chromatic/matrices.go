// SPDX-License-Identifier: MIT
// Package: chromatroid/chromatic
//
// matrices.go — assembly of the stability incidence experiments: rows
// are matroids from a fixed catalog, columns are set compositions, and
// entries record stability.
//
// Contract:
//   • StabilityMatrix:     loopless nested matroids × descent
//     splittings of the permutations of {1..d}; entry 1 iff stable.
//   • SubsetStabilityMatrix: loopless Schubert matroids × lower-bound
//     set compositions, both indexed by the same valid-subset catalog;
//     entry 1 iff stable. The matrix is square.
//   • FullStabilityMatrix: loopless nested matroids × ALL set
//     compositions of {1..d}; entry 1 iff stable.
//   • AlternatingSumMatrix: loopless nested matroids × permutations of
//     {1..d}; entry Σ (-1)^blocks over the stable consecutive-block
//     splittings of the permutation.
//
// Concurrency:
//   • Rows are filled in parallel, one goroutine per row, bounded by
//     GOMAXPROCS; the context cancels pending rows.
//
// Determinism:
//   • Catalog orders are fixed by the underlying generators, so the
//     same d always yields the same labelled matrix.

package chromatic

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/chromatroid/matroid"
	"github.com/katalvlaran/chromatroid/setcomposition"
)

// StabilityMatrix assembles the incidence of loopless nested matroids
// against the descent splittings of all permutations of {1..d}.
//
// Errors: ErrMalformed for d < 1.
func StabilityMatrix(ctx context.Context, d int, sc *setcomposition.Cache) (*Experiment, error) {
	if d < 1 {
		return nil, fmt.Errorf("StabilityMatrix: size %d: %w", d, ErrMalformed)
	}
	rows, err := matroid.LooplessNested(d, sc)
	if err != nil {
		return nil, fmt.Errorf("StabilityMatrix: %w", err)
	}
	cols, err := AllMinMaxSetCompositions(d)
	if err != nil {
		return nil, fmt.Errorf("StabilityMatrix: %w", err)
	}
	exp, err := assembleStability(ctx, rows, cols)
	if err != nil {
		return nil, fmt.Errorf("StabilityMatrix: %w", err)
	}

	return exp, nil
}

// FullStabilityMatrix assembles the incidence of loopless nested
// matroids against every set composition of {1..d}. Conjecturally the
// rows are independent.
//
// Errors: ErrMalformed for d < 1.
func FullStabilityMatrix(ctx context.Context, d int, sc *setcomposition.Cache) (*Experiment, error) {
	if d < 1 {
		return nil, fmt.Errorf("FullStabilityMatrix: size %d: %w", d, ErrMalformed)
	}
	rows, err := matroid.LooplessNested(d, sc)
	if err != nil {
		return nil, fmt.Errorf("FullStabilityMatrix: %w", err)
	}
	cols, err := sc.All(d)
	if err != nil {
		return nil, fmt.Errorf("FullStabilityMatrix: %w", err)
	}
	exp, err := assembleStability(ctx, rows, cols)
	if err != nil {
		return nil, fmt.Errorf("FullStabilityMatrix: %w", err)
	}

	return exp, nil
}

// SubsetStabilityMatrix assembles the square lower-bound experiment:
// row A holds the loopless Schubert matroid of the valid subset A,
// column B the lower-bound set composition of the valid subset B, and
// the entry is 1 iff the pair is stable.
//
// Errors: ErrMalformed for d < 1.
func SubsetStabilityMatrix(ctx context.Context, d int) (*Experiment, error) {
	subsets, err := ValidSubsets(d)
	if err != nil {
		return nil, fmt.Errorf("SubsetStabilityMatrix: %w", err)
	}
	rows := make([]*matroid.Matroid, len(subsets))
	cols := make([]setcomposition.SetComposition, len(subsets))
	for i, a := range subsets {
		if rows[i], err = matroid.Schubert(d, a); err != nil {
			return nil, fmt.Errorf("SubsetStabilityMatrix: %w", err)
		}
		if cols[i], err = SubsetSetComposition(a, d); err != nil {
			return nil, fmt.Errorf("SubsetStabilityMatrix: %w", err)
		}
	}

	exp, err := assembleStability(ctx, rows, cols)
	if err != nil {
		return nil, fmt.Errorf("SubsetStabilityMatrix: %w", err)
	}
	// Rows and columns share the subset catalog; label both by it.
	for i, a := range subsets {
		label := "{" + subsetKey(a) + "}"
		exp.rows[i] = label + " " + exp.rows[i]
		exp.cols[i] = label + " " + exp.cols[i]
	}

	return exp, nil
}

// AlternatingSumMatrix assembles the signed experiment: row M against
// permutation w collects Σ (-1)^blocks over the consecutive-block
// splittings of w that are stable for M.
//
// Errors: ErrMalformed for d < 1.
func AlternatingSumMatrix(ctx context.Context, d int, sc *setcomposition.Cache) (*Experiment, error) {
	if d < 1 {
		return nil, fmt.Errorf("AlternatingSumMatrix: size %d: %w", d, ErrMalformed)
	}
	matroids, err := matroid.LooplessNested(d, sc)
	if err != nil {
		return nil, fmt.Errorf("AlternatingSumMatrix: %w", err)
	}
	perms, err := allPermutations(d)
	if err != nil {
		return nil, fmt.Errorf("AlternatingSumMatrix: %w", err)
	}
	splits := make([][]Split, len(perms))
	for i, perm := range perms {
		if splits[i], err = SplitSetCompositions(perm); err != nil {
			return nil, fmt.Errorf("AlternatingSumMatrix: %w", err)
		}
	}

	dense := mat.NewDense(len(matroids), len(perms), nil)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for j, m := range matroids {
		j, m := j, m
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for i := range perms {
				total := 0.0
				for _, split := range splits[i] {
					stable, err := IsStable(m, split.SC)
					if err != nil {
						return err
					}
					if stable {
						total += signOf(split.Blocks)
					}
				}
				dense.Set(j, i, total)
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("AlternatingSumMatrix: %w", err)
	}

	exp := &Experiment{
		matrix: dense,
		rows:   matroidLabels(matroids),
		cols:   make([]string, len(perms)),
	}
	for i, perm := range perms {
		exp.cols[i] = subsetKey(perm)
	}

	return exp, nil
}

// assembleStability fills the 0/1 incidence of matroid rows against set
// composition columns, row-parallel.
func assembleStability(ctx context.Context, rows []*matroid.Matroid, cols []setcomposition.SetComposition) (*Experiment, error) {
	dense := mat.NewDense(len(rows), len(cols), nil)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for j, m := range rows {
		j, m := j, m
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for i, opi := range cols {
				stable, err := IsStable(m, opi)
				if err != nil {
					return err
				}
				if stable {
					dense.Set(j, i, 1)
				}
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	exp := &Experiment{
		matrix: dense,
		rows:   matroidLabels(rows),
		cols:   make([]string, len(cols)),
	}
	for i, opi := range cols {
		exp.cols[i] = opi.String()
	}

	return exp, nil
}

// matroidLabels renders the row catalog.
func matroidLabels(ms []*matroid.Matroid) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.String()
	}

	return out
}

// signOf returns (-1)^k as a float64.
func signOf(k int) float64 {
	if k%2 != 0 {
		return -1
	}

	return 1
}
