// SPDX-License-Identifier: MIT
// Package: chromatroid/chromatic
//
// experiment.go — the Experiment bundle: a labelled incidence matrix
// with its numeric rank.
//
// Contract:
//   • An Experiment owns its matrix; accessors hand out copies of the
//     labels, and At reads entries without exposing the Dense.
//   • Rank counts singular values above the tolerance; a non-positive
//     tolerance selects the conventional default
//     eps·max(rows,cols)·σmax.
//
// Determinism:
//   • Row and column labels are fixed at assembly time in the catalog
//     orders of the corresponding builders.

package chromatic

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// defaultRankEps scales the default singular-value cutoff, matching the
// conventional machine-epsilon heuristic for float64.
const defaultRankEps = 2.220446049250313e-16

// Experiment is an assembled incidence matrix with human-readable row
// and column labels.
type Experiment struct {
	matrix *mat.Dense
	rows   []string
	cols   []string
}

// Dims returns the matrix dimensions.
func (e *Experiment) Dims() (rows, cols int) { return e.matrix.Dims() }

// At returns the entry at row i, column j.
func (e *Experiment) At(i, j int) float64 { return e.matrix.At(i, j) }

// RowLabels returns a copy of the row labels, in matrix order.
func (e *Experiment) RowLabels() []string {
	return append([]string(nil), e.rows...)
}

// ColLabels returns a copy of the column labels, in matrix order.
func (e *Experiment) ColLabels() []string {
	return append([]string(nil), e.cols...)
}

// Dense returns the underlying matrix for direct numeric work. The
// matrix is shared, not copied; treat it as read-only.
func (e *Experiment) Dense() *mat.Dense { return e.matrix }

// Rank returns the numeric rank: the number of singular values above
// tol. A non-positive tol selects eps·max(rows,cols)·σmax.
//
// Errors: ErrFactorize when the SVD fails to converge.
func (e *Experiment) Rank(tol float64) (int, error) {
	var svd mat.SVD
	if ok := svd.Factorize(e.matrix, mat.SVDNone); !ok {
		return 0, fmt.Errorf("Rank: %w", ErrFactorize)
	}
	values := svd.Values(nil)
	if len(values) == 0 {
		return 0, nil
	}
	if tol <= 0 {
		r, c := e.matrix.Dims()
		longest := r
		if c > longest {
			longest = c
		}
		tol = defaultRankEps * float64(longest) * values[0]
	}
	rank := 0
	for _, sigma := range values {
		if sigma > tol {
			rank++
		}
	}

	return rank, nil
}
