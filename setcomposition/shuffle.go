package setcomposition

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// QuasiShuffle — the quasi-shuffle product of two set compositions with
// disjoint ground sets.
//
// Description:
//
//	The product interleaves the blocks of q and t while optionally
//	fusing a leading pair into its union, collecting coefficients over
//	equal results. It is the structure constant map of the monomial
//	basis of NCQSym.
//
// Recurrence (⊎ = pointwise coefficient sum, A the leading block of q,
// B the leading block of t):
//
//	qs(∅, t)       = {t: 1}
//	qs(q, ∅)       = {q: 1}
//	qs(q, t)       = A·qs(q′, t) ⊎ B·qs(q, t′) ⊎ (A ∪ B)·qs(q′, t′)
//
// Memoization happens in the canonical frame in two explicit steps so
// the recursion itself stays label-agnostic:
//  1. relabel q onto {1..|q|} and t onto {|q|+1..|q|+|t|};
//  2. fetch or compute the canonical product (sub-shuffles re-enter
//     step 1 with their own operands, so each sub-pair is cached under
//     its own canonical key and shared across products of any labelling);
//  3. translate every key of the canonical result back through the
//     inverse bijection.
//
// Keys of the result are canonical set-composition strings over the
// union ground set; every coefficient of this product is 1 because the
// originating branch can be reconstructed from block membership.
//
// Errors: ErrOverlap when the ground sets intersect.
func (c *Cache) QuasiShuffle(q, t SetComposition) (map[string]int64, error) {
	if e, clash := firstCommon(q.ground, t.ground); clash {
		return nil, fmt.Errorf("QuasiShuffle: element %d on both sides: %w", e, ErrOverlap)
	}

	return c.quasiShuffle(q, t), nil
}

// quasiShuffle computes the product of operands with known-disjoint
// grounds. The returned map is freshly built per call (the translation
// step rewrites every key), so callers may own it.
func (c *Cache) quasiShuffle(q, t SetComposition) map[string]int64 {
	// Base cases: the empty set composition is the unit of the product.
	if q.Len() == 0 {
		return map[string]int64{t.String(): 1}
	}
	if t.Len() == 0 {
		return map[string]int64{q.String(): 1}
	}

	lq, lt := q.GroundSize(), t.GroundSize()

	// Step 1: move both operands into the canonical frame.
	qc := q.Canonical()
	tc := t.canonicalShifted(lq)

	// Step 2: fetch or compute the canonical product.
	canon := c.shuffleCanonical(qc, tc)

	// Step 3: translate keys back; inv[label] = original element.
	inv := make([]int, lq+lt+1)
	for i, e := range q.ground {
		inv[i+1] = e
	}
	for j, e := range t.ground {
		inv[lq+1+j] = e
	}
	out := make(map[string]int64, len(canon))
	for key, coeff := range canon {
		out[translateKey(key, inv)] = coeff
	}

	return out
}

// shuffleCanonical resolves the product of canonical-frame operands
// (q over {1..lq}, t over {lq+1..lq+lt}, both non-empty) against the
// memo, computing and storing on a miss. Cached maps are shared and
// treated as read-only.
func (c *Cache) shuffleCanonical(q, t SetComposition) map[string]int64 {
	qKey, tKey := q.String(), t.String()
	if hit := c.lookupShuffle(qKey, tKey); hit != nil {
		return hit
	}

	headQ, headT := q.blocks[0], t.blocks[0]
	qRest, tRest := q.rest(), t.rest()

	res := make(map[string]int64)
	foldShuffle(res, c.quasiShuffle(qRest, t), headQ)                         // A leads
	foldShuffle(res, c.quasiShuffle(q, tRest), headT)                         // B leads
	foldShuffle(res, c.quasiShuffle(qRest, tRest), mergeSorted(headQ, headT)) // A ∪ B fuses

	return c.storeShuffle(qKey, tKey, res)
}

// lookupShuffle probes the canonical memo.
func (c *Cache) lookupShuffle(qKey, tKey string) map[string]int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.shuffles[qKey+tKey]
}

// storeShuffle inserts a freshly computed canonical product and returns
// the entry that ends up cached. First writer wins: a concurrent
// duplicate compute yields the identical value, and visible entries are
// never replaced.
func (c *Cache) storeShuffle(qKey, tKey string, res map[string]int64) map[string]int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if hit, ok := c.shuffles[qKey+tKey]; ok {
		return hit
	}
	c.shuffles[qKey+tKey] = res

	return res
}

// foldShuffle folds src into dst with the given block prepended to every
// key. The block must be sorted ascending.
func foldShuffle(dst, src map[string]int64, block []int) {
	for key, coeff := range src {
		dst[prependBlockKey(key, block)] += coeff
	}
}

// prependBlockKey prefixes a canonical set-composition string with one
// more block: "(4|1,3)" with block {2,5} becomes "(2,5|4|1,3)", "()"
// becomes "(2,5)". Keys are produced by String(), so the surgery stays
// within the canonical form.
func prependBlockKey(key string, block []int) string {
	var sb strings.Builder
	sb.Grow(len(key) + 3*len(block) + 1)
	sb.WriteByte('(')
	for i, e := range block {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(e))
	}
	if key == emptyForm {
		sb.WriteByte(')')

		return sb.String()
	}
	sb.WriteByte('|')
	sb.WriteString(key[1:])

	return sb.String()
}

// translateKey rewrites a canonical-frame key through inv (label →
// original element). Blocks are re-sorted because the inverse bijection
// is monotone only within each operand's range, not across them.
func translateKey(key string, inv []int) string {
	if key == emptyForm {
		return key
	}
	rawBlocks := strings.Split(key[1:len(key)-1], "|")
	blocks := make([][]int, len(rawBlocks))
	for i, raw := range rawBlocks {
		tokens := strings.Split(raw, ",")
		nb := make([]int, len(tokens))
		for j, tok := range tokens {
			// Keys are cache-generated canonical strings; tokens are ints.
			v, _ := strconv.Atoi(tok)
			nb[j] = inv[v]
		}
		sort.Ints(nb)
		blocks[i] = nb
	}
	var sb strings.Builder
	sb.Grow(len(key))
	sb.WriteByte('(')
	for i, blk := range blocks {
		if i > 0 {
			sb.WriteByte('|')
		}
		for j, e := range blk {
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(e))
		}
	}
	sb.WriteByte(')')

	return sb.String()
}

// mergeSorted merges two sorted disjoint slices into one sorted slice.
func mergeSorted(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] < b[j] {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return out
}

// firstCommon scans two sorted slices and reports the first shared
// element, if any.
func firstCommon(a, b []int) (int, bool) {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			return a[i], true
		}
	}

	return 0, false
}
