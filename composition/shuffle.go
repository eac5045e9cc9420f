package composition

import "strconv"

// QuasiShuffle — the quasi-shuffle product of two compositions.
//
// Description:
//
//	The product interleaves the parts of q and t while optionally fusing
//	a leading pair into its sum, collecting integer coefficients over
//	equal results. It is the structure constant map of the monomial
//	basis of QSym.
//
// Recurrence (⊎ = pointwise coefficient sum):
//
//	qs(∅, t)          = {t: 1}
//	qs(q, ∅)          = {q: 1}
//	qs(a·q′, b·t′)    = a·qs(q′, t) ⊎ b·qs(q, t′) ⊎ (a+b)·qs(q′, t′)
//
// The product is commutative; the memo stores one orientation and serves
// both. Keys of the result are canonical composition strings whose weight
// always equals q.Weight()+t.Weight().
//
// Complexity:
//
//	Uncached: O(3^(len(q)+len(t))) node visits, heavily damped by the
//	memo (every sub-pair is computed at most once per Cache lifetime).
//	Cached: one read-locked map probe.
func (c *Cache) QuasiShuffle(q, t Composition) map[string]int64 {
	res := c.shuffle(q, t)
	out := make(map[string]int64, len(res))
	for key, coeff := range res {
		out[key] = coeff
	}

	return out
}

// shuffle returns the shared cached product. Internal callers treat the
// result as read-only; QuasiShuffle hands callers a defensive copy.
func (c *Cache) shuffle(q, t Composition) map[string]int64 {
	// Base cases: the empty composition is the unit of the product.
	if q.Len() == 0 {
		return map[string]int64{t.String(): 1}
	}
	if t.Len() == 0 {
		return map[string]int64{q.String(): 1}
	}

	qKey, tKey := q.String(), t.String()
	if hit := c.lookupShuffle(qKey, tKey); hit != nil {
		return hit
	}

	a, b := q.parts[0], t.parts[0]
	qRest, tRest := q.rest(), t.rest()

	res := make(map[string]int64)
	foldShuffle(res, c.shuffle(qRest, t), a)       // a leads
	foldShuffle(res, c.shuffle(q, tRest), b)       // b leads
	foldShuffle(res, c.shuffle(qRest, tRest), a+b) // heads fuse

	return c.storeShuffle(qKey, tKey, res)
}

// lookupShuffle probes the memo under both orientations of the pair.
func (c *Cache) lookupShuffle(qKey, tKey string) map[string]int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if hit, ok := c.shuffles[qKey+tKey]; ok {
		return hit
	}
	if hit, ok := c.shuffles[tKey+qKey]; ok {
		return hit
	}

	return nil
}

// storeShuffle inserts a freshly computed product and returns the entry
// that ends up cached. First writer wins: a concurrent duplicate compute
// yields the identical value, and visible entries are never replaced.
func (c *Cache) storeShuffle(qKey, tKey string, res map[string]int64) map[string]int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if hit, ok := c.shuffles[qKey+tKey]; ok {
		return hit
	}
	if hit, ok := c.shuffles[tKey+qKey]; ok {
		return hit
	}
	c.shuffles[qKey+tKey] = res

	return res
}

// foldShuffle folds src into dst with head prepended to every key.
func foldShuffle(dst, src map[string]int64, head int) {
	for key, coeff := range src {
		dst[prependKey(key, head)] += coeff
	}
}

// prependKey prefixes a canonical composition string with one more part:
// "(2,1)" with head 3 becomes "(3,2,1)", "()" becomes "(3)". Keys are
// produced by String(), so the surgery stays within the canonical form.
func prependKey(key string, head int) string {
	if key == emptyForm {
		return "(" + strconv.Itoa(head) + ")"
	}

	return "(" + strconv.Itoa(head) + "," + key[1:]
}
