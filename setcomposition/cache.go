package setcomposition

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/stat/combin"
)

// DefaultPregen is the eager warm-up depth of NewCache: every set
// composition of {1..n} for n ≤ DefaultPregen is enumerated and every
// pairwise canonical-frame quasi-shuffle among them computed up front.
const DefaultPregen = 3

// Option configures a Cache at construction time.
type Option func(*cacheConfig)

// cacheConfig collects resolved construction options.
type cacheConfig struct {
	pregen int
}

// WithPregen overrides the warm-up depth. Zero disables warm-up;
// catalogs and products are then computed lazily on first use.
// Panics if n is negative (programmer error, option-constructor policy).
func WithPregen(n int) Option {
	if n < 0 {
		panic("setcomposition: WithPregen requires n >= 0")
	}

	return func(cfg *cacheConfig) { cfg.pregen = n }
}

// Cache memoizes set-composition catalogs and quasi-shuffle products.
//
// Products are memoized in the canonical frame only: the first operand
// relabelled onto {1..|q|}, the second onto {|q|+1..|q|+|t|}. Both
// tables are append-only (entries inserted once, never mutated or
// evicted), so cached values are shared internally without copying.
// All exported methods are safe for concurrent use.
type Cache struct {
	mu sync.RWMutex

	// all[n] holds every set composition of {1..n} in generation order:
	// the single-block composition first, then for each rest size
	// r = 1..n-1, for each r-subset R in ascending lexicographic order,
	// each smaller catalog entry relabelled onto R with the complement
	// of R prepended as the first block.
	all [][]SetComposition

	// shuffles maps the concatenated canonical pair string q+t to the
	// canonical product's coefficient map.
	shuffles map[string]map[string]int64
}

// NewCache builds a Cache and eagerly warms it to the configured depth
// (DefaultPregen unless overridden via WithPregen). Warm-up computes all
// pairwise products with the second operand in the shifted frame, so it
// both exercises the recursion and seeds exactly the entries later
// lookups probe.
func NewCache(opts ...Option) *Cache {
	cfg := cacheConfig{pregen: DefaultPregen}
	for _, opt := range opts {
		opt(&cfg)
	}
	c := &Cache{
		// Size 0 has exactly the empty set composition.
		all:      [][]SetComposition{{{}}},
		shuffles: make(map[string]map[string]int64),
	}
	c.warm(cfg.pregen)

	return c
}

// warm enumerates all sizes up to depth and computes every pairwise
// canonical-frame product among the enumerated set compositions.
func (c *Cache) warm(depth int) {
	c.mu.Lock()
	c.ensureLocked(depth)
	levels := make([][]SetComposition, depth+1)
	for n := 0; n <= depth; n++ {
		levels[n] = c.all[n]
	}
	c.mu.Unlock()

	for qn, qs := range levels {
		for _, ts := range levels {
			for _, q := range qs {
				for _, t := range ts {
					// Shift the second operand above the first to obtain
					// disjoint grounds already in the canonical frame.
					_ = c.quasiShuffle(q, t.canonicalShifted(qn))
				}
			}
		}
	}
}

// All returns every set composition of the ground set {1..n} in
// generation order. The slice is a copy; the underlying table entry is
// computed once. Counts follow the ordered Bell numbers 1, 1, 3, 13, 75.
//
// Errors: ErrMalformed for negative n.
func (c *Cache) All(n int) ([]SetComposition, error) {
	if n < 0 {
		return nil, fmt.Errorf("All: size %d: %w", n, ErrMalformed)
	}

	c.mu.RLock()
	if n < len(c.all) {
		out := append([]SetComposition(nil), c.all[n]...)
		c.mu.RUnlock()

		return out, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	c.ensureLocked(n)
	out := append([]SetComposition(nil), c.all[n]...)
	c.mu.Unlock()

	return out, nil
}

// ensureLocked grows the catalog table through size n.
// The caller must hold c.mu for writing. Levels are built in ascending
// size so every recursive reference hits an existing entry.
func (c *Cache) ensureLocked(n int) {
	for next := len(c.all); next <= n; next++ {
		level := make([]SetComposition, 0, levelCap(next))

		// The single-block composition ({1..next}) opens the level.
		full := ascendingRun(1, next)
		level = append(level, assembleValid([][]int{full}))

		// Then every split: first block = complement of the rest frame.
		for restSize := 1; restSize < next; restSize++ {
			smaller := c.all[restSize]
			for _, combo := range combin.Combinations(next, restSize) {
				rest := make([]int, restSize)
				for i, v := range combo {
					// combin is 0-based; ground elements start at 1.
					rest[i] = v + 1
				}
				first := complementOf(next, rest)
				for _, sub := range smaller {
					level = append(level, sub.relabelOntoTrusted(rest).prependTrusted(first))
				}
			}
		}
		c.all = append(c.all, level)
	}
}

// prependTrusted adds a block known to be sorted, non-empty, and
// disjoint from the receiver's ground set.
func (sc SetComposition) prependTrusted(block []int) SetComposition {
	all := make([][]int, 0, len(sc.blocks)+1)
	all = append(all, block)
	all = append(all, sc.blocks...)

	return assembleValid(all)
}

// ascendingRun returns the slice [from, from+1, ..., from+count-1].
func ascendingRun(from, count int) []int {
	out := make([]int, count)
	for i := range out {
		out[i] = from + i
	}

	return out
}

// complementOf returns {1..n} minus the ascending subset rest, ascending.
func complementOf(n int, rest []int) []int {
	out := make([]int, 0, n-len(rest))
	j := 0
	for e := 1; e <= n; e++ {
		if j < len(rest) && rest[j] == e {
			j++

			continue
		}
		out = append(out, e)
	}

	return out
}

// fubini holds the ordered Bell numbers for exact level preallocation.
var fubini = []int{1, 1, 3, 13, 75, 541, 4683, 47293, 545835}

// levelCap returns the exact catalog size where tabulated, else a floor
// (the level simply grows past it).
func levelCap(n int) int {
	if n < len(fubini) {
		return fubini[n]
	}

	return fubini[len(fubini)-1]
}
