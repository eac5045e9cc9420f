package composition

import (
	"fmt"
	"sync"
)

// DefaultPregen is the eager warm-up depth of NewCache: every composition
// of weight ≤ DefaultPregen is enumerated and every pairwise quasi-shuffle
// among them computed up front, so small products are always memo hits.
const DefaultPregen = 4

// Option configures a Cache at construction time.
type Option func(*cacheConfig)

// cacheConfig collects resolved construction options.
type cacheConfig struct {
	pregen int
}

// WithPregen overrides the warm-up depth. Zero disables warm-up entirely;
// enumeration and products are then computed lazily on first use.
// Panics if n is negative (programmer error, option-constructor policy).
func WithPregen(n int) Option {
	if n < 0 {
		panic("composition: WithPregen requires n >= 0")
	}

	return func(cfg *cacheConfig) { cfg.pregen = n }
}

// Cache memoizes composition enumeration and quasi-shuffle products.
//
// Both tables are append-only: entries are inserted once and never mutated
// or evicted, so cached values may be shared internally without copying.
// All exported methods are safe for concurrent use.
type Cache struct {
	mu sync.RWMutex

	// all[n] holds every composition of weight n in generation order:
	// (n) first, then for k = 1..n-1 each composition of k prefixed
	// with n-k, following the order of all[k].
	all [][]Composition

	// shuffles maps the concatenated canonical pair string q+t to the
	// product's coefficient map. One orientation is stored; lookups
	// consult both, since the product is commutative.
	shuffles map[string]map[string]int64
}

// NewCache builds a Cache and eagerly warms it to the configured depth
// (DefaultPregen unless overridden via WithPregen). The warm-up doubles
// as a self-check of the recursion: it exercises every base and recursive
// branch over the small catalog.
func NewCache(opts ...Option) *Cache {
	cfg := cacheConfig{pregen: DefaultPregen}
	for _, opt := range opts {
		opt(&cfg)
	}
	c := &Cache{
		// Weight 0 has exactly the empty composition.
		all:      [][]Composition{{{}}},
		shuffles: make(map[string]map[string]int64),
	}
	c.warm(cfg.pregen)

	return c
}

// warm enumerates all weights up to depth and computes every pairwise
// product among the enumerated compositions.
func (c *Cache) warm(depth int) {
	c.mu.Lock()
	c.ensureLocked(depth)
	levels := make([][]Composition, depth+1)
	for n := 0; n <= depth; n++ {
		levels[n] = c.all[n]
	}
	c.mu.Unlock()

	for _, qs := range levels {
		for _, ts := range levels {
			for _, q := range qs {
				for _, t := range ts {
					// Population only; the result map stays cached.
					_ = c.shuffle(q, t)
				}
			}
		}
	}
}

// All returns every composition of weight n in generation order.
// The slice is a copy; the underlying table entry is computed once.
//
// Errors: ErrMalformed for negative n.
func (c *Cache) All(n int) ([]Composition, error) {
	if n < 0 {
		return nil, fmt.Errorf("All: weight %d: %w", n, ErrMalformed)
	}

	c.mu.RLock()
	if n < len(c.all) {
		out := append([]Composition(nil), c.all[n]...)
		c.mu.RUnlock()

		return out, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	c.ensureLocked(n)
	out := append([]Composition(nil), c.all[n]...)
	c.mu.Unlock()

	return out, nil
}

// ensureLocked grows the enumeration table through weight n.
// The caller must hold c.mu for writing. Levels are built in ascending
// weight so every recursive reference hits an existing entry.
func (c *Cache) ensureLocked(n int) {
	for next := len(c.all); next <= n; next++ {
		level := make([]Composition, 0, levelCap(next))
		// The single-part composition (next) opens the level.
		level = append(level, Composition{parts: []int{next}, weight: next})
		// Then every shorter tail, prefixed so parts sum to next.
		for k := 1; k < next; k++ {
			head := next - k
			for _, tail := range c.all[k] {
				level = append(level, tail.prepend(head))
			}
		}
		c.all = append(c.all, level)
	}
}

// levelCap returns the exact level size 2^(n-1) while it fits comfortably
// in an int, else a token capacity (the level grows as needed).
func levelCap(n int) int {
	if n >= 1 && n < 31 {
		return 1 << (n - 1)
	}

	return 1
}
