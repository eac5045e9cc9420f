package setcomposition

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/chromatroid/composition"
)

// Sentinel errors. Branch with errors.Is; call sites attach context via %w.
var (
	// ErrMalformed indicates input that does not describe a set
	// composition: an empty block, an element below 1, or a string that
	// fails to parse.
	ErrMalformed = errors.New("setcomposition: malformed input")

	// ErrNotDisjoint indicates an element occurring twice, in the same
	// block or across blocks.
	ErrNotDisjoint = errors.New("setcomposition: blocks are not disjoint")

	// ErrEmpty indicates a decomposition request (First/Rest) on the
	// empty set composition.
	ErrEmpty = errors.New("setcomposition: empty set composition")

	// ErrBadRelabel indicates a relabelling whose mapping does not cover
	// the ground set or whose label vector has the wrong length.
	ErrBadRelabel = errors.New("setcomposition: invalid relabelling")

	// ErrOverlap indicates a quasi-shuffle of operands whose ground sets
	// intersect; the product is defined for disjoint supports only.
	ErrOverlap = errors.New("setcomposition: ground sets overlap")
)

const (
	// minElement is the smallest admissible ground element.
	minElement = 1

	// emptyForm is the canonical string of the empty set composition.
	emptyForm = "()"
)

// SetComposition is an ordered sequence of non-empty, pairwise disjoint
// blocks of positive integers.
//
// Blocks are stored sorted ascending and the ground set (the union) is
// kept sorted ascending as well, so positional relabelling lines up with
// ascending element order. Values are immutable: every method returns
// fresh data and never mutates the receiver. The zero value is the empty
// set composition "()".
type SetComposition struct {
	blocks [][]int
	ground []int
}

// New builds a set composition from the given blocks, in order. Elements
// inside a block may arrive in any order; they are copied and sorted.
// New() with no arguments is the empty set composition.
//
// Errors: ErrMalformed for empty blocks or elements below 1,
// ErrNotDisjoint when an element occurs twice.
func New(blocks ...[]int) (SetComposition, error) {
	if len(blocks) == 0 {
		return SetComposition{}, nil
	}
	cp := make([][]int, len(blocks))
	seen := make(map[int]struct{})
	total := 0
	for i, blk := range blocks {
		if len(blk) == 0 {
			return SetComposition{}, fmt.Errorf("New: block %d is empty: %w", i, ErrMalformed)
		}
		nb := append([]int(nil), blk...)
		sort.Ints(nb)
		for _, e := range nb {
			if e < minElement {
				return SetComposition{}, fmt.Errorf("New: element %d in block %d: %w", e, i, ErrMalformed)
			}
			if _, dup := seen[e]; dup {
				return SetComposition{}, fmt.Errorf("New: element %d occurs twice: %w", e, ErrNotDisjoint)
			}
			seen[e] = struct{}{}
		}
		cp[i] = nb
		total += len(nb)
	}
	ground := make([]int, 0, total)
	for e := range seen {
		ground = append(ground, e)
	}
	sort.Ints(ground)

	return SetComposition{blocks: cp, ground: ground}, nil
}

// Parse reads the canonical string form "(2,4|1|3,5,6)"; "()" is the
// empty set composition. Tokens tolerate surrounding spaces, the printed
// form never contains them, and Parse(sc.String()) == sc for every
// valid sc.
//
// Errors: ErrMalformed on shape or token failures, ErrNotDisjoint when
// an element occurs twice.
func Parse(s string) (SetComposition, error) {
	body := strings.TrimSpace(s)
	if len(body) < 2 || body[0] != '(' || body[len(body)-1] != ')' {
		return SetComposition{}, fmt.Errorf("Parse(%q): %w", s, ErrMalformed)
	}
	inner := strings.TrimSpace(body[1 : len(body)-1])
	if inner == "" {
		return SetComposition{}, nil
	}
	rawBlocks := strings.Split(inner, "|")
	blocks := make([][]int, len(rawBlocks))
	for i, raw := range rawBlocks {
		tokens := strings.Split(raw, ",")
		blk := make([]int, len(tokens))
		for j, tok := range tokens {
			v, err := strconv.Atoi(strings.TrimSpace(tok))
			if err != nil {
				return SetComposition{}, fmt.Errorf("Parse(%q): block %d token %d: %w", s, i, j, ErrMalformed)
			}
			blk[j] = v
		}
		blocks[i] = blk
	}

	return New(blocks...)
}

// String renders the canonical form: blocks joined by '|', elements
// ascending and comma-separated, e.g. "(2,4|1|3,5,6)"; "()" when empty.
func (sc SetComposition) String() string {
	if len(sc.blocks) == 0 {
		return emptyForm
	}
	var sb strings.Builder
	sb.Grow(2 + 3*len(sc.ground) + len(sc.blocks))
	sb.WriteByte('(')
	for i, blk := range sc.blocks {
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

// Blocks returns a deep copy of the block sequence.
func (sc SetComposition) Blocks() [][]int {
	out := make([][]int, len(sc.blocks))
	for i, blk := range sc.blocks {
		out[i] = append([]int(nil), blk...)
	}

	return out
}

// GroundSet returns a copy of the ground set in ascending order.
func (sc SetComposition) GroundSet() []int {
	return append([]int(nil), sc.ground...)
}

// Len returns the number of blocks.
func (sc SetComposition) Len() int { return len(sc.blocks) }

// GroundSize returns the cardinality of the ground set.
func (sc SetComposition) GroundSize() int { return len(sc.ground) }

// Contains reports whether e belongs to the ground set.
func (sc SetComposition) Contains(e int) bool {
	i := sort.SearchInts(sc.ground, e)

	return i < len(sc.ground) && sc.ground[i] == e
}

// BlockIndex returns the 0-based index of the block containing e, and
// whether e belongs to the ground set at all.
func (sc SetComposition) BlockIndex(e int) (int, bool) {
	if !sc.Contains(e) {
		return 0, false
	}
	for i, blk := range sc.blocks {
		j := sort.SearchInts(blk, e)
		if j < len(blk) && blk[j] == e {
			return i, true
		}
	}

	// Unreachable: the ground set is exactly the union of the blocks.
	return 0, false
}

// Alpha returns the underlying composition of block sizes, in order.
// For "(2,4|1|3,5,6)" that is "(2,1,3)".
func (sc SetComposition) Alpha() composition.Composition {
	sizes := make([]int, len(sc.blocks))
	for i, blk := range sc.blocks {
		sizes[i] = len(blk)
	}
	// Block sizes are positive by invariant, so this cannot fail.
	alpha, _ := composition.New(sizes...)

	return alpha
}

// First returns a copy of the leading block.
//
// Errors: ErrEmpty on the empty set composition.
func (sc SetComposition) First() ([]int, error) {
	if len(sc.blocks) == 0 {
		return nil, fmt.Errorf("First: %w", ErrEmpty)
	}

	return append([]int(nil), sc.blocks[0]...), nil
}

// Rest returns the set composition with the leading block removed.
//
// Errors: ErrEmpty on the empty set composition.
func (sc SetComposition) Rest() (SetComposition, error) {
	if len(sc.blocks) == 0 {
		return SetComposition{}, fmt.Errorf("Rest: %w", ErrEmpty)
	}

	return sc.rest(), nil
}

// rest drops the leading block; the receiver must be non-empty.
func (sc SetComposition) rest() SetComposition {
	if len(sc.blocks) == 1 {
		return SetComposition{}
	}

	return assembleValid(sc.blocks[1:])
}

// Prepend returns a new set composition with the given block in front.
// The block is validated against the existing blocks.
//
// Errors: ErrMalformed for an empty block or elements below 1,
// ErrNotDisjoint when the block intersects the receiver's ground set.
func (sc SetComposition) Prepend(block []int) (SetComposition, error) {
	all := make([][]int, 0, len(sc.blocks)+1)
	all = append(all, block)
	all = append(all, sc.blocks...)
	out, err := New(all...)
	if err != nil {
		return SetComposition{}, fmt.Errorf("Prepend: %w", err)
	}

	return out, nil
}

// Equal reports whether both set compositions have identical blocks in
// identical order.
func (sc SetComposition) Equal(o SetComposition) bool {
	if len(sc.blocks) != len(o.blocks) || len(sc.ground) != len(o.ground) {
		return false
	}
	for i, blk := range sc.blocks {
		if len(blk) != len(o.blocks[i]) {
			return false
		}
		for j, e := range blk {
			if e != o.blocks[i][j] {
				return false
			}
		}
	}

	return true
}

// Compare totally orders set compositions: by ground size first, then by
// the canonical string. Returns -1, 0, or +1. Used for deterministic
// printing of formal sums.
func (sc SetComposition) Compare(o SetComposition) int {
	if len(sc.ground) != len(o.ground) {
		if len(sc.ground) < len(o.ground) {
			return -1
		}

		return 1
	}

	return strings.Compare(sc.String(), o.String())
}

// assembleValid builds a SetComposition from blocks already known to be
// sorted, non-empty, and pairwise disjoint. The blocks are deep-copied.
func assembleValid(blocks [][]int) SetComposition {
	cp := make([][]int, len(blocks))
	total := 0
	for i, blk := range blocks {
		cp[i] = append([]int(nil), blk...)
		total += len(blk)
	}
	ground := make([]int, 0, total)
	for _, blk := range cp {
		ground = append(ground, blk...)
	}
	sort.Ints(ground)

	return SetComposition{blocks: cp, ground: ground}
}
