package composition

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors. Branch with errors.Is; call sites attach context via %w.
var (
	// ErrMalformed indicates input that does not describe a composition:
	// a part below 1, or a string that fails to parse.
	ErrMalformed = errors.New("composition: malformed input")

	// ErrEmpty indicates a decomposition request (First/Rest) on the
	// empty composition.
	ErrEmpty = errors.New("composition: empty composition")
)

const (
	// minPart is the smallest admissible part of a composition.
	minPart = 1

	// emptyForm is the canonical string of the empty composition.
	emptyForm = "()"
)

// Composition is an ordered sequence of positive integer parts.
//
// Values are immutable: every method returns fresh data and never mutates
// the receiver. The zero value is the empty composition "()", the unique
// composition of weight 0.
type Composition struct {
	parts  []int
	weight int
}

// New builds a composition from the given parts, in order.
// New() with no arguments is the empty composition.
//
// Errors: ErrMalformed if any part is below 1.
func New(parts ...int) (Composition, error) {
	if len(parts) == 0 {
		return Composition{}, nil
	}
	cp := make([]int, len(parts))
	weight := 0
	for i, p := range parts {
		if p < minPart {
			return Composition{}, fmt.Errorf("New: part %d at index %d: %w", p, i, ErrMalformed)
		}
		cp[i] = p
		weight += p
	}

	return Composition{parts: cp, weight: weight}, nil
}

// Parse reads the canonical string form "(2,1,3)"; "()" is the empty
// composition. Tokens tolerate surrounding spaces, the printed form never
// contains them, and Parse(c.String()) == c for every valid c.
//
// Errors: ErrMalformed on missing parentheses, unparseable tokens, or
// parts below 1.
func Parse(s string) (Composition, error) {
	body := strings.TrimSpace(s)
	if len(body) < 2 || body[0] != '(' || body[len(body)-1] != ')' {
		return Composition{}, fmt.Errorf("Parse(%q): %w", s, ErrMalformed)
	}
	inner := strings.TrimSpace(body[1 : len(body)-1])
	if inner == "" {
		return Composition{}, nil
	}
	tokens := strings.Split(inner, ",")
	parts := make([]int, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			return Composition{}, fmt.Errorf("Parse(%q): token %d: %w", s, i, ErrMalformed)
		}
		parts[i] = v
	}

	return New(parts...)
}

// String renders the canonical form, e.g. "(2,1,3)" or "()" when empty.
func (c Composition) String() string {
	if len(c.parts) == 0 {
		return emptyForm
	}
	var sb strings.Builder
	sb.Grow(2 + 3*len(c.parts))
	sb.WriteByte('(')
	for i, p := range c.parts {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(p))
	}
	sb.WriteByte(')')

	return sb.String()
}

// Weight returns the sum of all parts (the n the composition composes).
func (c Composition) Weight() int { return c.weight }

// Len returns the number of parts.
func (c Composition) Len() int { return len(c.parts) }

// Parts returns a copy of the parts slice.
func (c Composition) Parts() []int {
	return append([]int(nil), c.parts...)
}

// First returns the leading part.
//
// Errors: ErrEmpty on the empty composition.
func (c Composition) First() (int, error) {
	if len(c.parts) == 0 {
		return 0, fmt.Errorf("First: %w", ErrEmpty)
	}

	return c.parts[0], nil
}

// Rest returns the composition with the leading part removed.
//
// Errors: ErrEmpty on the empty composition.
func (c Composition) Rest() (Composition, error) {
	if len(c.parts) == 0 {
		return Composition{}, fmt.Errorf("Rest: %w", ErrEmpty)
	}

	return c.rest(), nil
}

// rest drops the leading part; the receiver must be non-empty.
func (c Composition) rest() Composition {
	if len(c.parts) == 1 {
		return Composition{}
	}
	rp := make([]int, len(c.parts)-1)
	copy(rp, c.parts[1:])

	return Composition{parts: rp, weight: c.weight - c.parts[0]}
}

// Prepend returns a new composition with head added as the leading part.
//
// Errors: ErrMalformed if head is below 1.
func (c Composition) Prepend(head int) (Composition, error) {
	if head < minPart {
		return Composition{}, fmt.Errorf("Prepend: part %d: %w", head, ErrMalformed)
	}

	return c.prepend(head), nil
}

// prepend adds head without validation; head must be at least minPart.
func (c Composition) prepend(head int) Composition {
	np := make([]int, len(c.parts)+1)
	np[0] = head
	copy(np[1:], c.parts)

	return Composition{parts: np, weight: c.weight + head}
}

// Equal reports whether both compositions have identical parts in order.
func (c Composition) Equal(o Composition) bool {
	if len(c.parts) != len(o.parts) || c.weight != o.weight {
		return false
	}
	for i, p := range c.parts {
		if p != o.parts[i] {
			return false
		}
	}

	return true
}

// Compare totally orders compositions: by weight first, then
// lexicographically on parts, shorter prefixes ahead of their extensions.
// Returns -1, 0, or +1. Used for deterministic printing of formal sums.
func (c Composition) Compare(o Composition) int {
	if c.weight != o.weight {
		if c.weight < o.weight {
			return -1
		}

		return 1
	}
	limit := len(c.parts)
	if len(o.parts) < limit {
		limit = len(o.parts)
	}
	for i := 0; i < limit; i++ {
		if c.parts[i] != o.parts[i] {
			if c.parts[i] < o.parts[i] {
				return -1
			}

			return 1
		}
	}
	switch {
	case len(c.parts) < len(o.parts):
		return -1
	case len(c.parts) > len(o.parts):
		return 1
	default:
		return 0
	}
}
