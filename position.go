package cellgraph

import (
	"strconv"

	"github.com/cockroachdb/errors"
)

// MaxRows and MaxCols bound the addressable grid. They are implementation
// constants per the engine's contract and can be overridden via Config.
const (
	MaxRows = 16384
	MaxCols = 16384
)

// Position identifies a cell by its zero-based row and column. Equality and
// hashing are structural, so Position is safe to use as a map key directly.
type Position struct {
	Row int
	Col int
}

// IsValid reports whether p's coordinates lie within [0, MaxRows) x
// [0, MaxCols).
func (p Position) IsValid() bool {
	return p.Row >= 0 && p.Row < MaxRows && p.Col >= 0 && p.Col < MaxCols
}

// String renders p in canonical spreadsheet form, e.g. A1, ZZ99, AAA1.
func (p Position) String() string {
	var letters [16]byte
	i := len(letters)
	col := p.Col
	for {
		i--
		letters[i] = byte('A' + col%26)
		col = col/26 - 1
		if col < 0 {
			break
		}
	}
	return string(letters[i:]) + strconv.Itoa(p.Row+1)
}

// ParsePosition parses the canonical form produced by Position.String,
// rejecting empty input, lowercase letters, a missing row, a leading zero
// in the row digits, and coordinates outside the package-wide MaxRows x
// MaxCols bound. Callers that need to parse against a Sheet's own Config
// (which may widen that bound) should use parsePositionCoordinates
// directly and defer the bounds check to the Sheet.
func ParsePosition(s string) (Position, error) {
	pos, err := parsePositionCoordinates(s)
	if err != nil {
		return Position{}, err
	}
	if !pos.IsValid() {
		return Position{}, errors.Newf("position: %q is out of range", s)
	}
	return pos, nil
}

// parsePositionCoordinates parses the canonical form produced by
// Position.String into row/column coordinates, checking only syntax
// (empty input, lowercase letters, a missing row, a leading zero in the
// row digits) — not any bound. The coordinates it returns may exceed
// MaxRows/MaxCols; it is the caller's job to decide what bound applies.
func parsePositionCoordinates(s string) (Position, error) {
	if s == "" {
		return Position{}, errors.New("position: empty string")
	}

	i := 0
	for i < len(s) && s[i] >= 'A' && s[i] <= 'Z' {
		i++
	}
	if i == 0 {
		return Position{}, errors.Newf("position: %q has no column letters", s)
	}
	letters, digits := s[:i], s[i:]
	if digits == "" {
		return Position{}, errors.Newf("position: %q is missing a row number", s)
	}
	if digits[0] == '0' {
		return Position{}, errors.Newf("position: %q has a leading zero in the row", s)
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return Position{}, errors.Newf("position: %q has a non-digit row", s)
		}
	}

	col := 0
	for _, c := range letters {
		col = col*26 + int(c-'A') + 1
	}
	col--

	row64, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return Position{}, errors.Wrapf(err, "position: %q has an unparseable row", s)
	}
	row := int(row64 - 1)

	return Position{Row: row, Col: col}, nil
}

// MustParsePosition is ParsePosition for call sites (tests, examples) that
// know the input is well-formed.
func MustParsePosition(s string) Position {
	p, err := ParsePosition(s)
	if err != nil {
		panic(err)
	}
	return p
}

// sortPositions returns positions sorted row-major, used by Cell to present
// a deterministic, deduplicated ReferencedCells() list.
func sortPositions(positions []Position) []Position {
	out := make([]Position, len(positions))
	copy(out, positions)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && less(out[j], out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func less(a, b Position) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}
