package coloring

import "fmt"

// Color is a palette color name.
type Color string

// The default palette colors.
const (
	Blue  Color = "blue"
	Red   Color = "red"
	Green Color = "green"
)

// Palette is an ordered set of distinct colors.
type Palette []Color

// DefaultPalette returns a fresh copy of the three-color palette.
func DefaultPalette() Palette {
	return Palette{Blue, Red, Green}
}

// Validate reports whether p is non-empty with distinct, non-empty names.
func (p Palette) Validate() error {
	if len(p) == 0 {
		return fmt.Errorf("%w: palette is empty", ErrOptionViolation)
	}
	seen := make(map[Color]struct{}, len(p))
	for _, c := range p {
		if c == "" {
			return fmt.Errorf("%w: palette contains an empty color", ErrOptionViolation)
		}
		if _, dup := seen[c]; dup {
			return fmt.Errorf("%w: palette repeats color %q", ErrOptionViolation, c)
		}
		seen[c] = struct{}{}
	}

	return nil
}

// Contains reports whether c belongs to p.
func (p Palette) Contains(c Color) bool {
	for _, pc := range p {
		if pc == c {
			return true
		}
	}

	return false
}
