package pattern

import "strings"

// Format renders a step sequence as text: 'X' for an accented onset, 'x' for
// a plain onset and '.' for a rest. accents may be shorter than steps.
func Format(steps, accents []bool) string {
	var b strings.Builder
	b.Grow(len(steps))
	for i, on := range steps {
		switch {
		case on && i < len(accents) && accents[i]:
			b.WriteByte('X')
		case on:
			b.WriteByte('x')
		default:
			b.WriteByte('.')
		}
	}
	return b.String()
}

// String renders the composite with Format.
func (e *Engine) String() string {
	return Format(e.steps[:e.Len()], e.accents[:e.Len()])
}
