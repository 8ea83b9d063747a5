package life

import (
	"fmt"
	"strings"
)

// Rule is a Life-like rule: which neighbour counts give birth to a dead cell
// and which keep a live cell alive.
type Rule struct {
	Birth   [9]bool
	Survive [9]bool
}

// Conway is B3/S23.
var Conway = MustParseRule("B3/S23")

// Apply returns the next state of a cell with n live neighbours.
func (r Rule) Apply(alive bool, n int) bool {
	if n < 0 || n > 8 {
		return false
	}
	if alive {
		return r.Survive[n]
	}
	return r.Birth[n]
}

func (r Rule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	for n, ok := range r.Birth {
		if ok {
			b.WriteByte(byte('0' + n))
		}
	}
	b.WriteString("/S")
	for n, ok := range r.Survive {
		if ok {
			b.WriteByte(byte('0' + n))
		}
	}
	return b.String()
}

// ParseRule parses "B3/S23" notation. Parts may appear in either order and
// the letters are case-insensitive; "S23/B3" is the same rule.
func ParseRule(s string) (Rule, error) {
	var r Rule
	parts := strings.Split(strings.ToUpper(strings.TrimSpace(s)), "/")
	if len(parts) != 2 {
		return r, fmt.Errorf("invalid rule %q: want B<digits>/S<digits>", s)
	}

	seen := map[byte]bool{}
	for _, p := range parts {
		if p == "" {
			return r, fmt.Errorf("invalid rule %q: empty part", s)
		}
		var set *[9]bool
		switch p[0] {
		case 'B':
			set = &r.Birth
		case 'S':
			set = &r.Survive
		default:
			return r, fmt.Errorf("invalid rule %q: part %q must start with B or S", s, p)
		}
		if seen[p[0]] {
			return r, fmt.Errorf("invalid rule %q: duplicate %c part", s, p[0])
		}
		seen[p[0]] = true

		for _, ch := range p[1:] {
			if ch < '0' || ch > '8' {
				return r, fmt.Errorf("invalid rule %q: neighbour count %q out of range", s, ch)
			}
			set[ch-'0'] = true
		}
	}
	return r, nil
}

func MustParseRule(s string) Rule {
	r, err := ParseRule(s)
	if err != nil {
		panic(err)
	}
	return r
}
