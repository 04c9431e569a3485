package matcher

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Finder locates a literal pattern inside text. No character of the
// pattern has special meaning.
//
// With ignoreCase set, both sides are compared rune by rune after
// unicode.ToLower, which is what lower-casing both strings does, while the
// returned offsets still index the original text.
type Finder struct {
	pattern    string
	folded     []rune
	ignoreCase bool
}

// NewFinder creates a Finder for pattern.
func NewFinder(pattern string, ignoreCase bool) *Finder {
	f := &Finder{pattern: pattern, ignoreCase: ignoreCase}
	if ignoreCase {
		f.folded = []rune(strings.ToLower(pattern))
	}
	return f
}

// Pattern returns the pattern as supplied.
func (f *Finder) Pattern() string {
	return f.pattern
}

// Contains reports whether the pattern occurs in s.
func (f *Finder) Contains(s string) bool {
	start, _ := f.Index(s)
	return start >= 0
}

// Index returns the byte offsets [start, end) of the leftmost occurrence of
// the pattern in s, or (-1, -1) if there is none. The empty pattern occurs
// at offset 0 of every string.
func (f *Finder) Index(s string) (int, int) {
	if !f.ignoreCase {
		i := strings.Index(s, f.pattern)
		if i < 0 {
			return -1, -1
		}
		return i, i + len(f.pattern)
	}

	if len(f.folded) == 0 {
		return 0, 0
	}

	for start := 0; start < len(s); {
		if end, ok := f.matchAt(s, start); ok {
			return start, end
		}
		_, w := utf8.DecodeRuneInString(s[start:])
		start += w
	}
	return -1, -1
}

// matchAt compares the folded pattern against s starting at byte offset i.
func (f *Finder) matchAt(s string, i int) (int, bool) {
	for _, pr := range f.folded {
		if i >= len(s) {
			return 0, false
		}
		r, w := utf8.DecodeRuneInString(s[i:])
		if unicode.ToLower(r) != pr {
			return 0, false
		}
		i += w
	}
	return i, true
}
