package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccollicutt/minigrep/pkg/config"
	"github.com/ccollicutt/minigrep/pkg/matcher"
)

// bracketHighlighter marks matches with [ ] so tests can see exact spans.
type bracketHighlighter struct{}

func (bracketHighlighter) Highlight(s string) string { return "[" + s + "]" }

func TestTextFormatter_Render_Prefixes(t *testing.T) {
	result := matcher.Result{{Num: 3, Text: "foo bar"}}

	tests := []struct {
		name         string
		showFilename bool
		lineNumbers  bool
		want         string
	}{
		{"filename and line number", true, true, "a.txt: 3: foo bar"},
		{"filename only", true, false, "a.txt: foo bar"},
		{"line number only", false, true, "3: foo bar"},
		{"bare", false, false, "foo bar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewTextFormatter(config.Options{
				Pattern:      "foo",
				ShowFilename: tt.showFilename,
				LineNumbers:  tt.lineNumbers,
			}, nil)
			assert.Equal(t, []string{tt.want}, f.Render("a.txt", result))
		})
	}
}

func TestTextFormatter_Render_Highlight(t *testing.T) {
	tests := []struct {
		name       string
		pattern    string
		ignoreCase bool
		text       string
		want       string
	}{
		{"single occurrence", "cat", false, "concatenate", "con[cat]enate"},
		{"every occurrence", "a", false, "banana", "b[a]n[a]n[a]"},
		{"non-overlapping", "aa", false, "aaaaa", "[aa][aa]a"},
		{"case kept when folding", "cat", true, "Cat and CAT and cat", "[Cat] and [CAT] and [cat]"},
		{"case sensitive skips other case", "cat", false, "Cat and cat", "Cat and [cat]"},
		{"literal metacharacters", "a.b", false, "a.b axb", "[a.b] axb"},
		{"empty pattern unchanged", "", false, "anything", "anything"},
		{"empty pattern folded unchanged", "", true, "anything", "anything"},
		{"whole line", "abc", false, "abc", "[abc]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewTextFormatter(config.Options{
				Pattern:    tt.pattern,
				IgnoreCase: tt.ignoreCase,
				Colorize:   true,
			}, bracketHighlighter{})
			got := f.Render("f", matcher.Result{{Num: 1, Text: tt.text}})
			assert.Equal(t, []string{tt.want}, got)
		})
	}
}

func TestTextFormatter_Render_NoHighlightWhenInverted(t *testing.T) {
	f := NewTextFormatter(config.Options{
		Pattern:  "cat",
		Colorize: true,
		Invert:   true,
	}, bracketHighlighter{})

	got := f.Render("f", matcher.Result{{Num: 2, Text: "dog"}})
	assert.Equal(t, []string{"dog"}, got)
}

func TestTextFormatter_Render_NoHighlightWithoutColorize(t *testing.T) {
	f := NewTextFormatter(config.Options{Pattern: "cat"}, bracketHighlighter{})

	got := f.Render("f", matcher.Result{{Num: 1, Text: "concatenate"}})
	assert.Equal(t, []string{"concatenate"}, got)
}

func TestTextFormatter_Render_HighlightWithPrefixes(t *testing.T) {
	f := NewTextFormatter(config.Options{
		Pattern:      "o",
		Colorize:     true,
		ShowFilename: true,
		LineNumbers:  true,
	}, bracketHighlighter{})

	got := f.Render("dir/o.txt", matcher.Result{{Num: 12, Text: "foo"}})
	assert.Equal(t, []string{"dir/o.txt: 12: f[o][o]"}, got, "prefixes are never highlighted")
}

func TestTextFormatter_Render_Idempotent(t *testing.T) {
	f := NewTextFormatter(config.Options{
		Pattern:     "an",
		Colorize:    true,
		LineNumbers: true,
	}, NewColorHighlighter("red"))
	result := matcher.Result{{Num: 1, Text: "banana"}, {Num: 4, Text: "cantankerous"}}

	first := f.Render("x", result)
	second := f.Render("x", result)
	assert.Equal(t, first, second)
	assert.Len(t, first, 2)
}

func TestTextFormatter_Render_Empty(t *testing.T) {
	f := NewTextFormatter(config.Options{Pattern: "x"}, nil)
	assert.Empty(t, f.Render("f", nil))
}

func TestTextFormatter_Format(t *testing.T) {
	f := NewTextFormatter(config.Options{Pattern: "o", LineNumbers: true}, nil)
	result := matcher.Result{{Num: 1, Text: "one"}, {Num: 3, Text: "two"}}

	var buf bytes.Buffer
	require.NoError(t, f.Format(&buf, "f", result))
	assert.Equal(t, "1: one\n3: two\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestTextFormatter_Format_WriteError(t *testing.T) {
	f := NewTextFormatter(config.Options{Pattern: "o"}, nil)

	err := f.Format(failingWriter{}, "f", matcher.Result{{Num: 1, Text: "one"}})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "disk full"))
}

func TestTextFormatter_EndToEnd(t *testing.T) {
	opts := config.Options{Pattern: "hello", IgnoreCase: true, Colorize: true, ShowFilename: true}
	contents := "Hello world\nbye\nsay HELLO\n"

	f := NewTextFormatter(opts, bracketHighlighter{})
	got := f.Render("greet.txt", matcher.Match(contents, opts))

	assert.Equal(t, []string{
		"greet.txt: [Hello] world",
		"greet.txt: say [HELLO]",
	}, got)
}
