package libdiff

import (
	"strings"
	"unicode/utf8"

	"github.com/signadot/textconv/debug"
	"github.com/signadot/textconv/encode"
	"github.com/signadot/textconv/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	OpEqual Op = iota
	OpDelete
	OpInsert
)

func (op Op) Prefix() string {
	switch op {
	case OpDelete:
		return "- "
	case OpInsert:
		return "+ "
	default:
		return "  "
	}
}

type Line struct {
	Op   Op
	Text string
}

func (ln Line) String() string {
	return ln.Op.Prefix() + ln.Text
}

// Diff returns the lines of the indented rendering of from and to, each
// marked as kept, deleted or inserted.
func Diff(from, to *ir.Node) []Line {
	a := encode.MustString(from, encode.Indent(2))
	b := encode.MustString(to, encode.Indent(2))
	if debug.Diff() {
		debug.Logf("diff from %s to %s\n", from.Path(), to.Path())
	}
	aLines := strings.Split(a, "\n")
	bLines := strings.Split(b, "\n")
	lineMap := map[string]rune{}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(mapLines(lineMap, aLines), mapLines(lineMap, bLines), false)

	var res []Line
	ai, bi := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		n := utf8.RuneCountInString(diff.Text)
		for range n {
			switch diff.Type {
			case diffpatch.DiffDelete:
				res = append(res, Line{Op: OpDelete, Text: aLines[ai]})
				ai++
			case diffpatch.DiffInsert:
				res = append(res, Line{Op: OpInsert, Text: bLines[bi]})
				bi++
			case diffpatch.DiffEqual:
				res = append(res, Line{Op: OpEqual, Text: aLines[ai]})
				ai++
				bi++
			}
		}
	}
	return res
}

// mapLines gives each distinct line a rune so that the diff runs over
// lines instead of characters.
func mapLines(m map[string]rune, lines []string) []rune {
	res := make([]rune, len(lines))
	for i, ln := range lines {
		r, ok := m[ln]
		if !ok {
			r = rune(len(m) + 1)
			m[ln] = r
		}
		res[i] = r
	}
	return res
}

// Changed reports whether any line differs.
func Changed(lines []Line) bool {
	for _, ln := range lines {
		if ln.Op != OpEqual {
			return true
		}
	}
	return false
}

// String formats the diff of from and to, one prefixed line per line.
func String(from, to *ir.Node) string {
	lines := Diff(from, to)
	buf := &strings.Builder{}
	for i, ln := range lines {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(ln.String())
	}
	return buf.String()
}

// Equal reports whether from and to render identically.
func Equal(from, to *ir.Node) bool {
	return encode.Render(from) == encode.Render(to)
}
