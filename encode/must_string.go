package encode

import (
	"strings"

	"github.com/signadot/textconv/ir"
)

// MustString encodes node, panicking if encoding fails.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	buf := &strings.Builder{}
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}

// Render returns the text form of node, name prefixes included. It is
// MustString with the default options, which cannot fail.
func Render(node *ir.Node) string {
	return MustString(node)
}
