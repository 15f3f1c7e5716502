package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/textconv/encode"
	"github.com/signadot/textconv/ir"
)

type Text struct{ *ir.Node }

func (y Text) String() string {
	return encode.Render(y.Node)
}

// Logf writes to stderr, rendering *ir.Node arguments in indented text
// form and JSON-like arguments as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			args[i] = encode.MustString(x, encode.Indent(2))
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
