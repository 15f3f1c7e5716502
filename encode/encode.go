package encode

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/textconv/format"
	"github.com/signadot/textconv/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth, indent int

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node and its subtree to w. The only errors returned come
// from w or, for YAML, from the YAML marshaller.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	switch {
	case es.format.IsJSON():
		return encodeJSON(node, w, es)
	case es.format.IsYAML():
		return encodeYAML(node, w, es)
	default:
		return encode(node, w, es)
	}
}

// Helper functions for writing
func writeNL(w io.Writer, es *EncState) error {
	if es.indent <= 0 {
		return writeString(w, " ")
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

// Color application helpers

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

func applyValueColor(es *EncState, nodeType ir.Type, v string) string {
	return applyColor(es, nodeType, ValueColor, v)
}

// Main encode function

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeNamePrefix(node, w, es); err != nil {
		return err
	}
	switch node.Type() {
	case ir.ObjectType:
		return encodeComposite(node, w, es, "{", "}")
	case ir.ListType:
		return encodeComposite(node, w, es, "[", "]")
	case ir.StringType:
		v, _ := node.StringValue()
		if v == "" {
			return nil
		}
		return writeString(w, applyValueColor(es, ir.StringType, v))
	case ir.NumberType:
		return writeString(w, applyValueColor(es, ir.NumberType, strconv.FormatInt(node.Int64(), 10)))
	case ir.BoolType:
		return writeString(w, applyValueColor(es, ir.BoolType, strconv.FormatBool(node.BoolValue())))
	case ir.NullType:
		return writeString(w, applyValueColor(es, ir.NullType, "null"))
	default:
		panic("type")
	}
}

func writeNamePrefix(node *ir.Node, w io.Writer, es *EncState) error {
	name := node.Name()
	if name == "" {
		return nil
	}
	if err := writeString(w, applyColor(es, node.Type(), FieldColor, name)); err != nil {
		return err
	}
	return writeString(w, applyColor(es, node.Type(), SepColor, " : "))
}

// encodeComposite writes the children of an object or list between open
// and close, separated by commas. There is no separator after the last
// child.
func encodeComposite(node *ir.Node, w io.Writer, es *EncState, open, close string) error {
	t := node.Type()
	if node.Size() == 0 {
		return writeString(w, applyColor(es, t, BracketColor, open+close))
	}
	if err := writeString(w, applyColor(es, t, BracketColor, open)); err != nil {
		return err
	}
	es.depth++
	for i, child := range node.All() {
		if i > 0 {
			if err := writeString(w, applyColor(es, t, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(child, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, applyColor(es, t, BracketColor, close))
}
