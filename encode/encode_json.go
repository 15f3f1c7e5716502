package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/signadot/textconv/ir"
)

func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	return jsonNode(node, w, es)
}

// jsonNode writes node, wrapping it as {"name": value} when it is named but
// not an object member.
func jsonNode(node *ir.Node, w io.Writer, es *EncState) error {
	if node.Name() == "" || isMember(node) {
		return jsonValue(node, w, es)
	}
	if err := writeString(w, applyColor(es, ir.ObjectType, BracketColor, "{")); err != nil {
		return err
	}
	es.depth++
	if err := jsonNL(w, es); err != nil {
		return err
	}
	if err := jsonMember(node, w, es); err != nil {
		return err
	}
	es.depth--
	if err := jsonNL(w, es); err != nil {
		return err
	}
	return writeString(w, applyColor(es, ir.ObjectType, BracketColor, "}"))
}

func isMember(node *ir.Node) bool {
	p := node.Parent()
	return p != nil && p.Type() == ir.ObjectType
}

func jsonMember(node *ir.Node, w io.Writer, es *EncState) error {
	key, err := jsonQuote(node.Name())
	if err != nil {
		return err
	}
	if err := writeString(w, applyColor(es, node.Type(), FieldColor, key)); err != nil {
		return err
	}
	sep := ":"
	if es.indent > 0 {
		sep = ": "
	}
	if err := writeString(w, applyColor(es, node.Type(), SepColor, sep)); err != nil {
		return err
	}
	return jsonValue(node, w, es)
}

func jsonValue(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type() {
	case ir.ObjectType:
		return jsonComposite(node, w, es, "{", "}", jsonMember)
	case ir.ListType:
		return jsonComposite(node, w, es, "[", "]", jsonNode)
	case ir.StringType:
		v, _ := node.StringValue()
		q, err := jsonQuote(v)
		if err != nil {
			return err
		}
		return writeString(w, applyValueColor(es, ir.StringType, q))
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

func jsonComposite(node *ir.Node, w io.Writer, es *EncState, open, close string, child func(*ir.Node, io.Writer, *EncState) error) error {
	t := node.Type()
	if node.Size() == 0 {
		return writeString(w, applyColor(es, t, BracketColor, open+close))
	}
	if err := writeString(w, applyColor(es, t, BracketColor, open)); err != nil {
		return err
	}
	es.depth++
	for i, v := range node.All() {
		if i > 0 {
			if err := writeString(w, applyColor(es, t, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := jsonNL(w, es); err != nil {
			return err
		}
		if err := child(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := jsonNL(w, es); err != nil {
		return err
	}
	return writeString(w, applyColor(es, t, BracketColor, close))
}

// jsonNL is writeNL without the padding space of the single line text form.
func jsonNL(w io.Writer, es *EncState) error {
	if es.indent <= 0 {
		return nil
	}
	return writeNL(w, es)
}

func jsonQuote(s string) (string, error) {
	d, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return string(d), nil
}
