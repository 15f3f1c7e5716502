package encode

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/textconv/ir"

	"github.com/goccy/go-yaml"
)

func encodeYAML(node *ir.Node, w io.Writer, es *EncState) error {
	var opts []yaml.EncodeOption
	if es.indent > 0 {
		opts = append(opts, yaml.Indent(es.indent))
	}
	d, err := yaml.MarshalWithOptions(yamlNode(node), opts...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	_, err = w.Write(bytes.TrimRight(d, "\n"))
	return err
}

// yamlNode converts node to values the YAML marshaller understands. Objects
// become MapSlices so that member order is kept.
func yamlNode(node *ir.Node) any {
	if node.Name() == "" || isMember(node) {
		return yamlValue(node)
	}
	return yaml.MapSlice{{Key: node.Name(), Value: yamlValue(node)}}
}

func yamlValue(node *ir.Node) any {
	switch node.Type() {
	case ir.ObjectType:
		if hasDuplicateNames(node) {
			return yamlMembers(node)
		}
		res := make(yaml.MapSlice, 0, node.Size())
		for _, v := range node.All() {
			res = append(res, yaml.MapItem{Key: v.Name(), Value: yamlValue(v)})
		}
		return res
	case ir.ListType:
		res := make([]any, 0, node.Size())
		for _, v := range node.All() {
			res = append(res, yamlNode(v))
		}
		return res
	case ir.StringType:
		v, _ := node.StringValue()
		return v
	case ir.NumberType:
		return node.Int64()
	case ir.BoolType:
		return node.BoolValue()
	case ir.NullType:
		return nil
	default:
		panic("type")
	}
}

// yamlMembers writes an object whose members share a name as a sequence of
// single-key mappings, since a YAML mapping cannot repeat a key.
func yamlMembers(node *ir.Node) []any {
	res := make([]any, 0, node.Size())
	for _, v := range node.All() {
		res = append(res, yaml.MapSlice{{Key: v.Name(), Value: yamlValue(v)}})
	}
	return res
}

func hasDuplicateNames(node *ir.Node) bool {
	seen := make(map[string]bool, node.Size())
	for _, v := range node.All() {
		if seen[v.Name()] {
			return true
		}
		seen[v.Name()] = true
	}
	return false
}
