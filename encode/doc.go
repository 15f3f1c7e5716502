// Package encode encodes value trees to text.
//
// # Text Format
//
// The default format prints every node as its value, preceded by
// "name : " when the node has a non-empty name. Objects are wrapped in
// braces and lists in brackets, with ", " between siblings:
//
//	list := ir.NewList("list1").
//	    AddChild(ir.NewObject("obj1").AddChild(ir.FromString("str1", "hello"))).
//	    AddChild(ir.FromString("str2", "goodbye"))
//	encode.Render(list)
//	// list1 : [ obj1 : { str1 : hello }, str2 : goodbye ]
//
// Empty composites print as {} and [], unset strings as nothing, and null
// nodes as null. String payloads are written verbatim, without escaping.
//
// # Options
//
//	encode.Encode(node, w, encode.Indent(2))                    // one child per line
//	encode.Encode(node, w, encode.EncodeColors(encode.NewColors()))
//	encode.Encode(node, w, encode.EncodeFormat(format.JSONFormat))
//
// # JSON and YAML
//
// Object members become keys. A named node that is not an object member,
// such as the root or a list element, is wrapped in a single-key object so
// that its name is kept.
//
// # Related Packages
//
//   - github.com/signadot/textconv/ir - Value tree
//   - github.com/signadot/textconv/format - Output formats
package encode
