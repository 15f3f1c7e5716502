// Package ir provides the value tree used by textconv.
//
// # Overview
//
// A tree is made of *Node values. Every node is exactly one of six variants,
// selected by its Type:
//
//   - NullType: explicit absence of a value
//   - BoolType: true or false
//   - NumberType: signed 64-bit integer
//   - StringType: text, possibly unset
//   - ObjectType: ordered members, rendered as key/value pairs
//   - ListType: ordered, positionally indexed elements
//
// The IR works as a tagged union: the variant is fixed when the node is
// created and only the payload belonging to it is meaningful.
//
// # Creating Nodes
//
// Each variant has one constructor taking the node name:
//
//	obj := ir.NewObject("obj1")
//	str := ir.NewString("str1")
//	str.SetString("hello")
//	obj.AddChild(str)
//
//	list := ir.NewList("list1").
//	    AddChild(obj).
//	    AddChild(ir.FromString("str2", "goodbye"))
//
// # Names
//
// Every node carries a name, empty by default. The name is informational:
// objects do not look children up by name, and two members may share one.
// Encoders print a non-empty name as a "name : " prefix.
//
// # Ownership
//
// AddChild moves a node into its new owner. A node has at most one owner,
// so a tree is always acyclic and no node is reachable along two paths.
// Adding a node that already has an owner panics; use Clone to place an
// equal value in a second tree.
//
// Release walks an unowned tree in post order, handing each node to a
// callback exactly once and emptying it.
//
// # Indexing
//
// Lists support positional access:
//
//	child, err := list.Index(0)
//	if errors.Is(err, ir.ErrOutOfRange) {
//	    // ...
//	}
//
// # Thread Safety
//
// Node structures are not thread-safe.
//
// # Related Packages
//
//   - github.com/signadot/textconv/encode - Encodes trees to text
//   - github.com/signadot/textconv/libdiff - Diffs the renderings of two trees
package ir
