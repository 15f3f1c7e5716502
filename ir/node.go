package ir

import (
	"fmt"
	"iter"
)

// Node is a single value in a tree. The variant is fixed at construction
// and selects which payload fields are meaningful.
//
// Object and List nodes own their children exclusively: a node has at most
// one owner, set by AddChild, and cannot be added to a second one.
type Node struct {
	typ         Type
	name        string
	parent      *Node
	parentIndex int
	values      []*Node

	str *string
	num int64
	b   bool
}

// NewString creates a String node whose payload is unset.
func NewString(name string) *Node {
	return &Node{typ: StringType, name: name}
}

// FromString creates a String node holding v.
func FromString(name, v string) *Node {
	res := NewString(name)
	res.SetString(v)
	return res
}

func NewNumber(name string, v int64) *Node {
	return &Node{typ: NumberType, name: name, num: v}
}

func NewBool(name string, v bool) *Node {
	return &Node{typ: BoolType, name: name, b: v}
}

func NewNull(name string) *Node {
	return &Node{typ: NullType, name: name}
}

func NewObject(name string) *Node {
	return &Node{typ: ObjectType, name: name}
}

func NewList(name string) *Node {
	return &Node{typ: ListType, name: name}
}

func (y *Node) Type() Type   { return y.typ }
func (y *Node) Name() string { return y.name }

func (y *Node) SetName(n string) {
	y.name = n
}

// SetString replaces the payload of a String node.
func (y *Node) SetString(v string) {
	y.mustBe(StringType, "SetString")
	y.str = &v
}

// StringValue returns the payload of a String node and whether it is set.
func (y *Node) StringValue() (string, bool) {
	if y.str == nil {
		return "", false
	}
	return *y.str, true
}

func (y *Node) SetBool(v bool) {
	y.mustBe(BoolType, "SetBool")
	y.b = v
}

func (y *Node) BoolValue() bool { return y.b }
func (y *Node) Int64() int64    { return y.num }

func (y *Node) mustBe(t Type, op string) {
	if y.typ != t {
		panic(fmt.Sprintf("%s on %s node at %s", op, y.typ, y.Path()))
	}
}

// AddChild appends child to an Object or List and makes y its owner. It
// returns y so that calls can be chained.
//
// It panics if y is a leaf, if child already has an owner, or if child is
// the root of y's own tree.
func (y *Node) AddChild(child *Node) *Node {
	if y.typ.IsLeaf() {
		panic(fmt.Sprintf("AddChild on %s node at %s", y.typ, y.Path()))
	}
	if child == nil {
		panic("AddChild: nil child")
	}
	if child.parent != nil {
		panic(fmt.Errorf("%w: %s", errAliased, child.Path()))
	}
	if child == y.Root() {
		panic(fmt.Errorf("%w: %s", errCycle, y.Path()))
	}
	child.parent = y
	child.parentIndex = len(y.values)
	y.values = append(y.values, child)
	return y
}

// Size returns the number of children; leaves have none.
func (y *Node) Size() int {
	return len(y.values)
}

// Index returns the i-th child of a List. The child remains owned by y.
func (y *Node) Index(i int) (*Node, error) {
	if y.typ != ListType {
		return nil, fmt.Errorf("%w: %s at %s", ErrNotIndexable, y.typ, y.Path())
	}
	if i < 0 || i >= len(y.values) {
		return nil, fmt.Errorf("%w: %d not in [0, %d) at %s", ErrOutOfRange, i, len(y.values), y.Path())
	}
	return y.values[i], nil
}

// All iterates over the children of y in insertion order.
func (y *Node) All() iter.Seq2[int, *Node] {
	return func(yield func(int, *Node) bool) {
		for i, v := range y.values {
			if !yield(i, v) {
				return
			}
		}
	}
}

func (y *Node) Parent() *Node    { return y.parent }
func (y *Node) ParentIndex() int { return y.parentIndex }

func (y *Node) Root() *Node {
	res := y
	for res.parent != nil {
		res = res.parent
	}
	return res
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

// Release destroys the tree rooted at y. Every node in the tree, y
// included, is passed to f exactly once in post order and then emptied.
// f may be nil.
//
// Only unowned nodes may be released; owned nodes go with their owner.
func (y *Node) Release(f func(*Node)) {
	if y.parent != nil {
		panic(fmt.Errorf("%w: cannot release %s", errAliased, y.Path()))
	}
	y.release(f)
}

func (y *Node) release(f func(*Node)) {
	for _, yy := range y.values {
		yy.release(f)
	}
	if f != nil {
		f(y)
	}
	clear(y.values)
	y.values = nil
	y.parent = nil
	y.parentIndex = 0
	y.str = nil
	y.num = 0
	y.b = false
}

// Clone returns an unowned deep copy of y.
func (y *Node) Clone() *Node {
	res := &Node{
		typ:  y.typ,
		name: y.name,
		num:  y.num,
		b:    y.b,
	}
	if y.str != nil {
		s := *y.str
		res.str = &s
	}
	if len(y.values) == 0 {
		return res
	}
	res.values = make([]*Node, len(y.values))
	for i, yv := range y.values {
		dst := yv.Clone()
		dst.parent = res
		dst.parentIndex = i
		res.values[i] = dst
	}
	return res
}
