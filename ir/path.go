package ir

import (
	"strconv"
	"strings"
)

// Path returns a JSONPath-style location of y within its tree, such as
// "$.obj1.str1" or "$[0]". Named members of objects are addressed by name,
// everything else by position.
func (y *Node) Path() string {
	if y.parent == nil {
		return "$"
	}
	prefix := y.parent.Path()
	switch y.parent.typ {
	case ObjectType:
		f := y.name
		if f == "" {
			return prefix + "[" + strconv.Itoa(y.parentIndex) + "]"
		}
		if strings.IndexAny(f, "'.*$[] ") == -1 {
			return prefix + "." + f
		}
		return prefix + ".'" + strings.ReplaceAll(f, "'", "\\'") + "'"
	case ListType:
		return prefix + "[" + strconv.Itoa(y.parentIndex) + "]"
	default:
		panic("parent but not in container")
	}
}
