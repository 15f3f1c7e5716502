package main

import "github.com/signadot/textconv/ir"

// sampleTree builds
//
//	list1 : [ obj1 : { str1 : hello }, str2 : goodbye ]
func sampleTree() *ir.Node {
	str := ir.NewString("str1")
	obj := ir.NewObject("obj1")
	str.SetString("hello")
	obj.AddChild(str)

	str2 := ir.NewString("str2")
	str2.SetString("goodbye")

	list := ir.NewList("list1")
	list.AddChild(obj)
	list.AddChild(str2)
	return list
}
