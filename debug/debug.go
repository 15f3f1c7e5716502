package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Diff bool
	Tree bool
}

var d *debug

func init() {
	d = &debug{}
	d.Diff = boolEnv("TEXTCONV_DEBUG_DIFF")
	d.Tree = boolEnv("TEXTCONV_DEBUG_TREE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Diff() bool {
	return d.Diff
}
func Tree() bool {
	return d.Tree
}
