package debug

import (
	"testing"

	"github.com/signadot/textconv/ir"
)

func TestBoolEnv(t *testing.T) {
	t.Setenv("TEXTCONV_DEBUG_TEST", "true")
	if !boolEnv("TEXTCONV_DEBUG_TEST") {
		t.Errorf("expected true")
	}
	t.Setenv("TEXTCONV_DEBUG_TEST", "nope")
	if boolEnv("TEXTCONV_DEBUG_TEST") {
		t.Errorf("unparseable value should be false")
	}
	if boolEnv("TEXTCONV_DEBUG_UNSET_FOR_TEST") {
		t.Errorf("unset should be false")
	}
}

func TestText(t *testing.T) {
	y := ir.NewList("l").AddChild(ir.NewNumber("", 1))
	if got := (Text{y}).String(); got != "l : [ 1 ]" {
		t.Errorf("got %q", got)
	}
}
