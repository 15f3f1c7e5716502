package encode

import (
	"bytes"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/signadot/textconv/format"
	"github.com/signadot/textconv/ir"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
)

func sample() *ir.Node {
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

func TestRenderLeaves(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Node
		want string
	}{
		{"number", ir.NewNumber("n", 42), "n : 42"},
		{"negative unnamed", ir.NewNumber("", -7), "-7"},
		{"null", ir.NewNull("x"), "x : null"},
		{"unnamed null", ir.NewNull(""), "null"},
		{"bool", ir.NewBool("b", true), "b : true"},
		{"false", ir.NewBool("", false), "false"},
		{"unset string", ir.NewString("s"), "s : "},
		{"unset unnamed string", ir.NewString(""), ""},
		{"string", ir.FromString("s", "hi there"), "s : hi there"},
		{"unescaped", ir.FromString("", `a, "b" : {c}`), `a, "b" : {c}`},
		{"empty object", ir.NewObject("o"), "o : {}"},
		{"empty list", ir.NewList(""), "[]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.node); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNamePrefix(t *testing.T) {
	for _, ty := range ir.Types() {
		for _, name := range []string{"", "N"} {
			var node *ir.Node
			switch ty {
			case ir.NullType:
				node = ir.NewNull(name)
			case ir.NumberType:
				node = ir.NewNumber(name, 3)
			case ir.StringType:
				node = ir.FromString(name, "v")
			case ir.BoolType:
				node = ir.NewBool(name, false)
			case ir.ObjectType:
				node = ir.NewObject(name)
			case ir.ListType:
				node = ir.NewList(name)
			}
			got := Render(node)
			if name == "" && strings.Contains(got, " : ") {
				t.Errorf("%s: unnamed node rendered prefix: %q", ty, got)
			}
			if name != "" && !strings.HasPrefix(got, "N : ") {
				t.Errorf("%s: named node missing prefix: %q", ty, got)
			}
		}
	}
}

func TestRenderAfterSet(t *testing.T) {
	s := ir.NewString("s")
	s.SetString("x")
	s.SetString("y")
	if got := Render(s); got != "s : y" {
		t.Errorf("got %q", got)
	}
	s.SetName("")
	if got := Render(s); got != "y" {
		t.Errorf("after SetName(\"\") got %q", got)
	}
	b := ir.NewBool("b", true)
	b.SetBool(false)
	if got := Render(b); got != "b : false" {
		t.Errorf("got %q", got)
	}
}

func TestRenderSample(t *testing.T) {
	list := sample()
	if list.Size() != 2 {
		t.Fatalf("size %d, want 2", list.Size())
	}
	got := Render(list)
	want := "list1 : [ obj1 : { str1 : hello }, str2 : goodbye ]"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	pos := 0
	for _, sub := range []string{"obj1", "str1 : hello", "str2 : goodbye"} {
		i := strings.Index(got[pos:], sub)
		if i < 0 {
			t.Fatalf("%q missing or out of order in %q", sub, got)
		}
		pos += i + len(sub)
	}
	if list.Size() != 2 || Render(list) != got {
		t.Errorf("rendering changed the tree")
	}
}

func TestRenderNested(t *testing.T) {
	obj := ir.NewObject("")
	obj.AddChild(ir.NewNumber("a", 1))
	obj.AddChild(ir.NewList("l").AddChild(ir.NewNull("")).AddChild(ir.NewBool("", true)))
	obj.AddChild(ir.NewObject("e"))
	want := "{ a : 1, l : [ null, true ], e : {} }"
	if got := Render(obj); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestIndent(t *testing.T) {
	got := MustString(sample(), Indent(2))
	want := `list1 : [
  obj1 : {
    str1 : hello
  },
  str2 : goodbye
]`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

var ansi = regexp.MustCompile("\x1b\\[[0-9;]*m")

func TestColors(t *testing.T) {
	old := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = old }()

	node := sample()
	node.AddChild(ir.FromString("pct", "100%"))
	got := MustString(node, EncodeColors(NewColors()))
	if !ansi.MatchString(got) {
		t.Fatalf("no colour codes in %q", got)
	}
	if plain := ansi.ReplaceAllString(got, ""); plain != Render(node) {
		t.Errorf("stripped colours differ:\n%q\n%q", plain, Render(node))
	}
}

func TestJSON(t *testing.T) {
	got := MustString(sample(), EncodeFormat(format.JSONFormat))
	want := `{"list1":[{"obj1":{"str1":"hello"}},{"str2":"goodbye"}]}`
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}

	pretty := MustString(sample(), EncodeFormat(format.JSONFormat), Indent(2))
	buf := &bytes.Buffer{}
	if err := json.Indent(buf, []byte(want), "", "  "); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(buf.String(), pretty); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestJSONValues(t *testing.T) {
	obj := ir.NewObject("")
	obj.AddChild(ir.NewString("unset"))
	obj.AddChild(ir.FromString("q", "a \"b\"\n"))
	obj.AddChild(ir.NewNumber("n", -3))
	obj.AddChild(ir.NewNull(""))
	obj.AddChild(ir.NewList("l").AddChild(ir.NewBool("", true)))
	got := MustString(obj, EncodeFormat(format.JSONFormat))
	want := `{"unset":"","q":"a \"b\"\n","n":-3,"":null,"l":[true]}`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if !json.Valid([]byte(got)) {
		t.Errorf("invalid json %s", got)
	}
}

func TestYAML(t *testing.T) {
	got := MustString(sample(), EncodeFormat(format.YAMLFormat))
	var v any
	if err := yaml.Unmarshal([]byte(got), &v); err != nil {
		t.Fatalf("%v in\n%s", err, got)
	}
	want := map[string]any{
		"list1": []any{
			map[string]any{"obj1": map[string]any{"str1": "hello"}},
			map[string]any{"str2": "goodbye"},
		},
	}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if strings.HasSuffix(got, "\n") {
		t.Errorf("trailing newline in %q", got)
	}
}

func TestYAMLDuplicateNames(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Node
		want any
	}{
		{
			"named",
			ir.NewObject("").
				AddChild(ir.FromString("k", "1")).
				AddChild(ir.FromString("k", "2")),
			[]any{
				map[string]any{"k": "1"},
				map[string]any{"k": "2"},
			},
		},
		{
			"unnamed",
			ir.NewObject("").
				AddChild(ir.FromString("", "a")).
				AddChild(ir.FromString("", "b")),
			[]any{
				map[string]any{"": "a"},
				map[string]any{"": "b"},
			},
		},
		{
			"distinct",
			ir.NewObject("").
				AddChild(ir.FromString("a", "1")).
				AddChild(ir.FromString("b", "2")),
			map[string]any{"a": "1", "b": "2"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustString(tt.node, EncodeFormat(format.YAMLFormat))
			var v any
			if err := yaml.Unmarshal([]byte(got), &v); err != nil {
				t.Fatalf("%v in\n%s", err, got)
			}
			if diff := cmp.Diff(tt.want, v); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestEncodeWriterError(t *testing.T) {
	for _, f := range format.AllFormats() {
		if err := Encode(sample(), failWriter{}, EncodeFormat(f)); !errors.Is(err, errWrite) {
			t.Errorf("%s: got %v", f, err)
		}
	}
}
