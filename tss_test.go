package tss

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tss/interp"
	"github.com/npillmayer/tss/parser"
	"github.com/npillmayer/tss/script"
	"github.com/npillmayer/tss/styledtree"
)

func TestStyleTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	sheet := MustParse(`.a { color: red; } .a .b { color: blue; }`)
	b := styledtree.NewNode("div", styledtree.Classes("b"))
	a := styledtree.NewNode("div", styledtree.Classes("a")).Add(b)
	root := styledtree.NewNode("body").Add(a)
	styles, err := CompileSimple(sheet, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = styles.Apply(root, nil); err != nil {
		t.Fatal(err)
	}
	if a.Get("color") != "red" || b.Get("color") != "blue" {
		t.Errorf("expected a=red and b=blue, have a=%v, b=%v", a.Get("color"), b.Get("color"))
	}
	compiled, err := Compile(sheet, nil, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := compiled.(*interp.Stylesheet); !ok {
		t.Errorf("expected scriptless stylesheet to compile to an interpreter")
	}
}

func TestCompileErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	sheet := MustParse(`p { <? x() ?> }`)
	if _, err := CompileSimple(sheet, nil); !errors.Is(err, interp.ErrScriptContent) {
		t.Errorf("expected script content to be rejected, have %v", err)
	}
	if _, err := Compile(sheet, nil, nil, nil); !errors.Is(err, script.ErrNoEvaluator) {
		t.Errorf("expected missing evaluator to be reported, have %v", err)
	}
	_, err := Parse(`p { color: red`, parser.Document("broken.tss"))
	var ferr *parser.FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected a format error, have %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Error("expected MustParse to panic")
		}
	}()
	MustParse(`p {`)
}
