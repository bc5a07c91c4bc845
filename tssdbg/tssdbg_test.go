package tssdbg

import (
	"strings"
	"testing"

	"github.com/npillmayer/tss/parser"
)

func TestPrint(t *testing.T) {
	sheet, err := parser.Parse(`
		p.a { color: red; em { font-style: italic; } }
		<? console.log('x') ?>
	`)
	if err != nil {
		t.Fatal(err)
	}
	s := Print(sheet)
	t.Logf("\n%s", s)
	for _, line := range [][2]string{
		{"[0]", "style 'p'^'.a'"},
		{"[0.0]", "color: red"},
		{"[0.1]", "style & 'em'"},
		{"[0.1.0]", "font-style: italic"},
		{"[1]", "script console.log('x')"},
	} {
		if !containsLine(s, line[0], line[1]) {
			t.Errorf("expected diagram to contain %s %q", line[0], line[1])
		}
	}
	var b strings.Builder
	if err := Fprint(&b, sheet); err != nil || b.String() != s {
		t.Errorf("Fprint differs from Print")
	}
}

func TestPrintNil(t *testing.T) {
	if s := Print(nil); !strings.HasPrefix(s, "stylesheet") {
		t.Errorf("expected an empty diagram, have %q", s)
	}
}

func containsLine(diagram, meta, value string) bool {
	for _, l := range strings.Split(diagram, "\n") {
		if strings.Contains(l, meta) && strings.HasSuffix(l, value) {
			return true
		}
	}
	return false
}
