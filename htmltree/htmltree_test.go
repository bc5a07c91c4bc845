package htmltree

import (
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tss/interp"
	"github.com/npillmayer/tss/parser"
	"github.com/npillmayer/tss/selectable"
	"github.com/npillmayer/tss/visit"
	"golang.org/x/net/html"
)

const page = `<!DOCTYPE html>
<html><head><title>Test</title></head>
<body>
  <div id="main" class="a">
    <p class="b">one</p>
    <section class="b c">
      <p>two</p>
      <p class="b" lang="en">three</p>
    </section>
  </div>
  <p class="b">four</p>
  <!-- comment -->
  <ul><li>x</li><li>y</li><li>z</li></ul>
</body></html>`

func parse(t *testing.T) Node {
	t.Helper()
	doc, err := Parse(strings.NewReader(page))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func matches(t *testing.T, doc Node, selector string) []*html.Node {
	t.Helper()
	var nodes []*html.Node
	err := visit.VisitSelector(doc, selector, func(current selectable.Selectable, _ selectable.Tree, _ selectable.Selectable) error {
		nodes = append(nodes, current.(Node).HTML())
		return nil
	}, nil)
	if err != nil {
		t.Fatalf("selector %q: %v", selector, err)
	}
	return nodes
}

func TestMatchesLikeCSSDescendantSelectors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.htmltree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	doc := parse(t)
	for _, sel := range []string{
		"p", "div p", ".a .b", "#main p", "section p.b", "body .b",
		"div section p", "p.b", ".b.c", "li", "html body ul li", "span",
	} {
		expected := cascadia.MustCompile(sel).MatchAll(doc.HTML())
		have := matches(t, doc, sel)
		if len(expected) != len(have) {
			t.Errorf("selector %q: expected %d matches, have %d", sel, len(expected), len(have))
			continue
		}
		for i := range expected {
			if expected[i] != have[i] {
				t.Errorf("selector %q: match %d differs", sel, i)
			}
		}
	}
}

func TestPositionsAndAttributes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.htmltree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	doc := parse(t)
	texts := func(nodes []*html.Node) string {
		var s []string
		for _, n := range nodes {
			s = append(s, n.FirstChild.Data)
		}
		return strings.Join(s, ",")
	}
	if s := texts(matches(t, doc, "li$first")); s != "x" {
		t.Errorf("expected first li to be x, have %s", s)
	}
	if s := texts(matches(t, doc, "li$last")); s != "z" {
		t.Errorf("expected last li to be z, have %s", s)
	}
	if s := texts(matches(t, doc, "li$even")); s != "y" {
		t.Errorf("expected even li to be y, have %s", s)
	}
	if s := texts(matches(t, doc, "p^@lang")); s != "three" {
		t.Errorf("expected p with lang to be three, have %s", s)
	}
	if s := texts(matches(t, doc, "section p$2")); s != "three" {
		t.Errorf("expected second p in section to be three, have %s", s)
	}
}

func TestApplyWritesInlineStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.htmltree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	doc := parse(t)
	sheet, err := parser.Parse(`
		.a .b { color: red; margin-top: 2pt; }
		section { p { color: blue; } }
	`)
	if err != nil {
		t.Fatal(err)
	}
	compiled, err := interp.Compile(sheet, AsSelectable)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = compiled.Apply(doc.HTML(), nil); err != nil {
		t.Fatal(err)
	}
	ps := matches(t, doc, "p")
	styles := []string{}
	for _, p := range ps {
		s, _ := Wrap(p).attr("style")
		styles = append(styles, s)
	}
	expected := []string{
		"color: red; margin-top: 2pt",
		"color: blue",
		"color: blue; margin-top: 2pt",
		"",
	}
	for i := range expected {
		if styles[i] != expected[i] {
			t.Errorf("p #%d: expected style %q, have %q", i, expected[i], styles[i])
		}
	}
	first := Wrap(ps[0])
	first.Delete("color")
	if first.Get("color") != nil || first.Get("margin-top") != "2pt" {
		t.Errorf("expected color to be deleted, have %v", first.Styles())
	}
	if first.Computed("display") != "block" {
		t.Errorf("expected p to display as block, have %q", first.Computed("display"))
	}
	if selectable.PrivilegeOf(first.ScriptAccessor()) != selectable.Delete {
		t.Error("expected scripts to have delete privilege")
	}
}
