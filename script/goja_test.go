package script

import (
	"fmt"
	"testing"

	"github.com/dop251/goja"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tss/parser"
	"github.com/npillmayer/tss/selectable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// jsEngine evaluates and invokes generated code with goja.
type jsEngine struct {
	vm *goja.Runtime
}

func newJSEngine() *jsEngine {
	return &jsEngine{vm: goja.New()}
}

func (e *jsEngine) Evaluate(code string) (any, error) {
	v, err := e.vm.RunString(code)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (e *jsEngine) Invoke(fn any, args ...any) (any, error) {
	v, ok := fn.(goja.Value)
	if !ok {
		v = e.vm.ToValue(fn)
	}
	f, ok := goja.AssertFunction(v)
	if !ok {
		return nil, fmt.Errorf("not a script function: %T", fn)
	}
	values := make([]goja.Value, len(args))
	for i, a := range args {
		values[i] = e.vm.ToValue(a)
	}
	r, err := f(goja.Undefined(), values...)
	if err != nil {
		return nil, err
	}
	return r.Export(), nil
}

// tiered is a host node handing out script accessors with a configurable
// privilege.
type tiered struct {
	typ      string
	tier     selectable.Privilege
	props    map[string]any
	children []*tiered
}

func newTiered(typ string, tier selectable.Privilege, children ...*tiered) *tiered {
	return &tiered{typ: typ, tier: tier, props: map[string]any{}, children: children}
}

func (n *tiered) Matches(label string) bool { return label == n.typ }

func (n *tiered) Children() []selectable.Selectable {
	children := make([]selectable.Selectable, len(n.children))
	for i, ch := range n.children {
		children[i] = ch
	}
	return children
}

func (n *tiered) Get(key string) any        { return n.props[key] }
func (n *tiered) Set(key string, value any) { n.props[key] = value }
func (n *tiered) Delete(key string)         { delete(n.props, key) }

func (n *tiered) ScriptAccessor() selectable.ScriptReadable {
	switch n.tier {
	case selectable.Read:
		return &readView{n}
	case selectable.Write:
		return &writeView{n}
	}
	return n
}

type readView struct{ n *tiered }

func (v *readView) Get(key string) any { return v.n.props[key] }

type writeView struct{ n *tiered }

func (v *writeView) Get(key string) any        { return v.n.props[key] }
func (v *writeView) Set(key string, value any) { v.n.props[key] = value }

func resolveTiered(item any) selectable.Selectable {
	switch v := item.(type) {
	case *tiered:
		return v
	case *readView:
		return v.n
	case *writeView:
		return v.n
	}
	return nil
}

func tieredTree() (root *tiered, divs []*tiered) {
	for _, tier := range []selectable.Privilege{selectable.Delete, selectable.Write, selectable.Read, selectable.Delete} {
		div := newTiered("div", tier, newTiered("span", tier))
		div.props["color"] = "red"
		divs = append(divs, div)
	}
	divs[3].props["color"] = "blue"
	root = newTiered("body", selectable.Delete, divs...)
	return
}

func TestGeneratedCodeRunsWithPrivileges(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.script")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	sheet, err := parser.Parse(`
		div^<?this.color == 'red'?> {
			<? this.size = 'big'; delete this.color; ?>
			span { weight: bold; }
		}
		<? args.seen = true; ?>
	`)
	require.NoError(t, err)
	engine := newJSEngine()
	compiled, err := Compile(sheet, resolveTiered, engine, engine)
	require.NoError(t, err)
	root, divs := tieredTree()
	args := map[string]any{}
	_, err = compiled.Apply(root, args)
	require.NoError(t, err)
	assert.Equal(t, true, args["seen"])
	// delete tier: written and deleted
	assert.Equal(t, "big", divs[0].props["size"])
	assert.NotContains(t, divs[0].props, "color")
	// write tier: delete ignored
	assert.Equal(t, "big", divs[1].props["size"])
	assert.Equal(t, "red", divs[1].props["color"])
	// read tier: write and delete ignored
	assert.NotContains(t, divs[2].props, "size")
	assert.Equal(t, "red", divs[2].props["color"])
	// rules routed by path apply to the resolved node, regardless of tier
	for i := 0; i < 3; i++ {
		assert.Equal(t, "bold", divs[i].children[0].props["weight"], "span in div #%d", i)
	}
	// predicate does not match
	assert.NotContains(t, divs[3].props, "size")
	assert.NotContains(t, divs[3].children[0].props, "weight")
}

func TestPredicatesSeeReadOnlyNodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.script")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	sheet, err := parser.Parse(`
		div^<?(this.touched = 'yes') !== null?> { size: small; }
	`)
	require.NoError(t, err)
	engine := newJSEngine()
	compiled, err := Compile(sheet, resolveTiered, engine, engine)
	require.NoError(t, err)
	root, divs := tieredTree()
	_, err = compiled.Apply(root, nil)
	require.NoError(t, err)
	for i, div := range divs {
		assert.NotContains(t, div.props, "touched", "div #%d", i)
		assert.Equal(t, "small", div.props["size"], "div #%d", i)
	}
}

func TestScriptErrorsAbortApply(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.script")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	sheet, err := parser.Parse(`span { <? throw new Error('boom'); ?> }`)
	require.NoError(t, err)
	engine := newJSEngine()
	compiled, err := Compile(sheet, resolveTiered, engine, engine)
	require.NoError(t, err)
	root, _ := tieredTree()
	_, err = compiled.Apply(root, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}
