package visit

import "github.com/npillmayer/tss/ast"

const pruned = -1

// tracker holds the position vector for an or-selector: one cursor per
// line into the line's and-selectors, or pruned.
type tracker struct {
	selector  *ast.OrSelector
	positions []int
}

func newTracker(selector *ast.OrSelector) *tracker {
	return &tracker{
		selector:  selector,
		positions: make([]int, selector.Len()),
	}
}

func (tr *tracker) clone() *tracker {
	return &tracker{
		selector:  tr.selector,
		positions: append([]int(nil), tr.positions...),
	}
}

func (tr *tracker) lines() int {
	return len(tr.positions)
}

func (tr *tracker) prune(line int) {
	tr.positions[line] = pruned
}

func (tr *tracker) isPruned(line int) bool {
	return tr.positions[line] < 0
}

// state returns the and-selector to test at the current cursor of a line,
// and whether the line is terminal.
func (tr *tracker) state(line int) (terminal bool, and *ast.AndSelector) {
	chain := tr.selector.Line(line)
	pos := tr.positions[line]
	if pos < 0 {
		return true, nil
	}
	if pos >= chain.Len()-1 {
		return true, chain.At(chain.Len() - 1)
	}
	return false, chain.At(pos)
}

// remaining returns the and-selectors still to be matched by descendants.
// For a terminal line this is the last and-selector.
func (tr *tracker) remaining(line int) []*ast.AndSelector {
	chain := tr.selector.Line(line)
	pos := tr.positions[line]
	if pos < 0 {
		return nil
	}
	if pos >= chain.Len()-1 {
		return []*ast.AndSelector{chain.At(chain.Len() - 1)}
	}
	rest := make([]*ast.AndSelector, 0, chain.Len()-pos)
	for i := pos; i < chain.Len(); i++ {
		rest = append(rest, chain.At(i))
	}
	return rest
}

func (tr *tracker) advance(line int) {
	pos := tr.positions[line]
	if pos >= 0 && pos < tr.selector.Line(line).Len() {
		tr.positions[line]++
	}
}
