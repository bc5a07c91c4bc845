/*
Package tssdbg implements helpers to debug TSS stylesheets.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tssdbg

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/tss/ast"
	tp "github.com/xlab/treeprint"
)

// Print renders the syntax tree of a stylesheet as a tree diagram.
// Statements are annotated with their rule paths, e.g.
//
//    stylesheet
//    ├── [0] style 'p'^'.a'
//    │   ├── [0.0] color: red
//    │   └── [0.1] style & 'em'
//    │       └── [0.1.0] font-style: italic
//    └── [1] script console.log('x')
//
func Print(sheet *ast.Stylesheet) string {
	p := tp.New()
	p.SetValue("stylesheet")
	if sheet == nil {
		return p.String()
	}
	for i, d := range sheet.Declarations() {
		statement(p, d, []int{i})
	}
	return p.String()
}

// Fprint writes the tree diagram of a stylesheet to w.
func Fprint(w io.Writer, sheet *ast.Stylesheet) error {
	_, err := io.WriteString(w, Print(sheet))
	return err
}

func statement(p tp.Tree, s ast.Statement, path []int) {
	meta := ast.PathString(path)
	switch st := s.(type) {
	case *ast.AssignmentStatement:
		p.AddMetaNode(meta, fmt.Sprintf("%s: %s", st.Key(), st.Value()))
	case *ast.ScriptDeclaration:
		p.AddMetaNode(meta, "script "+shorten(st.Script()))
	case *ast.StyleDeclaration:
		statements := st.Statements()
		label := "style " + st.Selector().String()
		if len(statements) == 0 {
			p.AddMetaNode(meta, label)
			return
		}
		branch := p.AddMetaBranch(meta, label)
		for i, inner := range statements {
			statement(branch, inner, append(append([]int(nil), path...), i))
		}
	}
}

func shorten(script string) string {
	s := strings.Join(strings.Fields(script), " ")
	if len(s) > 40 {
		return s[:37] + "..."
	}
	return s
}
