package cssimport

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	douceur "github.com/aymerick/douceur/parser"
	"github.com/npillmayer/tss/ast"
	"github.com/npillmayer/tss/parser"
	"github.com/npillmayer/tss/style"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Option configures the import.
type Option func(*importer)

// KeepImportant controls whether "!important" markers survive the import.
// If set, the marker is appended to the assigned value; otherwise it is
// dropped. Default is false.
func KeepImportant(keep bool) Option {
	return func(imp *importer) {
		imp.keepImportant = keep
	}
}

// ExpandShorthands splits shorthand properties such as "margin" or
// "border-width" into their four sides (see style.SplitCompoundProperty).
func ExpandShorthands(expand bool) Option {
	return func(imp *importer) {
		imp.expand = expand
	}
}

// Document sets a document name to be included in error messages.
func Document(name string) Option {
	return func(imp *importer) {
		imp.doc = name
	}
}

type importer struct {
	keepImportant bool
	expand        bool
	doc           string
}

// FromCSS parses CSS text and converts it into a TSS stylesheet.
// Declaration order is preserved; rules without declarations are kept as
// empty style declarations.
func FromCSS(text string, opts ...Option) (*ast.Stylesheet, error) {
	imp := &importer{}
	for _, option := range opts {
		option(imp)
	}
	sheet, err := douceur.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("cannot parse CSS: %w", err)
	}
	var declarations []ast.Declaration
	for _, rule := range sheet.Rules {
		if rule.Kind != css.QualifiedRule {
			tracer().Infof("skipping CSS at-rule %s", rule.Name)
			continue
		}
		d, err := imp.rule(rule)
		if err != nil {
			return nil, err
		}
		declarations = append(declarations, d)
	}
	tracer().Debugf("imported %d CSS rules", len(declarations))
	return ast.NewStylesheet(declarations...), nil
}

func (imp *importer) rule(rule *css.Rule) (*ast.StyleDeclaration, error) {
	prelude := strings.TrimSpace(rule.Prelude)
	if i := strings.IndexAny(prelude, `>+~[]:()|\"'&!^`); i >= 0 {
		return nil, fmt.Errorf("%w: %q (at %q)", ErrUnsupportedSelector, prelude, prelude[i])
	}
	sel, err := parser.ParseSelector(prelude, parser.Document(imp.doc))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnsupportedSelector, prelude, err)
	}
	var statements []ast.Statement
	for _, decl := range rule.Declarations {
		for _, kv := range imp.properties(decl) {
			statements = append(statements, ast.Assignment(kv.Key, kv.Value.String()))
		}
	}
	return ast.Style(sel, statements...), nil
}

func (imp *importer) properties(decl *css.Declaration) []style.KeyValue {
	key := strings.ToLower(strings.TrimSpace(decl.Property))
	value := strings.TrimSpace(decl.Value)
	kv := []style.KeyValue{{Key: key, Value: style.Property(value)}}
	if imp.expand {
		split, ok, err := style.SplitCompoundProperty(key, style.Property(value))
		if err != nil {
			tracer().Infof("keeping shorthand %s: %v", key, err)
		} else if ok {
			kv = split
		}
	}
	if decl.Important && imp.keepImportant {
		for i := range kv {
			kv[i].Value = style.Property(kv[i].Value.String() + " !important")
		}
	}
	return kv
}

// ExtractStyleElements searches <head> and <body> of an HTML parse tree
// for <style> elements and imports their content, in document order.
func ExtractStyleElements(doc *html.Node, opts ...Option) ([]*ast.Stylesheet, error) {
	var sheets []*ast.Stylesheet
	for _, a := range []atom.Atom{atom.Head, atom.Body} {
		h := findElement(a, doc)
		if h == nil {
			continue
		}
		for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
			if ch.Type != html.ElementNode || ch.DataAtom != atom.Style {
				continue
			}
			sheet, err := FromCSS(textContent(ch), opts...)
			if err != nil {
				return sheets, err
			}
			sheets = append(sheets, sheet)
		}
	}
	return sheets, nil
}

func textContent(h *html.Node) string {
	var b strings.Builder
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.TextNode {
			b.WriteString(ch.Data)
		}
	}
	return b.String()
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.Type == html.ElementNode && h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}
