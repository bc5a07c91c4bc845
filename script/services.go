package script

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/tss/ast"
	"github.com/npillmayer/tss/interp"
	"github.com/npillmayer/tss/selectable"
	"github.com/npillmayer/tss/visit"
)

// Services is injected into compiled scripts as __svc__. Its methods are
// called from the prelude; script engines have to expose them under their
// Go names.
//
// Nodes handed back from scripts are the script accessors of host nodes
// (see selectable.ScriptSelectable); the AsSelectable resolver has to map
// them back to selectable nodes, unless they are selectable themselves.
type Services struct {
	sheet        *ast.Stylesheet
	invoker      Invoker
	asSelectable interp.AsSelectable
	engine       *visit.Engine
}

// AsScriptable returns the object scripts should see for a host item: its
// script accessor, if it has one, or the item itself.
func (s *Services) AsScriptable(item any) any {
	if ss, ok := item.(selectable.ScriptSelectable); ok {
		return ss.ScriptAccessor()
	}
	if ss, ok := s.asSelectable(item).(selectable.ScriptSelectable); ok {
		return ss.ScriptAccessor()
	}
	return item
}

// Assign sets a property on root, if root resolves to a styleable node.
func (s *Services) Assign(root any, key string, value string) {
	if st, ok := s.asSelectable(root).(selectable.Styleable); ok {
		st.Set(key, value)
	}
}

// GetScriptPrivilege returns the privilege tier of item as a number
// (0 = no access … 3 = delete).
func (s *Services) GetScriptPrivilege(item any) int {
	return int(selectable.PrivilegeOf(item))
}

// VisitScript calls callback for every node below root matched by selector.
// Callback selectors <{i}> call predicates[i]; predicates with an index out
// of range do not match.
func (s *Services) VisitScript(root any, selector string, callback any, predicates ...any) error {
	item := s.asSelectable(root)
	if item == nil {
		return nil
	}
	return s.engine.VisitSelector(item, selector,
		func(current selectable.Selectable, _ selectable.Tree, _ selectable.Selectable) error {
			_, err := s.invoker.Invoke(callback, current)
			return err
		},
		func(id int, node selectable.Selectable) (bool, error) {
			if id < 0 || id >= len(predicates) {
				tracer().Infof("no predicate for callback selector <{%d}>", id)
				return false, nil
			}
			r, err := s.invoker.Invoke(predicates[id], node)
			if err != nil {
				return false, err
			}
			b, ok := r.(bool)
			return ok && b, nil
		})
}

// VisitRule applies the script-free statement with path id ("2.1.0") of
// the stylesheet to root.
func (s *Services) VisitRule(root any, id string) error {
	parts := strings.Split(id, ".")
	path := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidRulePath, id)
		}
		path[i] = n
	}
	statement, err := s.sheet.StatementAt(path...)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidRulePath, id, err)
	}
	return interp.Accept(s.engine, s.asSelectable(root), statement)
}
