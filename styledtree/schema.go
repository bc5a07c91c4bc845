package styledtree

// Schema describes which node types may be nested into which.
//
// A schema has to be truthful for the trees it is attached to: a type
// declared unique must never be nested into itself, and a type listed
// with its children must only have children of the listed types.
// Types not mentioned in the containment table may contain anything.
type Schema struct {
	unique   map[string]bool
	children map[string][]string
	closure  map[string]map[string]bool // memoized descendant types
}

// NewSchema creates an empty schema, which allows anything.
func NewSchema() *Schema {
	return &Schema{
		unique:   make(map[string]bool),
		children: make(map[string][]string),
		closure:  make(map[string]map[string]bool),
	}
}

// Unique declares types which occur at most once on any path from the root
// to a leaf.
func (s *Schema) Unique(types ...string) *Schema {
	for _, t := range types {
		s.unique[t] = true
	}
	return s
}

// Contains declares the complete list of types allowed as children of
// nodes of type t.
func (s *Schema) Contains(t string, children ...string) *Schema {
	s.children[t] = append([]string(nil), children...)
	s.closure = make(map[string]map[string]bool)
	return s
}

// IsUnique reports whether type t is declared unique.
func (s *Schema) IsUnique(t string) bool {
	return s != nil && s.unique[t]
}

// CanContain reports whether a node of type t may have a descendant of type
// d at any depth.
func (s *Schema) CanContain(t string, d string) bool {
	if s == nil {
		return true
	}
	desc, ok := s.descendants(t)
	if !ok {
		return true
	}
	return desc[d]
}

// descendants computes the set of types reachable from t. ok is false if
// an open type (one without containment entry) is reachable.
func (s *Schema) descendants(t string) (map[string]bool, bool) {
	if desc, ok := s.closure[t]; ok {
		return desc, desc != nil
	}
	if _, ok := s.children[t]; !ok {
		return nil, false
	}
	desc := make(map[string]bool)
	stack := []string{t}
	seen := map[string]bool{t: true}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		children, ok := s.children[top]
		if !ok {
			s.closure[t] = nil
			return nil, false
		}
		for _, ch := range children {
			desc[ch] = true
			if !seen[ch] {
				seen[ch] = true
				stack = append(stack, ch)
			}
		}
	}
	s.closure[t] = desc
	return desc, true
}
