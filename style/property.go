package style

import (
	"fmt"
	"sort"
	"strings"
)

// Property is a raw value for a style property. For example, with
//
//     color: black;
//
// a property value of "black" is set. Wrapping the raw string into type
// Property provides a set of type conversions and other helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritance-type "initial".
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritance-type "inherit".
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks whether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// --- Property groups -------------------------------------------------------

// PropertyGroup is a collection of properties sharing a common topic.
// The mapping of properties into groups is done by GroupNameFromPropertyKey.
type PropertyGroup struct {
	name      string
	propsDict map[string]Property
}

// NewPropertyGroup creates a new empty property group, given its name.
func NewPropertyGroup(groupname string) *PropertyGroup {
	return &PropertyGroup{name: groupname}
}

// Name returns the name of the property group.
func (pg *PropertyGroup) Name() string {
	return pg.name
}

func (pg *PropertyGroup) String() string {
	var b strings.Builder
	b.WriteString("[" + pg.name + "] =\n")
	for _, kv := range pg.Properties() {
		fmt.Fprintf(&b, "  %s = %s\n", kv.Key, kv.Value)
	}
	return b.String()
}

// Properties returns all properties of a group, sorted by key.
func (pg *PropertyGroup) Properties() []KeyValue {
	r := make([]KeyValue, 0, len(pg.propsDict))
	for k, v := range pg.propsDict {
		r = append(r, KeyValue{k, v})
	}
	sort.Slice(r, func(i, j int) bool { return r[i].Key < r[j].Key })
	return r
}

// IsSet is a predicate whether a property is set within this group.
func (pg *PropertyGroup) IsSet(key string) bool {
	v, ok := pg.propsDict[key]
	return ok && !v.IsEmpty()
}

// Get a property's value.
func (pg *PropertyGroup) Get(key string) (Property, bool) {
	p, ok := pg.propsDict[key]
	return p, ok
}

// Set a property's value. Overwrites an existing value, if present.
// Values are stored verbatim; TSS values are case-sensitive.
func (pg *PropertyGroup) Set(key string, p Property) {
	if pg.propsDict == nil {
		pg.propsDict = make(map[string]Property)
	}
	pg.propsDict[key] = p
}

// Add a property's value. Does not overwrite an existing value.
func (pg *PropertyGroup) Add(key string, p Property) {
	if _, exists := pg.propsDict[key]; !exists {
		pg.Set(key, p)
	}
}

// Delete removes a property from the group.
func (pg *PropertyGroup) Delete(key string) {
	delete(pg.propsDict, key)
}

// Len returns the number of properties in the group.
func (pg *PropertyGroup) Len() int {
	return len(pg.propsDict)
}

// Symbolic names for property groups.
const (
	PGMargins   = "Margins"
	PGPadding   = "Padding"
	PGBorder    = "Border"
	PGDimension = "Dimension"
	PGDisplay   = "Display"
	PGColor     = "Color"
	PGText      = "Text"
	PGX         = "X"
)

// GroupNameFromPropertyKey returns the group a style property is stored in,
// e.g. "Margins" for "margin-top". Keys without a known prefix go to
// group "X".
func GroupNameFromPropertyKey(key string) string {
	prefix, _, _ := strings.Cut(key, "-")
	switch prefix {
	case "margin":
		return PGMargins
	case "padding":
		return PGPadding
	case "border", "outline":
		return PGBorder
	case "width", "height", "min", "max":
		return PGDimension
	case "display", "float", "visibility", "position", "clear", "overflow":
		return PGDisplay
	case "color", "background", "opacity":
		return PGColor
	case "font", "word", "letter", "line", "text", "white", "direction":
		return PGText
	}
	return PGX
}

// IsCascading returns whether a property is inherited from ancestors by
// default.
func IsCascading(key string) bool {
	if strings.HasPrefix(key, "list-style") || strings.HasPrefix(key, "font-") {
		return true
	}
	switch key {
	case "color", "cursor", "direction", "position":
		return true
	case "letter-spacing", "line-height", "quotes", "visibility", "white-space":
		return true
	case "word-spacing", "word-break", "word-wrap":
		return true
	}
	return false
}

// SplitCompoundProperty splits up a shorthand property into its individual
// components.
// Example:
//    SplitCompoundProperty("padding", "3px 4px")
// will return
//    "padding-top"    => "3px"
//    "padding-right"  => "4px"
//    "padding-bottom" => "3px"
//    "padding-left"   => "4px"
//
// Keys which are not shorthands are returned unchanged, with ok=false.
func SplitCompoundProperty(key string, value Property) (kv []KeyValue, ok bool, err error) {
	fields := strings.Fields(value.String())
	switch key {
	case "margin":
		kv, err = compound4("margin", "", fourDirs, fields)
	case "padding":
		kv, err = compound4("padding", "", fourDirs, fields)
	case "border-color":
		kv, err = compound4("border", "color", fourDirs, fields)
	case "border-width":
		kv, err = compound4("border", "width", fourDirs, fields)
	case "border-style":
		kv, err = compound4("border", "style", fourDirs, fields)
	case "border-radius":
		kv, err = compound4("border", "radius", fourCorners, fields)
	default:
		return []KeyValue{{key, value}}, false, nil
	}
	return kv, true, err
}

// Values are distributed clockwise, missing values mirror their opposite.
func compound4(pre string, suf string, dirs [4]string, fields []string) ([]KeyValue, error) {
	l := len(fields)
	if l == 0 || l > 4 {
		return nil, fmt.Errorf("expecting 1-4 values for %s", key(pre, suf, "*"))
	}
	values := [4]string{fields[0], fields[0], fields[0], fields[0]}
	switch l {
	case 2:
		values[1], values[3] = fields[1], fields[1]
	case 3:
		values[1], values[2], values[3] = fields[1], fields[2], fields[1]
	case 4:
		copy(values[:], fields)
	}
	r := make([]KeyValue, 4)
	for i := range r {
		r[i] = KeyValue{key(pre, suf, dirs[i]), Property(values[i])}
	}
	return r, nil
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}
var fourCorners = [4]string{"top-left", "top-right", "bottom-right", "bottom-left"}

func key(prefix string, suffix string, tag string) string {
	if suffix == "" {
		return prefix + "-" + tag
	}
	return prefix + "-" + tag + "-" + suffix
}

// --- Property Map ----------------------------------------------------------

// PropertyMap holds style properties, segmented into property groups.
// nil is a legal (empty) property map for reading.
type PropertyMap struct {
	m map[string]*PropertyGroup
}

// NewPropertyMap returns a new empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{m: make(map[string]*PropertyGroup)}
}

func (pmap *PropertyMap) String() string {
	var b strings.Builder
	b.WriteString("Property Map = {\n")
	for _, g := range pmap.Groups() {
		b.WriteString(g.String())
	}
	b.WriteString("}")
	return b.String()
}

// Size returns the number of property groups.
func (pmap *PropertyMap) Size() int {
	if pmap == nil {
		return 0
	}
	return len(pmap.m)
}

// Group returns the property group for a group name or nil.
func (pmap *PropertyMap) Group(groupname string) *PropertyGroup {
	if pmap == nil {
		return nil
	}
	return pmap.m[groupname]
}

// Groups returns all non-empty groups, sorted by name.
func (pmap *PropertyMap) Groups() []*PropertyGroup {
	if pmap == nil {
		return nil
	}
	groups := make([]*PropertyGroup, 0, len(pmap.m))
	for _, g := range pmap.m {
		if g.Len() > 0 {
			groups = append(groups, g)
		}
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].name < groups[j].name })
	return groups
}

// Property returns a style property value, together with an indicator
// whether it has been found in the property map. No cascading is performed.
func (pmap *PropertyMap) Property(key string) (Property, bool) {
	group := pmap.Group(GroupNameFromPropertyKey(key))
	if group == nil {
		return NullStyle, false
	}
	return group.Get(key)
}

// Set sets a property in this property map, e.g.,
//
//    pm.Set("funny-margin", "big")
//
func (pmap *PropertyMap) Set(key string, value Property) {
	groupname := GroupNameFromPropertyKey(key)
	group, found := pmap.m[groupname]
	if !found {
		group = NewPropertyGroup(groupname)
		pmap.m[groupname] = group
	}
	group.Set(key, value)
}

// Delete removes a property from this property map.
func (pmap *PropertyMap) Delete(key string) {
	if group := pmap.Group(GroupNameFromPropertyKey(key)); group != nil {
		group.Delete(key)
	}
}

// Properties returns all properties of the map, ordered by group and key.
func (pmap *PropertyMap) Properties() []KeyValue {
	var r []KeyValue
	for _, g := range pmap.Groups() {
		r = append(r, g.Properties()...)
	}
	return r
}
