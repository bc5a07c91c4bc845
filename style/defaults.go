package style

// initialValues holds user-agent defaults which do not depend on the
// element. "default" denotes a value left to rendering code.
var initialValues = func() map[string]string {
	m := map[string]string{
		"position":         "static",
		"background-color": "default",
		"width":            "auto",
		"height":           "auto",
		"min-width":        "none",
		"min-height":       "none",
		"max-width":        "none",
		"max-height":       "none",
	}
	for _, dir := range fourDirs {
		m[dir] = "0"
		m[key("margin", "", dir)] = "0"
		m[key("padding", "", dir)] = "0"
		m[key("border", "width", dir)] = "medium"
		m[key("border", "color", dir)] = "default"
	}
	for _, corner := range fourCorners {
		m[key("border", "radius", corner)] = "0"
	}
	return m
}()

// DefaultProperty returns the user-agent default of a property for an
// element with the given tag, or NullStyle if there is none.
func DefaultProperty(tag string, key string) Property {
	if key == "display" {
		return DisplayDefault(tag)
	}
	if v, ok := initialValues[key]; ok {
		return Property(v)
	}
	return NullStyle
}

// DisplayDefault returns the default `display` property for an HTML element.
func DisplayDefault(tag string) Property {
	switch tag {
	case "":
		return "none"
	case "head", "script", "style", "title", "meta", "link":
		return "none"
	case "p", "html", "aside", "body", "div", "h1", "h2", "h3",
		"h4", "h5", "h6", "ol", "ul", "li", "section", "article",
		"header", "footer", "nav", "table", "form", "pre":
		return "block"
	case "i", "b", "em", "span", "strong", "a", "code", "img":
		return "inline"
	}
	tracer().Debugf("unknown HTML element %q will be set to display: block", tag)
	return "block"
}
