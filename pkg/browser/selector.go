package browser

import (
	"fmt"
	"regexp"
	"strings"
)

// SelectorKind identifies how a Selector expression is interpreted.
type SelectorKind string

const (
	KindID        SelectorKind = "id"
	KindAttribute SelectorKind = "attr"
	KindClass     SelectorKind = "class"
	KindText      SelectorKind = "text"
	KindXPath     SelectorKind = "xpath"
	KindCSS       SelectorKind = "css"
)

// Selector is a query against a page's DOM. It is a plain value; nothing is
// looked up until a Locator built from it is acted on.
type Selector struct {
	Kind SelectorKind

	// Expr is the id, class, attribute value, text, XPath or CSS expression
	Expr string

	// Attr is the attribute name for KindAttribute
	Attr string

	// Tag restricts KindText to one element type (empty means any)
	Tag string
}

// ByID selects the element whose id attribute equals id.
func ByID(id string) Selector { return Selector{Kind: KindID, Expr: id} }

// ByAttribute selects elements whose attribute name equals value.
func ByAttribute(name, value string) Selector {
	return Selector{Kind: KindAttribute, Attr: name, Expr: value}
}

// ByClass selects elements carrying class.
func ByClass(class string) Selector { return Selector{Kind: KindClass, Expr: class} }

// ByText selects tag elements containing text. An empty tag matches any element.
func ByText(tag, text string) Selector { return Selector{Kind: KindText, Tag: tag, Expr: text} }

// ByXPath selects elements matching an XPath query.
func ByXPath(query string) Selector {
	return Selector{Kind: KindXPath, Expr: strings.TrimPrefix(query, "xpath=")}
}

// ByCSS selects elements with a raw Playwright/CSS selector.
func ByCSS(css string) Selector { return Selector{Kind: KindCSS, Expr: css} }

var identPattern = regexp.MustCompile(`^-?[A-Za-z_][A-Za-z0-9_-]*$`)

// String renders the selector in Playwright selector syntax.
func (s Selector) String() string {
	switch s.Kind {
	case KindID:
		if identPattern.MatchString(s.Expr) {
			return "#" + s.Expr
		}
		return attributeSelector("id", s.Expr)
	case KindAttribute:
		return attributeSelector(s.Attr, s.Expr)
	case KindClass:
		if identPattern.MatchString(s.Expr) {
			return "." + s.Expr
		}
		return fmt.Sprintf("[class~=%s]", quote(s.Expr))
	case KindText:
		tag := s.Tag
		if tag == "" {
			tag = "*"
		}
		return fmt.Sprintf("%s:has-text(%s)", tag, quote(s.Expr))
	case KindXPath:
		return "xpath=" + s.Expr
	default:
		return s.Expr
	}
}

// Validate reports selectors that cannot be rendered.
func (s Selector) Validate() error {
	if s.Expr == "" {
		return fmt.Errorf("selector expression is required")
	}
	switch s.Kind {
	case KindID, KindClass, KindText, KindXPath, KindCSS:
	case KindAttribute:
		if s.Attr == "" {
			return fmt.Errorf("attribute selector requires an attribute name")
		}
	default:
		return fmt.Errorf("unknown selector kind %q", s.Kind)
	}
	return nil
}

// ParseSelector reads the "kind:expression" notation used in config files:
//
//	id:id-example-1
//	attr:name=name-example-1
//	class:class-example-1
//	text:a=Link Example 1    (or text:Link Example 1 for any tag)
//	xpath://input[@type="submit"]
//	css:select > option
//
// A string without a known kind prefix is taken as CSS.
func ParseSelector(s string) (Selector, error) {
	if s == "" {
		return Selector{}, fmt.Errorf("empty selector")
	}

	kind, expr, found := strings.Cut(s, ":")
	if !found {
		return ByCSS(s), nil
	}

	var sel Selector
	switch SelectorKind(kind) {
	case KindID:
		sel = ByID(expr)
	case KindAttribute:
		name, value, ok := strings.Cut(expr, "=")
		if !ok {
			return Selector{}, fmt.Errorf("attribute selector %q must be name=value", expr)
		}
		sel = ByAttribute(name, strings.Trim(value, `"'`))
	case KindClass:
		sel = ByClass(expr)
	case KindText:
		tag, text, ok := strings.Cut(expr, "=")
		if !ok {
			tag, text = "", expr
		}
		sel = ByText(tag, text)
	case KindXPath:
		sel = ByXPath(expr)
	case KindCSS:
		sel = ByCSS(expr)
	default:
		return ByCSS(s), nil
	}

	if err := sel.Validate(); err != nil {
		return Selector{}, fmt.Errorf("invalid selector %q: %w", s, err)
	}
	return sel, nil
}

func attributeSelector(name, value string) string {
	return fmt.Sprintf("[%s=%s]", name, quote(value))
}

func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
