package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelector_String(t *testing.T) {
	tests := []struct {
		name string
		sel  Selector
		want string
	}{
		{name: "id", sel: ByID("id-example-1"), want: "#id-example-1"},
		{name: "id with dots falls back to attribute", sel: ByID("a.b"), want: `[id="a.b"]`},
		{name: "attribute", sel: ByAttribute("name", "name-example-1"), want: `[name="name-example-1"]`},
		{name: "attribute escapes quotes", sel: ByAttribute("title", `say "hi"`), want: `[title="say \"hi\""]`},
		{name: "class", sel: ByClass("class-example-1"), want: ".class-example-1"},
		{name: "class with space", sel: ByClass("a b"), want: `[class~="a b"]`},
		{name: "text with tag", sel: ByText("a", "Link Example 1"), want: `a:has-text("Link Example 1")`},
		{name: "text any tag", sel: ByText("", "Hello"), want: `*:has-text("Hello")`},
		{name: "xpath", sel: ByXPath(`//input[@type="submit"]`), want: `xpath=//input[@type="submit"]`},
		{name: "xpath keeps single prefix", sel: ByXPath("xpath=//p"), want: "xpath=//p"},
		{name: "css", sel: ByCSS("option:checked"), want: "option:checked"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sel.String())
		})
	}
}

func TestParseSelector(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        Selector
		expectError string
	}{
		{name: "id", input: "id:id-example-1", want: ByID("id-example-1")},
		{name: "attribute", input: "attr:name=name-example-1", want: ByAttribute("name", "name-example-1")},
		{name: "quoted attribute", input: `attr:name="name-example-1"`, want: ByAttribute("name", "name-example-1")},
		{name: "class", input: "class:class-example-1", want: ByClass("class-example-1")},
		{name: "text with tag", input: "text:a=Link Example 1", want: ByText("a", "Link Example 1")},
		{name: "text without tag", input: "text:Link Example 1", want: ByText("", "Link Example 1")},
		{name: "xpath", input: `xpath://input[@type="submit"]`, want: ByXPath(`//input[@type="submit"]`)},
		{name: "css prefix", input: "css:select > option", want: ByCSS("select > option")},
		{name: "bare css", input: "#text-example-1-id", want: ByCSS("#text-example-1-id")},
		{name: "unknown prefix is css", input: "option:checked", want: ByCSS("option:checked")},
		{name: "empty", input: "", expectError: "empty selector"},
		{name: "attribute without value", input: "attr:name", expectError: "must be name=value"},
		{name: "empty id", input: "id:", expectError: "expression is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSelector(tt.input)
			if tt.expectError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelector_Validate(t *testing.T) {
	assert.NoError(t, ByID("x").Validate())
	assert.Error(t, Selector{Kind: KindAttribute, Expr: "v"}.Validate())
	assert.Error(t, Selector{Kind: "bogus", Expr: "v"}.Validate())
}
