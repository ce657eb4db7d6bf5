package browser

import (
	"errors"
	"fmt"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var phonetic = []Option{
	{Index: 0, Value: "alfa", Label: "alfa"},
	{Index: 1, Value: "bravo", Label: "Bravo"},
	{Index: 2, Value: "charlie", Label: "Charlie"},
}

func TestMatchOption(t *testing.T) {
	tests := []struct {
		name    string
		choice  OptionChoice
		want    int
		wantErr bool
	}{
		{name: "first index", choice: OptionIndex(0), want: 0},
		{name: "last index", choice: OptionIndex(2), want: 2},
		{name: "index out of range", choice: OptionIndex(3), wantErr: true},
		{name: "negative index", choice: OptionIndex(-1), wantErr: true},
		{name: "by value", choice: OptionValue("bravo"), want: 1},
		{name: "value is case sensitive", choice: OptionValue("Bravo"), wantErr: true},
		{name: "by label", choice: OptionLabel("Charlie"), want: 2},
		{name: "unknown label", choice: OptionLabel("delta"), wantErr: true},
		{name: "empty choice", choice: OptionChoice{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MatchOption(phonetic, tt.choice)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrOptionNotFound))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOptionChoice_String(t *testing.T) {
	assert.Equal(t, "index=0", OptionIndex(0).String())
	assert.Equal(t, "value=alfa", OptionValue("alfa").String())
	assert.Equal(t, "label=Alfa", OptionLabel("Alfa").String())
	assert.Equal(t, "none", OptionChoice{}.String())
}

func TestDecodeElementInfo(t *testing.T) {
	raw := map[string]interface{}{
		"tag":        "select",
		"type":       "",
		"editable":   false,
		"checkable":  false,
		"selectable": true,
		"options": []interface{}{
			map[string]interface{}{"index": float64(0), "value": "alfa", "label": "alfa"},
			map[string]interface{}{"index": float64(1), "value": "bravo", "label": "bravo"},
		},
	}

	info, err := decodeElementInfo(raw)
	require.NoError(t, err)
	assert.Equal(t, "select", info.Tag)
	assert.True(t, info.Selectable)
	require.Len(t, info.Options, 2)
	assert.Equal(t, Option{Index: 1, Value: "bravo", Label: "bravo"}, info.Options[1])
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := newError("fill", "#name", ErrNotEditable, cause)

	assert.True(t, errors.Is(err, ErrNotEditable))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, ErrNotCheckable))
	assert.Equal(t, "fill #name: element is not an editable control: boom", err.Error())

	var be *Error
	require.True(t, errors.As(fmt.Errorf("step: %w", err), &be))
	assert.Equal(t, "fill", be.Op)
}

func TestElementError_TimeoutMeansNotFound(t *testing.T) {
	timeout := fmt.Errorf("%w: waiting for locator", playwright.ErrTimeout)

	err := elementError("check", "#missing", ErrNotCheckable, timeout)
	assert.True(t, errors.Is(err, ErrElementNotFound))
	assert.False(t, errors.Is(err, ErrNotCheckable))

	other := elementError("check", "#box", ErrNotCheckable, errors.New("detached"))
	assert.True(t, errors.Is(other, ErrNotCheckable))
}

func TestDescribe(t *testing.T) {
	err := fmt.Errorf("step %q: %w", "select", newError("select", "#s", ErrOptionNotFound, nil))
	assert.Contains(t, Describe(err), `op=select target="#s"`)
	assert.Equal(t, "plain", Describe(errors.New("plain")))
	assert.Empty(t, Trace(errors.New("plain")))
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		markup string
		want   string
	}{
		{`<p id="id-example-1">Lorem Ipsum</p>`, "p#id-example-1"},
		{`<p class="class-example-1 lead">Lorem Ipsum</p>`, "p.class-example-1.lead"},
		{`<input type="text" id="text-example-1-id">`, "input#text-example-1-id[type=text]"},
		{`<option value="alfa">alfa</option>`, "option[value=alfa]"},
		{`<a href="https://example.com">Link Example 1</a>`, "a"},
		{"  plain text  ", "plain text"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Summarize(tt.markup))
		})
	}
}
