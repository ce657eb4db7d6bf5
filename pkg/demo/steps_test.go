package demo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrhq/formdemo/pkg/browser"
	"github.com/entrhq/formdemo/pkg/config"
)

func stepNames(steps []Step) []string {
	names := make([]string, len(steps))
	for i, s := range steps {
		names[i] = s.Name
	}
	return names
}

func TestDefaultSteps(t *testing.T) {
	steps := DefaultSteps()
	require.Len(t, steps, 9)

	for _, s := range steps {
		assert.NoError(t, s.Selector.Validate(), s.Name)
	}

	last := steps[len(steps)-1]
	assert.Equal(t, ActionSelect, last.Action)
	require.NotNil(t, last.Option.Index)
	assert.Equal(t, 0, *last.Option.Index)
	assert.Equal(t, "hello", steps[5].Value)
}

func TestFilterSteps(t *testing.T) {
	tests := []struct {
		name        string
		pattern     string
		want        []string
		expectError string
	}{
		{name: "empty keeps all", pattern: "", want: stepNames(DefaultSteps())},
		{name: "prefix", pattern: "check-*", want: []string{"check-checkbox", "check-radio"}},
		{name: "alternatives", pattern: "{fill-text,select-option}", want: []string{"fill-text", "select-option"}},
		{name: "no match", pattern: "submit-*", expectError: "matches no steps"},
		{name: "bad pattern", pattern: "[", expectError: "invalid step filter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FilterSteps(DefaultSteps(), tt.pattern)
			if tt.expectError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, stepNames(got))
		})
	}
}

func TestStepsFromConfig(t *testing.T) {
	two := 2
	steps, err := StepsFromConfig([]config.StepConfig{
		{Name: "read", Selector: "id:id-example-1"},
		{Name: "fill", Selector: "css:#text-example-1-id", Action: "fill", Value: "hi"},
		{Name: "pick", Selector: "id:select-example-1-id", Action: "select", Option: &config.OptionConfig{Index: &two}},
	})
	require.NoError(t, err)
	require.Len(t, steps, 3)

	assert.Equal(t, ActionRead, steps[0].Action)
	assert.Equal(t, browser.ByID("id-example-1"), steps[0].Selector)
	assert.Equal(t, "hi", steps[1].Value)
	assert.Equal(t, browser.OptionIndex(2), steps[2].Option)

	_, err = StepsFromConfig([]config.StepConfig{{Name: "bad", Selector: "id:x", Action: "hover"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown action")

	_, err = StepsFromConfig([]config.StepConfig{{Name: "bad", Selector: ""}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `step "bad"`)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "not-started", StateNotStarted.String())
	assert.Equal(t, "interacting", StateInteracting.String())
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "state(42)", State(42).String())
}

func TestReporter(t *testing.T) {
	var buf bytes.Buffer
	rep := NewReporter(&buf, false)

	require.NoError(t, rep.Markup(`<p id="x">y</p>`))
	require.NoError(t, rep.Value("Selected option value", "alfa"))
	assert.Equal(t, "<p id=\"x\">y</p>\nSelected option value: alfa\n", buf.String())
}

func TestReporter_Color(t *testing.T) {
	var buf bytes.Buffer
	rep := NewReporter(&buf, true)

	require.NoError(t, rep.Markup(`<p id="x">y</p>`))
	out := buf.String()
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "id")
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("\n")))
}
