package browser

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// inspectScript classifies the resolved element in one round trip.
const inspectScript = `(el) => {
  const tag = el.tagName.toLowerCase();
  const type = (el.getAttribute('type') || '').toLowerCase();
  const info = { tag, type, editable: false, checkable: false, selectable: false, options: [] };
  const nonText = ['checkbox', 'radio', 'submit', 'button', 'reset', 'image', 'file', 'hidden', 'range', 'color'];
  if (el.isContentEditable) {
    info.editable = true;
  } else if (tag === 'textarea') {
    info.editable = !el.disabled && !el.readOnly;
  } else if (tag === 'input') {
    if (type === 'checkbox' || type === 'radio') {
      info.checkable = !el.disabled;
    } else if (!nonText.includes(type)) {
      info.editable = !el.disabled && !el.readOnly;
    }
  } else if (tag === 'select') {
    info.selectable = !el.disabled;
    info.options = Array.from(el.options).map((o, i) => ({ index: i, value: o.value, label: o.label }));
  }
  return info;
}`

const outerHTMLScript = `(el) => el.outerHTML`

// ElementInfo is what the page reports about a resolved element.
type ElementInfo struct {
	Tag        string   `json:"tag"`
	Type       string   `json:"type"`
	Editable   bool     `json:"editable"`
	Checkable  bool     `json:"checkable"`
	Selectable bool     `json:"selectable"`
	Options    []Option `json:"options"`
}

// Option is one entry of a select control.
type Option struct {
	Index int    `json:"index"`
	Value string `json:"value"`
	Label string `json:"label"`
}

// decodeElementInfo converts the untyped evaluation result into ElementInfo.
func decodeElementInfo(raw interface{}) (ElementInfo, error) {
	var info ElementInfo
	data, err := json.Marshal(raw)
	if err != nil {
		return info, fmt.Errorf("failed to encode element info: %w", err)
	}
	if err := json.Unmarshal(data, &info); err != nil {
		return info, fmt.Errorf("failed to decode element info: %w", err)
	}
	return info, nil
}

// OptionChoice picks one option of a select control. Exactly one of
// Index, Value or Label is consulted, in that order.
type OptionChoice struct {
	Index *int
	Value string
	Label string
}

// OptionIndex chooses the option at a 0-based position.
func OptionIndex(i int) OptionChoice { return OptionChoice{Index: &i} }

// OptionValue chooses the option whose value attribute equals v.
func OptionValue(v string) OptionChoice { return OptionChoice{Value: v} }

// OptionLabel chooses the option whose visible label equals l.
func OptionLabel(l string) OptionChoice { return OptionChoice{Label: l} }

func (c OptionChoice) String() string {
	switch {
	case c.Index != nil:
		return "index=" + strconv.Itoa(*c.Index)
	case c.Value != "":
		return "value=" + c.Value
	case c.Label != "":
		return "label=" + c.Label
	}
	return "none"
}

// MatchOption returns the index of the option chosen by c, or
// ErrOptionNotFound when nothing matches.
func MatchOption(options []Option, c OptionChoice) (int, error) {
	switch {
	case c.Index != nil:
		if *c.Index >= 0 && *c.Index < len(options) {
			return *c.Index, nil
		}
	case c.Value != "":
		for i, o := range options {
			if o.Value == c.Value {
				return i, nil
			}
		}
	case c.Label != "":
		for i, o := range options {
			if o.Label == c.Label {
				return i, nil
			}
		}
	}
	return -1, fmt.Errorf("%w: %s among %d options", ErrOptionNotFound, c, len(options))
}
