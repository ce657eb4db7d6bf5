package browser

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// Locator is a deferred reference to an element. It holds only the query
// and the owning page; resolution happens inside every action, so it always
// sees the page's current DOM.
type Locator struct {
	sel     Selector
	parent  *Locator
	session *Session
}

// Selector returns the query this locator was built from.
func (l *Locator) Selector() Selector {
	return l.sel
}

// String renders the full selector chain.
func (l *Locator) String() string {
	if l.parent == nil {
		return l.sel.String()
	}
	return l.parent.String() + " >> " + l.sel.String()
}

// Locate returns a locator for elements matching sel inside this one.
func (l *Locator) Locate(sel Selector) *Locator {
	return &Locator{sel: sel, parent: l, session: l.session}
}

// resolve builds the Playwright locator at the moment of use. When several
// elements match, the first one is used unless the session is strict.
func (l *Locator) resolve(op string) (playwright.Locator, error) {
	var loc playwright.Locator
	if l.parent != nil {
		parent, err := l.parent.resolve(op)
		if err != nil {
			return nil, err
		}
		loc = parent.Locator(l.sel.String())
	} else {
		loc = l.session.Page.Locator(l.sel.String())
	}

	if l.session.Strict {
		count, err := loc.Count()
		if err != nil {
			return nil, newError(op, l.String(), ErrElementNotFound, err)
		}
		if count > 1 {
			return nil, newError(op, l.String(), ErrAmbiguousElement, fmt.Errorf("%d matches", count))
		}
	}

	return loc.First(), nil
}

// OuterHTML returns the serialized markup of the resolved element.
func (l *Locator) OuterHTML() (string, error) {
	loc, err := l.resolve("read")
	if err != nil {
		return "", err
	}

	result, err := loc.Evaluate(outerHTMLScript, nil)
	if err != nil {
		return "", elementError("read", l.String(), ErrElementNotFound, err)
	}

	markup, ok := result.(string)
	if !ok {
		return "", newError("read", l.String(), ErrElementNotFound, fmt.Errorf("unexpected result type %T", result))
	}
	return markup, nil
}

// Inspect reports the resolved element's tag and which controls it supports.
func (l *Locator) Inspect() (ElementInfo, error) {
	loc, err := l.resolve("inspect")
	if err != nil {
		return ElementInfo{}, err
	}
	return l.inspect(loc, "inspect")
}

func (l *Locator) inspect(loc playwright.Locator, op string) (ElementInfo, error) {
	raw, err := loc.Evaluate(inspectScript, nil)
	if err != nil {
		return ElementInfo{}, elementError(op, l.String(), ErrElementNotFound, err)
	}
	return decodeElementInfo(raw)
}

// Fill sets the value of an editable control.
func (l *Locator) Fill(value string) error {
	loc, err := l.resolve("fill")
	if err != nil {
		return err
	}

	info, err := l.inspect(loc, "fill")
	if err != nil {
		return err
	}
	if !info.Editable {
		return newError("fill", l.String(), ErrNotEditable, fmt.Errorf("<%s type=%q>", info.Tag, info.Type))
	}

	if err := loc.Fill(value); err != nil {
		return elementError("fill", l.String(), ErrNotEditable, err)
	}
	return nil
}

// Check sets a checkbox or radio to checked.
func (l *Locator) Check() error {
	loc, err := l.resolve("check")
	if err != nil {
		return err
	}

	info, err := l.inspect(loc, "check")
	if err != nil {
		return err
	}
	if !info.Checkable {
		return newError("check", l.String(), ErrNotCheckable, fmt.Errorf("<%s type=%q>", info.Tag, info.Type))
	}

	if err := loc.Check(); err != nil {
		return elementError("check", l.String(), ErrNotCheckable, err)
	}
	return nil
}

// IsChecked reads the checked state of the resolved element.
func (l *Locator) IsChecked() (bool, error) {
	loc, err := l.resolve("is checked")
	if err != nil {
		return false, err
	}

	checked, err := loc.IsChecked()
	if err != nil {
		return false, elementError("is checked", l.String(), ErrNotCheckable, err)
	}
	return checked, nil
}

// InputValue reads the current value of an input, textarea or select.
func (l *Locator) InputValue() (string, error) {
	loc, err := l.resolve("read value")
	if err != nil {
		return "", err
	}

	value, err := loc.InputValue()
	if err != nil {
		return "", elementError("read value", l.String(), ErrNotEditable, err)
	}
	return value, nil
}

// SelectOption chooses one option of a select control and returns the
// values Playwright reports as selected.
func (l *Locator) SelectOption(choice OptionChoice) ([]string, error) {
	loc, err := l.resolve("select")
	if err != nil {
		return nil, err
	}

	info, err := l.inspect(loc, "select")
	if err != nil {
		return nil, err
	}
	if !info.Selectable {
		return nil, newError("select", l.String(), ErrNotSelectable, fmt.Errorf("<%s>", info.Tag))
	}

	index, err := MatchOption(info.Options, choice)
	if err != nil {
		return nil, newError("select", l.String(), ErrOptionNotFound, fmt.Errorf("%s among %d options", choice, len(info.Options)))
	}

	selected, err := loc.SelectOption(playwright.SelectOptionValues{
		Indexes: &[]int{index},
	})
	if err != nil {
		return nil, elementError("select", l.String(), ErrOptionNotFound, err)
	}
	return selected, nil
}
