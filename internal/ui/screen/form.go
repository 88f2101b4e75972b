package screen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/budgr/budgr/internal/logging/events"
	"github.com/budgr/budgr/internal/ui/state"
)

// Validation errors shown inline on the purchase form.
var (
	ErrEmptyName   = errors.New("name is required")
	ErrInvalidCost = errors.New("cost must be a whole number")
)

const formHints = "tab/shift+tab field  ←/→ caret  enter next/submit  esc cancel"

var fieldLabels = [FieldCount]string{"Name", "Cost", ""}

const submitLabel = "Submit"

// ParseCost converts the cost field to an integer amount.
func ParseCost(text string) (int64, error) {
	trimmed := strings.TrimSpace(text)
	cost, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCost, trimmed)
	}
	return cost, nil
}

func handlePurchaseForm(s *PurchaseForm, in Input, store Store, r Renderer) (Request, bool) {
	var (
		req Request
		ok  bool
	)
	switch in.Kind {
	case InputFocusNext:
		s.focus(s.Active + 1)
	case InputFocusPrev:
		s.focus(s.Active - 1)
	case InputChar:
		if f := s.activeField(); f != nil && f.Insert(in.Text) {
			s.Err = nil
		}
	case InputBackspace:
		if f := s.activeField(); f != nil && f.Backspace() {
			s.Err = nil
		}
	case InputCursorNext:
		if f := s.activeField(); f != nil {
			f.CaretNext()
		}
	case InputCursorPrev:
		if f := s.activeField(); f != nil {
			f.CaretPrev()
		}
	case InputSubmit:
		if s.Active < FieldSubmit {
			s.focus(s.Active + 1)
			break
		}
		req, ok = s.submit(store)
	case InputCancel:
		req, ok = Pop(), true
	}
	r.Draw(s.layout(store))
	return req, ok
}

// focus moves the active field, clamped to the form without wrapping.
func (s *PurchaseForm) focus(field int) {
	if field < 0 || field >= FieldCount || field == s.Active {
		return
	}
	s.Active = field
	events.Form.Focus(field)
}

func (s *PurchaseForm) activeField() *state.Field {
	if s.Active < 0 || s.Active >= FieldSubmit {
		return nil
	}
	return &s.Fields[s.Active]
}

func (s *PurchaseForm) submit(store Store) (Request, bool) {
	name := strings.TrimSpace(s.Fields[FieldName].Text())
	if name == "" {
		s.fail(FieldName, ErrEmptyName)
		return Request{}, false
	}
	cost, err := ParseCost(s.Fields[FieldCost].Text())
	if err != nil {
		s.fail(FieldCost, err)
		return Request{}, false
	}
	if err := store.AddPurchase(s.LogID, name, cost); err != nil {
		s.fail(FieldSubmit, err)
		return Request{}, false
	}
	s.Err = nil
	events.Form.Submit(string(s.LogID), name, cost)
	return Pop(), true
}

func (s *PurchaseForm) fail(field int, err error) {
	s.Err = err
	s.focus(field)
	events.Form.Invalid(field, err)
}

func (s *PurchaseForm) layout(store Store) FormLayout {
	title := "New purchase"
	if name, ok := logName(store, s.LogID); ok {
		title = fmt.Sprintf("New purchase in %s", name)
	}
	fields := make([]FieldView, 0, FieldCount)
	for i := 0; i < FieldSubmit; i++ {
		before, at, after := s.Fields[i].Split()
		fields = append(fields, FieldView{
			Label:  fieldLabels[i],
			Before: before,
			At:     at,
			After:  after,
			Active: s.Active == i,
		})
	}
	fields = append(fields, FieldView{
		Label:  submitLabel,
		Before: submitLabel,
		Active: s.Active == FieldSubmit,
		Button: true,
	})
	var errText string
	if s.Err != nil {
		errText = s.Err.Error()
	}
	return FormLayout{Title: title, Fields: fields, Err: errText, Hints: formHints}
}
