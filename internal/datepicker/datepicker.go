// Package datepicker implements the reveal-date entry dialog as a plain
// state machine so the terminal UI stays a thin shell around it.
package datepicker

import (
	"time"

	"github.com/capsy-labs/capsy-companion/internal/domain"
	"github.com/capsy-labs/capsy-companion/internal/validate"
)

// Fields are always walked in this order when surfacing an error, so the
// message shown is deterministic.
var fieldOrder = []string{validate.FieldYear, validate.FieldMonth, validate.FieldDay}

var maxLen = map[string]int{
	validate.FieldYear:  4,
	validate.FieldMonth: 2,
	validate.FieldDay:   2,
}

type Model struct {
	values map[string]string
	errors map[string]string
	now    func() time.Time
}

func New() *Model {
	return &Model{
		values: map[string]string{},
		errors: map[string]string{},
		now:    time.Now,
	}
}

// Input replaces a field's value with what the user has typed so far.
// Non-digit input and input past the field's maximum length are silently
// ignored; accepted input is re-validated immediately.
func (m *Model) Input(field, value string) {
	limit, ok := maxLen[field]
	if !ok {
		return
	}
	if !digitsOnly(value) || len(value) > limit {
		return
	}

	m.values[field] = value
	m.errors[field] = validate.Field(field, value)
}

func (m *Model) Value(field string) string {
	return m.values[field]
}

// FirstError returns the first non-empty field error in year, month, day
// order, or "" when all fields are clean.
func (m *Model) FirstError() string {
	for _, f := range fieldOrder {
		if msg := m.errors[f]; msg != "" {
			return msg
		}
	}
	return ""
}

// Confirm re-validates everything and hands back the chosen date when it is
// complete, well-formed, and strictly in the future. On failure the field
// errors are updated and ok is false.
func (m *Model) Confirm() (domain.RevealDate, bool) {
	rd := m.date()

	if !rd.Complete() {
		m.errors = map[string]string{}
		if rd.Year == "" {
			m.errors[validate.FieldYear] = "please enter a year"
		}
		if rd.Month == "" {
			m.errors[validate.FieldMonth] = "please enter a month"
		}
		if rd.Day == "" {
			m.errors[validate.FieldDay] = "please enter a day"
		}
		return domain.RevealDate{}, false
	}

	formatErrs := map[string]string{}
	for _, f := range fieldOrder {
		if msg := validate.Field(f, m.values[f]); msg != "" {
			formatErrs[f] = msg
		}
	}
	if len(formatErrs) > 0 {
		m.errors = formatErrs
		return domain.RevealDate{}, false
	}

	if ok, msg := validate.Date(rd, m.now()); !ok {
		// Whole-date problems are reported on the year field.
		m.errors = map[string]string{validate.FieldYear: msg}
		return domain.RevealDate{}, false
	}

	m.errors = map[string]string{}
	return rd, true
}

func (m *Model) date() domain.RevealDate {
	return domain.RevealDate{
		Year:  m.values[validate.FieldYear],
		Month: m.values[validate.FieldMonth],
		Day:   m.values[validate.FieldDay],
	}
}

func digitsOnly(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
