package datepicker

import (
	"testing"
	"time"

	"github.com/capsy-labs/capsy-companion/internal/validate"
)

func fixedNow() time.Time {
	return time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
}

func newFixed() *Model {
	m := New()
	m.now = fixedNow
	return m
}

func TestInput_RejectsNonDigits(t *testing.T) {
	m := newFixed()
	m.Input(validate.FieldYear, "20a")
	if got := m.Value(validate.FieldYear); got != "" {
		t.Errorf("non-digit input accepted: %q", got)
	}
}

func TestInput_EnforcesMaxLength(t *testing.T) {
	m := newFixed()
	m.Input(validate.FieldYear, "2030")
	m.Input(validate.FieldYear, "20301")
	if got := m.Value(validate.FieldYear); got != "2030" {
		t.Errorf("year = %q, want the over-long input rejected", got)
	}

	m.Input(validate.FieldMonth, "123")
	if got := m.Value(validate.FieldMonth); got != "" {
		t.Errorf("month = %q, want 3 digit input rejected", got)
	}
}

func TestInput_ValidatesEachChange(t *testing.T) {
	m := newFixed()
	m.Input(validate.FieldMonth, "13")
	if m.FirstError() == "" {
		t.Error("expected an error for month 13")
	}
	m.Input(validate.FieldMonth, "1")
	// Partial years still error until 4 digits are present.
	m.Input(validate.FieldYear, "20")
	if m.FirstError() == "" {
		t.Error("expected an error for a 2 digit year")
	}
}

func TestFirstError_FixedOrder(t *testing.T) {
	m := newFixed()
	m.Input(validate.FieldDay, "32")
	m.Input(validate.FieldYear, "20")
	// Both year and day carry errors; year wins because the walk order is
	// year, month, day.
	if got := m.FirstError(); got != "year must be a 4 digit number" {
		t.Errorf("FirstError() = %q", got)
	}
}

func TestConfirm_MissingFields(t *testing.T) {
	m := newFixed()
	m.Input(validate.FieldYear, "2030")

	if _, ok := m.Confirm(); ok {
		t.Fatal("Confirm succeeded with missing month and day")
	}
	if m.errors[validate.FieldMonth] != "please enter a month" {
		t.Errorf("month error = %q", m.errors[validate.FieldMonth])
	}
	if m.errors[validate.FieldDay] != "please enter a day" {
		t.Errorf("day error = %q", m.errors[validate.FieldDay])
	}
	if m.errors[validate.FieldYear] != "" {
		t.Errorf("year error = %q, want none", m.errors[validate.FieldYear])
	}
}

func TestConfirm_PastDate(t *testing.T) {
	m := newFixed()
	m.Input(validate.FieldYear, "2020")
	m.Input(validate.FieldMonth, "1")
	m.Input(validate.FieldDay, "1")

	if _, ok := m.Confirm(); ok {
		t.Fatal("Confirm accepted a past date")
	}
	if got := m.FirstError(); got != "please pick a future date" {
		t.Errorf("FirstError() = %q", got)
	}
}

func TestConfirm_Success(t *testing.T) {
	m := newFixed()
	m.Input(validate.FieldYear, "2027")
	m.Input(validate.FieldMonth, "3")
	m.Input(validate.FieldDay, "14")

	rd, ok := m.Confirm()
	if !ok {
		t.Fatalf("Confirm failed: %q", m.FirstError())
	}
	if rd.Year != "2027" || rd.Month != "3" || rd.Day != "14" {
		t.Errorf("unexpected date: %+v", rd)
	}
	if m.FirstError() != "" {
		t.Errorf("errors left behind: %q", m.FirstError())
	}
}
