package ui

import (
	"errors"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"github.com/litlifesoftware/lit-ui-kit/internal/config"
)

// DigitEntry is a custom Entry widget that only accepts numeric input.
// It embeds widget.Entry to inherit all standard behavior.
type DigitEntry struct {
	widget.Entry
}

// NewDigitEntry creates a new instance of DigitEntry.
func NewDigitEntry() *DigitEntry {
	entry := &DigitEntry{}
	entry.ExtendBaseWidget(entry)
	return entry
}

// TypedRune intercepts text input events.
// It filters characters to allow only digits (0-9).
func (e *DigitEntry) TypedRune(r rune) {
	if r >= '0' && r <= '9' {
		e.Entry.TypedRune(r)
	}
	// Ignore non-numeric characters.
	// Note: Shortcuts like Ctrl+V (Paste) are handled by TypedShortcut/TypedKey,
	// so non-numeric data could still be pasted. Date() validates that case.
}

// Keyboard overrides the default keyboard type.
// This ensures that on mobile devices, a numeric keypad is shown.
func (e *DigitEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}

// DateEntry combines three digit-only fields (year, month, day) into a
// single birth-date input. It is the fallback picker used when no platform
// date dialog is available, and the collaborator the age-confirmation
// screen opens behind its "set" action.
type DateEntry struct {
	YearEntry  *DigitEntry
	MonthEntry *DigitEntry
	DayEntry   *DigitEntry

	// ErrInvalid is the error Date returns for impossible dates. Hosts
	// set it to a localized message; the default is a technical one.
	ErrInvalid error

	content fyne.CanvasObject
}

// NewDateEntry creates the composite with the given field labels.
func NewDateEntry(yearLabel, monthLabel, dayLabel string) *DateEntry {
	d := &DateEntry{
		YearEntry:  NewDigitEntry(),
		MonthEntry: NewDigitEntry(),
		DayEntry:   NewDigitEntry(),
		ErrInvalid: errors.New(config.ErrDateParse),
	}

	d.YearEntry.PlaceHolder = yearLabel
	d.MonthEntry.PlaceHolder = monthLabel
	d.DayEntry.PlaceHolder = dayLabel

	d.content = container.NewGridWithColumns(config.LayoutColumnsTriple,
		d.YearEntry, d.MonthEntry, d.DayEntry)
	return d
}

// Content returns the laid-out fields for embedding in dialogs or forms.
func (d *DateEntry) Content() fyne.CanvasObject {
	return d.content
}

// SetDate prefills the fields from an existing selection.
func (d *DateEntry) SetDate(t time.Time) {
	d.YearEntry.SetText(strconv.Itoa(t.Year()))
	d.MonthEntry.SetText(strconv.Itoa(int(t.Month())))
	d.DayEntry.SetText(strconv.Itoa(t.Day()))
}

// Date parses the three fields into a calendar date. Impossible dates
// (Feb 30, month 13, pasted garbage) return ErrInvalid rather than being
// silently normalized.
func (d *DateEntry) Date() (time.Time, error) {
	year, err := strconv.Atoi(d.YearEntry.Text)
	if err != nil || year < config.MinBirthYear {
		return time.Time{}, d.ErrInvalid
	}
	month, err := strconv.Atoi(d.MonthEntry.Text)
	if err != nil || month < config.MinMonth || month > config.MaxMonth {
		return time.Time{}, d.ErrInvalid
	}
	day, err := strconv.Atoi(d.DayEntry.Text)
	if err != nil || day < config.MinDay || day > config.MaxDay {
		return time.Time{}, d.ErrInvalid
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)

	// time.Date normalizes overflow (Feb 30 -> Mar 2). A round-trip
	// mismatch therefore means the components were not a real date.
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, d.ErrInvalid
	}
	return t, nil
}
