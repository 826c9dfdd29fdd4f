package ui

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/litlifesoftware/lit-ui-kit/internal/agegate"
	"github.com/litlifesoftware/lit-ui-kit/internal/config"
)

// ScreenTexts holds the user-facing strings of the age-confirmation screen.
// Every field is independently overridable; empty fields fall back to the
// kit's localized defaults.
type ScreenTexts struct {
	Title        string
	Subtitle     string
	ValidMsg     string
	InvalidMsg   string
	SetLabel     string
	SubmitLabel  string
	YourAgeLabel string
	ValidLabel   string
}

// ScreenOptions configures a new age-confirmation screen.
type ScreenOptions struct {
	// MinimumAge is the requirement in whole years.
	// Non-positive values fall back to config.DefaultMinimumAge.
	MinimumAge int

	// Texts overrides individual strings for host-side localization.
	Texts ScreenTexts
}

// AgeConfirmScreen is the onboarding component gating entry on a minimum
// age. It owns a transient submission gate (cleared on re-entry via Reset),
// renders the derived age and validity, and defers outcome presentation to
// the host through callbacks.
type AgeConfirmScreen struct {
	// OnValidSubmit is invoked when the user submits with a valid age.
	OnValidSubmit func()

	// OnInvalidSubmit is invoked when the user submits while the date is
	// missing or below the requirement. When nil, the screen sends a
	// warning notification through the Fyne app instead.
	OnInvalidSubmit func(agegate.Result)

	kit    *Kit
	gate   *agegate.Gate
	texts  ScreenTexts
	window fyne.Window

	titleLabel  *widget.Label
	subLabel    *widget.Label
	ageRow      *fyne.Container
	ageValue    *widget.Label
	validBadge  *widget.Label
	statusLabel *widget.Label
	setBtn      *widget.Button
	submitBtn   *widget.Button

	content fyne.CanvasObject
}

// NewAgeConfirmScreen builds the screen. The window is the parent for the
// date-picker dialog; it may be nil when the host drives SetDate directly.
func (kit *Kit) NewAgeConfirmScreen(w fyne.Window, opts ScreenOptions) *AgeConfirmScreen {
	s := &AgeConfirmScreen{
		kit:    kit,
		gate:   agegate.NewGate(opts.MinimumAge),
		texts:  opts.Texts,
		window: w,
	}
	s.gate.Clock = kit.Clock

	s.gate.OnValidSubmit = func() {
		if s.OnValidSubmit != nil {
			s.OnValidSubmit()
		}
	}
	s.gate.OnInvalidSubmit = func(res agegate.Result) {
		if s.OnInvalidSubmit != nil {
			s.OnInvalidSubmit(res)
			return
		}
		s.kit.notifyDenied()
	}

	s.build()
	s.refresh()
	return s
}

// Content returns the screen layout for embedding in a window or container.
func (s *AgeConfirmScreen) Content() fyne.CanvasObject {
	return s.content
}

// Gate exposes the underlying submission gate, mainly for hosts that want
// to branch on Submit outcomes themselves.
func (s *AgeConfirmScreen) Gate() *agegate.Gate {
	return s.gate
}

// SetDate records a confirmed birth date and refreshes the derived display.
// It is the inbound hook for external date-picker collaborators.
func (s *AgeConfirmScreen) SetDate(d time.Time) {
	s.gate.SetDate(d)
	s.refresh()
}

// Reset clears the transient selection. Hosts call this on screen re-entry;
// the birth date is never carried across sessions.
func (s *AgeConfirmScreen) Reset() {
	s.gate.Clear()
	s.refresh()
}

// Submit runs the submission gate and returns the explicit outcome after
// the matching callback has fired.
func (s *AgeConfirmScreen) Submit() agegate.Outcome {
	return s.gate.Submit()
}

func (s *AgeConfirmScreen) build() {
	s.titleLabel = widget.NewLabel(s.text(s.texts.Title, config.TKeyScreenTitle, config.FallbackScreenTitle))
	s.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	s.titleLabel.Alignment = fyne.TextAlignCenter

	s.subLabel = widget.NewLabel(s.text(s.texts.Subtitle, config.TKeyScreenSub, config.FallbackScreenSub))
	s.subLabel.Wrapping = fyne.TextWrapWord
	s.subLabel.Alignment = fyne.TextAlignCenter

	s.ageValue = widget.NewLabel("")
	s.ageValue.TextStyle = fyne.TextStyle{Bold: true}

	s.validBadge = widget.NewLabel(s.text(s.texts.ValidLabel, config.TKeyLblValid, config.FallbackLblValid))
	s.validBadge.TextStyle = fyne.TextStyle{Bold: true}

	ageCaption := widget.NewLabel(s.text(s.texts.YourAgeLabel, config.TKeyLblYourAge, config.FallbackLblYourAge))
	s.ageRow = container.NewHBox(ageCaption, s.ageValue, s.validBadge)

	s.statusLabel = widget.NewLabel("")
	s.statusLabel.Wrapping = fyne.TextWrapWord
	s.statusLabel.Alignment = fyne.TextAlignCenter

	s.setBtn = widget.NewButtonWithIcon(
		s.text(s.texts.SetLabel, config.TKeyBtnSet, config.FallbackBtnSet),
		theme.MoreHorizontalIcon(),
		s.showPicker,
	)

	s.submitBtn = widget.NewButtonWithIcon(
		s.text(s.texts.SubmitLabel, config.TKeyBtnSubmit, config.FallbackBtnSubmit),
		theme.ConfirmIcon(),
		func() { s.Submit() },
	)
	s.submitBtn.Importance = widget.HighImportance

	s.content = container.NewVBox(
		s.titleLabel,
		s.subLabel,
		widget.NewSeparator(),
		container.NewCenter(s.ageRow),
		s.statusLabel,
		container.NewGridWithColumns(config.LayoutColumnsDouble, s.setBtn, s.submitBtn),
	)
}

// refresh re-derives the validation result and updates the age row and
// status message. Validity is always recomputed, never cached.
func (s *AgeConfirmScreen) refresh() {
	res := s.gate.Result()
	_, hasDate := s.gate.BirthDate()

	s.ageValue.SetText(strconv.Itoa(res.AgeYears))

	if res.Valid {
		s.validBadge.Show()
		s.statusLabel.SetText(s.validMsg())
	} else {
		s.validBadge.Hide()
		if hasDate {
			s.statusLabel.SetText(s.invalidMsg())
		} else {
			s.statusLabel.SetText("")
		}
	}
}

// showPicker opens the date entry dialog and forwards a confirmed pick to
// SetDate. Dismissal leaves the state untouched.
func (s *AgeConfirmScreen) showPicker() {
	if s.window == nil {
		return
	}

	entry := NewDateEntry(
		s.kit.GetMsg(config.TKeyLblYear),
		s.kit.GetMsg(config.TKeyLblMonth),
		s.kit.GetMsg(config.TKeyLblDay),
	)
	entry.ErrInvalid = errors.New(s.kit.GetMsg(config.TKeyErrDateInvalid))

	if d, ok := s.gate.BirthDate(); ok {
		entry.SetDate(d)
	}

	dialog.ShowCustomConfirm(
		s.kit.GetMsg(config.TKeyDlgPickTitle),
		s.text(s.texts.SetLabel, config.TKeyBtnSet, config.FallbackBtnSet),
		s.kit.GetMsg(config.TKeyBtnCancel),
		entry.Content(),
		func(ok bool) {
			if !ok {
				return
			}
			d, err := entry.Date()
			if err != nil {
				dialog.ShowError(err, s.window)
				return
			}
			s.SetDate(d)
		},
		s.window,
	)
}

// text resolves a screen string: host override first, then the localized
// default, then the built-in fallback.
func (s *AgeConfirmScreen) text(override, key, fallback string) string {
	if override != "" {
		return override
	}
	if msg := s.kit.GetMsg(key); msg != key {
		return msg
	}
	return fallback
}

func (s *AgeConfirmScreen) validMsg() string {
	return s.text(s.texts.ValidMsg, config.TKeyMsgAgeValid, config.FallbackMsgAgeValid)
}

func (s *AgeConfirmScreen) invalidMsg() string {
	if s.texts.InvalidMsg != "" {
		return s.texts.InvalidMsg
	}
	req := s.gate.Requirement()
	if s.kit.Localizer != nil {
		msg, err := s.kit.Localizer.Localize(&i18n.LocalizeConfig{
			MessageID:    config.TKeyMsgAgeInvalid,
			TemplateData: map[string]interface{}{"Age": req},
		})
		if err == nil && msg != "" {
			return msg
		}
	}
	return fmt.Sprintf(config.FallbackMsgAgeInvalid, req)
}

// notifyDenied is the default invalid-submit surface: a system notification
// through the Fyne app.
func (kit *Kit) notifyDenied() {
	msg := kit.GetMsg(config.TKeyNotifDenied)
	if msg == config.TKeyNotifDenied {
		msg = config.FallbackNotifDenied
	}
	kit.App.SendNotification(fyne.NewNotification(config.FallbackNotifTitle, msg))
}
