// Package ui provides the reusable Fyne components of the kit: the
// age-confirmation screen, the gradient footer, and the digit-only date
// entry, together with the localization plumbing they share.
package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/litlifesoftware/lit-ui-kit/internal/agegate"
	"github.com/litlifesoftware/lit-ui-kit/internal/config"
)

// Kit encapsulates the shared UI state: the Fyne app, preferences, and the
// translation bundle the components draw their default texts from.
type Kit struct {
	App         fyne.App
	Window      fyne.Window
	Preferences fyne.Preferences
	I18nBundle  *i18n.Bundle
	Localizer   *i18n.Localizer
	Ctx         context.Context

	Clock agegate.Clock // Injected clock for testability

	SupportedLanguages []string
}

// NewKit constructs the component kit and wires dependencies.
func NewKit(a fyne.App, ctx context.Context) *Kit {
	return &Kit{
		App:                a,
		Preferences:        a.Preferences(),
		Ctx:                ctx,
		Clock:              agegate.RealClock{}, // Default to real clock in production
		SupportedLanguages: config.SupportedLanguages,
	}
}

// Run launches the demo window and blocks until it closes.
func (kit *Kit) Run() {
	kit.SetupI18n()

	w := kit.App.NewWindow(kit.GetMsg(config.TKeyWinTitle))
	kit.Window = w
	w.Resize(fyne.NewSize(config.DemoWindowWidth, config.DemoWindowHeight))
	w.SetContent(kit.buildDemoContent(w))

	// Watch for context cancellation to quit the UI gracefully.
	go func() {
		<-kit.Ctx.Done()
		slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompUI)
		kit.App.Quit()
	}()

	w.ShowAndRun()
}

// buildDemoContent assembles the showcase layout: the age-confirmation
// screen above the footer, with a language selector and a vCard import
// button exercising the prefill path.
func (kit *Kit) buildDemoContent(w fyne.Window) fyne.CanvasObject {
	minAge := kit.Preferences.IntWithFallback(config.PrefMinimumAge, config.DefaultMinimumAge)

	screen := kit.NewAgeConfirmScreen(w, ScreenOptions{MinimumAge: minAge})
	screen.OnValidSubmit = func() {
		kit.App.SendNotification(fyne.NewNotification(
			config.AppName, kit.GetMsg(config.TKeyNotifGranted)))
	}

	importBtn := widget.NewButton(kit.GetMsg(config.TKeyBtnImport), func() {
		kit.showImportDialog(w, screen)
	})

	langSelect := widget.NewSelect(kit.SupportedLanguages, func(lang string) {
		if lang == kit.Preferences.String(config.PrefLanguage) {
			return
		}
		kit.Preferences.SetString(config.PrefLanguage, lang)
		kit.UpdateLocalizer()
		// Rebuild so every component picks up the new language.
		w.SetTitle(kit.GetMsg(config.TKeyWinTitle))
		w.SetContent(kit.buildDemoContent(w))
	})
	langSelect.SetSelected(kit.Preferences.StringWithFallback(config.PrefLanguage, config.DefaultLanguage))

	itemLang := widget.NewFormItem(kit.GetMsg(config.TKeyLblLanguage), langSelect)
	itemLang.HintText = kit.GetMsg(config.TKeyHelpLanguage)

	footer := NewFooter(kit.FooterText())

	return container.NewBorder(
		nil,
		footer,
		nil,
		nil,
		container.NewPadded(container.NewVBox(
			screen.Content(),
			importBtn,
			widget.NewSeparator(),
			widget.NewForm(itemLang),
		)),
	)
}

// showImportDialog opens a file picker for contact cards and seeds the
// screen with the first usable birth date.
func (kit *Kit) showImportDialog(w fyne.Window, screen *AgeConfirmScreen) {
	d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil || r == nil {
			return
		}
		defer func() { _ = r.Close() }()

		birth, err := agegate.BirthDateFromVCard(r)
		if err != nil {
			slog.Warn(config.MsgImportFail,
				config.LogKeyComponent, config.CompUI,
				config.LogKeyError, err)

			msg := kit.GetMsg(config.TKeyErrDateInvalid)
			if errors.Is(err, agegate.ErrYearUnknown) {
				msg = kit.GetMsg(config.TKeyErrDateNoYear)
			}
			dialog.ShowError(errors.New(msg), w)
			return
		}

		slog.Info(config.MsgImportOK,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyDOB, birth.Format(config.DateFormatDisplay))
		screen.SetDate(birth)
	}, w)
	d.SetFilter(storage.NewExtensionFileFilter([]string{config.ExtVCF, config.ExtVCard}))
	d.Show()
}

// FooterText returns the localized footer line with the build version.
func (kit *Kit) FooterText() string {
	if kit.Localizer != nil {
		msg, err := kit.Localizer.Localize(&i18n.LocalizeConfig{
			MessageID:    config.TKeyLblFooter,
			TemplateData: map[string]interface{}{"Version": config.Version},
		})
		if err == nil && msg != "" {
			return msg
		}
	}
	return fmt.Sprintf(config.FallbackFooter, config.Version)
}
