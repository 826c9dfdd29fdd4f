package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/litlifesoftware/lit-ui-kit/internal/config"
)

// Footer is a reusable presentational widget: a horizontal gradient band
// with a centered italic caption, meant for the bottom edge of a window.
// It carries no behavior; hosts set the text and place it in a layout.
type Footer struct {
	widget.BaseWidget

	text string
}

// NewFooter creates a footer with the given caption.
func NewFooter(text string) *Footer {
	f := &Footer{text: text}
	f.ExtendBaseWidget(f)
	return f
}

// SetText updates the caption and refreshes the widget.
func (f *Footer) SetText(text string) {
	f.text = text
	f.Refresh()
}

// Text returns the current caption.
func (f *Footer) Text() string {
	return f.text
}

// CreateRenderer implements fyne.Widget.
func (f *Footer) CreateRenderer() fyne.WidgetRenderer {
	background := canvas.NewHorizontalGradient(
		theme.Color(theme.ColorNamePrimary),
		theme.Color(theme.ColorNameBackground),
	)

	label := canvas.NewText(f.text, theme.Color(theme.ColorNameForeground))
	label.Alignment = fyne.TextAlignCenter
	label.TextStyle = fyne.TextStyle{Italic: true}

	return &footerRenderer{
		footer:     f,
		background: background,
		label:      label,
	}
}

// footerRenderer draws the gradient band behind the caption.
type footerRenderer struct {
	footer     *Footer
	background *canvas.LinearGradient
	label      *canvas.Text
}

func (r *footerRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.background.Move(fyne.NewPos(0, 0))

	textSize := r.label.MinSize()
	r.label.Resize(fyne.NewSize(size.Width, textSize.Height))
	r.label.Move(fyne.NewPos(0, (size.Height-textSize.Height)/2))
}

func (r *footerRenderer) MinSize() fyne.Size {
	textSize := r.label.MinSize()
	height := textSize.Height + theme.Padding()*2
	if height < config.FooterMinHeight {
		height = config.FooterMinHeight
	}
	return fyne.NewSize(textSize.Width+theme.Padding()*2, height)
}

func (r *footerRenderer) Refresh() {
	r.label.Text = r.footer.text
	r.label.Color = theme.Color(theme.ColorNameForeground)
	r.background.StartColor = theme.Color(theme.ColorNamePrimary)
	r.background.EndColor = theme.Color(theme.ColorNameBackground)
	canvas.Refresh(r.footer)
}

func (r *footerRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.label}
}

func (r *footerRenderer) Destroy() {}
