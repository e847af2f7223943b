package views

import (
	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay renders a popup centered within the terminal area
func (pr *PopupRenderer) RenderPopupOverlay(popupContent string, height, width int) string {
	styledPopup := pr.styles.Popup.Render(popupContent)

	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	return lipgloss.Place(width, height,
		lipgloss.Center, lipgloss.Center,
		styledPopup,
		lipgloss.WithWhitespaceChars(" "))
}
