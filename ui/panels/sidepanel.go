// Package panels provides UI panels for the application.
package panels

import (
	"roomplanner/internal/app"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// SidePanel provides the main side panel with tabbed sections.
type SidePanel struct {
	state     *app.State
	container *container.AppTabs

	// Tab content
	furniturePanel *FurniturePanel
	propertySheet  *PropertySheet
}

// NewSidePanel creates a new side panel.
func NewSidePanel(state *app.State) *SidePanel {
	sp := &SidePanel{state: state}

	sp.furniturePanel = NewFurniturePanel(state)
	sp.propertySheet = NewPropertySheet(state)

	sp.container = container.NewAppTabs(
		container.NewTabItem("Furniture", sp.furniturePanel.Container()),
		container.NewTabItem("Properties", container.NewVScroll(sp.propertySheet.Container())),
	)
	sp.container.SetTabLocation(container.TabLocationTop)

	return sp
}

// Container returns the side panel container.
func (sp *SidePanel) Container() fyne.CanvasObject {
	return sp.container
}

// SetWindow sets the parent window for dialogs opened from the panels.
func (sp *SidePanel) SetWindow(w fyne.Window) {
	sp.furniturePanel.SetWindow(w)
	sp.propertySheet.SetWindow(w)
}
