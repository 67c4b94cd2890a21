package handlers

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"chemvista/internal/catalog"
	"chemvista/internal/eventbus"
	"chemvista/internal/ui/state"
)

// EventHandler handles domain events and updates state
type EventHandler struct {
	state    *state.AppState
	catalogs *catalog.Store
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState, catalogs *catalog.Store) *EventHandler {
	return &EventHandler{
		state:    appState,
		catalogs: catalogs,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.CatalogReloadedEvent:
		// The store already holds the new catalog
		h.state.SetCatalog(h.catalogs.Current())
		h.state.StatusMessage = fmt.Sprintf("Reloaded %d elements from %s", e.Elements, e.Path)

	case eventbus.ErrorEvent:
		h.state.StatusMessage = fmt.Sprintf("Error: %s", e.Message)
	}
	return nil
}
