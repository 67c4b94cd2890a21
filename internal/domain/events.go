package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventError               EventType = "Error"
	EventSearchFailed        EventType = "SearchFailed"
	EventSuggestionsRendered EventType = "SuggestionsRendered"
	EventNavigated           EventType = "Navigated"
	EventThemeChanged        EventType = "ThemeChanged"
	EventCatalogReloaded     EventType = "CatalogReloaded"
	EventConfigLoaded        EventType = "ConfigLoaded"
	EventConfigSaved         EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// SearchFailedEvent is emitted when a suggestion fetch fails. It never
// reaches the screen; subscribers only log it.
type SearchFailedEvent struct {
	Query string
	Seq   uint64
	Err   error
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// SuggestionsRenderedEvent is emitted after the dropdown content is replaced
type SuggestionsRenderedEvent struct {
	Query string
	Count int
}

func (e SuggestionsRenderedEvent) Type() EventType { return EventSuggestionsRendered }

// NavigatedEvent is emitted when the user leaves for another page
type NavigatedEvent struct {
	Path string
}

func (e NavigatedEvent) Type() EventType { return EventNavigated }

// ThemeChangedEvent is emitted when the display theme is toggled
type ThemeChangedEvent struct {
	Theme Theme
}

func (e ThemeChangedEvent) Type() EventType { return EventThemeChanged }

// CatalogReloadedEvent is emitted when the element data file changed on disk
type CatalogReloadedEvent struct {
	Path     string
	Elements int
}

func (e CatalogReloadedEvent) Type() EventType { return EventCatalogReloaded }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
