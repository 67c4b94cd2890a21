package ui

import (
	"chemvista/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// noticeExpiredMsg clears the notice shown under generation gen
type noticeExpiredMsg struct {
	gen uint64
}

// modalPhaseMsg completes the modal phase started under generation gen
type modalPhaseMsg struct {
	gen uint64
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}
