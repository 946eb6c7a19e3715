package ui

import (
	"time"

	"codediff/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// tickMsg is sent on a timer for animations
type tickMsg time.Time

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// deferredFuncMsg carries work the scheduler routed through the message
// loop so it runs between updates
type deferredFuncMsg struct {
	fn func()
}

// quitMsg signals that the application should quit
type quitMsg struct {
	saveConfig bool
}
