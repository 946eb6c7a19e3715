package scrollsync

import "time"

// Viewport is any scrollable pane the coordinator can write into.
type Viewport interface {
	ID() string
	SetScroll(top, left int)
}

// Scheduler abstracts the host event loop: delayed one-shot timers for the
// indicator expiry and deferred execution for the guard release. Production
// uses timers; tests drive a manual fake.
type Scheduler interface {
	// AfterFunc runs fn after d on the host loop and returns a cancel func.
	AfterFunc(d time.Duration, fn func()) (cancel func())
	// Defer runs fn at the next cooperative scheduling point, after the
	// current synchronous work settles.
	Defer(fn func())
}

// DefaultIndicatorDelay is how long the per-pane synced marker stays lit.
const DefaultIndicatorDelay = 400 * time.Millisecond

// Event types
type ScrollSyncedEvent struct {
	SourceID string
	Top      int
	Left     int
	Targets  []string
}

type IndicatorClearedEvent struct{}
