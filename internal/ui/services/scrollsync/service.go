// Package scrollsync keeps sibling viewports in lockstep. A scroll on one
// pane fans out synchronously to every other registered pane; a re-entrancy
// guard stops the writes from feeding back into the coordinator, and each
// written pane carries a transient "synced" marker until a timer clears it.
package scrollsync

import (
	"sort"
	"sync"
	"time"

	"codediff/internal/ui/services/events"
)

// Service is the scroll synchronization coordinator
type Service struct {
	bus       events.EventBus
	scheduler Scheduler
	delay     time.Duration

	mu              sync.Mutex
	viewports       map[string]Viewport
	order           []string
	guard           bool
	synced          map[string]struct{}
	cancelIndicator func()
	enabled         bool
}

// NewService creates a new scroll sync coordinator
func NewService(bus events.EventBus, scheduler Scheduler, delay time.Duration) *Service {
	if delay <= 0 {
		delay = DefaultIndicatorDelay
	}
	return &Service{
		bus:       bus,
		scheduler: scheduler,
		delay:     delay,
		viewports: make(map[string]Viewport),
		synced:    make(map[string]struct{}),
		enabled:   true,
	}
}

// Register adds a viewport to the fan-out set
func (s *Service) Register(v Viewport) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.viewports[v.ID()]; !ok {
		s.order = append(s.order, v.ID())
	}
	s.viewports[v.ID()] = v
}

// Unregister removes a viewport, e.g. when its pane is closed
func (s *Service) Unregister(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.viewports, id)
	delete(s.synced, id)
	for i, vid := range s.order {
		if vid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// SetEnabled toggles synchronization without dropping registrations
func (s *Service) SetEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = enabled
}

// Enabled reports whether synchronization is on
func (s *Service) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// OnScroll propagates a scroll on sourceID to every sibling viewport.
// Events raised by the writes themselves are swallowed by the guard; the
// guard is released at the next scheduling point rather than immediately so
// re-entrant notifications from the same turn cannot slip through.
func (s *Service) OnScroll(sourceID string, top, left int) {
	s.mu.Lock()

	if s.guard || !s.enabled {
		s.mu.Unlock()
		return
	}
	s.guard = true

	targets := make([]Viewport, 0, len(s.viewports))
	targetIDs := make([]string, 0, len(s.viewports))
	for _, id := range s.order {
		if id == sourceID {
			continue
		}
		targets = append(targets, s.viewports[id])
		targetIDs = append(targetIDs, id)
	}
	for _, id := range targetIDs {
		s.synced[id] = struct{}{}
	}

	// Restart the indicator clock on every propagation
	if s.cancelIndicator != nil {
		s.cancelIndicator()
	}
	s.cancelIndicator = s.scheduler.AfterFunc(s.delay, s.clearIndicators)

	s.mu.Unlock()

	// The writes happen outside the lock but inside the guard window
	for _, v := range targets {
		v.SetScroll(top, left)
	}

	// Releasing is idempotent, so the deferred release needs no cancel
	s.scheduler.Defer(func() {
		s.mu.Lock()
		s.guard = false
		s.mu.Unlock()
	})

	if s.bus != nil {
		s.bus.Publish(ScrollSyncedEvent{SourceID: sourceID, Top: top, Left: left, Targets: targetIDs})
	}
}

// IsSynced reports whether a viewport's synced marker is currently lit
func (s *Service) IsSynced(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.synced[id]
	return ok
}

// SyncedIDs returns the viewports whose markers are lit, in stable order
func (s *Service) SyncedIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(s.synced))
	for id := range s.synced {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (s *Service) clearIndicators() {
	s.mu.Lock()
	s.synced = make(map[string]struct{})
	s.cancelIndicator = nil
	s.mu.Unlock()

	if s.bus != nil {
		s.bus.Publish(IndicatorClearedEvent{})
	}
}

// TimerScheduler is the production Scheduler over the time package.
type TimerScheduler struct{}

func (TimerScheduler) AfterFunc(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// Defer schedules fn after the current turn; a zero-delay timer lands it on
// the next tick of the runtime timer loop.
func (TimerScheduler) Defer(fn func()) {
	time.AfterFunc(0, fn)
}
