package navigation

import (
	"codediff/internal/ui/services/events"
)

// Service owns every pane's scroll offsets, with clamping against the pane's
// row count and the shared viewport height. User scrolls publish events;
// programmatic writes from the sync coordinator stay silent so they cannot
// feed back into it.
type Service struct {
	bus    events.EventBus
	panes  map[string]*PaneScroll
	height int
	rowsFn func(paneID string) int // rendered row count per pane
}

// NewService creates a new navigation service
func NewService(bus events.EventBus) *Service {
	return &Service{
		bus:    bus,
		panes:  make(map[string]*PaneScroll),
		height: 20, // Default, will be updated
	}
}

// SetRowsFunction sets the function to query a pane's row count
func (s *Service) SetRowsFunction(fn func(paneID string) int) {
	s.rowsFn = fn
}

// SetViewportHeight updates the shared pane height
func (s *Service) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	s.height = height
	for id := range s.panes {
		s.clamp(id)
	}
}

// ViewportHeight returns the shared pane height
func (s *Service) ViewportHeight() int {
	return s.height
}

// Offset returns a pane's scroll offsets
func (s *Service) Offset(paneID string) (top, left int) {
	p := s.pane(paneID)
	return p.Top, p.Left
}

// ScrollBy applies a user scroll to a pane and reports the clamped result.
// Publishes a PaneScrolledEvent when the offsets actually moved.
func (s *Service) ScrollBy(paneID string, dTop, dLeft int) (top, left int, moved bool) {
	p := s.pane(paneID)
	oldTop, oldLeft := p.Top, p.Left

	p.Top += dTop
	p.Left += dLeft
	s.clamp(paneID)

	moved = p.Top != oldTop || p.Left != oldLeft
	if moved {
		s.bus.Publish(PaneScrolledEvent{PaneID: paneID, Top: p.Top, Left: p.Left})
	}
	return p.Top, p.Left, moved
}

// SetScroll writes offsets programmatically, e.g. from the sync coordinator.
// Clamped, never published.
func (s *Service) SetScroll(paneID string, top, left int) {
	p := s.pane(paneID)
	p.Top = top
	p.Left = left
	s.clamp(paneID)
}

// ScrollToTop and ScrollToBottom jump a pane to its extremes
func (s *Service) ScrollToTop(paneID string) {
	p := s.pane(paneID)
	if p.Top != 0 || p.Left != 0 {
		p.Top, p.Left = 0, 0
		s.bus.Publish(PaneScrolledEvent{PaneID: paneID, Top: 0, Left: 0})
	}
}

func (s *Service) ScrollToBottom(paneID string) {
	p := s.pane(paneID)
	old := p.Top
	p.Top = s.maxTop(paneID)
	if p.Top != old {
		s.bus.Publish(PaneScrolledEvent{PaneID: paneID, Top: p.Top, Left: p.Left})
	}
}

// EnsureVisible scrolls a pane the minimal amount so the given row is inside
// the viewport
func (s *Service) EnsureVisible(paneID string, row int) {
	p := s.pane(paneID)
	old := p.Top

	if row < p.Top {
		p.Top = row
	} else if row >= p.Top+s.height {
		p.Top = row - s.height + 1
	}
	s.clamp(paneID)

	if p.Top != old {
		s.bus.Publish(PaneScrolledEvent{PaneID: paneID, Top: p.Top, Left: p.Left})
	}
}

// Remove drops a closed pane's state
func (s *Service) Remove(paneID string) {
	delete(s.panes, paneID)
}

// Helper methods
func (s *Service) pane(paneID string) *PaneScroll {
	p, ok := s.panes[paneID]
	if !ok {
		p = &PaneScroll{}
		s.panes[paneID] = p
	}
	return p
}

func (s *Service) maxTop(paneID string) int {
	if s.rowsFn == nil {
		return 0
	}
	max := s.rowsFn(paneID) - s.height
	if max < 0 {
		max = 0
	}
	return max
}

func (s *Service) clamp(paneID string) {
	p := s.pane(paneID)
	if p.Top > s.maxTop(paneID) {
		p.Top = s.maxTop(paneID)
	}
	if p.Top < 0 {
		p.Top = 0
	}
	if p.Left < 0 {
		p.Left = 0
	}
}
