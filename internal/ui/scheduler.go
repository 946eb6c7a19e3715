package ui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TeaScheduler routes deferred work through the program's message loop.
// Work handed to Defer runs after the current Update returns, never inside
// it, which is what the scroll-sync guard relies on.
type TeaScheduler struct {
	mu      sync.Mutex
	send    func(tea.Msg)
	backlog []func()
}

func NewTeaScheduler() *TeaScheduler {
	return &TeaScheduler{}
}

// SetProgram attaches the running program and flushes work queued before
// the program existed
func (s *TeaScheduler) SetProgram(p *tea.Program) {
	s.mu.Lock()
	s.send = p.Send
	backlog := s.backlog
	s.backlog = nil
	s.mu.Unlock()

	for _, fn := range backlog {
		p.Send(deferredFuncMsg{fn: fn})
	}
}

func (s *TeaScheduler) Defer(fn func()) {
	s.mu.Lock()
	send := s.send
	if send == nil {
		s.backlog = append(s.backlog, fn)
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	// Defer is usually called from inside Update, where a synchronous
	// Send would deadlock on the program's message channel
	go send(deferredFuncMsg{fn: fn})
}

func (s *TeaScheduler) AfterFunc(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, func() {
		s.Defer(fn)
	})
	return func() { t.Stop() }
}
