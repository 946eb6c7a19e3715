package search

import (
	"log"

	"codediff/internal/domain"
	coresearch "codediff/internal/search"
	"codediff/internal/ui/services/events"
)

// Service holds the live search state: the query, its options, the global
// match list and the active match index
type Service struct {
	state      *State
	bus        events.EventBus
	docsFn     func() []domain.Document // supplies the current collection
	navigateFn func(domain.Match)       // reveals the active match in its pane
}

// NewService creates a new search service
func NewService(bus events.EventBus) *Service {
	return &Service{
		state: &State{
			Query:  "",
			Active: domain.NoActiveMatch,
		},
		bus: bus,
	}
}

// SetDocumentsFunction sets the function supplying the document collection
func (s *Service) SetDocumentsFunction(fn func() []domain.Document) {
	s.docsFn = fn
}

// SetNavigateFunction sets the function that reveals a match on screen
func (s *Service) SetNavigateFunction(fn func(domain.Match)) {
	s.navigateFn = fn
}

// SetQuery starts a new search with the current options
func (s *Service) SetQuery(query string) {
	if query == s.state.Query {
		return // Same search
	}

	s.state.Query = query
	s.bus.Publish(SearchStartedEvent{Query: query})

	if query == "" {
		s.clearMatches()
		return
	}

	s.Recompute()
}

// SetOptions changes the find options and reruns the search
func (s *Service) SetOptions(opts domain.FindOptions) {
	if opts == s.state.Options {
		return
	}
	s.state.Options = opts
	s.Recompute()
}

// Query returns the current search query
func (s *Service) Query() string {
	return s.state.Query
}

// Options returns the current find options
func (s *Service) Options() domain.FindOptions {
	return s.state.Options
}

// Matches returns the current global match list
func (s *Service) Matches() []domain.Match {
	return s.state.Matches
}

// MatchCount returns the number of matches
func (s *Service) MatchCount() int {
	return len(s.state.Matches)
}

// ActiveIndex returns the active match index, or domain.NoActiveMatch
func (s *Service) ActiveIndex() int {
	return s.state.Active
}

// ActiveMatch returns the active match if there is one
func (s *Service) ActiveMatch() (domain.Match, bool) {
	if s.state.Active == domain.NoActiveMatch || s.state.Active >= len(s.state.Matches) {
		return domain.Match{}, false
	}
	return s.state.Matches[s.state.Active], true
}

// NavigateNext moves to the next match, wrapping at the end
func (s *Service) NavigateNext() {
	s.navigate(coresearch.Next(s.state.Active, len(s.state.Matches)))
}

// NavigatePrevious moves to the previous match, wrapping at the start
func (s *Service) NavigatePrevious() {
	s.navigate(coresearch.Prev(s.state.Active, len(s.state.Matches)))
}

// Clear drops the query and the match list
func (s *Service) Clear() {
	s.state.Query = ""
	s.clearMatches()
}

// Recompute rebuilds the match list from the current documents. Called after
// every text mutation and every query/options change; offsets computed before
// a mutation are never reused.
func (s *Service) Recompute() {
	if s.docsFn == nil || s.state.Query == "" {
		return
	}

	old := s.state.Matches
	s.state.Matches = coresearch.ComputeMatches(s.docsFn(), s.state.Query, s.state.Options)

	if len(s.state.Matches) == 0 {
		s.state.Active = domain.NoActiveMatch
	} else if matchesChanged(old, s.state.Matches) || s.state.Active >= len(s.state.Matches) || s.state.Active < 0 {
		s.state.Active = 0
	}

	log.Printf("Search completed for '%s': found %d matches", s.state.Query, len(s.state.Matches))

	s.bus.Publish(SearchCompletedEvent{
		Query:      s.state.Query,
		MatchCount: len(s.state.Matches),
	})
}

// Internal methods
func (s *Service) navigate(newActive int) {
	if len(s.state.Matches) == 0 || newActive == domain.NoActiveMatch {
		return
	}

	oldActive := s.state.Active
	s.state.Active = newActive

	if s.navigateFn != nil {
		s.navigateFn(s.state.Matches[newActive])
	}

	s.bus.Publish(SearchNavigatedEvent{
		OldActive: oldActive,
		NewActive: newActive,
		Match:     s.state.Matches[newActive],
	})
}

func (s *Service) clearMatches() {
	s.state.Matches = nil
	s.state.Active = domain.NoActiveMatch

	s.bus.Publish(SearchClearedEvent{})
}

func matchesChanged(old, new []domain.Match) bool {
	if len(old) != len(new) {
		return true
	}
	for i := range old {
		if old[i] != new[i] {
			return true
		}
	}
	return false
}
