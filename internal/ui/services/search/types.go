package search

import "codediff/internal/domain"

// State holds search state
type State struct {
	Query   string
	Options domain.FindOptions
	Matches []domain.Match
	Active  int // index into Matches, domain.NoActiveMatch when empty
}

// Event types
type SearchStartedEvent struct {
	Query string
}

type SearchCompletedEvent struct {
	Query      string
	MatchCount int
}

type SearchClearedEvent struct{}

type SearchNavigatedEvent struct {
	OldActive int
	NewActive int
	Match     domain.Match
}
