package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventDocumentAdded    EventType = "DocumentAdded"
	EventDocumentRemoved  EventType = "DocumentRemoved"
	EventDocumentEdited   EventType = "DocumentEdited"
	EventDocumentRenamed  EventType = "DocumentRenamed"
	EventDiffsRecomputed  EventType = "DiffsRecomputed"
	EventMatchesUpdated   EventType = "MatchesUpdated"
	EventReplaceApplied   EventType = "ReplaceApplied"
	EventSummaryRequested EventType = "SummaryRequested"
	EventSummaryCompleted EventType = "SummaryCompleted"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
	EventError            EventType = "Error"
	EventAppReady         EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// DocumentAddedEvent is emitted when a document is appended to the collection
type DocumentAddedEvent struct {
	Doc Document
}

func (e DocumentAddedEvent) Type() EventType { return EventDocumentAdded }

// DocumentRemovedEvent is emitted when the tail document is removed
type DocumentRemovedEvent struct {
	DocID string
}

func (e DocumentRemovedEvent) Type() EventType { return EventDocumentRemoved }

// DocumentEditedEvent is emitted after any text mutation of a document
type DocumentEditedEvent struct {
	DocID string
}

func (e DocumentEditedEvent) Type() EventType { return EventDocumentEdited }

// DocumentRenamedEvent is emitted when a document title changes
type DocumentRenamedEvent struct {
	DocID    string
	OldTitle string
	NewTitle string
}

func (e DocumentRenamedEvent) Type() EventType { return EventDocumentRenamed }

// DiffsRecomputedEvent is emitted after every diff recomputation pass
type DiffsRecomputedEvent struct {
	Added   int
	Removed int
}

func (e DiffsRecomputedEvent) Type() EventType { return EventDiffsRecomputed }

// MatchesUpdatedEvent is emitted after the match list is rebuilt
type MatchesUpdatedEvent struct {
	Query      string
	MatchCount int
}

func (e MatchesUpdatedEvent) Type() EventType { return EventMatchesUpdated }

// ReplaceAppliedEvent is emitted after a replace operation mutated documents
type ReplaceAppliedEvent struct {
	Query       string
	Replacement string
	DocsChanged int
}

func (e ReplaceAppliedEvent) Type() EventType { return EventReplaceApplied }

// SummaryRequestedEvent asks the summary service for a difference summary
type SummaryRequestedEvent struct {
	Docs []Document
}

func (e SummaryRequestedEvent) Type() EventType { return EventSummaryRequested }

// SummaryCompletedEvent carries the summarizer result. A failed call is
// published with an empty Summary; the UI cannot tell it apart from
// "no summary yet".
type SummaryCompletedEvent struct {
	Summary string
}

func (e SummaryCompletedEvent) Type() EventType { return EventSummaryCompleted }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// AppReadyEvent is emitted when the app is fully initialized
type AppReadyEvent struct {
	DocCount int
}

func (e AppReadyEvent) Type() EventType { return EventAppReady }
