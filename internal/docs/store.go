// Package docs owns the in-memory document collection. Order is significant:
// the base document is always index 0, new documents are appended at the
// tail, and removal only ever truncates from the tail.
package docs

import (
	"fmt"
	"sync"

	"codediff/internal/domain"
)

// Store is an in-memory ordered document collection
type Store struct {
	mu   sync.RWMutex
	docs []domain.Document
}

// NewStore creates a store seeded with the initial documents. At least two
// are required (the base plus one comparison target), at most four.
func NewStore(initial []domain.Document) (*Store, error) {
	if len(initial) < domain.MinDocuments || len(initial) > domain.MaxDocuments {
		return nil, fmt.Errorf("docs: need between %d and %d documents, got %d",
			domain.MinDocuments, domain.MaxDocuments, len(initial))
	}

	docs := make([]domain.Document, len(initial))
	copy(docs, initial)
	return &Store{docs: docs}, nil
}

// All returns a copy of the collection in order, base first.
func (s *Store) All() []domain.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Document, len(s.docs))
	copy(out, s.docs)
	return out
}

// Base returns the base document.
func (s *Store) Base() domain.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.docs[0]
}

// Get returns the document with the given id.
func (s *Store) Get(id string) (domain.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, d := range s.docs {
		if d.ID == id {
			return d, true
		}
	}
	return domain.Document{}, false
}

// IndexOf returns the position of a document in the collection, -1 if absent.
func (s *Store) IndexOf(id string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i, d := range s.docs {
		if d.ID == id {
			return i
		}
	}
	return -1
}

// Len returns the number of open documents.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// Append adds a document at the tail. Fails when the collection is full.
func (s *Store) Append(doc domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.docs) >= domain.MaxDocuments {
		return fmt.Errorf("docs: collection is full (%d documents)", domain.MaxDocuments)
	}
	s.docs = append(s.docs, doc)
	return nil
}

// RemoveLast removes the tail document and returns it. The base and the
// first comparison target can never be removed.
func (s *Store) RemoveLast() (domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.docs) <= domain.MinDocuments {
		return domain.Document{}, fmt.Errorf("docs: collection is at its minimum (%d documents)", domain.MinDocuments)
	}
	last := s.docs[len(s.docs)-1]
	s.docs = s.docs[:len(s.docs)-1]
	return last, nil
}

// SetText replaces a document's text wholesale.
func (s *Store) SetText(id, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.docs {
		if s.docs[i].ID == id {
			s.docs[i].Text = text
			return nil
		}
	}
	return fmt.Errorf("docs: no document %q", id)
}

// SetTitle renames a document.
func (s *Store) SetTitle(id, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.docs {
		if s.docs[i].ID == id {
			s.docs[i].Title = title
			return nil
		}
	}
	return fmt.Errorf("docs: no document %q", id)
}

// ReplaceAllDocs swaps in an updated collection produced by the replace
// engine. The new collection must contain the same documents in the same
// order; only texts may differ.
func (s *Store) ReplaceAllDocs(updated []domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(updated) != len(s.docs) {
		return fmt.Errorf("docs: collection length changed from %d to %d", len(s.docs), len(updated))
	}
	for i := range updated {
		if updated[i].ID != s.docs[i].ID {
			return fmt.Errorf("docs: document order changed at index %d", i)
		}
	}
	copy(s.docs, updated)
	return nil
}
