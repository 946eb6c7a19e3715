// Package coordinator wires the UI services together and owns the
// recompute-after-mutate rule: every operation that changes document text,
// the document set, the query or the options rebuilds the diffs and the
// match list before returning control to the update loop.
package coordinator

import (
	"log"
	"strings"
	"time"

	"codediff/internal/diff"
	"codediff/internal/docs"
	"codediff/internal/domain"
	"codediff/internal/eventbus"
	"codediff/internal/replace"
	"codediff/internal/ui/services/events"
	"codediff/internal/ui/services/navigation"
	"codediff/internal/ui/services/scrollsync"
	"codediff/internal/ui/services/search"
)

// Coordinator manages all UI services and their interactions
type Coordinator struct {
	// Services
	Search     *search.Service
	Navigation *navigation.Service
	ScrollSync *scrollsync.Service

	// Dependencies
	bus       events.EventBus
	domainBus eventbus.EventBus
	store     *docs.Store

	// diffs holds each non-base document's edit script against the base,
	// rebuilt wholesale on every text change
	diffs map[string][]domain.DiffLine
}

// NewCoordinator creates a new coordinator with all services
func NewCoordinator(domainBus eventbus.EventBus, bus events.EventBus, store *docs.Store, scheduler scrollsync.Scheduler, indicatorDelay int) *Coordinator {
	c := &Coordinator{
		Search:     search.NewService(bus),
		Navigation: navigation.NewService(bus),
		ScrollSync: scrollsync.NewService(bus, scheduler, msToDuration(indicatorDelay)),
		bus:        bus,
		domainBus:  domainBus,
		store:      store,
		diffs:      make(map[string][]domain.DiffLine),
	}

	c.wireServices()
	c.subscribeToEvents()

	// Initial pass so panes have diffs before the first render
	c.recomputeDiffs()
	for _, doc := range store.All() {
		c.ScrollSync.Register(&paneViewport{id: doc.ID, nav: c.Navigation})
	}

	return c
}

// wireServices connects services with their dependencies
func (c *Coordinator) wireServices() {
	c.Search.SetDocumentsFunction(func() []domain.Document {
		return c.store.All()
	})

	c.Search.SetNavigateFunction(func(m domain.Match) {
		row := c.RowForMatch(m)
		if row >= 0 {
			c.Navigation.EnsureVisible(m.DocID, row)
		}
	})

	c.Navigation.SetRowsFunction(func(paneID string) int {
		return c.RowCount(paneID)
	})
}

// subscribeToEvents sets up event handlers
func (c *Coordinator) subscribeToEvents() {
	// User scrolls fan out through the sync coordinator
	c.bus.Subscribe("navigation.PaneScrolledEvent", func(e interface{}) {
		if event, ok := e.(navigation.PaneScrolledEvent); ok {
			c.ScrollSync.OnScroll(event.PaneID, event.Top, event.Left)
		}
	})

	// Mirror match-list changes onto the domain bus
	c.bus.Subscribe("search.SearchCompletedEvent", func(e interface{}) {
		if event, ok := e.(search.SearchCompletedEvent); ok {
			c.domainBus.Publish(eventbus.MatchesUpdatedEvent{
				Query:      event.Query,
				MatchCount: event.MatchCount,
			})
		}
	})
	c.bus.Subscribe("search.SearchClearedEvent", func(e interface{}) {
		if _, ok := e.(search.SearchClearedEvent); ok {
			c.domainBus.Publish(eventbus.MatchesUpdatedEvent{})
		}
	})
}

// Documents returns the collection in order, base first
func (c *Coordinator) Documents() []domain.Document {
	return c.store.All()
}

// Diff returns a non-base document's edit script against the base
func (c *Coordinator) Diff(docID string) []domain.DiffLine {
	return c.diffs[docID]
}

// RowCount returns the number of rendered rows in a pane: raw lines for the
// base pane, edit-script lines for every other pane
func (c *Coordinator) RowCount(docID string) int {
	if c.store.Base().ID == docID {
		return len(diff.SplitLines(c.store.Base().Text))
	}
	return len(c.diffs[docID])
}

// RecomputeAll rebuilds the diffs and the match list
func (c *Coordinator) RecomputeAll() {
	c.recomputeDiffs()
	c.Search.Recompute()
}

// ApplyReplaceAll substitutes the current query in every document and
// recomputes before returning
func (c *Coordinator) ApplyReplaceAll(replacement string) {
	query := c.Search.Query()
	if query == "" {
		return
	}

	before := c.store.All()
	after := replace.All(before, query, c.Search.Options(), replacement)

	changed := 0
	for i := range after {
		if after[i].Text != before[i].Text {
			changed++
		}
	}
	if changed == 0 {
		return
	}

	if err := c.store.ReplaceAllDocs(after); err != nil {
		log.Printf("Replace all failed: %v", err)
		c.domainBus.Publish(eventbus.ErrorEvent{Message: "Replace all failed", Err: err})
		return
	}

	c.RecomputeAll()
	c.domainBus.Publish(eventbus.ReplaceAppliedEvent{
		Query:       query,
		Replacement: replacement,
		DocsChanged: changed,
	})
}

// ApplyReplaceOne substitutes the active match only
func (c *Coordinator) ApplyReplaceOne(replacement string) {
	m, ok := c.Search.ActiveMatch()
	if !ok {
		return
	}

	doc, ok := c.store.Get(m.DocID)
	if !ok {
		return
	}

	updated, err := replace.One(doc, m, replacement)
	if err != nil {
		log.Printf("Replace one failed: %v", err)
		c.domainBus.Publish(eventbus.ErrorEvent{Message: "Replace failed", Err: err})
		return
	}
	if err := c.store.SetText(doc.ID, updated.Text); err != nil {
		log.Printf("Replace one failed: %v", err)
		c.domainBus.Publish(eventbus.ErrorEvent{Message: "Replace failed", Err: err})
		return
	}

	c.RecomputeAll()
	c.domainBus.Publish(eventbus.ReplaceAppliedEvent{
		Query:       c.Search.Query(),
		Replacement: replacement,
		DocsChanged: 1,
	})
	c.domainBus.Publish(eventbus.DocumentEditedEvent{DocID: doc.ID})
}

// AddPane appends a new document cloned from the tail one
func (c *Coordinator) AddPane() error {
	all := c.store.All()
	newDoc := docs.Duplicate(all[len(all)-1])

	if err := c.store.Append(newDoc); err != nil {
		return err
	}

	c.ScrollSync.Register(&paneViewport{id: newDoc.ID, nav: c.Navigation})
	c.RecomputeAll()
	c.domainBus.Publish(eventbus.DocumentAddedEvent{Doc: newDoc})
	return nil
}

// RemovePane removes the tail document
func (c *Coordinator) RemovePane() error {
	removed, err := c.store.RemoveLast()
	if err != nil {
		return err
	}

	c.ScrollSync.Unregister(removed.ID)
	c.Navigation.Remove(removed.ID)
	delete(c.diffs, removed.ID)
	c.RecomputeAll()
	c.domainBus.Publish(eventbus.DocumentRemovedEvent{DocID: removed.ID})
	return nil
}

// RenameDocument changes a document title. Titles drive syntax-highlight
// language detection, not diffing, so no recompute is needed.
func (c *Coordinator) RenameDocument(docID, title string) error {
	doc, ok := c.store.Get(docID)
	if !ok {
		return nil
	}
	old := doc.Title

	if err := c.store.SetTitle(docID, title); err != nil {
		return err
	}

	c.domainBus.Publish(eventbus.DocumentRenamedEvent{DocID: docID, OldTitle: old, NewTitle: title})
	return nil
}

// RequestSummary asks the summary service for a difference summary
func (c *Coordinator) RequestSummary() {
	c.domainBus.Publish(eventbus.SummaryRequestedEvent{Docs: c.store.All()})
}

// RowForMatch maps a match to the rendered row its first line occupies in
// the owning document's pane: the raw line number in the base pane, the
// corresponding Added/Unchanged row in a variant pane
func (c *Coordinator) RowForMatch(m domain.Match) int {
	doc, ok := c.store.Get(m.DocID)
	if !ok {
		return -1
	}
	line := strings.Count(doc.Text[:clampOffset(m.Start, len(doc.Text))], "\n")

	if c.store.Base().ID == m.DocID {
		return line
	}

	variantLine := -1
	for row, dl := range c.diffs[m.DocID] {
		if dl.Kind == domain.Removed {
			continue
		}
		variantLine++
		if variantLine == line {
			return row
		}
	}
	return -1
}

// Internal methods
func (c *Coordinator) recomputeDiffs() {
	base := c.store.Base()
	baseLines := diff.SplitLines(base.Text)

	totalAdded, totalRemoved := 0, 0
	fresh := make(map[string][]domain.DiffLine)
	for _, doc := range c.store.All() {
		if doc.ID == base.ID {
			continue
		}
		script := diff.Compute(baseLines, diff.SplitLines(doc.Text))
		fresh[doc.ID] = script
		added, removed := diff.Stats(script)
		totalAdded += added
		totalRemoved += removed
	}
	c.diffs = fresh

	c.domainBus.Publish(eventbus.DiffsRecomputedEvent{Added: totalAdded, Removed: totalRemoved})
}

func clampOffset(off, max int) int {
	if off > max {
		return max
	}
	if off < 0 {
		return 0
	}
	return off
}

func msToDuration(ms int) time.Duration {
	if ms <= 0 {
		return scrollsync.DefaultIndicatorDelay
	}
	return time.Duration(ms) * time.Millisecond
}

// paneViewport adapts the navigation service to the sync coordinator's
// Viewport. Writes go through SetScroll, which never publishes, so the
// fan-out cannot re-enter the coordinator through the bus.
type paneViewport struct {
	id  string
	nav *navigation.Service
}

func (v *paneViewport) ID() string { return v.id }
func (v *paneViewport) SetScroll(top, left int) {
	v.nav.SetScroll(v.id, top, left)
}
