// Package replace mutates document text from search results. Both operations
// treat documents as values and return new ones; callers must recompute the
// match list afterwards since offsets shift.
package replace

import (
	"fmt"

	"codediff/internal/domain"
	"codediff/internal/search"
)

// One splices replacement into doc.Text over the match range and returns the
// updated document. The match must belong to the document and lie within its
// text.
func One(doc domain.Document, m domain.Match, replacement string) (domain.Document, error) {
	if m.DocID != doc.ID {
		return doc, fmt.Errorf("replace: match belongs to document %q, not %q", m.DocID, doc.ID)
	}
	if m.Start < 0 || m.End < m.Start || m.End > len(doc.Text) {
		return doc, fmt.Errorf("replace: match range [%d,%d) out of bounds for %d bytes", m.Start, m.End, len(doc.Text))
	}

	doc.Text = doc.Text[:m.Start] + replacement + doc.Text[m.End:]
	return doc, nil
}

// All substitutes every match of the query in every document, using the same
// pattern rules as the search index. Documents whose text is untouched are
// returned as the same value so callers can cheaply detect which ones
// actually changed. The replacement is inserted literally, without
// $-expansion, matching the literal semantics of the search box.
func All(docs []domain.Document, query string, opts domain.FindOptions, replacement string) []domain.Document {
	re, ok := search.Compile(query, opts)
	if !ok {
		return docs
	}

	out := make([]domain.Document, len(docs))
	for i, doc := range docs {
		newText := re.ReplaceAllLiteralString(doc.Text, replacement)
		if newText != doc.Text {
			doc.Text = newText
		}
		out[i] = doc
	}
	return out
}
