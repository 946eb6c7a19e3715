// Package search builds the cross-document match list for a query. The same
// pattern rules (literal escaping, case folding) are shared with the replace
// engine so find and replace always agree on what matches.
package search

import (
	"regexp"

	"codediff/internal/domain"
)

// Compile builds the search pattern for a query. When opts.Regex is false the
// query is matched literally; unless opts.CaseSensitive is set the pattern is
// case-insensitive. An empty query or an invalid regex yields (nil, false).
func Compile(query string, opts domain.FindOptions) (*regexp.Regexp, bool) {
	if query == "" {
		return nil, false
	}

	pattern := query
	if !opts.Regex {
		pattern = regexp.QuoteMeta(query)
	}
	if !opts.CaseSensitive {
		pattern = "(?i)" + pattern
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		// Invalid patterns degrade to "no matches", never an error.
		return nil, false
	}
	return re, true
}

// ComputeMatches scans every document for the query and returns all
// non-overlapping matches, ordered by document position and then by offset
// within the document. An empty query or an invalid regex returns nil.
func ComputeMatches(docs []domain.Document, query string, opts domain.FindOptions) []domain.Match {
	re, ok := Compile(query, opts)
	if !ok {
		return nil
	}

	var matches []domain.Match
	for _, doc := range docs {
		for _, loc := range re.FindAllStringIndex(doc.Text, -1) {
			matches = append(matches, domain.Match{
				DocID: doc.ID,
				Start: loc[0],
				End:   loc[1],
			})
		}
	}
	return matches
}

// Next advances the active match index, wrapping at the end of the list.
// Returns the sentinel when the list is empty.
func Next(active, count int) int {
	if count == 0 {
		return domain.NoActiveMatch
	}
	return (active + 1) % count
}

// Prev moves the active match index backwards, wrapping at the start.
// Returns the sentinel when the list is empty.
func Prev(active, count int) int {
	if count == 0 {
		return domain.NoActiveMatch
	}
	return (active - 1 + count) % count
}
