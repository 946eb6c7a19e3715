package domain

// Document is one open text buffer. The first document in the collection is
// the base; every other document is diffed against it.
type Document struct {
	ID    string
	Title string
	Text  string
	Path  string // source file on disk, "" for documents created in-app
}

// LineKind classifies a line in an edit script.
type LineKind int

const (
	Unchanged LineKind = iota // line is part of the common backbone
	Added                     // line exists only in the variant
	Removed                   // line exists only in the base
)

// DiffLine is a single line of a computed diff.
type DiffLine struct {
	Kind LineKind
	Text string
}

// Match is one search hit inside a document. Start and End are byte offsets
// into the document text, Start <= End (equal only for zero-width regex hits).
type Match struct {
	DocID string
	Start int
	End   int
}

// FindOptions configures match computation.
type FindOptions struct {
	CaseSensitive bool
	Regex         bool
}

// NoActiveMatch is the active-index sentinel for an empty match list.
const NoActiveMatch = -1

// Collection size bounds: the base plus at least one and at most three
// comparison targets.
const (
	MinDocuments = 2
	MaxDocuments = 4
)
