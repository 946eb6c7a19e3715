package replace

import (
	"testing"

	"github.com/stretchr/testify/require"

	"codediff/internal/domain"
)

func TestOne(t *testing.T) {
	t.Parallel()

	doc := domain.Document{ID: "1", Text: "foo bar baz"}
	got, err := One(doc, domain.Match{DocID: "1", Start: 4, End: 7}, "qux")
	require.NoError(t, err)
	require.Equal(t, "foo qux baz", got.Text)

	// Original value untouched.
	require.Equal(t, "foo bar baz", doc.Text)
}

func TestOneZeroWidth(t *testing.T) {
	t.Parallel()

	doc := domain.Document{ID: "1", Text: "ab"}
	got, err := One(doc, domain.Match{DocID: "1", Start: 1, End: 1}, "-")
	require.NoError(t, err)
	require.Equal(t, "a-b", got.Text)
}

func TestOneWrongDocument(t *testing.T) {
	t.Parallel()

	doc := domain.Document{ID: "1", Text: "foo"}
	_, err := One(doc, domain.Match{DocID: "2", Start: 0, End: 3}, "x")
	require.Error(t, err)
}

func TestOneOutOfBounds(t *testing.T) {
	t.Parallel()

	doc := domain.Document{ID: "1", Text: "foo"}
	_, err := One(doc, domain.Match{DocID: "1", Start: 1, End: 9}, "x")
	require.Error(t, err)

	_, err = One(doc, domain.Match{DocID: "1", Start: 2, End: 1}, "x")
	require.Error(t, err)
}

func TestAllReplacesAcrossDocuments(t *testing.T) {
	t.Parallel()

	docs := []domain.Document{
		{ID: "1", Text: "foo bar"},
		{ID: "2", Text: "baz"},
	}

	got := All(docs, "bar", domain.FindOptions{}, "qux")
	require.Equal(t, "foo qux", got[0].Text)
	require.Equal(t, "baz", got[1].Text)

	// The untouched document is the same value, not merely equal.
	require.Equal(t, docs[1], got[1])
}

func TestAllCaseFolding(t *testing.T) {
	t.Parallel()

	docs := []domain.Document{{ID: "1", Text: "Hello hello HELLO"}}

	got := All(docs, "hello", domain.FindOptions{}, "bye")
	require.Equal(t, "bye bye bye", got[0].Text)

	got = All(docs, "hello", domain.FindOptions{CaseSensitive: true}, "bye")
	require.Equal(t, "Hello bye HELLO", got[0].Text)
}

func TestAllLiteralReplacement(t *testing.T) {
	t.Parallel()

	docs := []domain.Document{{ID: "1", Text: "aab"}}

	// "$1" must land in the text verbatim, not expand to a capture group.
	got := All(docs, "(a+)b", domain.FindOptions{Regex: true}, "$1")
	require.Equal(t, "$1", got[0].Text)
}

func TestAllInvalidPattern(t *testing.T) {
	t.Parallel()

	docs := []domain.Document{{ID: "1", Text: "foo"}}

	got := All(docs, "(oops", domain.FindOptions{Regex: true}, "x")
	require.Equal(t, docs, got)

	got = All(docs, "", domain.FindOptions{}, "x")
	require.Equal(t, docs, got)
}
