package search

import (
	"testing"

	"github.com/stretchr/testify/require"

	"codediff/internal/domain"
)

func testDocs() []domain.Document {
	return []domain.Document{
		{ID: "1", Title: "base.txt", Text: "Hello world"},
		{ID: "2", Title: "other.txt", Text: "say hello"},
	}
}

func TestComputeMatchesCaseInsensitive(t *testing.T) {
	t.Parallel()

	got := ComputeMatches(testDocs(), "hello", domain.FindOptions{})

	require.Equal(t, []domain.Match{
		{DocID: "1", Start: 0, End: 5},
		{DocID: "2", Start: 4, End: 9},
	}, got)
}

func TestComputeMatchesCaseSensitive(t *testing.T) {
	t.Parallel()

	got := ComputeMatches(testDocs(), "hello", domain.FindOptions{CaseSensitive: true})

	require.Equal(t, []domain.Match{
		{DocID: "2", Start: 4, End: 9},
	}, got)
}

func TestComputeMatchesEmptyQuery(t *testing.T) {
	t.Parallel()

	require.Nil(t, ComputeMatches(testDocs(), "", domain.FindOptions{}))
}

func TestComputeMatchesLiteralEscaping(t *testing.T) {
	t.Parallel()

	docs := []domain.Document{{ID: "1", Text: "price is $5.00 (net)"}}

	got := ComputeMatches(docs, "$5.00 (net)", domain.FindOptions{})
	require.Equal(t, []domain.Match{{DocID: "1", Start: 9, End: 20}}, got)

	// The same query as a regex matches nothing: "$" anchors to end of text.
	got = ComputeMatches(docs, "$5.00 (net)", domain.FindOptions{Regex: true})
	require.Nil(t, got)
}

func TestComputeMatchesRegex(t *testing.T) {
	t.Parallel()

	docs := []domain.Document{{ID: "1", Text: "ab aab aaab"}}

	got := ComputeMatches(docs, "a+b", domain.FindOptions{Regex: true})
	require.Equal(t, []domain.Match{
		{DocID: "1", Start: 0, End: 2},
		{DocID: "1", Start: 3, End: 6},
		{DocID: "1", Start: 7, End: 11},
	}, got)
}

func TestComputeMatchesInvalidRegex(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() {
		got := ComputeMatches(testDocs(), "(unbalanced", domain.FindOptions{Regex: true})
		require.Nil(t, got)
	})
}

func TestComputeMatchesDocumentOrder(t *testing.T) {
	t.Parallel()

	docs := []domain.Document{
		{ID: "b", Text: "x x"},
		{ID: "a", Text: "x"},
	}

	got := ComputeMatches(docs, "x", domain.FindOptions{})
	require.Equal(t, []string{"b", "b", "a"}, []string{got[0].DocID, got[1].DocID, got[2].DocID})
	require.Less(t, got[0].Start, got[1].Start)
}

func TestNextPrev(t *testing.T) {
	t.Parallel()

	require.Equal(t, domain.NoActiveMatch, Next(0, 0))
	require.Equal(t, domain.NoActiveMatch, Prev(0, 0))

	require.Equal(t, 1, Next(0, 3))
	require.Equal(t, 0, Next(2, 3))
	require.Equal(t, 2, Prev(0, 3))
	require.Equal(t, 1, Prev(2, 3))
}

func TestNextPrevAreInverses(t *testing.T) {
	t.Parallel()

	for count := 1; count <= 5; count++ {
		for active := 0; active < count; active++ {
			require.Equal(t, active, Prev(Next(active, count), count))
			require.Equal(t, active, Next(Prev(active, count), count))
		}
	}
}
