package docs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"codediff/internal/domain"
)

func twoDocs() []domain.Document {
	return []domain.Document{
		{ID: "base", Title: "base.txt", Text: "a"},
		{ID: "v1", Title: "v1.txt", Text: "b"},
	}
}

func TestNewStoreBounds(t *testing.T) {
	t.Parallel()

	_, err := NewStore([]domain.Document{{ID: "only"}})
	require.Error(t, err)

	_, err = NewStore(make([]domain.Document, 5))
	require.Error(t, err)

	s, err := NewStore(twoDocs())
	require.NoError(t, err)
	require.Equal(t, 2, s.Len())
	require.Equal(t, "base", s.Base().ID)
}

func TestAppendAndRemoveLast(t *testing.T) {
	t.Parallel()

	s, err := NewStore(twoDocs())
	require.NoError(t, err)

	require.NoError(t, s.Append(domain.Document{ID: "v2"}))
	require.NoError(t, s.Append(domain.Document{ID: "v3"}))
	require.Error(t, s.Append(domain.Document{ID: "v4"}), "collection is bounded at four")

	removed, err := s.RemoveLast()
	require.NoError(t, err)
	require.Equal(t, "v3", removed.ID)

	_, err = s.RemoveLast()
	require.NoError(t, err)
	_, err = s.RemoveLast()
	require.Error(t, err, "base plus one target must survive")
	require.Equal(t, 2, s.Len())
}

func TestSetTextAndTitle(t *testing.T) {
	t.Parallel()

	s, err := NewStore(twoDocs())
	require.NoError(t, err)

	require.NoError(t, s.SetText("v1", "edited"))
	doc, ok := s.Get("v1")
	require.True(t, ok)
	require.Equal(t, "edited", doc.Text)

	require.NoError(t, s.SetTitle("v1", "renamed.txt"))
	doc, _ = s.Get("v1")
	require.Equal(t, "renamed.txt", doc.Title)

	require.Error(t, s.SetText("ghost", "x"))
}

func TestAllReturnsCopy(t *testing.T) {
	t.Parallel()

	s, err := NewStore(twoDocs())
	require.NoError(t, err)

	all := s.All()
	all[0].Text = "mutated"
	require.Equal(t, "a", s.Base().Text)
}

func TestReplaceAllDocs(t *testing.T) {
	t.Parallel()

	s, err := NewStore(twoDocs())
	require.NoError(t, err)

	updated := s.All()
	updated[1].Text = "replaced"
	require.NoError(t, s.ReplaceAllDocs(updated))
	doc, _ := s.Get("v1")
	require.Equal(t, "replaced", doc.Text)

	// Reordering or resizing is rejected.
	require.Error(t, s.ReplaceAllDocs(updated[:1]))
	swapped := s.All()
	swapped[0], swapped[1] = swapped[1], swapped[0]
	require.Error(t, s.ReplaceAllDocs(swapped))
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	basePath := filepath.Join(dir, "base.txt")
	varPath := filepath.Join(dir, "variant.txt")
	require.NoError(t, os.WriteFile(basePath, []byte("one\r\ntwo\r\n"), 0o644))
	require.NoError(t, os.WriteFile(varPath, []byte("one\ntwo\n"), 0o644))

	loaded, err := Load([]string{basePath, varPath})
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	require.Equal(t, "base.txt", loaded[0].Title)
	require.Equal(t, "one\ntwo\n", loaded[0].Text, "CRLF is normalized")
	require.NotEqual(t, loaded[0].ID, loaded[1].ID)

	_, err = Load([]string{basePath})
	require.Error(t, err)

	_, err = Load([]string{basePath, filepath.Join(dir, "missing.txt")})
	require.Error(t, err)
}

func TestDuplicate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("on disk"), 0o644))

	src := domain.Document{ID: "src", Title: "doc.txt", Text: "in memory", Path: path}
	dup := Duplicate(src)
	require.NotEqual(t, src.ID, dup.ID)
	require.Equal(t, "on disk", dup.Text, "re-read from disk when available")

	src.Path = filepath.Join(dir, "gone.txt")
	dup = Duplicate(src)
	require.Equal(t, "in memory", dup.Text, "falls back to in-memory text")
}
