package docs

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"codediff/internal/domain"
)

// Load reads the given files into documents, in argument order. The first
// path becomes the base document. Line endings are normalized to \n so the
// diff engine never sees a \r\n vs \n artifact.
func Load(paths []string) ([]domain.Document, error) {
	if len(paths) < domain.MinDocuments || len(paths) > domain.MaxDocuments {
		return nil, fmt.Errorf("docs: expected between %d and %d files, got %d",
			domain.MinDocuments, domain.MaxDocuments, len(paths))
	}

	docs := make([]domain.Document, 0, len(paths))
	for _, path := range paths {
		doc, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	log.Printf("Loaded %d documents, base is %s", len(docs), docs[0].Title)
	return docs, nil
}

// loadFile reads a single file into a document.
func loadFile(path string) (domain.Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return domain.Document{}, fmt.Errorf("docs: resolving %s: %w", path, err)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return domain.Document{}, fmt.Errorf("docs: reading %s: %w", path, err)
	}

	return domain.Document{
		ID:    uuid.NewString(),
		Title: filepath.Base(abs),
		Text:  normalizeNewlines(string(data)),
		Path:  abs,
	}, nil
}

// Duplicate builds a new document from an existing one, for the "add pane"
// action. When the source still exists on disk it is re-read so the new pane
// starts from the file, not from any in-app edits.
func Duplicate(src domain.Document) domain.Document {
	if src.Path != "" {
		if doc, err := loadFile(src.Path); err == nil {
			return doc
		}
		log.Printf("Could not re-read %s, duplicating in-memory text", src.Path)
	}
	return domain.Document{
		ID:    uuid.NewString(),
		Title: src.Title,
		Text:  src.Text,
		Path:  src.Path,
	}
}

func normalizeNewlines(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\r' {
			if i+1 < len(s) && s[i+1] == '\n' {
				continue // drop the \r of \r\n
			}
			out = append(out, '\n')
			continue
		}
		out = append(out, s[i])
	}
	return string(out)
}
