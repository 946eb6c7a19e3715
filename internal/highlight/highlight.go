// Package highlight renders single lines of source text as ANSI-colored
// markup. Callers treat the returned string opaquely; when no lexer matches
// the language the input line passes through unchanged.
package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Highlighter colorizes lines for one language.
type Highlighter struct {
	lexer chroma.Lexer
	style *chroma.Style
}

// New creates a highlighter for the given language identifier. Unknown
// languages produce a pass-through highlighter.
func New(languageID string) *Highlighter {
	var lexer chroma.Lexer
	if languageID != "" {
		lexer = lexers.Get(languageID)
	}
	if lexer != nil {
		// Per-line tokenising must not carry state between calls
		lexer = chroma.Coalesce(lexer)
	}

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	return &Highlighter{lexer: lexer, style: style}
}

// Line returns the ANSI markup for one line of text. The trailing newline
// chroma expects is added and stripped here so callers deal in bare lines.
func (h *Highlighter) Line(text string) string {
	if h.lexer == nil || text == "" {
		return text
	}

	iterator, err := h.lexer.Tokenise(nil, text+"\n")
	if err != nil {
		return text
	}

	var sb strings.Builder
	if err := formatters.TTY256.Format(&sb, h.style, iterator); err != nil {
		return text
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// LanguageFromTitle guesses a language identifier from a document title's
// suffix, e.g. "main.ts" -> "typescript". Returns "" when nothing matches.
func LanguageFromTitle(title string) string {
	lexer := lexers.Match(title)
	if lexer == nil {
		return ""
	}
	return strings.ToLower(lexer.Config().Name)
}
