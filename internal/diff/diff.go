// Package diff computes line-level diffs of a variant document against a
// base document. Output is a single edit script interleaving removed, added
// and unchanged lines; consumers rebuild per-side line numbers by counting
// removed/unchanged lines for the base and added/unchanged for the variant.
package diff

import (
	"strings"

	"codediff/internal/domain"
)

// Compute returns the edit script transforming base into variant. Lines are
// compared with exact equality (case- and whitespace-sensitive) over an
// O(n*m) LCS table. When a deletion and an insertion are both optimal at a
// cell, the deletion wins, so every changed block lists its removed lines
// before its added lines.
func Compute(base, variant []string) []domain.DiffLine {
	n := len(base)
	m := len(variant)

	// Trivial cases, same shapes the full table would produce.
	if n == 0 && m == 0 {
		return nil
	}
	if n == 0 {
		out := make([]domain.DiffLine, m)
		for i, line := range variant {
			out[i] = domain.DiffLine{Kind: domain.Added, Text: line}
		}
		return out
	}
	if m == 0 {
		out := make([]domain.DiffLine, n)
		for i, line := range base {
			out[i] = domain.DiffLine{Kind: domain.Removed, Text: line}
		}
		return out
	}

	// lcs[i][j] is the LCS length of base[i:] and variant[j:]. The suffix
	// orientation lets the emission loop below walk forward through both
	// sequences.
	lcs := make([][]int, n+1)
	for i := range lcs {
		lcs[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if base[i] == variant[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else if lcs[i+1][j] >= lcs[i][j+1] {
				lcs[i][j] = lcs[i+1][j]
			} else {
				lcs[i][j] = lcs[i][j+1]
			}
		}
	}

	out := make([]domain.DiffLine, 0, n+m)
	i, j := 0, 0
	for i < n && j < m {
		switch {
		case base[i] == variant[j]:
			out = append(out, domain.DiffLine{Kind: domain.Unchanged, Text: base[i]})
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			// Tie-break: emit the removal first.
			out = append(out, domain.DiffLine{Kind: domain.Removed, Text: base[i]})
			i++
		default:
			out = append(out, domain.DiffLine{Kind: domain.Added, Text: variant[j]})
			j++
		}
	}
	for ; i < n; i++ {
		out = append(out, domain.DiffLine{Kind: domain.Removed, Text: base[i]})
	}
	for ; j < m; j++ {
		out = append(out, domain.DiffLine{Kind: domain.Added, Text: variant[j]})
	}

	return out
}

// SplitLines splits document text on newlines for diffing. An empty document
// is a single empty line, not zero lines.
func SplitLines(text string) []string {
	return strings.Split(text, "\n")
}

// Stats counts the added and removed lines in an edit script.
func Stats(lines []domain.DiffLine) (added, removed int) {
	for _, l := range lines {
		switch l.Kind {
		case domain.Added:
			added++
		case domain.Removed:
			removed++
		}
	}
	return added, removed
}
