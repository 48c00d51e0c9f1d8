package rscript

import (
	"sort"
	"strconv"
	"strings"
)

// Quote renders s as a double quoted R string literal.
func Quote(s string) string {
	return strconv.Quote(s)
}

// QuoteVector renders items as an R character vector.
func QuoteVector(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = Quote(item)
	}
	return "c(" + strings.Join(quoted, ", ") + ")"
}

// ReposLiteral renders repositories as a named character vector. Names are
// sorted so the same configuration always produces the same program text.
func ReposLiteral(repos map[string]string) string {
	names := make([]string, 0, len(repos))
	for name := range repos {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]string, len(names))
	for i, name := range names {
		entries[i] = Quote(name) + " = " + Quote(repos[name])
	}
	return "c(" + strings.Join(entries, ", ") + ")"
}
