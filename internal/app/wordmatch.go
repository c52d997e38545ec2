package app

import "strings"

// WordMatch reports whether term occurs in text as a whole word: every
// occurrence is accepted only when flush against the string edges or
// delimited by whitespace/punctuation on both sides. This keeps a query
// for "barcelona" from matching "Barceló Fuerteventura Mar". Every
// occurrence is checked; an early occurrence failing the boundary test
// must not mask a later one that passes.
func WordMatch(text, term string) bool {
	if text == "" || term == "" {
		return false
	}
	hay := strings.ToLower(text)
	if hay == term {
		return true
	}
	for from := 0; ; {
		i := strings.Index(hay[from:], term)
		if i < 0 {
			return false
		}
		i += from
		end := i + len(term)
		if (i == 0 || isBoundary(hay[i-1])) && (end == len(hay) || isBoundary(hay[end])) {
			return true
		}
		from = i + 1
	}
}

func isBoundary(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', ',', '.', '-', ':', ';', '(', ')', '/', '|':
		return true
	}
	return false
}
