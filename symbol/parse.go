package symbol

import (
	"strings"
	"unicode"
)

// symbolLike classifies an input string against the identifier grammar.
//
// The grammar, where a name segment is `[letter$][letter digit $]*`:
//
//	SymbolName       = segment
//	AbsoluteSymbol   = (segment "`")+ segment
//	RelativeSymbol   = "`" segment ("`" segment)*
//	AbsoluteContext  = (segment "`")+
//	RelativeContext  = "`" (segment "`")+
type symbolLike uint8

const (
	likeNone symbolLike = iota
	likeAbsoluteSymbol
	likeSymbolName
	likeRelativeSymbol
	likeAbsoluteContext
	likeRelativeContext
)

// classify parses the entire input; partial matches are rejected. Splitting
// on the context separator keeps the trailing-character check implicit: any
// stray character lands in a segment and fails validation there.
func classify(input string) symbolLike {
	if input == "" {
		return likeNone
	}

	parts := strings.Split(input, "`")
	n := len(parts)

	switch {
	case n == 1:
		if isNameSegment(parts[0]) {
			return likeSymbolName
		}
	case parts[0] == "" && parts[n-1] == "":
		// Requires at least one interior segment, so a lone "`" is rejected.
		if n >= 3 && allNameSegments(parts[1:n-1]) {
			return likeRelativeContext
		}
	case parts[0] == "":
		if allNameSegments(parts[1:]) {
			return likeRelativeSymbol
		}
	case parts[n-1] == "":
		if allNameSegments(parts[:n-1]) {
			return likeAbsoluteContext
		}
	default:
		if allNameSegments(parts) {
			return likeAbsoluteSymbol
		}
	}

	return likeNone
}

func allNameSegments(segments []string) bool {
	for _, seg := range segments {
		if !isNameSegment(seg) {
			return false
		}
	}

	return true
}

// isNameSegment reports whether s is a valid name segment: the first
// character must be a letter or '$', the rest letters, ASCII digits or '$'.
// Underscores and hyphens are not identifier characters in this language.
func isNameSegment(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		switch {
		case unicode.IsLetter(r) || r == '$':
			continue
		case i > 0 && r >= '0' && r <= '9':
			continue
		default:
			return false
		}
	}

	return true
}
