package strext

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Whitespace is the default cut set used by [TrimSpace] and [IsBlank]:
// space, tab, new line, return and form feed.
const Whitespace = " \t\n\r\f"

// ErrInvalidIndex is returned by [ParseIndex] when a token is not an integer.
var ErrInvalidIndex = errors.New("strext: invalid index")

// ─────────────────────────────────────────────────────────────────────────────
// Splitting
// ─────────────────────────────────────────────────────────────────────────────

// Split splits source on any character contained in seps.
//
// Every gap between two delimiters yields a token, including empty ones. When
// seps is empty the result holds source as its only element.
func Split(source, seps string) []string {
	if seps == "" {
		return []string{source}
	}
	var out []string
	for {
		i := strings.IndexAny(source, seps)
		if i < 0 {
			break
		}
		out = append(out, source[:i])
		// Skip the whole delimiter rune, not just its first byte.
		_, size := utf8.DecodeRuneInString(source[i:])
		source = source[i+size:]
	}
	return append(out, source)
}

// SplitNonEmpty splits like [Split] and drops the empty tokens.
func SplitNonEmpty(source, seps string) []string {
	tokens := Split(source, seps)
	out := tokens[:0]
	for _, tok := range tokens {
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Trimming
// ─────────────────────────────────────────────────────────────────────────────

// TrimStart removes every leading character found in cutset.
func TrimStart(source, cutset string) string {
	return strings.TrimLeft(source, cutset)
}

// TrimEnd removes every trailing character found in cutset.
func TrimEnd(source, cutset string) string {
	return strings.TrimRight(source, cutset)
}

// Trim removes leading and trailing characters found in cutset.
// A source made only of cutset characters yields "".
func Trim(source, cutset string) string {
	return strings.Trim(source, cutset)
}

// TrimSpace trims [Whitespace] from both ends of source.
func TrimSpace(source string) string {
	return Trim(source, Whitespace)
}

// IsBlank reports whether source is empty or made only of [Whitespace].
func IsBlank(source string) bool {
	return TrimSpace(source) == ""
}

// ─────────────────────────────────────────────────────────────────────────────
// Index parsing
// ─────────────────────────────────────────────────────────────────────────────

// ParseIndex trims token and parses it as a signed base-10 integer.
//
//	ParseIndex(" 12 ")  // → 12, nil
//	ParseIndex("-3")    // → -3, nil
//	ParseIndex("3x")    // → 0, ErrInvalidIndex
func ParseIndex(token string) (int, error) {
	trimmed := TrimSpace(token)
	n, err := strconv.ParseInt(trimmed, 10, strconv.IntSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIndex, token)
	}
	return int(n), nil
}
