// Package recipefile persists the recipe store as a text file of
// parenthesized literals. The format is self-describing: a header
// comment with the generation timestamp, one `((dir . command) name
// shortcut?)` entry per recipe, the last-active snapshot under its own
// field names, and a trailer declaring the encoding.
//
// Loading never evaluates the payload; a strict parser for exactly this
// grammar rejects anything else.
package recipefile

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokLParen
	tokRParen
	tokDot
	tokString
	tokChar
	tokSymbol
)

type token struct {
	kind tokenKind
	text string // decoded string value or symbol name
	char rune   // for tokChar
	line int
}

func (t token) describe() string {
	switch t.kind {
	case tokEOF:
		return "end of file"
	case tokLParen:
		return `"("`
	case tokRParen:
		return `")"`
	case tokDot:
		return `"."`
	case tokString:
		return fmt.Sprintf("string %q", t.text)
	case tokChar:
		return fmt.Sprintf("character ?%c", t.char)
	default:
		return fmt.Sprintf("symbol %q", t.text)
	}
}

// lex tokenizes the full payload. Comments (";" to end of line) and
// whitespace separate tokens and are otherwise ignored.
func lex(data string) ([]token, error) {
	var tokens []token
	line := 1
	i := 0
	for i < len(data) {
		c := data[i]
		switch {
		case c == '\n':
			line++
			i++
		case c == ' ' || c == '\t' || c == '\r':
			i++
		case c == ';':
			for i < len(data) && data[i] != '\n' {
				i++
			}
		case c == '(':
			tokens = append(tokens, token{kind: tokLParen, line: line})
			i++
		case c == ')':
			tokens = append(tokens, token{kind: tokRParen, line: line})
			i++
		case c == '.' && isDelimiter(data, i+1):
			tokens = append(tokens, token{kind: tokDot, line: line})
			i++
		case c == '"':
			raw, width, err := scanString(data[i:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			value, err := strconv.Unquote(raw)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad string literal %s: %w", line, raw, err)
			}
			tokens = append(tokens, token{kind: tokString, text: value, line: line})
			i += width
		case c == '?':
			r, width, err := scanChar(data[i:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			tokens = append(tokens, token{kind: tokChar, char: r, line: line})
			i += width
		case isSymbolRune(rune(c)):
			start := i
			for i < len(data) && isSymbolRune(rune(data[i])) {
				i++
			}
			tokens = append(tokens, token{kind: tokSymbol, text: data[start:i], line: line})
		default:
			return nil, fmt.Errorf("line %d: unexpected character %q", line, c)
		}
	}
	return append(tokens, token{kind: tokEOF, line: line}), nil
}

// scanString returns the raw quoted literal starting at data[0] == '"'
// and its byte width, honoring backslash escapes.
func scanString(data string) (string, int, error) {
	for i := 1; i < len(data); i++ {
		switch data[i] {
		case '\\':
			i++ // skip the escaped byte
		case '"':
			return data[:i+1], i + 1, nil
		case '\n':
			return "", 0, fmt.Errorf("unterminated string literal")
		}
	}
	return "", 0, fmt.Errorf("unterminated string literal")
}

// scanChar decodes a ?x character literal starting at data[0] == '?'.
// A backslash escapes the following rune (?\( binds an open paren).
func scanChar(data string) (rune, int, error) {
	rest := data[1:]
	width := 1
	if strings.HasPrefix(rest, `\`) {
		rest = rest[1:]
		width++
	}
	if rest == "" {
		return 0, 0, fmt.Errorf("dangling character literal")
	}
	r, n := utf8.DecodeRuneInString(rest)
	if r == utf8.RuneError && n == 1 {
		return 0, 0, fmt.Errorf("invalid character literal")
	}
	if width == 1 && (r == '(' || r == ')' || r == '"' || r == ' ' || r == '\t' || r == '\n') {
		return 0, 0, fmt.Errorf("character literal ?%c needs a backslash escape", r)
	}
	return r, width + n, nil
}

func isDelimiter(data string, i int) bool {
	if i >= len(data) {
		return true
	}
	switch data[i] {
	case ' ', '\t', '\r', '\n', '(', ')', ';', '"':
		return true
	}
	return false
}

func isSymbolRune(r rune) bool {
	return r == '-' || r == '_' ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
