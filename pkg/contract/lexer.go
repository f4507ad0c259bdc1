// SPDX-License-Identifier: MPL-2.0

package contract

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	startMarker  = "#>>>"
	arrowMarker  = "->"
	stdinWord    = "stdin"
	stdoutWord   = "stdout"
	requiredMark = '!'
	optionalMark = '?'
	valueMark    = '='
)

// Lex splits a contract line into tokens. Whitespace separates tokens and is
// otherwise ignored. The first unrecognized character aborts lexing with a
// ParseError wrapping ErrSyntax; a word or flag missing its requiredness
// sigil aborts with ErrAmbiguousRequiredness.
func Lex(line string) ([]Token, error) {
	var tokens []Token
	for i := 0; i < len(line); {
		c := line[i]
		r, size := utf8.DecodeRuneInString(line[i:])
		switch {
		case isSpace(c):
			i++
		case strings.HasPrefix(line[i:], startMarker):
			tokens = append(tokens, Token{Kind: TokenStart, Text: startMarker, Pos: i})
			i += len(startMarker)
		case strings.HasPrefix(line[i:], arrowMarker):
			tokens = append(tokens, Token{Kind: TokenArrow, Text: arrowMarker, Pos: i})
			i += len(arrowMarker)
		case c == '-':
			tok, err := lexFlag(line, i)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
			i += len(tok.Text)
		case isWordRune(r):
			tok, err := lexWord(line, i)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
			i += len(tok.Text)
		default:
			kind, ok := punctuation(c)
			if !ok {
				return nil, &ParseError{Pos: i, Text: line[i : i+size], Err: ErrSyntax}
			}
			tokens = append(tokens, Token{Kind: kind, Text: string(c), Pos: i})
			i++
		}
	}
	return tokens, nil
}

// lexFlag scans `--?[a-zA-Z]\w*=?[!?]` starting at pos. Only the first
// character of the flag name is restricted to ASCII.
func lexFlag(line string, pos int) (Token, error) {
	end := pos + 1
	if end < len(line) && line[end] == '-' {
		end++
	}
	if end >= len(line) || !isLetter(line[end]) {
		return Token{}, &ParseError{Pos: pos, Text: line[pos:min(end+1, len(line))], Err: ErrSyntax}
	}
	end = scanWord(line, end)
	if end < len(line) && line[end] == valueMark {
		end++
	}
	if end >= len(line) || !isSigil(line[end]) {
		return Token{}, &ParseError{Pos: pos, Text: line[pos:end], Err: ErrAmbiguousRequiredness}
	}
	end++
	return Token{Kind: TokenFlag, Text: line[pos:end], Pos: pos}, nil
}

// lexWord scans a run of word characters and classifies it by the character
// that follows: ':' makes a name, a sigil makes a stream or argument, and a
// bare run of digits is a number.
func lexWord(line string, pos int) (Token, error) {
	end := scanWord(line, pos)
	word := line[pos:end]

	if end < len(line) {
		switch next := line[end]; {
		case next == ':':
			return Token{Kind: TokenName, Text: line[pos : end+1], Pos: pos}, nil
		case isSigil(next):
			kind := TokenArg
			switch word {
			case stdinWord:
				kind = TokenStdin
			case stdoutWord:
				kind = TokenStdout
			}
			return Token{Kind: kind, Text: line[pos : end+1], Pos: pos}, nil
		}
	}

	if isNumber(word) {
		return Token{Kind: TokenNumber, Text: word, Pos: pos}, nil
	}
	return Token{}, &ParseError{Pos: pos, Text: word, Err: ErrAmbiguousRequiredness}
}

func punctuation(c byte) (TokenKind, bool) {
	switch c {
	case '(':
		return TokenLParen, true
	case ')':
		return TokenRParen, true
	case '[':
		return TokenLBracket, true
	case ']':
		return TokenRBracket, true
	case ',':
		return TokenComma, true
	default:
		return 0, false
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\f' || c == '\r' || c == '\v'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isWordRune matches the Unicode word class: letters, marks, decimal digits
// and connector punctuation such as '_'.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsMark(r) ||
		unicode.Is(unicode.Nd, r) || unicode.Is(unicode.Pc, r)
}

// scanWord returns the byte offset just past the run of word runes at pos.
func scanWord(line string, pos int) int {
	for pos < len(line) {
		r, size := utf8.DecodeRuneInString(line[pos:])
		if !isWordRune(r) {
			break
		}
		pos += size
	}
	return pos
}

func isSigil(c byte) bool {
	return c == requiredMark || c == optionalMark
}

func isNumber(word string) bool {
	for i := range len(word) {
		if !isDigit(word[i]) {
			return false
		}
	}
	return word != ""
}
