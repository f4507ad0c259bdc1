// SPDX-License-Identifier: MPL-2.0

package contract

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// LineError reports a contract line that failed to parse within a manifest.
type LineError struct {
	// Line is the 1-based line number.
	Line int
	Err  error
}

// Error implements the error interface.
func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying parse error.
func (e *LineError) Unwrap() error { return e.Err }

// Parse parses a single contract declaration.
//
// Tokens are consumed left to right. The last stdin and stdout tokens win,
// arguments are appended in order, flags are collected by name with later
// duplicates replacing earlier ones, and every number is appended to the
// error codes. Decorative tokens are ignored.
func Parse(line string) (Contract, error) {
	tokens, err := Lex(line)
	if err != nil {
		return Contract{}, err
	}

	c := Contract{Flags: make(map[string]Flag)}
	named := false
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenName:
			c.Name = strings.TrimSuffix(tok.Text, ":")
			named = true
		case TokenStdin:
			c.Stdin = streamOf(tok.Text)
		case TokenStdout:
			c.Stdout = streamOf(tok.Text)
		case TokenArg:
			c.Args = append(c.Args, Arg{Required: lastByte(tok.Text) == requiredMark})
		case TokenFlag:
			f := flagOf(tok.Text)
			c.Flags[f.Name] = f
		case TokenNumber:
			code, err := strconv.ParseUint(tok.Text, 10, 32)
			if err != nil {
				return Contract{}, &ParseError{Pos: tok.Pos, Text: tok.Text, Err: ErrErrorCode}
			}
			c.ErrorCodes = append(c.ErrorCodes, uint32(code))
		default:
			// decorative
		}
	}

	if !named {
		return Contract{}, &ParseError{Pos: -1, Text: line, Err: ErrMissingName}
	}
	return c, nil
}

// ParseManifest parses newline-separated contract declarations. Blank lines
// are skipped. A later contract with the same name replaces an earlier one.
// The first line that fails to parse aborts the whole manifest with a
// LineError.
func ParseManifest(text string) (Set, error) {
	set := make(Set)
	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		c, err := Parse(line)
		if err != nil {
			return nil, &LineError{Line: lineNo, Err: err}
		}
		set[c.Name] = c
	}
	if err := sc.Err(); err != nil {
		return nil, &LineError{Line: lineNo + 1, Err: errors.Join(ErrSyntax, err)}
	}
	return set, nil
}

// flagOf builds a Flag from a lexed flag token such as "--out=!".
func flagOf(text string) Flag {
	sigil := lastByte(text)
	body := text[:len(text)-1]
	f := Flag{Required: sigil == requiredMark}
	if strings.HasSuffix(body, string(valueMark)) {
		f.RequiredValue = true
		body = strings.TrimSuffix(body, string(valueMark))
	}
	f.Name = body
	return f
}

func streamOf(text string) Stream {
	if lastByte(text) == requiredMark {
		return StreamRequired
	}
	return StreamOptional
}

func lastByte(s string) byte {
	return s[len(s)-1]
}
