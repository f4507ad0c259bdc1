// SPDX-License-Identifier: MPL-2.0

package contract

import "fmt"

const (
	// TokenStart is the optional "#>>>" line marker.
	TokenStart TokenKind = iota + 1
	// TokenName is "<word>:" and names the contract.
	TokenName
	// TokenStdin is "stdin!" or "stdin?".
	TokenStdin
	// TokenStdout is "stdout!" or "stdout?".
	TokenStdout
	// TokenArg is "<word>!" or "<word>?".
	TokenArg
	// TokenFlag is "-f!", "--flag?", "--flag=!" and friends.
	TokenFlag
	// TokenNumber is a run of decimal digits.
	TokenNumber
	// TokenArrow is "->".
	TokenArrow
	// TokenLParen is "(".
	TokenLParen
	// TokenRParen is ")".
	TokenRParen
	// TokenLBracket is "[".
	TokenLBracket
	// TokenRBracket is "]".
	TokenRBracket
	// TokenComma is ",".
	TokenComma
)

type (
	// TokenKind identifies the lexical class of a Token.
	TokenKind int

	// Token is a single lexeme of a contract line.
	Token struct {
		Kind TokenKind
		// Text is the exact source text of the token.
		Text string
		// Pos is the byte offset of the token in the line.
		Pos int
	}
)

var tokenKindNames = map[TokenKind]string{
	TokenStart:    "start",
	TokenName:     "name",
	TokenStdin:    "stdin",
	TokenStdout:   "stdout",
	TokenArg:      "arg",
	TokenFlag:     "flag",
	TokenNumber:   "number",
	TokenArrow:    "arrow",
	TokenLParen:   "lparen",
	TokenRParen:   "rparen",
	TokenLBracket: "lbracket",
	TokenRBracket: "rbracket",
	TokenComma:    "comma",
}

// String returns the lower-case name of the token kind.
func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// IsDecorative reports whether tokens of this kind carry no meaning for the
// parser. They are accepted for readability and discarded.
func (k TokenKind) IsDecorative() bool {
	switch k {
	case TokenStart, TokenArrow, TokenLParen, TokenRParen, TokenLBracket, TokenRBracket, TokenComma:
		return true
	default:
		return false
	}
}

// String renders the token for diagnostics.
func (t Token) String() string {
	return fmt.Sprintf("%s %q at %d", t.Kind, t.Text, t.Pos)
}
