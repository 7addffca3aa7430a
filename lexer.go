package cellgraph

import (
	"strconv"

	"github.com/cockroachdb/errors"
)

// tokenKind enumerates the terminal symbols of the formula grammar:
// numeric literals, cell references, the four binary operators (also used
// for the two unary signs), and parentheses.
type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokNumber
	tokCellRef
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

// lexer tokenizes the text following a formula's leading '='. Whitespace
// between tokens is insignificant; exponents in numeric literals are not
// part of the grammar and lex as a syntax error.
type lexer struct {
	input string
	pos   int
}

func newLexer(input string) *lexer {
	return &lexer{input: input}
}

func (l *lexer) tokenize() ([]token, error) {
	var tokens []token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.kind == tokEOF {
			return tokens, nil
		}
	}
}

func (l *lexer) next() (token, error) {
	l.skipSpaces()
	start := l.pos
	if l.pos >= len(l.input) {
		return token{kind: tokEOF, pos: start}, nil
	}

	c := l.input[l.pos]
	switch {
	case c == '+':
		l.pos++
		return token{kind: tokPlus, text: "+", pos: start}, nil
	case c == '-':
		l.pos++
		return token{kind: tokMinus, text: "-", pos: start}, nil
	case c == '*':
		l.pos++
		return token{kind: tokStar, text: "*", pos: start}, nil
	case c == '/':
		l.pos++
		return token{kind: tokSlash, text: "/", pos: start}, nil
	case c == '(':
		l.pos++
		return token{kind: tokLParen, text: "(", pos: start}, nil
	case c == ')':
		l.pos++
		return token{kind: tokRParen, text: ")", pos: start}, nil
	case isDigit(c) || c == '.':
		return l.lexNumber(start)
	case isAsciiLetter(c):
		return l.lexCellRef(start)
	default:
		return token{}, errors.Newf("unexpected character %q at offset %d", c, start)
	}
}

func (l *lexer) lexNumber(start int) (token, error) {
	sawDot := false
	sawDigit := false
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		if isDigit(c) {
			sawDigit = true
			l.pos++
			continue
		}
		if c == '.' && !sawDot {
			sawDot = true
			l.pos++
			continue
		}
		if isAsciiLetter(c) {
			// an exponent marker or a stray identifier glued to digits
			// is not part of this grammar.
			return token{}, errors.Newf("malformed number at offset %d", start)
		}
		break
	}
	if !sawDigit {
		return token{}, errors.Newf("malformed number at offset %d", start)
	}
	return token{kind: tokNumber, text: l.input[start:l.pos], pos: start}, nil
}

func (l *lexer) lexCellRef(start int) (token, error) {
	for l.pos < len(l.input) && isAsciiLetter(l.input[l.pos]) {
		l.pos++
	}
	digitsStart := l.pos
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.pos++
	}
	if l.pos == digitsStart {
		return token{}, errors.Newf("cell reference missing row number at offset %d", start)
	}
	return token{kind: tokCellRef, text: l.input[start:l.pos], pos: start}, nil
}

func (l *lexer) skipSpaces() {
	for l.pos < len(l.input) && (l.input[l.pos] == ' ' || l.input[l.pos] == '\t') {
		l.pos++
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAsciiLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// parseFloat is a thin wrapper kept next to the lexer since it is only
// ever called on text lexNumber already validated.
func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
