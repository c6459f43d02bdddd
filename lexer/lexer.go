// Package lexer is a hand-written scanner for the C token set this parser
// accepts, grounded on the scc reference scanner (original_source's
// scanner.c): identifier/keyword runs, digit runs, string and character
// literals, and every punctuator/operator K&R defines, including the full
// compound-assignment set the reference scanner only partially recognized.
//
// Unlike the reference scanner, an unrecognized character or an
// unterminated literal is reported as an error rather than silently
// dropped or left to run off the end of the buffer -- see the lexical
// error handling note in the parser error design.
package lexer

import (
	"fmt"

	"github.com/kbrandt/cparse/grammar"
)

// Lexer scans a fixed source buffer into a stream of Tokens.
type Lexer struct {
	src        []byte
	pos        int
	row, col   int
}

// New creates a Lexer over src.
func New(src []byte) *Lexer {
	return &Lexer{src: src, row: 1, col: 1}
}

func (l *Lexer) peek(offset int) byte {
	i := l.pos + offset
	if i >= len(l.src) {
		return 0
	}
	return l.src[i]
}

func (l *Lexer) advance() byte {
	c := l.src[l.pos]
	l.pos++
	if c == '\n' {
		l.row++
		l.col = 1
	} else {
		l.col++
	}
	return c
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlnum(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\v' || c == '\f'
}

// Next scans and returns the next token, skipping whitespace and /* */
// comments first. At end of input it returns a grammar.SymEOF token
// forever, matching the trailing EOF sentinel the reference scanner
// appends once.
func (l *Lexer) Next() (Token, error) {
	for {
		l.skipSpace()
		if l.atEnd() {
			return Token{Kind: grammar.SymEOF, Row: l.row, Col: l.col}, nil
		}
		if l.peek(0) == '/' && l.peek(1) == '*' {
			if err := l.skipComment(); err != nil {
				return Token{}, err
			}
			continue
		}
		break
	}

	row, col := l.row, l.col
	c := l.peek(0)

	switch {
	case isAlpha(c):
		return l.scanIdentifier(row, col)
	case isDigit(c):
		return l.scanInteger(row, col)
	case c == '"':
		return l.scanString(row, col)
	case c == '\'':
		return l.scanChar(row, col)
	}

	if tok, ok := l.scanOperator(row, col); ok {
		return tok, nil
	}

	l.advance()
	return Token{}, fmt.Errorf("%d:%d: unexpected character %q", row, col, c)
}

func (l *Lexer) skipSpace() {
	for !l.atEnd() && isSpace(l.peek(0)) {
		l.advance()
	}
}

func (l *Lexer) skipComment() error {
	startRow, startCol := l.row, l.col
	l.advance() // '/'
	l.advance() // '*'
	for {
		if l.atEnd() {
			return fmt.Errorf("%d:%d: unterminated comment", startRow, startCol)
		}
		if l.peek(0) == '*' && l.peek(1) == '/' {
			l.advance()
			l.advance()
			return nil
		}
		l.advance()
	}
}

func (l *Lexer) scanIdentifier(row, col int) (Token, error) {
	start := l.pos
	for !l.atEnd() && isAlnum(l.peek(0)) {
		l.advance()
	}
	text := string(l.src[start:l.pos])
	if kind, ok := reserved[text]; ok {
		return Token{Kind: kind, Lexeme: text, Row: row, Col: col}, nil
	}
	return Token{Kind: grammar.SymIdentifier, Lexeme: text, Row: row, Col: col}, nil
}

func (l *Lexer) scanInteger(row, col int) (Token, error) {
	start := l.pos
	for !l.atEnd() && isDigit(l.peek(0)) {
		l.advance()
	}
	return Token{Kind: grammar.SymIntegerConstant, Lexeme: string(l.src[start:l.pos]), Row: row, Col: col}, nil
}

func (l *Lexer) scanString(row, col int) (Token, error) {
	l.advance() // opening quote
	start := l.pos
	for {
		if l.atEnd() {
			return Token{}, fmt.Errorf("%d:%d: unterminated string literal", row, col)
		}
		if l.peek(0) == '"' {
			break
		}
		if l.peek(0) == '\\' {
			l.advance()
			if l.atEnd() {
				continue
			}
		}
		l.advance()
	}
	text := string(l.src[start:l.pos])
	l.advance() // closing quote
	return Token{Kind: grammar.SymStringLiteral, Lexeme: text, Row: row, Col: col}, nil
}

// scanChar scans a character constant, fixing a gap in the reference
// scanner (which emitted a bare single-quote token and never consumed the
// character payload at all).
func (l *Lexer) scanChar(row, col int) (Token, error) {
	l.advance() // opening quote
	start := l.pos
	if l.atEnd() {
		return Token{}, fmt.Errorf("%d:%d: unterminated character constant", row, col)
	}
	if l.peek(0) == '\\' {
		l.advance()
	}
	if l.atEnd() {
		return Token{}, fmt.Errorf("%d:%d: unterminated character constant", row, col)
	}
	l.advance()
	if l.peek(0) != '\'' {
		return Token{}, fmt.Errorf("%d:%d: unterminated character constant", row, col)
	}
	text := string(l.src[start:l.pos])
	l.advance() // closing quote
	return Token{Kind: grammar.SymCharacterConstant, Lexeme: text, Row: row, Col: col}, nil
}

type opRule struct {
	text string
	kind grammar.Symbol
}

// operators are matched longest-first so e.g. "<<=" wins over "<<" and "<".
var operators = []opRule{
	{"<<=", grammar.SymShiftLeftEqual},
	{">>=", grammar.SymShiftRightEqual},
	{"...", grammar.SymEllipsis},

	{"->", grammar.SymArrow},
	{"++", grammar.SymPlusPlus},
	{"--", grammar.SymMinusMinus},
	{"&&", grammar.SymAmpersandAmpersand},
	{"||", grammar.SymVerticalBarVerticalBar},
	{"<<", grammar.SymShiftLeft},
	{">>", grammar.SymShiftRight},
	{"<=", grammar.SymLtEq},
	{">=", grammar.SymGtEq},
	{"==", grammar.SymEq},
	{"!=", grammar.SymNeq},
	{"*=", grammar.SymAsteriskEqual},
	{"/=", grammar.SymSlashEqual},
	{"%=", grammar.SymPercentEqual},
	{"+=", grammar.SymPlusEqual},
	{"-=", grammar.SymMinusEqual},
	{"&=", grammar.SymAmpersandEqual},
	{"^=", grammar.SymCaretEqual},
	{"|=", grammar.SymVerticalBarEqual},

	{"{", grammar.SymLBrace}, {"}", grammar.SymRBrace},
	{"[", grammar.SymLBracket}, {"]", grammar.SymRBracket},
	{"(", grammar.SymLParen}, {")", grammar.SymRParen},
	{";", grammar.SymSemicolon}, {":", grammar.SymColon},
	{",", grammar.SymComma}, {".", grammar.SymDot},
	{"=", grammar.SymEqual}, {"?", grammar.SymQuestionMark},
	{"&", grammar.SymAmpersand}, {"*", grammar.SymAsterisk},
	{"+", grammar.SymPlus}, {"-", grammar.SymMinus},
	{"!", grammar.SymBang}, {"/", grammar.SymSlash},
	{"%", grammar.SymPercent}, {"<", grammar.SymLt},
	{">", grammar.SymGt}, {"^", grammar.SymCaret},
	{"|", grammar.SymVerticalBar},
}

func (l *Lexer) scanOperator(row, col int) (Token, bool) {
	for _, op := range operators {
		if l.matches(op.text) {
			for range op.text {
				l.advance()
			}
			return Token{Kind: op.kind, Lexeme: op.text, Row: row, Col: col}, true
		}
	}
	return Token{}, false
}

func (l *Lexer) matches(text string) bool {
	for i := 0; i < len(text); i++ {
		if l.peek(i) != text[i] {
			return false
		}
	}
	return true
}
