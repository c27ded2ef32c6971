// Package lexer implements the QuestLang lexer (tokeniser).
//
// The lexer converts a QuestLang source string into a flat stream of
// [ast.Token] values. [Tokenize] returns the whole stream at once, which is
// what the parser consumes; [New] and [Lexer.NextToken] give the incremental
// form it is built on.
//
// Classification priority, highest first:
//   - spaces, tabs, carriage returns, form feeds and // comments are skipped;
//   - '\n' is a NEWLINE token;
//   - a digit run glued to a letter (123abc) is one ERROR token;
//   - a digit run is a NUMBER;
//   - an identifier-shaped word is a keyword if the whole word is one, else IDENT;
//   - two-character operators (&&, ||) win over anything shorter;
//   - single-character operators and punctuation;
//   - any other character is an ERROR token covering that character.
//
// The lexer never fails: invalid input always becomes an ERROR token and the
// parser decides how to report it.
package lexer

import (
	"unicode/utf8"

	"github.com/metaphox/quest-lang/ast"
)

// Lexer holds all state required to tokenise a single QuestLang source string.
// Create one with [New]; never copy a Lexer after first use.
type Lexer struct {
	input   string // the full source text
	pos     int    // current read position (index of ch)
	readPos int    // next read position (pos + 1)
	ch      byte   // current character under examination, 0 at end of input
}

// New creates a [Lexer] that tokenises the given input string.
func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// Tokenize scans the whole input and returns every token in source order.
// The trailing EOF is not included: callers treat the end of the slice as the
// end of input. The empty string yields an empty (nil) slice.
func Tokenize(input string) []ast.Token {
	l := New(input)
	var toks []ast.Token
	for {
		tok := l.NextToken()
		if tok.Type == ast.EOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

// NextToken returns the next token from the input. Once the input is
// exhausted it returns a token with Type == [ast.EOF] on every call.
func (l *Lexer) NextToken() ast.Token {
	l.skipWhitespaceAndComments()

	start := l.pos

	switch l.ch {
	// ── End of input ────────────────────────────────────────────────────────
	case 0:
		if l.pos >= len(l.input) {
			return ast.Token{Type: ast.EOF, Offset: len(l.input)}
		}
		// A literal NUL byte inside the source is not a valid token.
		l.readChar()
		return l.makeToken(ast.ERROR, start)

	case '\n':
		l.readChar()
		return l.makeToken(ast.NEWLINE, start)

	// ── Single-character operators and delimiters ───────────────────────────
	case '+':
		return l.single(ast.PLUS)
	case '-':
		return l.single(ast.MINUS)
	case '*':
		return l.single(ast.ASTERISK)
	case '/':
		// A second '/' would have been consumed as a comment.
		return l.single(ast.SLASH)
	case '!':
		return l.single(ast.BANG)
	case '(':
		return l.single(ast.LPAREN)
	case ')':
		return l.single(ast.RPAREN)
	case '{':
		return l.single(ast.LBRACE)
	case '}':
		return l.single(ast.RBRACE)
	case ';':
		return l.single(ast.SEMICOLON)

	// ── Two-character operators ─────────────────────────────────────────────
	case '&':
		return l.pair('&', ast.AND)
	case '|':
		return l.pair('|', ast.OR)
	}

	switch {
	case isDigit(l.ch):
		return l.readNumber()
	case isLetter(l.ch):
		return l.readIdentifier()
	}

	// Unknown input: one ERROR token per character. Multi-byte UTF-8
	// sequences are kept together so the literal stays printable.
	_, size := utf8.DecodeRuneInString(l.input[l.pos:])
	for i := 0; i < size; i++ {
		l.readChar()
	}
	return l.makeToken(ast.ERROR, start)
}

// ── Internal helpers ──────────────────────────────────────────────────────────

// readChar advances the lexer by one byte. At the end of input l.ch is 0 and
// l.pos stays at len(input).
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
		l.pos = len(l.input)
		l.readPos = len(l.input) + 1
		return
	}
	l.ch = l.input[l.readPos]
	l.pos = l.readPos
	l.readPos++
}

// peekChar returns the next character without consuming it.
// Returns 0 when the end of input has been reached.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// makeToken builds a token spanning input[start:l.pos].
// The cursor must already be past the token's last character.
func (l *Lexer) makeToken(tt ast.TokenType, start int) ast.Token {
	return ast.Token{Type: tt, Literal: l.input[start:l.pos], Offset: start}
}

// single consumes the current character as a token of type tt.
func (l *Lexer) single(tt ast.TokenType) ast.Token {
	start := l.pos
	l.readChar()
	return l.makeToken(tt, start)
}

// pair consumes a doubled character such as "&&". A lone first character is
// an ERROR token.
func (l *Lexer) pair(second byte, tt ast.TokenType) ast.Token {
	start := l.pos
	if l.peekChar() != second {
		l.readChar()
		return l.makeToken(ast.ERROR, start)
	}
	l.readChar()
	l.readChar()
	return l.makeToken(tt, start)
}

// skipWhitespaceAndComments advances past blanks and // comments. Newlines
// are significant and stop the skip; a comment ends just before its newline.
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch l.ch {
		case ' ', '\t', '\r', '\f':
			l.readChar()
		case '/':
			if l.peekChar() != '/' {
				return // lone '/' is the division operator
			}
			for l.ch != '\n' && l.pos < len(l.input) {
				l.readChar()
			}
		default:
			return
		}
	}
}

// readIdentifier scans an identifier-shaped word and classifies it via
// [ast.LookupIdent]. The cursor ends on the first character after the word.
func (l *Lexer) readIdentifier() ast.Token {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	tok := l.makeToken(ast.IDENT, start)
	tok.Type = ast.LookupIdent(tok.Literal)
	return tok
}

// readNumber scans a digit run. When a letter follows the digits the whole
// run [0-9]+[a-zA-Z][a-zA-Z0-9_]* becomes a single ERROR token; it is never
// split into a NUMBER followed by an IDENT. An underscore directly after the
// digits does not trigger this rule, matching the pattern above.
func (l *Lexer) readNumber() ast.Token {
	start := l.pos
	for isDigit(l.ch) {
		l.readChar()
	}
	if isAlpha(l.ch) {
		for isLetter(l.ch) || isDigit(l.ch) {
			l.readChar()
		}
		return l.makeToken(ast.ERROR, start)
	}
	return l.makeToken(ast.NUMBER, start)
}

// isAlpha reports whether b is an ASCII letter.
func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// isLetter reports whether b may start or continue an identifier.
func isLetter(b byte) bool {
	return isAlpha(b) || b == '_'
}

// isDigit reports whether b is an ASCII decimal digit (0-9).
func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
