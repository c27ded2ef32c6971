// Package ast defines the token types, the Token struct and the syntax tree
// used by the QuestLang lexer and parser.
//
// Tokens are the smallest meaningful units of a QuestLang source file. Every
// token carries its type, the exact literal text it was scanned from, and the
// byte offset of its first character. Line and column are not stored on the
// token; they are derived from the offset only when a diagnostic needs them
// (see package diag).
package ast

// TokenType identifies the category of a scanned token.
type TokenType int

const (
	// ── Special ────────────────────────────────────────────────────────────────

	// ERROR covers input the lexer could not classify: a digit run glued to a
	// letter (123abc) or a character that starts no valid token (@, #, a lone &).
	// It is a regular token kind; the parser reports it, the lexer never fails.
	ERROR TokenType = iota
	// EOF is returned by the incremental lexer once the input is exhausted.
	// Token slices produced by lexer.Tokenize never contain it.
	EOF

	// ── Literals ───────────────────────────────────────────────────────────────

	// IDENT is an identifier: [a-zA-Z_][a-zA-Z0-9_]*
	IDENT
	// NUMBER is a decimal digit run: [0-9]+
	NUMBER

	// ── Commands ───────────────────────────────────────────────────────────────

	MOVE_UP
	MOVE_DOWN
	MOVE_LEFT
	MOVE_RIGHT
	JUMP
	ATTACK
	DEFEND

	// ── Control keywords ───────────────────────────────────────────────────────

	IF
	ELSE
	WHILE
	FOR

	// ── Operators ──────────────────────────────────────────────────────────────

	// PLUS and MINUS are the only operators the grammar consumes. The rest are
	// scanned so that programs using them get a precise diagnostic.
	PLUS
	MINUS
	ASTERISK
	SLASH
	AND  // &&
	OR   // ||
	BANG // !

	// ── Delimiters ─────────────────────────────────────────────────────────────

	LPAREN
	RPAREN
	LBRACE
	RBRACE
	SEMICOLON

	// NEWLINE is significant: it separates statements.
	NEWLINE
)

var tokenNames = map[TokenType]string{
	ERROR:      "Error",
	EOF:        "EOF",
	IDENT:      "Identifier",
	NUMBER:     "Number",
	MOVE_UP:    "MoveUp",
	MOVE_DOWN:  "MoveDown",
	MOVE_LEFT:  "MoveLeft",
	MOVE_RIGHT: "MoveRight",
	JUMP:       "Jump",
	ATTACK:     "Attack",
	DEFEND:     "Defend",
	IF:         "If",
	ELSE:       "Else",
	WHILE:      "While",
	FOR:        "For",
	PLUS:       "Plus",
	MINUS:      "Minus",
	ASTERISK:   "Mul",
	SLASH:      "Div",
	AND:        "LogicalAnd",
	OR:         "LogicalOr",
	BANG:       "LogicalNot",
	LPAREN:     "LParen",
	RPAREN:     "RParen",
	LBRACE:     "LBrace",
	RBRACE:     "RBrace",
	SEMICOLON:  "Semicolon",
	NEWLINE:    "Newline",
}

// String returns the debugging name of the token type, e.g. "MoveUp".
func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return "Unknown"
}

// IsCommand reports whether tt is one of the seven command keywords.
func (tt TokenType) IsCommand() bool {
	return tt >= MOVE_UP && tt <= DEFEND
}

// keywords maps the literal text of every QuestLang keyword to its TokenType.
// The lexer consults this map when it finishes scanning an identifier-shaped
// word, so a keyword only matches when it is the whole word: "move_upper" and
// "iffy" stay identifiers.
var keywords = map[string]TokenType{
	"move_up":    MOVE_UP,
	"move_down":  MOVE_DOWN,
	"move_left":  MOVE_LEFT,
	"move_right": MOVE_RIGHT,
	"jump":       JUMP,
	"attack":     ATTACK,
	"defend":     DEFEND,
	"if":         IF,
	"else":       ELSE,
	"while":      WHILE,
	"for":        FOR,
}

// LookupIdent checks whether ident is a reserved keyword and returns the
// corresponding TokenType. If ident is not a keyword, IDENT is returned.
func LookupIdent(ident string) TokenType {
	if tt, ok := keywords[ident]; ok {
		return tt
	}
	return IDENT
}

// Token is a single lexical unit produced by the QuestLang lexer.
//
// Fields:
//   - Type   : the category of this token (see TokenType constants)
//   - Literal: the exact source text that was scanned
//   - Offset : 0-based byte offset of the first character in the source
type Token struct {
	Type    TokenType
	Literal string
	Offset  int
}

// String returns the literal text of the token.
func (t Token) String() string {
	return t.Literal
}
