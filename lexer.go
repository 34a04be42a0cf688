// lexer.go — source text to token stream.
package hixa

import (
	"fmt"
	"strconv"
)

// TokenType represents the kind of token.
type TokenType int

const (
	// Special
	EOF TokenType = iota
	ILLEGAL
	COMMENT // only emitted by ScanWithComments, for the formatter

	// Literals & identifiers
	IDENT
	NUMBER
	STRING

	// Punctuation
	LPAREN   // "("
	RPAREN   // ")"
	LBRACE   // "{"
	RBRACE   // "}"
	LBRACKET // "["
	RBRACKET // "]"
	SEMI     // ";"
	COMMA    // ","

	// Operators
	PLUS    // "+"
	MINUS   // "-"
	STAR    // "*"
	SLASH   // "/"
	PERCENT // "%"
	ASSIGN  // "="
	EQ      // "=="
	NEQ     // "!="
	LT      // "<"
	LTE     // "<="
	GT      // ">"
	GTE     // ">="
	AND     // "&&" or "aru"
	OR      // "||" or "ba"
	NOT     // "!" or "not_kora"

	// Keywords (each with two accepted spellings, see alias.go)
	LET
	FN
	IF
	ELSE
	WHILE
	FOR
	BREAK
	CONTINUE
	RETURN
	TRUE
	FALSE
	NULL
)

var tokenNames = map[TokenType]string{
	EOF: "EOF", ILLEGAL: "ILLEGAL", COMMENT: "COMMENT",
	IDENT: "IDENT", NUMBER: "NUMBER", STRING: "STRING",
	LPAREN: "LPAREN", RPAREN: "RPAREN", LBRACE: "LBRACE", RBRACE: "RBRACE",
	LBRACKET: "LBRACKET", RBRACKET: "RBRACKET", SEMI: "SEMI", COMMA: "COMMA",
	PLUS: "PLUS", MINUS: "MINUS", STAR: "STAR", SLASH: "SLASH", PERCENT: "PERCENT",
	ASSIGN: "ASSIGN", EQ: "EQ", NEQ: "NEQ", LT: "LT", LTE: "LTE", GT: "GT", GTE: "GTE",
	AND: "AND", OR: "OR", NOT: "NOT",
	LET: "LET", FN: "FN", IF: "IF", ELSE: "ELSE", WHILE: "WHILE", FOR: "FOR",
	BREAK: "BREAK", CONTINUE: "CONTINUE", RETURN: "RETURN",
	TRUE: "TRUE", FALSE: "FALSE", NULL: "NULL",
}

func (t TokenType) String() string {
	if s, ok := tokenNames[t]; ok {
		return s
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token is a lexical token with optional literal value.
type Token struct {
	Type    TokenType
	Lexeme  string      // raw text slice
	Literal interface{} // float64 for NUMBER, string for STRING, bool for TRUE/FALSE
	Line    int         // 1-based
	Col     int         // 1-based
}

func (t Token) String() string {
	switch t.Type {
	case EOF:
		return fmt.Sprintf("%4d:%-3d EOF", t.Line, t.Col)
	case NUMBER, STRING:
		return fmt.Sprintf("%4d:%-3d %-8s %q (%v)", t.Line, t.Col, t.Type, t.Lexeme, t.Literal)
	default:
		return fmt.Sprintf("%4d:%-3d %-8s %q", t.Line, t.Col, t.Type, t.Lexeme)
	}
}

// Lexer scans a Hixa source string into tokens.
type Lexer struct {
	src    string
	start  int // start index of current token
	cur    int // current index
	line   int // 1-based
	col    int // 1-based column of the next unread byte
	tokens []Token

	interactive  bool // unterminated string/comment at EOF → IncompleteError
	keepComments bool

	// position of the token being scanned
	tokStartLine int
	tokStartCol  int
}

// NewLexer creates a lexer for the given source.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

// NewLexerInteractive creates a lexer whose end-of-input failures report
// as incomplete rather than as hard errors. Used by the REPL.
func NewLexerInteractive(src string) *Lexer {
	l := NewLexer(src)
	l.interactive = true
	return l
}

func (l *Lexer) isAtEnd() bool { return l.cur >= len(l.src) }

func (l *Lexer) peek() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	return l.src[l.cur], true
}

func (l *Lexer) peekN(n int) (byte, bool) {
	idx := l.cur + n
	if idx >= len(l.src) {
		return 0, false
	}
	return l.src[idx], true
}

func (l *Lexer) advance() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	ch := l.src[l.cur]
	l.cur++
	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return ch, true
}

func (l *Lexer) addToken(tt TokenType, lit interface{}) Token {
	tok := Token{
		Type:    tt,
		Lexeme:  l.src[l.start:l.cur],
		Literal: lit,
		Line:    l.tokStartLine,
		Col:     l.tokStartCol,
	}
	l.tokens = append(l.tokens, tok)
	l.start = l.cur
	return tok
}

func (l *Lexer) skipWhitespace() {
	for !l.isAtEnd() {
		ch, _ := l.peek()
		switch ch {
		case ' ', '\t', '\r', '\n':
			l.advance()
			l.start = l.cur
		default:
			return
		}
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' }
func isAlphaNum(b byte) bool {
	return (b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9') ||
		b == '_'
}

// ----- errors -----

func (l *Lexer) err(msg string) error {
	return &LexError{Line: l.line, Col: l.col, Msg: msg}
}

// errAtEnd marks failures caused purely by running out of input. In
// interactive mode these become IncompleteError so the REPL keeps
// reading instead of reporting.
func (l *Lexer) errAtEnd(msg string) error {
	e := l.err(msg)
	if l.interactive {
		return &IncompleteError{Err: e}
	}
	return e
}

// ----- scanners -----

// scanString reads a string literal. Either quote character delimits;
// there is no escape processing and no interpolation — the literal runs
// until the matching quote, newlines included.
func (l *Lexer) scanString(delim byte) (string, error) {
	for {
		ch, ok := l.advance()
		if !ok {
			return "", l.errAtEnd("string was not terminated")
		}
		if ch == delim {
			break
		}
	}
	return l.src[l.start+1 : l.cur-1], nil
}

// scanIdentifier reads [A-Za-z_][A-Za-z0-9_]*; the first char is
// already consumed.
func (l *Lexer) scanIdentifier() string {
	for {
		b, ok := l.peek()
		if !ok || !isAlphaNum(b) {
			break
		}
		l.advance()
	}
	return l.src[l.start:l.cur]
}

// scanNumber reads digits with an optional fractional part. A leading
// '-' is never part of the literal; it stays a separate operator token.
// Every numeric literal becomes a float64.
func (l *Lexer) scanNumber() (float64, error) {
	for {
		b, ok := l.peek()
		if !ok || !isDigit(b) {
			break
		}
		l.advance()
	}
	if b, ok := l.peek(); ok && b == '.' {
		l.advance()
		for {
			b, ok := l.peek()
			if !ok || !isDigit(b) {
				break
			}
			l.advance()
		}
	}
	lex := l.src[l.start:l.cur]
	v, err := strconv.ParseFloat(lex, 64)
	if err != nil {
		return 0, l.err(fmt.Sprintf("malformed number %q", lex))
	}
	return v, nil
}

// scanLineComment consumes "//" to end of line ("//" already consumed).
func (l *Lexer) scanLineComment() {
	for {
		b, ok := l.peek()
		if !ok || b == '\n' {
			return
		}
		l.advance()
	}
}

// scanBlockComment consumes a non-nesting "/* ... */" ("/*" already
// consumed).
func (l *Lexer) scanBlockComment() error {
	for {
		b, ok := l.advance()
		if !ok {
			return l.errAtEnd("block comment was not terminated")
		}
		if b == '*' {
			if b2, ok2 := l.peek(); ok2 && b2 == '/' {
				l.advance()
				return nil
			}
		}
	}
}

// ----- main scanner -----

func (l *Lexer) scanToken() (Token, error) {
	for {
		l.skipWhitespace()
		l.tokStartLine = l.line
		l.tokStartCol = l.col
		l.start = l.cur

		if l.isAtEnd() {
			return l.addToken(EOF, nil), nil
		}

		ch, _ := l.advance()

		switch ch {
		case '(':
			return l.addToken(LPAREN, nil), nil
		case ')':
			return l.addToken(RPAREN, nil), nil
		case '{':
			return l.addToken(LBRACE, nil), nil
		case '}':
			return l.addToken(RBRACE, nil), nil
		case '[':
			return l.addToken(LBRACKET, nil), nil
		case ']':
			return l.addToken(RBRACKET, nil), nil
		case ';':
			return l.addToken(SEMI, nil), nil
		case ',':
			return l.addToken(COMMA, nil), nil
		case '+':
			return l.addToken(PLUS, nil), nil
		case '-':
			return l.addToken(MINUS, nil), nil
		case '*':
			return l.addToken(STAR, nil), nil
		case '%':
			return l.addToken(PERCENT, nil), nil
		case '/':
			if b, ok := l.peek(); ok && b == '/' {
				l.scanLineComment()
				if l.keepComments {
					return l.addToken(COMMENT, nil), nil
				}
				l.start = l.cur
				continue
			}
			if b, ok := l.peek(); ok && b == '*' {
				l.advance()
				if err := l.scanBlockComment(); err != nil {
					return Token{}, err
				}
				if l.keepComments {
					return l.addToken(COMMENT, nil), nil
				}
				l.start = l.cur
				continue
			}
			return l.addToken(SLASH, nil), nil
		case '=':
			if b, ok := l.peek(); ok && b == '=' {
				l.advance()
				return l.addToken(EQ, nil), nil
			}
			return l.addToken(ASSIGN, nil), nil
		case '!':
			if b, ok := l.peek(); ok && b == '=' {
				l.advance()
				return l.addToken(NEQ, nil), nil
			}
			return l.addToken(NOT, nil), nil
		case '<':
			if b, ok := l.peek(); ok && b == '=' {
				l.advance()
				return l.addToken(LTE, nil), nil
			}
			return l.addToken(LT, nil), nil
		case '>':
			if b, ok := l.peek(); ok && b == '=' {
				l.advance()
				return l.addToken(GTE, nil), nil
			}
			return l.addToken(GT, nil), nil
		case '&':
			if b, ok := l.peek(); ok && b == '&' {
				l.advance()
				return l.addToken(AND, nil), nil
			}
			return Token{}, l.err("unexpected character: '&' (did you mean '&&'?)")
		case '|':
			if b, ok := l.peek(); ok && b == '|' {
				l.advance()
				return l.addToken(OR, nil), nil
			}
			return Token{}, l.err("unexpected character: '|' (did you mean '||'?)")
		}

		if ch == '"' || ch == '\'' {
			text, err := l.scanString(ch)
			if err != nil {
				return Token{}, err
			}
			return l.addToken(STRING, text), nil
		}

		if isDigit(ch) {
			v, err := l.scanNumber()
			if err != nil {
				return Token{}, err
			}
			return l.addToken(NUMBER, v), nil
		}

		if isAlpha(ch) {
			lex := l.scanIdentifier()
			if tt, ok := KeywordKind(lex); ok {
				switch tt {
				case TRUE:
					return l.addToken(TRUE, true), nil
				case FALSE:
					return l.addToken(FALSE, false), nil
				case NULL:
					return l.addToken(NULL, nil), nil
				default:
					return l.addToken(tt, nil), nil
				}
			}
			return l.addToken(IDENT, lex), nil
		}

		return Token{}, l.err(fmt.Sprintf("unexpected character: %q", ch))
	}
}

// Scan tokenizes the entire source and returns tokens (EOF included).
func (l *Lexer) Scan() ([]Token, error) {
	for {
		tok, err := l.scanToken()
		if err != nil {
			return nil, err
		}
		if tok.Type == EOF {
			return l.tokens, nil
		}
	}
}

// ScanWithComments tokenizes like Scan but keeps COMMENT tokens in the
// stream. The formatter depends on this; nothing else should.
func (l *Lexer) ScanWithComments() ([]Token, error) {
	l.keepComments = true
	return l.Scan()
}
