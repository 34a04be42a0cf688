// format.go — the canonical source formatter.
//
// Format reprints the token stream (comments included) with one
// statement per line, four-space indentation per brace depth, spaces
// around binary operators and after commas, and no space inside
// parentheses or brackets. It never parses: a file that lexes but does
// not parse still formats. Keyword spellings are preserved exactly as
// written — the formatter must not translate between the keyword sets.
// Formatting is idempotent.
package hixa

import "strings"

// Format returns the canonical rendition of src, or the LexError that
// prevented tokenizing it.
func Format(src string) (string, error) {
	toks, err := NewLexer(src).ScanWithComments()
	if err != nil {
		return "", err
	}
	f := &formatter{}
	return f.print(toks), nil
}

type formatter struct {
	out     strings.Builder
	line    strings.Builder
	indent  int // brace depth captured when the current line started
	depth   int
	paren   int // ( and [ nesting; semicolons inside a for header do not end the line
	prev    Token
	prevSet bool
	// prevUnary marks a just-emitted symbolic unary '-' or '!', which
	// binds tight to its operand: "-x", not "- x".
	prevUnary bool
}

func (f *formatter) print(toks []Token) string {
	for i, tok := range toks {
		switch tok.Type {
		case EOF:
			// done below

		case LBRACE:
			f.append(tok)
			if !trailingComment(toks, i) {
				f.flush()
			}
			f.depth++

		case RBRACE:
			f.flush()
			if f.depth > 0 {
				f.depth--
			}
			f.append(tok)
			// "} else" stays on one line; anything else starts fresh,
			// unless a trailing comment still belongs to this line.
			if (i+1 >= len(toks) || toks[i+1].Type != ELSE) && !trailingComment(toks, i) {
				f.flush()
			}

		case SEMI:
			f.append(tok)
			if f.paren == 0 && !trailingComment(toks, i) {
				f.flush()
			}

		case COMMENT:
			if f.line.Len() > 0 && f.prevSet && tok.Line == f.prev.Line {
				// Trailing comment: keep it on the statement's line.
				f.line.WriteString("  " + tok.Lexeme)
				f.prev = tok
				f.flush()
			} else {
				f.flush()
				f.append(tok)
				f.flush()
			}

		case LPAREN, LBRACKET:
			f.append(tok)
			f.paren++

		case RPAREN, RBRACKET:
			if f.paren > 0 {
				f.paren--
			}
			f.append(tok)

		default:
			f.append(tok)
		}
	}
	f.flush()
	return f.out.String()
}

func (f *formatter) append(tok Token) {
	atLineStart := f.line.Len() == 0
	if atLineStart {
		f.indent = f.depth
		// One blank line survives wherever the source had a gap.
		if f.prevSet && tok.Line > f.prev.Line+1 {
			f.out.WriteByte('\n')
		}
	} else if f.needSpace(tok) {
		f.line.WriteByte(' ')
	}
	f.line.WriteString(tok.Lexeme)

	f.prevUnary = (tok.Type == MINUS || tok.Type == NOT) &&
		!isWordLexeme(tok.Lexeme) && f.isUnaryContext(atLineStart)
	f.prev = tok
	f.prevSet = true
}

func (f *formatter) flush() {
	if f.line.Len() == 0 {
		return
	}
	f.out.WriteString(strings.Repeat("    ", f.indent))
	f.out.WriteString(f.line.String())
	f.out.WriteByte('\n')
	f.line.Reset()
}

// isUnaryContext reports whether a '-' or '!' emitted now is a prefix
// operator rather than a binary one: true at a line start and after
// anything that cannot end an operand.
func (f *formatter) isUnaryContext(atLineStart bool) bool {
	if atLineStart || !f.prevSet {
		return true
	}
	switch f.prev.Type {
	case NUMBER, STRING, IDENT, RPAREN, RBRACKET, TRUE, FALSE, NULL:
		return false
	}
	return true
}

func (f *formatter) needSpace(cur Token) bool {
	switch cur.Type {
	case RPAREN, RBRACKET, COMMA, SEMI:
		return false
	case LPAREN:
		// Call syntax hugs the callee; keyword headers get a space.
		switch f.prev.Type {
		case IDENT, RPAREN, RBRACKET:
			return false
		}
	case LBRACKET:
		// Indexing hugs; an array literal after '=' or ',' does not.
		switch f.prev.Type {
		case IDENT, RPAREN, RBRACKET, STRING:
			return false
		}
	}
	switch f.prev.Type {
	case LPAREN, LBRACKET:
		return false
	}
	if f.prevUnary {
		return false
	}
	return true
}

// trailingComment reports whether the token after i is a comment on the
// same source line, in which case the current output line stays open so
// the comment can attach to it.
func trailingComment(toks []Token, i int) bool {
	return i+1 < len(toks) && toks[i+1].Type == COMMENT && toks[i+1].Line == toks[i].Line
}

// isWordLexeme reports an alphabetic spelling (not_kora, aru, ba),
// which always needs surrounding spaces.
func isWordLexeme(lex string) bool {
	return len(lex) > 0 && (lex[0] == '_' ||
		(lex[0] >= 'a' && lex[0] <= 'z') || (lex[0] >= 'A' && lex[0] <= 'Z'))
}
