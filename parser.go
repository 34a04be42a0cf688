// parser.go — recursive-descent parser for Hixa.
//
// OVERVIEW
// --------
// Consumes the token stream produced by lexer.go and builds the AST of
// ast.go. The grammar is the classic statement/expression split:
//
//	program   := stmt* EOF
//	block     := "{" stmt* "}"
//	stmt      := varDecl | fnDecl | ifStmt | whileStmt | forStmt
//	           | breakStmt | continueStmt | returnStmt | block | exprStmt
//
// with one expression cascade, lowest to highest precedence:
//
//	assignment → or → and → equality → relational → additive
//	→ multiplicative → unary → call/index postfix → primary
//
// Both keyword spelling sets drive the same productions: the lexer has
// already canonicalized `jodi`/`if`, `dhora`/`let`, etc. into one token
// type each, so the parser never sees the bilinguality at all.
//
// Parsing halts at the first error. In interactive mode, an error caused
// purely by running out of tokens (unclosed brace, missing ';' at end of
// input, dangling operator) is reported as IncompleteError so the REPL
// can prompt for a continuation line.
package hixa

import (
	"fmt"
)

// Parse parses a complete Hixa source string into a Program.
func Parse(src string) (*Program, error) {
	lex := NewLexer(src)
	toks, err := lex.Scan()
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	return p.program()
}

// ParseInteractive parses in REPL-friendly mode: constructs left
// unterminated at EOF produce an error satisfying IsIncomplete.
func ParseInteractive(src string) (*Program, error) {
	lex := NewLexerInteractive(src)
	toks, err := lex.Scan()
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, interactive: true}
	return p.program()
}

// Check runs lexer and parser only: no evaluation, no side effects.
// A nil return means the source is syntactically valid.
func Check(src string) error {
	_, err := Parse(src)
	return err
}

type parser struct {
	toks        []Token
	i           int
	interactive bool
}

// ----- token basics -----

func (p *parser) atEnd() bool { return p.peek().Type == EOF }

func (p *parser) peek() Token {
	if p.i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.i]
}

func (p *parser) prev() Token { return p.toks[p.i-1] }

func (p *parser) check(t TokenType) bool { return p.peek().Type == t }

func (p *parser) match(tt ...TokenType) bool {
	for _, t := range tt {
		if p.peek().Type == t {
			p.i++
			return true
		}
	}
	return false
}

// need consumes a token of type t or fails with msg. At EOF in
// interactive mode the failure is incomplete rather than hard.
func (p *parser) need(t TokenType, msg string) (Token, error) {
	if p.match(t) {
		return p.prev(), nil
	}
	return Token{}, p.errAt(p.peek(), msg)
}

func (p *parser) errAt(tok Token, msg string) error {
	e := &ParseError{Line: tok.Line, Col: tok.Col, Msg: msg}
	if p.interactive && tok.Type == EOF {
		return &IncompleteError{Err: e}
	}
	return e
}

// ----- statements -----

func (p *parser) program() (*Program, error) {
	prog := &Program{}
	for !p.atEnd() {
		st, err := p.statement()
		if err != nil {
			return nil, err
		}
		prog.Stmts = append(prog.Stmts, st)
	}
	return prog, nil
}

func (p *parser) statement() (Stmt, error) {
	switch {
	case p.match(LET):
		return p.varDecl()
	case p.match(FN):
		return p.functionDecl()
	case p.match(IF):
		return p.ifStmt()
	case p.match(WHILE):
		return p.whileStmt()
	case p.match(FOR):
		return p.forStmt()
	case p.match(BREAK):
		tok := p.prev()
		if _, err := p.need(SEMI, "expected ';' after break"); err != nil {
			return nil, err
		}
		return &BreakStmt{Line: tok.Line, Col: tok.Col}, nil
	case p.match(CONTINUE):
		tok := p.prev()
		if _, err := p.need(SEMI, "expected ';' after continue"); err != nil {
			return nil, err
		}
		return &ContinueStmt{Line: tok.Line, Col: tok.Col}, nil
	case p.match(RETURN):
		return p.returnStmt()
	case p.check(LBRACE):
		return p.block()
	default:
		return p.exprStmt()
	}
}

func (p *parser) varDecl() (Stmt, error) {
	kw := p.prev()
	name, err := p.need(IDENT, "expected variable name")
	if err != nil {
		return nil, err
	}
	if _, err := p.need(ASSIGN, "expected '=' after variable name"); err != nil {
		return nil, err
	}
	init, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.need(SEMI, "expected ';' after variable declaration"); err != nil {
		return nil, err
	}
	return &VarDecl{Name: name.Lexeme, Init: init, Line: kw.Line, Col: kw.Col}, nil
}

func (p *parser) functionDecl() (Stmt, error) {
	kw := p.prev()
	name, err := p.need(IDENT, "expected function name")
	if err != nil {
		return nil, err
	}
	if _, err := p.need(LPAREN, "expected '(' after function name"); err != nil {
		return nil, err
	}
	var params []string
	if !p.check(RPAREN) {
		for {
			param, err := p.need(IDENT, "expected parameter name")
			if err != nil {
				return nil, err
			}
			params = append(params, param.Lexeme)
			if !p.match(COMMA) {
				break
			}
		}
	}
	if _, err := p.need(RPAREN, "expected ')' after parameters"); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &FunctionDecl{
		Name:   name.Lexeme,
		Params: params,
		Body:   body,
		Line:   kw.Line,
		Col:    kw.Col,
	}, nil
}

func (p *parser) ifStmt() (Stmt, error) {
	kw := p.prev()
	if _, err := p.need(LPAREN, "expected '(' after 'if'"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.need(RPAREN, "expected ')' after condition"); err != nil {
		return nil, err
	}
	then, err := p.block()
	if err != nil {
		return nil, err
	}
	node := &If{Cond: cond, Then: then, Line: kw.Line, Col: kw.Col}
	// A dangling else binds here, to the nearest unmatched if; an
	// else-if chain becomes a nested If in the else branch.
	if p.match(ELSE) {
		if p.match(IF) {
			nested, err := p.ifStmt()
			if err != nil {
				return nil, err
			}
			node.Else = nested
		} else {
			alt, err := p.block()
			if err != nil {
				return nil, err
			}
			node.Else = alt
		}
	}
	return node, nil
}

func (p *parser) whileStmt() (Stmt, error) {
	kw := p.prev()
	if _, err := p.need(LPAREN, "expected '(' after 'while'"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.need(RPAREN, "expected ')' after condition"); err != nil {
		return nil, err
	}
	// Accepted and meaningless, per the grammar.
	p.match(SEMI)
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &While{Cond: cond, Body: body, Line: kw.Line, Col: kw.Col}, nil
}

func (p *parser) forStmt() (Stmt, error) {
	kw := p.prev()
	if _, err := p.need(LPAREN, "expected '(' after 'for'"); err != nil {
		return nil, err
	}

	var init Stmt
	switch {
	case p.match(SEMI):
		// no initializer
	case p.match(LET):
		st, err := p.varDecl()
		if err != nil {
			return nil, err
		}
		init = st
	default:
		st, err := p.exprStmt()
		if err != nil {
			return nil, err
		}
		init = st
	}

	var cond Expr
	if !p.check(SEMI) {
		c, err := p.expression()
		if err != nil {
			return nil, err
		}
		cond = c
	}
	if _, err := p.need(SEMI, "expected ';' after loop condition"); err != nil {
		return nil, err
	}

	var step Expr
	if !p.check(RPAREN) {
		s, err := p.expression()
		if err != nil {
			return nil, err
		}
		step = s
	}
	if _, err := p.need(RPAREN, "expected ')' after loop clauses"); err != nil {
		return nil, err
	}

	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &For{Init: init, Cond: cond, Step: step, Body: body, Line: kw.Line, Col: kw.Col}, nil
}

func (p *parser) returnStmt() (Stmt, error) {
	kw := p.prev()
	var value Expr
	if !p.check(SEMI) {
		v, err := p.expression()
		if err != nil {
			return nil, err
		}
		value = v
	}
	if _, err := p.need(SEMI, "expected ';' after return value"); err != nil {
		return nil, err
	}
	return &ReturnStmt{Value: value, Line: kw.Line, Col: kw.Col}, nil
}

func (p *parser) block() (*Block, error) {
	open, err := p.need(LBRACE, "expected '{'")
	if err != nil {
		return nil, err
	}
	blk := &Block{Line: open.Line, Col: open.Col}
	for !p.check(RBRACE) {
		if p.atEnd() {
			return nil, p.errAt(p.peek(), "expected '}' to close block")
		}
		st, err := p.statement()
		if err != nil {
			return nil, err
		}
		blk.Stmts = append(blk.Stmts, st)
	}
	p.match(RBRACE)
	return blk, nil
}

func (p *parser) exprStmt() (Stmt, error) {
	lead := p.peek()
	x, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.need(SEMI, "expected ';' after expression"); err != nil {
		return nil, err
	}
	return &ExpressionStmt{X: x, Line: lead.Line, Col: lead.Col}, nil
}

// ----- expressions -----

func (p *parser) expression() (Expr, error) {
	return p.assignment()
}

func (p *parser) assignment() (Expr, error) {
	target, err := p.logicalOr()
	if err != nil {
		return nil, err
	}
	if p.match(ASSIGN) {
		eq := p.prev()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}
		switch target.(type) {
		case *Variable, *Index:
			line, col := target.Pos()
			return &Assign{Target: target, Value: value, Line: line, Col: col}, nil
		}
		return nil, p.errAt(eq, "invalid assignment target")
	}
	return target, nil
}

func (p *parser) logicalOr() (Expr, error) {
	l, err := p.logicalAnd()
	if err != nil {
		return nil, err
	}
	for p.match(OR) {
		op := p.prev()
		r, err := p.logicalAnd()
		if err != nil {
			return nil, err
		}
		l = &Logical{Op: OR, L: l, R: r, Line: op.Line, Col: op.Col}
	}
	return l, nil
}

func (p *parser) logicalAnd() (Expr, error) {
	l, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.match(AND) {
		op := p.prev()
		r, err := p.equality()
		if err != nil {
			return nil, err
		}
		l = &Logical{Op: AND, L: l, R: r, Line: op.Line, Col: op.Col}
	}
	return l, nil
}

func (p *parser) equality() (Expr, error) {
	l, err := p.relational()
	if err != nil {
		return nil, err
	}
	for p.match(EQ, NEQ) {
		op := p.prev()
		r, err := p.relational()
		if err != nil {
			return nil, err
		}
		l = &Binary{Op: op.Type, L: l, R: r, Line: op.Line, Col: op.Col}
	}
	return l, nil
}

func (p *parser) relational() (Expr, error) {
	l, err := p.additive()
	if err != nil {
		return nil, err
	}
	for p.match(LT, LTE, GT, GTE) {
		op := p.prev()
		r, err := p.additive()
		if err != nil {
			return nil, err
		}
		l = &Binary{Op: op.Type, L: l, R: r, Line: op.Line, Col: op.Col}
	}
	return l, nil
}

func (p *parser) additive() (Expr, error) {
	l, err := p.multiplicative()
	if err != nil {
		return nil, err
	}
	for p.match(PLUS, MINUS) {
		op := p.prev()
		r, err := p.multiplicative()
		if err != nil {
			return nil, err
		}
		l = &Binary{Op: op.Type, L: l, R: r, Line: op.Line, Col: op.Col}
	}
	return l, nil
}

func (p *parser) multiplicative() (Expr, error) {
	l, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(STAR, SLASH, PERCENT) {
		op := p.prev()
		r, err := p.unary()
		if err != nil {
			return nil, err
		}
		l = &Binary{Op: op.Type, L: l, R: r, Line: op.Line, Col: op.Col}
	}
	return l, nil
}

func (p *parser) unary() (Expr, error) {
	if p.match(NOT, MINUS) {
		op := p.prev()
		x, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &Unary{Op: op.Type, X: x, Line: op.Line, Col: op.Col}, nil
	}
	return p.postfix()
}

func (p *parser) postfix() (Expr, error) {
	x, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.match(LPAREN):
			call, err := p.finishCall(x)
			if err != nil {
				return nil, err
			}
			x = call
		case p.match(LBRACKET):
			open := p.prev()
			idx, err := p.expression()
			if err != nil {
				return nil, err
			}
			if _, err := p.need(RBRACKET, "expected ']' after index"); err != nil {
				return nil, err
			}
			x = &Index{Seq: x, Idx: idx, Line: open.Line, Col: open.Col}
		default:
			return x, nil
		}
	}
}

func (p *parser) finishCall(callee Expr) (Expr, error) {
	var args []Expr
	if !p.check(RPAREN) {
		for {
			a, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, a)
			if !p.match(COMMA) {
				break
			}
		}
	}
	if _, err := p.need(RPAREN, "expected ')' after arguments"); err != nil {
		return nil, err
	}
	line, col := callee.Pos()
	return &Call{Callee: callee, Args: args, Line: line, Col: col}, nil
}

func (p *parser) primary() (Expr, error) {
	tok := p.peek()
	switch {
	case p.match(NUMBER):
		return &Literal{Val: Num(tok.Literal.(float64)), Line: tok.Line, Col: tok.Col}, nil
	case p.match(STRING):
		return &Literal{Val: Str(tok.Literal.(string)), Line: tok.Line, Col: tok.Col}, nil
	case p.match(TRUE):
		return &Literal{Val: Bool(true), Line: tok.Line, Col: tok.Col}, nil
	case p.match(FALSE):
		return &Literal{Val: Bool(false), Line: tok.Line, Col: tok.Col}, nil
	case p.match(NULL):
		return &Literal{Val: Null, Line: tok.Line, Col: tok.Col}, nil
	case p.match(IDENT):
		return &Variable{Name: tok.Lexeme, Line: tok.Line, Col: tok.Col}, nil
	case p.match(LPAREN):
		x, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.need(RPAREN, "expected ')' after expression"); err != nil {
			return nil, err
		}
		return x, nil
	case p.match(LBRACKET):
		arr := &ArrayLiteral{Line: tok.Line, Col: tok.Col}
		if !p.check(RBRACKET) {
			for {
				e, err := p.expression()
				if err != nil {
					return nil, err
				}
				arr.Elems = append(arr.Elems, e)
				if !p.match(COMMA) {
					break
				}
			}
		}
		if _, err := p.need(RBRACKET, "expected ']' after array elements"); err != nil {
			return nil, err
		}
		return arr, nil
	default:
		if tok.Type == EOF {
			return nil, p.errAt(tok, "unexpected end of input")
		}
		return nil, p.errAt(tok, fmt.Sprintf("unexpected token %q", tok.Lexeme))
	}
}
