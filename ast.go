// ast.go — syntax tree node types.
//
// Plain structs, one per grammar production. Every node records the
// 1-based line/column of its leading token so the evaluator can position
// runtime errors without a side table. There is no visitor machinery:
// the evaluator switches on node types directly.
package hixa

// Stmt is implemented by all statement nodes.
type Stmt interface {
	stmtNode()
	Pos() (line, col int)
}

// Expr is implemented by all expression nodes.
type Expr interface {
	exprNode()
	Pos() (line, col int)
}

// Program is the root production: a statement list.
type Program struct {
	Stmts []Stmt
}

// ----- statements -----

// Block is `{ stmt* }`. Entering one introduces a fresh scope.
type Block struct {
	Stmts     []Stmt
	Line, Col int
}

// VarDecl is `dhora IDENT = expr ;` / `let IDENT = expr ;`. Always binds
// in the innermost scope, shadowing any outer binding of the name.
type VarDecl struct {
	Name      string
	Init      Expr
	Line, Col int
}

// FunctionDecl is `kam IDENT ( params ) block` / `fn ...`. The declared
// function captures the environment of its definition site.
type FunctionDecl struct {
	Name      string
	Params    []string
	Body      *Block
	Line, Col int
}

// If holds a condition, a then-block, and an optional else branch. The
// else branch is either a *Block or a nested *If (else-if chains);
// a dangling else belongs to the nearest unmatched if.
type If struct {
	Cond      Expr
	Then      *Block
	Else      Stmt // nil, *Block, or *If
	Line, Col int
}

// While is `jetialoike ( cond ) ;? block`.
type While struct {
	Cond      Expr
	Body      *Block
	Line, Col int
}

// For is the C-style `karone ( init ; cond ; step ) block`. Init is nil,
// a *VarDecl, or an *ExpressionStmt; Cond and Step may be nil (a nil
// Cond loops until break).
type For struct {
	Init      Stmt
	Cond      Expr
	Step      Expr
	Body      *Block
	Line, Col int
}

// BreakStmt is `break_kora ;`.
type BreakStmt struct {
	Line, Col int
}

// ContinueStmt is `continue_kora ;`.
type ContinueStmt struct {
	Line, Col int
}

// ReturnStmt is `ghurai_diya expr? ;`. A nil Value returns null.
type ReturnStmt struct {
	Value     Expr
	Line, Col int
}

// ExpressionStmt is `expr ;`.
type ExpressionStmt struct {
	X         Expr
	Line, Col int
}

func (*Block) stmtNode()          {}
func (*VarDecl) stmtNode()        {}
func (*FunctionDecl) stmtNode()   {}
func (*If) stmtNode()             {}
func (*While) stmtNode()          {}
func (*For) stmtNode()            {}
func (*BreakStmt) stmtNode()      {}
func (*ContinueStmt) stmtNode()   {}
func (*ReturnStmt) stmtNode()     {}
func (*ExpressionStmt) stmtNode() {}

func (s *Block) Pos() (int, int)          { return s.Line, s.Col }
func (s *VarDecl) Pos() (int, int)        { return s.Line, s.Col }
func (s *FunctionDecl) Pos() (int, int)   { return s.Line, s.Col }
func (s *If) Pos() (int, int)             { return s.Line, s.Col }
func (s *While) Pos() (int, int)          { return s.Line, s.Col }
func (s *For) Pos() (int, int)            { return s.Line, s.Col }
func (s *BreakStmt) Pos() (int, int)      { return s.Line, s.Col }
func (s *ContinueStmt) Pos() (int, int)   { return s.Line, s.Col }
func (s *ReturnStmt) Pos() (int, int)     { return s.Line, s.Col }
func (s *ExpressionStmt) Pos() (int, int) { return s.Line, s.Col }

// ----- expressions -----

// Literal is a number, string, bool, or null constant, already folded
// to its runtime Value by the parser.
type Literal struct {
	Val       Value
	Line, Col int
}

// Variable is a name reference.
type Variable struct {
	Name      string
	Line, Col int
}

// Assign is `target = value`; Target is a *Variable or an *Index.
type Assign struct {
	Target    Expr
	Value     Expr
	Line, Col int
}

// Binary covers arithmetic, equality, and relational operators.
type Binary struct {
	Op        TokenType
	L, R      Expr
	Line, Col int
}

// Logical is `&&` / `||` with short-circuit evaluation.
type Logical struct {
	Op        TokenType
	L, R      Expr
	Line, Col int
}

// Unary is `-x` or `!x`.
type Unary struct {
	Op        TokenType
	X         Expr
	Line, Col int
}

// Call is `callee ( args )`.
type Call struct {
	Callee    Expr
	Args      []Expr
	Line, Col int
}

// Index is `seq [ idx ]`, readable and, as an Assign target, writable.
type Index struct {
	Seq       Expr
	Idx       Expr
	Line, Col int
}

// ArrayLiteral is `[ e1, e2, ... ]`.
type ArrayLiteral struct {
	Elems     []Expr
	Line, Col int
}

func (*Literal) exprNode()      {}
func (*Variable) exprNode()     {}
func (*Assign) exprNode()       {}
func (*Binary) exprNode()       {}
func (*Logical) exprNode()      {}
func (*Unary) exprNode()        {}
func (*Call) exprNode()         {}
func (*Index) exprNode()        {}
func (*ArrayLiteral) exprNode() {}

func (e *Literal) Pos() (int, int)      { return e.Line, e.Col }
func (e *Variable) Pos() (int, int)     { return e.Line, e.Col }
func (e *Assign) Pos() (int, int)       { return e.Line, e.Col }
func (e *Binary) Pos() (int, int)       { return e.Line, e.Col }
func (e *Logical) Pos() (int, int)      { return e.Line, e.Col }
func (e *Unary) Pos() (int, int)        { return e.Line, e.Col }
func (e *Call) Pos() (int, int)         { return e.Line, e.Col }
func (e *Index) Pos() (int, int)        { return e.Line, e.Col }
func (e *ArrayLiteral) Pos() (int, int) { return e.Line, e.Col }
