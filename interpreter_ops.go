// interpreter_ops.go — expression evaluation: operators, truthiness,
// equality, indexing, assignment, and call-time builtin resolution.
//
// Operator behavior is an exhaustive switch over the closed value
// lattice at each site. Arithmetic and relational operators require
// numbers; `+` additionally concatenates when either side is a string;
// relational operators also order two strings byte-lexicographically.
// Division by zero follows IEEE-754 (±Inf, NaN) and never raises.
package hixa

import "math"

func (ip *Interpreter) evalExpr(e Expr, env *Env) (Value, error) {
	switch x := e.(type) {
	case *Literal:
		return x.Val, nil

	case *Variable:
		if v, ok := env.Get(x.Name); ok {
			return v, nil
		}
		return Null, rtErrf(ErrUndefinedVariable, x.Line, x.Col, "undefined variable: %s", x.Name)

	case *Assign:
		return ip.evalAssign(x, env)

	case *Binary:
		l, err := ip.evalExpr(x.L, env)
		if err != nil {
			return Null, err
		}
		r, err := ip.evalExpr(x.R, env)
		if err != nil {
			return Null, err
		}
		return binaryOp(x.Op, l, r, x.Line, x.Col)

	case *Logical:
		l, err := ip.evalExpr(x.L, env)
		if err != nil {
			return Null, err
		}
		// Short-circuit; the deciding operand's value is the result.
		if x.Op == OR {
			if isTruthy(l) {
				return l, nil
			}
		} else {
			if !isTruthy(l) {
				return l, nil
			}
		}
		return ip.evalExpr(x.R, env)

	case *Unary:
		v, err := ip.evalExpr(x.X, env)
		if err != nil {
			return Null, err
		}
		if x.Op == NOT {
			return Bool(!isTruthy(v)), nil
		}
		if v.Tag != VTNum {
			return Null, rtErrf(ErrTypeMismatch, x.Line, x.Col, "operand of '-' must be a number, got %s", v.Tag)
		}
		return Num(-v.Data.(float64)), nil

	case *Call:
		return ip.evalCall(x, env)

	case *Index:
		seq, err := ip.evalExpr(x.Seq, env)
		if err != nil {
			return Null, err
		}
		idx, err := ip.evalExpr(x.Idx, env)
		if err != nil {
			return Null, err
		}
		return indexRead(seq, idx, x.Line, x.Col)

	case *ArrayLiteral:
		elems := make([]Value, len(x.Elems))
		for i, el := range x.Elems {
			v, err := ip.evalExpr(el, env)
			if err != nil {
				return Null, err
			}
			elems[i] = v
		}
		return Arr(elems), nil

	default:
		panic("unreachable expression node")
	}
}

// evalAssign handles `name = v` and `seq[i] = v`. Assignment mutates
// the nearest scope already binding the name; it never auto-declares.
func (ip *Interpreter) evalAssign(a *Assign, env *Env) (Value, error) {
	v, err := ip.evalExpr(a.Value, env)
	if err != nil {
		return Null, err
	}
	switch t := a.Target.(type) {
	case *Variable:
		if !env.Set(t.Name, v) {
			return Null, rtErrf(ErrUndefinedVariable, t.Line, t.Col,
				"cannot assign to undefined variable: %s", t.Name)
		}
		return v, nil

	case *Index:
		seq, err := ip.evalExpr(t.Seq, env)
		if err != nil {
			return Null, err
		}
		idx, err := ip.evalExpr(t.Idx, env)
		if err != nil {
			return Null, err
		}
		return indexWrite(seq, idx, v, t.Line, t.Col)

	default:
		panic("unreachable assignment target")
	}
}

// evalCall resolves the callee and applies it. A bare name that is not
// bound in any enclosing scope is normalized through the alias table
// and retried against the builtin registry in Core, so either spelling
// of a builtin works — and a user binding always shadows a builtin
// spelling. A name missing from both is UndefinedFunctionError.
func (ip *Interpreter) evalCall(c *Call, env *Env) (Value, error) {
	var fn Value
	if v, isName := c.Callee.(*Variable); isName {
		bound, ok := env.Get(v.Name)
		if !ok {
			bound, ok = env.Get(NormalizeBuiltin(v.Name))
		}
		if !ok {
			return Null, rtErrf(ErrUndefinedFunction, v.Line, v.Col, "undefined function: %s", v.Name)
		}
		fn = bound
	} else {
		var err error
		fn, err = ip.evalExpr(c.Callee, env)
		if err != nil {
			return Null, err
		}
	}

	args := make([]Value, len(c.Args))
	for i, a := range c.Args {
		v, err := ip.evalExpr(a, env)
		if err != nil {
			return Null, err
		}
		args[i] = v
	}
	return ip.applyFunction(fn, args, env, c.Line, c.Col)
}

// isTruthy: null is false, a bool is itself, everything else is true.
// 0 and "" are truthy.
func isTruthy(v Value) bool {
	switch v.Tag {
	case VTNull:
		return false
	case VTBool:
		return v.Data.(bool)
	default:
		return true
	}
}

// valuesEqual defines `==` over all tag pairs: different tags are
// unequal (no numeric coercion); numbers, strings, and bools compare by
// value; null equals null; arrays and functions compare by identity.
func valuesEqual(a, b Value) bool {
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case VTNull:
		return true
	case VTBool:
		return a.Data.(bool) == b.Data.(bool)
	case VTNum:
		return a.Data.(float64) == b.Data.(float64)
	case VTStr:
		return a.Data.(string) == b.Data.(string)
	case VTArray:
		return a.Data.(*ArrayObject) == b.Data.(*ArrayObject)
	case VTFun:
		return a.Data.(*Fun) == b.Data.(*Fun)
	case VTNative:
		return a.Data.(*Native) == b.Data.(*Native)
	default:
		return false
	}
}

func binaryOp(op TokenType, l, r Value, line, col int) (Value, error) {
	switch op {
	case PLUS:
		if l.Tag == VTNum && r.Tag == VTNum {
			return Num(l.Data.(float64) + r.Data.(float64)), nil
		}
		if l.Tag == VTStr || r.Tag == VTStr {
			return Str(Stringify(l) + Stringify(r)), nil
		}
		return Null, opTypeErr("+", l, r, line, col)

	case MINUS, STAR, SLASH, PERCENT:
		if l.Tag != VTNum || r.Tag != VTNum {
			return Null, opTypeErr(opLexeme(op), l, r, line, col)
		}
		a, b := l.Data.(float64), r.Data.(float64)
		switch op {
		case MINUS:
			return Num(a - b), nil
		case STAR:
			return Num(a * b), nil
		case SLASH:
			// IEEE-754: x/0 is ±Inf, 0/0 is NaN. Never an error.
			return Num(a / b), nil
		default:
			return Num(math.Mod(a, b)), nil
		}

	case EQ:
		return Bool(valuesEqual(l, r)), nil
	case NEQ:
		return Bool(!valuesEqual(l, r)), nil

	case LT, LTE, GT, GTE:
		if l.Tag == VTNum && r.Tag == VTNum {
			a, b := l.Data.(float64), r.Data.(float64)
			switch op {
			case LT:
				return Bool(a < b), nil
			case LTE:
				return Bool(a <= b), nil
			case GT:
				return Bool(a > b), nil
			default:
				return Bool(a >= b), nil
			}
		}
		if l.Tag == VTStr && r.Tag == VTStr {
			a, b := l.Data.(string), r.Data.(string)
			switch op {
			case LT:
				return Bool(a < b), nil
			case LTE:
				return Bool(a <= b), nil
			case GT:
				return Bool(a > b), nil
			default:
				return Bool(a >= b), nil
			}
		}
		return Null, opTypeErr(opLexeme(op), l, r, line, col)

	default:
		panic("unreachable binary operator")
	}
}

func opTypeErr(op string, l, r Value, line, col int) error {
	return rtErrf(ErrTypeMismatch, line, col,
		"operator '%s' not defined for %s and %s", op, l.Tag, r.Tag)
}

func opLexeme(op TokenType) string {
	switch op {
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case STAR:
		return "*"
	case SLASH:
		return "/"
	case PERCENT:
		return "%"
	case LT:
		return "<"
	case LTE:
		return "<="
	case GT:
		return ">"
	case GTE:
		return ">="
	default:
		return op.String()
	}
}

// indexRead implements `seq[i]`. Arrays are zero-based; strings are
// readable by rune index and yield a one-character string.
func indexRead(seq, idx Value, line, col int) (Value, error) {
	i, err := indexValue(seq, idx, line, col)
	if err != nil {
		return Null, err
	}
	switch seq.Tag {
	case VTArray:
		elems := seq.Data.(*ArrayObject).Elems
		if i < 0 || i >= len(elems) {
			return Null, rtErrf(ErrIndex, line, col, "array index %d out of bounds (length %d)", i, len(elems))
		}
		return elems[i], nil
	case VTStr:
		runes := []rune(seq.Data.(string))
		if i < 0 || i >= len(runes) {
			return Null, rtErrf(ErrIndex, line, col, "string index %d out of bounds (length %d)", i, len(runes))
		}
		return Str(string(runes[i])), nil
	default:
		return Null, rtErrf(ErrTypeMismatch, line, col, "value of type %s is not indexable", seq.Tag)
	}
}

// indexWrite implements `seq[i] = v`. Only arrays are writable; there
// is no auto-extension past the end.
func indexWrite(seq, idx, v Value, line, col int) (Value, error) {
	switch seq.Tag {
	case VTArray:
		i, err := indexValue(seq, idx, line, col)
		if err != nil {
			return Null, err
		}
		obj := seq.Data.(*ArrayObject)
		if i < 0 || i >= len(obj.Elems) {
			return Null, rtErrf(ErrIndex, line, col, "array index %d out of bounds (length %d)", i, len(obj.Elems))
		}
		obj.Elems[i] = v
		return v, nil
	case VTStr:
		return Null, rtErrf(ErrTypeMismatch, line, col, "strings are immutable")
	default:
		return Null, rtErrf(ErrTypeMismatch, line, col, "value of type %s is not indexable", seq.Tag)
	}
}

// indexValue checks that idx is a whole number. A non-number index is a
// type mismatch; a fractional one is an index error.
func indexValue(seq, idx Value, line, col int) (int, error) {
	if idx.Tag != VTNum {
		return 0, rtErrf(ErrTypeMismatch, line, col, "index must be a number, got %s", idx.Tag)
	}
	f := idx.Data.(float64)
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, rtErrf(ErrIndex, line, col, "index must be a whole number, got %v", f)
	}
	return int(f), nil
}

// deepCopy returns a value that shares no array storage with v. Arrays
// are copied recursively; every other tag is immutable or identity-
// carrying and passes through. Backs the `copy` builtin.
func deepCopy(v Value) Value {
	if v.Tag != VTArray {
		return v
	}
	src := v.Data.(*ArrayObject).Elems
	out := make([]Value, len(src))
	for i, e := range src {
		out[i] = deepCopy(e)
	}
	return Arr(out)
}
