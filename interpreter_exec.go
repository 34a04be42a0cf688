// interpreter_exec.go — the statement walker.
//
// Every statement evaluation returns a signal: Normal, Return(Value),
// Break, or Continue. Signals are ordinary values threaded back through
// the call stack, never panics. Block and If propagate any non-Normal
// signal unchanged; While and For absorb Break and Continue but pass
// Return through; a function-call frame absorbs Return and turns a
// Break or Continue escaping the body into a runtime error, as does the
// program top level.
package hixa

type sigKind int

const (
	sigNormal sigKind = iota
	sigReturn
	sigBreak
	sigContinue
)

// signal is the control-flow outcome of one statement. Line/Col record
// where a Break/Continue/Return originated so escape errors can point
// at it.
type signal struct {
	kind      sigKind
	val       Value // Return payload
	line, col int
}

var normal = signal{kind: sigNormal}

// execProgram runs the top-level statement list in Global. The value of
// a trailing expression statement is returned for the REPL echo.
func (ip *Interpreter) execProgram(prog *Program) (Value, bool, error) {
	for i, st := range prog.Stmts {
		if es, isExpr := st.(*ExpressionStmt); isExpr && i == len(prog.Stmts)-1 {
			v, err := ip.evalExpr(es.X, ip.Global)
			if err != nil {
				return Null, false, err
			}
			return v, true, nil
		}
		sig, err := ip.execStmt(st, ip.Global)
		if err != nil {
			return Null, false, err
		}
		switch sig.kind {
		case sigBreak:
			return Null, false, rtErrf(ErrGeneric, sig.line, sig.col, "break outside loop")
		case sigContinue:
			return Null, false, rtErrf(ErrGeneric, sig.line, sig.col, "continue outside loop")
		case sigReturn:
			return Null, false, rtErrf(ErrGeneric, sig.line, sig.col, "return outside function")
		}
	}
	return Null, false, nil
}

func (ip *Interpreter) execStmt(st Stmt, env *Env) (signal, error) {
	switch s := st.(type) {
	case *VarDecl:
		v, err := ip.evalExpr(s.Init, env)
		if err != nil {
			return normal, err
		}
		env.Define(s.Name, v)
		return normal, nil

	case *FunctionDecl:
		// The closure captures the scope it is declared in; because the
		// name is bound in that same scope, recursion resolves through
		// the captured environment.
		fn := &Fun{Name: s.Name, Params: s.Params, Body: s.Body, Env: env}
		env.Define(s.Name, FunVal(fn))
		return normal, nil

	case *Block:
		return ip.execBlock(s, NewEnv(env))

	case *If:
		cond, err := ip.evalExpr(s.Cond, env)
		if err != nil {
			return normal, err
		}
		if isTruthy(cond) {
			return ip.execBlock(s.Then, NewEnv(env))
		}
		if s.Else != nil {
			return ip.execStmt(s.Else, env)
		}
		return normal, nil

	case *While:
		for {
			cond, err := ip.evalExpr(s.Cond, env)
			if err != nil {
				return normal, err
			}
			if !isTruthy(cond) {
				return normal, nil
			}
			sig, err := ip.execBlock(s.Body, NewEnv(env))
			if err != nil {
				return normal, err
			}
			switch sig.kind {
			case sigBreak:
				return normal, nil
			case sigReturn:
				return sig, nil
			}
			// Normal and Continue both fall through to the next check.
		}

	case *For:
		// The init clause gets its own scope so the loop variable does
		// not leak into the enclosing block.
		loopEnv := NewEnv(env)
		if s.Init != nil {
			if _, err := ip.execStmt(s.Init, loopEnv); err != nil {
				return normal, err
			}
		}
		for {
			if s.Cond != nil {
				cond, err := ip.evalExpr(s.Cond, loopEnv)
				if err != nil {
					return normal, err
				}
				if !isTruthy(cond) {
					return normal, nil
				}
			}
			sig, err := ip.execBlock(s.Body, NewEnv(loopEnv))
			if err != nil {
				return normal, err
			}
			switch sig.kind {
			case sigBreak:
				return normal, nil
			case sigReturn:
				return sig, nil
			}
			// The step runs after Normal and after Continue.
			if s.Step != nil {
				if _, err := ip.evalExpr(s.Step, loopEnv); err != nil {
					return normal, err
				}
			}
		}

	case *BreakStmt:
		return signal{kind: sigBreak, line: s.Line, col: s.Col}, nil

	case *ContinueStmt:
		return signal{kind: sigContinue, line: s.Line, col: s.Col}, nil

	case *ReturnStmt:
		v := Null
		if s.Value != nil {
			var err error
			v, err = ip.evalExpr(s.Value, env)
			if err != nil {
				return normal, err
			}
		}
		return signal{kind: sigReturn, val: v, line: s.Line, col: s.Col}, nil

	case *ExpressionStmt:
		_, err := ip.evalExpr(s.X, env)
		return normal, err

	default:
		panic("unreachable statement node")
	}
}

// execBlock runs stmts in the given (already pushed) scope, propagating
// the first non-Normal signal unchanged.
func (ip *Interpreter) execBlock(b *Block, env *Env) (signal, error) {
	for _, st := range b.Stmts {
		sig, err := ip.execStmt(st, env)
		if err != nil {
			return normal, err
		}
		if sig.kind != sigNormal {
			return sig, nil
		}
	}
	return normal, nil
}

// applyFunction performs the call protocol for user functions and
// builtins. env is the calling scope (builtins such as delete/check
// reflect on it); line/col position arity and escape errors.
func (ip *Interpreter) applyFunction(fn Value, args []Value, env *Env, line, col int) (Value, error) {
	switch fn.Tag {
	case VTFun:
		f := fn.Data.(*Fun)
		if len(args) != len(f.Params) {
			return Null, rtErrf(ErrArity, line, col,
				"%s() takes %d argument(s), got %d", f.Name, len(f.Params), len(args))
		}
		// Lexical scoping: the frame chains to the closure's captured
		// environment, never to the caller's.
		frame := NewEnv(f.Env)
		for i, p := range f.Params {
			frame.Define(p, args[i])
		}
		sig, err := ip.execBlock(f.Body, frame)
		if err != nil {
			return Null, err
		}
		switch sig.kind {
		case sigReturn:
			return sig.val, nil
		case sigBreak:
			return Null, rtErrf(ErrGeneric, sig.line, sig.col, "break outside loop")
		case sigContinue:
			return Null, rtErrf(ErrGeneric, sig.line, sig.col, "continue outside loop")
		}
		// Falling off the end of the body yields null.
		return Null, nil

	case VTNative:
		n := fn.Data.(*Native)
		if err := checkNativeArity(n, len(args), line, col); err != nil {
			return Null, err
		}
		return n.Impl(ip, &NativeCtx{Args: args, Env: env, Line: line, Col: col})

	default:
		return Null, rtErrf(ErrTypeMismatch, line, col, "value of type %s is not callable", fn.Tag)
	}
}

func checkNativeArity(n *Native, got, line, col int) error {
	switch {
	case n.MaxArgs < 0:
		if got < n.MinArgs {
			return rtErrf(ErrArity, line, col,
				"%s() takes at least %d argument(s), got %d", n.Name, n.MinArgs, got)
		}
	case n.MinArgs == n.MaxArgs:
		if got != n.MinArgs {
			return rtErrf(ErrArity, line, col,
				"%s() takes %d argument(s), got %d", n.Name, n.MinArgs, got)
		}
	default:
		if got < n.MinArgs || got > n.MaxArgs {
			return rtErrf(ErrArity, line, col,
				"%s() takes between %d and %d arguments, got %d", n.Name, n.MinArgs, n.MaxArgs, got)
		}
	}
	return nil
}
