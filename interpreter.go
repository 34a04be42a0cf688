// interpreter.go — public surface of the Hixa runtime.
//
// This file holds the value model, environments, and the Interpreter
// entry points; the statement walker lives in interpreter_exec.go and
// the operator/index/call semantics in interpreter_ops.go. Builtins are
// registered per category by the builtin_*.go files.
//
// VALUES
// ------
// Value is a closed tagged union: null, bool, number (float64 — integer
// literals are whole-number floats, there is no separate integer type),
// string, array, function, native. Arrays are *ArrayObject and are
// shared, never copied on assignment: two bindings holding the same
// array observe each other's in-place mutations.
//
// SCOPING
// -------
// Environments form a parent-pointer tree. Core holds the builtins under
// their canonical names; Global is the program/REPL scope, a child of
// Core. Blocks and function calls push fresh children. A closure keeps
// its defining environment alive after the creating scope exits; the
// tree is only ever appended to, never reparented.
//
// ERRORS
// ------
// Run/RunEcho return nil or a *RuntimeError carrying a kind and a 1-based
// source position (see errors.go). Panics escaping the walker are turned
// into an internal RuntimeError at this boundary; host stack overflow is
// fatal and deliberately not caught.
package hixa

import (
	"bufio"
	"io"
	"os"
)

// ValueTag discriminates the runtime kinds a Value may hold.
type ValueTag int

const (
	VTNull   ValueTag = iota // no payload
	VTBool                   // bool
	VTNum                    // float64
	VTStr                    // string
	VTArray                  // *ArrayObject
	VTFun                    // *Fun
	VTNative                 // *Native
)

func (t ValueTag) String() string {
	switch t {
	case VTNull:
		return "null"
	case VTBool:
		return "bool"
	case VTNum:
		return "number"
	case VTStr:
		return "string"
	case VTArray:
		return "array"
	case VTFun:
		return "function"
	case VTNative:
		return "builtin"
	default:
		return "unknown"
	}
}

// Value is the universal runtime carrier. Tag selects the Go type held
// in Data (see ValueTag). Equality and operator behavior are defined by
// exhaustive switches over Tag in interpreter_ops.go.
type Value struct {
	Tag  ValueTag
	Data interface{}
}

// Null is the singleton null Value.
var Null = Value{Tag: VTNull}

// Constructors.
func Bool(b bool) Value   { return Value{Tag: VTBool, Data: b} }
func Num(f float64) Value { return Value{Tag: VTNum, Data: f} }
func Str(s string) Value  { return Value{Tag: VTStr, Data: s} }

// Arr wraps a fresh ArrayObject around elems. The slice is adopted, not
// copied.
func Arr(elems []Value) Value {
	return Value{Tag: VTArray, Data: &ArrayObject{Elems: elems}}
}

// ArrObj wraps an existing ArrayObject, preserving identity.
func ArrObj(o *ArrayObject) Value { return Value{Tag: VTArray, Data: o} }

// ArrayObject is the shared mutable storage behind an array Value.
// Builtins that mutate (sort, reverse, append, remove, push, pop,
// insert, shuffle) operate on Elems in place so every alias sees the
// change.
type ArrayObject struct {
	Elems []Value
}

// Fun is a user function: parameter names, a body block, and the
// environment captured at the definition site. Calls always chain the
// new frame to Env, never to the caller's environment.
type Fun struct {
	Name   string
	Params []string
	Body   *Block
	Env    *Env
}

// FunVal wraps *Fun into a Value.
func FunVal(f *Fun) Value { return Value{Tag: VTFun, Data: f} }

// NativeImpl is the implementation signature for builtins. Arity has
// already been checked when it runs; argument types are the impl's own
// contract, enforced with the NativeCtx helpers.
type NativeImpl func(ip *Interpreter, ctx *NativeCtx) (Value, error)

// Native is a host-provided builtin with a fixed arity contract.
// MaxArgs < 0 means variadic.
type Native struct {
	Name    string
	MinArgs int
	MaxArgs int
	Impl    NativeImpl
}

// NativeVal wraps *Native into a Value.
func NativeVal(n *Native) Value { return Value{Tag: VTNative, Data: n} }

// Env is one lexical scope: a name→Value table plus the enclosing
// scope (nil only for Core). Lookup walks outward; Define always binds
// locally; Set mutates the nearest existing binding and never
// auto-declares.
type Env struct {
	parent *Env
	table  map[string]Value
}

// NewEnv creates a scope enclosed by parent (which may be nil).
func NewEnv(parent *Env) *Env {
	return &Env{parent: parent, table: make(map[string]Value)}
}

// Define binds name in this scope, shadowing any outer binding.
// Redeclaring in the same scope overwrites here only.
func (e *Env) Define(name string, v Value) { e.table[name] = v }

// Get walks outward from this scope and reports the nearest binding.
func (e *Env) Get(name string) (Value, bool) {
	for s := e; s != nil; s = s.parent {
		if v, ok := s.table[name]; ok {
			return v, true
		}
	}
	return Value{}, false
}

// Set mutates the nearest scope already binding name. It reports false
// when no scope binds it; the caller raises UndefinedVariableError.
func (e *Env) Set(name string, v Value) bool {
	for s := e; s != nil; s = s.parent {
		if _, ok := s.table[name]; ok {
			s.table[name] = v
			return true
		}
	}
	return false
}

// HasLocal reports whether name is bound in this scope itself, not in
// an ancestor. Backs the `check` builtin.
func (e *Env) HasLocal(name string) bool {
	_, ok := e.table[name]
	return ok
}

// DeleteLocal removes name from this scope itself and reports whether
// it was bound here. Backs the `delete` builtin.
func (e *Env) DeleteLocal(name string) bool {
	if _, ok := e.table[name]; ok {
		delete(e.table, name)
		return true
	}
	return false
}

// Interpreter executes Hixa programs. Core holds the builtins; Global
// is the persistent program scope (shared by every Run on the same
// instance, which is what the REPL relies on). Stdout receives print
// output and input prompts; stdin serves the `input` builtin. The host
// injects both; the core never opens them itself.
type Interpreter struct {
	Core   *Env
	Global *Env

	Stdout io.Writer
	stdin  *bufio.Reader

	natives map[string]*Native
}

// New returns an interpreter wired to the process stdout/stdin.
func New() *Interpreter { return NewWithIO(os.Stdout, os.Stdin) }

// NewWithIO returns an interpreter with an injected print sink and line
// input source. Tests use this to capture output.
func NewWithIO(out io.Writer, in io.Reader) *Interpreter {
	ip := &Interpreter{
		Core:    NewEnv(nil),
		Global:  nil,
		Stdout:  out,
		stdin:   bufio.NewReader(in),
		natives: make(map[string]*Native),
	}
	ip.Global = NewEnv(ip.Core)

	registerCoreBuiltins(ip)
	registerStringBuiltins(ip)
	registerMathBuiltins(ip)
	registerArrayBuiltins(ip)
	registerMiscBuiltins(ip)
	registerFileBuiltins(ip)
	return ip
}

// RegisterNative installs a builtin under its canonical name: into the
// lookup registry used by call-time alias resolution, and into Core so
// the name is an ordinary first-class binding. maxArgs < 0 means
// variadic.
func (ip *Interpreter) RegisterNative(name string, minArgs, maxArgs int, impl NativeImpl) {
	n := &Native{Name: name, MinArgs: minArgs, MaxArgs: maxArgs, Impl: impl}
	ip.natives[name] = n
	ip.Core.Define(name, NativeVal(n))
}

// LookupNative reports the builtin registered under the canonical name.
func (ip *Interpreter) LookupNative(name string) (*Native, bool) {
	n, ok := ip.natives[name]
	return n, ok
}

// Run parses and executes src in Global. It returns nil, or the first
// staged error: *LexError, *ParseError, or *RuntimeError.
func (ip *Interpreter) Run(src string) error {
	_, _, err := ip.RunEcho(src)
	return err
}

// RunEcho is Run with the REPL echo contract: when the final statement
// is an expression statement, its value is returned with ok=true.
func (ip *Interpreter) RunEcho(src string) (v Value, ok bool, err error) {
	prog, perr := Parse(src)
	if perr != nil {
		return Null, false, perr
	}
	defer func() {
		if r := recover(); r != nil {
			v, ok = Null, false
			err = rtErrf(ErrGeneric, 0, 0, "internal error: %v", r)
		}
	}()
	return ip.execProgram(prog)
}

// NativeCtx carries one builtin call: positional arguments, the calling
// scope's innermost environment (delete/check reflect on it), and the
// call's source position for error reporting.
type NativeCtx struct {
	Args      []Value
	Env       *Env
	Line, Col int
}

func (c *NativeCtx) errf(kind RuntimeErrKind, format string, args ...interface{}) error {
	return rtErrf(kind, c.Line, c.Col, format, args...)
}

// num asserts argument i is a Number and returns its float64.
func (c *NativeCtx) num(i int, fn string) (float64, error) {
	if c.Args[i].Tag != VTNum {
		return 0, c.errf(ErrTypeMismatch, "%s(): argument %d must be a number, got %s", fn, i+1, c.Args[i].Tag)
	}
	return c.Args[i].Data.(float64), nil
}

// whole asserts argument i is a whole Number and returns it as an int.
func (c *NativeCtx) whole(i int, fn string) (int, error) {
	f, err := c.num(i, fn)
	if err != nil {
		return 0, err
	}
	if f != float64(int(f)) {
		return 0, c.errf(ErrTypeMismatch, "%s(): argument %d must be a whole number, got %v", fn, i+1, f)
	}
	return int(f), nil
}

// str asserts argument i is a String.
func (c *NativeCtx) str(i int, fn string) (string, error) {
	if c.Args[i].Tag != VTStr {
		return "", c.errf(ErrTypeMismatch, "%s(): argument %d must be a string, got %s", fn, i+1, c.Args[i].Tag)
	}
	return c.Args[i].Data.(string), nil
}

// arr asserts argument i is an Array and returns the shared object.
func (c *NativeCtx) arr(i int, fn string) (*ArrayObject, error) {
	if c.Args[i].Tag != VTArray {
		return nil, c.errf(ErrTypeMismatch, "%s(): argument %d must be an array, got %s", fn, i+1, c.Args[i].Tag)
	}
	return c.Args[i].Data.(*ArrayObject), nil
}

// callable asserts argument i is a Function or builtin.
func (c *NativeCtx) callable(i int, fn string) (Value, error) {
	v := c.Args[i]
	if v.Tag != VTFun && v.Tag != VTNative {
		return Null, c.errf(ErrTypeMismatch, "%s(): argument %d must be a function, got %s", fn, i+1, v.Tag)
	}
	return v, nil
}
