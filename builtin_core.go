// builtin_core.go — I/O, type conversion, and reflection builtins.
package hixa

import (
	"math"
	"strconv"
	"strings"
)

func registerCoreBuiltins(ip *Interpreter) {
	// print(args...) — space-separated, newline-terminated, to the
	// injected stdout. Returns null.
	ip.RegisterNative("print", 0, -1, func(ip *Interpreter, ctx *NativeCtx) (Value, error) {
		parts := make([]string, len(ctx.Args))
		for i, a := range ctx.Args {
			parts[i] = Stringify(a)
		}
		if _, err := ip.Stdout.Write([]byte(strings.Join(parts, " ") + "\n")); err != nil {
			return Null, ctx.errf(ErrGeneric, "print(): %v", err)
		}
		return Null, nil
	})

	// input(prompt="") — write the prompt, block for one line from the
	// injected stdin, return it without the trailing newline.
	ip.RegisterNative("input", 0, 1, func(ip *Interpreter, ctx *NativeCtx) (Value, error) {
		if len(ctx.Args) == 1 {
			prompt, err := ctx.str(0, "input")
			if err != nil {
				return Null, err
			}
			if _, err := ip.Stdout.Write([]byte(prompt)); err != nil {
				return Null, ctx.errf(ErrGeneric, "input(): %v", err)
			}
		}
		line, err := ip.stdin.ReadString('\n')
		if err != nil && line == "" {
			return Null, ctx.errf(ErrGeneric, "input(): %v", err)
		}
		line = strings.TrimRight(line, "\r\n")
		return Str(line), nil
	})

	// len(x) — rune count of a string or element count of an array.
	ip.RegisterNative("len", 1, 1, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		switch v := ctx.Args[0]; v.Tag {
		case VTStr:
			return Num(float64(len([]rune(v.Data.(string))))), nil
		case VTArray:
			return Num(float64(len(v.Data.(*ArrayObject).Elems))), nil
		default:
			return Null, ctx.errf(ErrTypeMismatch, "len() takes a string or an array, got %s", v.Tag)
		}
	})

	// range(end) / range(start, end) / range(start, end, step) — array
	// of whole numbers, half-open.
	ip.RegisterNative("range", 1, 3, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		start, end, step := 0, 0, 1
		var err error
		switch len(ctx.Args) {
		case 1:
			if end, err = ctx.whole(0, "range"); err != nil {
				return Null, err
			}
		case 2:
			if start, err = ctx.whole(0, "range"); err != nil {
				return Null, err
			}
			if end, err = ctx.whole(1, "range"); err != nil {
				return Null, err
			}
		case 3:
			if start, err = ctx.whole(0, "range"); err != nil {
				return Null, err
			}
			if end, err = ctx.whole(1, "range"); err != nil {
				return Null, err
			}
			if step, err = ctx.whole(2, "range"); err != nil {
				return Null, err
			}
			if step == 0 {
				return Null, ctx.errf(ErrGeneric, "range() step must not be zero")
			}
		}
		var out []Value
		if step > 0 {
			for i := start; i < end; i += step {
				out = append(out, Num(float64(i)))
			}
		} else {
			for i := start; i > end; i += step {
				out = append(out, Num(float64(i)))
			}
		}
		return Arr(out), nil
	})

	// int(x) — truncate toward zero / parse / false=0,true=1.
	ip.RegisterNative("int", 1, 1, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		v, err := toInt(ctx.Args[0], ctx)
		if err != nil {
			return Null, err
		}
		return v, nil
	})

	// float(x).
	ip.RegisterNative("float", 1, 1, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		v, err := toFloat(ctx.Args[0], ctx)
		if err != nil {
			return Null, err
		}
		return v, nil
	})

	// string(x) — the fixed conversion of printer.go.
	ip.RegisterNative("string", 1, 1, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		return Str(Stringify(ctx.Args[0])), nil
	})

	// bool(x) — truthiness.
	ip.RegisterNative("bool", 1, 1, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		return Bool(isTruthy(ctx.Args[0])), nil
	})

	// copy(x) — deep copy; fresh arrays recursively, other values as-is.
	ip.RegisterNative("copy", 1, 1, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		return deepCopy(ctx.Args[0]), nil
	})

	// delete(name) — drop the binding from the calling scope's
	// innermost environment; reports whether it was bound there.
	ip.RegisterNative("delete", 1, 1, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		name, err := ctx.str(0, "delete")
		if err != nil {
			return Null, err
		}
		return Bool(ctx.Env.DeleteLocal(name)), nil
	})

	// check(name) — is the name bound in the calling scope's innermost
	// environment.
	ip.RegisterNative("check", 1, 1, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		name, err := ctx.str(0, "check")
		if err != nil {
			return Null, err
		}
		return Bool(ctx.Env.HasLocal(name)), nil
	})

	// convert(x, "int"|"float"|"string"|"bool").
	ip.RegisterNative("convert", 2, 2, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		target, err := ctx.str(1, "convert")
		if err != nil {
			return Null, err
		}
		switch target {
		case "int":
			return toInt(ctx.Args[0], ctx)
		case "float":
			return toFloat(ctx.Args[0], ctx)
		case "string":
			return Str(Stringify(ctx.Args[0])), nil
		case "bool":
			return Bool(isTruthy(ctx.Args[0])), nil
		default:
			return Null, ctx.errf(ErrGeneric, "convert(): unknown type %q", target)
		}
	})

	// validate(x, cond) — sign tests for numbers, nonempty for strings;
	// any unknown condition validates.
	ip.RegisterNative("validate", 2, 2, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		cond, err := ctx.str(1, "validate")
		if err != nil {
			return Null, err
		}
		v := ctx.Args[0]
		switch {
		case cond == "positive" && v.Tag == VTNum:
			return Bool(v.Data.(float64) > 0), nil
		case cond == "negative" && v.Tag == VTNum:
			return Bool(v.Data.(float64) < 0), nil
		case cond == "nonempty" && v.Tag == VTStr:
			return Bool(len(v.Data.(string)) > 0), nil
		default:
			return Bool(true), nil
		}
	})

	// error(msg) — raise a runtime error with the stringified message.
	ip.RegisterNative("error", 1, 1, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		return Null, ctx.errf(ErrGeneric, "%s", Stringify(ctx.Args[0]))
	})
}

func toInt(v Value, ctx *NativeCtx) (Value, error) {
	switch v.Tag {
	case VTNum:
		return Num(math.Trunc(v.Data.(float64))), nil
	case VTStr:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Data.(string)), 64)
		if err != nil {
			return Null, ctx.errf(ErrTypeMismatch, "cannot convert %q to int", v.Data.(string))
		}
		return Num(math.Trunc(f)), nil
	case VTBool:
		if v.Data.(bool) {
			return Num(1), nil
		}
		return Num(0), nil
	default:
		return Null, ctx.errf(ErrTypeMismatch, "cannot convert %s to int", v.Tag)
	}
}

func toFloat(v Value, ctx *NativeCtx) (Value, error) {
	switch v.Tag {
	case VTNum:
		return v, nil
	case VTStr:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Data.(string)), 64)
		if err != nil {
			return Null, ctx.errf(ErrTypeMismatch, "cannot convert %q to float", v.Data.(string))
		}
		return Num(f), nil
	case VTBool:
		if v.Data.(bool) {
			return Num(1), nil
		}
		return Num(0), nil
	default:
		return Null, ctx.errf(ErrTypeMismatch, "cannot convert %s to float", v.Tag)
	}
}
