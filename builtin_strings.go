// builtin_strings.go — string builtins. All of these return new
// strings; strings are immutable.
package hixa

import (
	"strings"
	"unicode/utf8"
)

func registerStringBuiltins(ip *Interpreter) {
	ip.RegisterNative("upper", 1, 1, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		s, err := ctx.str(0, "upper")
		if err != nil {
			return Null, err
		}
		return Str(strings.ToUpper(s)), nil
	})

	ip.RegisterNative("lower", 1, 1, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		s, err := ctx.str(0, "lower")
		if err != nil {
			return Null, err
		}
		return Str(strings.ToLower(s)), nil
	})

	ip.RegisterNative("trim", 1, 1, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		s, err := ctx.str(0, "trim")
		if err != nil {
			return Null, err
		}
		return Str(strings.TrimSpace(s)), nil
	})

	// find(x, needle) — rune index of a substring, or index of the
	// first equal element of an array; -1 when absent.
	ip.RegisterNative("find", 2, 2, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		switch v := ctx.Args[0]; v.Tag {
		case VTStr:
			needle, err := ctx.str(1, "find")
			if err != nil {
				return Null, err
			}
			byteIdx := strings.Index(v.Data.(string), needle)
			if byteIdx < 0 {
				return Num(-1), nil
			}
			return Num(float64(utf8.RuneCountInString(v.Data.(string)[:byteIdx]))), nil
		case VTArray:
			for i, e := range v.Data.(*ArrayObject).Elems {
				if valuesEqual(e, ctx.Args[1]) {
					return Num(float64(i)), nil
				}
			}
			return Num(-1), nil
		default:
			return Null, ctx.errf(ErrTypeMismatch, "find() takes a string or an array, got %s", v.Tag)
		}
	})

	// replace(s, old, new) — all occurrences.
	ip.RegisterNative("replace", 3, 3, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		s, err := ctx.str(0, "replace")
		if err != nil {
			return Null, err
		}
		old, err := ctx.str(1, "replace")
		if err != nil {
			return Null, err
		}
		new, err := ctx.str(2, "replace")
		if err != nil {
			return Null, err
		}
		return Str(strings.ReplaceAll(s, old, new)), nil
	})

	// split(s, sep=" ") — array of strings.
	ip.RegisterNative("split", 1, 2, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		s, err := ctx.str(0, "split")
		if err != nil {
			return Null, err
		}
		sep := " "
		if len(ctx.Args) == 2 {
			if sep, err = ctx.str(1, "split"); err != nil {
				return Null, err
			}
		}
		parts := strings.Split(s, sep)
		out := make([]Value, len(parts))
		for i, p := range parts {
			out[i] = Str(p)
		}
		return Arr(out), nil
	})

	// join(arr, sep="") — concatenation of stringified elements.
	ip.RegisterNative("join", 1, 2, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		arr, err := ctx.arr(0, "join")
		if err != nil {
			return Null, err
		}
		sep := ""
		if len(ctx.Args) == 2 {
			if sep, err = ctx.str(1, "join"); err != nil {
				return Null, err
			}
		}
		parts := make([]string, len(arr.Elems))
		for i, e := range arr.Elems {
			parts[i] = Stringify(e)
		}
		return Str(strings.Join(parts, sep)), nil
	})

	ip.RegisterNative("contains", 2, 2, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		s, err := ctx.str(0, "contains")
		if err != nil {
			return Null, err
		}
		sub, err := ctx.str(1, "contains")
		if err != nil {
			return Null, err
		}
		return Bool(strings.Contains(s, sub)), nil
	})

	ip.RegisterNative("starts_with", 2, 2, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		s, err := ctx.str(0, "starts_with")
		if err != nil {
			return Null, err
		}
		prefix, err := ctx.str(1, "starts_with")
		if err != nil {
			return Null, err
		}
		return Bool(strings.HasPrefix(s, prefix)), nil
	})

	ip.RegisterNative("ends_with", 2, 2, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		s, err := ctx.str(0, "ends_with")
		if err != nil {
			return Null, err
		}
		suffix, err := ctx.str(1, "ends_with")
		if err != nil {
			return Null, err
		}
		return Bool(strings.HasSuffix(s, suffix)), nil
	})

	// substring(s, start, end=len) — rune slice [start, end).
	ip.RegisterNative("substring", 2, 3, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		s, err := ctx.str(0, "substring")
		if err != nil {
			return Null, err
		}
		runes := []rune(s)
		start, err := ctx.whole(1, "substring")
		if err != nil {
			return Null, err
		}
		end := len(runes)
		if len(ctx.Args) == 3 {
			if end, err = ctx.whole(2, "substring"); err != nil {
				return Null, err
			}
		}
		if start < 0 || start > len(runes) || end < start || end > len(runes) {
			return Null, ctx.errf(ErrIndex, "substring(%d, %d) out of range for length %d", start, end, len(runes))
		}
		return Str(string(runes[start:end])), nil
	})
}
