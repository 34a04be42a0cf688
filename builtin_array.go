// builtin_array.go — array builtins.
//
// Mutators (append, remove, sort, reverse, push, pop, insert, shuffle)
// operate in place on the shared ArrayObject so every alias of the
// array observes the change; most also return the array itself for
// chaining. map/filter/reduce/zip/enumerate build new arrays.
package hixa

import (
	"sort"
	"strings"
)

func registerArrayBuiltins(ip *Interpreter) {
	// append(arr, item) — push back, returns the array.
	ip.RegisterNative("append", 2, 2, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		arr, err := ctx.arr(0, "append")
		if err != nil {
			return Null, err
		}
		arr.Elems = append(arr.Elems, ctx.Args[1])
		return ArrObj(arr), nil
	})

	// remove(arr, item) — drop the first equal element if present (no
	// error when absent), returns the array.
	ip.RegisterNative("remove", 2, 2, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		arr, err := ctx.arr(0, "remove")
		if err != nil {
			return Null, err
		}
		for i, e := range arr.Elems {
			if valuesEqual(e, ctx.Args[1]) {
				arr.Elems = append(arr.Elems[:i], arr.Elems[i+1:]...)
				break
			}
		}
		return ArrObj(arr), nil
	})

	// sort(arr) — ascending, in place; all-number or all-string arrays
	// only. Returns the array.
	ip.RegisterNative("sort", 1, 1, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		arr, err := ctx.arr(0, "sort")
		if err != nil {
			return Null, err
		}
		if err := sortInPlace(arr, ctx); err != nil {
			return Null, err
		}
		return ArrObj(arr), nil
	})

	// reverse(arr) — in place, returns the array.
	ip.RegisterNative("reverse", 1, 1, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		arr, err := ctx.arr(0, "reverse")
		if err != nil {
			return Null, err
		}
		for i, j := 0, len(arr.Elems)-1; i < j; i, j = i+1, j-1 {
			arr.Elems[i], arr.Elems[j] = arr.Elems[j], arr.Elems[i]
		}
		return ArrObj(arr), nil
	})

	// push(arr, item) — push back, returns the new length.
	ip.RegisterNative("push", 2, 2, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		arr, err := ctx.arr(0, "push")
		if err != nil {
			return Null, err
		}
		arr.Elems = append(arr.Elems, ctx.Args[1])
		return Num(float64(len(arr.Elems))), nil
	})

	// pop(arr) — remove and return the last element.
	ip.RegisterNative("pop", 1, 1, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		arr, err := ctx.arr(0, "pop")
		if err != nil {
			return Null, err
		}
		if len(arr.Elems) == 0 {
			return Null, ctx.errf(ErrGeneric, "pop() from an empty array")
		}
		last := arr.Elems[len(arr.Elems)-1]
		arr.Elems = arr.Elems[:len(arr.Elems)-1]
		return last, nil
	})

	// insert(arr, index, item) — index in [0, len]; returns null.
	ip.RegisterNative("insert", 3, 3, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		arr, err := ctx.arr(0, "insert")
		if err != nil {
			return Null, err
		}
		idx, err := ctx.whole(1, "insert")
		if err != nil {
			return Null, err
		}
		if idx < 0 || idx > len(arr.Elems) {
			return Null, ctx.errf(ErrIndex, "insert() index %d out of bounds (length %d)", idx, len(arr.Elems))
		}
		arr.Elems = append(arr.Elems, Null)
		copy(arr.Elems[idx+1:], arr.Elems[idx:])
		arr.Elems[idx] = ctx.Args[2]
		return Null, nil
	})

	// sum(arr) — 0 for an empty array.
	ip.RegisterNative("sum", 1, 1, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		nums, err := numberElems(ctx, "sum")
		if err != nil {
			return Null, err
		}
		total := 0.0
		for _, x := range nums {
			total += x
		}
		return Num(total), nil
	})

	// average(arr) — errors on an empty array.
	ip.RegisterNative("average", 1, 1, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		nums, err := numberElems(ctx, "average")
		if err != nil {
			return Null, err
		}
		if len(nums) == 0 {
			return Null, ctx.errf(ErrGeneric, "average() of an empty array")
		}
		total := 0.0
		for _, x := range nums {
			total += x
		}
		return Num(total / float64(len(nums))), nil
	})

	// count(x, item) — occurrences in an array, or of a substring in a
	// string.
	ip.RegisterNative("count", 2, 2, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		switch v := ctx.Args[0]; v.Tag {
		case VTArray:
			n := 0
			for _, e := range v.Data.(*ArrayObject).Elems {
				if valuesEqual(e, ctx.Args[1]) {
					n++
				}
			}
			return Num(float64(n)), nil
		case VTStr:
			sub, err := ctx.str(1, "count")
			if err != nil {
				return Null, err
			}
			return Num(float64(countSubstrings(v.Data.(string), sub))), nil
		default:
			return Null, ctx.errf(ErrTypeMismatch, "count() takes a string or an array, got %s", v.Tag)
		}
	})

	// map(f, arr) — new array of f(x) through the normal call protocol.
	ip.RegisterNative("map", 2, 2, func(ip *Interpreter, ctx *NativeCtx) (Value, error) {
		f, err := ctx.callable(0, "map")
		if err != nil {
			return Null, err
		}
		arr, err := ctx.arr(1, "map")
		if err != nil {
			return Null, err
		}
		out := make([]Value, len(arr.Elems))
		for i, e := range arr.Elems {
			v, err := ip.applyFunction(f, []Value{e}, ctx.Env, ctx.Line, ctx.Col)
			if err != nil {
				return Null, err
			}
			out[i] = v
		}
		return Arr(out), nil
	})

	// filter(f, arr) — new array of elements where f(x) is truthy.
	ip.RegisterNative("filter", 2, 2, func(ip *Interpreter, ctx *NativeCtx) (Value, error) {
		f, err := ctx.callable(0, "filter")
		if err != nil {
			return Null, err
		}
		arr, err := ctx.arr(1, "filter")
		if err != nil {
			return Null, err
		}
		var out []Value
		for _, e := range arr.Elems {
			keep, err := ip.applyFunction(f, []Value{e}, ctx.Env, ctx.Line, ctx.Col)
			if err != nil {
				return Null, err
			}
			if isTruthy(keep) {
				out = append(out, e)
			}
		}
		return Arr(out), nil
	})

	// reduce(f, arr, initial?) — fold with f(acc, item); without an
	// initial value the first element seeds the fold.
	ip.RegisterNative("reduce", 2, 3, func(ip *Interpreter, ctx *NativeCtx) (Value, error) {
		f, err := ctx.callable(0, "reduce")
		if err != nil {
			return Null, err
		}
		arr, err := ctx.arr(1, "reduce")
		if err != nil {
			return Null, err
		}
		elems := arr.Elems
		var acc Value
		if len(ctx.Args) == 3 {
			acc = ctx.Args[2]
		} else {
			if len(elems) == 0 {
				return Null, ctx.errf(ErrGeneric, "reduce() of an empty array with no initial value")
			}
			acc = elems[0]
			elems = elems[1:]
		}
		for _, e := range elems {
			acc, err = ip.applyFunction(f, []Value{acc, e}, ctx.Env, ctx.Line, ctx.Col)
			if err != nil {
				return Null, err
			}
		}
		return acc, nil
	})

	// zip(a, b) — array of [a[i], b[i]] pairs, length = min(len).
	ip.RegisterNative("zip", 2, 2, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		a, err := ctx.arr(0, "zip")
		if err != nil {
			return Null, err
		}
		b, err := ctx.arr(1, "zip")
		if err != nil {
			return Null, err
		}
		n := len(a.Elems)
		if len(b.Elems) < n {
			n = len(b.Elems)
		}
		out := make([]Value, n)
		for i := 0; i < n; i++ {
			out[i] = Arr([]Value{a.Elems[i], b.Elems[i]})
		}
		return Arr(out), nil
	})

	// enumerate(arr) — array of [index, element] pairs.
	ip.RegisterNative("enumerate", 1, 1, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		arr, err := ctx.arr(0, "enumerate")
		if err != nil {
			return Null, err
		}
		out := make([]Value, len(arr.Elems))
		for i, e := range arr.Elems {
			out[i] = Arr([]Value{Num(float64(i)), e})
		}
		return Arr(out), nil
	})
}

// sortInPlace orders an all-number or all-string array ascending.
func sortInPlace(arr *ArrayObject, ctx *NativeCtx) error {
	if len(arr.Elems) == 0 {
		return nil
	}
	switch arr.Elems[0].Tag {
	case VTNum:
		for i, e := range arr.Elems {
			if e.Tag != VTNum {
				return ctx.errf(ErrTypeMismatch, "sort(): element %d is %s in a number array", i, e.Tag)
			}
		}
		sort.SliceStable(arr.Elems, func(i, j int) bool {
			return arr.Elems[i].Data.(float64) < arr.Elems[j].Data.(float64)
		})
	case VTStr:
		for i, e := range arr.Elems {
			if e.Tag != VTStr {
				return ctx.errf(ErrTypeMismatch, "sort(): element %d is %s in a string array", i, e.Tag)
			}
		}
		sort.SliceStable(arr.Elems, func(i, j int) bool {
			return arr.Elems[i].Data.(string) < arr.Elems[j].Data.(string)
		})
	default:
		return ctx.errf(ErrTypeMismatch, "sort() takes an array of numbers or of strings")
	}
	return nil
}

func numberElems(ctx *NativeCtx, fn string) ([]float64, error) {
	arr, err := ctx.arr(0, fn)
	if err != nil {
		return nil, err
	}
	nums := make([]float64, len(arr.Elems))
	for i, e := range arr.Elems {
		if e.Tag != VTNum {
			return nil, ctx.errf(ErrTypeMismatch, "%s(): element %d is %s, not a number", fn, i, e.Tag)
		}
		nums[i] = e.Data.(float64)
	}
	return nums, nil
}

// countSubstrings counts non-overlapping occurrences; an empty needle
// counts zero rather than len+1.
func countSubstrings(s, sub string) int {
	if sub == "" {
		return 0
	}
	return strings.Count(s, sub)
}
