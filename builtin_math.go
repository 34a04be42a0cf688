// builtin_math.go — math builtins, defined over numbers only.
package hixa

import "math"

// math1 registers a one-argument float64 function.
func math1(ip *Interpreter, name string, f func(float64) float64) {
	ip.RegisterNative(name, 1, 1, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		x, err := ctx.num(0, name)
		if err != nil {
			return Null, err
		}
		return Num(f(x)), nil
	})
}

func registerMathBuiltins(ip *Interpreter) {
	math1(ip, "abs", math.Abs)
	math1(ip, "floor", math.Floor)
	math1(ip, "ceil", math.Ceil)
	math1(ip, "exp", math.Exp)
	math1(ip, "sin", math.Sin)
	math1(ip, "cos", math.Cos)
	math1(ip, "tan", math.Tan)

	// sqrt of a negative number is NaN, not an error; callers guard
	// explicitly, same as division by zero.
	math1(ip, "sqrt", math.Sqrt)

	// round(x, decimals=0) — half away from zero.
	ip.RegisterNative("round", 1, 2, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		x, err := ctx.num(0, "round")
		if err != nil {
			return Null, err
		}
		decimals := 0
		if len(ctx.Args) == 2 {
			if decimals, err = ctx.whole(1, "round"); err != nil {
				return Null, err
			}
		}
		shift := math.Pow(10, float64(decimals))
		return Num(math.Round(x*shift) / shift), nil
	})

	ip.RegisterNative("pow", 2, 2, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		base, err := ctx.num(0, "pow")
		if err != nil {
			return Null, err
		}
		exp, err := ctx.num(1, "pow")
		if err != nil {
			return Null, err
		}
		return Num(math.Pow(base, exp)), nil
	})

	// log(x, base=10).
	ip.RegisterNative("log", 1, 2, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		x, err := ctx.num(0, "log")
		if err != nil {
			return Null, err
		}
		base := 10.0
		if len(ctx.Args) == 2 {
			if base, err = ctx.num(1, "log"); err != nil {
				return Null, err
			}
		}
		if x <= 0 || base <= 0 {
			return Null, ctx.errf(ErrGeneric, "log() arguments must be positive")
		}
		return Num(math.Log(x) / math.Log(base)), nil
	})

	ip.RegisterNative("min", 1, -1, minMaxImpl("min", func(a, b float64) bool { return a < b }))
	ip.RegisterNative("max", 1, -1, minMaxImpl("max", func(a, b float64) bool { return a > b }))
}

// minMaxImpl handles both calling conventions: one array of numbers, or
// one-or-more number arguments.
func minMaxImpl(name string, better func(a, b float64) bool) NativeImpl {
	return func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		var nums []float64
		if len(ctx.Args) == 1 && ctx.Args[0].Tag == VTArray {
			elems := ctx.Args[0].Data.(*ArrayObject).Elems
			if len(elems) == 0 {
				return Null, ctx.errf(ErrGeneric, "%s() of an empty array", name)
			}
			for i, e := range elems {
				if e.Tag != VTNum {
					return Null, ctx.errf(ErrTypeMismatch, "%s(): array element %d is %s, not a number", name, i, e.Tag)
				}
				nums = append(nums, e.Data.(float64))
			}
		} else {
			for i := range ctx.Args {
				x, err := ctx.num(i, name)
				if err != nil {
					return Null, err
				}
				nums = append(nums, x)
			}
		}
		best := nums[0]
		for _, x := range nums[1:] {
			if better(x, best) {
				best = x
			}
		}
		return Num(best), nil
	}
}
