// builtin_misc.go — random, time, terminal, and formatting builtins.
//
// Random draws come from one process-wide generator seeded at startup;
// callers may only rely on the documented bounds, never on the exact
// sequence.
package hixa

import (
	"math/rand"
	"strings"
	"time"
)

var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

func registerMiscBuiltins(ip *Interpreter) {
	// random(max=100) — whole number in [0, max], inclusive.
	ip.RegisterNative("random", 0, 1, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		max := 100
		if len(ctx.Args) == 1 {
			var err error
			if max, err = ctx.whole(0, "random"); err != nil {
				return Null, err
			}
			if max < 0 {
				return Null, ctx.errf(ErrGeneric, "random() bound must not be negative")
			}
		}
		return Num(float64(rng.Intn(max + 1))), nil
	})

	// randint(a, b) — whole number in [a, b], inclusive.
	ip.RegisterNative("randint", 2, 2, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		a, err := ctx.whole(0, "randint")
		if err != nil {
			return Null, err
		}
		b, err := ctx.whole(1, "randint")
		if err != nil {
			return Null, err
		}
		if b < a {
			return Null, ctx.errf(ErrGeneric, "randint(): empty range [%d, %d]", a, b)
		}
		return Num(float64(a + rng.Intn(b-a+1))), nil
	})

	// choice(arr) — uniform element of a non-empty array.
	ip.RegisterNative("choice", 1, 1, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		arr, err := ctx.arr(0, "choice")
		if err != nil {
			return Null, err
		}
		if len(arr.Elems) == 0 {
			return Null, ctx.errf(ErrGeneric, "choice() from an empty array")
		}
		return arr.Elems[rng.Intn(len(arr.Elems))], nil
	})

	// shuffle(arr) — in place, returns the array.
	ip.RegisterNative("shuffle", 1, 1, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		arr, err := ctx.arr(0, "shuffle")
		if err != nil {
			return Null, err
		}
		rng.Shuffle(len(arr.Elems), func(i, j int) {
			arr.Elems[i], arr.Elems[j] = arr.Elems[j], arr.Elems[i]
		})
		return ArrObj(arr), nil
	})

	// time() — fractional seconds since the Unix epoch.
	ip.RegisterNative("time", 0, 0, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		return Num(float64(time.Now().UnixNano()) / 1e9), nil
	})

	// sleep(seconds) — blocking.
	ip.RegisterNative("sleep", 1, 1, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		secs, err := ctx.num(0, "sleep")
		if err != nil {
			return Null, err
		}
		if secs < 0 {
			return Null, ctx.errf(ErrGeneric, "sleep() duration must not be negative")
		}
		time.Sleep(time.Duration(secs * float64(time.Second)))
		return Null, nil
	})

	// clear() — ANSI clear-screen to the injected stdout.
	ip.RegisterNative("clear", 0, 0, func(ip *Interpreter, ctx *NativeCtx) (Value, error) {
		if _, err := ip.Stdout.Write([]byte("\x1b[2J\x1b[H")); err != nil {
			return Null, ctx.errf(ErrGeneric, "clear(): %v", err)
		}
		return Null, nil
	})

	// format(template, args...) — each {} consumes the next argument,
	// stringified. Too few arguments is an error; surplus ones are
	// ignored.
	ip.RegisterNative("format", 1, -1, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		template, err := ctx.str(0, "format")
		if err != nil {
			return Null, err
		}
		args := ctx.Args[1:]
		var b strings.Builder
		next := 0
		rest := template
		for {
			i := strings.Index(rest, "{}")
			if i < 0 {
				b.WriteString(rest)
				break
			}
			if next >= len(args) {
				return Null, ctx.errf(ErrGeneric,
					"format(): template has more {} placeholders than arguments (%d)", len(args))
			}
			b.WriteString(rest[:i])
			b.WriteString(Stringify(args[next]))
			next++
			rest = rest[i+2:]
		}
		return Str(b.String()), nil
	})
}
