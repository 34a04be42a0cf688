package hixa

import (
	"math"
	"testing"
)

func Test_Builtin_Math_OneArg(t *testing.T) {
	wantNum(t, evalEcho(t, `abs(-3.5);`), 3.5)
	wantNum(t, evalEcho(t, `abs_kora(2);`), 2)
	wantNum(t, evalEcho(t, `floor(2.9);`), 2)
	wantNum(t, evalEcho(t, `ceil(2.1);`), 3)
	wantNum(t, evalEcho(t, `floor(-2.1);`), -3)
	wantNum(t, evalEcho(t, `sqrt(16);`), 4)
	wantNum(t, evalEcho(t, `exp(0);`), 1)
	wantNum(t, evalEcho(t, `sin(0);`), 0)
	wantNum(t, evalEcho(t, `cos(0);`), 1)
	wantNum(t, evalEcho(t, `tan(0);`), 0)
	wantRuntimeKind(t, `sqrt("x");`, ErrTypeMismatch)
}

func Test_Builtin_Sqrt_NegativeIsNaN(t *testing.T) {
	v := evalEcho(t, `sqrt(-1);`)
	if v.Tag != VTNum || !math.IsNaN(v.Data.(float64)) {
		t.Fatalf("want NaN, got %#v", v)
	}
}

func Test_Builtin_Round(t *testing.T) {
	wantNum(t, evalEcho(t, `round(2.5);`), 3)
	wantNum(t, evalEcho(t, `round(-2.5);`), -3)
	wantNum(t, evalEcho(t, `round(2.4);`), 2)
	wantNum(t, evalEcho(t, `round(3.14159, 2);`), 3.14)
	wantNum(t, evalEcho(t, `round_kora(2.675, 1);`), 2.7)
}

func wantNumNear(t *testing.T, v Value, f float64) {
	t.Helper()
	if v.Tag != VTNum {
		t.Fatalf("want num near %g, got %#v", f, v)
	}
	if got := v.Data.(float64); math.Abs(got-f) > 1e-12 {
		t.Fatalf("want num near %g, got %g", f, got)
	}
}

func Test_Builtin_PowLog(t *testing.T) {
	wantNum(t, evalEcho(t, `pow(2, 10);`), 1024)
	wantNum(t, evalEcho(t, `pow(4, 0.5);`), 2)
	wantNumNear(t, evalEcho(t, `log(100);`), 2)
	wantNumNear(t, evalEcho(t, `log(8, 2);`), 3)
	wantRuntimeKind(t, `log(0);`, ErrGeneric)
	wantRuntimeKind(t, `log(-1);`, ErrGeneric)
}

func Test_Builtin_MinMax_BothConventions(t *testing.T) {
	wantNum(t, evalEcho(t, `min(3, 1, 2);`), 1)
	wantNum(t, evalEcho(t, `max(3, 1, 2);`), 3)
	wantNum(t, evalEcho(t, `min([3, 1, 2]);`), 1)
	wantNum(t, evalEcho(t, `max_kora([3, 1, 2]);`), 3)
	wantNum(t, evalEcho(t, `min(7);`), 7)
	wantRuntimeKind(t, `min([]);`, ErrGeneric)
	wantRuntimeKind(t, `min([1, "a"]);`, ErrTypeMismatch)
	wantRuntimeKind(t, `max(1, "a");`, ErrTypeMismatch)
}
