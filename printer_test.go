package hixa

import (
	"math"
	"testing"
)

func Test_Printer_Numbers(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{13, "13"},
		{-13, "-13"},
		{0, "0"},
		{2.5, "2.5"},
		{10.0 / 3.0, "3.3333333333333335"},
		{1e21, "1e+21"},
		{math.Inf(1), "+Inf"},
		{math.Inf(-1), "-Inf"},
	}
	for _, c := range cases {
		if got := Stringify(Num(c.in)); got != c.want {
			t.Fatalf("Stringify(%v) = %q, want %q", c.in, got, c.want)
		}
	}
	if got := Stringify(Num(math.NaN())); got != "NaN" {
		t.Fatalf("want NaN, got %q", got)
	}
}

func Test_Printer_ScalarsAndNull(t *testing.T) {
	if got := Stringify(Null); got != "null" {
		t.Fatalf("want null, got %q", got)
	}
	if got := Stringify(Bool(true)); got != "true" {
		t.Fatalf("want true, got %q", got)
	}
	if got := Stringify(Bool(false)); got != "false" {
		t.Fatalf("want false, got %q", got)
	}
}

func Test_Printer_Strings_TopLevelVsNested(t *testing.T) {
	if got := Stringify(Str("hi")); got != "hi" {
		t.Fatalf("top-level string must be unquoted, got %q", got)
	}
	if got := FormatValue(Str("hi")); got != `"hi"` {
		t.Fatalf("echoed string must be quoted, got %q", got)
	}
	arr := Arr([]Value{Num(1), Str("two"), Null})
	want := `[1, "two", null]`
	if got := Stringify(arr); got != want {
		t.Fatalf("array strings must be quoted: want %q, got %q", want, got)
	}
	if got := FormatValue(arr); got != want {
		t.Fatalf("FormatValue must match Stringify for arrays: %q", got)
	}
}

func Test_Printer_NestedArrays(t *testing.T) {
	inner := Arr([]Value{Num(2), Num(3)})
	outer := Arr([]Value{Num(1), inner})
	if got := Stringify(outer); got != "[1, [2, 3]]" {
		t.Fatalf("want [1, [2, 3]], got %q", got)
	}
	if got := Stringify(Arr(nil)); got != "[]" {
		t.Fatalf("want [], got %q", got)
	}
}

func Test_Printer_FunctionsAndBuiltins(t *testing.T) {
	f := &Fun{Name: "jug"}
	if got := Stringify(FunVal(f)); got != "<fn jug>" {
		t.Fatalf("want <fn jug>, got %q", got)
	}
	n := &Native{Name: "print"}
	if got := Stringify(NativeVal(n)); got != "<builtin print>" {
		t.Fatalf("want <builtin print>, got %q", got)
	}
}
