package hixa

import (
	"bytes"
	"strings"
	"testing"
)

// Random draws assert documented bounds only, never the sequence.

func Test_Builtin_Random_Bounds(t *testing.T) {
	for i := 0; i < 50; i++ {
		v := evalEcho(t, `random(5);`)
		wantWholeInRange(t, v, 0, 5)
	}
	v := evalEcho(t, `random();`)
	wantWholeInRange(t, v, 0, 100)
	wantNum(t, evalEcho(t, `random(0);`), 0)
	wantRuntimeKind(t, `random(-1);`, ErrGeneric)
}

func Test_Builtin_Randint_Bounds(t *testing.T) {
	for i := 0; i < 50; i++ {
		v := evalEcho(t, `randint(3, 7);`)
		wantWholeInRange(t, v, 3, 7)
	}
	wantNum(t, evalEcho(t, `randint(4, 4);`), 4)
	wantRuntimeKind(t, `randint(5, 4);`, ErrGeneric)
}

func wantWholeInRange(t *testing.T, v Value, lo, hi float64) {
	t.Helper()
	if v.Tag != VTNum {
		t.Fatalf("want number, got %#v", v)
	}
	f := v.Data.(float64)
	if f != float64(int(f)) || f < lo || f > hi {
		t.Fatalf("want whole number in [%g, %g], got %g", lo, hi, f)
	}
}

func Test_Builtin_Choice_Shuffle(t *testing.T) {
	wantNum(t, evalEcho(t, `choice([7]);`), 7)
	v := evalEcho(t, `choice([1, 2, 3]);`)
	wantWholeInRange(t, v, 1, 3)
	wantRuntimeKind(t, `choice([]);`, ErrGeneric)

	// Shuffle permutes in place: same elements, same backing array.
	wantStr(t, evalEcho(t, `
dhora a = [3, 1, 2];
dhora b = shuffle(a);
string(sort(b));
`), "[1, 2, 3]")
}

func Test_Builtin_Time_MonotonicEnough(t *testing.T) {
	v := evalEcho(t, `time();`)
	if v.Tag != VTNum || v.Data.(float64) <= 0 {
		t.Fatalf("want positive epoch seconds, got %#v", v)
	}
}

func Test_Builtin_Sleep_RejectsNegative(t *testing.T) {
	wantRuntimeKind(t, `sleep(-1);`, ErrGeneric)
	wantNull(t, evalEcho(t, `sleep(0);`))
}

func Test_Builtin_Clear_WritesAnsiSequence(t *testing.T) {
	var out bytes.Buffer
	ip := NewWithIO(&out, strings.NewReader(""))
	if err := ip.Run(`clear();`); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := out.String(); got != "\x1b[2J\x1b[H" {
		t.Fatalf("got %q", got)
	}
}

func Test_Builtin_Format_Placeholders(t *testing.T) {
	wantStr(t, evalEcho(t, `format("{} + {} = {}", 1, 2, 3);`), "1 + 2 = 3")
	wantStr(t, evalEcho(t, `format("no holes", 1, 2);`), "no holes")
	wantStr(t, evalEcho(t, `format("v: {}", [1, "a"]);`), `v: [1, "a"]`)
	wantRuntimeKind(t, `format("{} {}", 1);`, ErrGeneric)
}
