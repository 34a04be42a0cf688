package hixa

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

// --- helpers ---------------------------------------------------------------

func evalEcho(t *testing.T, src string) Value {
	t.Helper()
	ip := NewWithIO(io.Discard, strings.NewReader(""))
	v, ok, err := ip.RunEcho(src)
	if err != nil {
		t.Fatalf("RunEcho error: %v\nsource:\n%s", err, src)
	}
	if !ok {
		t.Fatalf("no trailing expression value\nsource:\n%s", src)
	}
	return v
}

func evalOut(t *testing.T, src string) string {
	t.Helper()
	var out bytes.Buffer
	ip := NewWithIO(&out, strings.NewReader(""))
	if err := ip.Run(src); err != nil {
		t.Fatalf("Run error: %v\nsource:\n%s", err, src)
	}
	return out.String()
}

func wantRuntimeKind(t *testing.T, src string, kind RuntimeErrKind) *RuntimeError {
	t.Helper()
	ip := NewWithIO(io.Discard, strings.NewReader(""))
	err := ip.Run(src)
	if err == nil {
		t.Fatalf("want %v, got no error\nsource:\n%s", kind, src)
	}
	rerr, ok := err.(*RuntimeError)
	if !ok {
		t.Fatalf("want *RuntimeError, got %T: %v", err, err)
	}
	if rerr.Kind != kind {
		t.Fatalf("want kind %v, got %v: %v", kind, rerr.Kind, rerr)
	}
	return rerr
}

func wantNum(t *testing.T, v Value, f float64) {
	t.Helper()
	if v.Tag != VTNum {
		t.Fatalf("want num %g, got %#v", f, v)
	}
	if got := v.Data.(float64); got != f {
		t.Fatalf("want num %g, got %g", f, got)
	}
}

func wantStr(t *testing.T, v Value, s string) {
	t.Helper()
	if v.Tag != VTStr || v.Data.(string) != s {
		t.Fatalf("want str %q, got %#v", s, v)
	}
}

func wantBool(t *testing.T, v Value, b bool) {
	t.Helper()
	if v.Tag != VTBool || v.Data.(bool) != b {
		t.Fatalf("want bool %v, got %#v", b, v)
	}
}

func wantNull(t *testing.T, v Value) {
	t.Helper()
	if v.Tag != VTNull {
		t.Fatalf("want null, got %#v", v)
	}
}

// --- expressions and operators ----------------------------------------------

func Test_Interpreter_Arithmetic_Precedence(t *testing.T) {
	wantNum(t, evalEcho(t, `1 + 2 * 3;`), 7)
	wantNum(t, evalEcho(t, `(1 + 2) * 3;`), 9)
	wantNum(t, evalEcho(t, `10 - 3 - 2;`), 5)
	wantNum(t, evalEcho(t, `10 % 3;`), 1)
	wantNum(t, evalEcho(t, `-2 * 3;`), -6)
}

func Test_Interpreter_Division_FollowsIEEE(t *testing.T) {
	v := evalEcho(t, `10 / 0;`)
	if v.Tag != VTNum || Stringify(v) != "+Inf" {
		t.Fatalf("want +Inf, got %#v (%s)", v, Stringify(v))
	}
	wantNum(t, evalEcho(t, `10 / 4;`), 2.5)
	if s := Stringify(evalEcho(t, `10 / 3;`)); s != "3.3333333333333335" {
		t.Fatalf("want shortest-roundtrip quotient, got %s", s)
	}
}

func Test_Interpreter_StringConcat_EitherSide(t *testing.T) {
	wantStr(t, evalEcho(t, `"x = " + 42;`), "x = 42")
	wantStr(t, evalEcho(t, `42 + " = x";`), "42 = x")
	wantStr(t, evalEcho(t, `"a" + "b";`), "ab")
	wantStr(t, evalEcho(t, `"v: " + [1, "two"];`), `v: [1, "two"]`)
}

func Test_Interpreter_Equality_NoCoercion(t *testing.T) {
	wantBool(t, evalEcho(t, `1 == 1.0;`), true)
	wantBool(t, evalEcho(t, `1 == "1";`), false)
	wantBool(t, evalEcho(t, `null == null;`), true)
	wantBool(t, evalEcho(t, `null == false;`), false)
	wantBool(t, evalEcho(t, `1 != 2;`), true)
	// Arrays compare by identity, not by contents.
	wantBool(t, evalEcho(t, `[1, 2] == [1, 2];`), false)
	wantBool(t, evalEcho(t, `dhora a = [1, 2]; dhora b = a; a == b;`), true)
}

func Test_Interpreter_Relational_StringsAndNumbers(t *testing.T) {
	wantBool(t, evalEcho(t, `2 < 10;`), true)
	wantBool(t, evalEcho(t, `"abc" < "abd";`), true)
	wantBool(t, evalEcho(t, `"b" >= "a";`), true)
	wantRuntimeKind(t, `1 < "2";`, ErrTypeMismatch)
}

func Test_Interpreter_Truthiness(t *testing.T) {
	// 0 and "" are truthy; only null and false are not.
	wantStr(t, evalEcho(t, `jodi (0) { "yes"; } nohole { "no"; } "done";`), "done")
	wantBool(t, evalEcho(t, `not_kora null;`), true)
	wantBool(t, evalEcho(t, `!0;`), false)
	wantBool(t, evalEcho(t, `!"";`), false)
	wantBool(t, evalEcho(t, `!false;`), true)
}

func Test_Interpreter_Logical_ShortCircuit_YieldsOperand(t *testing.T) {
	wantNum(t, evalEcho(t, `false ba 3;`), 3)
	wantBool(t, evalEcho(t, `false aru undefined_name;`), false)
	wantNull(t, evalEcho(t, `null && 3;`))
	wantNum(t, evalEcho(t, `2 || undefined_name;`), 2)
}

func Test_Interpreter_Unary_Minus_RequiresNumber(t *testing.T) {
	wantNum(t, evalEcho(t, `--3;`), 3)
	wantRuntimeKind(t, `-"x";`, ErrTypeMismatch)
}

// --- scoping ------------------------------------------------------------------

func Test_Interpreter_Scoping_BlockShadowing(t *testing.T) {
	out := evalOut(t, `
dhora x = 1;
{
    dhora x = 2;
    print(x);
}
print(x);
`)
	if out != "2\n1\n" {
		t.Fatalf("want shadow then restore, got %q", out)
	}
}

func Test_Interpreter_Scoping_AssignmentNeverAutoDeclares(t *testing.T) {
	wantRuntimeKind(t, `y = 3;`, ErrUndefinedVariable)

	// Assignment in an inner scope mutates the outer binding.
	out := evalOut(t, `
let x = 1;
{
    x = 2;
}
print(x);
`)
	if out != "2\n" {
		t.Fatalf("want outer mutation, got %q", out)
	}
}

func Test_Interpreter_Scoping_UndefinedVariable(t *testing.T) {
	wantRuntimeKind(t, `print(nothing_here);`, ErrUndefinedVariable)
}

func Test_Interpreter_Closures_CaptureDefiningScope(t *testing.T) {
	out := evalOut(t, `
kam make_counter() {
    dhora n = 0;
    kam bump() {
        n = n + 1;
        ghurai_diya n;
    }
    ghurai_diya bump;
}
dhora a = make_counter();
dhora b = make_counter();
print(a(), a(), a(), b());
`)
	if out != "1 2 3 1\n" {
		t.Fatalf("want independent counters, got %q", out)
	}
}

func Test_Interpreter_Functions_Recursion(t *testing.T) {
	wantNum(t, evalEcho(t, `
kam fib(n) {
    jodi (n < 2) {
        ghurai_diya n;
    }
    ghurai_diya fib(n - 1) + fib(n - 2);
}
fib(10);
`), 55)
}

func Test_Interpreter_Functions_FallOffEnd_YieldsNull(t *testing.T) {
	wantNull(t, evalEcho(t, `kam f() { dhora x = 1; } f();`))
}

func Test_Interpreter_Functions_BareReturn_YieldsNull(t *testing.T) {
	wantNull(t, evalEcho(t, `kam f() { ghurai_diya; } f();`))
}

func Test_Interpreter_Functions_ArityMismatch(t *testing.T) {
	rerr := wantRuntimeKind(t, `kam f(a, b) { ghurai_diya a; } f(1);`, ErrArity)
	if !strings.Contains(rerr.Msg, "2") || !strings.Contains(rerr.Msg, "1") {
		t.Fatalf("arity message should name both counts: %v", rerr)
	}
}

func Test_Interpreter_Functions_FirstClass(t *testing.T) {
	wantNum(t, evalEcho(t, `
kam twice(f, x) {
    ghurai_diya f(f(x));
}
kam inc(n) {
    ghurai_diya n + 1;
}
twice(inc, 5);
`), 7)
}

func Test_Interpreter_Call_NonCallable(t *testing.T) {
	wantRuntimeKind(t, `dhora x = 3; x(1);`, ErrTypeMismatch)
}

func Test_Interpreter_Call_UndefinedFunction(t *testing.T) {
	wantRuntimeKind(t, `no_such_fn(1);`, ErrUndefinedFunction)
}

// --- control flow ---------------------------------------------------------------

func Test_Interpreter_If_ElseIfChain(t *testing.T) {
	src := `
kam grade(x) {
    jodi (x >= 90) {
        ghurai_diya "A";
    } nohole jodi (x >= 60) {
        ghurai_diya "B";
    } nohole {
        ghurai_diya "F";
    }
}
print(grade(95), grade(70), grade(10));
`
	if out := evalOut(t, src); out != "A B F\n" {
		t.Fatalf("want A B F, got %q", out)
	}
}

func Test_Interpreter_While_BreakAndContinue(t *testing.T) {
	out := evalOut(t, `
dhora i = 0;
dhora total = 0;
jetialoike (true) {
    i = i + 1;
    jodi (i % 2 == 0) {
        continue_kora;
    }
    jodi (i > 7) {
        break_kora;
    }
    total = total + i;
}
print(total);
`)
	if out != "16\n" { // 1 + 3 + 5 + 7
		t.Fatalf("want 16, got %q", out)
	}
}

func Test_Interpreter_For_StepRunsAfterContinue(t *testing.T) {
	out := evalOut(t, `
karone (dhora i = 0; i < 5; i = i + 1) {
    jodi (i == 2) {
        continue_kora;
    }
    print(i);
}
`)
	if out != "0\n1\n3\n4\n" {
		t.Fatalf("continue must not skip the step, got %q", out)
	}
}

func Test_Interpreter_For_LoopVariableDoesNotLeak(t *testing.T) {
	wantRuntimeKind(t, `
karone (dhora i = 0; i < 3; i = i + 1) {
}
print(i);
`, ErrUndefinedVariable)
}

func Test_Interpreter_For_BreakStopsInnerLoopOnly(t *testing.T) {
	out := evalOut(t, `
karone (dhora i = 0; i < 2; i = i + 1) {
    karone (dhora j = 0; j < 10; j = j + 1) {
        jodi (j == 1) {
            break_kora;
        }
        print(i, j);
    }
}
`)
	if out != "0 0\n1 0\n" {
		t.Fatalf("break must only stop the inner loop, got %q", out)
	}
}

func Test_Interpreter_Signals_OutsideLoopOrFunction(t *testing.T) {
	wantRuntimeKind(t, `break_kora;`, ErrGeneric)
	wantRuntimeKind(t, `continue_kora;`, ErrGeneric)
	wantRuntimeKind(t, `ghurai_diya 1;`, ErrGeneric)
	wantRuntimeKind(t, `kam f() { break_kora; } f();`, ErrGeneric)
}

func Test_Interpreter_Return_CrossesLoops(t *testing.T) {
	wantNum(t, evalEcho(t, `
kam first_over(limit) {
    karone (dhora i = 0; ; i = i + 1) {
        jodi (i * i > limit) {
            ghurai_diya i;
        }
    }
}
first_over(10);
`), 4)
}

// --- arrays and indexing ----------------------------------------------------------

func Test_Interpreter_Arrays_SharedByReference(t *testing.T) {
	out := evalOut(t, `
dhora a = [3, 1, 2];
dhora b = a;
sort_kora(a);
print(b);
b[0] = 99;
print(a[0]);
`)
	if out != "[1, 2, 3]\n99\n" {
		t.Fatalf("aliases must observe mutation, got %q", out)
	}
}

func Test_Interpreter_Arrays_CopyDetaches(t *testing.T) {
	out := evalOut(t, `
dhora a = [[1], [2]];
dhora b = copy(a);
b[0][0] = 99;
print(a[0][0]);
`)
	if out != "1\n" {
		t.Fatalf("copy must be deep, got %q", out)
	}
}

func Test_Interpreter_Index_Errors(t *testing.T) {
	wantRuntimeKind(t, `[1, 2][5];`, ErrIndex)
	wantRuntimeKind(t, `[1, 2][-1];`, ErrIndex)
	wantRuntimeKind(t, `[1, 2][0.5];`, ErrIndex)
	wantRuntimeKind(t, `[1, 2]["x"];`, ErrTypeMismatch)
	wantRuntimeKind(t, `3[0];`, ErrTypeMismatch)
}

func Test_Interpreter_Index_StringReadOnly(t *testing.T) {
	wantStr(t, evalEcho(t, `"héllo"[1];`), "é")
	wantRuntimeKind(t, `dhora s = "abc"; s[0] = "x";`, ErrTypeMismatch)
}

// --- bilinguality -------------------------------------------------------------------

func Test_Interpreter_Keywords_BothSetsEquivalent(t *testing.T) {
	assamese := `
kam f(n) {
    dhora total = 0;
    karone (dhora i = 0; i < n; i = i + 1) {
        jodi (i % 2 == 0) {
            total = total + i;
        }
    }
    ghurai_diya total;
}
print(f(10));
`
	english := `
fn f(n) {
    let total = 0;
    for (let i = 0; i < n; i = i + 1) {
        if (i % 2 == 0) {
            total = total + i;
        }
    }
    return total;
}
print(f(10));
`
	if a, e := evalOut(t, assamese), evalOut(t, english); a != e || a != "20\n" {
		t.Fatalf("keyword sets must be equivalent: assamese %q, english %q", a, e)
	}
}

func Test_Interpreter_Builtins_BothSpellingsResolve(t *testing.T) {
	if out := evalOut(t, `likha("hi"); print("hi");`); out != "hi\nhi\n" {
		t.Fatalf("likha and print must be the same builtin, got %q", out)
	}
	wantNum(t, evalEcho(t, `length_kora("abc");`), 3)
	wantNum(t, evalEcho(t, `bisora("hello", "ll");`), 2)
}

func Test_Interpreter_Builtins_UserBindingShadowsSpelling(t *testing.T) {
	// add_kora is an alias of append; a user function takes priority.
	wantNum(t, evalEcho(t, `
kam add_kora(a, b) {
    ghurai_diya a + b;
}
add_kora(2, 3);
`), 5)
}

func Test_Interpreter_Builtins_AreFirstClassValues(t *testing.T) {
	wantStr(t, evalEcho(t, `dhora f = upper; f("hi");`), "HI")
	wantStr(t, evalEcho(t, `string(print);`), "<builtin print>")
}

// --- end-to-end ------------------------------------------------------------------------

func Test_Interpreter_Calculator_EndToEnd(t *testing.T) {
	src := `
kam add_kora(a, b) {
    ghurai_diya a + b;
}
kam subtract_kora(a, b) {
    ghurai_diya a - b;
}
kam multiply_kora(a, b) {
    ghurai_diya a * b;
}
kam divide_kora(a, b) {
    jodi (b == 0) {
        ghurai_diya 0;
    }
    ghurai_diya a / b;
}
print(add_kora(10, 3));
print(subtract_kora(10, 3));
print(multiply_kora(10, 3));
print(divide_kora(10, 3));
print(divide_kora(10, 0));
`
	want := "13\n7\n30\n3.3333333333333335\n0\n"
	if out := evalOut(t, src); out != want {
		t.Fatalf("calculator output:\nwant %q\ngot  %q", want, out)
	}
}

func Test_Interpreter_GlobalScope_PersistsAcrossRuns(t *testing.T) {
	ip := NewWithIO(io.Discard, strings.NewReader(""))
	if err := ip.Run(`dhora x = 40;`); err != nil {
		t.Fatalf("first run: %v", err)
	}
	v, ok, err := ip.RunEcho(`x + 2;`)
	if err != nil || !ok {
		t.Fatalf("second run: ok=%v err=%v", ok, err)
	}
	wantNum(t, v, 42)
}

func Test_Interpreter_RunEcho_OnlyTrailingExpression(t *testing.T) {
	ip := NewWithIO(io.Discard, strings.NewReader(""))
	_, ok, err := ip.RunEcho(`dhora x = 1;`)
	if err != nil {
		t.Fatalf("RunEcho: %v", err)
	}
	if ok {
		t.Fatalf("a declaration must not echo")
	}
}

func Test_Interpreter_Input_ReadsInjectedStdin(t *testing.T) {
	var out bytes.Buffer
	ip := NewWithIO(&out, strings.NewReader("Axom\n"))
	if err := ip.Run(`dhora naam = input("naam? "); print("hi " + naam);`); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := out.String(); got != "naam? hi Axom\n" {
		t.Fatalf("want prompt then greeting, got %q", got)
	}
}
