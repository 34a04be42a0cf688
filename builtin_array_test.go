package hixa

import "testing"

func Test_Builtin_AppendRemove_InPlace(t *testing.T) {
	out := evalOut(t, `
dhora a = [1, 2];
dhora b = a;
append(a, 3);
add_kora(a, 4);
remove(a, 2);
remove(a, 99);
print(b);
`)
	if out != "[1, 3, 4]\n" {
		t.Fatalf("got %q", out)
	}
}

func Test_Builtin_Sort(t *testing.T) {
	wantStr(t, evalEcho(t, `string(sort([3, 1, 2]));`), "[1, 2, 3]")
	wantStr(t, evalEcho(t, `string(sort(["b", "a", "c"]));`), `["a", "b", "c"]`)
	wantStr(t, evalEcho(t, `string(sort([]));`), "[]")
	wantRuntimeKind(t, `sort([1, "a"]);`, ErrTypeMismatch)
	wantRuntimeKind(t, `sort([true]);`, ErrTypeMismatch)
}

func Test_Builtin_Reverse(t *testing.T) {
	wantStr(t, evalEcho(t, `string(reverse([1, 2, 3]));`), "[3, 2, 1]")
	wantStr(t, evalEcho(t, `string(reverse_kora(["a", 2]));`), `[2, "a"]`)
}

func Test_Builtin_PushPop(t *testing.T) {
	// push returns the new length, unlike append.
	wantNum(t, evalEcho(t, `push([1, 2], 3);`), 3)
	wantNum(t, evalEcho(t, `dhora a = [1, 2, 3]; pop(a);`), 3)
	wantStr(t, evalEcho(t, `dhora a = [1, 2, 3]; pop(a); string(a);`), "[1, 2]")
	wantRuntimeKind(t, `pop([]);`, ErrGeneric)
}

func Test_Builtin_Insert(t *testing.T) {
	wantStr(t, evalEcho(t, `dhora a = [1, 3]; insert(a, 1, 2); string(a);`), "[1, 2, 3]")
	wantStr(t, evalEcho(t, `dhora a = [1]; insert(a, 1, 2); string(a);`), "[1, 2]")
	wantRuntimeKind(t, `insert([1], 5, 9);`, ErrIndex)
	wantRuntimeKind(t, `insert([1], -1, 9);`, ErrIndex)
}

func Test_Builtin_SumAverage(t *testing.T) {
	wantNum(t, evalEcho(t, `sum([1, 2, 3]);`), 6)
	wantNum(t, evalEcho(t, `sum([]);`), 0)
	wantNum(t, evalEcho(t, `average([2, 4, 6]);`), 4)
	wantRuntimeKind(t, `average([]);`, ErrGeneric)
	wantRuntimeKind(t, `sum([1, "a"]);`, ErrTypeMismatch)
}

func Test_Builtin_Count_ArrayAndString(t *testing.T) {
	wantNum(t, evalEcho(t, `count([1, 2, 1, 1], 1);`), 3)
	wantNum(t, evalEcho(t, `count([1, 2], 9);`), 0)
	wantNum(t, evalEcho(t, `count("banana", "an");`), 2)
	wantNum(t, evalEcho(t, `count("banana", "");`), 0)
	wantRuntimeKind(t, `count(1, 1);`, ErrTypeMismatch)
}

func Test_Builtin_Map_Filter_Reduce(t *testing.T) {
	wantStr(t, evalEcho(t, `
kam double(x) { ghurai_diya x * 2; }
string(map(double, [1, 2, 3]));
`), "[2, 4, 6]")

	wantStr(t, evalEcho(t, `
kam odd(x) { ghurai_diya x % 2 == 1; }
string(filter(odd, [1, 2, 3, 4, 5]));
`), "[1, 3, 5]")

	wantNum(t, evalEcho(t, `
kam add(a, b) { ghurai_diya a + b; }
reduce(add, [1, 2, 3, 4]);
`), 10)

	wantNum(t, evalEcho(t, `
kam add(a, b) { ghurai_diya a + b; }
reduce(add, [1, 2, 3], 100);
`), 106)

	wantRuntimeKind(t, `kam add(a, b) { ghurai_diya a + b; } reduce(add, []);`, ErrGeneric)
	wantRuntimeKind(t, `map(1, [1]);`, ErrTypeMismatch)
}

func Test_Builtin_Map_AcceptsBuiltins(t *testing.T) {
	wantStr(t, evalEcho(t, `string(map(abs, [-1, 2, -3]));`), "[1, 2, 3]")
}

func Test_Builtin_Zip_Enumerate(t *testing.T) {
	wantStr(t, evalEcho(t, `string(zip([1, 2, 3], ["a", "b"]));`), `[[1, "a"], [2, "b"]]`)
	wantStr(t, evalEcho(t, `string(enumerate(["x", "y"]));`), `[[0, "x"], [1, "y"]]`)
	wantStr(t, evalEcho(t, `string(enumerate([]));`), "[]")
}
