// printer.go — the fixed value-to-string conversion.
//
// Stringify is the one documented conversion used by print, `+`
// concatenation, string(), join(), format(), and error messages.
// FormatValue is the REPL echo variant: identical except that a
// top-level string is quoted.
package hixa

import (
	"math"
	"strconv"
	"strings"
)

// Stringify renders v:
//
//	null        → null
//	true        → true
//	13.0        → 13        (finite whole numbers drop the point)
//	10.0/3.0    → 3.3333333333333335
//	1.0/0.0     → +Inf
//	"hi"        → hi        (no quotes at top level)
//	[1, "two"]  → [1, "two"] (strings quoted inside arrays)
//	function    → <fn NAME>, builtin → <builtin NAME>
func Stringify(v Value) string {
	switch v.Tag {
	case VTNull:
		return "null"
	case VTBool:
		if v.Data.(bool) {
			return "true"
		}
		return "false"
	case VTNum:
		return formatNumber(v.Data.(float64))
	case VTStr:
		return v.Data.(string)
	case VTArray:
		return formatArray(v.Data.(*ArrayObject))
	case VTFun:
		return "<fn " + v.Data.(*Fun).Name + ">"
	case VTNative:
		return "<builtin " + v.Data.(*Native).Name + ">"
	default:
		return "<unknown>"
	}
}

// FormatValue is Stringify with top-level strings quoted; the REPL
// echoes values through this.
func FormatValue(v Value) string {
	if v.Tag == VTStr {
		return quoteString(v.Data.(string))
	}
	return Stringify(v)
}

// formatNumber prints finite whole numbers in int64 range without a
// decimal point; everything else uses Go's shortest-roundtrip form.
func formatNumber(f float64) string {
	if !math.IsInf(f, 0) && !math.IsNaN(f) && f == math.Trunc(f) && math.Abs(f) < 9.2e18 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func formatArray(o *ArrayObject) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range o.Elems {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(FormatValue(e))
	}
	b.WriteByte(']')
	return b.String()
}

func quoteString(s string) string { return strconv.Quote(s) }
