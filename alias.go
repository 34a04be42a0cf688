// alias.go — the bilingual spelling tables.
//
// Hixa accepts two interchangeable keyword sets (Assamese-derived and
// English), freely mixed within one file. Everything here is immutable
// package-level data built once at init: keyword spellings map to
// canonical token types, builtin spellings map to canonical registry
// names. Builtin spellings are NOT keywords — they lex as IDENT and are
// only normalized at call time by the evaluator.
package hixa

// keywords maps every accepted keyword spelling to its canonical token
// type. No spelling appears twice (verified in alias_test.go).
var keywords = map[string]TokenType{
	// Assamese set
	"dhora":         LET,
	"kam":           FN,
	"jodi":          IF,
	"nohole":        ELSE,
	"jetialoike":    WHILE,
	"karone":        FOR,
	"break_kora":    BREAK,
	"continue_kora": CONTINUE,
	"ghurai_diya":   RETURN,
	"hosa":          TRUE,
	"misa":          FALSE,
	"nai":           NULL,
	"aru":           AND,
	"ba":            OR,
	"not_kora":      NOT,

	// English set
	"let":      LET,
	"fn":       FN,
	"if":       IF,
	"else":     ELSE,
	"while":    WHILE,
	"for":      FOR,
	"break":    BREAK,
	"continue": CONTINUE,
	"return":   RETURN,
	"true":     TRUE,
	"false":    FALSE,
	"null":     NULL,
}

// builtinAliases maps each alternate builtin spelling to the canonical
// registry name. Canonical names are absent: NormalizeBuiltin returns
// its input unchanged for them.
var builtinAliases = map[string]string{
	"print_kora":    "print",
	"likha":         "print",
	"length_kora":   "len",
	"input_lou":     "input",
	"random_kora":   "random",
	"time_kora":     "time",
	"sleep_kora":    "sleep",
	"clear_kora":    "clear",
	"add_kora":      "append",
	"remove_kora":   "remove",
	"sort_kora":     "sort",
	"reverse_kora":  "reverse",
	"bisora":        "find",
	"replace_kora":  "replace",
	"split_kora":    "split",
	"join_kora":     "join",
	"upper_kora":    "upper",
	"lower_kora":    "lower",
	"round_kora":    "round",
	"floor_kora":    "floor",
	"ceil_kora":     "ceil",
	"abs_kora":      "abs",
	"sqrt_kora":     "sqrt",
	"pow_kora":      "pow",
	"sin_kora":      "sin",
	"cos_kora":      "cos",
	"tan_kora":      "tan",
	"log_kora":      "log",
	"exp_kora":      "exp",
	"min_kora":      "min",
	"max_kora":      "max",
	"sum_kora":      "sum",
	"average_kora":  "average",
	"count_kora":    "count",
	"copy_kora":     "copy",
	"delete_kora":   "delete",
	"check_kora":    "check",
	"convert_kora":  "convert",
	"format_kora":   "format",
	"validate_kora": "validate",
	"error_kora":    "error",
}

// KeywordKind reports the canonical token type for a keyword spelling.
func KeywordKind(word string) (TokenType, bool) {
	t, ok := keywords[word]
	return t, ok
}

// NormalizeBuiltin maps an identifier to the canonical builtin name it
// spells, or returns it unchanged when it is not an alias.
func NormalizeBuiltin(name string) string {
	if canon, ok := builtinAliases[name]; ok {
		return canon
	}
	return name
}
