// Package lang implements the confix configuration language: a line-oriented
// grammar of named constant declarations and postfix arithmetic expressions.
//
// # Grammar
//
// Each input line is one directive:
//
//	# comment        → ignored (as are blank lines)
//	global x = 10;   → bind a constant and append it to the document tree
//	^ 3 4 +          → evaluate a postfix expression and report its result
//
// Constant values are integers, previously declared names, or arrays:
//
//	value → digits | identifier | "array(" value ("," value)* ")" | "array()"
//
// Arrays nest to arbitrary depth. A name must be declared before it is
// referenced; references resolve to the value bound at the point of
// reference, so a later redeclaration never alters an earlier binding.
//
// # Expressions
//
// Expressions are whitespace-delimited postfix token streams over the binary
// operators + - * / mod max, evaluated on an explicit operand stack. Division
// and modulo follow floor semantics (the result of / rounds toward negative
// infinity, and mod takes the sign of the divisor), so
//
//	^ -7 2 /       → -4
//	^ -7 2 mod     → 1
//
// Expression results are reported to the caller; they are never written to
// the symbol table or the document tree.
//
// # Sessions
//
// A [Session] owns one symbol table and one document tree for the lifetime of
// one parse. Sessions are single-threaded and fail fast: the first error
// aborts the run. The document tree serializes as XML (the native form),
// JSON, or YAML.
//
// Integer literals and expression tokens may carry a leading minus sign.
package lang
