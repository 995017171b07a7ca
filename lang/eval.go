package lang

import (
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// binaryOp applies a binary operator to operands popped from the stack.
// The operands are ordered a OP b, where b was pushed most recently.
type binaryOp func(a, b int64) (int64, error)

// operators maps operator tokens to their implementations.
var operators = map[string]binaryOp{
	"+":   func(a, b int64) (int64, error) { return a + b, nil },
	"-":   func(a, b int64) (int64, error) { return a - b, nil },
	"*":   func(a, b int64) (int64, error) { return a * b, nil },
	"/":   floorDiv,
	"mod": floorMod,
	"max": func(a, b int64) (int64, error) { return max(a, b), nil },
}

// Operators returns the operator tokens recognized in postfix expressions,
// sorted lexically.
func Operators() []string {
	return slices.Sorted(maps.Keys(operators))
}

// Eval evaluates a bare postfix expression against the session's current
// symbol table, without the directive prefix and without recording the result
// in [Session.Results]. It serves callers that evaluate ad hoc expressions
// over an already loaded session.
func (s *Session) Eval(expr string) (int64, error) {
	return s.evalExpr(expr)
}

// evalExpr evaluates a whitespace-delimited postfix token stream and returns
// the single resulting value. The symbol table is read but never written.
//
// Token classification order follows the grammar: integer literals first,
// then declared symbols, then operators — so a constant declared with an
// operator's name shadows the operator.
func (s *Session) evalExpr(expr string) (int64, error) {
	stack := make([]int64, 0, 8)

	for _, token := range strings.Fields(expr) {
		if isInteger(token) {
			i, err := strconv.ParseInt(token, 10, 64)
			if err != nil {
				// Digits only, so the sole failure mode is 64-bit overflow.
				return 0, ErrUnknownToken.Wrap(err).
					With(slog.String("token", token))
			}

			stack = append(stack, i)

			continue
		}

		if value, ok := s.symbols.Lookup(token); ok {
			if value.Kind != KindInt {
				return 0, ErrTypeMismatch.With(
					slog.String("token", token),
					slog.String("kind", value.Kind.String()),
				)
			}

			stack = append(stack, value.Int)

			continue
		}

		op, ok := operators[token]
		if !ok {
			return 0, ErrUnknownToken.With(
				slog.String("token", token),
				slog.String("expression", strings.TrimSpace(expr)),
			)
		}

		if len(stack) < 2 {
			return 0, ErrStackUnderflow.With(
				slog.String("token", token),
				slog.Int("available", len(stack)),
			)
		}

		b, a := stack[len(stack)-1], stack[len(stack)-2]
		stack = stack[:len(stack)-2]

		result, err := op(a, b)
		if err != nil {
			return 0, WrapError(err).With(slog.String("token", token))
		}

		stack = append(stack, result)
	}

	if len(stack) != 1 {
		return 0, ErrInvalidExpression.With(
			slog.String("expression", strings.TrimSpace(expr)),
			slog.Int("stack_depth", len(stack)),
		)
	}

	return stack[0], nil
}

// floorDiv divides with the quotient rounded toward negative infinity.
// Go's native integer division truncates toward zero, which differs from
// floor division when exactly one operand is negative.
func floorDiv(a, b int64) (int64, error) {
	if b == 0 {
		return 0, ErrInvalidExpression.With(
			slog.String("reason", "division by zero"),
		)
	}

	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}

	return q, nil
}

// floorMod returns the remainder consistent with [floorDiv]: a nonzero
// result takes the sign of the divisor.
func floorMod(a, b int64) (int64, error) {
	if b == 0 {
		return 0, ErrInvalidExpression.With(
			slog.String("reason", "division by zero"),
		)
	}

	r := a % b
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}

	return r, nil
}
