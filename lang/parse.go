package lang

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
)

// declPattern extracts the name and value literal from a declaration line.
// The line is already known to start with "global "; whitespace around "="
// is flexible and the terminating ";" is mandatory.
var declPattern = regexp.MustCompile(
	`^global\s+([_a-zA-Z][_a-zA-Z0-9]*)\s*=\s*(.+);$`,
)

// identPattern matches a well-formed identifier.
var identPattern = regexp.MustCompile(`^[_a-zA-Z][_a-zA-Z0-9]*$`)

// Array literal delimiters.
const (
	arrayPrefix = "array("
	arraySuffix = ")"
)

// parseDeclaration handles one "global <name> = <value>;" line.
// The symbol table write and document append happen only after the value
// literal parses successfully, so a failed declaration has no side effects.
func (s *Session) parseDeclaration(line string) error {
	m := declPattern.FindStringSubmatch(line)
	if m == nil {
		return ErrMalformedDeclaration.With(slog.String("line", line))
	}

	name, text := m[1], strings.TrimSpace(m[2])

	value, err := s.parseLiteral(text, 0)
	if err != nil {
		return err
	}

	s.symbols.Bind(name, value)
	s.doc.Append(name, value)

	s.opts.logger.Debug("constant declared",
		slog.String("name", name),
		slog.String("value", value.String()),
	)

	return nil
}

// parseLiteral converts a trimmed value literal into a [Value].
//
// The array form is checked first so an input can never be read as both an
// array and a scalar. Integer literals are checked before symbol references,
// matching evaluator token classification.
func (s *Session) parseLiteral(text string, depth int) (*Value, error) {
	if depth >= s.opts.maxDepth {
		return nil, ErrMaxDepthExceeded.With(
			slog.Int("max_depth", s.opts.maxDepth),
		)
	}

	switch {
	case strings.HasPrefix(text, arrayPrefix) &&
		strings.HasSuffix(text, arraySuffix):
		return s.parseArray(text, depth)

	case isInteger(text):
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			// Digits only, so the sole failure mode is 64-bit overflow.
			return nil, ErrInvalidValue.Wrap(err).
				With(slog.String("value", text))
		}

		return NewInt(i), nil

	case identPattern.MatchString(text):
		value, ok := s.symbols.Resolve(text)
		if !ok {
			return nil, ErrUndefinedSymbol.With(
				slog.String("symbol", text),
				slog.Any("did_you_mean", s.symbols.Suggest(text)),
			)
		}

		return value, nil

	default:
		return nil, ErrInvalidValue.With(slog.String("value", text))
	}
}

// parseArray parses an "array(...)" literal. Elements are split on
// top-level commas only; commas inside nested array(...) forms are not
// split points. Parsing is atomic: any invalid element fails the whole
// literal before the session observes a partial value.
func (s *Session) parseArray(text string, depth int) (*Value, error) {
	interior := text[len(arrayPrefix) : len(text)-len(arraySuffix)]

	if strings.TrimSpace(interior) == "" {
		return NewList(), nil
	}

	parts, err := splitTopLevel(interior)
	if err != nil {
		return nil, WrapError(err).With(slog.String("value", text))
	}

	elems := make([]*Value, len(parts))

	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, ErrInvalidValue.With(
				slog.String("value", text),
				slog.Int("element", i+1),
			)
		}

		elem, err := s.parseLiteral(part, depth+1)
		if err != nil {
			return nil, err
		}

		elems[i] = elem
	}

	return NewList(elems...), nil
}

// splitTopLevel splits s on commas at parenthesis depth zero.
// Unbalanced parentheses fail with [ErrInvalidValue].
func splitTopLevel(s string) ([]string, error) {
	var (
		parts []string
		depth int
		start int
	)

	for i, r := range s {
		switch r {
		case '(':
			depth++

		case ')':
			depth--
			if depth < 0 {
				return nil, ErrInvalidValue.With(
					slog.String("reason", "unbalanced parentheses"),
				)
			}

		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}

	if depth != 0 {
		return nil, ErrInvalidValue.With(
			slog.String("reason", "unbalanced parentheses"),
		)
	}

	return append(parts, s[start:]), nil
}

// isInteger reports whether text is a decimal integer literal: one or more
// digits with an optional leading minus sign.
func isInteger(text string) bool {
	if strings.HasPrefix(text, "-") {
		text = text[1:]
	}

	if text == "" {
		return false
	}

	for _, r := range text {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
