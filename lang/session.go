package lang

import (
	"bufio"
	"io"
	"log/slog"
	"strings"

	"github.com/ardnew/confix/log"
)

// DefaultMaxDepth is the default maximum nesting depth for array literals.
const DefaultMaxDepth = 100

// options holds Session configuration.
type options struct {
	logger   log.Logger
	onResult func(int64)
	maxDepth int
}

// Option applies a configuration option to a Session's options.
type Option func(options) options

// apply applies multiple options to an options value.
func apply(o options, opts ...Option) options {
	for _, opt := range opts {
		o = opt(o)
	}

	return o
}

// WithLogger returns an option that sets the session's structured logger.
// The zero-value logger discards all messages.
func WithLogger(logger log.Logger) Option {
	return func(o options) options {
		o.logger = logger

		return o
	}
}

// WithMaxDepth returns an option that bounds array literal nesting.
// Depths below 1 are replaced with [DefaultMaxDepth].
func WithMaxDepth(depth int) Option {
	return func(o options) options {
		if depth < 1 {
			depth = DefaultMaxDepth
		}

		o.maxDepth = depth

		return o
	}
}

// WithResultHandler returns an option that registers a callback invoked once
// per successfully evaluated expression line, in input order.
func WithResultHandler(fn func(int64)) Option {
	return func(o options) options {
		o.onResult = fn

		return o
	}
}

// Session is one complete run of the engine over one input source.
// It exclusively owns one symbol table and one document tree, created empty
// and populated only by successful declarations. Sessions are not safe for
// concurrent use; create one session per input.
type Session struct {
	symbols *SymbolTable
	doc     *Document
	results []int64
	opts    options
}

// NewSession creates a session with an empty symbol table and document tree.
func NewSession(opts ...Option) *Session {
	return &Session{
		symbols: NewSymbolTable(),
		doc:     NewDocument(),
		opts:    apply(options{maxDepth: DefaultMaxDepth}, opts...),
	}
}

// Symbols returns the session's symbol table.
func (s *Session) Symbols() *SymbolTable { return s.symbols }

// Document returns the session's document tree.
func (s *Session) Document() *Document { return s.doc }

// Results returns the expression results reported so far, in input order.
func (s *Session) Results() []int64 { return s.results }

// Directive line prefixes. Prefix tests are exact on these literals.
const (
	commentPrefix     = "#"
	declarationPrefix = "global "
	expressionPrefix  = "^"
)

// ParseLine classifies one trimmed input line and dispatches it.
// Blank lines and comments are ignored. Declarations mutate the symbol table
// and document tree; expressions report a result; anything else fails with
// [ErrUnknownDirective].
func (s *Session) ParseLine(line string) error {
	switch {
	case line == "" || strings.HasPrefix(line, commentPrefix):
		return nil

	case strings.HasPrefix(line, declarationPrefix):
		return s.parseDeclaration(line)

	case strings.HasPrefix(line, expressionPrefix):
		result, err := s.evalExpr(strings.TrimPrefix(line, expressionPrefix))
		if err != nil {
			return err
		}

		s.results = append(s.results, result)

		s.opts.logger.Debug("expression evaluated",
			slog.String("expression", line),
			slog.Int64("result", result),
		)

		if s.opts.onResult != nil {
			s.opts.onResult(result)
		}

		return nil

	default:
		return ErrUnknownDirective.With(slog.String("line", line))
	}
}

// Run processes lines in order, stopping at the first failure.
// Lines are trimmed of surrounding whitespace before dispatch.
func (s *Session) Run(lines []string) error {
	for i, line := range lines {
		err := s.ParseLine(strings.TrimSpace(line))
		if err != nil {
			return WrapError(err).With(slog.Int("line_number", i+1))
		}
	}

	return nil
}

// ParseString processes the given source text as newline-separated lines.
func (s *Session) ParseString(source string) error {
	return s.Run(strings.Split(source, "\n"))
}

// ParseReader processes lines read from r until EOF.
func (s *Session) ParseReader(r io.Reader) error {
	lineNumber := 0
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineNumber++

		err := s.ParseLine(strings.TrimSpace(scanner.Text()))
		if err != nil {
			return WrapError(err).With(slog.Int("line_number", lineNumber))
		}
	}

	err := scanner.Err()
	if err != nil {
		return ErrReadInput.Wrap(err)
	}

	return nil
}
