package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ardnew/confix/lang"
	"github.com/ardnew/confix/log"
)

// Eval loads declarations from a source and evaluates one postfix expression
// against them.
type Eval struct {
	Expr   []string `arg:""      help:"Postfix expression tokens to evaluate" name:"expr"`
	Source string   `default:"-" help:"Source input file or '-' for stdin"    short:"f"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	file, err := openSource(e.Source)
	if err != nil {
		return err
	}
	defer file.Close()

	return e.run(ctx, os.Stdout, file)
}

func (e *Eval) run(_ context.Context, w io.Writer, r io.Reader) error {
	session := lang.NewSession(lang.WithLogger(log.Default()))

	err := session.ParseReader(r)
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("command", "eval"))
	}

	expr := strings.Join(e.Expr, " ")

	result, err := session.Eval(expr)
	if err != nil {
		return lang.WrapError(err).
			With(
				slog.String("command", "eval"),
				slog.String("expression", expr),
			)
	}

	_, err = fmt.Fprintln(w, result)

	return err
}
