package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/ardnew/confix/lang"
	"github.com/ardnew/confix/log"
)

// Fmt re-emits a source's declarations in canonical syntax, one per line,
// dropping comments and expressions.
type Fmt struct {
	Source string `arg:"" default:"-" help:"Source input file or '-' for stdin" name:"source"`
}

// Run executes the fmt command.
func (f *Fmt) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	file, err := openSource(f.Source)
	if err != nil {
		return err
	}
	defer file.Close()

	return f.run(ctx, os.Stdout, file)
}

func (f *Fmt) run(ctx context.Context, w io.Writer, r io.Reader) error {
	session := lang.NewSession(lang.WithLogger(log.Default()))

	err := session.ParseReader(r)
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("command", "fmt"))
	}

	return session.Document().FormatDecls(ctx, w)
}
