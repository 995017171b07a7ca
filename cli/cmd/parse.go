package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ardnew/confix/lang"
	"github.com/ardnew/confix/log"
)

// Parse runs a complete session over a source and serializes the resulting
// document tree.
type Parse struct {
	Format  string `default:"xml" enum:"xml,json,yaml" help:"Document serialization format"              placeholder:"${enum}" short:"t"`
	Indent  int    `default:"2"                        help:"Indent width for serialized output"                               short:"i"`
	Source  string `default:"-"                        help:"Source input file or '-' for stdin"                               short:"f"`
	Results bool   `default:"true"                     help:"Print expression results before the document" negatable:""`
}

// Run executes the parse command.
func (p *Parse) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	file, err := openSource(p.Source)
	if err != nil {
		return err
	}
	defer file.Close()

	return p.run(ctx, os.Stdout, file)
}

func (p *Parse) run(ctx context.Context, w io.Writer, r io.Reader) error {
	session := lang.NewSession(lang.WithLogger(log.Default()))

	err := session.ParseReader(r)
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("command", "parse"))
	}

	if p.Results {
		for _, result := range session.Results() {
			_, err := fmt.Fprintln(w, result)
			if err != nil {
				return err
			}
		}
	}

	doc := session.Document()

	switch p.Format {
	case "json":
		return doc.FormatJSON(ctx, w, p.Indent)

	case "yaml":
		return doc.FormatYAML(ctx, w, p.Indent)

	default:
		return doc.Format(ctx, w, p.Indent)
	}
}
