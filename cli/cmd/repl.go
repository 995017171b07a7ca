package cmd

import (
	"context"
	"io"

	"github.com/ardnew/confix/cli/cmd/repl"
	"github.com/ardnew/confix/log"
)

// Repl starts an interactive session, optionally preloaded from a source
// file.
type Repl struct {
	Source string `default:""         help:"Source file to preload into the session"              short:"f"`
	Cache  string `default:"${cache}" help:"Directory for history persistence"       type:"path"`
}

// Run executes the repl command.
func (c *Repl) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	var reader io.Reader

	if c.Source != "" {
		// Stdin is reserved for interactive input.
		if c.Source == stdinSource {
			return ErrStdinSource
		}

		file, err := openSource(c.Source)
		if err != nil {
			return err
		}
		defer file.Close()

		reader = file
	}

	return repl.Run(ctx, reader, c.Cache, log.Default())
}
