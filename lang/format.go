package lang

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// Format writes the document as XML to the writer, one "constant" element
// per declaration under a "config" root. This is the native serialization of
// the document tree. A positive indent selects multiline output with that
// many spaces per nesting level.
func (d *Document) Format(_ context.Context, w io.Writer, indent int) error {
	var (
		data []byte
		err  error
	)

	if indent > 0 {
		data, err = xml.MarshalIndent(d.toXML(), "", strings.Repeat(" ", indent))
	} else {
		data, err = xml.Marshal(d.toXML())
	}

	if err != nil {
		return WrapError(err)
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

// FormatJSON writes the document as JSON to the writer.
// Keys are emitted in lexical order (a property of the underlying map
// encoding), so output is deterministic for a given document.
func (d *Document) FormatJSON(_ context.Context, w io.Writer, indent int) error {
	var (
		data []byte
		err  error
	)

	if indent > 0 {
		data, err = json.MarshalIndent(d.ToMap(), "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(d.ToMap())
	}

	if err != nil {
		return WrapError(err)
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

// FormatYAML writes the document as YAML to the writer.
func (d *Document) FormatYAML(_ context.Context, w io.Writer, indent int) error {
	opts := []yaml.EncodeOption{yaml.Flow(true)}
	if indent > 0 {
		opts = []yaml.EncodeOption{yaml.Indent(indent)}
	}

	data, err := yaml.MarshalWithOptions(d.ToMap(), opts...)
	if err != nil {
		return WrapError(err)
	}

	_, err = w.Write(data)

	return err
}

// FormatDecls writes the document's declarations in canonical source syntax,
// one "global <name> = <value>;" line per constant in declaration order.
// Parsing the output reconstructs an equivalent document.
func (d *Document) FormatDecls(_ context.Context, w io.Writer) error {
	for _, c := range d.constants {
		_, err := fmt.Fprintf(w, "global %s = %s;\n", c.Name, c.Value)
		if err != nil {
			return err
		}
	}

	return nil
}
