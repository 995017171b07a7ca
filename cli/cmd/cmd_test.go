package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

const testSource = `# constants
global width = 10;
global height = 3;
global sizes = array(1, 2, array(3));
^ width height *
`

func TestParseRun(t *testing.T) {
	tests := []struct {
		name     string
		parse    Parse
		input    string
		wantErr  bool
		contains []string
	}{
		{
			name:  "xml with results",
			parse: Parse{Format: "xml", Results: true},
			input: testSource,
			contains: []string{
				"30",
				`<constant name="width">10</constant>`,
				`<constant name="sizes">`,
			},
		},
		{
			name:     "json",
			parse:    Parse{Format: "json"},
			input:    "global x = 10;\nglobal y = array(1, 2);\n",
			contains: []string{`"x":10`, `"y":[1,2]`},
		},
		{
			name:     "yaml",
			parse:    Parse{Format: "yaml"},
			input:    "global x = 10;\n",
			contains: []string{"x: 10"},
		},
		{
			name:     "indented xml",
			parse:    Parse{Format: "xml", Indent: 2},
			input:    "global x = 10;\n",
			contains: []string{"<config>\n  <constant"},
		},
		{
			name:    "undefined symbol",
			parse:   Parse{Format: "xml"},
			input:   "global x = missing;\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			err := tt.parse.run(
				context.Background(), &buf, strings.NewReader(tt.input),
			)
			if (err != nil) != tt.wantErr {
				t.Fatalf("run() error = %v, wantErr %v", err, tt.wantErr)
			}

			for _, want := range tt.contains {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output missing %q:\n%s", want, buf.String())
				}
			}
		})
	}
}

func TestEvalRun(t *testing.T) {
	tests := []struct {
		name    string
		expr    []string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "declared symbols",
			expr:  []string{"width", "height", "+"},
			input: testSource,
			want:  "13\n",
		},
		{
			name:  "expression as single argument",
			expr:  []string{"-10 3 /"},
			input: "",
			want:  "-4\n",
		},
		{
			name:    "undefined symbol",
			expr:    []string{"missing", "1", "+"},
			input:   "",
			wantErr: true,
		},
		{
			name:    "malformed expression",
			expr:    []string{"1", "2"},
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			eval := Eval{Expr: tt.expr}

			err := eval.run(
				context.Background(), &buf, strings.NewReader(tt.input),
			)
			if (err != nil) != tt.wantErr {
				t.Fatalf("run() error = %v, wantErr %v", err, tt.wantErr)
			}

			if !tt.wantErr && buf.String() != tt.want {
				t.Errorf("run() output = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestFmtRun(t *testing.T) {
	var buf bytes.Buffer

	fmtCmd := Fmt{}

	err := fmtCmd.run(
		context.Background(), &buf, strings.NewReader(testSource),
	)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	want := "global width = 10;\n" +
		"global height = 3;\n" +
		"global sizes = array(1, 2, array(3));\n"
	if buf.String() != want {
		t.Errorf("run() output = %q, want %q", buf.String(), want)
	}
}

func TestOpenSourceMissingFile(t *testing.T) {
	_, err := openSource("/nonexistent/path/to/source")
	if err == nil {
		t.Fatal("openSource() expected error for missing file")
	}

	if !strings.Contains(err.Error(), "open source") {
		t.Errorf("openSource() error = %q, want open source prefix", err)
	}
}
