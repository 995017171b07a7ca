package lang

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func buildSession(t *testing.T, lines ...string) *Session {
	t.Helper()

	s := NewSession()

	err := s.Run(lines)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	return s
}

func TestFormat_XML(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{
			name:  "scalar constant",
			lines: []string{"global x = 10;"},
			want:  `<config><constant name="x">10</constant></config>`,
		},
		{
			name: "array constant",
			lines: []string{
				"global x = 10;",
				"global y = array(1, 2, x);",
			},
			want: `<config><constant name="x">10</constant>` +
				`<constant name="y"><value>1</value><value>2</value>` +
				`<value>10</value></constant></config>`,
		},
		{
			name:  "empty array has no value children",
			lines: []string{"global z = array();"},
			want:  `<config><constant name="z"></constant></config>`,
		},
		{
			name:  "nested array nests value nodes",
			lines: []string{"global n = array(1, array(2));"},
			want: `<config><constant name="n"><value>1</value>` +
				`<value><value>2</value></value></constant></config>`,
		},
		{
			name:  "empty document",
			lines: nil,
			want:  `<config></config>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := buildSession(t, tt.lines...)

			var buf bytes.Buffer

			err := s.Document().Format(context.Background(), &buf, 0)
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}

			got := strings.TrimSpace(buf.String())
			if got != tt.want {
				t.Errorf("Format() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestFormat_JSON(t *testing.T) {
	s := buildSession(t,
		"global x = 10;",
		"global y = array(1, array(2));",
	)

	var buf bytes.Buffer

	err := s.Document().FormatJSON(context.Background(), &buf, 0)
	if err != nil {
		t.Fatalf("FormatJSON() error = %v", err)
	}

	got := strings.TrimSpace(buf.String())

	want := `{"x":10,"y":[1,[2]]}`
	if got != want {
		t.Errorf("FormatJSON() = %s, want %s", got, want)
	}
}

func TestFormat_YAML(t *testing.T) {
	s := buildSession(t, "global x = 10;")

	var buf bytes.Buffer

	err := s.Document().FormatYAML(context.Background(), &buf, 2)
	if err != nil {
		t.Fatalf("FormatYAML() error = %v", err)
	}

	if !strings.Contains(buf.String(), "x: 10") {
		t.Errorf("FormatYAML() = %q, want it to contain %q", buf.String(), "x: 10")
	}
}

func TestFormatDecls_RoundTrip(t *testing.T) {
	lines := []string{
		"global x = 10;",
		"global y = array(1, array(2, 3), array());",
	}

	s := buildSession(t, lines...)

	var buf bytes.Buffer

	err := s.Document().FormatDecls(context.Background(), &buf)
	if err != nil {
		t.Fatalf("FormatDecls() error = %v", err)
	}

	// Reparsing the canonical output reproduces the same bindings.
	second := NewSession()

	err = second.ParseString(buf.String())
	if err != nil {
		t.Fatalf("reparse error = %v", err)
	}

	for name := range s.Symbols().Names() {
		want, _ := s.Symbols().Lookup(name)

		got, ok := second.Symbols().Lookup(name)
		if !ok {
			t.Fatalf("reparse lost symbol %q", name)
		}

		if !got.Equal(want) {
			t.Errorf("reparse of %q = %s, want %s", name, got, want)
		}
	}
}

func TestDocument_AppendOrderPreserved(t *testing.T) {
	s := buildSession(t,
		"global b = 1;",
		"global a = 2;",
		"global c = 3;",
	)

	want := []string{"b", "a", "c"}

	constants := s.Document().Constants()
	if len(constants) != len(want) {
		t.Fatalf("constant count = %d, want %d", len(constants), len(want))
	}

	for i, c := range constants {
		if c.Name != want[i] {
			t.Errorf("constant %d = %q, want %q", i, c.Name, want[i])
		}
	}
}
