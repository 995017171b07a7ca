package lang

import (
	"errors"
	"strings"
	"testing"
)

func TestSession_ParseString(t *testing.T) {
	source := `
# declarations
global x = 10;
global y = array(1, 2, x);

# expressions
^ 3 4 +
^ x 2 *
`

	s := NewSession()

	err := s.ParseString(source)
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}

	if s.Symbols().Len() != 2 {
		t.Errorf("symbol count = %d, want 2", s.Symbols().Len())
	}

	if s.Document().Len() != 2 {
		t.Errorf("document node count = %d, want 2", s.Document().Len())
	}

	results := s.Results()

	want := []int64{7, 20}
	if len(results) != len(want) {
		t.Fatalf("result count = %d, want %d", len(results), len(want))
	}

	for i, r := range results {
		if r != want[i] {
			t.Errorf("result %d = %d, want %d", i, r, want[i])
		}
	}
}

func TestSession_ParseReader(t *testing.T) {
	r := strings.NewReader("global x = 1;\n^ x 1 +\n")

	s := NewSession()

	err := s.ParseReader(r)
	if err != nil {
		t.Fatalf("ParseReader() error = %v", err)
	}

	if got := s.Results(); len(got) != 1 || got[0] != 2 {
		t.Errorf("results = %v, want [2]", got)
	}
}

func TestSession_FailFast(t *testing.T) {
	s := NewSession()

	err := s.Run([]string{
		"global x = 10;",
		"bogus line",
		"global y = 20;", // never reached
	})
	if !errors.Is(err, ErrUnknownDirective) {
		t.Fatalf("Run() error = %v, want ErrUnknownDirective", err)
	}

	// State accumulated before the failing line remains consistent.
	if s.Symbols().Len() != 1 {
		t.Errorf("symbol count = %d, want 1", s.Symbols().Len())
	}

	if _, ok := s.Symbols().Lookup("y"); ok {
		t.Errorf("declaration after failure was processed")
	}
}

func TestSession_ResultHandler(t *testing.T) {
	var reported []int64

	s := NewSession(WithResultHandler(func(r int64) {
		reported = append(reported, r)
	}))

	err := s.ParseString("^ 1 2 +\n^ 10 3 /")
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}

	if len(reported) != 2 || reported[0] != 3 || reported[1] != 3 {
		t.Errorf("reported = %v, want [3 3]", reported)
	}
}

func TestSession_Reentrant(t *testing.T) {
	first := NewSession()
	if err := first.ParseString("global x = 1;"); err != nil {
		t.Fatalf("first session error = %v", err)
	}

	// A fresh session starts with empty state regardless of prior sessions.
	second := NewSession()
	if err := second.ParseString("^ 1 1 +"); err != nil {
		t.Fatalf("second session error = %v", err)
	}

	if second.Symbols().Len() != 0 {
		t.Errorf("second session inherited %d symbols", second.Symbols().Len())
	}

	if _, ok := second.Symbols().Lookup("x"); ok {
		t.Errorf("second session resolved first session's symbol")
	}
}

func TestSession_LinesAreTrimmed(t *testing.T) {
	s := NewSession()

	err := s.Run([]string{"   global x = 10;   ", "\t^ x 1 +\t"})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if got := s.Results(); len(got) != 1 || got[0] != 11 {
		t.Errorf("results = %v, want [11]", got)
	}
}
