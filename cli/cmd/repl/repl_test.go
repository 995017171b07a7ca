package repl

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardnew/confix/lang"
	"github.com/ardnew/confix/log"
)

// testModel builds a model over a session preloaded from source, with
// history persisted under a test-scoped temp directory and logging discarded.
func testModel(t *testing.T, source string) model {
	t.Helper()

	session := lang.NewSession()
	if err := session.ParseString(source); err != nil {
		t.Fatal(err)
	}

	history := NewHistory(filepath.Join(t.TempDir(), baseHistory))

	return newModel(context.Background(), session, history, log.Logger{})
}

func TestDispatchLineDeclaration(t *testing.T) {
	m := testModel(t, "")

	m, _ = m.dispatchLine("global z = array(1, 2);", nil)

	value, ok := m.session.Symbols().Lookup("z")
	if !ok {
		t.Fatal("declaration did not bind symbol z")
	}

	if value.Kind != lang.KindList || len(value.List) != 2 {
		t.Errorf("z bound to %s, want array(1, 2)", value)
	}
}

func TestDispatchLineExpression(t *testing.T) {
	m := testModel(t, "global x = 7;\n")

	// Both prefixed and bare expressions evaluate against the session.
	for _, line := range []string{"^ x 2 *", "x 2 *"} {
		result, err := m.session.Eval(strings.TrimPrefix(line, "^"))
		if err != nil {
			t.Fatalf("Eval(%q) error = %v", line, err)
		}

		if result != 14 {
			t.Errorf("Eval(%q) = %d, want 14", line, result)
		}
	}
}

func TestExecuteInputRecordsHistory(t *testing.T) {
	m := testModel(t, "")

	m.input.SetValue("global a = 1;")
	m, _ = m.executeInput()

	m.input.SetValue(":list")
	m, _ = m.executeInput()

	if m.history.Len() != 2 {
		t.Fatalf("history Len() = %d, want 2", m.history.Len())
	}

	line, err := m.history.GetLine(0)
	if err != nil || line != "global a = 1;" {
		t.Errorf("GetLine(0) = (%q, %v), want declaration", line, err)
	}
}

func TestListSymbols(t *testing.T) {
	m := testModel(t, "global x = 10;\nglobal y = array(1);\n")

	out := m.listSymbols()

	for _, want := range []string{"x", "y", "10", "array(1)"} {
		if !strings.Contains(out, want) {
			t.Errorf("listSymbols() missing %q:\n%s", want, out)
		}
	}
}
