package lang

import (
	"slices"
	"testing"
)

func TestSymbolTable_BindLookup(t *testing.T) {
	tab := NewSymbolTable()

	if _, ok := tab.Lookup("x"); ok {
		t.Fatalf("empty table resolved a name")
	}

	tab.Bind("x", NewInt(1))
	tab.Bind("y", NewInt(2))
	tab.Bind("x", NewInt(3)) // rebind

	if tab.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tab.Len())
	}

	x, ok := tab.Lookup("x")
	if !ok || !x.Equal(NewInt(3)) {
		t.Errorf("Lookup(x) = %s, want 3", x)
	}

	got := slices.Collect(tab.Names())

	want := []string{"x", "y"}
	if !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestSymbolTable_ResolveCopies(t *testing.T) {
	tab := NewSymbolTable()
	tab.Bind("xs", NewList(NewInt(1)))

	resolved, ok := tab.Resolve("xs")
	if !ok {
		t.Fatalf("Resolve(xs) failed")
	}

	// Rebinding must not affect resolved copies, and vice versa.
	resolved.List[0].Int = 99

	stored, _ := tab.Lookup("xs")
	if stored.List[0].Int != 1 {
		t.Errorf("Resolve() returned shared structure")
	}
}

func TestSymbolTable_Suggest(t *testing.T) {
	tab := NewSymbolTable()
	for _, name := range []string{"width", "height", "depth", "weight"} {
		tab.Bind(name, NewInt(0))
	}

	found := tab.Suggest("wdth")
	if len(found) == 0 {
		t.Fatalf("Suggest(wdth) found nothing")
	}

	if !slices.Contains(found, "width") {
		t.Errorf("Suggest(wdth) = %v, want it to contain %q", found, "width")
	}

	if len(found) > maxSuggestions {
		t.Errorf("Suggest returned %d candidates, max %d", len(found), maxSuggestions)
	}

	if found = tab.Suggest("zzz"); len(found) != 0 {
		t.Errorf("Suggest(zzz) = %v, want none", found)
	}
}
