package lang

import (
	"iter"

	"github.com/sahilm/fuzzy"
)

// SymbolTable maps declared names to their bound values, preserving
// declaration order. Bindings are created only by successful declarations
// and are never deleted; rebinding a name shadows the prior value without
// touching values already resolved through it.
type SymbolTable struct {
	order []string
	table map[string]*Value
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		table: make(map[string]*Value),
	}
}

// Bind associates name with value, overwriting any prior binding.
func (t *SymbolTable) Bind(name string, value *Value) {
	if _, exists := t.table[name]; !exists {
		t.order = append(t.order, name)
	}

	t.table[name] = value
}

// Lookup returns the value currently bound to name.
func (t *SymbolTable) Lookup(name string) (*Value, bool) {
	v, ok := t.table[name]

	return v, ok
}

// Resolve returns a deep copy of the value bound to name.
// Callers that hold onto the result are insulated from later rebindings.
func (t *SymbolTable) Resolve(name string) (*Value, bool) {
	v, ok := t.table[name]
	if !ok {
		return nil, false
	}

	return v.Clone(), true
}

// Len returns the number of bound names.
func (t *SymbolTable) Len() int { return len(t.order) }

// Names returns an iterator over bound names in declaration order.
func (t *SymbolTable) Names() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, name := range t.order {
			if !yield(name) {
				return
			}
		}
	}
}

// maxSuggestions bounds the number of near-miss candidates attached to
// undefined-symbol errors.
const maxSuggestions = 3

// Suggest returns up to maxSuggestions declared names that fuzzy-match the
// given (presumably misspelled) name, best match first.
func (t *SymbolTable) Suggest(name string) []string {
	matches := fuzzy.Find(name, t.order)
	if len(matches) == 0 {
		return nil
	}

	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}

	found := make([]string, len(matches))
	for i, m := range matches {
		found[i] = m.Str
	}

	return found
}
