// Package symtab tracks the set of symbols an interpreter session has
// created and resolves raw source text into fully-qualified symbols against
// a current context and a context search path.
package symtab

import (
	"fmt"
	"strings"

	"github.com/termlab/wexpr/symbol"
)

// Table is a symbol table: the current context, the ordered context search
// path, and the set of symbols created so far, indexed by bare name so a
// bare occurrence in source text can be resolved against the path.
//
// A Table is not safe for concurrent use.
type Table struct {
	context     symbol.Context
	contextPath []symbol.Context

	symbols map[symbol.Symbol]struct{}

	// commonNames groups the known symbols by bare name; symbols in one group
	// differ only in their context.
	commonNames map[symbol.Name]map[symbol.Symbol]struct{}
}

// New creates a table with the given current context and context search path.
// The path is searched in order; it is copied, so the caller's slice may be
// reused.
func New(context symbol.Context, contextPath []symbol.Context) *Table {
	path := make([]symbol.Context, len(contextPath))
	copy(path, contextPath)

	return &Table{
		context:     context,
		contextPath: path,
		symbols:     make(map[symbol.Symbol]struct{}),
		commonNames: make(map[symbol.Name]map[symbol.Symbol]struct{}),
	}
}

// Context returns the current context.
func (t *Table) Context() symbol.Context {
	return t.context
}

// SetContext replaces the current context. Symbols already in the table are
// unaffected; only subsequent resolution changes.
func (t *Table) SetContext(context symbol.Context) {
	t.context = context
}

// ContextPath returns the context search path in search order. The returned
// slice must be treated as read-only.
func (t *Table) ContextPath() []symbol.Context {
	return t.contextPath
}

// Add records the symbol, reporting whether it was newly added.
func (t *Table) Add(sym symbol.Symbol) bool {
	if _, exists := t.symbols[sym]; exists {
		return false
	}
	t.symbols[sym] = struct{}{}

	name := sym.Name()
	group := t.commonNames[name]
	if group == nil {
		group = make(map[symbol.Symbol]struct{})
		t.commonNames[name] = group
	}
	group[sym] = struct{}{}

	return true
}

// Remove forgets the symbol. Removal makes the symbol invisible to Contains
// but keeps its name known, so later bare references still resolve to the
// same qualified symbol.
func (t *Table) Remove(sym symbol.Symbol) {
	delete(t.symbols, sym)
}

// Contains reports whether the symbol has been added and not removed.
func (t *Table) Contains(sym symbol.Symbol) bool {
	_, ok := t.symbols[sym]

	return ok
}

// IsVisible reports whether the symbol resides in the current context or in
// a context on the search path.
func (t *Table) IsVisible(sym symbol.Symbol) bool {
	context := sym.Context()
	if context == t.context {
		return true
	}
	for _, entry := range t.contextPath {
		if context == entry {
			return true
		}
	}

	return false
}

// ParseFromSource resolves one symbol occurrence from source text into a
// fully-qualified symbol and records it in the table:
//
//   - a bare name resolves to a known symbol of that name whose context is on
//     the search path (earliest path entry wins), or failing that to
//     current-context`name;
//   - text starting with the separator is relative to the current context:
//     with current context "Internal`", the text "`y`x" means "Internal`y`x";
//   - any other text must be a valid absolute symbol.
//
// Text violating the symbol grammar is rejected with an error and the table
// is left unchanged.
func (t *Table) ParseFromSource(text string) (symbol.Symbol, error) {
	sym, err := t.resolve(text)
	if err != nil {
		return symbol.Symbol{}, err
	}
	t.Add(sym)

	return sym, nil
}

func (t *Table) resolve(text string) (symbol.Symbol, error) {
	if !strings.ContainsRune(text, '`') {
		name, err := symbol.NewName(text)
		if err != nil {
			return symbol.Symbol{}, fmt.Errorf("resolve %q: %w", text, err)
		}

		return t.resolveName(name), nil
	}

	if strings.HasPrefix(text, "`") {
		sym, err := symbol.NewSymbol(t.context.String() + text[1:])
		if err != nil {
			return symbol.Symbol{}, fmt.Errorf("resolve %q relative to %s: %w", text, t.context, err)
		}

		return sym, nil
	}

	sym, err := symbol.NewSymbol(text)
	if err != nil {
		return symbol.Symbol{}, fmt.Errorf("resolve %q: %w", text, err)
	}

	return sym, nil
}

// resolveName resolves a bare name: the first context-path entry owning a
// known symbol of that name wins, otherwise the name is created in the
// current context.
func (t *Table) resolveName(name symbol.Name) symbol.Symbol {
	if group := t.commonNames[name]; group != nil {
		for _, entry := range t.contextPath {
			candidate := entry.Qualify(name)
			if _, ok := group[candidate]; ok {
				return candidate
			}
		}
	}

	return t.context.Qualify(name)
}
