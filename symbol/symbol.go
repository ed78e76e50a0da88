// Package symbol provides validated value types for namespace-qualified
// identifiers: Symbol ("Ctx`name"), Name ("name"), Context ("Ctx`") and
// RelativeContext ("`Ctx`").
//
// Every value is created through a validating constructor and is immutable
// afterwards. The NewX constructors reject malformed input with an error;
// the MustX constructors panic and are meant for literal call sites, in the
// spirit of regexp.MustCompile. All four types are comparable with ==, and
// two values are equal iff their string forms are equal.
package symbol

import (
	"errors"
	"fmt"
	"strings"
)

// Grammar rejection errors returned by the NewX constructors.
var (
	ErrNotASymbol          = errors.New("not a valid absolute symbol")
	ErrNotAName            = errors.New("not a valid symbol name")
	ErrNotAContext         = errors.New("not a valid context")
	ErrNotARelativeContext = errors.New("not a valid relative context")
)

// Symbol is a context-qualified identifier such as "System`Plus" or
// "MyPackage`Private`helper". The string form always contains at least one
// context separator with a name segment after it.
//
// The zero value is not a valid Symbol; obtain instances through NewSymbol,
// MustSymbol or UncheckedSymbol.
type Symbol struct {
	str string
}

// Name is the bare identifier portion of a symbol, with no context
// separators. In the symbol "Global`foo", the Name is "foo".
type Name struct {
	str string
}

// Context is an absolute namespace path terminated by the context separator,
// e.g. "System`" or "MyPackage`Utils`".
type Context struct {
	str string
}

// RelativeContext is a namespace path relative to some implicit current
// context, beginning with the separator, e.g. "`Sub`Module`".
type RelativeContext struct {
	str string
}

// NewSymbol validates text as an absolute symbol.
//
// Returns:
//   - Symbol: The validated symbol.
//   - error: ErrNotASymbol if text does not match the absolute-symbol grammar.
func NewSymbol(text string) (Symbol, error) {
	if classify(text) != likeAbsoluteSymbol {
		return Symbol{}, fmt.Errorf("%w: %q", ErrNotASymbol, text)
	}

	return Symbol{str: text}, nil
}

// MustSymbol is like NewSymbol but panics on invalid input.
//
// It is intended for string-literal call sites where the caller statically
// guarantees validity. Never pass input derived from unvalidated external
// data to this function.
func MustSymbol(text string) Symbol {
	sym, err := NewSymbol(text)
	if err != nil {
		panic(err)
	}

	return sym
}

// UncheckedSymbol creates a Symbol without validating text.
//
// This is the trusted-literal bypass: a malformed string produces a Symbol
// whose behavior is undefined at the grammar level (decomposition may panic,
// encoders will emit the garbage text verbatim), though never memory-unsafe.
// Use MustSymbol unless the validation cost has been measured to matter.
func UncheckedSymbol(text string) Symbol {
	return Symbol{str: text}
}

// NewName validates text as a bare symbol name (one name segment, no
// separators).
func NewName(text string) (Name, error) {
	if classify(text) != likeSymbolName {
		return Name{}, fmt.Errorf("%w: %q", ErrNotAName, text)
	}

	return Name{str: text}, nil
}

// MustName is like NewName but panics on invalid input. Reserved for literal
// call sites.
func MustName(text string) Name {
	name, err := NewName(text)
	if err != nil {
		panic(err)
	}

	return name
}

// NewContext validates text as an absolute context path.
func NewContext(text string) (Context, error) {
	if classify(text) != likeAbsoluteContext {
		return Context{}, fmt.Errorf("%w: %q", ErrNotAContext, text)
	}

	return Context{str: text}, nil
}

// MustContext is like NewContext but panics on invalid input. Reserved for
// literal call sites.
func MustContext(text string) Context {
	ctx, err := NewContext(text)
	if err != nil {
		panic(err)
	}

	return ctx
}

// NewRelativeContext validates text as a relative context path.
func NewRelativeContext(text string) (RelativeContext, error) {
	if classify(text) != likeRelativeContext {
		return RelativeContext{}, fmt.Errorf("%w: %q", ErrNotARelativeContext, text)
	}

	return RelativeContext{str: text}, nil
}

// MustRelativeContext is like NewRelativeContext but panics on invalid input.
// Reserved for literal call sites.
func MustRelativeContext(text string) RelativeContext {
	rel, err := NewRelativeContext(text)
	if err != nil {
		panic(err)
	}

	return rel
}

// Global returns the well-known "Global`" context.
func Global() Context {
	return Context{str: "Global`"}
}

// System returns the well-known "System`" context.
func System() Context {
	return Context{str: "System`"}
}

// ContextFromName creates the context "name`".
func ContextFromName(name Name) Context {
	return Context{str: name.str + "`"}
}

// String returns the full qualified text of the symbol, including its
// context.
func (s Symbol) String() string {
	return s.str
}

// Context returns the context path prefix of the symbol, up to and including
// the last separator. It performs no allocation beyond the returned header.
//
// Panics if the symbol was produced through UncheckedSymbol from text with no
// separator.
func (s Symbol) Context() Context {
	idx := strings.LastIndexByte(s.str, '`')
	if idx < 0 {
		panic(fmt.Sprintf("symbol: no context separator in %q", s.str))
	}

	return Context{str: s.str[:idx+1]}
}

// Name returns the bare identifier after the last separator.
//
// Panics under the same condition as Context.
func (s Symbol) Name() Name {
	idx := strings.LastIndexByte(s.str, '`')
	if idx < 0 {
		panic(fmt.Sprintf("symbol: no context separator in %q", s.str))
	}

	return Name{str: s.str[idx+1:]}
}

// String returns the bare identifier text.
func (n Name) String() string {
	return n.str
}

// String returns the context text, including the trailing separator.
func (c Context) String() string {
	return c.str
}

// Join appends one name segment to the context, producing a new context
// ending in a separator: MustContext("A`").Join(MustName("B")) is "A`B`".
func (c Context) Join(name Name) Context {
	return Context{str: c.str + name.str + "`"}
}

// Qualify forms the symbol whose context is c and whose bare name is name.
// Both inputs are already validated, so the result is a valid symbol by
// construction: System().Qualify(MustName("Plus")) is "System`Plus".
func (c Context) Qualify(name Name) Symbol {
	return Symbol{str: c.str + name.str}
}

// Components splits the context into its constituent name segments,
// excluding the trailing empty segment: "A`B`" yields ["A", "B"].
func (c Context) Components() []Name {
	return splitComponents(c.str)
}

// String returns the relative context text, including the leading and
// trailing separators.
func (r RelativeContext) String() string {
	return r.str
}

// Components splits the relative context into its constituent name segments:
// "`A`B`" yields ["A", "B"].
func (r RelativeContext) Components() []Name {
	return splitComponents(r.str)
}

func splitComponents(path string) []Name {
	parts := strings.Split(path, "`")
	names := make([]Name, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		names = append(names, Name{str: part})
	}

	return names
}
