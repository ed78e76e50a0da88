package wexpr

import "github.com/termlab/wexpr/symbol"

// Well-known symbols used by the builders, queries and conversions. These
// are compile-time literals, so they go through the trusted-literal path.
var (
	symList        = symbol.UncheckedSymbol("System`List")
	symRule        = symbol.UncheckedSymbol("System`Rule")
	symRuleDelayed = symbol.UncheckedSymbol("System`RuleDelayed")
	symAssociation = symbol.UncheckedSymbol("System`Association")
	symNull        = symbol.UncheckedSymbol("System`Null")
	symTrue        = symbol.UncheckedSymbol("System`True")
	symFalse       = symbol.UncheckedSymbol("System`False")
	symNone        = symbol.UncheckedSymbol("System`None")

	symInteger = symbol.UncheckedSymbol("System`Integer")
	symReal    = symbol.UncheckedSymbol("System`Real")
	symString  = symbol.UncheckedSymbol("System`String")
	symSymbol  = symbol.UncheckedSymbol("System`Symbol")

	symIndeterminate = symbol.UncheckedSymbol("System`Indeterminate")
	symInfinity      = symbol.UncheckedSymbol("System`Infinity")
)
