package ngmodule

import (
	"fmt"

	"moduledef-generator/internal/output"
)

//go:generate go tool stringer -type=SelectorScopeMode -linecomment -output=selectorscopemode_string.go

// SelectorScopeMode selects where scope information is emitted.
type SelectorScopeMode int

const (
	// ScopeInline emits declarations/imports/exports inside the definition call.
	ScopeInline SelectorScopeMode = iota // inline
	// ScopeSideEffect emits them through a guarded setNgModuleScope call.
	ScopeSideEffect // side-effect
	// ScopeOmit drops them entirely.
	ScopeOmit // omit
)

// ParseSelectorScopeMode parses the textual form returned by String.
func ParseSelectorScopeMode(s string) (SelectorScopeMode, error) {
	for _, mode := range []SelectorScopeMode{ScopeInline, ScopeSideEffect, ScopeOmit} {
		if mode.String() == s {
			return mode, nil
		}
	}

	return 0, fmt.Errorf("unknown selector scope mode %q", s)
}

// Reference pairs a runtime value expression with a compile-time type
// expression. Both name the same entity.
type Reference struct {
	Value output.Expression
	Type  output.Expression
}

// Metadata describes a module to compile.
type Metadata struct {
	// Type is the module's own type in its public spelling.
	Type Reference
	// InternalType spells the type inside the defining scope.
	InternalType output.Expression
	// AdjacentType spells the type immediately beside the defining scope.
	AdjacentType output.Expression

	Bootstrap    []Reference
	Declarations []Reference
	Imports      []Reference
	Exports      []Reference
	Schemas      []Reference

	// ID is the unique module identifier, or nil.
	ID output.Expression

	// ContainsForwardDecls is true if any reference may point at an entity
	// not yet defined where the definition is emitted.
	ContainsForwardDecls bool

	SelectorScopeMode SelectorScopeMode
}

// CompiledDefinition is the result of compiling a module.
//
// Statements must be emitted as top-level statements after the place where
// Expression is assigned, never nested inside it.
type CompiledDefinition struct {
	Expression output.Expression
	Type       output.Type
	Statements []output.Statement
}
