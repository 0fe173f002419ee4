// Package identifiers resolves the well-known runtime symbols referenced by
// emitted module definitions.
package identifiers

import (
	"fmt"

	"moduledef-generator/internal/output"
)

// Name is the logical name of a runtime symbol.
type Name string

const (
	// Core is the runtime module namespace itself (`i0`).
	Core Name = "core"
	// DefineNgModule constructs a module descriptor.
	DefineNgModule Name = "defineNgModule"
	// SetNgModuleScope patches scope information onto a descriptor.
	SetNgModuleScope Name = "setNgModuleScope"
	// RegisterNgModuleType registers a module under its unique id.
	RegisterNgModuleType Name = "registerNgModuleType"
	// NgModuleDeclaration is the descriptor's compile-time type.
	NgModuleDeclaration Name = "NgModuleDeclaration"
	// DeclareNgModule is the partial (serialized) declaration entry point.
	DeclareNgModule Name = "declareNgModule"
)

// DefaultCoreModule is the module the runtime symbols are imported from.
const DefaultCoreModule = "@angular/core"

// DefaultJitGuard is the global flag that enables development-only calls.
const DefaultJitGuard = "ngJitMode"

var symbols = map[Name]string{
	Core:                 "",
	DefineNgModule:       "ɵɵdefineNgModule",
	SetNgModuleScope:     "ɵɵsetNgModuleScope",
	RegisterNgModuleType: "ɵɵregisterNgModuleType",
	NgModuleDeclaration:  "ɵɵNgModuleDeclaration",
	DeclareNgModule:      "ɵɵngDeclareNgModule",
}

// Table maps logical names to import expressions.
type Table struct {
	coreModule string
	jitGuard   string
}

// New creates a Table importing from coreModule and guarding development-only
// calls with jitGuard. Empty arguments fall back to the defaults.
func New(coreModule, jitGuard string) *Table {
	if coreModule == "" {
		coreModule = DefaultCoreModule
	}

	if jitGuard == "" {
		jitGuard = DefaultJitGuard
	}

	return &Table{coreModule: coreModule, jitGuard: jitGuard}
}

// Default returns a Table with the default module and guard.
func Default() *Table {
	return New("", "")
}

// CoreModule returns the module the runtime symbols are imported from.
func (t *Table) CoreModule() string {
	return t.coreModule
}

// Lookup returns the external reference for name.
func (t *Table) Lookup(name Name) (output.ExternalReference, bool) {
	symbol, ok := symbols[name]
	if !ok {
		return output.ExternalReference{}, false
	}

	return output.ExternalReference{ModuleName: t.coreModule, Name: symbol}, true
}

// Expr returns an import expression for name. Unknown names panic.
func (t *Table) Expr(name Name) *output.ExternalExpr {
	ref, ok := t.Lookup(name)
	if !ok {
		panic(fmt.Sprintf("identifiers: unknown runtime symbol %q", name))
	}

	return &output.ExternalExpr{Ref: ref}
}

// JitGuard returns a read of the global development-mode flag.
func (t *Table) JitGuard() *output.ExternalExpr {
	return &output.ExternalExpr{Ref: output.ExternalReference{Name: t.jitGuard}}
}
