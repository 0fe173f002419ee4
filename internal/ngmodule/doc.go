// Package ngmodule lowers module metadata into module definition code.
//
// A module is a grouping unit with a type, declared sub-units, imported and
// exported units, bootstrap entries, element schemas and an optional unique
// identifier. Compilation produces a CompiledDefinition:
//   - Expression: a call that evaluates to the module descriptor
//   - Type: the compile-time shape of that descriptor
//   - Statements: top-level side effects emitted after the definition
//
// Selector scope emission modes:
//   - ScopeInline: declarations/imports/exports live inside the definition call
//   - ScopeSideEffect: they are patched on by a guarded, self-invoking call so
//     that unused units remain tree-shakable
//   - ScopeOmit: scope information is not emitted
//
// References that may point at not-yet-defined units (cyclic imports) are
// lowered into closures returning the array, evaluated lazily by the runtime.
//
// All functions are pure; nothing is retained between calls.
package ngmodule
