package diagnostic

// Code identifies a kind of diagnostic. Codes are stable and safe to match on.
type Code string

// Errors raised while validating a description file.
const (
	CodeFileIsNil           Code = "file_is_nil"
	CodeModuleNameMissing   Code = "module_name_missing"
	CodeDuplicateModule     Code = "duplicate_module"
	CodeInvalidSymbol       Code = "invalid_symbol"
	CodeUnknownScopeMode    Code = "unknown_scope_mode"
	CodeEmptyReference      Code = "empty_reference"
	CodeEmptyID             Code = "empty_id"
	CodeDeclaredTypeMissing Code = "declared_type_missing"
	CodeEmptyDeclaredField  Code = "empty_declared_field"
)

// Warnings about descriptions that compile but probably misbehave.
const (
	CodeDuplicateID  Code = "duplicate_id"
	CodeScopeDropped Code = "scope_dropped"
	CodeSelfImport   Code = "self_import"
)

// Notes about decisions made during resolution.
const (
	CodeModuleCycle         Code = "module_cycle"
	CodeForwardRefsDetected Code = "forward_refs_detected"
)
