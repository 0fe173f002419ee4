package metadata

import (
	"regexp"
	"strings"

	"moduledef-generator/internal/diagnostic"
)

const identPattern = `[A-Za-z_$\p{L}][A-Za-z0-9_$\p{L}\p{N}]*`

var (
	// identRe matches a plain identifier usable as a class name.
	identRe = regexp.MustCompile(`^` + identPattern + `$`)
	// symbolRe also accepts namespaced symbols such as ns.Shared.
	symbolRe = regexp.MustCompile(`^` + identPattern + `(\.` + identPattern + `)*$`)
)

var scopeModes = map[string]struct{}{
	"":            {},
	"inline":      {},
	"side-effect": {},
	"omit":        {},
}

// IsIdentifier reports whether s is a plain identifier.
func IsIdentifier(s string) bool {
	return identRe.MatchString(s)
}

// Validate validates a description file structurally.
// It does not check that referenced symbols exist.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.Errorf(diagnostic.CodeFileIsNil, diagnostic.Subject{}, "description file is nil")
		return res
	}

	seenNames := map[string]struct{}{}
	seenIDs := map[string]string{}

	for i := range f.Modules {
		m := &f.Modules[i]

		if m.Name == "" {
			res.Errorf(diagnostic.CodeModuleNameMissing, diagnostic.OnEntry(i+1, "name"), "module has no name")
			continue
		}

		if _, ok := seenNames[m.Name]; ok {
			res.Errorf(diagnostic.CodeDuplicateModule, diagnostic.OnField(m.Name, "name"), "duplicate module %q", m.Name)
			continue
		}

		seenNames[m.Name] = struct{}{}

		validateModule(res, m)

		if m.ID != nil && *m.ID != "" {
			if owner, ok := seenIDs[*m.ID]; ok {
				res.Warnf(diagnostic.CodeDuplicateID, diagnostic.OnField(m.Name, "id"),
					"id %q is also used by %s; registration will fail at runtime", *m.ID, owner)
			} else {
				seenIDs[*m.ID] = m.Name
			}
		}
	}

	for i := range f.Declared {
		d := &f.Declared[i]
		validateDeclared(res, i, d)

		if d.Name == "" {
			continue
		}

		if _, ok := seenNames[d.Name]; ok {
			res.Errorf(diagnostic.CodeDuplicateModule, diagnostic.OnField(d.Name, "name"), "duplicate module %q", d.Name)
			continue
		}

		seenNames[d.Name] = struct{}{}
	}

	return res
}

// validateModule validates a single module entry.
func validateModule(res *diagnostic.Diagnostics, m *Module) {
	checkClassName(res, m.Name)

	if _, ok := scopeModes[m.ScopeMode]; !ok {
		res.Errorf(diagnostic.CodeUnknownScopeMode, diagnostic.OnField(m.Name, "scope_mode"),
			"unknown scope mode %q (want inline, side-effect or omit)", m.ScopeMode)
	}

	if m.Type != nil {
		validateRef(res, diagnostic.OnField(m.Name, "type"), *m.Type)
	}

	for _, alt := range []struct{ field, sym string }{
		{"internal_type", m.InternalType},
		{"adjacent_type", m.AdjacentType},
	} {
		if alt.sym != "" && !symbolRe.MatchString(alt.sym) {
			res.Errorf(diagnostic.CodeInvalidSymbol, diagnostic.OnField(m.Name, alt.field), "%q is not an identifier", alt.sym)
		}
	}

	for _, list := range []struct {
		field string
		refs  RefSpecArray
	}{
		{"bootstrap", m.Bootstrap},
		{"declarations", m.Declarations},
		{"imports", m.Imports},
		{"exports", m.Exports},
		{"schemas", m.Schemas},
	} {
		for _, r := range list.refs {
			validateRef(res, diagnostic.OnField(m.Name, list.field), r)
		}
	}

	if m.ID != nil && *m.ID == "" {
		res.Errorf(diagnostic.CodeEmptyID, diagnostic.OnField(m.Name, "id"), "id is present but empty")
	}

	if m.ScopeMode == "omit" && len(m.Declarations)+len(m.Imports)+len(m.Exports) > 0 {
		res.Warnf(diagnostic.CodeScopeDropped, diagnostic.OnField(m.Name, "scope_mode"),
			"declarations, imports and exports are not emitted in omit scope mode")
	}

	for _, r := range m.Imports {
		if r.IsLocal() && r.Value == m.Name {
			res.Warnf(diagnostic.CodeSelfImport, diagnostic.OnField(m.Name, "imports"), "module imports itself")
		}
	}
}

// checkClassName rejects names that cannot be declared as a class.
func checkClassName(res *diagnostic.Diagnostics, name string) {
	if !identRe.MatchString(name) {
		res.Errorf(diagnostic.CodeInvalidSymbol, diagnostic.OnField(name, "name"),
			"module name %q is not an identifier", name)
	}
}

// validateRef validates a single reference.
func validateRef(res *diagnostic.Diagnostics, at diagnostic.Subject, r RefSpec) {
	if r.Value == "" {
		res.Errorf(diagnostic.CodeEmptyReference, at, "reference has no value")
		return
	}

	if !symbolRe.MatchString(r.Value) {
		res.Errorf(diagnostic.CodeInvalidSymbol, at, "%q is not an identifier", r.Value)
	}

	if r.Type != "" && !symbolRe.MatchString(r.Type) {
		res.Errorf(diagnostic.CodeInvalidSymbol, at, "type %q is not an identifier", r.Type)
	}
}

// validateDeclared validates a pre-expanded declaration.
func validateDeclared(res *diagnostic.Diagnostics, index int, d *Declared) {
	if d.Name == "" {
		res.Errorf(diagnostic.CodeModuleNameMissing, diagnostic.OnEntry(index+1, "name"), "declared module has no name")
		return
	}

	checkClassName(res, d.Name)

	if d.Type == nil {
		res.Errorf(diagnostic.CodeDeclaredTypeMissing, diagnostic.OnField(d.Name, "type"), "declared module has no type")
	}

	for _, field := range []struct {
		name  string
		value *string
	}{
		{"type", d.Type},
		{"bootstrap", d.Bootstrap},
		{"declarations", d.Declarations},
		{"imports", d.Imports},
		{"exports", d.Exports},
		{"schemas", d.Schemas},
		{"id", d.ID},
	} {
		if field.value != nil && strings.TrimSpace(*field.value) == "" {
			res.Errorf(diagnostic.CodeEmptyDeclaredField, diagnostic.OnField(d.Name, field.name),
				"field is present but has no source text")
		}
	}
}
