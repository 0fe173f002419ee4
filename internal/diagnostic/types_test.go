package diagnostic

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Err(t *testing.T) {
	var d Diagnostics
	assert.False(t, d.HasErrors())
	assert.NoError(t, d.Err())

	d.Warnf(CodeDuplicateID, OnField("B", "id"), "id %q reused", "x")
	assert.NoError(t, d.Err())

	d.Errorf(CodeModuleNameMissing, OnEntry(2, "name"), "module has no name")
	d.Errorf(CodeUnknownScopeMode, OnField("A", "scope_mode"), "unknown mode %q", "lazy")

	require.True(t, d.HasErrors())

	err := d.Err()
	assert.EqualError(t, err,
		"#2.name: [module_name_missing] module has no name\n"+
			`A.scope_mode: [unknown_scope_mode] unknown mode "lazy"`)

	var diag Diagnostic
	require.True(t, errors.As(err, &diag))
	assert.Equal(t, CodeModuleNameMissing, diag.Code)
}

func TestDiagnostics_MergeAndAll(t *testing.T) {
	var a, b Diagnostics
	a.Infof(CodeForwardRefsDetected, OnModule("A"), "detected")
	b.Warnf(CodeSelfImport, OnField("B", "imports"), "module imports itself")
	b.Errorf(CodeDuplicateModule, OnField("B", "name"), "duplicate")
	a.Merge(&b)
	a.Merge(nil)

	assert.Equal(t, 3, a.Len())

	all := a.All()
	require.Len(t, all, 3)
	assert.Equal(t, SeverityError, all[0].Severity)
	assert.Equal(t, SeverityWarning, all[1].Severity)
	assert.Equal(t, SeverityInfo, all[2].Severity)

	assert.Equal(t, []Code{CodeForwardRefsDetected}, a.Codes(SeverityInfo))
	assert.True(t, a.Has(CodeSelfImport))
	assert.False(t, a.Has(CodeEmptyID))
	assert.Len(t, a.ForModule("B"), 2)
	assert.Empty(t, a.ForModule("C"))
}

func TestDiagnostics_Summary(t *testing.T) {
	var d Diagnostics
	assert.Equal(t, "no diagnostics", d.Summary())

	d.Errorf(CodeEmptyID, OnField("A", "id"), "id is present but empty")
	d.Warnf(CodeDuplicateID, OnField("A", "id"), "dup")
	d.Warnf(CodeDuplicateID, OnField("B", "id"), "dup")

	assert.Equal(t, "1 error, 2 warnings", d.Summary())
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(9).String())
}

func TestSubject_String(t *testing.T) {
	tests := []struct {
		subject Subject
		want    string
	}{
		{Subject{}, ""},
		{OnModule("AppModule"), "AppModule"},
		{OnField("AppModule", "imports"), "AppModule.imports"},
		{OnEntry(3, "name"), "#3.name"},
		{Subject{Field: "version"}, "version"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.subject.String())
	}
}

func TestDiagnostic_String(t *testing.T) {
	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())
	assert.Equal(t, "[c] m", Diagnostic{Code: "c", Message: "m"}.String())
	assert.Equal(t, "Mod: m", Diagnostic{Subject: OnModule("Mod"), Message: "m"}.String())
}
