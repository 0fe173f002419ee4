package diagnostic

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Subject locates a diagnostic inside a description file. The zero value
// refers to the file as a whole.
type Subject struct {
	// Module is the module or declared entry name. Empty for file-level
	// diagnostics and for entries that have no name yet.
	Module string
	// Index is the 1-based position of an unnamed entry, or 0.
	Index int
	// Field is the description field, e.g. "imports".
	Field string
}

// OnModule returns a subject covering a whole module.
func OnModule(module string) Subject {
	return Subject{Module: module}
}

// OnField returns a subject pointing at one field of a module.
func OnField(module, field string) Subject {
	return Subject{Module: module, Field: field}
}

// OnEntry returns a subject for an unnamed entry at a 1-based position.
func OnEntry(index int, field string) Subject {
	return Subject{Index: index, Field: field}
}

// String renders the subject as "Module.field", "#2.field" or "field".
func (s Subject) String() string {
	owner := s.Module
	if owner == "" && s.Index > 0 {
		owner = "#" + strconv.Itoa(s.Index)
	}

	switch {
	case owner != "" && s.Field != "":
		return owner + "." + s.Field
	case owner != "":
		return owner
	default:
		return s.Field
	}
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Subject  Subject
	Message  string
}

// String formats the diagnostic as "subject: [code] message".
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if where := d.Subject.String(); where != "" {
		return where + ": " + msg
	}

	return msg
}

// Error makes error-severity diagnostics usable with errors.As.
func (d Diagnostic) Error() string {
	return d.String()
}

// Diagnostics collects diagnostics in report order. The zero value is ready to use.
type Diagnostics struct {
	items []Diagnostic
}

func (d *Diagnostics) add(sev Severity, code Code, at Subject, format string, args []any) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	d.items = append(d.items, Diagnostic{Severity: sev, Code: code, Subject: at, Message: msg})
}

// Errorf records an error.
func (d *Diagnostics) Errorf(code Code, at Subject, format string, args ...any) {
	d.add(SeverityError, code, at, format, args)
}

// Warnf records a warning.
func (d *Diagnostics) Warnf(code Code, at Subject, format string, args ...any) {
	d.add(SeverityWarning, code, at, format, args)
}

// Infof records an informational note.
func (d *Diagnostics) Infof(code Code, at Subject, format string, args ...any) {
	d.add(SeverityInfo, code, at, format, args)
}

// Merge appends every diagnostic of other.
func (d *Diagnostics) Merge(other *Diagnostics) {
	if other == nil {
		return
	}

	d.items = append(d.items, other.items...)
}

// Len returns the number of diagnostics.
func (d *Diagnostics) Len() int {
	return len(d.items)
}

// Filter returns the diagnostics of one severity in report order.
func (d *Diagnostics) Filter(sev Severity) []Diagnostic {
	var out []Diagnostic

	for _, item := range d.items {
		if item.Severity == sev {
			out = append(out, item)
		}
	}

	return out
}

// Codes returns the codes of one severity in report order.
func (d *Diagnostics) Codes(sev Severity) []Code {
	var out []Code
	for _, item := range d.Filter(sev) {
		out = append(out, item.Code)
	}

	return out
}

// Has reports whether any diagnostic carries code.
func (d *Diagnostics) Has(code Code) bool {
	return slices.ContainsFunc(d.items, func(item Diagnostic) bool { return item.Code == code })
}

// ForModule returns the diagnostics attached to module, in report order.
func (d *Diagnostics) ForModule(module string) []Diagnostic {
	var out []Diagnostic

	for _, item := range d.items {
		if item.Subject.Module == module {
			out = append(out, item)
		}
	}

	return out
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return slices.ContainsFunc(d.items, func(item Diagnostic) bool { return item.Severity == SeverityError })
}

// All returns every diagnostic, most severe first. Report order is kept
// within a severity.
func (d *Diagnostics) All() []Diagnostic {
	all := slices.Clone(d.items)
	slices.SortStableFunc(all, func(a, b Diagnostic) int { return int(b.Severity) - int(a.Severity) })

	return all
}

// Summary counts diagnostics per severity, e.g. "1 error, 2 warnings".
// Severities with no diagnostics are left out.
func (d *Diagnostics) Summary() string {
	var parts []string

	for _, sev := range []Severity{SeverityError, SeverityWarning, SeverityInfo} {
		n := len(d.Filter(sev))
		if n == 0 {
			continue
		}

		noun := sev.String()
		if n > 1 {
			noun += "s"
		}

		parts = append(parts, fmt.Sprintf("%d %s", n, noun))
	}

	if len(parts) == 0 {
		return "no diagnostics"
	}

	return strings.Join(parts, ", ")
}

// Err joins the error diagnostics into one error, or returns nil when there
// are none. Each joined error is a Diagnostic.
func (d *Diagnostics) Err() error {
	var errs []error
	for _, item := range d.Filter(SeverityError) {
		errs = append(errs, item)
	}

	return errors.Join(errs...)
}
