package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"transformer-generator/internal/common"
)

// Diagnostic codes.
const (
	CodeShape         = "SHAPE"
	CodeVariantShape  = "VARIANT_SHAPE"
	CodeNameCollision = "NAME_COLLISION"
	CodeUnknownUnion  = "UNKNOWN_UNION"
	CodeLoad          = "LOAD"
	CodeNoUnions      = "NO_UNIONS"
	CodeFiltered      = "FILTERED"
)

// Coded is implemented by errors that know their diagnostic code and subject.
type Coded interface {
	error
	DiagnosticCode() string
	Subject() (union, variant string)
}

// Diagnostics holds all diagnostic information from extraction.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Union names the tagged union this relates to (if any).
	Union string
	// Variant names the variant this relates to (if any).
	Variant string
	// Pos is the source position of the declaration (if known).
	Pos string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
	// Err is the underlying error, if the diagnostic was built from one.
	Err error
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, union, variant string, suggestions ...string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity:    DiagnosticError,
		Code:        code,
		Message:     message,
		Union:       union,
		Variant:     variant,
		Suggestions: suggestions,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, union, variant string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: DiagnosticWarning,
		Code:     code,
		Message:  message,
		Union:    union,
		Variant:  variant,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, union, variant string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: DiagnosticInfo,
		Code:     code,
		Message:  message,
		Union:    union,
		Variant:  variant,
	})
}

// Report records err as an error diagnostic at pos. Errors implementing
// Coded contribute their code and subject; anything else is filed under
// CodeLoad.
func (d *Diagnostics) Report(err error, pos string) {
	if err == nil {
		return
	}

	diag := Diagnostic{
		Severity: DiagnosticError,
		Code:     CodeLoad,
		Message:  err.Error(),
		Pos:      pos,
		Err:      err,
	}

	var coded Coded
	if errors.As(err, &coded) {
		diag.Code = coded.DiagnosticCode()
		diag.Union, diag.Variant = coded.Subject()
	}

	d.Errors = append(d.Errors, diag)
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
// Underlying errors are joined rather than flattened, so callers can still
// match them with errors.Is and errors.As.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	errs := make([]error, 0, len(d.Errors))
	for _, e := range d.Errors {
		errs = append(errs, e)
	}

	return errors.Join(errs...)
}

// All returns errors, warnings and infos in that order.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// Error implements error so a Diagnostic can travel inside joined errors.
func (d Diagnostic) Error() string {
	return d.String()
}

// Unwrap returns the underlying error.
func (d Diagnostic) Unwrap() error {
	return d.Err
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Pos != "" {
		prefix = append(prefix, d.Pos+":")
	}

	switch {
	case d.Union != "" && d.Variant != "":
		prefix = append(prefix, "["+d.Union+"."+d.Variant+"]")
	case d.Union != "":
		prefix = append(prefix, "["+d.Union+"]")
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + " " + msg
	}

	return msg
}
