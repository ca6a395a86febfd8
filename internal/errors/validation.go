package errors

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// metaValidationErrors is the meta key holding field problems on the
// InvalidArgument error built from a ValidationError
const metaValidationErrors = "validation_errors"

// ValidationError collects per-field problems and converts to INVALID_ARGUMENT.
type ValidationError struct {
	Fields map[string][]string `json:"fields"`
}

// NewValidationError creates an empty validation error
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string][]string{}}
}

// Error lists fields alphabetically so messages are stable across runs
func (v *ValidationError) Error() string {
	if !v.HasErrors() {
		return "validation failed"
	}

	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, field := range slices.Sorted(maps.Keys(v.Fields)) {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s: %s", field, strings.Join(v.Fields[field], ", "))
	}
	return b.String()
}

// AddFieldError records a problem with field
func (v *ValidationError) AddFieldError(field, message string) {
	v.Fields[field] = append(v.Fields[field], message)
}

// AddFieldErrorf records a formatted problem with field
func (v *ValidationError) AddFieldErrorf(field, format string, args ...any) {
	v.AddFieldError(field, fmt.Sprintf(format, args...))
}

// HasErrors reports whether any field has a problem
func (v *ValidationError) HasErrors() bool {
	return len(v.Fields) > 0
}

// ToError converts to an InvalidArgument error carrying the fields as meta,
// or nil when there is nothing to report
func (v *ValidationError) ToError() *Error {
	if !v.HasErrors() {
		return nil
	}
	return InvalidArgument(v.Error()).WithMeta(metaValidationErrors, v.Fields)
}

// ValidationBuilder accumulates field problems for a config or input and
// builds them into a single error.
type ValidationBuilder struct {
	err *ValidationError
}

// NewValidationBuilder creates a new validation builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{err: NewValidationError()}
}

// Field adds a validation error for a field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.err.AddFieldError(field, message)
	return vb
}

// Fieldf adds a formatted validation error for a field
func (vb *ValidationBuilder) Fieldf(field, format string, args ...any) *ValidationBuilder {
	vb.err.AddFieldErrorf(field, format, args...)
	return vb
}

// RequiredField marks a missing field
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// InvalidField marks a field with an unusable value
func (vb *ValidationBuilder) InvalidField(field, reason string) *ValidationBuilder {
	return vb.Fieldf(field, "is invalid: %s", reason)
}

// Build returns nil when nothing was recorded
func (vb *ValidationBuilder) Build() error {
	if err := vb.err.ToError(); err != nil {
		return err
	}
	return nil
}

// ValidateRequired flags a blank string
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

// ValidateRange flags a value outside [minValue, maxValue]
func ValidateRange(field string, value, minValue, maxValue int, vb *ValidationBuilder) {
	if value < minValue || value > maxValue {
		vb.Fieldf(field, "must be between %d and %d", minValue, maxValue)
	}
}

// ValidateMin flags a value below minValue
func ValidateMin[T cmp.Ordered](field string, value, minValue T, vb *ValidationBuilder) {
	if value < minValue {
		vb.Fieldf(field, "must be at least %v", minValue)
	}
}

// ValidateEnum flags a value that is not one of allowed. T is usually a
// named string type such as a rest kind or storage backend.
func ValidateEnum[T ~string](field string, value T, allowed []T, vb *ValidationBuilder) {
	if slices.Contains(allowed, value) {
		return
	}
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	vb.Fieldf(field, "must be one of: %s", strings.Join(names, ", "))
}
