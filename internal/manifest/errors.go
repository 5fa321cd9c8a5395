package manifest

import (
	"errors"
	"fmt"
	"strings"

	"k8s.io/apimachinery/pkg/util/validation"
)

// ValidationError reports input that cannot be turned into a manifest.
type ValidationError struct {
	Kind   string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s: %s", e.Kind, e.Field, e.Reason)
}

// IsValidationError reports whether err (or anything it wraps) is a *ValidationError.
func IsValidationError(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func invalid(kind, field, reason string) error {
	return &ValidationError{Kind: kind, Field: field, Reason: reason}
}

func validateName(kind, field, name string) error {
	if name == "" {
		return invalid(kind, field, "must not be empty")
	}
	if errs := validation.IsDNS1123Subdomain(name); len(errs) > 0 {
		return invalid(kind, field, strings.Join(errs, "; "))
	}
	return nil
}

// validateLabelName checks names that must be a single DNS label:
// namespaces, container names and job names (which also name the container).
func validateLabelName(kind, field, name string) error {
	if name == "" {
		return invalid(kind, field, "must not be empty")
	}
	if errs := validation.IsDNS1123Label(name); len(errs) > 0 {
		return invalid(kind, field, strings.Join(errs, "; "))
	}
	return nil
}

// validateServiceName checks service names, which must start with a letter.
func validateServiceName(kind, field, name string) error {
	if name == "" {
		return invalid(kind, field, "must not be empty")
	}
	if errs := validation.IsDNS1035Label(name); len(errs) > 0 {
		return invalid(kind, field, strings.Join(errs, "; "))
	}
	return nil
}

func validatePort(kind, field string, port int32) error {
	if errs := validation.IsValidPortNum(int(port)); len(errs) > 0 {
		return invalid(kind, field, strings.Join(errs, "; "))
	}
	return nil
}
