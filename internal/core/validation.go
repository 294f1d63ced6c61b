package core

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ParseSymbol reads a reserved symbol given as a one-byte string.
func ParseSymbol(s string) (byte, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("%w: %q must be exactly one byte", ErrInvalidSymbol, s)
	}

	return s[0], nil
}

// ValidateResultName accepts plain result file names relative to a run folder:
// "<run-id>/<file>.txt".
func ValidateResultName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidResult)
	}

	if filepath.IsAbs(name) || strings.Contains(name, "\\") {
		return fmt.Errorf("%w: %q", ErrInvalidResult, name)
	}

	for _, segment := range strings.Split(name, "/") {
		if segment == ".." || segment == "." || segment == "" {
			return fmt.Errorf("%w: %q contains %q segment", ErrInvalidResult, name, segment)
		}
	}

	if filepath.Ext(name) != ResultExtension {
		return fmt.Errorf("%w: %q is not a %s file", ErrInvalidResult, name, ResultExtension)
	}

	return nil
}
