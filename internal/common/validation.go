package common

import (
	"fmt"
	"strings"
)

// ValidateNotEmpty validates that a string is not empty
func ValidateNotEmpty(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("value cannot be empty")
	}
	return nil
}

// ValidateFileName validates a bare file name that must land directly
// inside its target directory
func ValidateFileName(name string) error {
	if err := ValidateNotEmpty(name); err != nil {
		return fmt.Errorf("file name cannot be empty")
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("file name cannot contain path separators: %s", name)
	}
	if name == "." || name == ".." {
		return fmt.Errorf("file name cannot be '.' or '..': %s", name)
	}
	if strings.ContainsRune(name, 0) {
		return fmt.Errorf("file name contains NUL byte: %q", name)
	}
	return nil
}
