package transform

import (
	"fmt"
	"strings"
)

const CodeValidationError = "VALIDATION_ERROR"

// ValidationError reports every missing required field at once, not just the
// first one encountered.
type ValidationError struct {
	Code    string   `json:"code"`
	Missing []string `json:"missing"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}

func newValidationError(missing []string) *ValidationError {
	return &ValidationError{Code: CodeValidationError, Missing: missing}
}
