package cli

import "fmt"

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric          = "E001" // Generic/unknown error
	ErrCodeStoreUnavailable = "E002" // Database could not be opened
	ErrCodeCriteriaInvalid  = "E003" // Unknown panel, filter mode or format
	ErrCodeEventNotFound    = "E004" // No event with the given id
	ErrCodeNotFound         = "E005" // Path not found
	ErrCodeImportSchema     = "E006" // Import document failed schema validation
	ErrCodeWriteFailed      = "E007" // File or database write error
	ErrCodeValidation       = "E201" // Required event fields missing
)

// fail reports an error through the formatter and returns the matching
// ExitError for the command to return.
func fail(f *OutputFormatter, exitCode int, code, message string, details interface{}) error {
	_ = f.Error(code, message, details)
	err := NewExitError(exitCode, fmt.Sprintf("%s: %s", code, message))
	err.Reported = true
	return err
}
