package models

// ErrorKind classifies a single validation failure
type ErrorKind string

const (
	MissingFile      ErrorKind = "missing_file"
	FileTooLarge     ErrorKind = "file_too_large"
	EmptyField       ErrorKind = "empty_field"
	InvalidFormat    ErrorKind = "invalid_format"
	DomainNotAllowed ErrorKind = "domain_not_allowed"
	TooShort         ErrorKind = "too_short"
	TooFewEntries    ErrorKind = "too_few_entries"
	OutOfRange       ErrorKind = "out_of_range"
)

// FieldError carries the failure kind and a human-readable message for
// one field
type FieldError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// FieldErrors maps field paths (name, email, techs[0].knowledge, ...)
// to their validation failure. A nil or empty map means the record is
// valid.
type FieldErrors map[string]FieldError
