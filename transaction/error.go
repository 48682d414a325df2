package transaction

import (
	"fmt"
	"strings"
)

// MissingColumnError is returned when the input header lacks required columns
type MissingColumnError struct {
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("Missing required columns: %s", strings.Join(e.Columns, ", "))
}

// RowError is returned when a record's cells can't be parsed
type RowError struct {
	Line  int
	cause error
}

func newRowError(line int, cause error) error {
	if cause == nil {
		return nil
	}
	return &RowError{Line: line, cause: cause}
}

func (e *RowError) Error() string {
	return fmt.Sprintf("Invalid record on line %d: %s", e.Line, e.cause)
}

// Cause implements the github.com/pkg/errors causer interface
func (e *RowError) Cause() error {
	return e.cause
}

type causer interface {
	Cause() error
}

// IsFormatError returns true if err, or any error it wraps, was caused by a malformed input file
func IsFormatError(err error) bool {
	for err != nil {
		switch err.(type) {
		case *MissingColumnError, *RowError:
			return true
		}
		cause, ok := err.(causer)
		if !ok {
			return false
		}
		err = cause.Cause()
	}
	return false
}
