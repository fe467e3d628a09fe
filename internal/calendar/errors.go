package calendar

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfDomain is returned for dates before 1 Tishrei of year 1.
	ErrOutOfDomain = errors.New("date precedes the Hebrew calendar epoch")

	// ErrInvalidField matches any *FieldError through errors.Is.
	ErrInvalidField = errors.New("invalid hebrew date field")
)

// FieldError reports a Hebrew date component that does not fit the
// resolved year, such as day 30 of a 29-day month or Adar II in a
// regular year.
type FieldError struct {
	Field  string // "month" or "day"
	Value  int
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s %d: %s", e.Field, e.Value, e.Reason)
}

// Is lets errors.Is(err, ErrInvalidField) match a FieldError.
func (e *FieldError) Is(target error) bool {
	return target == ErrInvalidField
}

// IsOutOfDomain reports whether err means the date precedes the epoch.
func IsOutOfDomain(err error) bool {
	return errors.Is(err, ErrOutOfDomain)
}

// IsInvalidField reports whether err is a rejected Hebrew date field.
func IsInvalidField(err error) bool {
	return errors.Is(err, ErrInvalidField)
}

func monthReason(m Month, year int) string {
	if m == AdarII {
		return fmt.Sprintf("Adar II exists only in leap years and %d is not one", year)
	}
	return "month must be between 1 (Nissan) and 13 (Adar II)"
}
