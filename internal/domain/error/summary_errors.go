// Package error defines domain-specific errors for the Household Finance application.
package error

import "errors"

// Summary and report domain errors.
var (
	// ErrMonthWithoutYear is returned when a summary filter supplies a month
	// but no year.
	ErrMonthWithoutYear = errors.New("month filter requires a year")

	// ErrInvalidMonth is returned when the month filter is outside 1-12.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")

	// ErrInvalidGranularity is returned when an evolution granularity is unknown.
	ErrInvalidGranularity = errors.New("granularity must be daily, weekly or monthly")

	// ErrInvalidView is returned when an overview view mode is unknown.
	ErrInvalidView = errors.New("view must be month, year or all")

	// ErrInvalidYear is returned when the year filter is not a number.
	ErrInvalidYear = errors.New("year must be a number")

	// ErrInvalidTrendWindow is returned when the trends month window is
	// outside the supported range.
	ErrInvalidTrendWindow = errors.New("months must be between 1 and 120")
)

// SummaryErrorCode defines error codes for summary and report errors.
// Format: SUM-XXYYYY where XX is category and YYYY is specific error.
type SummaryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMonthWithoutYear   SummaryErrorCode = "SUM-010001"
	ErrCodeInvalidMonth       SummaryErrorCode = "SUM-010002"
	ErrCodeInvalidGranularity SummaryErrorCode = "SUM-010003"
	ErrCodeInvalidView        SummaryErrorCode = "SUM-010004"
	ErrCodeInvalidYear        SummaryErrorCode = "SUM-010005"
	ErrCodeInvalidTrendWindow SummaryErrorCode = "SUM-010006"
)

// SummaryError represents a summary error with code and message.
type SummaryError struct {
	Code    SummaryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SummaryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SummaryError) Unwrap() error {
	return e.Err
}

// NewSummaryError creates a new SummaryError with the given code and message.
func NewSummaryError(code SummaryErrorCode, message string, err error) *SummaryError {
	return &SummaryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
