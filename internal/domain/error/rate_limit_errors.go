// Package error defines domain-specific errors for the Household Finance application.
package error

import "errors"

// ErrRateLimited is returned when a client exceeds the write rate limit.
var ErrRateLimited = errors.New("too many requests")

// RateLimitErrorCode defines error codes for rate limiting.
type RateLimitErrorCode string

const (
	ErrCodeRateLimited RateLimitErrorCode = "RTL-010001"
)
