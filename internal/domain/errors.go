package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrNoQuantity is returned when a line has no parseable numeric amount
	ErrNoQuantity = errors.New("no parseable quantity in ingredient line")

	// ErrUnsupportedConversion is returned when an ingredient cannot be
	// converted to the requested system (no density data, or a unitless line)
	ErrUnsupportedConversion = errors.New("conversion not supported for this ingredient")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
