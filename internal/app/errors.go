package app

import "errors"

// RequestError is returned when a call to the analytics api fails.
// It covers network errors, non-success statuses and undecodable bodies alike.
type RequestError string

// Error implements error interface.
func (e RequestError) Error() string {
	return string(e)
}

// IsRequest tells that this error is 'request failed'.
// Returns always true.
func (RequestError) IsRequest() bool {
	return true
}

// InvalidRequestError is special error type returned when any request params are invalid.
type InvalidRequestError string

// Error implements error interface.
func (e InvalidRequestError) Error() string {
	return string(e)
}

// IsInvalidRequest tells that this error is 'invalid request'.
// Returns always true.
func (InvalidRequestError) IsInvalidRequest() bool {
	return true
}

// TooManyRequestsError is returned when the outbound rate limit can't be satisfied in time.
type TooManyRequestsError string

// Error implements error interface.
func (e TooManyRequestsError) Error() string {
	return string(e)
}

// IsTooManyRequests tells that this error is 'too many requests'.
func (TooManyRequestsError) IsTooManyRequests() bool {
	return true
}

// PartialResultError is returned when a result was produced, but some of its parts failed.
type PartialResultError string

// Error implements error interface.
func (e PartialResultError) Error() string {
	return string(e)
}

// IsPartialResult tells that this error is 'partial result'.
// Returns always true.
func (PartialResultError) IsPartialResult() bool {
	return true
}

// IsRequestError checks if given error is caused by a failed api request.
func IsRequestError(err error) bool {
	var re interface {
		IsRequest() bool
	}
	if errors.As(err, &re) {
		return re.IsRequest()
	}

	return false
}

// IsInvalidRequestError checks if given error is caused by invalid request.
func IsInvalidRequestError(err error) bool {
	var ire interface {
		IsInvalidRequest() bool
	}
	if errors.As(err, &ire) {
		return ire.IsInvalidRequest()
	}

	return false
}

// IsTooManyRequestsError checks if given error is caused by exceeded rate limit.
func IsTooManyRequestsError(err error) bool {
	var tmr interface {
		IsTooManyRequests() bool
	}
	if errors.As(err, &tmr) {
		return tmr.IsTooManyRequests()
	}

	return false
}

// IsPartialResultError checks if given error means that the result is incomplete.
func IsPartialResultError(err error) bool {
	var pre interface {
		IsPartialResult() bool
	}
	if errors.As(err, &pre) {
		return pre.IsPartialResult()
	}

	return false
}
