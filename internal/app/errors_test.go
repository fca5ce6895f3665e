package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInvalidRequestError(t *testing.T) {
	stdErr := errors.New("simple error")
	assert.False(t, IsInvalidRequestError(stdErr))

	irErr := InvalidRequestError("invalid request")
	assert.True(t, IsInvalidRequestError(irErr))

	wrapperErr := fmt.Errorf("wrapping message: %w", irErr)
	assert.True(t, IsInvalidRequestError(wrapperErr))
}

func TestIsRequestError(t *testing.T) {
	assert.False(t, IsRequestError(errors.New("simple error")))
	assert.False(t, IsRequestError(nil))
	assert.False(t, IsRequestError(InvalidRequestError("invalid")))

	rErr := RequestError("status 500")
	assert.True(t, IsRequestError(rErr))
	assert.True(t, IsRequestError(fmt.Errorf("fetching milestones: %w", rErr)))
}

func TestIsTooManyRequestsError(t *testing.T) {
	assert.False(t, IsTooManyRequestsError(errors.New("simple error")))

	tmrErr := TooManyRequestsError("limiter")
	assert.True(t, IsTooManyRequestsError(tmrErr))
	assert.True(t, IsTooManyRequestsError(fmt.Errorf("doing request: %w", tmrErr)))
	assert.False(t, IsRequestError(tmrErr))
}

func TestIsPartialResultError(t *testing.T) {
	assert.False(t, IsPartialResultError(errors.New("simple error")))
	assert.False(t, IsPartialResultError(RequestError("status 500")))

	prErr := PartialResultError("widgets not rendered: milestones")
	assert.True(t, IsPartialResultError(prErr))
	assert.True(t, IsPartialResultError(fmt.Errorf("rendering page: %w", prErr)))
}
