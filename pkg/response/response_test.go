package response

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMatchingWithIs(t *testing.T) {
	base := NewError(404, "thing not found")

	wrapped := fmt.Errorf("while handling request: %w", base)
	assert.True(t, errors.Is(wrapped, base))

	var respErr *Error
	assert.True(t, errors.As(wrapped, &respErr))
	assert.Equal(t, 404, respErr.Code)
}

func TestNewErrorfFormatsMessage(t *testing.T) {
	err := NewErrorf(400, "file %s is empty", "a.png")

	assert.Equal(t, "file a.png is empty", err.Error())

	var respErr *Error
	assert.True(t, errors.As(err, &respErr))
	assert.Equal(t, 400, respErr.Code)
}

func TestErrorMatchingByCodeAndMessage(t *testing.T) {
	a := NewError(404, "thing not found")

	assert.True(t, errors.Is(a, NewError(404, "thing not found")))
	assert.False(t, errors.Is(a, NewError(404, "other thing not found")))
	assert.False(t, errors.Is(a, NewError(409, "thing not found")))
	assert.False(t, errors.Is(a, errors.New("thing not found")))
}
