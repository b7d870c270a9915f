package library

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrParse, ErrNotFound), "ErrParse should not match ErrNotFound")
	assert.False(t, errors.Is(ErrParse, ErrIntegrity), "ErrParse should not match ErrIntegrity")
	assert.False(t, errors.Is(ErrNotFound, ErrIntegrity), "ErrNotFound should not match ErrIntegrity")
}

func TestErrors_CanBeWrapped(t *testing.T) {
	wrapped := fmt.Errorf("%w: playlist %q references track 999", ErrIntegrity, "Broken")
	assert.True(t, errors.Is(wrapped, ErrIntegrity), "wrapped error should match ErrIntegrity")
}
