package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_Distinct(t *testing.T) {
	all := []error{ErrNotFound, ErrInvalidInput, ErrUnsupportedType, ErrWatcherClosed}
	for i, a := range all {
		for j, b := range all {
			if i != j {
				assert.NotErrorIs(t, a, b)
			}
		}
	}
}

func TestErrors_Wrapped(t *testing.T) {
	err := fmt.Errorf("getting document abc: %w", ErrNotFound)

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "getting document abc: not found", err.Error())
}
