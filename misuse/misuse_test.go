package misuse

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Is(t *testing.T) {
	tests := map[string]struct {
		class    Class
		sentinel error
	}{
		"Invalid argument": {InvalidArgument, ErrInvalidArgument},
		"Illegal state":    {IllegalState, ErrIllegalState},
		"Unsupported":      {Unsupported, ErrUnsupported},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			err := Errorf(tc.class, "bad %s", "thing")
			assert.ErrorIs(t, err, tc.sentinel)
			assert.ErrorIs(t, fmt.Errorf("wrapped: %w", err), tc.sentinel)
			assert.ErrorIs(t, err, &Error{Class: tc.class})
			assert.Equal(t, "bad thing", err.Error())
		})
	}
	assert.False(t, errors.Is(Errorf(InvalidArgument, "x"), ErrIllegalState))
}

func TestPanicf(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, ErrUnsupported)
		assert.Equal(t, "no 5", err.Error())
	}()
	Panicf(Unsupported, "no %d", 5)
}

func TestMust(t *testing.T) {
	assert.Equal(t, 3, Must(3, nil))
	assert.Panics(t, func() {
		Must(0, ErrIllegalState)
	})
}
