package truth_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/saylorsolutions/truth/config"
	"github.com/saylorsolutions/truth/misuse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fatalSignal stands in for runtime.Goexit, which a real *testing.T uses to stop the test on Fatal.
type fatalSignal struct{}

type fakeTB struct {
	helpers  int
	fatals   []string
	errors   []string
	cleanups []func()
}

func (f *fakeTB) Helper() {
	f.helpers++
}

func (f *fakeTB) Fatal(args ...any) {
	f.fatals = append(f.fatals, fmt.Sprint(args...))
	panic(fatalSignal{})
}

func (f *fakeTB) Error(args ...any) {
	f.errors = append(f.errors, fmt.Sprint(args...))
}

func (f *fakeTB) Cleanup(fn func()) {
	f.cleanups = append(f.cleanups, fn)
}

func (f *fakeTB) finish() {
	for i := len(f.cleanups) - 1; i >= 0; i-- {
		catchFatal(f.cleanups[i])
	}
	f.cleanups = nil
}

func catchFatal(fn func()) (fataled bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(fatalSignal); ok {
				fataled = true
				return
			}
			panic(r)
		}
	}()
	fn()
	return false
}

func assertMisuse(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "expected an error panic, got %v", r)
		var me *misuse.Error
		assert.True(t, errors.As(err, &me), "expected a *misuse.Error, got %T", err)
		assert.ErrorIs(t, err, target)
	}()
	fn()
}

func withoutStackTraces(t *testing.T) {
	t.Helper()
	prev := config.Current()
	t.Cleanup(func() {
		config.Set(prev)
	})
	next := prev
	next.StackTraces = false
	config.Set(next)
}
