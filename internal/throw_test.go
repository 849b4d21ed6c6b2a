package internal

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestHandleBuildPanicRecover(t *testing.T) {
	testFn := func(shouldThrow bool, shouldPanic bool, shouldFault bool) (err error) {
		defer func() {
			recoveredErr := HandleBuildPanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if shouldThrow {
			fatalf("kaboom!")
		}

		if shouldPanic {
			panic("true panic")
		}

		if shouldFault {
			var indices []int
			_ = indices[len(indices)+3]
		}

		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := testFn(true, false, false)
		assert.EqualError(t, err, "kaboom!")
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(false, true, false)
		})
	})

	t.Run("with plain error panic", func(t *testing.T) {
		assert.PanicsWithError(t, "not from a build", func() {
			defer func() {
				HandleBuildPanicRecover(recover())
			}()
			panic(errors.New("not from a build"))
		})
	})

	t.Run("with runtime error", func(t *testing.T) {
		assert.PanicsWithError(t, "runtime error: index out of range [3] with length 0", func() {
			testFn(false, false, true)
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(false, false, false)
		assert.NoError(t, err)
	})
}
