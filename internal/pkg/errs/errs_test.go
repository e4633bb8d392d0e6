//go:build unit

package errs_test

import (
	"errors"
	"io"
	"testing"

	"stable-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "ignored"))

	err := errs.Wrap(io.EOF, "read stable")
	require.Error(t, err)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "read stable: EOF", err.Error())
}

func TestMark(t *testing.T) {
	sentinel := errors.New("sentinel")

	assert.Same(t, sentinel, errs.Mark(nil, sentinel))

	err := errs.Mark(io.ErrUnexpectedEOF, sentinel)
	assert.ErrorIs(t, err, sentinel)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Equal(t, io.ErrUnexpectedEOF.Error(), err.Error())
}

func TestRecovered(t *testing.T) {
	t.Run("error value keeps identity", func(t *testing.T) {
		err := errs.Recovered(io.EOF)
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("arbitrary value becomes a panic error", func(t *testing.T) {
		err := errs.Recovered(42)
		assert.EqualError(t, err, "panic: 42")
	})
}

func TestStackLines(t *testing.T) {
	assert.Nil(t, errs.StackLines(nil, 5))

	err := errs.Recovered("boom")
	all := errs.StackLines(err, 0)
	require.Greater(t, len(all), 2)
	assert.Equal(t, "panic: boom", all[0])

	assert.Len(t, errs.StackLines(err, 2), 2)
}
