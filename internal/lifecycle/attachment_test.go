package lifecycle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanAttach(t *testing.T) {
	assert.True(t, errors.Is(CanAttach(newOpenTask(), 0, 10), ErrInvalidState), "open task")

	task := inProgressTask(t)
	assert.NoError(t, CanAttach(task, 9, 10))
	assert.NoError(t, CanAttach(task, 100, 0), "no limit")

	var vErr *ValidationError
	require.True(t, errors.As(CanAttach(task, 10, 10), &vErr))
	assert.Contains(t, vErr.Fields, "file")

	require.NoError(t, CanDetach(task))
	require.NoError(t, Deliver(task, "done", now))
	assert.True(t, errors.Is(CanAttach(task, 0, 10), ErrInvalidState), "delivered")
	assert.True(t, errors.Is(CanDetach(task), ErrInvalidState))
}
