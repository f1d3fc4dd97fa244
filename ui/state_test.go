package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetchStateTransitions(t *testing.T) {
	t.Parallel()

	var s fetchState
	assert.False(t, s.Loading())

	gen := s.Load()
	assert.True(t, s.Loading())

	assert.True(t, s.Succeed(gen))
	assert.False(t, s.Loading())
	assert.False(t, s.Failed())

	gen = s.Load()
	assert.True(t, s.Fail(gen, "boom"))
	assert.True(t, s.Failed())
	assert.Equal(t, "boom", s.Err())

	s.Reset()
	assert.False(t, s.Failed())
	assert.Empty(t, s.Err())
}

func TestFetchStateDiscardsStaleCompletions(t *testing.T) {
	t.Parallel()

	var s fetchState
	first := s.Load()
	second := s.Load()

	// The superseded request finishes late; its result must not apply.
	assert.False(t, s.Succeed(first))
	assert.True(t, s.Loading())
	assert.False(t, s.Fail(first, "stale failure"))
	assert.True(t, s.Loading())

	assert.True(t, s.Succeed(second))
	assert.False(t, s.Loading())
}
