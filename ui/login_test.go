package ui

import (
	"testing"

	"fitness-app/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginFailureShowsBackendMessageAndStays(t *testing.T) {
	t.Parallel()

	s := newLoginScreen(testAppContext())
	defer s.Teardown()
	gen := s.state.Load()

	updated, cmd := s.Update(loginResultMsg{gen: gen, res: &entities.LoginResponse{
		Success: false,
		Message: "invalid credentials",
	}})

	assert.Nil(t, cmd, "failed login must not navigate")
	ls := updated.(*loginScreen)
	require.True(t, ls.state.Failed())
	assert.Equal(t, "invalid credentials", ls.state.Err())
	assert.Contains(t, ls.View(), "invalid credentials")
}

func TestLoginSuccessNavigates(t *testing.T) {
	t.Parallel()

	s := newLoginScreen(testAppContext())
	defer s.Teardown()
	gen := s.state.Load()

	_, cmd := s.Update(loginResultMsg{gen: gen, res: &entities.LoginResponse{
		Success: true,
		Message: "Login successful",
		User:    &entities.UserSummary{ID: 12, Name: "Ana", Email: "ana@example.com"},
	}})

	require.NotNil(t, cmd)
	msg := cmd()
	nav, ok := msg.(navigateMsg)
	require.True(t, ok)
	assert.True(t, nav.replace, "login leaves no way back")
	overview, ok := nav.screen.(*overviewScreen)
	require.True(t, ok)
	assert.Equal(t, 12, overview.userID)
}

func TestLoginIgnoresInputWhileLoading(t *testing.T) {
	t.Parallel()

	s := newLoginScreen(testAppContext())
	defer s.Teardown()
	s.email = "ana@example.com"
	s.state.Load()

	before := s.email
	updated, cmd := s.Update(keyMsg("x"))
	assert.Nil(t, cmd)
	assert.Equal(t, before, updated.(*loginScreen).email)
}
