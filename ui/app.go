package ui

import (
	"errors"

	"fitness-app/api"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// screen is one displayed view. Each screen owns its fetch triggering,
// in-flight state and result/error state; Teardown cancels any outstanding
// work when the screen leaves the stack.
type screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (screen, tea.Cmd)
	View() string
	Teardown()
}

// appContext is shared by all screens.
type appContext struct {
	client *api.Client
	logger zerolog.Logger
}

type navigateMsg struct {
	screen  screen
	replace bool
}

type backMsg struct{}

func navigate(s screen) tea.Cmd {
	return func() tea.Msg { return navigateMsg{screen: s} }
}

// navigateReplace clears the stack before entering the new screen, so there
// is no way back (used when leaving login).
func navigateReplace(s screen) tea.Cmd {
	return func() tea.Msg { return navigateMsg{screen: s, replace: true} }
}

func goBack() tea.Cmd {
	return func() tea.Msg { return backMsg{} }
}

// App is the root model: a linear stack of screens. The top of the stack
// receives every message that is not a navigation event.
type App struct {
	shared   *appContext
	stack    []screen
	quitting bool
}

func NewApp(client *api.Client, logger zerolog.Logger) *App {
	shared := &appContext{client: client, logger: logger}
	return &App{
		shared: shared,
		stack:  []screen{newLoginScreen(shared)},
	}
}

func (a *App) Init() tea.Cmd {
	return a.stack[0].Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			a.quitting = true
			for _, s := range a.stack {
				s.Teardown()
			}
			return a, tea.Quit
		}

	case navigateMsg:
		if msg.replace {
			for _, s := range a.stack {
				s.Teardown()
			}
			a.stack = []screen{msg.screen}
		} else {
			a.stack = append(a.stack, msg.screen)
		}
		return a, msg.screen.Init()

	case backMsg:
		if len(a.stack) > 1 {
			top := a.stack[len(a.stack)-1]
			top.Teardown()
			a.stack = a.stack[:len(a.stack)-1]
		}
		return a, nil
	}

	top := a.stack[len(a.stack)-1]
	updated, cmd := top.Update(msg)
	a.stack[len(a.stack)-1] = updated
	return a, cmd
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}
	return a.stack[len(a.stack)-1].View()
}

// errorMessage converts a client error into the user-facing string shown on
// screen. Backend-provided detail wins; everything else falls back to the
// error text.
func errorMessage(err error) string {
	var statusErr *api.StatusError
	if errors.As(err, &statusErr) && statusErr.Detail != "" {
		return statusErr.Detail
	}
	var decodeErr *api.DecodeError
	if errors.As(err, &decodeErr) {
		return "could not read the backend response"
	}
	return err.Error()
}
