package ui

import (
	"context"
	"strings"

	"fitness-app/entities"

	tea "github.com/charmbracelet/bubbletea"
)

type loginScreen struct {
	shared   *appContext
	email    string
	password string
	focus    int // 0 email, 1 password
	state    fetchState

	ctx    context.Context
	cancel context.CancelFunc
}

type loginResultMsg struct {
	gen int
	res *entities.LoginResponse
	err error
}

func newLoginScreen(shared *appContext) *loginScreen {
	ctx, cancel := context.WithCancel(context.Background())
	return &loginScreen{shared: shared, ctx: ctx, cancel: cancel}
}

func (s *loginScreen) Init() tea.Cmd { return nil }

func (s *loginScreen) Teardown() { s.cancel() }

func (s *loginScreen) submit() tea.Cmd {
	gen := s.state.Load()
	email, password := s.email, s.password
	return func() tea.Msg {
		// Credentials are not validated locally; the backend decides.
		res, err := s.shared.client.Login(s.ctx, email, password)
		return loginResultMsg{gen: gen, res: res, err: err}
	}
}

func (s *loginScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if s.state.Loading() {
			return s, nil
		}
		switch msg.String() {
		case "tab", "shift+tab":
			s.focus = 1 - s.focus

		case "enter":
			if s.focus == 0 {
				s.focus = 1
				return s, nil
			}
			return s, s.submit()

		case "backspace":
			if s.focus == 0 && len(s.email) > 0 {
				s.email = s.email[:len(s.email)-1]
			}
			if s.focus == 1 && len(s.password) > 0 {
				s.password = s.password[:len(s.password)-1]
			}

		default:
			if len(msg.String()) == 1 {
				if s.focus == 0 {
					s.email += msg.String()
				} else {
					s.password += msg.String()
				}
			}
		}

	case loginResultMsg:
		if msg.err != nil {
			s.state.Fail(msg.gen, errorMessage(msg.err))
			return s, nil
		}
		if msg.res.Success && msg.res.User != nil {
			if !s.state.Succeed(msg.gen) {
				return s, nil
			}
			s.shared.logger.Info().Int("user_id", msg.res.User.ID).Msg("login succeeded")
			return s, navigateReplace(newOverviewScreen(s.shared, msg.res.User.ID))
		}
		// Envelope failure: the backend message is the only signal.
		s.state.Fail(msg.gen, msg.res.Message)
	}

	return s, nil
}

func (s *loginScreen) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Welcome") + "\n\n")

	b.WriteString(fieldLabel("Email", s.focus == 0))
	b.WriteString(inputStyle.Render("> "+s.email) + "\n")
	b.WriteString(fieldLabel("Password", s.focus == 1))
	b.WriteString(inputStyle.Render("> "+strings.Repeat("•", len(s.password))) + "\n")

	if s.state.Loading() {
		b.WriteString("\nLogging in...\n")
	} else {
		b.WriteString(dimStyle.Render("\nTab to switch fields, Enter to log in, Ctrl+C to quit") + "\n")
	}

	if s.state.Failed() {
		b.WriteString("\n" + errorStyle.Render("✗ "+s.state.Err()) + "\n")
	}

	return b.String()
}

func fieldLabel(name string, focused bool) string {
	if focused {
		return promptStyle.Render(name+":") + "\n"
	}
	return name + ":\n"
}
