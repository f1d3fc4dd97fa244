package ui

import (
	"context"
	"strings"

	"fitness-app/entities"

	tea "github.com/charmbracelet/bubbletea"
)

// generateScreen asks the backend for an AI-built recipe from free-text
// directions.
type generateScreen struct {
	shared *appContext
	userID int

	prompt string
	recipe *entities.Recipe
	state  fetchState

	ctx    context.Context
	cancel context.CancelFunc
}

type generateResultMsg struct {
	gen int
	res *entities.GenerateRecipeResponse
	err error
}

func newGenerateScreen(shared *appContext, userID int) *generateScreen {
	ctx, cancel := context.WithCancel(context.Background())
	return &generateScreen{shared: shared, userID: userID, ctx: ctx, cancel: cancel}
}

func (s *generateScreen) Init() tea.Cmd { return nil }

func (s *generateScreen) Teardown() { s.cancel() }

func (s *generateScreen) submit() tea.Cmd {
	gen := s.state.Load()
	req := entities.RecipeGenerationRequest{UserID: s.userID, UserDirections: s.prompt}
	return func() tea.Msg {
		res, err := s.shared.client.GenerateRecipe(s.ctx, req)
		return generateResultMsg{gen: gen, res: res, err: err}
	}
}

func (s *generateScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if s.state.Loading() {
			return s, nil
		}
		switch msg.String() {
		case "esc":
			return s, goBack()

		case "enter":
			return s, s.submit()

		case "backspace":
			if len(s.prompt) > 0 {
				s.prompt = s.prompt[:len(s.prompt)-1]
			}

		default:
			if len(msg.String()) == 1 {
				s.prompt += msg.String()
			}
		}

	case generateResultMsg:
		if msg.err != nil {
			s.state.Fail(msg.gen, errorMessage(msg.err))
			return s, nil
		}
		if msg.res.Success && msg.res.Recipe != nil {
			if s.state.Succeed(msg.gen) {
				s.recipe = msg.res.Recipe
			}
			return s, nil
		}
		s.state.Fail(msg.gen, msg.res.Message)
	}

	return s, nil
}

func (s *generateScreen) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Recipe Generator") + "\n\n")
	b.WriteString(promptStyle.Render("Tell us what you want to eat:") + "\n")
	b.WriteString(inputStyle.Render("> "+s.prompt) + "\n\n")

	if s.state.Loading() {
		b.WriteString("Generating...\n")
	} else {
		b.WriteString(dimStyle.Render("Enter to generate, Esc to go back") + "\n")
	}

	if s.state.Failed() {
		b.WriteString("\n" + errorStyle.Render("✗ "+s.state.Err()) + "\n")
	}

	if s.recipe != nil {
		b.WriteString("\n" + cardStyle.Render(renderRecipe(*s.recipe)) + "\n")
	}

	return b.String()
}
