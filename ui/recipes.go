package ui

import (
	"context"
	"fmt"
	"strings"

	"fitness-app/entities"
	"fitness-app/utils"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	focusTypeFilter = iota
	focusCategoryFilter
	focusRecipeList
)

// recipesScreen browses the recipe catalog with optional type and category
// filters. Filters are resubmitted as query parameters on every fetch.
type recipesScreen struct {
	shared *appContext

	typeFilter     string
	categoryFilter string
	focus          int

	recipes []entities.Recipe
	cursor  int
	state   fetchState

	ctx    context.Context
	cancel context.CancelFunc
}

type recipesMsg struct {
	gen  int
	list []entities.Recipe
	err  error
}

func newRecipesScreen(shared *appContext) *recipesScreen {
	ctx, cancel := context.WithCancel(context.Background())
	return &recipesScreen{shared: shared, focus: focusRecipeList, ctx: ctx, cancel: cancel}
}

func (s *recipesScreen) Init() tea.Cmd {
	return s.fetch()
}

func (s *recipesScreen) Teardown() { s.cancel() }

func (s *recipesScreen) fetch() tea.Cmd {
	gen := s.state.Load()
	recipeType, categories := s.typeFilter, s.categoryFilter
	return func() tea.Msg {
		list, err := s.shared.client.GetRecipes(s.ctx, recipeType, categories)
		return recipesMsg{gen: gen, list: list, err: err}
	}
}

func (s *recipesScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if s.state.Loading() {
			return s, nil
		}
		if s.focus == focusRecipeList {
			return s.updateList(msg)
		}
		return s.updateFilters(msg)

	case recipesMsg:
		if msg.err != nil {
			s.state.Fail(msg.gen, "Failed to load recipes: "+errorMessage(msg.err))
			return s, nil
		}
		if s.state.Succeed(msg.gen) {
			s.recipes = msg.list
			s.cursor = 0
		}
	}

	return s, nil
}

func (s *recipesScreen) updateList(msg tea.KeyMsg) (screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return s, goBack()
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.recipes)-1 {
			s.cursor++
		}
	case "enter":
		if len(s.recipes) > 0 {
			// The selected recipe travels by value; nothing is re-encoded
			// into a route.
			return s, navigate(newRecipeDetailScreen(s.recipes[s.cursor]))
		}
	case "tab", "/":
		s.focus = focusTypeFilter
	case "c":
		// Clear resets filters and re-fetches unconditionally.
		s.typeFilter = ""
		s.categoryFilter = ""
		return s, s.fetch()
	case "r":
		return s, s.fetch()
	}
	return s, nil
}

func (s *recipesScreen) updateFilters(msg tea.KeyMsg) (screen, tea.Cmd) {
	field := &s.typeFilter
	if s.focus == focusCategoryFilter {
		field = &s.categoryFilter
	}

	switch msg.String() {
	case "esc":
		s.focus = focusRecipeList
	case "tab":
		if s.focus == focusTypeFilter {
			s.focus = focusCategoryFilter
		} else {
			s.focus = focusRecipeList
		}
	case "enter":
		s.focus = focusRecipeList
		return s, s.fetch()
	case "backspace":
		if len(*field) > 0 {
			*field = (*field)[:len(*field)-1]
		}
	default:
		if len(msg.String()) == 1 {
			*field += msg.String()
		}
	}
	return s, nil
}

func (s *recipesScreen) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Browse Recipes") + "\n\n")

	b.WriteString(filterLine("Type", s.typeFilter, s.focus == focusTypeFilter))
	b.WriteString(filterLine("Category tag", s.categoryFilter, s.focus == focusCategoryFilter))
	b.WriteString("\n")

	if s.state.Failed() {
		b.WriteString(errorStyle.Render("✗ "+s.state.Err()) + "\n\n")
	}

	if s.state.Loading() {
		b.WriteString("Loading...\n")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("%d recipes found\n\n", len(s.recipes)))

	if len(s.recipes) == 0 {
		b.WriteString(dimStyle.Render("No recipes found") + "\n")
	}
	for i, r := range s.recipes {
		b.WriteString(recipeListLine(r, s.focus == focusRecipeList && i == s.cursor))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("↑/↓ select  Enter: details  Tab: filters  c: clear filters  Esc: back") + "\n")

	return b.String()
}

func filterLine(label, value string, focused bool) string {
	line := label + ": " + inputStyle.Render(value)
	if focused {
		return promptStyle.Render("> ") + line + "\n"
	}
	return "  " + line + "\n"
}

func recipeListLine(r entities.Recipe, selected bool) string {
	name := r.RecipeName
	if r.RecipeType != nil && *r.RecipeType != "" {
		name += " (" + *r.RecipeType + ")"
	}
	line := name + " " + dimStyle.Render(macroSummary(r))
	if tags := categoriesLine(r); tags != "" {
		line += "\n" + dimStyle.Render(tags)
	}
	if selected {
		return selectedStyle.Render("> "+line) + "\n"
	}
	return normalStyle.Render(line) + "\n"
}

func macroSummary(r entities.Recipe) string {
	calories := 0
	if r.Calories != nil {
		calories = *r.Calories
	}
	protein, carbs, fat := 0.0, 0.0, 0.0
	if r.Protein != nil {
		protein = *r.Protein
	}
	if r.Carbs != nil {
		carbs = *r.Carbs
	}
	if r.Fat != nil {
		fat = *r.Fat
	}
	return fmt.Sprintf("%d cal, %gg protein, %gg carbs, %gg fat", calories, protein, carbs, fat)
}

// categoriesLine renders a recipe's category tags as a single comma line.
func categoriesLine(r entities.Recipe) string {
	if r.ExtraCategories == nil || strings.TrimSpace(*r.ExtraCategories) == "" {
		return ""
	}
	formatted := utils.FormatListString(*r.ExtraCategories)
	return strings.ReplaceAll(formatted, "\n", "  ")
}
