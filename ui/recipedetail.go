package ui

import (
	"fmt"
	"strings"

	"fitness-app/entities"
	"fitness-app/utils"

	tea "github.com/charmbracelet/bubbletea"
)

// recipeDetailScreen is a static render of one recipe. The value arrives
// in-process from the list screen, so there is nothing to fetch and nothing
// that can fail to decode here.
type recipeDetailScreen struct {
	recipe entities.Recipe
}

func newRecipeDetailScreen(recipe entities.Recipe) *recipeDetailScreen {
	return &recipeDetailScreen{recipe: recipe}
}

func (s *recipeDetailScreen) Init() tea.Cmd { return nil }

func (s *recipeDetailScreen) Teardown() {}

func (s *recipeDetailScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "enter", "b":
			return s, goBack()
		}
	}
	return s, nil
}

func (s *recipeDetailScreen) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Recipe Details") + "\n\n")
	b.WriteString(cardStyle.Render(renderRecipe(s.recipe)) + "\n\n")
	b.WriteString(dimStyle.Render("Esc to go back") + "\n")
	return b.String()
}

// renderRecipe formats a full recipe body, applying the pseudo-list
// formatter to ingredients, instructions and category tags.
func renderRecipe(r entities.Recipe) string {
	var b strings.Builder

	b.WriteString(headingStyle.Render(r.RecipeName) + "\n")

	if r.RecipeType != nil && *r.RecipeType != "" {
		b.WriteString("Type: " + *r.RecipeType + "\n")
	}
	if r.RecipeURL != nil && *r.RecipeURL != "" {
		b.WriteString("Source: " + *r.RecipeURL + "\n")
	}

	if r.Ingredients != nil && strings.TrimSpace(*r.Ingredients) != "" {
		b.WriteString("\n" + headingStyle.Render("Ingredients") + "\n")
		b.WriteString(utils.FormatListString(*r.Ingredients) + "\n")
	}
	if r.Instructions != nil && strings.TrimSpace(*r.Instructions) != "" {
		b.WriteString("\n" + headingStyle.Render("Instructions") + "\n")
		b.WriteString(utils.FormatListString(*r.Instructions) + "\n")
	}
	if r.ExtraCategories != nil && strings.TrimSpace(*r.ExtraCategories) != "" {
		b.WriteString("\n" + headingStyle.Render("Tags") + "\n")
		b.WriteString(utils.FormatListString(*r.ExtraCategories) + "\n")
	}

	b.WriteString("\n" + headingStyle.Render("Nutrition") + "\n")
	calories := 0
	if r.Calories != nil {
		calories = *r.Calories
	}
	b.WriteString(fmt.Sprintf("Calories: %d\n", calories))
	b.WriteString(fmt.Sprintf("Protein: %gg\n", floatOrZero(r.Protein)))
	b.WriteString(fmt.Sprintf("Carbs: %gg\n", floatOrZero(r.Carbs)))
	b.WriteString(fmt.Sprintf("Fat: %gg", floatOrZero(r.Fat)))

	return b.String()
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
