package usecases

import (
	"testing"

	"fitness-app/entities"
	"fitness-app/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecipeUseCase(t *testing.T) (*RecipeUseCase, repositories.UserRepository) {
	t.Helper()
	database := newTestDB(t)
	userRepo := repositories.NewUserDbRepository(database)
	return NewRecipeUseCase(repositories.NewRecipeDbRepository(database), userRepo), userRepo
}

func TestGenerateRecipeUnknownUser(t *testing.T) {
	uc, _ := newRecipeUseCase(t)

	_, err := uc.GenerateRecipe(entities.RecipeGenerationRequest{
		UserID:         42,
		UserDirections: "something vegan",
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGenerateRecipeIsDeterministic(t *testing.T) {
	uc, userRepo := newRecipeUseCase(t)

	user := &entities.User{Name: "Jordan", Email: "jordan@example.com"}
	require.NoError(t, userRepo.Create(user))

	req := entities.RecipeGenerationRequest{
		UserID:         user.ID,
		UserDirections: "quick vegan dinner with chickpeas",
	}
	first, err := uc.GenerateRecipe(req)
	require.NoError(t, err)
	second, err := uc.GenerateRecipe(req)
	require.NoError(t, err)

	assert.Equal(t, first.RecipeName, second.RecipeName)
	assert.Equal(t, *first.Calories, *second.Calories)
	assert.Equal(t, *first.Protein, *second.Protein)

	assert.Equal(t, "Vegan", *first.RecipeType)
	assert.Equal(t, "Generated", *first.RecipeSource)
	assert.Equal(t, user.ID, *first.SourceUserID)
	assert.Equal(t, "Quick Vegan Dinner Chickpea Skillet", first.RecipeName)
	assert.Equal(t, "['generated', 'vegan']", *first.ExtraCategories)
	assert.Contains(t, *first.Ingredients, "chickpeas")
	assert.NotZero(t, first.RecipeID)
}

func TestGenerateRecipeRequiresDirections(t *testing.T) {
	uc, _ := newRecipeUseCase(t)

	_, err := uc.GenerateRecipe(entities.RecipeGenerationRequest{UserID: 1, UserDirections: "   "})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}

func TestDetectRecipeType(t *testing.T) {
	cases := map[string]string{
		"a vegan bowl":          "Vegan",
		"something VEGETARIAN":  "Vegetarian",
		"keto friendly please":  "Keto",
		"low carb and filling":  "Keto",
		"paleo breakfast":       "Paleo",
		"just something hearty": "Omnivore",
	}
	for directions, want := range cases {
		assert.Equal(t, want, detectRecipeType(directions), directions)
	}
}

func TestListRecipesFilters(t *testing.T) {
	uc, userRepo := newRecipeUseCase(t)

	user := &entities.User{Name: "Jordan", Email: "jordan@example.com"}
	require.NoError(t, userRepo.Create(user))

	for _, directions := range []string{"vegan lunch", "keto dinner", "another vegan idea"} {
		_, err := uc.GenerateRecipe(entities.RecipeGenerationRequest{UserID: user.ID, UserDirections: directions})
		require.NoError(t, err)
	}

	vegan, err := uc.ListRecipes("Vegan", "")
	require.NoError(t, err)
	assert.Len(t, vegan, 2)

	all, err := uc.ListRecipes("", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// Results come back ordered by name.
	for i := 1; i < len(all); i++ {
		assert.LessOrEqual(t, all[i-1].RecipeName, all[i].RecipeName)
	}
}
