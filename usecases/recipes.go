package usecases

import (
	"errors"
	"fmt"
	"hash/fnv"
	"strings"

	"fitness-app/entities"
	"fitness-app/repositories"
)

// ErrUserNotFound distinguishes a missing user from other generation
// failures so the handler can answer 404.
var ErrUserNotFound = errors.New("user not found")

type RecipeUseCase struct {
	RecipeRepo repositories.RecipeRepository
	UserRepo   repositories.UserRepository
}

func NewRecipeUseCase(recipeRepo repositories.RecipeRepository, userRepo repositories.UserRepository) *RecipeUseCase {
	return &RecipeUseCase{RecipeRepo: recipeRepo, UserRepo: userRepo}
}

// ListRecipes lists recipes filtered by type and category tag; empty filters
// match everything.
func (uc *RecipeUseCase) ListRecipes(recipeType, extraCategories string) ([]entities.Recipe, error) {
	return uc.RecipeRepo.GetAll(recipeType, extraCategories)
}

// GetRecipe retrieves a recipe by id.
func (uc *RecipeUseCase) GetRecipe(id int) (*entities.Recipe, error) {
	if id <= 0 {
		return nil, errors.New("recipe id is required")
	}
	return uc.RecipeRepo.GetByID(id)
}

// CreateRecipe stores a recipe.
func (uc *RecipeUseCase) CreateRecipe(recipe *entities.Recipe) error {
	if recipe.RecipeName == "" {
		return errors.New("recipe name is required")
	}
	return uc.RecipeRepo.Create(recipe)
}

// GenerateRecipe builds a recipe from free-text directions and saves it.
// The dev server has no model behind it, so generation is deterministic:
// the same directions always produce the same recipe.
func (uc *RecipeUseCase) GenerateRecipe(req entities.RecipeGenerationRequest) (*entities.Recipe, error) {
	if strings.TrimSpace(req.UserDirections) == "" {
		return nil, errors.New("directions are required")
	}
	if _, err := uc.UserRepo.GetByID(req.UserID); err != nil {
		return nil, ErrUserNotFound
	}

	recipe := buildRecipe(req.UserDirections, req.UserID)
	if err := uc.RecipeRepo.Create(recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

type recipeTemplate struct {
	base        string
	ingredients []string
	steps       []string
}

var recipeTemplates = map[string]recipeTemplate{
	"Vegan": {
		base:        "Chickpea Skillet",
		ingredients: []string{"chickpeas", "spinach", "coconut milk", "curry powder", "brown rice"},
		steps:       []string{"Saute the aromatics", "Add chickpeas and coconut milk", "Simmer 15 minutes", "Serve over rice"},
	},
	"Vegetarian": {
		base:        "Halloumi Grain Bowl",
		ingredients: []string{"halloumi", "quinoa", "cherry tomatoes", "cucumber", "lemon dressing"},
		steps:       []string{"Cook the quinoa", "Sear the halloumi", "Assemble the bowl", "Dress and serve"},
	},
	"Keto": {
		base:        "Butter Salmon Plate",
		ingredients: []string{"salmon fillet", "butter", "asparagus", "garlic", "parmesan"},
		steps:       []string{"Pan-sear the salmon in butter", "Roast the asparagus", "Top with parmesan"},
	},
	"Paleo": {
		base:        "Steak and Sweet Potato",
		ingredients: []string{"sirloin steak", "sweet potato", "rosemary", "olive oil"},
		steps:       []string{"Roast the sweet potato", "Grill the steak to temperature", "Rest and slice"},
	},
	"Omnivore": {
		base:        "Chicken Rice Bowl",
		ingredients: []string{"chicken thighs", "jasmine rice", "green beans", "sesame oil", "scallions"},
		steps:       []string{"Cook the rice", "Brown the chicken", "Steam the green beans", "Combine and garnish"},
	},
}

// buildRecipe derives type, name, ingredients and macros from the directions
// text alone.
func buildRecipe(directions string, userID int) *entities.Recipe {
	recipeType := detectRecipeType(directions)
	tmpl := recipeTemplates[recipeType]

	h := fnv.New32a()
	h.Write([]byte(strings.ToLower(strings.TrimSpace(directions))))
	seed := h.Sum32()

	calories := 380 + int(seed%280)
	protein := float64(22 + seed%28)
	carbs := float64(18 + (seed>>8)%42)
	fat := float64(9 + (seed>>16)%21)

	name := recipeName(directions, tmpl.base)
	source := "Generated"
	trimmed := strings.TrimSpace(directions)
	ingredients := encodeList(tmpl.ingredients)
	instructions := encodeList(tmpl.steps)
	categories := encodeList([]string{"generated", strings.ToLower(recipeType)})

	return &entities.Recipe{
		RecipeName:      name,
		RecipeType:      &recipeType,
		RecipeSource:    &source,
		SourceUserID:    &userID,
		Ingredients:     &ingredients,
		Instructions:    &instructions,
		Directions:      &trimmed,
		Calories:        &calories,
		Fat:             &fat,
		Carbs:           &carbs,
		Protein:         &protein,
		ExtraCategories: &categories,
	}
}

func detectRecipeType(directions string) string {
	lower := strings.ToLower(directions)
	switch {
	case strings.Contains(lower, "vegan"):
		return "Vegan"
	case strings.Contains(lower, "vegetarian"):
		return "Vegetarian"
	case strings.Contains(lower, "keto"), strings.Contains(lower, "low carb"), strings.Contains(lower, "low-carb"):
		return "Keto"
	case strings.Contains(lower, "paleo"):
		return "Paleo"
	default:
		return "Omnivore"
	}
}

// recipeName prefixes the template name with up to three leading words of
// the directions, title-cased.
func recipeName(directions, base string) string {
	words := strings.Fields(strings.TrimSpace(directions))
	if len(words) > 3 {
		words = words[:3]
	}
	for i, w := range words {
		w = strings.ToLower(w)
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	if len(words) == 0 {
		return base
	}
	return fmt.Sprintf("%s %s", strings.Join(words, " "), base)
}

// encodeList renders items in the backend's pseudo-list wire form,
// e.g. ['a', 'b'].
func encodeList(items []string) string {
	return "['" + strings.Join(items, "', '") + "']"
}
