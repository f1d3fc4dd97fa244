package entities

// Recipe mirrors the backend recipe row. Ingredients, Instructions and
// ExtraCategories arrive as pseudo-list strings ("['a', 'b']") and are
// formatted for display by utils.FormatListString.
type Recipe struct {
	RecipeID        int      `gorm:"primaryKey;autoIncrement" json:"recipe_id"`
	RecipeName      string   `gorm:"not null" json:"recipe_name"`
	RecipeType      *string  `json:"recipe_type"`
	RecipeSource    *string  `json:"recipe_source"`
	SourceUserID    *int     `json:"source_user_id"`
	RecipeURL       *string  `json:"recipe_url"`
	Ingredients     *string  `json:"ingredients"`
	Instructions    *string  `json:"instructions"`
	Directions      *string  `json:"directions"`
	Calories        *int     `json:"calories"`
	Fat             *float64 `json:"fat"`
	Carbs           *float64 `json:"carbs"`
	Protein         *float64 `json:"protein"`
	ExtraCategories *string  `json:"extra_categories"`
}

type RecipeGenerationRequest struct {
	UserID         int     `json:"user_id"`
	UserDirections string  `json:"user_directions"`
	Model          *string `json:"model,omitempty"`
}

// GenerateRecipeResponse is an envelope: Recipe is only meaningful when
// Success is true.
type GenerateRecipeResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Recipe  *Recipe `json:"recipe"`
}
