package httpHandler

import (
	"errors"
	"net/http"

	"fitness-app/entities"
	"fitness-app/usecases"

	"github.com/gin-gonic/gin"
)

type RecipeHandler struct {
	useCase *usecases.RecipeUseCase
}

func NewRecipeHandler(useCase *usecases.RecipeUseCase) *RecipeHandler {
	return &RecipeHandler{useCase: useCase}
}

// GetRecipes handles GET /recipes?recipe_type=&extra_categories=
func (h *RecipeHandler) GetRecipes(c *gin.Context) {
	recipes, err := h.useCase.ListRecipes(c.Query("recipe_type"), c.Query("extra_categories"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to retrieve recipes"})
		return
	}

	c.JSON(http.StatusOK, recipes)
}

// GenerateRecipe handles POST /generate-recipe. An unknown user is 404;
// everything else is reported through the envelope.
func (h *RecipeHandler) GenerateRecipe(c *gin.Context) {
	var req entities.RecipeGenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}

	recipe, err := h.useCase.GenerateRecipe(req)
	if err != nil {
		if errors.Is(err, usecases.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
			return
		}
		c.JSON(http.StatusOK, entities.GenerateRecipeResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, entities.GenerateRecipeResponse{
		Success: true,
		Message: "Recipe generated successfully",
		Recipe:  recipe,
	})
}
