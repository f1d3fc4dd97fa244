package repositories

import (
	"fitness-app/db"
	"fitness-app/entities"
)

type recipeDbRepository struct {
	db db.Database
}

func NewRecipeDbRepository(database db.Database) RecipeRepository {
	return &recipeDbRepository{db: database}
}

func (r *recipeDbRepository) Create(recipe *entities.Recipe) error {
	return r.db.GetDB().Create(recipe).Error
}

// GetAll lists recipes ordered by name; empty filter values are ignored.
func (r *recipeDbRepository) GetAll(recipeType, extraCategories string) ([]entities.Recipe, error) {
	query := r.db.GetDB().Order("recipe_name")
	if recipeType != "" {
		query = query.Where("recipe_type = ?", recipeType)
	}
	if extraCategories != "" {
		query = query.Where("extra_categories = ?", extraCategories)
	}

	var recipes []entities.Recipe
	err := query.Find(&recipes).Error
	return recipes, err
}

func (r *recipeDbRepository) GetByID(id int) (*entities.Recipe, error) {
	var recipe entities.Recipe
	err := r.db.GetDB().Where("recipe_id = ?", id).First(&recipe).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}
