package recipe

import (
	"context"
	"foodgram/entities"

	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe, lines []*entities.IngredientLine) error
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe, lines []*entities.IngredientLine, tags []entities.Tag) error
		DeleteRecipe(ctx context.Context, id string) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, page, limit int) ([]*entities.Recipe, int64, error)
		GetIngredientsByIDs(ctx context.Context, ids []string) ([]*entities.Ingredient, error)
		GetTagsByIDs(ctx context.Context, ids []string) ([]entities.Tag, error)
		GetIngredientLines(ctx context.Context, recipeID string) ([]*entities.IngredientLine, error)
		IsFavorited(ctx context.Context, userID, recipeID string) (bool, error)
		IsInCart(ctx context.Context, userID, recipeID string) (bool, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// CreateRecipe persists the recipe row (with its tag associations) and its
// ingredient lines as one transaction. recipe.Tags must reference existing
// catalog tags.
func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe, lines []*entities.IngredientLine) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		for _, line := range lines {
			line.RecipeID = recipe.ID
			if err := tx.Create(line).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateRecipe saves the scalar fields and replaces the tag set and the
// ingredient-line set wholesale, all in one transaction.
func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe, lines []*entities.IngredientLine, tags []entities.Tag) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.Recipe{}).
			Where("id = ?", recipe.ID).
			Updates(map[string]interface{}{
				"name":         recipe.Name,
				"image_url":    recipe.ImageURL,
				"text":         recipe.Text,
				"cooking_time": recipe.CookingTime,
			}).Error; err != nil {
			return err
		}

		if err := tx.Model(recipe).Association("Tags").Replace(&tags); err != nil {
			return err
		}

		if err := tx.Where("recipe_id = ?", recipe.ID).
			Delete(&entities.IngredientLine{}).Error; err != nil {
			return err
		}
		for _, line := range lines {
			line.RecipeID = recipe.ID
			if err := tx.Create(line).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipe entities.Recipe
		if err := tx.Where("id = ?", id).First(&recipe).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.IngredientLine{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.CartEntry{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&recipe).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(&recipe).Error
	})
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Tags").
		Preload("IngredientLines.Ingredient").
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipes(ctx context.Context, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).Model(&entities.Recipe{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Tags").
		Preload("IngredientLines.Ingredient").
		Offset(offset).
		Limit(limit).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) GetIngredientsByIDs(ctx context.Context, ids []string) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *recipeRepository) GetTagsByIDs(ctx context.Context, ids []string) ([]entities.Tag, error) {
	var tags []entities.Tag
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *recipeRepository) GetIngredientLines(ctx context.Context, recipeID string) ([]*entities.IngredientLine, error) {
	var lines []*entities.IngredientLine
	if err := r.db.WithContext(ctx).
		Preload("Ingredient").
		Where("recipe_id = ?", recipeID).
		Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *recipeRepository) IsFavorited(ctx context.Context, userID, recipeID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *recipeRepository) IsInCart(ctx context.Context, userID, recipeID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.CartEntry{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
