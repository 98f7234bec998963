package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"

	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrTagNotFound        = errors.New("tag not found")
	ErrNotRecipeAuthor    = errors.New("only the recipe author can modify it")

	ErrIngredientsEmpty       = errors.New("ingredients: add at least one ingredient")
	ErrAmountNotPositive      = errors.New("ingredients: amount must be greater than zero")
	ErrDuplicateIngredient    = errors.New("ingredients: each ingredient may be listed only once")
	ErrTagsEmpty              = errors.New("tags: add at least one tag")
	ErrCookingTimeNotPositive = errors.New("cooking_time: must be greater than zero")
)

type (
	IngredientLineRequest struct {
		IngredientID string `json:"id" validate:"required,uuid"`
		Amount       int    `json:"amount" validate:"required"`
	}

	CreateRecipeRequest struct {
		Name        string                  `json:"name" validate:"required,max=200"`
		ImageURL    string                  `json:"image"`
		Text        string                  `json:"text" validate:"required"`
		CookingTime int                     `json:"cooking_time" validate:"required"`
		Ingredients []IngredientLineRequest `json:"ingredients"`
		Tags        []string                `json:"tags"`
	}

	// UpdateRecipeRequest carries full-replace sets for ingredients and tags;
	// zero-valued scalar fields keep the recipe's current values.
	UpdateRecipeRequest struct {
		Name        string                  `json:"name" validate:"omitempty,max=200"`
		ImageURL    string                  `json:"image"`
		Text        string                  `json:"text"`
		CookingTime int                     `json:"cooking_time"`
		Ingredients []IngredientLineRequest `json:"ingredients"`
		Tags        []string                `json:"tags"`
	}

	IngredientLineResponse struct {
		ID              string `json:"id"`
		Name            string `json:"name"`
		MeasurementUnit string `json:"measurement_unit"`
		Amount          int    `json:"amount"`
	}

	RecipeShortInfo struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		ImageURL    string `json:"image"`
		CookingTime int    `json:"cooking_time"`
	}

	RecipeDetail struct {
		ID               string                   `json:"id"`
		Author           UserResponse             `json:"author"`
		Name             string                   `json:"name"`
		ImageURL         string                   `json:"image"`
		Text             string                   `json:"text"`
		CookingTime      int                      `json:"cooking_time"`
		Tags             []TagResponse            `json:"tags"`
		Ingredients      []IngredientLineResponse `json:"ingredients"`
		IsFavorited      bool                     `json:"is_favorited"`
		IsInShoppingCart bool                     `json:"is_in_shopping_cart"`
		CreatedAt        time.Time                `json:"created_at"`
	}

	RecipeListResponse struct {
		Recipes []RecipeDetail `json:"recipes"`
		Total   int64          `json:"total"`
	}
)
