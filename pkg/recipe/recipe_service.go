package recipe

import (
	"context"
	"errors"
	"foodgram/domain"
	"foodgram/entities"
	"foodgram/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeDetail, error)
		UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, userID string) (domain.RecipeDetail, error)
		DeleteRecipe(ctx context.Context, id string, userID string) error
		GetRecipeDetail(ctx context.Context, id string, userID string) (domain.RecipeDetail, error)
		GetRecipes(ctx context.Context, page, limit int, userID string) (domain.RecipeListResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		userRepository   user.UserRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository, userRepository user.UserRepository) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		userRepository:   userRepository,
	}
}

// validateMutation applies the content rules shared by create and update:
// non-empty ingredient list with positive amounts and no duplicate
// ingredient references, and a non-empty tag list.
func validateMutation(ingredients []domain.IngredientLineRequest, tags []string) error {
	if len(ingredients) == 0 {
		return domain.ErrIngredientsEmpty
	}
	seen := make(map[string]struct{}, len(ingredients))
	for _, line := range ingredients {
		if line.Amount <= 0 {
			return domain.ErrAmountNotPositive
		}
		if _, ok := seen[line.IngredientID]; ok {
			return domain.ErrDuplicateIngredient
		}
		seen[line.IngredientID] = struct{}{}
	}
	if len(tags) == 0 {
		return domain.ErrTagsEmpty
	}
	return nil
}

// resolveReferences checks every referenced ingredient and tag exists and
// returns them keyed for line building.
func (s *recipeService) resolveReferences(ctx context.Context, ingredients []domain.IngredientLineRequest, tagIDs []string) (map[string]*entities.Ingredient, []entities.Tag, error) {
	ids := make([]string, 0, len(ingredients))
	for _, line := range ingredients {
		ids = append(ids, line.IngredientID)
	}
	found, err := s.recipeRepository.GetIngredientsByIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	byID := make(map[string]*entities.Ingredient, len(found))
	for _, ingredient := range found {
		byID[ingredient.ID.String()] = ingredient
	}
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			return nil, nil, domain.ErrIngredientNotFound
		}
	}

	tags, err := s.recipeRepository.GetTagsByIDs(ctx, tagIDs)
	if err != nil {
		return nil, nil, err
	}
	if len(tags) != len(tagIDs) {
		return nil, nil, domain.ErrTagNotFound
	}

	return byID, tags, nil
}

func buildLines(ingredients []domain.IngredientLineRequest, byID map[string]*entities.Ingredient) []*entities.IngredientLine {
	lines := make([]*entities.IngredientLine, 0, len(ingredients))
	for _, req := range ingredients {
		lines = append(lines, &entities.IngredientLine{
			ID:           uuid.New(),
			IngredientID: byID[req.IngredientID].ID,
			Amount:       req.Amount,
		})
	}
	return lines
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeDetail, error) {
	if err := validateMutation(req.Ingredients, req.Tags); err != nil {
		return domain.RecipeDetail{}, err
	}
	if req.CookingTime <= 0 {
		return domain.RecipeDetail{}, domain.ErrCookingTimeNotPositive
	}

	authorUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeDetail{}, domain.ErrParseUUID
	}

	byID, tags, err := s.resolveReferences(ctx, req.Ingredients, req.Tags)
	if err != nil {
		return domain.RecipeDetail{}, err
	}

	recipe := &entities.Recipe{
		ID:          uuid.New(),
		AuthorID:    authorUUID,
		Name:        req.Name,
		ImageURL:    req.ImageURL,
		Text:        req.Text,
		CookingTime: req.CookingTime,
		Tags:        tags,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe, buildLines(req.Ingredients, byID)); err != nil {
		return domain.RecipeDetail{}, err
	}

	return s.GetRecipeDetail(ctx, recipe.ID.String(), userID)
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, userID string) (domain.RecipeDetail, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetail{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetail{}, err
	}

	if recipe.AuthorID.String() != userID {
		return domain.RecipeDetail{}, domain.ErrNotRecipeAuthor
	}

	if err := validateMutation(req.Ingredients, req.Tags); err != nil {
		return domain.RecipeDetail{}, err
	}
	if req.CookingTime < 0 {
		return domain.RecipeDetail{}, domain.ErrCookingTimeNotPositive
	}

	byID, tags, err := s.resolveReferences(ctx, req.Ingredients, req.Tags)
	if err != nil {
		return domain.RecipeDetail{}, err
	}

	// Absent scalar fields keep their current values.
	if req.Name != "" {
		recipe.Name = req.Name
	}
	if req.ImageURL != "" {
		recipe.ImageURL = req.ImageURL
	}
	if req.Text != "" {
		recipe.Text = req.Text
	}
	if req.CookingTime > 0 {
		recipe.CookingTime = req.CookingTime
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe, buildLines(req.Ingredients, byID), tags); err != nil {
		return domain.RecipeDetail{}, err
	}

	return s.GetRecipeDetail(ctx, id, userID)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string, userID string) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if recipe.AuthorID.String() != userID {
		return domain.ErrNotRecipeAuthor
	}

	return s.recipeRepository.DeleteRecipe(ctx, id)
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, id string, userID string) (domain.RecipeDetail, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetail{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetail{}, err
	}
	return s.toDetail(ctx, recipe, userID)
}

func (s *recipeService) GetRecipes(ctx context.Context, page, limit int, userID string) (domain.RecipeListResponse, error) {
	recipes, count, err := s.recipeRepository.GetRecipes(ctx, page, limit)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	details := make([]domain.RecipeDetail, 0, len(recipes))
	for _, recipe := range recipes {
		detail, err := s.toDetail(ctx, recipe, userID)
		if err != nil {
			return domain.RecipeListResponse{}, err
		}
		details = append(details, detail)
	}

	return domain.RecipeListResponse{Recipes: details, Total: count}, nil
}

func (s *recipeService) toDetail(ctx context.Context, recipe *entities.Recipe, userID string) (domain.RecipeDetail, error) {
	detail := domain.RecipeDetail{
		ID:          recipe.ID.String(),
		Name:        recipe.Name,
		ImageURL:    recipe.ImageURL,
		Text:        recipe.Text,
		CookingTime: recipe.CookingTime,
		CreatedAt:   recipe.CreatedAt,
	}

	if recipe.Author != nil {
		detail.Author = domain.UserResponse{
			ID:        recipe.Author.ID.String(),
			Email:     recipe.Author.Email,
			Username:  recipe.Author.Username,
			FirstName: recipe.Author.FirstName,
			LastName:  recipe.Author.LastName,
		}
		if userID != "" && userID != recipe.AuthorID.String() {
			isSubscribed, err := s.userRepository.IsSubscribed(ctx, userID, recipe.AuthorID.String())
			if err != nil {
				return domain.RecipeDetail{}, err
			}
			detail.Author.IsSubscribed = isSubscribed
		}
	}

	detail.Tags = make([]domain.TagResponse, 0, len(recipe.Tags))
	for _, tag := range recipe.Tags {
		detail.Tags = append(detail.Tags, domain.TagResponse{
			ID:    tag.ID.String(),
			Name:  tag.Name,
			Color: tag.Color,
			Slug:  tag.Slug,
		})
	}

	detail.Ingredients = make([]domain.IngredientLineResponse, 0, len(recipe.IngredientLines))
	for _, line := range recipe.IngredientLines {
		resp := domain.IngredientLineResponse{
			ID:     line.IngredientID.String(),
			Amount: line.Amount,
		}
		if line.Ingredient != nil {
			resp.Name = line.Ingredient.Name
			resp.MeasurementUnit = line.Ingredient.MeasurementUnit
		}
		detail.Ingredients = append(detail.Ingredients, resp)
	}

	if userID != "" {
		isFavorited, err := s.recipeRepository.IsFavorited(ctx, userID, detail.ID)
		if err != nil {
			return domain.RecipeDetail{}, err
		}
		detail.IsFavorited = isFavorited

		isInCart, err := s.recipeRepository.IsInCart(ctx, userID, detail.ID)
		if err != nil {
			return domain.RecipeDetail{}, err
		}
		detail.IsInShoppingCart = isInCart
	}

	return detail, nil
}
