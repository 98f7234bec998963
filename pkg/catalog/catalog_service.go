package catalog

import (
	"context"
	"errors"
	"foodgram/domain"
	"foodgram/entities"
	"foodgram/internal/utils/cache"
	"log"
	"time"

	"gorm.io/gorm"
)

const catalogCacheTTL = 10 * time.Minute

type (
	CatalogService interface {
		GetTags(ctx context.Context) ([]domain.TagResponse, error)
		GetTagByID(ctx context.Context, id string) (domain.TagResponse, error)
		GetIngredients(ctx context.Context, search string) ([]domain.IngredientResponse, error)
		GetIngredientByID(ctx context.Context, id string) (domain.IngredientResponse, error)
	}

	catalogService struct {
		catalogRepository CatalogRepository
		cache             *cache.Cache
	}
)

func NewCatalogService(catalogRepository CatalogRepository, cache *cache.Cache) CatalogService {
	return &catalogService{
		catalogRepository: catalogRepository,
		cache:             cache,
	}
}

func (s *catalogService) GetTags(ctx context.Context) ([]domain.TagResponse, error) {
	var cached []domain.TagResponse
	if hit, err := s.cache.GetJSON(ctx, "catalog:tags", &cached); err == nil && hit {
		return cached, nil
	}

	tags, err := s.catalogRepository.GetTags(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.TagResponse, 0, len(tags))
	for _, tag := range tags {
		response = append(response, toTagResponse(tag))
	}

	if err := s.cache.SetJSON(ctx, "catalog:tags", response, catalogCacheTTL); err != nil {
		log.Printf("failed to cache tags: %v", err)
	}
	return response, nil
}

func (s *catalogService) GetTagByID(ctx context.Context, id string) (domain.TagResponse, error) {
	tag, err := s.catalogRepository.GetTagByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.TagResponse{}, domain.ErrTagNotFound
		}
		return domain.TagResponse{}, err
	}
	return toTagResponse(tag), nil
}

func (s *catalogService) GetIngredients(ctx context.Context, search string) ([]domain.IngredientResponse, error) {
	key := "catalog:ingredients:" + search
	var cached []domain.IngredientResponse
	if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	ingredients, err := s.catalogRepository.GetIngredients(ctx, search)
	if err != nil {
		return nil, err
	}

	response := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		response = append(response, toIngredientResponse(ingredient))
	}

	if err := s.cache.SetJSON(ctx, key, response, catalogCacheTTL); err != nil {
		log.Printf("failed to cache ingredients: %v", err)
	}
	return response, nil
}

func (s *catalogService) GetIngredientByID(ctx context.Context, id string) (domain.IngredientResponse, error) {
	ingredient, err := s.catalogRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.IngredientResponse{}, domain.ErrIngredientNotFound
		}
		return domain.IngredientResponse{}, err
	}
	return toIngredientResponse(ingredient), nil
}

func toTagResponse(tag *entities.Tag) domain.TagResponse {
	return domain.TagResponse{
		ID:    tag.ID.String(),
		Name:  tag.Name,
		Color: tag.Color,
		Slug:  tag.Slug,
	}
}

func toIngredientResponse(ingredient *entities.Ingredient) domain.IngredientResponse {
	return domain.IngredientResponse{
		ID:              ingredient.ID.String(),
		Name:            ingredient.Name,
		MeasurementUnit: ingredient.MeasurementUnit,
	}
}
