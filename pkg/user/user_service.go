package user

import (
	"context"
	"errors"
	"foodgram/domain"

	"gorm.io/gorm"
)

type (
	UserService interface {
		GetProfile(ctx context.Context, id string, viewerID string) (domain.UserResponse, error)
		GetSubscriptions(ctx context.Context, userID string, page, limit int) (domain.SubscriptionListResponse, error)
		BuildSubscription(ctx context.Context, authorID string) (domain.SubscriptionResponse, error)
	}

	userService struct {
		userRepository UserRepository
	}
)

func NewUserService(userRepository UserRepository) UserService {
	return &userService{userRepository: userRepository}
}

func (s *userService) GetProfile(ctx context.Context, id string, viewerID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	isSubscribed := false
	if viewerID != "" && viewerID != id {
		isSubscribed, err = s.userRepository.IsSubscribed(ctx, viewerID, id)
		if err != nil {
			return domain.UserResponse{}, err
		}
	}

	return domain.UserResponse{
		ID:           user.ID.String(),
		Email:        user.Email,
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		IsSubscribed: isSubscribed,
	}, nil
}

// GetSubscriptions lists the authors the user follows, each with the
// author's recipes in short form and the recipe count.
func (s *userService) GetSubscriptions(ctx context.Context, userID string, page, limit int) (domain.SubscriptionListResponse, error) {
	follows, count, err := s.userRepository.GetFollows(ctx, userID, page, limit)
	if err != nil {
		return domain.SubscriptionListResponse{}, err
	}

	subscriptions := make([]domain.SubscriptionResponse, 0, len(follows))
	for _, follow := range follows {
		if follow.Author == nil {
			continue
		}
		summary, err := s.BuildSubscription(ctx, follow.Author.ID.String())
		if err != nil {
			return domain.SubscriptionListResponse{}, err
		}
		subscriptions = append(subscriptions, summary)
	}

	return domain.SubscriptionListResponse{
		Subscriptions: subscriptions,
		Total:         count,
	}, nil
}

// BuildSubscription assembles the follow view for one author: profile,
// short recipe infos and recipe count.
func (s *userService) BuildSubscription(ctx context.Context, authorID string) (domain.SubscriptionResponse, error) {
	author, err := s.userRepository.GetUserByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SubscriptionResponse{}, domain.ErrAuthorNotFound
		}
		return domain.SubscriptionResponse{}, err
	}

	recipes, err := s.userRepository.GetRecipesByAuthor(ctx, authorID)
	if err != nil {
		return domain.SubscriptionResponse{}, err
	}
	recipesCount, err := s.userRepository.CountRecipesByAuthor(ctx, authorID)
	if err != nil {
		return domain.SubscriptionResponse{}, err
	}

	shortInfos := make([]domain.RecipeShortInfo, 0, len(recipes))
	for _, recipe := range recipes {
		shortInfos = append(shortInfos, domain.RecipeShortInfo{
			ID:          recipe.ID.String(),
			Name:        recipe.Name,
			ImageURL:    recipe.ImageURL,
			CookingTime: recipe.CookingTime,
		})
	}

	return domain.SubscriptionResponse{
		UserResponse: domain.UserResponse{
			ID:           author.ID.String(),
			Email:        author.Email,
			Username:     author.Username,
			FirstName:    author.FirstName,
			LastName:     author.LastName,
			IsSubscribed: true,
		},
		Recipes:      shortInfos,
		RecipesCount: recipesCount,
	}, nil
}
