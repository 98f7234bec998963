package domain

import "errors"

var (
	MessageSuccessGetSubscriptions = "success get subscriptions"
	MessageSuccessGetProfile       = "success get profile"

	MessageFailedGetSubscriptions = "failed to get subscriptions"
	MessageFailedGetProfile       = "failed to get profile"

	ErrAuthorNotFound = errors.New("author not found")
	ErrUserNotFound   = errors.New("user not found")
)

type (
	UserResponse struct {
		ID           string `json:"id"`
		Email        string `json:"email"`
		Username     string `json:"username"`
		FirstName    string `json:"first_name"`
		LastName     string `json:"last_name"`
		IsSubscribed bool   `json:"is_subscribed"`
	}

	// SubscriptionResponse is the author as seen from a follower: profile
	// fields plus the author's recipes in short form.
	SubscriptionResponse struct {
		UserResponse
		Recipes      []RecipeShortInfo `json:"recipes"`
		RecipesCount int64             `json:"recipes_count"`
	}

	SubscriptionListResponse struct {
		Subscriptions []SubscriptionResponse `json:"subscriptions"`
		Total         int64                  `json:"total"`
	}
)
