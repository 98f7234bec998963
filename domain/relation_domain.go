package domain

import "errors"

var (
	MessageSuccessActivateRelation   = "relation created successfully"
	MessageSuccessDeactivateRelation = "relation removed successfully"

	MessageFailedActivateRelation   = "failed to create relation"
	MessageFailedDeactivateRelation = "failed to remove relation"

	ErrAlreadyFavorited  = errors.New("recipe is already in favorites")
	ErrAlreadyInCart     = errors.New("recipe is already in the shopping cart")
	ErrAlreadySubscribed = errors.New("already subscribed to this author")

	ErrNotFavorited  = errors.New("recipe is not in favorites")
	ErrNotInCart     = errors.New("recipe is not in the shopping cart")
	ErrNotSubscribed = errors.New("not subscribed to this author")

	ErrSelfSubscribe = errors.New("subscribing to yourself is not allowed")
)

type (
	// RelationView is what an activation returns: a short recipe summary for
	// favorite/cart toggles, a subscription summary for follow toggles.
	RelationView struct {
		Recipe       *RecipeShortInfo      `json:"recipe,omitempty"`
		Subscription *SubscriptionResponse `json:"subscription,omitempty"`
	}
)
