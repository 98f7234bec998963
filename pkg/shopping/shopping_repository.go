package shopping

import (
	"context"
	"foodgram/domain"

	"gorm.io/gorm"
)

type (
	ShoppingRepository interface {
		AggregateCart(ctx context.Context, userID string) ([]domain.ShoppingListItem, error)
	}

	shoppingRepository struct {
		db *gorm.DB
	}
)

func NewShoppingRepository(db *gorm.DB) ShoppingRepository {
	return &shoppingRepository{db: db}
}

// AggregateCart joins the user's cart recipes to their ingredient lines and
// the ingredient catalog, groups by (name, measurement unit) and sums the
// amounts. Ordered by name then unit so the report is deterministic.
func (r *shoppingRepository) AggregateCart(ctx context.Context, userID string) ([]domain.ShoppingListItem, error) {
	var items []domain.ShoppingListItem
	if err := r.db.WithContext(ctx).
		Table("ingredient_lines").
		Select("ingredients.name AS name, ingredients.measurement_unit AS measurement_unit, SUM(ingredient_lines.amount) AS total").
		Joins("JOIN ingredients ON ingredients.id = ingredient_lines.ingredient_id").
		Joins("JOIN cart_entries ON cart_entries.recipe_id = ingredient_lines.recipe_id").
		Where("cart_entries.user_id = ?", userID).
		Group("ingredients.name, ingredients.measurement_unit").
		Order("ingredients.name, ingredients.measurement_unit").
		Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
