package shopping

import (
	"context"
	"fmt"
	"foodgram/domain"
	"strings"
)

const (
	reportHeader   = "Shopping list:"
	reportFilename = "shopping_list.txt"
)

type (
	ShoppingService interface {
		BuildReport(ctx context.Context, userID string) (domain.ShoppingListReport, error)
	}

	shoppingService struct {
		shoppingRepository ShoppingRepository
	}
)

func NewShoppingService(shoppingRepository ShoppingRepository) ShoppingService {
	return &shoppingService{shoppingRepository: shoppingRepository}
}

// BuildReport renders the user's aggregated shopping list as a flat text
// attachment: a fixed header, a blank line, then one "<name>: <total> <unit>"
// line per group. An empty cart yields the header alone.
func (s *shoppingService) BuildReport(ctx context.Context, userID string) (domain.ShoppingListReport, error) {
	items, err := s.shoppingRepository.AggregateCart(ctx, userID)
	if err != nil {
		return domain.ShoppingListReport{}, err
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%s: %d %s", item.Name, item.Total, item.MeasurementUnit))
	}

	return domain.ShoppingListReport{
		Filename:    reportFilename,
		ContentType: "text/plain",
		Content:     reportHeader + "\n\n" + strings.Join(lines, "\n"),
	}, nil
}
