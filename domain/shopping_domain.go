package domain

var (
	MessageSuccessDownloadShoppingList = "success build shopping list"
	MessageFailedDownloadShoppingList  = "failed to build shopping list"
)

type (
	// ShoppingListItem is one aggregated (name, unit) group summed across
	// every cart recipe.
	ShoppingListItem struct {
		Name            string `json:"name"`
		MeasurementUnit string `json:"measurement_unit"`
		Total           int    `json:"total"`
	}

	ShoppingListReport struct {
		Filename    string `json:"filename"`
		ContentType string `json:"content_type"`
		Content     string `json:"content"`
	}
)
