package domain

var (
	MessageSuccessGetTags        = "success get tags"
	MessageSuccessGetIngredients = "success get ingredients"

	MessageFailedGetTags        = "failed to get tags"
	MessageFailedGetIngredients = "failed to get ingredients"
)

// TagPalette is the fixed set of colors a tag may use.
var TagPalette = map[string]string{
	"#FFFFFF": "white",
	"#000000": "black",
	"#00B823": "green",
	"#0400B8": "blue",
	"#FF7E26": "orange",
	"#B5E61D": "olive",
	"#A349A4": "purple",
}

type (
	TagResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Color string `json:"color"`
		Slug  string `json:"slug"`
	}

	IngredientResponse struct {
		ID              string `json:"id"`
		Name            string `json:"name"`
		MeasurementUnit string `json:"measurement_unit"`
	}
)
