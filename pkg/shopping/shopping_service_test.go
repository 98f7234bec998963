package shopping

import (
	"context"
	"testing"

	"foodgram/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.Tag{},
		&entities.Ingredient{},
		&entities.Recipe{},
		&entities.IngredientLine{},
		&entities.Favorite{},
		&entities.CartEntry{},
		&entities.Follow{},
	))
	return db
}

func createIngredient(t *testing.T, db *gorm.DB, name, unit string) *entities.Ingredient {
	ingredient := &entities.Ingredient{ID: uuid.New(), Name: name, MeasurementUnit: unit}
	require.NoError(t, db.Create(ingredient).Error)
	return ingredient
}

func createRecipeWithLines(t *testing.T, db *gorm.DB, author *entities.User, name string, lines map[*entities.Ingredient]int) *entities.Recipe {
	recipe := &entities.Recipe{
		ID:          uuid.New(),
		AuthorID:    author.ID,
		Name:        name,
		Text:        "text",
		CookingTime: 10,
	}
	require.NoError(t, db.Create(recipe).Error)
	for ingredient, amount := range lines {
		require.NoError(t, db.Create(&entities.IngredientLine{
			ID:           uuid.New(),
			RecipeID:     recipe.ID,
			IngredientID: ingredient.ID,
			Amount:       amount,
		}).Error)
	}
	return recipe
}

func addToCart(t *testing.T, db *gorm.DB, user *entities.User, recipe *entities.Recipe) {
	require.NoError(t, db.Create(&entities.CartEntry{
		ID:       uuid.New(),
		UserID:   user.ID,
		RecipeID: recipe.ID,
	}).Error)
}

func TestBuildReportAggregatesAcrossRecipes(t *testing.T) {
	db := setupTestDB(t)
	service := NewShoppingService(NewShoppingRepository(db))
	ctx := context.Background()

	u := &entities.User{ID: uuid.New(), Email: "a@example.com", Username: "alice"}
	require.NoError(t, db.Create(u).Error)

	flour := createIngredient(t, db, "flour", "g")
	sugar := createIngredient(t, db, "sugar", "g")
	egg := createIngredient(t, db, "egg", "unit")

	recipeA := createRecipeWithLines(t, db, u, "cake", map[*entities.Ingredient]int{flour: 200, sugar: 50})
	recipeB := createRecipeWithLines(t, db, u, "pancakes", map[*entities.Ingredient]int{flour: 100, egg: 2})

	addToCart(t, db, u, recipeA)
	addToCart(t, db, u, recipeB)

	report, err := service.BuildReport(ctx, u.ID.String())
	require.NoError(t, err)

	assert.Equal(t, "shopping_list.txt", report.Filename)
	assert.Equal(t, "text/plain", report.ContentType)
	assert.Equal(t, "Shopping list:\n\negg: 2 unit\nflour: 300 g\nsugar: 50 g", report.Content)
}

func TestBuildReportEmptyCart(t *testing.T) {
	db := setupTestDB(t)
	service := NewShoppingService(NewShoppingRepository(db))
	ctx := context.Background()

	u := &entities.User{ID: uuid.New(), Email: "a@example.com", Username: "alice"}
	require.NoError(t, db.Create(u).Error)

	report, err := service.BuildReport(ctx, u.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Shopping list:\n\n", report.Content)
}

func TestBuildReportIgnoresOtherUsersAndRecipes(t *testing.T) {
	db := setupTestDB(t)
	service := NewShoppingService(NewShoppingRepository(db))
	ctx := context.Background()

	alice := &entities.User{ID: uuid.New(), Email: "a@example.com", Username: "alice"}
	bob := &entities.User{ID: uuid.New(), Email: "b@example.com", Username: "bob"}
	require.NoError(t, db.Create(alice).Error)
	require.NoError(t, db.Create(bob).Error)

	flour := createIngredient(t, db, "flour", "g")
	salt := createIngredient(t, db, "salt", "g")

	inCart := createRecipeWithLines(t, db, alice, "bread", map[*entities.Ingredient]int{flour: 500})
	notInCart := createRecipeWithLines(t, db, alice, "crackers", map[*entities.Ingredient]int{salt: 5})

	addToCart(t, db, alice, inCart)
	// bob's cart must not leak into alice's report
	addToCart(t, db, bob, notInCart)

	report, err := service.BuildReport(ctx, alice.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Shopping list:\n\nflour: 500 g", report.Content)
}

// Two catalog entries sharing a name but with different units stay separate
// groups; same name and unit merges even across distinct catalog rows.
func TestBuildReportGroupsByNameAndUnit(t *testing.T) {
	db := setupTestDB(t)
	service := NewShoppingService(NewShoppingRepository(db))
	ctx := context.Background()

	u := &entities.User{ID: uuid.New(), Email: "a@example.com", Username: "alice"}
	require.NoError(t, db.Create(u).Error)

	milkMl := createIngredient(t, db, "milk", "ml")
	milkG := createIngredient(t, db, "milk", "g")

	recipe := createRecipeWithLines(t, db, u, "porridge", map[*entities.Ingredient]int{milkMl: 250, milkG: 30})
	addToCart(t, db, u, recipe)

	report, err := service.BuildReport(ctx, u.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Shopping list:\n\nmilk: 30 g\nmilk: 250 ml", report.Content)
}
