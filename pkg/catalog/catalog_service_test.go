package catalog

import (
	"context"
	"testing"

	"foodgram/domain"
	"foodgram/entities"
	"foodgram/internal/utils/cache"

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

	require.NoError(t, db.AutoMigrate(&entities.Tag{}, &entities.Ingredient{}))
	return db
}

func newTestService(t *testing.T) (CatalogService, *gorm.DB) {
	db := setupTestDB(t)
	return NewCatalogService(NewCatalogRepository(db), cache.NewCache("")), db
}

func seedTag(t *testing.T, db *gorm.DB, name, color, slug string) *entities.Tag {
	tag := &entities.Tag{ID: uuid.New(), Name: name, Color: color, Slug: slug}
	require.NoError(t, db.Create(tag).Error)
	return tag
}

func seedIngredient(t *testing.T, db *gorm.DB, name, unit string) *entities.Ingredient {
	ingredient := &entities.Ingredient{ID: uuid.New(), Name: name, MeasurementUnit: unit}
	require.NoError(t, db.Create(ingredient).Error)
	return ingredient
}

func TestGetTags(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	seedTag(t, db, "breakfast", "#FF7E26", "breakfast")
	seedTag(t, db, "dinner", "#0400B8", "dinner")

	tags, err := service.GetTags(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 2)

	names := []string{tags[0].Name, tags[1].Name}
	assert.Contains(t, names, "breakfast")
	assert.Contains(t, names, "dinner")
}

func TestGetTagByID(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	tag := seedTag(t, db, "lunch", "#00B823", "lunch")

	got, err := service.GetTagByID(ctx, tag.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "lunch", got.Name)
	assert.Equal(t, "#00B823", got.Color)

	_, err = service.GetTagByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrTagNotFound)
}

func TestGetIngredientsPrefixSearch(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	seedIngredient(t, db, "sugar", "g")
	seedIngredient(t, db, "sunflower oil", "ml")
	seedIngredient(t, db, "flour", "g")

	ingredients, err := service.GetIngredients(ctx, "su")
	require.NoError(t, err)
	require.Len(t, ingredients, 2)
	for _, ingredient := range ingredients {
		assert.NotEqual(t, "flour", ingredient.Name)
	}

	all, err := service.GetIngredients(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestGetIngredientByID(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	ingredient := seedIngredient(t, db, "salt", "g")

	got, err := service.GetIngredientByID(ctx, ingredient.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "salt", got.Name)
	assert.Equal(t, "g", got.MeasurementUnit)

	_, err = service.GetIngredientByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrIngredientNotFound)
}
