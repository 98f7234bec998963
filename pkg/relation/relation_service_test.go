package relation

import (
	"context"
	"testing"

	"foodgram/domain"
	"foodgram/entities"
	"foodgram/pkg/recipe"
	"foodgram/pkg/user"

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

func newTestService(db *gorm.DB) RelationService {
	userService := user.NewUserService(user.NewUserRepository(db))
	return NewRelationService(NewRelationRepository(db), recipe.NewRecipeRepository(db), userService)
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *entities.User {
	u := &entities.User{
		ID:       uuid.New(),
		Email:    username + "@example.com",
		Username: username,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createTestRecipe(t *testing.T, db *gorm.DB, author *entities.User, name string) *entities.Recipe {
	r := &entities.Recipe{
		ID:          uuid.New(),
		AuthorID:    author.ID,
		Name:        name,
		Text:        "some text",
		CookingTime: 30,
	}
	require.NoError(t, db.Create(r).Error)
	return r
}

func TestActivateFavorite(t *testing.T) {
	db := setupTestDB(t)
	service := newTestService(db)
	ctx := context.Background()

	u := createTestUser(t, db, "alice")
	author := createTestUser(t, db, "bob")
	r := createTestRecipe(t, db, author, "borscht")

	view, err := service.Activate(ctx, u.ID.String(), r.ID.String(), KindFavorite)
	require.NoError(t, err)
	require.NotNil(t, view.Recipe)
	assert.Equal(t, r.ID.String(), view.Recipe.ID)
	assert.Equal(t, "borscht", view.Recipe.Name)
	assert.Equal(t, 30, view.Recipe.CookingTime)

	// second activation of the same pair is a conflict, not an upsert
	_, err = service.Activate(ctx, u.ID.String(), r.ID.String(), KindFavorite)
	assert.ErrorIs(t, err, domain.ErrAlreadyFavorited)
}

func TestActivateUnknownRecipe(t *testing.T) {
	db := setupTestDB(t)
	service := newTestService(db)
	ctx := context.Background()

	u := createTestUser(t, db, "alice")

	_, err := service.Activate(ctx, u.ID.String(), uuid.NewString(), KindFavorite)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

	_, err = service.Activate(ctx, u.ID.String(), uuid.NewString(), KindCart)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestActivateDeactivateLifecycle(t *testing.T) {
	tests := []struct {
		name        string
		kind        Kind
		errNotFound error
	}{
		{name: "favorite", kind: KindFavorite, errNotFound: domain.ErrNotFavorited},
		{name: "cart", kind: KindCart, errNotFound: domain.ErrNotInCart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			service := newTestService(db)
			ctx := context.Background()

			u := createTestUser(t, db, "alice")
			author := createTestUser(t, db, "bob")
			r := createTestRecipe(t, db, author, "soup")

			_, err := service.Activate(ctx, u.ID.String(), r.ID.String(), tt.kind)
			require.NoError(t, err)

			require.NoError(t, service.Deactivate(ctx, u.ID.String(), r.ID.String(), tt.kind))

			// second deactivate finds nothing and mutates nothing
			err = service.Deactivate(ctx, u.ID.String(), r.ID.String(), tt.kind)
			assert.ErrorIs(t, err, tt.errNotFound)
		})
	}
}

func TestDeactivateNeverCreated(t *testing.T) {
	db := setupTestDB(t)
	service := newTestService(db)
	ctx := context.Background()

	u := createTestUser(t, db, "alice")
	author := createTestUser(t, db, "bob")
	r := createTestRecipe(t, db, author, "soup")

	err := service.Deactivate(ctx, u.ID.String(), r.ID.String(), KindCart)
	assert.ErrorIs(t, err, domain.ErrNotInCart)

	err = service.Deactivate(ctx, u.ID.String(), author.ID.String(), KindFollow)
	assert.ErrorIs(t, err, domain.ErrNotSubscribed)
}

func TestSelfSubscribe(t *testing.T) {
	db := setupTestDB(t)
	service := newTestService(db)
	ctx := context.Background()

	u := createTestUser(t, db, "alice")

	_, err := service.Activate(ctx, u.ID.String(), u.ID.String(), KindFollow)
	assert.ErrorIs(t, err, domain.ErrSelfSubscribe)
}

func TestSubscribeView(t *testing.T) {
	db := setupTestDB(t)
	service := newTestService(db)
	ctx := context.Background()

	u := createTestUser(t, db, "alice")
	author := createTestUser(t, db, "bob")
	createTestRecipe(t, db, author, "soup")
	createTestRecipe(t, db, author, "stew")

	view, err := service.Activate(ctx, u.ID.String(), author.ID.String(), KindFollow)
	require.NoError(t, err)
	require.NotNil(t, view.Subscription)
	assert.Equal(t, "bob", view.Subscription.Username)
	assert.True(t, view.Subscription.IsSubscribed)
	assert.Equal(t, int64(2), view.Subscription.RecipesCount)
	assert.Len(t, view.Subscription.Recipes, 2)

	_, err = service.Activate(ctx, u.ID.String(), author.ID.String(), KindFollow)
	assert.ErrorIs(t, err, domain.ErrAlreadySubscribed)
}

func TestSubscribeUnknownAuthor(t *testing.T) {
	db := setupTestDB(t)
	service := newTestService(db)
	ctx := context.Background()

	u := createTestUser(t, db, "alice")

	_, err := service.Activate(ctx, u.ID.String(), uuid.NewString(), KindFollow)
	assert.ErrorIs(t, err, domain.ErrAuthorNotFound)
}

// The unique index is the final arbiter: a duplicate insert that slips past
// the pre-check must come back as gorm.ErrDuplicatedKey, which Activate
// reports as the kind's conflict error.
func TestCreateDuplicatePair(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRelationRepository(db)
	ctx := context.Background()

	u := createTestUser(t, db, "alice")
	author := createTestUser(t, db, "bob")
	r := createTestRecipe(t, db, author, "soup")

	require.NoError(t, repo.Create(ctx, KindFavorite, u.ID, r.ID))
	err := repo.Create(ctx, KindFavorite, u.ID, r.ID)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestKindsAreIndependent(t *testing.T) {
	db := setupTestDB(t)
	service := newTestService(db)
	ctx := context.Background()

	u := createTestUser(t, db, "alice")
	author := createTestUser(t, db, "bob")
	r := createTestRecipe(t, db, author, "soup")

	_, err := service.Activate(ctx, u.ID.String(), r.ID.String(), KindFavorite)
	require.NoError(t, err)

	// the same pair under a different kind is a fresh relation
	_, err = service.Activate(ctx, u.ID.String(), r.ID.String(), KindCart)
	require.NoError(t, err)

	require.NoError(t, service.Deactivate(ctx, u.ID.String(), r.ID.String(), KindFavorite))
	err = service.Deactivate(ctx, u.ID.String(), r.ID.String(), KindCart)
	assert.NoError(t, err)
}
