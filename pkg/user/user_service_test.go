package user

import (
	"context"
	"testing"

	"foodgram/domain"
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
		&entities.Follow{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *entities.User {
	u := &entities.User{ID: uuid.New(), Email: username + "@example.com", Username: username}
	require.NoError(t, db.Create(u).Error)
	return u
}

func follow(t *testing.T, db *gorm.DB, follower, author *entities.User) {
	require.NoError(t, db.Create(&entities.Follow{
		ID:       uuid.New(),
		UserID:   follower.ID,
		AuthorID: author.ID,
	}).Error)
}

func TestGetProfile(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(NewUserRepository(db))
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	follow(t, db, alice, bob)

	profile, err := service.GetProfile(ctx, bob.ID.String(), alice.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "bob", profile.Username)
	assert.True(t, profile.IsSubscribed)

	profile, err = service.GetProfile(ctx, alice.ID.String(), bob.ID.String())
	require.NoError(t, err)
	assert.False(t, profile.IsSubscribed)

	_, err = service.GetProfile(ctx, uuid.NewString(), alice.ID.String())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestGetSubscriptions(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(NewUserRepository(db))
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")

	require.NoError(t, db.Create(&entities.Recipe{
		ID: uuid.New(), AuthorID: bob.ID, Name: "soup", Text: "t", CookingTime: 5,
	}).Error)
	require.NoError(t, db.Create(&entities.Recipe{
		ID: uuid.New(), AuthorID: bob.ID, Name: "stew", Text: "t", CookingTime: 5,
	}).Error)

	follow(t, db, alice, bob)
	follow(t, db, alice, carol)

	res, err := service.GetSubscriptions(ctx, alice.ID.String(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Total)
	require.Len(t, res.Subscriptions, 2)

	byUsername := map[string]domain.SubscriptionResponse{}
	for _, sub := range res.Subscriptions {
		byUsername[sub.Username] = sub
	}
	assert.Equal(t, int64(2), byUsername["bob"].RecipesCount)
	assert.Len(t, byUsername["bob"].Recipes, 2)
	assert.Equal(t, int64(0), byUsername["carol"].RecipesCount)
	assert.True(t, byUsername["bob"].IsSubscribed)
}

func TestGetSubscriptionsEmpty(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(NewUserRepository(db))
	ctx := context.Background()

	alice := createUser(t, db, "alice")

	res, err := service.GetSubscriptions(ctx, alice.ID.String(), 1, 10)
	require.NoError(t, err)
	assert.Zero(t, res.Total)
	assert.Empty(t, res.Subscriptions)
}
