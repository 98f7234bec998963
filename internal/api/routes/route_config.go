package routes

import (
	"foodgram/internal/api/handlers"
	"foodgram/internal/middleware"
	"foodgram/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	RecipeHandler   handlers.RecipeHandler
	RelationHandler handlers.RelationHandler
	ShoppingHandler handlers.ShoppingHandler
	CatalogHandler  handlers.CatalogHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Users()
	c.Recipes()
	c.Catalog()
	c.GuestRoute()
}

func (c *Config) Users() {
	users := c.App.Group("/api/v1/users", c.Middleware.AuthMiddleware(c.JWTService))
	{
		users.Get("/subscriptions", c.UserHandler.GetSubscriptions)
		users.Get("/:id", c.UserHandler.GetProfile)
		users.Post("/:id/subscribe", c.RelationHandler.Subscribe)
		users.Delete("/:id/subscribe", c.RelationHandler.Unsubscribe)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.JWTService))

	recipes.Get("/download_shopping_cart", c.ShoppingHandler.DownloadShoppingList)

	// Basic CRUD operations
	recipes.Post("", c.RecipeHandler.CreateRecipe)
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
	recipes.Patch("/:id", c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)

	// Toggle relations
	recipes.Post("/:id/favorite", c.RelationHandler.AddFavorite)
	recipes.Delete("/:id/favorite", c.RelationHandler.RemoveFavorite)
	recipes.Post("/:id/shopping_cart", c.RelationHandler.AddToCart)
	recipes.Delete("/:id/shopping_cart", c.RelationHandler.RemoveFromCart)
}

func (c *Config) Catalog() {
	tags := c.App.Group("/api/v1/tags")
	tags.Get("", c.CatalogHandler.GetTags)
	tags.Get("/:id", c.CatalogHandler.GetTagByID)

	ingredients := c.App.Group("/api/v1/ingredients")
	ingredients.Get("", c.CatalogHandler.GetIngredients)
	ingredients.Get("/:id", c.CatalogHandler.GetIngredientByID)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
