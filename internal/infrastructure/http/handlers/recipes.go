package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/recipehub/recipehub/internal/ports/inbound"
)

// RecipeHandlers handles catalog browsing, matching, and favorites.
type RecipeHandlers struct {
	catalogService inbound.CatalogService
	userService    inbound.UserService
	logger         *zap.Logger
}

// NewRecipeHandlers creates the recipe handlers.
func NewRecipeHandlers(
	catalogService inbound.CatalogService,
	userService inbound.UserService,
	logger *zap.Logger,
) *RecipeHandlers {
	return &RecipeHandlers{
		catalogService: catalogService,
		userService:    userService,
		logger:         logger.Named("recipe-handlers"),
	}
}

// List handles GET /api/v1/recipes
func (h *RecipeHandlers) List(c *gin.Context) {
	filter := inbound.RecipeFilter{
		Query:    c.Query("q"),
		Tag:      c.Query("tag"),
		Category: c.Query("category"),
	}
	respondOK(c, h.catalogService.ListRecipes(filter))
}

// Get handles GET /api/v1/recipes/:slug
func (h *RecipeHandlers) Get(c *gin.Context) {
	recipe, err := h.catalogService.GetRecipe(c.Param("slug"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, recipe)
}

// Match handles POST /api/v1/recipes/match
func (h *RecipeHandlers) Match(c *gin.Context) {
	var req struct {
		Ingredients []string `json:"ingredients" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "ingredients array is required")
		return
	}

	respondOK(c, h.catalogService.MatchByIngredients(req.Ingredients))
}

// ToggleFavorite handles POST /api/v1/recipes/:slug/favorite
func (h *RecipeHandlers) ToggleFavorite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondBadRequest(c, "missing authentication")
		return
	}

	favorite, err := h.userService.ToggleFavorite(c.Request.Context(), userID, c.Param("slug"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, gin.H{"slug": c.Param("slug"), "favorite": favorite})
}

// ListFavorites handles GET /api/v1/favorites
func (h *RecipeHandlers) ListFavorites(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondBadRequest(c, "missing authentication")
		return
	}

	recipes, err := h.userService.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, recipes)
}
