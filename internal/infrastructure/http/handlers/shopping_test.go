package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/recipehub/recipehub/internal/application/shopping"
	"github.com/recipehub/recipehub/internal/domain/catalog"
	"github.com/recipehub/recipehub/internal/infrastructure/persistence/memory"
	"github.com/recipehub/recipehub/test/testutils"
)

type stubCatalog struct {
	recipes []catalog.Recipe
}

func (s *stubCatalog) All() []catalog.Recipe { return s.recipes }

func (s *stubCatalog) BySlug(slug string) (catalog.Recipe, bool) {
	for _, r := range s.recipes {
		if r.Slug == slug {
			return r, true
		}
	}
	return catalog.Recipe{}, false
}

func (s *stubCatalog) Slugs() map[string]bool {
	out := make(map[string]bool, len(s.recipes))
	for _, r := range s.recipes {
		out[r.Slug] = true
	}
	return out
}

// newShoppingRouter wires the shopping handlers behind a fake auth
// middleware that injects the given user.
func newShoppingRouter(t *testing.T, userID uuid.UUID) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := shopping.NewShoppingService(
		&stubCatalog{recipes: []catalog.Recipe{
			testutils.RecipeFixture("beef-tacos", "1 lb ground beef", "1 onion, diced"),
		}},
		memory.NewPantryRepository(),
		memory.NewMealPlanRepository(),
		memory.NewShoppingListRepository(),
		zap.NewNop(),
	)
	h := NewShoppingHandlers(svc, zap.NewNop())

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
	})
	router.POST("/shopping/:weekKey/generate", h.Generate)
	router.GET("/shopping/:weekKey", h.GetForWeek)
	router.POST("/shopping/:weekKey/items", h.AddManualItem)
	router.POST("/shopping/items/:id/toggle", h.ToggleItem)
	router.DELETE("/shopping/items/:id", h.RemoveManualItem)
	return router
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGenerateEndpoint(t *testing.T) {
	router := newShoppingRouter(t, uuid.New())

	w := doJSON(router, http.MethodPost, "/shopping/2026-W09/generate", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Title string `json:"Title"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Shopping List (2026-W09)", resp.Data.Title)
}

func TestGenerateEndpointInvalidWeekKey(t *testing.T) {
	router := newShoppingRouter(t, uuid.New())

	w := doJSON(router, http.MethodPost, "/shopping/banana/generate", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Error)
}

func TestGetForWeekEndpointEmpty(t *testing.T) {
	router := newShoppingRouter(t, uuid.New())

	w := doJSON(router, http.MethodGet, "/shopping/2026-W09", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Data, "no list yet serializes as null data")
}

func TestManualItemLifecycleEndpoints(t *testing.T) {
	router := newShoppingRouter(t, uuid.New())

	w := doJSON(router, http.MethodPost, "/shopping/2026-W09/items", `{"name":"paper towels"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Data struct {
			ID       uuid.UUID `json:"ID"`
			IsManual bool      `json:"IsManual"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.True(t, created.Data.IsManual)

	w = doJSON(router, http.MethodPost, "/shopping/items/"+created.Data.ID.String()+"/toggle", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodDelete, "/shopping/items/"+created.Data.ID.String(), "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodDelete, "/shopping/items/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodDelete, "/shopping/items/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddManualItemValidation(t *testing.T) {
	router := newShoppingRouter(t, uuid.New())

	w := doJSON(router, http.MethodPost, "/shopping/2026-W09/items", `{"name":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
