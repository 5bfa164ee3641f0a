package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/recipehub/recipehub/internal/domain/catalog"
	"github.com/recipehub/recipehub/internal/infrastructure/persistence/memory"
	"github.com/recipehub/recipehub/internal/ports/inbound"
	"github.com/recipehub/recipehub/pkg/errors"
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

func newTestService(t *testing.T) (*UserService, *memory.CacheRepository) {
	t.Helper()
	cache := memory.NewCacheRepository()
	svc := NewUserService(
		memory.NewUserRepository(),
		&stubCatalog{recipes: []catalog.Recipe{
			testutils.RecipeFixture("beef-tacos", "1 lb ground beef"),
			testutils.RecipeFixture("greek-salad", "2 tomatoes"),
		}},
		cache,
		"test-secret",
		time.Hour,
		zap.NewNop(),
	)
	return svc, cache
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	result, err := svc.Register(ctx, inbound.RegisterCommand{
		Email:    "Ana@Example.com",
		Name:     "Ana",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.Equal(t, "ana@example.com", result.User.Email, "emails are stored lower-cased")
	assert.NotNil(t, result.User.Favorites, "favorites serialize as an empty list, not null")

	login, err := svc.Login(ctx, inbound.LoginCommand{
		Email:    "ana@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, login.User.ID)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, inbound.RegisterCommand{
		Email: "ana@example.com", Name: "Ana", Password: "short",
	})
	require.Error(t, err)
	assert.Equal(t, errors.CodeValidationFailed, errors.GetCode(err))

	_, err = svc.Register(ctx, inbound.RegisterCommand{
		Email: "not-an-email", Name: "Ana", Password: "correct horse",
	})
	require.Error(t, err)
	assert.Equal(t, errors.CodeValidationFailed, errors.GetCode(err))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, inbound.RegisterCommand{
		Email: "ana@example.com", Name: "Ana", Password: "correct horse",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, inbound.RegisterCommand{
		Email: "ana@example.com", Name: "Other Ana", Password: "correct horse",
	})
	require.Error(t, err)
	assert.Equal(t, errors.CodeEmailAlreadyExists, errors.GetCode(err))
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, inbound.RegisterCommand{
		Email: "ana@example.com", Name: "Ana", Password: "correct horse",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, inbound.LoginCommand{Email: "ana@example.com", Password: "wrong"})
	assert.Equal(t, errors.CodeInvalidCredentials, errors.GetCode(err))

	_, err = svc.Login(ctx, inbound.LoginCommand{Email: "nobody@example.com", Password: "correct horse"})
	assert.Equal(t, errors.CodeInvalidCredentials, errors.GetCode(err),
		"unknown email and bad password are indistinguishable")
}

func TestVerifyToken(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	result, err := svc.Register(ctx, inbound.RegisterCommand{
		Email: "ana@example.com", Name: "Ana", Password: "correct horse",
	})
	require.NoError(t, err)

	claims, err := svc.VerifyToken(ctx, result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)

	_, err = svc.VerifyToken(ctx, "not.a.token")
	require.Error(t, err)
	assert.Equal(t, errors.CodeUnauthorized, errors.GetCode(err))
}

func TestVerifyTokenRejectsRevokedSession(t *testing.T) {
	svc, cache := newTestService(t)
	ctx := context.Background()

	result, err := svc.Register(ctx, inbound.RegisterCommand{
		Email: "ana@example.com", Name: "Ana", Password: "correct horse",
	})
	require.NoError(t, err)

	claims, err := svc.VerifyToken(ctx, result.AccessToken)
	require.NoError(t, err)

	require.NoError(t, cache.Delete(ctx, "session:"+claims.ID))

	_, err = svc.VerifyToken(ctx, result.AccessToken)
	require.Error(t, err)
	assert.Equal(t, errors.CodeUnauthorized, errors.GetCode(err))
}

func TestToggleFavorite(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	result, err := svc.Register(ctx, inbound.RegisterCommand{
		Email: "ana@example.com", Name: "Ana", Password: "correct horse",
	})
	require.NoError(t, err)
	userID := result.User.ID

	favorite, err := svc.ToggleFavorite(ctx, userID, "beef-tacos")
	require.NoError(t, err)
	assert.True(t, favorite)

	recipes, err := svc.ListFavorites(ctx, userID)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "beef-tacos", recipes[0].Slug)

	favorite, err = svc.ToggleFavorite(ctx, userID, "beef-tacos")
	require.NoError(t, err)
	assert.False(t, favorite)

	recipes, err = svc.ListFavorites(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, recipes)

	_, err = svc.ToggleFavorite(ctx, userID, "no-such-recipe")
	require.Error(t, err)
	assert.Equal(t, errors.CodeRecipeNotFound, errors.GetCode(err))
}
