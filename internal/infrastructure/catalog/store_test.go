package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreParsesEmbeddedDataset(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)
	require.NotEmpty(t, store.All())

	tacos, ok := store.BySlug("beef-tacos")
	require.True(t, ok)
	assert.Equal(t, "Beef Tacos", tacos.Title)
	assert.NotEmpty(t, tacos.Ingredients)
	assert.NotEmpty(t, tacos.Steps)
	assert.Greater(t, tacos.TotalTime, 0)

	assert.True(t, store.Slugs()["beef-tacos"])
}

func TestEmbeddedDatasetIntegrity(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	for _, recipe := range store.All() {
		assert.NotEmpty(t, recipe.Slug)
		assert.NotEmpty(t, recipe.Title, "recipe %s", recipe.Slug)
		assert.NotEmpty(t, recipe.Ingredients, "recipe %s", recipe.Slug)
		assert.NotEmpty(t, recipe.Steps, "recipe %s", recipe.Slug)
		assert.Equal(t, recipe.TotalTime, recipe.PrepTime+recipe.CookTime, "recipe %s", recipe.Slug)
	}
}

func TestNewStoreFromJSON(t *testing.T) {
	store, err := NewStoreFromJSON([]byte(`{
		"recipes": [
			{"slug": "a", "title": "A", "ingredients": ["x"], "steps": ["y"]},
			{"slug": "b", "title": "B", "ingredients": ["x"], "steps": ["y"]}
		]
	}`))
	require.NoError(t, err)
	assert.Len(t, store.All(), 2)

	_, err = NewStoreFromJSON([]byte(`{"recipes": []}`))
	require.Error(t, err)

	_, err = NewStoreFromJSON([]byte(`{
		"recipes": [
			{"slug": "a", "title": "A"},
			{"slug": "a", "title": "A again"}
		]
	}`))
	require.Error(t, err, "duplicate slugs are rejected")

	_, err = NewStoreFromJSON([]byte(`not json`))
	require.Error(t, err)
}
