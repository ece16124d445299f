package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portfolio-7b282/portfolio-backend/internal/projects/domain"
	"github.com/portfolio-7b282/portfolio-backend/internal/store/storetest"
)

func seedProject(docs *storetest.FakeDocumentStore, id, title string) {
	docs.Seed(Collection, id, map[string]interface{}{
		"title":        title,
		"description":  "desc",
		"category":     "web",
		"technologies": []interface{}{"Go"},
	})
}

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewCache(client, time.Minute), mr
}

func TestRepoList(t *testing.T) {
	ctx := context.Background()

	t.Run("returns decoded projects", func(t *testing.T) {
		docs := storetest.NewFakeDocumentStore()
		seedProject(docs, "p1", "One")
		seedProject(docs, "p2", "Two")

		repo := NewRepo(docs, nil)
		projects, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, projects, 2)
		assert.Equal(t, "One", projects[0].Title)
	})

	t.Run("skips malformed documents", func(t *testing.T) {
		docs := storetest.NewFakeDocumentStore()
		seedProject(docs, "p1", "Good")
		docs.Seed(Collection, "p2", map[string]interface{}{"category": "web"}) // no title

		repo := NewRepo(docs, nil)
		projects, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, projects, 1)
		assert.Equal(t, "Good", projects[0].Title)
	})

	t.Run("surfaces store errors untouched", func(t *testing.T) {
		docs := storetest.NewFakeDocumentStore()
		docs.ErrList = errors.New("store down")

		repo := NewRepo(docs, nil)
		_, err := repo.List(ctx)
		require.Error(t, err)
	})
}

func TestRepoListPublic(t *testing.T) {
	ctx := context.Background()

	t.Run("serves store data when present", func(t *testing.T) {
		docs := storetest.NewFakeDocumentStore()
		seedProject(docs, "p1", "Real Project")

		repo := NewRepo(docs, nil)
		projects := repo.ListPublic(ctx)
		require.Len(t, projects, 1)
		assert.Equal(t, "Real Project", projects[0].Title)
	})

	t.Run("falls back to sample data when the read fails", func(t *testing.T) {
		docs := storetest.NewFakeDocumentStore()
		docs.ErrList = errors.New("store down")

		repo := NewRepo(docs, nil)
		projects := repo.ListPublic(ctx)
		assert.Equal(t, domain.SampleProjects(), projects)
	})

	t.Run("falls back to sample data when the collection is empty", func(t *testing.T) {
		repo := NewRepo(storetest.NewFakeDocumentStore(), nil)
		projects := repo.ListPublic(ctx)
		assert.Equal(t, domain.SampleProjects(), projects)
	})

	t.Run("caches real data but never the fallback", func(t *testing.T) {
		docs := storetest.NewFakeDocumentStore()
		cache, mr := newTestCache(t)
		repo := NewRepo(docs, cache)

		repo.ListPublic(ctx) // empty store: fallback, not cached
		assert.False(t, mr.Exists("portfolio:projects:public"))

		seedProject(docs, "p1", "Cached Project")
		repo.ListPublic(ctx)
		assert.True(t, mr.Exists("portfolio:projects:public"))

		// Subsequent reads come from the cache even if the store breaks.
		docs.ErrList = errors.New("store down")
		projects := repo.ListPublic(ctx)
		require.Len(t, projects, 1)
		assert.Equal(t, "Cached Project", projects[0].Title)
	})
}

func TestRepoMutationsInvalidateCache(t *testing.T) {
	ctx := context.Background()

	docs := storetest.NewFakeDocumentStore()
	cache, mr := newTestCache(t)
	repo := NewRepo(docs, cache)

	seedProject(docs, "p1", "Existing")
	repo.ListPublic(ctx)
	require.True(t, mr.Exists("portfolio:projects:public"))

	_, err := repo.Create(ctx, domain.AddFields(domain.FormInput{
		Title: "New", Description: "d", Category: "web", Technologies: "Go",
	}, ""))
	require.NoError(t, err)
	assert.False(t, mr.Exists("portfolio:projects:public"), "create must invalidate the cache")

	repo.ListPublic(ctx)
	require.True(t, mr.Exists("portfolio:projects:public"))
	require.NoError(t, repo.Delete(ctx, "p1"))
	assert.False(t, mr.Exists("portfolio:projects:public"), "delete must invalidate the cache")
}

func TestRepoWarmPublicCache(t *testing.T) {
	ctx := context.Background()

	docs := storetest.NewFakeDocumentStore()
	cache, mr := newTestCache(t)
	repo := NewRepo(docs, cache)

	// Empty store: nothing cached.
	require.NoError(t, repo.WarmPublicCache(ctx))
	assert.False(t, mr.Exists("portfolio:projects:public"))

	seedProject(docs, "p1", "Warm Me")
	require.NoError(t, repo.WarmPublicCache(ctx))
	assert.True(t, mr.Exists("portfolio:projects:public"))

	docs.ErrList = errors.New("store down")
	require.Error(t, repo.WarmPublicCache(ctx))
}

func TestNilCacheIsSafe(t *testing.T) {
	ctx := context.Background()

	var c *Cache
	_, ok := c.Get(ctx)
	assert.False(t, ok)
	c.Set(ctx, domain.SampleProjects())
	c.Invalidate(ctx)

	assert.Nil(t, NewCache(nil, time.Minute))
}
