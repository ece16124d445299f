package repository

import (
	"context"
	"log"

	"github.com/portfolio-7b282/portfolio-backend/internal/projects/domain"
	"github.com/portfolio-7b282/portfolio-backend/internal/store"
)

const Collection = "projects"

// Repo mirrors the "projects" collection. Admin reads surface store errors
// untouched; the public read falls back to the fixed sample dataset when the
// store is unreachable or the collection is still empty.
type Repo struct {
	docs  store.DocumentStore
	cache *Cache
}

func NewRepo(docs store.DocumentStore, cache *Cache) *Repo {
	return &Repo{docs: docs, cache: cache}
}

// List reads the full collection. Malformed documents are logged and
// skipped rather than failing the whole read.
func (r *Repo) List(ctx context.Context) ([]domain.Project, error) {
	docs, err := r.docs.ListAll(ctx, Collection)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Project, 0, len(docs))
	for _, doc := range docs {
		p, err := domain.Decode(doc)
		if err != nil {
			log.Printf("skipping project document: %v", err)
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// ListPublic serves the marketing page: cached when possible, and the
// sample dataset when the store read fails or comes back empty. The
// fallback is never cached so a recovered store takes over immediately.
func (r *Repo) ListPublic(ctx context.Context) []domain.Project {
	if cached, ok := r.cache.Get(ctx); ok {
		return cached
	}

	projects, err := r.List(ctx)
	if err != nil {
		log.Printf("Error fetching projects, serving sample data: %v", err)
		return domain.SampleProjects()
	}
	if len(projects) == 0 {
		return domain.SampleProjects()
	}

	r.cache.Set(ctx, projects)
	return projects
}

// WarmPublicCache re-primes the public listing cache. Used by the cron
// warmer; a failed or empty read leaves the cache untouched.
func (r *Repo) WarmPublicCache(ctx context.Context) error {
	projects, err := r.List(ctx)
	if err != nil {
		return err
	}
	if len(projects) > 0 {
		r.cache.Set(ctx, projects)
	}
	return nil
}

func (r *Repo) Create(ctx context.Context, fields map[string]interface{}) (string, error) {
	id, err := r.docs.Create(ctx, Collection, fields)
	if err != nil {
		return "", err
	}
	r.cache.Invalidate(ctx)
	return id, nil
}

func (r *Repo) Overwrite(ctx context.Context, id string, fields map[string]interface{}) error {
	if err := r.docs.Overwrite(ctx, Collection, id, fields); err != nil {
		return err
	}
	r.cache.Invalidate(ctx)
	return nil
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	if err := r.docs.Delete(ctx, Collection, id); err != nil {
		return err
	}
	r.cache.Invalidate(ctx)
	return nil
}
