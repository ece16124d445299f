package cronjob

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/portfolio-7b282/portfolio-backend/internal/projects/repository"
)

// Warmer periodically re-primes the public project listing cache so the
// marketing page rarely waits on a cold store read.
type Warmer struct {
	repo *repository.Repo
	spec string
}

func NewWarmer(repo *repository.Repo, spec string) *Warmer {
	return &Warmer{repo: repo, spec: spec}
}

// Start schedules the warming job and runs one warm-up immediately.
func (w *Warmer) Start() (*cron.Cron, error) {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc(w.spec, w.warm)
	if err != nil {
		log.Printf("Failed to create cache warmer job: %v", err)
		return nil, err
	}

	go w.warm()

	log.Printf("Cache warmer started (schedule %q)", w.spec)
	c.Start()
	return c, nil
}

func (w *Warmer) warm() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := w.repo.WarmPublicCache(ctx); err != nil {
		log.Printf("Cache warm failed: %v", err)
	}
}
