package main

import (
	"context"
	"log"
	"time"

	"github.com/portfolio-7b282/portfolio-backend/config"
	adminservice "github.com/portfolio-7b282/portfolio-backend/internal/admin/service"
	"github.com/portfolio-7b282/portfolio-backend/internal/auth"
	authservice "github.com/portfolio-7b282/portfolio-backend/internal/auth/service"
	"github.com/portfolio-7b282/portfolio-backend/internal/bootstrap"
	contactsrepo "github.com/portfolio-7b282/portfolio-backend/internal/contacts/repository"
	contactsservice "github.com/portfolio-7b282/portfolio-backend/internal/contacts/service"
	"github.com/portfolio-7b282/portfolio-backend/internal/notify"
	projectscron "github.com/portfolio-7b282/portfolio-backend/internal/projects/cron"
	projectsrepo "github.com/portfolio-7b282/portfolio-backend/internal/projects/repository"
	"github.com/portfolio-7b282/portfolio-backend/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	clients, err := auth.InitializeFirebase(ctx, &cfg.Firebase)
	if err != nil {
		log.Fatalf("firebase: %v", err)
	}
	defer clients.Firestore.Close()

	redisClient, err := bootstrap.OpenRedis(ctx, &cfg.Cache)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	docStore := store.NewFirestoreStore(clients.Firestore)
	objStore := store.NewBucketStore(clients.Bucket, cfg.Firebase.StorageBucket)

	cache := projectsrepo.NewCache(redisClient, time.Duration(cfg.Cache.TTLSeconds)*time.Second)
	projects := projectsrepo.NewRepo(docStore, cache)
	contacts := contactsrepo.NewRepo(docStore)

	var notifier notify.Notifier = notify.NopNotifier{}
	if cfg.Notify.ResendAPIKey != "" {
		notifier = notify.NewResendNotifier(cfg.Notify.ResendAPIKey, cfg.Notify.FromAddress, cfg.Notify.OwnerAddress)
		log.Println("contact notifications enabled")
	}

	contactService := contactsservice.NewService(contacts, notifier)
	dashboard := adminservice.NewDashboard(projects, contacts, objStore)
	sessions := authservice.NewSessionService(clients.Auth)

	if redisClient != nil {
		warmer := projectscron.NewWarmer(projects, cfg.Cache.WarmerCron)
		if _, err := warmer.Start(); err != nil {
			log.Printf("cache warmer disabled: %v", err)
		}
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    "portfolio-backend",
		Version:        cfg.App.Version,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Verifier:       clients.Auth,
		Sessions:       sessions,
		Projects:       projects,
		Contacts:       contactService,
		Dashboard:      dashboard,
		Cache:          redisClient,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
