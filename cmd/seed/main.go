package main

import (
	"errors"
	"flag"
	"os"
	"time"

	"EportsTech/database/postgres"
	"EportsTech/internal/api/auth"
	authRepository "EportsTech/internal/api/auth/repository"
	authService "EportsTech/internal/api/auth/service"
	contentRepository "EportsTech/internal/api/content/repository"
	contentService "EportsTech/internal/api/content/service"
	syncService "EportsTech/internal/api/sync/service"
	"EportsTech/internal/config"
	"EportsTech/internal/defaults"
	"EportsTech/pkg/bcrypt"
	contextPkg "EportsTech/pkg/context"
	"EportsTech/pkg/log"
	"EportsTech/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func main() {
	migrate := flag.Bool("migrate", false, "apply the schema before seeding")
	skipContent := flag.Bool("skip-content", false, "do not push the bundled services and configurator items")
	adminEmail := flag.String("admin-email", os.Getenv("ADMIN_EMAIL"), "create an admin with this e-mail")
	flag.Parse()

	logger := log.NewLogger()
	config.LoadEnv(logger)

	db, err := postgres.New()
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	ctx = contextPkg.WithRequestID(ctx, "seed")

	if *migrate {
		if err := postgres.Migrate(ctx, db); err != nil {
			logger.Fatalf("Failed to apply schema: %v", err)
		}
		logger.Info("Schema applied")
	}

	if !*skipContent {
		contentRepo := contentRepository.New(db, logger)
		contents := contentService.NewContentService(logger, contentRepo, nil)
		syncer := syncService.NewSyncService(logger, contents)

		counts, err := syncer.Sync(ctx, defaults.Services(), defaults.ConfiguratorItems())
		if err != nil {
			logger.Fatalf("Failed to seed content: %v", err)
		}
		logger.WithFields(logrus.Fields{
			"services_count": counts.ServicesCount,
			"items_count":    counts.ItemsCount,
		}).Info("Bundled content seeded")
	}

	if *adminEmail != "" {
		password := os.Getenv("ADMIN_PASSWORD")
		if password == "" {
			logger.Fatal("ADMIN_PASSWORD must be set to create an admin")
		}

		authRepo := authRepository.New(db, logger)
		auths := authService.NewAuthService(logger, authRepo, bcrypt.New(), utils.New())

		admin, err := auths.CreateAdmin(ctx, auth.CreateAdminRequest{Email: *adminEmail, Password: password})
		switch {
		case errors.Is(err, auth.ErrEmailAlreadyExists):
			logger.Infof("Admin %s already exists", *adminEmail)
		case err != nil:
			logger.Fatalf("Failed to create admin: %v", err)
		default:
			logger.WithField("admin_id", admin.ID).Info("Admin created")
		}
	}
}
