package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"EportsTech/internal/config"
	"EportsTech/pkg/log"
	"EportsTech/pkg/redis"
	"EportsTech/pkg/smtp"
)

func main() {
	logger := log.NewLogger()
	config.LoadEnv(logger)

	fiberApp := config.NewFiber(logger)
	validator := config.NewValidator()
	redisServer := redis.New()
	smtpMailer := smtp.New()

	options := []config.ServerOption{
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithDatabase(),
	}
	if config.Enabled("DB_AUTO_MIGRATE") {
		options = append(options, config.WithMigrations())
	}
	options = append(options,
		config.WithRedisServer(redisServer),
		config.WithSMTPMailer(smtpMailer),
		config.WithMiddleware(),
		config.WithS3Client(),
		config.WithWhatsappClient(),
		config.WithGeminiClient(),
		config.WithBcryptUtils(),
		config.WithUtils(),
	)

	server, err := config.NewServer(options...)
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterHandler()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.Info("Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")

	if err := server.Shutdown(10 * time.Second); err != nil {
		logger.Errorf("Shutdown finished with errors: %v", err)
	}
}
