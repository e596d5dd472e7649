package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"EportsTech/database/postgres"
	authHandler "EportsTech/internal/api/auth/handler"
	authRepository "EportsTech/internal/api/auth/repository"
	authService "EportsTech/internal/api/auth/service"
	chatHandler "EportsTech/internal/api/chat/handler"
	chatService "EportsTech/internal/api/chat/service"
	configuratorHandler "EportsTech/internal/api/configurator/handler"
	configuratorService "EportsTech/internal/api/configurator/service"
	contentHandler "EportsTech/internal/api/content/handler"
	contentRepository "EportsTech/internal/api/content/repository"
	contentService "EportsTech/internal/api/content/service"
	leadHandler "EportsTech/internal/api/lead/handler"
	leadRepository "EportsTech/internal/api/lead/repository"
	leadService "EportsTech/internal/api/lead/service"
	mediaHandler "EportsTech/internal/api/media/handler"
	mediaService "EportsTech/internal/api/media/service"
	syncHandler "EportsTech/internal/api/sync/handler"
	syncService "EportsTech/internal/api/sync/service"
	"EportsTech/internal/entity"
	"EportsTech/internal/middleware"
	"EportsTech/pkg/bcrypt"
	"EportsTech/pkg/gemini"
	"EportsTech/pkg/redis"
	"EportsTech/pkg/s3"
	"EportsTech/pkg/smtp"
	"EportsTech/pkg/utils"
	"EportsTech/pkg/whatsapp"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine         *fiber.App
	db             *sqlx.DB
	log            *logrus.Logger
	middleware     middleware.Middleware
	validator      *validator.Validate
	utils          utils.IUtils
	bcryptUtils    bcrypt.IBcrypt
	handlers       []handler
	redisServer    redis.IRedis
	smtpMailer     smtp.ItfSmtp
	whatsappClient whatsapp.IWhatsappSender
	geminiClient   gemini.IGemini
	s3Client       s3.ItfS3
	defaultLang    entity.Language
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{defaultLang: DefaultLanguage()}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.db == nil {
		return nil, fmt.Errorf("database is required")
	}
	if server.redisServer == nil {
		return nil, fmt.Errorf("redis is required")
	}
	if server.middleware == nil {
		return nil, fmt.Errorf("middleware is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

// WithMigrations applies the embedded schema. It must follow WithDatabase.
func WithMigrations() ServerOption {
	return func(s *Server) error {
		if s.db == nil {
			return fmt.Errorf("database must be initialized before migrations")
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return postgres.Migrate(ctx, s.db)
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithSMTPMailer(smtpMailer smtp.ItfSmtp) ServerOption {
	return func(s *Server) error {
		s.smtpMailer = smtpMailer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log, middleware.NewJWTAuthenticator())
		return nil
	}
}

// WithS3Client leaves media upload disabled when the bucket is not
// configured instead of failing startup.
func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Warnf("Media upload disabled: %v", err)
			}
			return nil
		}
		s.s3Client = client
		return nil
	}
}

// WithWhatsappClient connects only when WHATSAPP_ENABLED is set; a failed
// connection leaves lead notifications on e-mail.
func WithWhatsappClient() ServerOption {
	return func(s *Server) error {
		if !Enabled("WHATSAPP_ENABLED") {
			return nil
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		client, err := whatsapp.New(ctx, 2*time.Minute)
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize WhatsApp client: %v", err)
			}
			return nil
		}
		s.whatsappClient = client
		return nil
	}
}

func WithGeminiClient() ServerOption {
	return func(s *Server) error {
		client, err := gemini.NewGeminiClient()
		if err != nil {
			if s.log != nil {
				s.log.Warnf("Chat assistant disabled: %v", err)
			}
			return nil
		}
		s.geminiClient = client
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Content Domain
	contentRepo := contentRepository.New(s.db, s.log)
	contentServices := contentService.NewContentService(s.log, contentRepo, s.redisServer)
	contentHandlers := contentHandler.New(s.log, s.validator, s.middleware, contentServices, s.defaultLang)

	// Configurator
	configuratorServices := configuratorService.NewConfiguratorService(s.log, s.redisServer, contentServices, s.utils, configuratorService.DefaultSessionTTL)
	configuratorHandlers := configuratorHandler.New(s.log, s.validator, s.middleware, configuratorServices, s.defaultLang)

	// Leads
	leadRepo := leadRepository.New(s.db, s.log)
	notifier := leadService.NewNotifier(s.log, contentServices, s.smtpMailer, s.whatsappClient)
	leadServices := leadService.NewLeadService(s.log, leadRepo, s.redisServer, contentServices, notifier, s.utils)
	leadHandlers := leadHandler.New(s.log, s.validator, s.middleware, leadServices)

	// Chat
	chatServices := chatService.NewChatService(s.log, s.geminiClient, contentServices)
	chatHandlers := chatHandler.New(s.log, s.validator, s.middleware, chatServices, s.defaultLang)

	// Auth Domain
	authRepo := authRepository.New(s.db, s.log)
	authServices := authService.NewAuthService(s.log, authRepo, s.bcryptUtils, s.utils)
	authHandlers := authHandler.New(s.log, authServices, s.validator, s.middleware)

	// Sync
	syncServices := syncService.NewSyncService(s.log, contentServices)
	syncHandlers := syncHandler.New(s.log, s.validator, s.middleware, syncServices)

	// Media
	mediaServices := mediaService.NewMediaService(s.log, s.s3Client, s.utils)
	mediaHandlers := mediaHandler.New(s.log, s.validator, s.middleware, mediaServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers,
		contentHandlers,
		configuratorHandlers,
		leadHandlers,
		chatHandlers,
		authHandlers,
		syncHandlers,
		mediaHandlers,
	)
}

func (s *Server) Run() error {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewLoggingMiddleware())
	router := s.engine.Group("/api/v1")

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	if err := s.engine.Listen(fmt.Sprintf(":%s", port)); err != nil {
		return err
	}

	return nil
}

// Shutdown drains in-flight requests and releases outbound clients.
func (s *Server) Shutdown(timeout time.Duration) error {
	var errs []error

	if err := s.engine.ShutdownWithTimeout(timeout); err != nil {
		errs = append(errs, err)
	}
	if s.whatsappClient != nil {
		if err := s.whatsappClient.Disconnect(); err != nil {
			errs = append(errs, err)
		}
	}
	if s.geminiClient != nil {
		if err := s.geminiClient.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := s.db.Close(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
