package config

import (
	"os"
	"strings"

	"EportsTech/internal/entity"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// LoadEnv reads .env when present; a missing file is tolerated.
func LoadEnv(logger *logrus.Logger) {
	if err := godotenv.Load(); err != nil {
		if os.Getenv("APP_ENV") == "production" {
			logger.Info("No .env file, using process environment")
			return
		}
		logger.Warnf("Error loading .env file: %v", err)
	}
}

func DefaultLanguage() entity.Language {
	return entity.ParseLanguage(os.Getenv("DEFAULT_LANGUAGE"), entity.LanguageES)
}

func Enabled(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
