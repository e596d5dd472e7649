package jwtPkg

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"EportsTech/internal/entity"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

const (
	AccessTokenSecret = "JWT_ACCESS_TOKEN_SECRET"
	issuer            = "eportstech-admin"
	AdminLocalsKey    = "admin"
)

var (
	ErrMissingSecret = errors.New("JWT secret not configured")
	ErrMissingHeader = errors.New("empty Authorization header")
	ErrBadFormat     = errors.New("invalid Authorization format")
	ErrBadClaims     = errors.New("token claims are missing required fields")
)

// Sign issues an HS256 token carrying data as extra claims.
func Sign(data map[string]interface{}, expiresIn time.Duration) (string, int64, error) {
	expiredAt := time.Now().Add(expiresIn).Unix()

	secret := os.Getenv(AccessTokenSecret)
	if secret == "" {
		return "", 0, ErrMissingSecret
	}

	claims := jwt.MapClaims{
		"exp": expiredAt,
		"iat": time.Now().Unix(),
		"iss": issuer,
	}
	for k, v := range data {
		claims[k] = v
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	accessToken, err := token.SignedString([]byte(secret))
	if err != nil {
		logrus.WithError(err).Error("Failed to sign token")
		return "", 0, err
	}

	return accessToken, expiredAt, nil
}

// Parse verifies signature, expiry and issuer.
func Parse(accessToken string, secretEnvKey string) (*jwt.Token, error) {
	secret := os.Getenv(secretEnvKey)
	if secret == "" {
		return nil, ErrMissingSecret
	}

	return jwt.Parse(accessToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(issuer), jwt.WithExpirationRequired())
}

func VerifyTokenHeader(c *fiber.Ctx, secretEnvKey string) (*jwt.Token, error) {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return nil, ErrMissingHeader
	}

	accessToken, found := strings.CutPrefix(header, "Bearer ")
	accessToken = strings.TrimSpace(accessToken)
	if !found || accessToken == "" {
		return nil, ErrBadFormat
	}

	return Parse(accessToken, secretEnvKey)
}

func AdminFromClaims(token *jwt.Token) (entity.AdminLoginData, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return entity.AdminLoginData{}, ErrBadClaims
	}

	id, _ := claims["id"].(string)
	email, _ := claims["email"].(string)
	if id == "" || email == "" {
		return entity.AdminLoginData{}, ErrBadClaims
	}

	return entity.AdminLoginData{ID: id, Email: email}, nil
}

func GetAdminLoginData(c *fiber.Ctx) (entity.AdminLoginData, error) {
	admin, ok := c.Locals(AdminLocalsKey).(entity.AdminLoginData)
	if !ok {
		return entity.AdminLoginData{}, fiber.ErrUnauthorized
	}

	return admin, nil
}
