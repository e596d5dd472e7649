package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	contextPkg "EportsTech/pkg/context"
	jwtPkg "EportsTech/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMiddleware(t *testing.T) Middleware {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	return New(log, NewJWTAuthenticator())
}

func TestTokenMiddleware(t *testing.T) {
	t.Setenv(jwtPkg.AccessTokenSecret, "test-secret")
	mw := newTestMiddleware(t)

	app := fiber.New()
	app.Get("/admin", mw.NewTokenMiddleware, func(c *fiber.Ctx) error {
		admin, err := jwtPkg.GetAdminLoginData(c)
		if err != nil {
			return err
		}
		return c.SendString(admin.ID + "|" + contextPkg.GetAdminID(c.UserContext()))
	})

	valid, _, err := jwtPkg.Sign(map[string]interface{}{"id": "01ADMIN", "email": "admin@eportstech.com"}, time.Hour)
	require.NoError(t, err)
	expired, _, err := jwtPkg.Sign(map[string]interface{}{"id": "01ADMIN", "email": "admin@eportstech.com"}, -time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "valid", header: "Bearer " + valid, want: fiber.StatusOK},
		{name: "missing", header: "", want: fiber.StatusUnauthorized},
		{name: "no scheme", header: valid, want: fiber.StatusUnauthorized},
		{name: "expired", header: "Bearer " + expired, want: fiber.StatusUnauthorized},
		{name: "garbage", header: "Bearer abc.def.ghi", want: fiber.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.header)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)

			if tt.want == fiber.StatusOK {
				body, err := io.ReadAll(resp.Body)
				require.NoError(t, err)
				assert.Equal(t, "01ADMIN|01ADMIN", string(body))
			}
		})
	}
}

func TestStrictRateLimiter(t *testing.T) {
	mw := newTestMiddleware(t)

	app := fiber.New()
	app.Post("/leads", mw.NewStrictRateLimiter, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})

	statuses := make([]int, 0, 12)
	for i := 0; i < 12; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/leads", nil), -1)
		require.NoError(t, err)
		statuses = append(statuses, resp.StatusCode)
	}

	assert.Equal(t, fiber.StatusCreated, statuses[0])
	assert.Equal(t, fiber.StatusTooManyRequests, statuses[len(statuses)-1])
}

func TestSyncKeyUnsetRejectsEverything(t *testing.T) {
	t.Setenv(SyncKeyEnv, "")
	mw := newTestMiddleware(t)

	app := fiber.New()
	app.Post("/sync", mw.NewSyncKeyMiddleware, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/sync", nil)
	req.Header.Set(SyncKeyHeader, "")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequestIDMiddleware(t *testing.T) {
	mw := newTestMiddleware(t)

	app := fiber.New()
	app.Use(mw.NewRequestIDMiddleware())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(mw.GetRequestID(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDKey, "caller-supplied")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "caller-supplied", resp.Header.Get(RequestIDKey))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	assert.Len(t, resp.Header.Get(RequestIDKey), 26)
}
