package contentHandler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"EportsTech/internal/api/content"
	contentService "EportsTech/internal/api/content/service"
	"EportsTech/internal/entity"
	"EportsTech/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuth struct{}

func (stubAuth) Authenticate(ctx *fiber.Ctx) (entity.AdminLoginData, error) {
	if ctx.Get(fiber.HeaderAuthorization) != "Bearer valid" {
		return entity.AdminLoginData{}, errors.New("invalid token")
	}
	return entity.AdminLoginData{ID: "admin-1"}, nil
}

// stubContent implements only what the tests call; anything else panics on
// the nil embedded interface.
type stubContent struct {
	contentService.IContentService

	brand       entity.BrandConfig
	brandStatus entity.CollectionStatus
	patch       []byte
	renderLang  entity.Language
}

func (s *stubContent) FetchBrandConfig(context.Context) (entity.BrandConfig, entity.CollectionStatus) {
	return s.brand, s.brandStatus
}

func (s *stubContent) UpdateBrandConfig(_ context.Context, patch []byte) (entity.BrandConfig, error) {
	s.patch = append([]byte(nil), patch...)
	if !strings.HasPrefix(string(patch), "{") {
		return entity.BrandConfig{}, content.ErrInvalidPatch
	}
	cfg := s.brand
	cfg.Version++
	return cfg, nil
}

func (s *stubContent) RenderServices(_ context.Context, lang entity.Language) content.RenderedServicesResponse {
	s.renderLang = lang
	return content.RenderedServicesResponse{Status: entity.CollectionOK, Language: lang, Services: []content.RenderedService{}}
}

func newTestApp(svc *stubContent) *fiber.App {
	log := logrus.New()
	log.SetOutput(io.Discard)

	app := fiber.New()
	New(log, validator.New(), middleware.New(log, stubAuth{}), svc, entity.LanguageES).Start(app)
	return app
}

func do(t *testing.T, app *fiber.App, req *http.Request) *http.Response {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestGetBrandConfigETag(t *testing.T) {
	svc := &stubContent{brand: entity.BrandConfig{SiteName: "EportsTech", Version: 3}, brandStatus: entity.CollectionOK}
	app := newTestApp(svc)

	resp := do(t, app, httptest.NewRequest(http.MethodGet, "/content/brand", nil))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, `W/"brand-3"`, resp.Header.Get(fiber.HeaderETag))

	req := httptest.NewRequest(http.MethodGet, "/content/brand", nil)
	req.Header.Set(fiber.HeaderIfNoneMatch, `W/"brand-3"`)
	resp = do(t, app, req)
	assert.Equal(t, fiber.StatusNotModified, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/content/brand", nil)
	req.Header.Set(fiber.HeaderIfNoneMatch, `W/"brand-2"`)
	resp = do(t, app, req)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGetBrandConfigUnavailableNeverNotModified(t *testing.T) {
	svc := &stubContent{brandStatus: entity.CollectionUnavailable}
	app := newTestApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/content/brand", nil)
	req.Header.Set(fiber.HeaderIfNoneMatch, `W/"brand-0"`)
	resp := do(t, app, req)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"status":"unavailable"`)
}

func TestRenderedServicesLanguage(t *testing.T) {
	tests := []struct {
		query string
		want  entity.Language
	}{
		{query: "?lang=de", want: entity.LanguageDE},
		{query: "?lang=pt", want: entity.LanguageES},
		{query: "", want: entity.LanguageES},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			svc := &stubContent{}
			resp := do(t, newTestApp(svc), httptest.NewRequest(http.MethodGet, "/content/services/rendered"+tt.query, nil))
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.Equal(t, tt.want, svc.renderLang)
		})
	}
}

func TestUpdateBrandConfig(t *testing.T) {
	svc := &stubContent{brand: entity.BrandConfig{Version: 4}}
	app := newTestApp(svc)

	patch := func(auth, body string) *http.Response {
		req := httptest.NewRequest(http.MethodPatch, "/admin/brand", strings.NewReader(body))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		if auth != "" {
			req.Header.Set(fiber.HeaderAuthorization, auth)
		}
		return do(t, app, req)
	}

	resp := patch("", `{"siteName":"X"}`)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Nil(t, svc.patch)

	resp = patch("Bearer valid", `{"siteName":"X"}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, `W/"brand-5"`, resp.Header.Get(fiber.HeaderETag))
	assert.JSONEq(t, `{"siteName":"X"}`, string(svc.patch))

	resp = patch("Bearer valid", `[1,2]`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
