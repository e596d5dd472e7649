package leadHandler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	leads "EportsTech/internal/api/lead"
	"EportsTech/internal/entity"
	"EportsTech/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuth struct{}

func (stubAuth) Authenticate(ctx *fiber.Ctx) (entity.AdminLoginData, error) {
	if ctx.Get(fiber.HeaderAuthorization) != "Bearer valid" {
		return entity.AdminLoginData{}, errors.New("invalid token")
	}
	return entity.AdminLoginData{ID: "admin-1", Email: "admin@eportstech.com"}, nil
}

type fakeLeadService struct {
	submitted []leads.LeadRequest
	submitRes leads.SubmitResponse
	submitErr error
	listPage  int
	listLimit int
}

func (f *fakeLeadService) Submit(_ context.Context, req leads.LeadRequest) (leads.SubmitResponse, error) {
	f.submitted = append(f.submitted, req)
	return f.submitRes, f.submitErr
}

func (f *fakeLeadService) SubmitConfiguratorLead(_ context.Context, req leads.ConfiguratorLeadRequest) (leads.SubmitResponse, error) {
	return leads.SubmitResponse{Success: true, ID: "cfg-" + req.RequestID}, nil
}

func (f *fakeLeadService) ListLeads(_ context.Context, page, limit int) (leads.LeadListResponse, error) {
	f.listPage, f.listLimit = page, limit
	return leads.LeadListResponse{Leads: []entity.Lead{{ID: "l-1"}}, Total: 1}, nil
}

func (f *fakeLeadService) ListConfiguratorLeads(context.Context, int, int) (leads.ConfiguratorLeadListResponse, error) {
	return leads.ConfiguratorLeadListResponse{}, nil
}

func newTestApp(svc *fakeLeadService) *fiber.App {
	log := logrus.New()
	log.SetOutput(io.Discard)

	mw := middleware.New(log, stubAuth{})
	app := fiber.New()
	app.Use(mw.NewRequestIDMiddleware())
	New(log, validator.New(), mw, svc).Start(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

const validLead = `{
	"requestId": "req-1",
	"fullName": "Marta Puig",
	"email": "marta@example.com",
	"phone": "+34 600 000 000",
	"serviceInterest": "Networking",
	"message": "Office network"
}`

func TestSubmitLeadCreated(t *testing.T) {
	svc := &fakeLeadService{submitRes: leads.SubmitResponse{Success: true, ID: "01LEAD"}}
	app := newTestApp(svc)

	resp := postJSON(t, app, "/leads", validLead)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body leads.SubmitResponse
	require.NoError(t, jsoniter.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "01LEAD", body.ID)
	assert.True(t, body.Success)

	require.Len(t, svc.submitted, 1)
	assert.Equal(t, "req-1", svc.submitted[0].RequestID)
}

func TestSubmitLeadDuplicateIsOK(t *testing.T) {
	svc := &fakeLeadService{submitRes: leads.SubmitResponse{Success: true, ID: "01LEAD", Duplicate: true}}
	app := newTestApp(svc)

	resp := postJSON(t, app, "/leads", validLead)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestSubmitLeadRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "malformed email",
			body: `{"requestId":"r","fullName":"Marta","email":"not-an-email","phone":"600"}`,
		},
		{
			name: "missing phone",
			body: `{"requestId":"r","fullName":"Marta","email":"marta@example.com"}`,
		},
		{
			name: "missing request id",
			body: `{"fullName":"Marta","phone":"600"}`,
		},
		{
			name: "not json",
			body: `fullName=Marta`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeLeadService{}
			app := newTestApp(svc)

			resp := postJSON(t, app, "/leads", tt.body)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			assert.Empty(t, svc.submitted)
		})
	}
}

func TestSubmitLeadServiceFailure(t *testing.T) {
	svc := &fakeLeadService{submitErr: leads.ErrSubmitLead}
	app := newTestApp(svc)

	resp := postJSON(t, app, "/leads", validLead)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestSubmitLeadInProgressIsConflict(t *testing.T) {
	svc := &fakeLeadService{submitErr: leads.ErrSubmitInProgress}
	app := newTestApp(svc)

	resp := postJSON(t, app, "/leads", validLead)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestSubmitConfiguratorLeadRequiresItems(t *testing.T) {
	app := newTestApp(&fakeLeadService{})

	resp := postJSON(t, app, "/leads/configurator",
		`{"requestId":"c-1","fullName":"Jordi","phone":"600","itemIds":[]}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = postJSON(t, app, "/leads/configurator",
		`{"requestId":"c-1","fullName":"Jordi","phone":"600","itemIds":["fiber"]}`)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestListLeadsRequiresToken(t *testing.T) {
	svc := &fakeLeadService{}
	app := newTestApp(svc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin/leads", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/admin/leads?page=3&limit=5", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer valid")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 3, svc.listPage)
	assert.Equal(t, 5, svc.listLimit)
}
