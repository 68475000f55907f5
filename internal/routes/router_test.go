package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"procurement-api/internal/dto"
	"procurement-api/internal/entities"
	"procurement-api/internal/infrastructure/bd"
	"procurement-api/internal/services"
	apperrors "procurement-api/pkg/errors"
	"procurement-api/pkg/types"
	"procurement-api/pkg/validation"
)

type fakePinger struct{ err error }

func (p *fakePinger) Ping(context.Context) error { return p.err }

type fakeClientService struct {
	lastQuery services.ListClientsQuery
	lastPatch dto.UpdateClientDTO
	client    *entities.Client
	err       error
	deleted   bool
}

func (f *fakeClientService) ListClients(_ context.Context, q services.ListClientsQuery) ([]entities.Client, error) {
	f.lastQuery = q
	if f.err != nil {
		return nil, f.err
	}
	return []entities.Client{*f.client}, nil
}

func (f *fakeClientService) GetClient(context.Context, string) (*entities.Client, error) {
	return f.client, f.err
}

func (f *fakeClientService) CreateClient(_ context.Context, d dto.CreateClientDTO) (*entities.Client, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &entities.Client{BaseEntity: types.BaseEntity{ID: 1, IsActive: true}, Name: d.Name, Email: d.Email}, nil
}

func (f *fakeClientService) UpdateClient(_ context.Context, _ string, d dto.UpdateClientDTO) (*entities.Client, error) {
	f.lastPatch = d
	return f.client, f.err
}

func (f *fakeClientService) DeleteClient(context.Context, string) (bool, error) {
	return f.deleted, f.err
}

type fakeRequestService struct {
	services.RequestServiceInterface
	err error
}

func (f *fakeRequestService) CreateRequest(context.Context, dto.CreateRequestDTO) (*entities.Request, error) {
	return nil, f.err
}

type fakeUserService struct {
	services.UserServiceInterface
	user *entities.User
}

func (f *fakeUserService) GetUserByUsername(_ context.Context, username string) (*entities.User, error) {
	if f.user == nil || f.user.Username != username {
		return nil, apperrors.ErrNotFound
	}
	return f.user, nil
}

type RouterTestSuite struct {
	suite.Suite
	Echo     *echo.Echo
	DB       *fakePinger
	Clients  *fakeClientService
	Requests *fakeRequestService
	Users    *fakeUserService
}

func (s *RouterTestSuite) SetupTest() {
	e := echo.New()
	e.Validator = validation.New()

	s.DB = &fakePinger{}
	s.Clients = &fakeClientService{client: &entities.Client{BaseEntity: types.BaseEntity{ID: 5}, Name: "Acme"}}
	s.Requests = &fakeRequestService{}
	s.Users = &fakeUserService{user: &entities.User{
		BaseEntity:     types.BaseEntity{ID: 3},
		Username:       "jdoe",
		HashedPassword: "$2a$10$secret",
	}}

	InitRouter(e, Services{Clients: s.Clients, Requests: s.Requests, Users: s.Users}, s.DB, zap.NewNop())
	s.Echo = e
}

func (s *RouterTestSuite) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)
	return rec
}

func (s *RouterTestSuite) decode(rec *httptest.ResponseRecorder) map[string]interface{} {
	var resp map[string]interface{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func (s *RouterTestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", "")
	s.Equal(http.StatusOK, rec.Code)

	s.DB.err = errors.New("connection refused")
	rec = s.do(http.MethodGet, "/health", "")
	s.Equal(http.StatusServiceUnavailable, rec.Code)
}

func (s *RouterTestSuite) TestListClients_ParsesQuery() {
	rec := s.do(http.MethodGet, "/api/clients?skip=10&limit=5&name=acme&filter[notes__icontains]=vip", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	q := s.Clients.lastQuery
	s.Equal("acme", q.Name)
	s.Equal(types.Page{Skip: 10, Limit: 5}, q.Page)
	s.Equal([]bd.Condition{bd.Contains("notes", "vip")}, q.Extra)

	body := s.decode(rec)["body"].(map[string]interface{})
	s.Len(body["list"], 1)
}

func (s *RouterTestSuite) TestListClients_BadPagination() {
	rec := s.do(http.MethodGet, "/api/clients?limit=lots", "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterTestSuite) TestListClients_UnknownFilterField() {
	s.Clients.err = apperrors.ErrUnknownFilterField
	rec := s.do(http.MethodGet, "/api/clients?filter[colour]=red", "")
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(false, s.decode(rec)["status"])
}

func (s *RouterTestSuite) TestCreateClient() {
	rec := s.do(http.MethodPost, "/api/clients", `{"name":"Acme","email":"ops@acme.io","tags":["industry: tech"]}`)
	s.Require().Equal(http.StatusCreated, rec.Code)
	resp := s.decode(rec)
	s.Equal(true, resp["status"])
	s.Equal("ops@acme.io", resp["body"].(map[string]interface{})["email"])
}

func (s *RouterTestSuite) TestCreateClient_ValidationError() {
	rec := s.do(http.MethodPost, "/api/clients", `{"name":"Acme","email":"not-an-email"}`)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/api/clients", `{"name":"Acme","email":"ops@acme.io","tags":["no separator"]}`)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/api/clients", `{"name":`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterTestSuite) TestCreateClient_Conflict() {
	s.Clients.err = apperrors.ErrConflict
	rec := s.do(http.MethodPost, "/api/clients", `{"name":"Acme","email":"ops@acme.io"}`)
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *RouterTestSuite) TestUpdateClient_PassesOnlyProvidedFields() {
	rec := s.do(http.MethodPut, "/api/clients/5", `{"address":"123 Main St"}`)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().NotNil(s.Clients.lastPatch.Address)
	s.Equal("123 Main St", *s.Clients.lastPatch.Address)
	s.Nil(s.Clients.lastPatch.Name)
}

func (s *RouterTestSuite) TestGetClient_NotFound() {
	s.Clients.err = apperrors.ErrNotFound
	rec := s.do(http.MethodGet, "/api/clients/404", "")
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *RouterTestSuite) TestDeleteClient() {
	rec := s.do(http.MethodDelete, "/api/clients/5", "")
	s.Equal(http.StatusNotFound, rec.Code)

	s.Clients.deleted = true
	rec = s.do(http.MethodDelete, "/api/clients/5", "")
	s.Equal(http.StatusNoContent, rec.Code)

	s.Clients.deleted = false
	s.Clients.err = apperrors.ErrInUse
	rec = s.do(http.MethodDelete, "/api/clients/5", "")
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *RouterTestSuite) TestCreateRequest_MissingClient() {
	s.Requests.err = apperrors.ErrRelationNotFound
	rec := s.do(http.MethodPost, "/api/requests", `{
		"title": "Racks", "description": "Two racks", "client_id": 9,
		"equipment_category": "server", "quantity": 2, "priority": "high", "currency": "EUR"
	}`)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
}

func (s *RouterTestSuite) TestUnexpectedErrorIsHidden() {
	s.Clients.err = errors.New("pq: connection reset")
	rec := s.do(http.MethodGet, "/api/clients/5", "")
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotContains(rec.Body.String(), "connection reset")
}

func (s *RouterTestSuite) TestUserByUsername_HidesPassword() {
	rec := s.do(http.MethodGet, "/api/users/by-username/jdoe", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.NotContains(rec.Body.String(), "secret")
	s.NotContains(rec.Body.String(), "hashed_password")

	rec = s.do(http.MethodGet, "/api/users/by-username/nobody", "")
	s.Equal(http.StatusNotFound, rec.Code)
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}
