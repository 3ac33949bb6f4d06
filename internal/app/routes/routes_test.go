package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myurcick/profkomlviv-sub000/internal/app/controllers"
	"github.com/myurcick/profkomlviv-sub000/internal/app/models"
	"github.com/myurcick/profkomlviv-sub000/internal/app/repositories"
	"github.com/myurcick/profkomlviv-sub000/internal/app/repositories/memory"
	"github.com/myurcick/profkomlviv-sub000/internal/app/services"
	"github.com/myurcick/profkomlviv-sub000/internal/middleware"
	"github.com/myurcick/profkomlviv-sub000/internal/pkg/auth"
	"github.com/myurcick/profkomlviv-sub000/internal/pkg/filestorage"
)

type testAPI struct {
	router *gin.Engine
	repos  *repositories.Repositories
	token  string
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repos := memory.NewRepositories()

	hash, err := auth.HashPassword("correct-password")
	require.NoError(t, err)
	admin := &models.AdminUser{
		Email:        "admin@profkom.lviv.ua",
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	}
	admin.ID, err = repos.Admin.Create(context.Background(), admin)
	require.NoError(t, err)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})
	token, _, err := jwtService.GenerateToken(admin)
	require.NoError(t, err)

	storage, err := filestorage.NewLocalStorage(t.TempDir(), "")
	require.NoError(t, err)

	authMW := middleware.NewAuthMiddleware(jwtService)

	router := gin.New()
	SetupRouter(router,
		controllers.NewAuthController(services.NewAuthService(repos.Admin, jwtService)),
		controllers.NewNewsController(services.NewNewsService(repos.News), storage),
		controllers.NewTeamController(services.NewTeamService(repos.Team), storage),
		controllers.NewProfController(services.NewProfService(repos.Prof), storage),
		controllers.NewUnitController(services.NewUnitService(repos.Unit), storage),
		controllers.NewUploadController(storage),
		authMW,
	)

	return &testAPI{router: router, repos: repos, token: token}
}

// multipartRequest builds an authenticated multipart request from a
// field map, the way the admin dashboard submits its forms.
func (a *testAPI) multipartRequest(t *testing.T, method, path string, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+a.token)

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testAPI) jsonRequest(t *testing.T, method, path string, payload any, authed bool) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target))
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t)
	w := api.jsonRequest(t, http.MethodGet, "/api/health", nil, false)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestNewsLifecycle(t *testing.T) {
	api := newTestAPI(t)

	w := api.multipartRequest(t, http.MethodPost, "/api/news", map[string]string{
		"Title":   "Older article",
		"Content": "<p>First</p>",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = api.multipartRequest(t, http.MethodPost, "/api/news", map[string]string{
		"Title":       "Scholarship deadlines extended",
		"Content":     "<p>Apply before the end of the month.</p>",
		"IsImportant": "true",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.NewsArticle
	decodeJSON(t, w, &created)
	assert.Positive(t, created.ID)
	assert.True(t, created.IsImportant)
	assert.False(t, created.PublishedAt.IsZero())

	t.Run("new article leads the feed", func(t *testing.T) {
		w := api.jsonRequest(t, http.MethodGet, "/api/news", nil, false)
		require.Equal(t, http.StatusOK, w.Code)

		var list []models.NewsArticle
		decodeJSON(t, w, &list)
		require.Len(t, list, 2)
		assert.Equal(t, created.ID, list[0].ID)
	})

	t.Run("get by id", func(t *testing.T) {
		w := api.jsonRequest(t, http.MethodGet, fmt.Sprintf("/api/news/%d", created.ID), nil, false)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("update of a missing article returns the client message", func(t *testing.T) {
		w := api.multipartRequest(t, http.MethodPut, "/api/news/4242", map[string]string{
			"Title":   "Ghost",
			"Content": "x",
		})
		require.Equal(t, http.StatusNotFound, w.Code)

		var resp map[string]any
		decodeJSON(t, w, &resp)
		assert.Equal(t, "News not found", resp["error"])
	})

	t.Run("update keeps publishedAt", func(t *testing.T) {
		w := api.multipartRequest(t, http.MethodPut, fmt.Sprintf("/api/news/%d", created.ID), map[string]string{
			"Title":   "Scholarship deadlines extended again",
			"Content": "<p>New date.</p>",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var updated models.NewsArticle
		decodeJSON(t, w, &updated)
		assert.Equal(t, created.PublishedAt, updated.PublishedAt)
	})

	t.Run("delete then absent", func(t *testing.T) {
		w := api.jsonRequest(t, http.MethodDelete, fmt.Sprintf("/api/news/%d", created.ID), nil, true)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = api.jsonRequest(t, http.MethodGet, fmt.Sprintf("/api/news/%d", created.ID), nil, false)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestNewsPaginationEnvelope(t *testing.T) {
	api := newTestAPI(t)

	for i := 0; i < 7; i++ {
		w := api.multipartRequest(t, http.MethodPost, "/api/news", map[string]string{
			"Title":   fmt.Sprintf("Article %d", i),
			"Content": "x",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := api.jsonRequest(t, http.MethodGet, "/api/news?page=2&size=3", nil, false)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items      []models.NewsArticle `json:"items"`
		Pagination struct {
			CurrentPage int   `json:"currentPage"`
			TotalPages  int   `json:"totalPages"`
			TotalItems  int   `json:"totalItems"`
			Pages       []int `json:"pages"`
		} `json:"pagination"`
	}
	decodeJSON(t, w, &resp)

	assert.Len(t, resp.Items, 3)
	assert.Equal(t, 2, resp.Pagination.CurrentPage)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
	assert.Equal(t, 7, resp.Pagination.TotalItems)
	assert.Equal(t, []int{1, 2, 3}, resp.Pagination.Pages)
}

func TestAdminLogin(t *testing.T) {
	api := newTestAPI(t)

	t.Run("valid credentials", func(t *testing.T) {
		w := api.jsonRequest(t, http.MethodPost, "/api/admin/login", map[string]string{
			"email":    "admin@profkom.lviv.ua",
			"password": "correct-password",
		}, false)
		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		decodeJSON(t, w, &resp)
		assert.NotEmpty(t, resp["token"])
		assert.Equal(t, "ADMIN", resp["role"])
	})

	t.Run("wrong password issues nothing", func(t *testing.T) {
		w := api.jsonRequest(t, http.MethodPost, "/api/admin/login", map[string]string{
			"email":    "admin@profkom.lviv.ua",
			"password": "wrong",
		}, false)
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.NotContains(t, w.Body.String(), "token")
	})
}

func TestMutationsRequireAuth(t *testing.T) {
	api := newTestAPI(t)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/news"},
		{http.MethodPut, "/api/news/1"},
		{http.MethodDelete, "/api/news/1"},
		{http.MethodPost, "/api/team"},
		{http.MethodPost, "/api/prof"},
		{http.MethodPost, "/api/unit"},
		{http.MethodPost, "/api/uploads"},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(""))
			w := httptest.NewRecorder()
			api.router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}

	t.Run("expired token is refused", func(t *testing.T) {
		expired := auth.NewJWTService(auth.JWTConfig{
			SecretKey:      "test-secret",
			AccessTokenExp: -time.Minute,
			TokenIssuer:    "test",
		})
		token, _, err := expired.GenerateToken(&models.AdminUser{ID: 1, Email: "a@b.co", Role: models.RoleAdmin})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodDelete, "/api/news/1", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		api.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestProfEndpoints(t *testing.T) {
	api := newTestAPI(t)

	w := api.multipartRequest(t, http.MethodPost, "/api/team", map[string]string{
		"Name":     "Oksana Kovalenko",
		"Type":     "1",
		"IsActive": "true",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var head models.TeamMember
	decodeJSON(t, w, &head)

	w = api.multipartRequest(t, http.MethodPost, "/api/prof", map[string]string{
		"Name":   "Computer Science Faculty Union",
		"HeadId": fmt.Sprintf("%d", head.ID),
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var prof models.FacultyUnion
	decodeJSON(t, w, &prof)
	require.NotNil(t, prof.Head)
	assert.True(t, prof.Head.IsChoosed)

	t.Run("claimed head is a conflict for another union", func(t *testing.T) {
		w := api.multipartRequest(t, http.MethodPost, "/api/prof", map[string]string{
			"Name":   "Economics Faculty Union",
			"HeadId": fmt.Sprintf("%d", head.ID),
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("deleting a head in office is a conflict", func(t *testing.T) {
		w := api.jsonRequest(t, http.MethodDelete, fmt.Sprintf("/api/team/%d", head.ID), nil, true)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("available heads hides the claimed one", func(t *testing.T) {
		w := api.jsonRequest(t, http.MethodGet, "/api/team/available-heads", nil, false)
		require.Equal(t, http.StatusOK, w.Code)

		var heads []models.TeamMember
		decodeJSON(t, w, &heads)
		assert.Empty(t, heads)
	})

	t.Run("deleting the union releases the head", func(t *testing.T) {
		w := api.jsonRequest(t, http.MethodDelete, fmt.Sprintf("/api/prof/%d", prof.ID), nil, true)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = api.jsonRequest(t, http.MethodGet, "/api/team/available-heads", nil, false)
		var heads []models.TeamMember
		decodeJSON(t, w, &heads)
		require.Len(t, heads, 1)
		assert.Equal(t, head.ID, heads[0].ID)
	})
}

func TestUploadEndpoint(t *testing.T) {
	api := newTestAPI(t)

	t.Run("missing file", func(t *testing.T) {
		w := api.multipartRequest(t, http.MethodPost, "/api/uploads", map[string]string{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("stores a plain file and returns its path", func(t *testing.T) {
		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		part, err := writer.CreateFormFile("file", "notes.txt")
		require.NoError(t, err)
		_, err = part.Write([]byte("hello"))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/uploads", body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		req.Header.Set("Authorization", "Bearer "+api.token)

		w := httptest.NewRecorder()
		api.router.ServeHTTP(w, req)
		require.Equal(t, http.StatusCreated, w.Code)

		var resp map[string]string
		decodeJSON(t, w, &resp)
		assert.NotEmpty(t, resp["path"])
	})

	t.Run("image extension with bogus bytes is refused", func(t *testing.T) {
		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		part, err := writer.CreateFormFile("file", "fake.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("not a png"))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/uploads", body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		req.Header.Set("Authorization", "Bearer "+api.token)

		w := httptest.NewRecorder()
		api.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUnitEndpoints(t *testing.T) {
	api := newTestAPI(t)

	w := api.multipartRequest(t, http.MethodPost, "/api/unit", map[string]string{
		"Name":     "Central Office",
		"Content":  "<p>About the office</p>",
		"IsActive": "true",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var unit models.Unit
	decodeJSON(t, w, &unit)
	assert.False(t, unit.CreatedAt.IsZero())

	t.Run("unknown unit", func(t *testing.T) {
		w := api.jsonRequest(t, http.MethodGet, "/api/unit/999", nil, false)
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Unit not found")
	})
}
