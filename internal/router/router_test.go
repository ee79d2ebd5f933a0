package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sample-hr/employee-admin/internal/config"
	"github.com/sample-hr/employee-admin/internal/database"
	"github.com/sample-hr/employee-admin/internal/handler"
	"github.com/sample-hr/employee-admin/internal/metrics"
	"github.com/sample-hr/employee-admin/internal/middleware"
	"github.com/sample-hr/employee-admin/internal/model"
	"github.com/sample-hr/employee-admin/internal/repository"
	"github.com/sample-hr/employee-admin/internal/response"
	"github.com/sample-hr/employee-admin/internal/service"
	"github.com/sample-hr/employee-admin/internal/session"
)

type envelope struct {
	Data  map[string]json.RawMessage `json:"data"`
	Error *response.ErrorBody         `json:"error"`
}

type client struct {
	t       *testing.T
	handler http.Handler
	cookies map[string]*http.Cookie
}

func (c *client) do(method, path string, form url.Values) (int, envelope) {
	c.t.Helper()
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, req)
	for _, ck := range w.Result().Cookies() {
		if ck.MaxAge < 0 {
			delete(c.cookies, ck.Name)
			continue
		}
		c.cookies[ck.Name] = ck
	}

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w.Code, env
}

func setup(t *testing.T) (*client, *metrics.Metrics) {
	ctx := context.Background()
	db, err := database.OpenSQLite(ctx, filepath.Join(t.TempDir(), "router.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.MigrateUp(db))

	admins := repository.NewAdministratorRepository(db)
	employees := repository.NewEmployeeRepository(db)
	_, err = admins.Insert(ctx, model.Administrator{Name: "Yamada", MailAddress: "yamada@example.com", Password: "pass"})
	require.NoError(t, err)

	for _, e := range []model.Employee{
		{Name: "Later", Image: "b.png", Gender: "female", HireDate: model.NewDate(2020, time.June, 1), MailAddress: "b@example.com",
			ZipCode: "222-2222", Address: "Osaka", Telephone: "06-0000-0000", Salary: 300000, Characteristics: "quick", DependentsCount: 0},
		{Name: "Earlier", Image: "a.png", Gender: "male", HireDate: model.NewDate(2011, time.April, 1), MailAddress: "a@example.com",
			ZipCode: "111-1111", Address: "Tokyo", Telephone: "03-0000-0000", Salary: 250000, Characteristics: "calm", DependentsCount: 1},
	} {
		_, err := employees.Insert(ctx, e)
		require.NoError(t, err)
	}

	m := metrics.New()
	log := zerolog.Nop()
	limiterCtx, cancel := context.WithCancel(ctx)
	t.Cleanup(cancel)

	sessions := session.NewMemoryStore(time.Hour, false)
	h := &Handlers{
		Auth:          handler.NewAuthHandler(service.NewAuthService(admins, m, log), sessions, log),
		Administrator: handler.NewAdministratorHandler(service.NewAdministratorService(admins, m, log)),
		Employee: handler.NewEmployeeHandler(
			service.NewDirectoryService(employees, m, log),
			service.NewEmployeeService(employees, m, log),
		),
		System: handler.NewSystemHandler(db, nil, m, log),
	}
	r := SetupRouter(h, Deps{
		Sessions:     sessions,
		Metrics:      m,
		LoginLimiter: middleware.NewRateLimiter(limiterCtx, 100, time.Minute),
		Log:          log,
	}, &config.Config{GinMode: "test"})

	return &client{t: t, handler: r, cookies: map[string]*http.Cookie{}}, m
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func login(c *client) {
	code, env := c.do(http.MethodPost, "/login", url.Values{"mailAddress": {"yamada@example.com"}, "password": {"pass"}})
	require.Equal(c.t, http.StatusOK, code)
	assert.Equal(c.t, `"/employees"`, string(env.Data["redirect"]))
}

func TestDirectoryIsOpen(t *testing.T) {
	c, _ := setup(t)

	code, env := c.do(http.MethodGet, "/employees", nil)
	require.Equal(t, http.StatusOK, code)
	list := decode[[]model.Employee](t, env.Data["employees"])
	require.Len(t, list, 2)
	assert.Equal(t, "Earlier", list[0].Name)
	assert.Equal(t, "Later", list[1].Name)

	code, env = c.do(http.MethodGet, "/employees/2", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Earlier", decode[model.Employee](t, env.Data["employee"]).Name)

	code, env = c.do(http.MethodGet, "/employees/99", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, response.ErrNotFound, env.Error.Code)

	code, env = c.do(http.MethodGet, "/employees/abc", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, response.ErrInvalidID, env.Error.Code)

	code, env = c.do(http.MethodGet, "/administrators/new", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data["form"]), "mailAddress")
}

func TestMutationsRequireSession(t *testing.T) {
	c, _ := setup(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/employees/1/edit"},
		{http.MethodPost, "/employees/1"},
		{http.MethodPut, "/employees/1"},
		{http.MethodPost, "/administrators"},
	} {
		code, env := c.do(tc.method, tc.path, url.Values{"salary": {"1"}})
		assert.Equal(t, http.StatusUnauthorized, code, tc.path)
		assert.Equal(t, response.ErrSessionRequired, env.Error.Code, tc.path)
	}
}

func TestLoginFailureAnchorsMailAddress(t *testing.T) {
	c, _ := setup(t)

	code, env := c.do(http.MethodPost, "/login", url.Values{"mailAddress": {"yamada@example.com"}, "password": {"nope"}})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, response.ErrInvalidCredentials, env.Error.Code)
	assert.Equal(t, "mail address or password is invalid", env.Error.Fields["mailAddress"])
	assert.Equal(t, map[string]string{"mailAddress": "yamada@example.com"}, env.Error.Form)
	assert.Empty(t, c.cookies)

	code, _ = c.do(http.MethodGet, "/employees/1/edit", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestEditAndUpdate(t *testing.T) {
	c, _ := setup(t)
	login(c)

	code, env := c.do(http.MethodGet, "/employees/1/edit", nil)
	require.Equal(t, http.StatusOK, code)
	form := decode[map[string]string](t, env.Data["form"])
	assert.Equal(t, "2020-06-01", form["hireDate"])
	assert.Equal(t, "300000", form["salary"])

	code, env = c.do(http.MethodPost, "/employees/1", url.Values{"id": {"2"}, "dependentsCount": {"3"}})
	require.Equal(t, http.StatusOK, code)
	updated := decode[model.Employee](t, env.Data["employee"])
	assert.Equal(t, 1, updated.ID)
	assert.Equal(t, 3, updated.DependentsCount)
	assert.Equal(t, "Later", updated.Name)

	_, env = c.do(http.MethodGet, "/employees/2", nil)
	assert.Equal(t, 1, decode[model.Employee](t, env.Data["employee"]).DependentsCount, "other rows untouched")

	code, env = c.do(http.MethodPut, "/employees/1", url.Values{"salary": {"-1"}, "hireDate": {"2020/01/01"}})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, response.ErrValidation, env.Error.Code)
	assert.Contains(t, env.Error.Fields, "salary")
	assert.Contains(t, env.Error.Fields, "hireDate")
	assert.Equal(t, "-1", env.Error.Form["salary"])

	_, env = c.do(http.MethodGet, "/employees/1", nil)
	assert.Equal(t, 300000, decode[model.Employee](t, env.Data["employee"]).Salary)

	code, _ = c.do(http.MethodPut, "/employees/999", url.Values{"salary": {"1"}})
	assert.Equal(t, http.StatusNotFound, code)
}

func TestRegisterAdministrator(t *testing.T) {
	c, _ := setup(t)
	login(c)

	code, env := c.do(http.MethodPost, "/administrators", url.Values{"name": {""}, "mailAddress": {"bad"}, "password": {"x"}})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Contains(t, env.Error.Fields, "name")
	assert.Contains(t, env.Error.Fields, "mailAddress")
	assert.NotContains(t, env.Error.Form, "password")

	code, env = c.do(http.MethodPost, "/administrators", url.Values{"name": {"Suzuki"}, "mailAddress": {"suzuki@example.com"}, "password": {"pw2"}})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, `"/login"`, string(env.Data["redirect"]))
	assert.NotContains(t, string(env.Data["administrator"]), "pw2")

	// The new administrator can log in.
	code, _ = c.do(http.MethodPost, "/login", url.Values{"mailAddress": {"suzuki@example.com"}, "password": {"pw2"}})
	assert.Equal(t, http.StatusOK, code)
}

func TestLogoutThenUpdateRejected(t *testing.T) {
	c, m := setup(t)
	login(c)

	code, env := c.do(http.MethodPost, "/logout", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, `"/login"`, string(env.Data["redirect"]))

	code, _ = c.do(http.MethodPost, "/logout", nil)
	assert.Equal(t, http.StatusOK, code, "logout is idempotent")

	code, _ = c.do(http.MethodPost, "/employees/1", url.Values{"dependentsCount": {"3"}})
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = c.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, code)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, w.Body.String(), `login_attempts_total{outcome="success"} 1`)
}

func TestSessionRoutesAreNotCached(t *testing.T) {
	c, _ := setup(t)
	req := httptest.NewRequest(http.MethodGet, "/employees", nil)
	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, req)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestCORSOrigins(t *testing.T) {
	get := func(cfg *config.Config, origin string) *httptest.ResponseRecorder {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		if h := corsMiddleware(cfg); h != nil {
			r.Use(h)
		}
		r.GET("/employees", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/employees", nil)
		req.Header.Set("Origin", origin)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := get(&config.Config{GinMode: gin.ReleaseMode}, "https://evil.example")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))

	w = get(&config.Config{GinMode: gin.DebugMode}, "http://localhost:5173")
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	listed := &config.Config{GinMode: gin.ReleaseMode, AllowedOrigins: []string{"https://hr.example"}}
	w = get(listed, "https://hr.example")
	assert.Equal(t, "https://hr.example", w.Header().Get("Access-Control-Allow-Origin"))
	w = get(listed, "https://evil.example")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
