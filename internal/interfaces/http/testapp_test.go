package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mockshop-api/internal/application/auth"
	"github.com/jhoicas/mockshop-api/internal/application/usecase"
	"github.com/jhoicas/mockshop-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/mockshop-api/internal/interfaces/http"
	"github.com/jhoicas/mockshop-api/pkg/logger"
	"github.com/jhoicas/mockshop-api/pkg/token"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// testClock reloj controlable para los tests de expiración de sesión.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// newTestApp construye la aplicación completa con stores frescos, igual que
// main pero sin red ni swagger. Cada test obtiene un estado aislado: no hace
// falta POST /test/reset entre tests.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	app, _ := newTestAppWithClock(t)
	return app
}

// newTestAppWithClock además expone el reloj inyectado en auth y órdenes.
func newTestAppWithClock(t *testing.T) (*fiber.App, *testClock) {
	t.Helper()

	clock := &testClock{now: time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)}

	userStore := memory.NewUserStore()
	productStore := memory.NewProductStore()
	orderStore := memory.NewOrderStore()
	accountStore := memory.NewAccountStore()
	sessionStore := memory.NewSessionStore()

	gen := token.NewGenerator()
	authUC := auth.NewAuthUseCase(accountStore, sessionStore, gen, auth.Config{
		TTL: 24 * time.Hour,
	}).WithClock(clock.Now)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		UserUC:    usecase.NewUserUseCase(userStore),
		ProductUC: usecase.NewProductUseCase(productStore),
		OrderUC:   usecase.NewOrderUseCase(orderStore, productStore, gen).WithClock(clock.Now),
		AuthUC:    authUC,
		ResetUC:   usecase.NewResetUseCase(userStore, productStore, orderStore, sessionStore),
		Accounts:  accountStore,
		Log:       logger.Noop(),
	})
	return app, clock
}

// doJSON lanza una petición con cuerpo JSON opcional y devuelve la respuesta.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any, headers map[string]string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeJSON decodifica el cuerpo de la respuesta en out y la cierra.
func decodeJSON(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// loginToken hace login y devuelve el token emitido.
func loginToken(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/login", map[string]string{
		"username": username,
		"password": password,
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, "el login de %s debe ser exitoso", username)

	var body struct {
		Token string `json:"token"`
	}
	decodeJSON(t, resp, &body)
	require.NotEmpty(t, body.Token)
	return body.Token
}

// bearer arma el header Authorization para un token.
func bearer(tok string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + tok}
}
