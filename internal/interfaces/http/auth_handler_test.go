package http_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mockshop-api/internal/application/dto"
)

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

// Todas las cuentas semilla deben poder iniciar sesión con su rol esperado.
func TestLogin_CuentasSemilla(t *testing.T) {
	cuentas := []struct {
		username, password, role string
	}{
		{"admin", "admin123", "admin"},
		{"test", "test123", "user"},
		{"user1", "123456", "user"},
		{"user2", "password", "user"},
		{"vip", "vip888", "vip"},
	}

	app := newTestApp(t)
	for _, cu := range cuentas {
		resp := doJSON(t, app, http.MethodPost, "/login", map[string]string{
			"username": cu.username,
			"password": cu.password,
		}, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode, "la cuenta %s debe poder iniciar sesión", cu.username)

		var body dto.LoginResponse
		decodeJSON(t, resp, &body)
		assert.True(t, body.Success)
		assert.NotEmpty(t, body.Token)
		assert.NotEmpty(t, body.ExpiresAt)
		assert.Equal(t, cu.username, body.User.Username)
		assert.Equal(t, cu.role, body.User.Role, "rol inesperado para %s", cu.username)
	}
}

// Cada login emite un token distinto.
func TestLogin_TokensDistintosPorSesion(t *testing.T) {
	app := newTestApp(t)

	t1 := loginToken(t, app, "admin", "admin123")
	t2 := loginToken(t, app, "admin", "admin123")
	assert.NotEqual(t, t1, t2)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/login", map[string]string{
		"username": "admin",
		"password": "incorrecto",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body dto.AuthErrorResponse
	decodeJSON(t, resp, &body)
	assert.False(t, body.Success)
	assert.NotEmpty(t, body.Error)
}

func TestLogin_UsuarioDesconocido(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/login", map[string]string{
		"username": "fantasma",
		"password": "123456",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

// Cuerpo ausente o incompleto es un 400, no un 401.
func TestLogin_CuerpoFaltante(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/login", nil, map[string]string{"Content-Type": "application/json"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/login", map[string]string{"username": "admin"}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// Recurso protegido
// ──────────────────────────────────────────────────────────────────────────────

func TestProtected_ConTokenValido(t *testing.T) {
	app := newTestApp(t)
	tok := loginToken(t, app, "admin", "admin123")

	resp := doJSON(t, app, http.MethodGet, "/protected", nil, bearer(tok))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.ProtectedResponse
	decodeJSON(t, resp, &body)
	assert.Equal(t, "42", body.SecretData)
	assert.Equal(t, "admin", body.User.Username)
	assert.Equal(t, "admin", body.User.Role)
}

// Cualquier token válido otorga el mismo acceso, sin distinción de rol.
func TestProtected_TokenDeUsuarioNormal(t *testing.T) {
	app := newTestApp(t)
	tok := loginToken(t, app, "user1", "123456")

	resp := doJSON(t, app, http.MethodGet, "/protected", nil, bearer(tok))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestProtected_SinHeader(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/protected", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestProtected_TokenDesconocido(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/protected", nil, bearer("token-invalido-123"))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body dto.AuthErrorResponse
	decodeJSON(t, resp, &body)
	assert.Equal(t, "INVALID_TOKEN", body.Code)
}

func TestProtected_FormatoDeHeaderInvalido(t *testing.T) {
	app := newTestApp(t)
	tok := loginToken(t, app, "admin", "admin123")

	resp := doJSON(t, app, http.MethodGet, "/protected", nil, map[string]string{"Authorization": tok})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "sin el prefijo Bearer el header no es válido")
	resp.Body.Close()
}

// La expiración sí se verifica: pasada la vigencia, el token deja de servir.
func TestProtected_TokenExpirado(t *testing.T) {
	app, clock := newTestAppWithClock(t)
	tok := loginToken(t, app, "vip", "vip888")

	// Justo antes del vencimiento sigue siendo válido.
	clock.Advance(23 * time.Hour)
	resp := doJSON(t, app, http.MethodGet, "/protected", nil, bearer(tok))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Pasadas las 24 horas el token queda rechazado.
	clock.Advance(2 * time.Hour)
	resp = doJSON(t, app, http.MethodGet, "/protected", nil, bearer(tok))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body dto.AuthErrorResponse
	decodeJSON(t, resp, &body)
	assert.Equal(t, "EXPIRED_TOKEN", body.Code)
}
