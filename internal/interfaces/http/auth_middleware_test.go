package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-admin/internal/application/dto"
	apphttp "github.com/jhoicas/Inventario-admin/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Inventario-admin/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testCaller    = "inventory-admin"
)

// buildAuthApp aplicación mínima con una ruta protegida que devuelve el caller.
func buildAuthApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.ServiceAuthMiddleware(testJWTSecret),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"caller": apphttp.GetCaller(c)})
		},
	)
	return app
}

func doAuth(t *testing.T, app *fiber.App, authHeader string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func bearer(t *testing.T, secret, scope string, ttl time.Duration) string {
	t.Helper()
	tok, err := pkgjwt.Generate(secret, testCaller, scope, testCaller, ttl)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// ──────────────────────────────────────────────────────────────────────────────
// Casos
// ──────────────────────────────────────────────────────────────────────────────

func TestServiceAuth_TokenValido(t *testing.T) {
	status, body := doAuth(t, buildAuthApp(), bearer(t, testJWTSecret, pkgjwt.ScopeProducts, time.Minute))

	require.Equal(t, http.StatusOK, status)
	var out map[string]string
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, testCaller, out["caller"])
}

func TestServiceAuth_Rechazos(t *testing.T) {
	cases := []struct {
		name   string
		header string
		status int
		code   string
	}{
		{"sin header", "", http.StatusUnauthorized, "MISSING_TOKEN"},
		{"formato", "Token abc", http.StatusUnauthorized, "INVALID_TOKEN"},
		{"firma", bearer(t, "otro-secreto", pkgjwt.ScopeProducts, time.Minute), http.StatusUnauthorized, "INVALID_TOKEN"},
		{"expirado", bearer(t, testJWTSecret, pkgjwt.ScopeProducts, -time.Minute), http.StatusUnauthorized, "INVALID_TOKEN"},
		{"alcance", bearer(t, testJWTSecret, "reports", time.Minute), http.StatusForbidden, "FORBIDDEN"},
	}
	app := buildAuthApp()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := doAuth(t, app, tc.header)

			assert.Equal(t, tc.status, status)
			var e dto.ErrorResponse
			require.NoError(t, json.Unmarshal(body, &e))
			assert.Equal(t, tc.code, e.Code)
		})
	}
}

func TestSandboxRouter_ExigeTokenConSecreto(t *testing.T) {
	app := fiber.New()
	apphttp.SandboxRouter(app, apphttp.SandboxDeps{
		ProductUC: buildSandboxUC(),
		JWTSecret: testJWTSecret,
	})

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set("Authorization", bearer(t, testJWTSecret, pkgjwt.ScopeProducts, time.Minute))
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
