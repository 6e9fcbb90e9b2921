package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-admin/internal/application/dto"
	"github.com/jhoicas/Inventario-admin/internal/application/usecase"
	"github.com/jhoicas/Inventario-admin/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/Inventario-admin/internal/interfaces/http"
)

func buildSandboxUC() *usecase.ProductUseCase {
	return usecase.NewProductUseCase(memory.NewProductRepository())
}

func buildSandboxApp() *fiber.App {
	app := fiber.New()
	apphttp.SandboxRouter(app, apphttp.SandboxDeps{ProductUC: buildSandboxUC()})
	return app
}

func sendJSON(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func TestSandbox_CRUD(t *testing.T) {
	app := buildSandboxApp()

	status, raw := sendJSON(t, app, http.MethodPost, "/api/products", `{"name":"Kopi","price":"15000","stock":3}`)
	require.Equal(t, http.StatusCreated, status)
	var created dto.ProductResponse
	require.NoError(t, json.Unmarshal(raw, &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Kopi", created.Name)

	status, raw = sendJSON(t, app, http.MethodGet, "/api/products", "")
	require.Equal(t, http.StatusOK, status)
	var list []dto.ProductResponse
	require.NoError(t, json.Unmarshal(raw, &list))
	require.Len(t, list, 1)

	status, raw = sendJSON(t, app, http.MethodPut, "/api/products/"+created.ID, `{"name":"Kopi Luwak","price":90000,"stock":1}`)
	require.Equal(t, http.StatusOK, status)
	var updated dto.ProductResponse
	require.NoError(t, json.Unmarshal(raw, &updated))
	assert.Equal(t, "Kopi Luwak", updated.Name)

	status, _ = sendJSON(t, app, http.MethodGet, "/api/products/"+created.ID, "")
	assert.Equal(t, http.StatusOK, status)

	status, _ = sendJSON(t, app, http.MethodDelete, "/api/products/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, status)

	status, _ = sendJSON(t, app, http.MethodGet, "/api/products/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestSandbox_Errores(t *testing.T) {
	app := buildSandboxApp()

	status, raw := sendJSON(t, app, http.MethodPost, "/api/products", `{"name":"","price":"1","stock":1}`)
	assert.Equal(t, http.StatusBadRequest, status)
	var e dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &e))
	assert.Equal(t, "VALIDATION", e.Code)

	status, _ = sendJSON(t, app, http.MethodPost, "/api/products", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = sendJSON(t, app, http.MethodPut, "/api/products/nope", `{"name":"x","price":"1","stock":1}`)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = sendJSON(t, app, http.MethodDelete, "/api/products/nope", "")
	assert.Equal(t, http.StatusNotFound, status)
}
