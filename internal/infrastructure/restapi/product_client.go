// Package restapi implementa el puerto ProductDataSource sobre el servicio REST de productos.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-admin/internal/application/dto"
	"github.com/jhoicas/Inventario-admin/internal/application/ports"
	"github.com/jhoicas/Inventario-admin/internal/domain"
	"github.com/jhoicas/Inventario-admin/internal/domain/entity"
)

// Verificar en tiempo de compilación que ProductClient implementa ProductDataSource.
var _ ports.ProductDataSource = (*ProductClient)(nil)

// maxBody límite de lectura de respuestas.
const maxBody = 4 << 20

// ProductClient adaptador HTTP: GET/POST {base}/products, PUT/DELETE {base}/products/{id}.
// Cualquier fallo de red o respuesta no 2xx se devuelve envuelto en domain.ErrRemote.
type ProductClient struct {
	baseURL    string
	token      func() (string, error)
	httpClient *http.Client
}

// NewProductClient construye el adaptador. timeout <= 0 deja el cliente sin timeout
// propio; la cancelación queda entonces en manos del contexto.
func NewProductClient(baseURL, token string, timeout time.Duration) *ProductClient {
	c := &http.Client{}
	if timeout > 0 {
		c.Timeout = timeout
	}
	return &ProductClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      func() (string, error) { return token, nil },
		httpClient: c,
	}
}

// WithTokenSource reemplaza el token estático por uno emitido en cada llamada.
func (c *ProductClient) WithTokenSource(src func() (string, error)) *ProductClient {
	c.token = src
	return c
}

// WithHTTPClient reemplaza el *http.Client (tests).
func (c *ProductClient) WithHTTPClient(hc *http.Client) *ProductClient {
	c.httpClient = hc
	return c
}

// ── Formato de cable ──────────────────────────────────────────────────────────

// productWire acepta IDs como string o número JSON.
type productWire struct {
	ID       json.RawMessage `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
	ImageURL string          `json:"image_url"`
}

func (w productWire) toEntity() entity.Product {
	return entity.Product{
		ID:       decodeID(w.ID),
		Name:     w.Name,
		Price:    w.Price,
		Stock:    w.Stock,
		ImageURL: w.ImageURL,
	}
}

func decodeID(raw json.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return ""
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str
	}
	return s // número: se usa su representación literal
}

// listEnvelope forma alternativa {"items": [...]} del listado.
type listEnvelope struct {
	Items []productWire `json:"items"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// List devuelve la colección completa.
func (c *ProductClient) List(ctx context.Context) ([]entity.Product, error) {
	body, err := c.do(ctx, http.MethodGet, "/products", nil)
	if err != nil {
		return nil, err
	}

	var items []productWire
	if trimmed := bytes.TrimSpace(body); len(trimmed) > 0 && trimmed[0] == '{' {
		var env listEnvelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, fmt.Errorf("%w: decodificar listado: %v", domain.ErrRemote, err)
		}
		items = env.Items
	} else if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("%w: decodificar listado: %v", domain.ErrRemote, err)
	}

	out := make([]entity.Product, 0, len(items))
	for _, w := range items {
		out = append(out, w.toEntity())
	}
	return out, nil
}

// Create crea un producto.
func (c *ProductClient) Create(ctx context.Context, in dto.ProductPayload) (*entity.Product, error) {
	return c.write(ctx, http.MethodPost, "/products", in)
}

// Update actualiza el producto id.
func (c *ProductClient) Update(ctx context.Context, id string, in dto.ProductPayload) (*entity.Product, error) {
	return c.write(ctx, http.MethodPut, "/products/"+url.PathEscape(id), in)
}

// Delete elimina el producto id.
func (c *ProductClient) Delete(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), nil)
	return err
}

func (c *ProductClient) write(ctx context.Context, method, path string, in dto.ProductPayload) (*entity.Product, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("restapi: serializar payload: %w", err)
	}
	body, err := c.do(ctx, method, path, payload)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}
	var w productWire
	if err := json.Unmarshal(body, &w); err != nil {
		return nil, fmt.Errorf("%w: decodificar producto: %v", domain.ErrRemote, err)
	}
	p := w.toEntity()
	return &p, nil
}

func (c *ProductClient) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("restapi: crear HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	token, err := c.token()
	if err != nil {
		return nil, fmt.Errorf("restapi: emitir token: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %s %s: timeout o cancelación: %v", domain.ErrRemote, method, path, ctx.Err())
		}
		return nil, fmt.Errorf("%w: %s %s: %v", domain.ErrRemote, method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("%w: leer respuesta: %v", domain.ErrRemote, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp dto.ErrorResponse
		if jsonErr := json.Unmarshal(body, &errResp); jsonErr == nil && errResp.Message != "" {
			return nil, fmt.Errorf("%w: %s %s: HTTP %d %s: %s", domain.ErrRemote, method, path, resp.StatusCode, errResp.Code, errResp.Message)
		}
		return nil, fmt.Errorf("%w: %s %s: HTTP %d", domain.ErrRemote, method, path, resp.StatusCode)
	}
	return body, nil
}
