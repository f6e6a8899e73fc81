package http_test

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mockshop-api/internal/application/dto"
)

func TestProductList_SinFiltros(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/products", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.ProductListResponse
	decodeJSON(t, resp, &body)
	assert.Equal(t, 7, body.Total)
	assert.Len(t, body.Data, 7)
	assert.Equal(t, 1, body.Page)
	assert.Equal(t, 10, body.Limit)
}

// El filtro por categoría es de match exacto y total cuenta el resultado filtrado.
func TestProductList_FiltroPorCategoria(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/products?category=smartphones", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.ProductListResponse
	decodeJSON(t, resp, &body)
	require.NotEmpty(t, body.Data)
	for _, p := range body.Data {
		assert.Equal(t, "smartphones", p.Category)
	}
	assert.Equal(t, len(body.Data), body.Total)
}

func TestProductList_FiltroPorEstado(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/products?status=on_sale", nil, nil)
	var body dto.ProductListResponse
	decodeJSON(t, resp, &body)
	require.NotEmpty(t, body.Data)
	for _, p := range body.Data {
		assert.Equal(t, "on_sale", p.Status)
	}
}

// Categoría y estado se pueden combinar.
func TestProductList_FiltrosCombinados(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/products?category=smartphones&status=out_of_stock", nil, nil)
	var body dto.ProductListResponse
	decodeJSON(t, resp, &body)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Xiaomi 14", body.Data[0].Name)
}

func TestProductList_Paginacion(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/products?page=2&limit=3", nil, nil)
	var body dto.ProductListResponse
	decodeJSON(t, resp, &body)
	assert.Len(t, body.Data, 3)
	assert.Equal(t, 7, body.Total)
	assert.Equal(t, 2, body.Page)
	assert.Equal(t, 3, body.Limit)
}

// El producto 1 es el ancla de los escenarios de órdenes: precio 8999.00.
func TestProductGet_Existente(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/products/1", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.ProductResponse
	decodeJSON(t, resp, &body)
	assert.Equal(t, 1, body.ID)
	assert.Equal(t, "iPhone 15 Pro", body.Name)
	assert.True(t, body.Price.Equal(decimal.RequireFromString("8999.00")),
		"el precio debe ser exactamente 8999.00, fue %s", body.Price)
	assert.Equal(t, "on_sale", body.Status)
}

func TestProductGet_Inexistente(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/products/9999", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body dto.ErrorResponse
	decodeJSON(t, resp, &body)
	assert.NotEmpty(t, body.Error)
}
