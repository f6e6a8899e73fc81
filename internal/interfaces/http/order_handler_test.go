package http_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mockshop-api/internal/application/dto"
)

func TestOrderList_SinFiltros(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/orders", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.OrderListResponse
	decodeJSON(t, resp, &body)
	assert.Equal(t, 4, body.Total)
	assert.Len(t, body.Data, 4)
}

func TestOrderList_FiltroPorUsuario(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/orders?user_id=1", nil, nil)
	var body dto.OrderListResponse
	decodeJSON(t, resp, &body)
	require.NotEmpty(t, body.Data)
	for _, o := range body.Data {
		assert.Equal(t, 1, o.UserID)
	}
	assert.Equal(t, len(body.Data), body.Total)
}

func TestOrderList_FiltroPorEstado(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/orders?status=completed", nil, nil)
	var body dto.OrderListResponse
	decodeJSON(t, resp, &body)
	require.NotEmpty(t, body.Data)
	for _, o := range body.Data {
		assert.Equal(t, "completed", o.Status)
	}
}

func TestOrderGet_SemillaExistente(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/orders/ORD20231201001", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.OrderResponse
	decodeJSON(t, resp, &body)
	assert.Equal(t, "ORD20231201001", body.ID)
	assert.Equal(t, "completed", body.Status)
}

func TestOrderGet_Inexistente(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/orders/ORD99999999999", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body dto.ErrorResponse
	decodeJSON(t, resp, &body)
	assert.NotEmpty(t, body.Error)
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación de órdenes
// ──────────────────────────────────────────────────────────────────────────────

// total = price × quantity exacto: producto 1 cuesta 8999.00, por 2 = 17998.00.
func TestOrderCreate_TotalExacto(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/orders", map[string]int{
		"user_id":    1,
		"product_id": 1,
		"quantity":   2,
	}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body dto.OrderResponse
	decodeJSON(t, resp, &body)
	assert.Equal(t, 1, body.UserID)
	assert.Equal(t, 1, body.ProductID)
	assert.Equal(t, 2, body.Quantity)
	assert.True(t, body.Total.Equal(decimal.RequireFromString("17998.00")),
		"total debe ser exactamente 17998.00, fue %s", body.Total)
	assert.Equal(t, "pending", body.Status)
	assert.True(t, strings.HasPrefix(body.ID, "ORD"), "el ID debe tener el prefijo ORD: %s", body.ID)

	// La orden recién creada es recuperable por su ID.
	resp = doJSON(t, app, http.MethodGet, "/orders/"+body.ID, nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

// Cada creación genera un ID distinto.
func TestOrderCreate_IDsUnicos(t *testing.T) {
	app := newTestApp(t)

	ids := make(map[string]bool)
	for i := 0; i < 10; i++ {
		resp := doJSON(t, app, http.MethodPost, "/orders", map[string]int{
			"user_id":    1,
			"product_id": 2,
			"quantity":   1,
		}, nil)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		var body dto.OrderResponse
		decodeJSON(t, resp, &body)
		assert.False(t, ids[body.ID], "ID repetido: %s", body.ID)
		ids[body.ID] = true
	}
}

// quantity omitido vale 1.
func TestOrderCreate_QuantityPorDefecto(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/orders", map[string]int{
		"user_id":    2,
		"product_id": 6,
	}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body dto.OrderResponse
	decodeJSON(t, resp, &body)
	assert.Equal(t, 1, body.Quantity)
	assert.True(t, body.Total.Equal(decimal.RequireFromString("1899.00")))
}

// Un product_id que no resuelve es un error del cliente y la colección no crece.
func TestOrderCreate_ProductoInexistente(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/orders", map[string]int{
		"user_id":    1,
		"product_id": 9999,
		"quantity":   1,
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errBody dto.ErrorResponse
	decodeJSON(t, resp, &errBody)
	assert.Equal(t, "PRODUCT_NOT_FOUND", errBody.Code)

	resp = doJSON(t, app, http.MethodGet, "/orders", nil, nil)
	var list dto.OrderListResponse
	decodeJSON(t, resp, &list)
	assert.Equal(t, 4, list.Total, "la colección debe quedar igual que la semilla")
}

func TestOrderCreate_QuantityNegativo(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/orders", map[string]int{
		"user_id":    1,
		"product_id": 1,
		"quantity":   -3,
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestOrderCreate_CuerpoFaltante(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/orders", nil, map[string]string{"Content-Type": "application/json"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestOrderCreate_FaltanCampos(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/orders", map[string]int{"quantity": 2}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body dto.ErrorResponse
	decodeJSON(t, resp, &body)
	assert.Equal(t, "VALIDATION", body.Code)
}
