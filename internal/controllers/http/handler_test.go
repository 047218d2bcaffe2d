package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"order-intake/internal/repository/memory"
	"order-intake/internal/services"
)

const validOrderBody = `{
	"customerInfo": {"name": "A. Student", "email": "student@example.com", "phone": "555-0100"},
	"items": [{"name": "Taco", "price": 4.75, "qty": 2, "itemTotal": 9.5}],
	"total": 9.5
}`

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := services.NewOrderService(memory.NewOrderRepository(), nil)
	h := NewHandler(svc, nil)
	r := gin.New()
	r.Use(CORS())
	h.RegisterRoutes(r)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestCreateOrder_Success(t *testing.T) {
	r := newTestRouter()

	w := doRequest(r, http.MethodPost, "/api/orders", validOrderBody)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeJSON(t, w)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Order received successfully!", resp["message"])
	assert.Equal(t, float64(1000), resp["orderId"])
	assert.NotEmpty(t, resp["timestamp"])
}

func TestCreateOrder_IDsIncreaseAcrossCalls(t *testing.T) {
	r := newTestRouter()

	for i := 0; i < 3; i++ {
		w := doRequest(r, http.MethodPost, "/api/orders", validOrderBody)
		assert.Equal(t, http.StatusCreated, w.Code)
		resp := decodeJSON(t, w)
		assert.Equal(t, float64(1000+i), resp["orderId"])
	}
}

func TestCreateOrder_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty object", `{}`},
		{"missing customer info", `{"items":[{"name":"Taco","price":4.75,"qty":2,"itemTotal":9.5}],"total":9.5}`},
		{"missing items", `{"customerInfo":{"name":"A","email":"a@x.io","phone":"1"},"total":9.5}`},
		{"empty items", `{"customerInfo":{"name":"A","email":"a@x.io","phone":"1"},"items":[],"total":9.5}`},
		{"missing total", `{"customerInfo":{"name":"A","email":"a@x.io","phone":"1"},"items":[{"name":"Taco","price":4.75,"qty":2,"itemTotal":9.5}]}`},
		{"zero total", `{"customerInfo":{"name":"A","email":"a@x.io","phone":"1"},"items":[{"name":"Taco","price":4.75,"qty":2,"itemTotal":9.5}],"total":0}`},
		{"malformed json", `{"customerInfo":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter()

			w := doRequest(r, http.MethodPost, "/api/orders", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := decodeJSON(t, w)
			assert.Equal(t, false, resp["success"])
			assert.Equal(t, "Missing required order information", resp["message"])

			// Rejected submissions leave the store untouched.
			health := decodeJSON(t, doRequest(r, http.MethodGet, "/api/health", ""))
			assert.Equal(t, float64(0), health["ordersStored"])
		})
	}
}

func TestListOrders(t *testing.T) {
	r := newTestRouter()

	assert.Equal(t, http.StatusCreated, doRequest(r, http.MethodPost, "/api/orders", validOrderBody).Code)
	assert.Equal(t, http.StatusCreated, doRequest(r, http.MethodPost, "/api/orders", validOrderBody).Code)

	w := doRequest(r, http.MethodGet, "/api/orders", "")
	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeJSON(t, w)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, float64(2), resp["totalOrders"])

	orders := resp["orders"].([]any)
	assert.Len(t, orders, 2)

	first := orders[0].(map[string]any)
	assert.Equal(t, float64(1000), first["orderId"])
	assert.Equal(t, "A. Student", first["customerName"])
	assert.Equal(t, "pending", first["status"])
	assert.Equal(t, float64(2), first["itemCount"])
	assert.Equal(t, float64(9.5), first["orderTotal"])

	items := first["items"].([]any)
	assert.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, "Taco", item["itemName"])
	assert.Equal(t, float64(2), item["quantity"])

	second := orders[1].(map[string]any)
	assert.Equal(t, float64(1001), second["orderId"])
}

func TestListOrders_EmptyStore(t *testing.T) {
	r := newTestRouter()

	w := doRequest(r, http.MethodGet, "/api/orders", "")
	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeJSON(t, w)
	assert.Equal(t, float64(0), resp["totalOrders"])
	assert.Len(t, resp["orders"].([]any), 0)
}

func TestHealth(t *testing.T) {
	r := newTestRouter()

	w := doRequest(r, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeJSON(t, w)
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, float64(0), resp["ordersStored"])
	assert.NotEmpty(t, resp["timestamp"])

	doRequest(r, http.MethodPost, "/api/orders", validOrderBody)

	resp = decodeJSON(t, doRequest(r, http.MethodGet, "/api/health", ""))
	assert.Equal(t, float64(1), resp["ordersStored"])
}

func TestExportCSV(t *testing.T) {
	r := newTestRouter()

	assert.Equal(t, http.StatusCreated, doRequest(r, http.MethodPost, "/api/orders", validOrderBody).Code)

	list := decodeJSON(t, doRequest(r, http.MethodGet, "/api/orders", ""))
	orderDate := list["orders"].([]any)[0].(map[string]any)["orderDate"].(string)

	w := doRequest(r, http.MethodGet, "/api/export/csv", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=orders.csv", w.Header().Get("Content-Disposition"))

	expected := "Order ID,Customer Name,Email,Phone,Order Date,Total,Items,Status\n" +
		fmt.Sprintf(`1000,"A. Student","student@example.com","555-0100","%s",9.5,"2x Taco",pending`, orderDate) + "\n"
	assert.Equal(t, expected, w.Body.String())
}

func TestExportCSV_EmptyStore(t *testing.T) {
	r := newTestRouter()

	w := doRequest(r, http.MethodGet, "/api/export/csv", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Order ID,Customer Name,Email,Phone,Order Date,Total,Items,Status\n", w.Body.String())
}

func TestCORS_AllowsAnyOrigin(t *testing.T) {
	r := newTestRouter()

	w := doRequest(r, http.MethodGet, "/api/health", "")
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Preflight(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/orders", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
}
