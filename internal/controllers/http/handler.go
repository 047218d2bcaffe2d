package http

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"golang.org/x/sync/singleflight"

	"order-intake/internal/domain"
	"order-intake/internal/services"
)

const (
	csvCacheKey = "orders:csv"
	csvCacheTTL = 10 * time.Second
)

type Handler struct {
	service  *services.OrderService
	rdb      *redis.Client
	csvGroup singleflight.Group
}

// NewHandler wires the service into the HTTP surface. rdb may be nil; the
// CSV export is then rebuilt on every request.
func NewHandler(s *services.OrderService, rdb *redis.Client) *Handler {
	return &Handler{service: s, rdb: rdb}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/api/orders", h.CreateOrder)
	r.GET("/api/orders", h.ListOrders)
	r.GET("/api/health", h.Health)
	r.GET("/api/export/csv", h.ExportCSV)
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Missing required order information",
		})
		return
	}

	order, err := h.service.CreateOrder(c.Request.Context(), req.toSubmission())
	if err != nil {
		if errors.Is(err, services.ErrMissingOrderInfo) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Missing required order information",
			})
			return
		}
		log.Printf("Error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to process order",
		})
		return
	}

	// Stored set changed, cached export is stale.
	if h.rdb != nil {
		h.rdb.Del(context.Background(), csvCacheKey)
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   "Order received successfully!",
		"orderId":   order.OrderID,
		"timestamp": order.OrderDate,
	})
}

func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.service.ListOrders(c.Request.Context())
	if err != nil {
		log.Printf("Error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to list orders",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"totalOrders": len(orders),
		"orders":      orders,
	})
}

func (h *Handler) Health(c *gin.Context) {
	n, _ := h.service.CountOrders(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"ordersStored": n,
		"timestamp":    domain.Timestamp(time.Now()),
	})
}

func (h *Handler) ExportCSV(c *gin.Context) {
	ctx := c.Request.Context()

	if h.rdb != nil {
		if cached, err := h.rdb.Get(ctx, csvCacheKey).Result(); err == nil {
			writeCSV(c, cached)
			return
		}
	}

	// Collapse concurrent rebuilds into one pass over the store.
	v, err, _ := h.csvGroup.Do(csvCacheKey, func() (any, error) {
		doc, err := h.service.ExportCSV(ctx)
		if err != nil {
			return "", err
		}
		if h.rdb != nil {
			h.rdb.Set(ctx, csvCacheKey, doc, csvCacheTTL)
		}
		return doc, nil
	})
	if err != nil {
		log.Printf("Error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to export orders",
		})
		return
	}

	writeCSV(c, v.(string))
}

func writeCSV(c *gin.Context, doc string) {
	c.Header("Content-Disposition", "attachment; filename=orders.csv")
	c.Data(http.StatusOK, "text/csv", []byte(doc))
}
