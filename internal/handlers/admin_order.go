package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"backoffice/internal/middleware"
	"backoffice/internal/models"
	"backoffice/internal/orders"
)

// OrderDeleter removes one order document.
type OrderDeleter interface {
	DeleteOrder(ctx context.Context, orderID string) error
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

/* =======================
   WORKSPACE SESSIONS
======================= */

func sessionSummary(id string, store *orders.Store) gin.H {
	return gin.H{
		"sessionId": id,
		"count":     store.Len(),
		"loadedAt":  store.LoadedAt(),
		"facets":    store.Facets(),
		"criteria":  store.Criteria(),
	}
}

func OpenOrderSession(registry *orders.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/api/orders/sessions"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		id, store, err := registry.Open(ctx)
		if err != nil {
			log.Printf("[%s] initial load failed for session %s: %v", route, id, err)
			c.JSON(http.StatusBadGateway, gin.H{
				"error":     "failed to fetch orders",
				"sessionId": id,
			})
			return
		}

		log.Printf("[ORDER] [INFO] session %s opened with %d orders", id, store.Len())
		c.JSON(http.StatusCreated, sessionSummary(id, store))
	}
}

func RefreshOrderSession(registry *orders.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/api/orders/sessions/:sid/refresh"
		defer handlePanic(c, route)

		store, err := registry.Get(c.Param("sid"))
		if err != nil {
			respondDomainError(c, route, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		if err := store.Load(ctx); err != nil {
			respondDomainError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, sessionSummary(c.Param("sid"), store))
	}
}

func CloseOrderSession(registry *orders.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !registry.Close(c.Param("sid")) {
			c.JSON(http.StatusNotFound, gin.H{"error": "workspace session not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "session closed"})
	}
}

func GetSessionFacets(registry *orders.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/api/orders/sessions/:sid/facets"

		store, err := registry.Get(c.Param("sid"))
		if err != nil {
			respondDomainError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, store.Facets())
	}
}

func GetSessionCriteria(registry *orders.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/api/orders/sessions/:sid/criteria"

		store, err := registry.Get(c.Param("sid"))
		if err != nil {
			respondDomainError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, store.Criteria())
	}
}

func PutSessionCriteria(registry *orders.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /admin/api/orders/sessions/:sid/criteria"
		defer handlePanic(c, route)

		store, err := registry.Get(c.Param("sid"))
		if err != nil {
			respondDomainError(c, route, err)
			return
		}

		var req criteriaRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}
		criteria, err := req.parse()
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		store.SetCriteria(criteria)
		c.JSON(http.StatusOK, gin.H{
			"criteria": store.Criteria(),
			"count":    len(store.Projection()),
		})
	}
}

func GetSessionOrders(registry *orders.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/api/orders/sessions/:sid/orders"
		defer handlePanic(c, route)

		store, err := registry.Get(c.Param("sid"))
		if err != nil {
			respondDomainError(c, route, err)
			return
		}

		projection := store.Projection()
		c.JSON(http.StatusOK, gin.H{
			"data":     projection,
			"count":    len(projection),
			"total":    store.Len(),
			"criteria": store.Criteria(),
		})
	}
}

func UpdateSessionOrderStatus(registry *orders.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PATCH /admin/api/orders/sessions/:sid/orders/:id/status"
		defer handlePanic(c, route)

		store, err := registry.Get(c.Param("sid"))
		if err != nil {
			respondDomainError(c, route, err)
			return
		}

		var req statusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}
		status, ok := models.ParseOrderStatus(req.Status)
		if !ok {
			respondWithError(c, http.StatusBadRequest, route, "unknown order status")
			return
		}

		orderID := strings.TrimSpace(c.Param("id"))
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		if err := store.SetStatus(ctx, orderID, status); err != nil {
			respondDomainError(c, route, err)
			return
		}

		log.Printf("[ORDER] [INFO] order %s set to %q by %s", orderID, status, middleware.Actor(c))
		c.JSON(http.StatusOK, gin.H{"id": orderID, "status": status})
	}
}

/* =======================
   STATELESS
======================= */

func ListOrders(source orders.Source) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/api/orders"
		defer handlePanic(c, route)

		criteria, err := bindCriteriaQuery(c)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		all, err := source.FetchOrders(ctx)
		if err != nil {
			respondDomainError(c, route, err)
			return
		}

		projection := orders.Filter(all, criteria)
		c.JSON(http.StatusOK, gin.H{
			"data":   projection,
			"count":  len(projection),
			"total":  len(all),
			"facets": orders.DeriveFacets(all),
		})
	}
}

func DeleteOrder(deleter OrderDeleter) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /admin/api/orders/:id"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		orderID := c.Param("id")
		if err := deleter.DeleteOrder(ctx, orderID); err != nil {
			respondDomainError(c, route, err)
			return
		}

		log.Printf("[ORDER] [INFO] order %s deleted by %s", orderID, middleware.Actor(c))
		c.JSON(http.StatusOK, gin.H{"message": "order deleted"})
	}
}
