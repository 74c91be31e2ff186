package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"backoffice/internal/models"
	"backoffice/internal/orders"
	"backoffice/internal/report"
)

const exportTimeout = 30 * time.Second

// ExportSessionOrders exports the session's current projection. The
// projection is copied before encoding starts.
func ExportSessionOrders(registry *orders.Registry, exporter *report.Exporter) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/api/orders/sessions/:sid/export/:format"
		defer handlePanic(c, route)

		store, err := registry.Get(c.Param("sid"))
		if err != nil {
			respondDomainError(c, route, err)
			return
		}
		writeExport(c, route, exporter, store.Projection())
	}
}

// ExportOrders loads the collection, filters it by the query criteria and
// exports the result.
func ExportOrders(source orders.Source, exporter *report.Exporter) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/api/orders/export/:format"
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
		writeExport(c, route, exporter, orders.Filter(all, criteria))
	}
}

func writeExport(c *gin.Context, route string, exporter *report.Exporter, projection []models.Order) {
	format, err := report.ParseFormat(c.Param("format"))
	if err != nil {
		respondDomainError(c, route, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), exportTimeout)
	defer cancel()

	result, err := exporter.Export(ctx, format, projection)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Printf("[%s] export %s abandoned by client", route, format)
			c.Abort()
			return
		}
		if errors.Is(err, context.DeadlineExceeded) {
			respondWithError(c, http.StatusGatewayTimeout, route, "export timed out")
			return
		}
		respondDomainError(c, route, err)
		return
	}

	log.Printf("[REPORT] [INFO] %s export with %d rows (%d bytes)", result.Format, result.Rows, len(result.Body))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	c.Header("X-Report-Rows", strconv.Itoa(result.Rows))
	c.Data(http.StatusOK, result.ContentType, result.Body)
}
