package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"backoffice/internal/orders"
	"backoffice/internal/report"
	"backoffice/internal/sections"
)

const requestTimeout = 5 * time.Second

func handlePanic(c *gin.Context, route string) {
	if r := recover(); r != nil {
		log.Printf("[%s] panic recovered: %v", route, r)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func ensureDBConnection(ctx context.Context, db *mongo.Database) error {
	checkCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return db.Client().Ping(checkCtx, readpref.Primary())
}

func respondWithError(c *gin.Context, status int, route string, message string) {
	log.Printf("[%s] returning error %d: %s", route, status, message)
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

func respondValidationError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		details := make([]string, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			field := lowerCamel(fieldError.Field())
			switch fieldError.Tag() {
			case "required":
				details = append(details, fmt.Sprintf("%s is required", field))
			case "min":
				details = append(details, fmt.Sprintf("%s must be at least %s", field, fieldError.Param()))
			default:
				details = append(details, fmt.Sprintf("%s is invalid", field))
			}
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":   "validation failed",
			"details": details,
		})
		return
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid body", "details": err.Error()})
}

func lowerCamel(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

// respondDomainError maps errors from the orders, sections and report
// packages to a status code. Anything unrecognised is a collaborator failure.
func respondDomainError(c *gin.Context, route string, err error) {
	var conflict *sections.OrderConflictError
	var exportErr *report.ExportError

	switch {
	case errors.As(err, &conflict):
		log.Printf("[%s] returning error %d: %v", route, http.StatusConflict, err)
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{
			"error":    "section order already in use",
			"conflict": conflict,
		})
	case errors.Is(err, orders.ErrSessionExpired):
		respondWithError(c, http.StatusNotFound, route, "workspace session not found")
	case errors.Is(err, orders.ErrOrderNotFound):
		respondWithError(c, http.StatusNotFound, route, "order not found")
	case errors.Is(err, sections.ErrSectionNotFound):
		respondWithError(c, http.StatusNotFound, route, "section not found")
	case errors.Is(err, orders.ErrUnknownStatus):
		respondWithError(c, http.StatusBadRequest, route, "unknown order status")
	case errors.Is(err, sections.ErrNegativeOrder):
		respondWithError(c, http.StatusBadRequest, route, err.Error())
	case errors.Is(err, report.ErrUnknownFormat):
		respondWithError(c, http.StatusBadRequest, route, err.Error())
	case errors.As(err, &exportErr):
		respondWithError(c, http.StatusInternalServerError, route, "export failed")
	default:
		log.Printf("[%s] upstream error: %v", route, err)
		respondWithError(c, http.StatusBadGateway, route, "backend request failed")
	}
}
