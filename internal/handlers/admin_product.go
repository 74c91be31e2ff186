package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"backoffice/internal/sections"
)

const maxPickerLimit int64 = 5000

// ListPickerProducts serves the section editor's product picker: the
// filtered products plus the category, sub-category and tag facets.
func ListPickerProducts(source sections.ProductSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/api/products"
		defer handlePanic(c, route)

		limit, err := parseLimitParam(c.Query("limit"), sections.DefaultPickerLimit, maxPickerLimit)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		var filter sections.PickerFilter
		if err := c.ShouldBindQuery(&filter); err != nil {
			respondValidationError(c, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		picker, err := sections.LoadPicker(ctx, source, limit, filter)
		if err != nil {
			respondDomainError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"data":   picker.Products,
			"facets": picker.Facets,
			"count":  len(picker.Products),
			"total":  picker.Total,
			"limit":  limit,
		})
	}
}
