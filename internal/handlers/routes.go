package handlers

import (
	"github.com/gin-gonic/gin"

	"backoffice/internal/orders"
	"backoffice/internal/report"
	"backoffice/internal/sections"
)

// AdminRoutes carries the collaborators behind the /admin/api surface.
type AdminRoutes struct {
	Registry      *orders.Registry
	Orders        orders.Source
	OrderDeleter  OrderDeleter
	Exporter      *report.Exporter
	Sections      sections.Source
	SectionWriter sections.Sink
	Products      sections.ProductSource
}

// RegisterAdminRoutes mounts the back-office API on api. Authentication is
// the caller's concern.
func RegisterAdminRoutes(api *gin.RouterGroup, deps AdminRoutes) {
	api.GET("/orders", ListOrders(deps.Orders))
	api.GET("/orders/export/:format", ExportOrders(deps.Orders, deps.Exporter))
	api.DELETE("/orders/:id", DeleteOrder(deps.OrderDeleter))

	sessions := api.Group("/orders/sessions")
	{
		sessions.POST("", OpenOrderSession(deps.Registry))
		sessions.POST("/:sid/refresh", RefreshOrderSession(deps.Registry))
		sessions.DELETE("/:sid", CloseOrderSession(deps.Registry))
		sessions.GET("/:sid/facets", GetSessionFacets(deps.Registry))
		sessions.GET("/:sid/criteria", GetSessionCriteria(deps.Registry))
		sessions.PUT("/:sid/criteria", PutSessionCriteria(deps.Registry))
		sessions.GET("/:sid/orders", GetSessionOrders(deps.Registry))
		sessions.PATCH("/:sid/orders/:id/status", UpdateSessionOrderStatus(deps.Registry))
		sessions.GET("/:sid/export/:format", ExportSessionOrders(deps.Registry, deps.Exporter))
	}

	api.GET("/sections", ListSections(deps.Sections))
	api.GET("/sections/next-order", GetNextSectionOrder(deps.Sections))
	api.GET("/sections/check-order", CheckSectionOrder(deps.Sections))
	api.POST("/sections/upsert", UpsertSection(deps.Sections, deps.SectionWriter))
	api.DELETE("/sections/:id", DeleteSection(deps.Sections, deps.SectionWriter))

	api.GET("/products", ListPickerProducts(deps.Products))
}
