package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"backoffice/internal/middleware"
	"backoffice/internal/models"
	"backoffice/internal/sections"
)

type sectionRequest struct {
	ID          string   `json:"id"`
	Title       string   `json:"title" binding:"required"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	ProductIDs  []string `json:"productIds"`
	Image       string   `json:"image"`
	Order       *int     `json:"order" binding:"omitempty,min=0"`
	Active      *bool    `json:"active"`
}

func (r sectionRequest) toSection() (models.Section, error) {
	s := models.Section{
		Title:       r.Title,
		Slug:        strings.TrimSpace(r.Slug),
		Description: strings.TrimSpace(r.Description),
		Image:       strings.TrimSpace(r.Image),
		ProductIDs:  make([]primitive.ObjectID, 0, len(r.ProductIDs)),
		Active:      true,
	}
	if r.Active != nil {
		s.Active = *r.Active
	}
	seen := make(map[primitive.ObjectID]struct{}, len(r.ProductIDs))
	for _, raw := range r.ProductIDs {
		id, err := primitive.ObjectIDFromHex(strings.TrimSpace(raw))
		if err != nil {
			return models.Section{}, err
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		s.ProductIDs = append(s.ProductIDs, id)
	}
	return s, nil
}

// loadSections builds a per-request section store from a fresh fetch.
func loadSections(c *gin.Context, route string, source sections.Source, sink sections.Sink) (*sections.Store, bool) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	store := sections.NewStore(source, sink)
	if err := store.Load(ctx); err != nil {
		respondDomainError(c, route, err)
		return nil, false
	}
	return store, true
}

func ListSections(source sections.Source) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/api/sections"
		defer handlePanic(c, route)

		store, ok := loadSections(c, route, source, nil)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"data":      store.Sections(),
			"nextOrder": store.NextOrder(),
		})
	}
}

func GetNextSectionOrder(source sections.Source) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/api/sections/next-order"
		defer handlePanic(c, route)

		store, ok := loadSections(c, route, source, nil)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"nextOrder": store.NextOrder()})
	}
}

// CheckSectionOrder is the live check while an order field is being edited.
// A conflict is a normal answer here, so it is reported with 200.
func CheckSectionOrder(source sections.Source) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/api/sections/check-order"
		defer handlePanic(c, route)

		candidate, err := strconv.Atoi(strings.TrimSpace(c.Query("order")))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "order must be an integer")
			return
		}

		store, ok := loadSections(c, route, source, nil)
		if !ok {
			return
		}

		err = store.Check(candidate, strings.TrimSpace(c.Query("editingId")))
		var conflict *sections.OrderConflictError
		switch {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{"ok": true})
		case errors.As(err, &conflict):
			c.JSON(http.StatusOK, gin.H{"ok": false, "conflict": conflict})
		default:
			respondDomainError(c, route, err)
		}
	}
}

func UpsertSection(source sections.Source, sink sections.Sink) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/api/sections/upsert"
		defer handlePanic(c, route)

		var req sectionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}
		section, err := req.toSection()
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid product id")
			return
		}

		store, ok := loadSections(c, route, source, sink)
		if !ok {
			return
		}
		editingID := strings.TrimSpace(req.ID)
		if req.Order != nil {
			section.Order = *req.Order
		} else {
			section.Order = defaultSectionOrder(store, editingID)
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		saved, err := store.Submit(ctx, section, editingID)
		if err != nil {
			respondDomainError(c, route, err)
			return
		}

		status := http.StatusOK
		if editingID == "" {
			status = http.StatusCreated
		}
		log.Printf("[SECTIONS] [INFO] section %s saved at order %d by %s", saved.ID.Hex(), saved.Order, middleware.Actor(c))
		c.JSON(status, gin.H{"section": saved, "sections": store.Sections()})
	}
}

// defaultSectionOrder keeps an edited section where it is and places a new
// one after the current highest order.
func defaultSectionOrder(store *sections.Store, editingID string) int {
	if editingID != "" {
		for _, s := range store.Sections() {
			if s.ID.Hex() == editingID {
				return s.Order
			}
		}
	}
	return store.NextOrder()
}

func DeleteSection(source sections.Source, sink sections.Sink) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /admin/api/sections/:id"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		store := sections.NewStore(source, sink)
		if err := store.Delete(ctx, c.Param("id")); err != nil {
			respondDomainError(c, route, err)
			return
		}

		log.Printf("[SECTIONS] [INFO] section %s deleted by %s", c.Param("id"), middleware.Actor(c))
		c.JSON(http.StatusOK, gin.H{"message": "section deleted", "sections": store.Sections()})
	}
}
