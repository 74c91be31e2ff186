package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"backoffice/internal/models"
	"backoffice/internal/orders"
	"backoffice/internal/orders/ordersmock"
	"backoffice/internal/report"
	"backoffice/internal/sections"
	"backoffice/internal/sections/sectionsmock"
)

const (
	orderA = "aaaaaaaaaaaaaaaaaaaaaaa1"
	orderB = "bbbbbbbbbbbbbbbbbbbbbbb2"
)

func oid(t *testing.T, hex string) primitive.ObjectID {
	t.Helper()
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		t.Fatalf("invalid id %q: %v", hex, err)
	}
	return id
}

func scenarioOrders(t *testing.T) []models.Order {
	t.Helper()
	return []models.Order{
		{
			ID:            oid(t, orderA),
			Customer:      models.OrderCustomer{Name: "Asha Rao", Email: "asha@example.com"},
			Items:         []models.OrderItem{{Name: "Linen Shirt", Quantity: 1}},
			PaymentDetail: models.PaymentDetail{Method: "Card", TransactionID: "tx-1"},
			Status:        models.StatusDelivered,
			TotalAmount:   100,
			CreatedAt:     time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:            oid(t, orderB),
			Customer:      models.OrderCustomer{Name: "Ben Ode", Email: "ben@example.com"},
			Items:         []models.OrderItem{{Name: "Denim Jacket", Quantity: 2}},
			PaymentDetail: models.PaymentDetail{Method: models.PaymentMethodCOD},
			Status:        models.StatusCancelled,
			TotalAmount:   50,
			CreatedAt:     time.Date(2025, 3, 9, 9, 0, 0, 0, time.UTC),
		},
	}
}

type fakeDeleter struct{ err error }

func (f fakeDeleter) DeleteOrder(context.Context, string) error { return f.err }

type testDeps struct {
	orderSource   *ordersmock.MockSource
	statusSink    *ordersmock.MockStatusSink
	sectionSource *sectionsmock.MockSource
	sectionSink   *sectionsmock.MockSink
	productSource *sectionsmock.MockProductSource
	registry      *orders.Registry
}

func newTestRouter(t *testing.T) (*gin.Engine, testDeps) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	d := testDeps{
		orderSource:   ordersmock.NewMockSource(ctrl),
		statusSink:    ordersmock.NewMockStatusSink(ctrl),
		sectionSource: sectionsmock.NewMockSource(ctrl),
		sectionSink:   sectionsmock.NewMockSink(ctrl),
		productSource: sectionsmock.NewMockProductSource(ctrl),
	}
	d.registry = orders.NewRegistry(d.orderSource, d.statusSink, time.Minute)
	exporter := report.NewExporter(report.Shaper{Currency: "$", Location: time.UTC})

	r := gin.New()
	api := r.Group("/admin/api")
	RegisterAdminRoutes(api, AdminRoutes{
		Registry:      d.registry,
		Orders:        d.orderSource,
		OrderDeleter:  fakeDeleter{},
		Exporter:      exporter,
		Sections:      d.sectionSource,
		SectionWriter: d.sectionSink,
		Products:      d.productSource,
	})
	return r, d
}

func do(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("response is not JSON: %v (%s)", err, rec.Body.String())
	}
	return out
}

func openSession(t *testing.T, r http.Handler, d testDeps) string {
	t.Helper()
	d.orderSource.EXPECT().FetchOrders(gomock.Any()).Return(scenarioOrders(t), nil)
	rec := do(r, http.MethodPost, "/admin/api/orders/sessions", nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decode(t, rec)
	if body["count"].(float64) != 2 {
		t.Fatalf("expected 2 orders, got %v", body["count"])
	}
	return body["sessionId"].(string)
}

func TestRegisteredAdminRoutes(t *testing.T) {
	r, _ := newTestRouter(t)

	want := map[string]bool{
		"GET /admin/api/orders":                                   true,
		"GET /admin/api/orders/export/:format":                    true,
		"DELETE /admin/api/orders/:id":                            true,
		"POST /admin/api/orders/sessions":                         true,
		"POST /admin/api/orders/sessions/:sid/refresh":            true,
		"DELETE /admin/api/orders/sessions/:sid":                  true,
		"GET /admin/api/orders/sessions/:sid/facets":              true,
		"GET /admin/api/orders/sessions/:sid/criteria":            true,
		"PUT /admin/api/orders/sessions/:sid/criteria":            true,
		"GET /admin/api/orders/sessions/:sid/orders":              true,
		"PATCH /admin/api/orders/sessions/:sid/orders/:id/status": true,
		"GET /admin/api/orders/sessions/:sid/export/:format":      true,
		"GET /admin/api/sections":                                 true,
		"GET /admin/api/sections/next-order":                      true,
		"GET /admin/api/sections/check-order":                     true,
		"POST /admin/api/sections/upsert":                         true,
		"DELETE /admin/api/sections/:id":                          true,
		"GET /admin/api/products":                                 true,
	}

	routes := r.Routes()
	if len(routes) != len(want) {
		t.Fatalf("expected %d routes, got %d: %v", len(want), len(routes), routes)
	}
	for _, rt := range routes {
		if !want[rt.Method+" "+rt.Path] {
			t.Fatalf("unexpected route %s %s", rt.Method, rt.Path)
		}
	}
}

func TestSessionCriteriaFilterByStatus(t *testing.T) {
	r, d := newTestRouter(t)
	sid := openSession(t, r, d)

	rec := do(r, http.MethodPut, "/admin/api/orders/sessions/"+sid+"/criteria", map[string]any{"status": "Delivered"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = do(r, http.MethodGet, "/admin/api/orders/sessions/"+sid+"/orders", nil)
	var body struct {
		Data  []models.Order `json:"data"`
		Count int            `json:"count"`
		Total int            `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Count != 1 || body.Total != 2 || body.Data[0].ID.Hex() != orderA {
		t.Fatalf("expected only order A, got %+v", body)
	}
}

func TestSessionCriteriaRejectsBadRange(t *testing.T) {
	r, d := newTestRouter(t)
	sid := openSession(t, r, d)

	rec := do(r, http.MethodPut, "/admin/api/orders/sessions/"+sid+"/criteria", map[string]any{"minPrice": "90", "maxPrice": "10"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSessionCriteriaRejectsNonFiniteBounds(t *testing.T) {
	r, d := newTestRouter(t)
	sid := openSession(t, r, d)

	for _, body := range []map[string]any{
		{"minPrice": "NaN", "maxPrice": "NaN"},
		{"maxPrice": "Inf"},
		{"minPrice": "-1"},
		{"minPrice": true},
	} {
		rec := do(r, http.MethodPut, "/admin/api/orders/sessions/"+sid+"/criteria", body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%v: expected 400, got %d", body, rec.Code)
		}
	}

	rec := do(r, http.MethodGet, "/admin/api/orders/sessions/"+sid+"/criteria", nil)
	if rec.Code != http.StatusOK || rec.Body.Len() == 0 {
		t.Fatalf("expected the stored criteria to stay renderable, got %d %q", rec.Code, rec.Body.String())
	}
}

func TestSessionCriteriaAcceptsNumbersAndEchoedShape(t *testing.T) {
	r, d := newTestRouter(t)
	sid := openSession(t, r, d)
	path := "/admin/api/orders/sessions/" + sid + "/criteria"

	rec := do(r, http.MethodPut, path, map[string]any{"minPrice": 60, "maxPrice": 150.5, "from": "2025-03-10"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for numeric bounds, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := decode(t, rec)["count"].(float64); got != 1 {
		t.Fatalf("expected only order A, got %v", got)
	}

	echoed := do(r, http.MethodGet, path, nil)
	if echoed.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", echoed.Code)
	}
	first := decode(t, echoed)

	rec = do(r, http.MethodPut, path, first)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected the echoed criteria to be accepted, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := decode(t, rec)["count"].(float64); got != 1 {
		t.Fatalf("expected the echoed criteria to select order A again, got %v", got)
	}

	second := decode(t, do(r, http.MethodGet, path, nil))
	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if !bytes.Equal(a, b) {
		t.Fatalf("expected criteria to round-trip, got %s then %s", a, b)
	}
}

func TestOpenSessionFetchFailure(t *testing.T) {
	r, d := newTestRouter(t)
	d.orderSource.EXPECT().FetchOrders(gomock.Any()).Return(nil, errors.New("backend down"))

	rec := do(r, http.MethodPost, "/admin/api/orders/sessions", nil)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
	if id, _ := decode(t, rec)["sessionId"].(string); id == "" {
		t.Fatal("expected the session id so the client can refresh")
	}
	if d.registry.Len() != 1 {
		t.Fatalf("expected the session to stay open, got %d", d.registry.Len())
	}
}

func TestUnknownSession(t *testing.T) {
	r, _ := newTestRouter(t)
	for _, path := range []string{"/orders", "/facets", "/criteria", "/export/pdf"} {
		rec := do(r, http.MethodGet, "/admin/api/orders/sessions/nope"+path, nil)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d", path, rec.Code)
		}
	}
	if rec := do(r, http.MethodDelete, "/admin/api/orders/sessions/nope", nil); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 closing unknown session, got %d", rec.Code)
	}
}

func TestUpdateSessionOrderStatus(t *testing.T) {
	r, d := newTestRouter(t)
	sid := openSession(t, r, d)
	d.statusSink.EXPECT().SetOrderStatus(gomock.Any(), orderB, models.StatusShipped).Return(nil)

	rec := do(r, http.MethodPatch, "/admin/api/orders/sessions/"+sid+"/orders/"+orderB+"/status", map[string]any{"status": "shipped"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	store, err := d.registry.Get(sid)
	if err != nil {
		t.Fatalf("session lost: %v", err)
	}
	for _, o := range store.Orders() {
		if o.ID.Hex() == orderB && o.Status != models.StatusShipped {
			t.Fatalf("expected order B shipped, got %q", o.Status)
		}
	}
}

func TestUpdateSessionOrderStatusFailures(t *testing.T) {
	r, d := newTestRouter(t)
	sid := openSession(t, r, d)
	base := "/admin/api/orders/sessions/" + sid + "/orders/"

	if rec := do(r, http.MethodPatch, base+orderA+"/status", map[string]any{"status": "Lost"}); rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown status: expected 400, got %d", rec.Code)
	}
	if rec := do(r, http.MethodPatch, base+orderA+"/status", map[string]any{}); rec.Code != http.StatusBadRequest {
		t.Fatalf("missing status: expected 400, got %d", rec.Code)
	}
	if rec := do(r, http.MethodPatch, base+"cccccccccccccccccccccccc/status", map[string]any{"status": "Packing"}); rec.Code != http.StatusNotFound {
		t.Fatalf("unknown order: expected 404, got %d", rec.Code)
	}

	d.statusSink.EXPECT().SetOrderStatus(gomock.Any(), orderA, models.StatusPacking).Return(errors.New("write failed"))
	if rec := do(r, http.MethodPatch, base+orderA+"/status", map[string]any{"status": "Packing"}); rec.Code != http.StatusBadGateway {
		t.Fatalf("sink failure: expected 502, got %d", rec.Code)
	}
	store, _ := d.registry.Get(sid)
	for _, o := range store.Orders() {
		if o.ID.Hex() == orderA && o.Status != models.StatusDelivered {
			t.Fatalf("expected order A untouched after failure, got %q", o.Status)
		}
	}
}

func TestSessionExportEmptyProjection(t *testing.T) {
	r, d := newTestRouter(t)
	sid := openSession(t, r, d)
	do(r, http.MethodPut, "/admin/api/orders/sessions/"+sid+"/criteria", map[string]any{"search": "no such order"})

	rec := do(r, http.MethodGet, "/admin/api/orders/sessions/"+sid+"/export/xlsx", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Disposition"); got != `attachment; filename="orders.xlsx"` {
		t.Fatalf("unexpected disposition %q", got)
	}
	if rec.Header().Get("X-Report-Rows") != "0" {
		t.Fatalf("expected 0 rows, got %q", rec.Header().Get("X-Report-Rows"))
	}
	if rec.Body.Len() == 0 {
		t.Fatal("expected a header-only workbook")
	}
}

func TestSessionExportUnknownFormat(t *testing.T) {
	r, d := newTestRouter(t)
	sid := openSession(t, r, d)
	if rec := do(r, http.MethodGet, "/admin/api/orders/sessions/"+sid+"/export/csv", nil); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestStatelessListAndExport(t *testing.T) {
	r, d := newTestRouter(t)
	d.orderSource.EXPECT().FetchOrders(gomock.Any()).Return(scenarioOrders(t), nil).Times(2)

	rec := do(r, http.MethodGet, "/admin/api/orders?payment=pending", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if decode(t, rec)["count"].(float64) != 1 {
		t.Fatalf("expected only the COD order, got %s", rec.Body.String())
	}

	rec = do(r, http.MethodGet, "/admin/api/orders/export/pdf?product=Linen%20Shirt", nil)
	if rec.Code != http.StatusOK || rec.Header().Get("X-Report-Rows") != "1" {
		t.Fatalf("expected a one-row pdf, got %d rows=%q", rec.Code, rec.Header().Get("X-Report-Rows"))
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")) {
		t.Fatal("expected a PDF body")
	}
}

func TestStatelessListFetchFailure(t *testing.T) {
	r, d := newTestRouter(t)
	d.orderSource.EXPECT().FetchOrders(gomock.Any()).Return(nil, errors.New("timeout"))
	if rec := do(r, http.MethodGet, "/admin/api/orders", nil); rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

func TestStatelessListBadCriteria(t *testing.T) {
	r, _ := newTestRouter(t)
	if rec := do(r, http.MethodGet, "/admin/api/orders?from=yesterday", nil); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestDeleteOrderMapsNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.DELETE("/orders/:id", DeleteOrder(fakeDeleter{err: orders.ErrOrderNotFound}))
	if rec := do(r, http.MethodDelete, "/orders/"+orderA, nil); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func fixtureSections(t *testing.T) []models.Section {
	t.Helper()
	return []models.Section{
		{ID: oid(t, "5e0000000000000000000001"), Title: "New In", Order: 1},
		{ID: oid(t, "5e0000000000000000000002"), Title: "Best Sellers", Order: 2},
		{ID: oid(t, "5e0000000000000000000003"), Title: "Summer", Order: 3},
	}
}

func TestUpsertSectionConflict(t *testing.T) {
	r, d := newTestRouter(t)
	d.sectionSource.EXPECT().FetchSections(gomock.Any()).Return(fixtureSections(t), nil)
	d.sectionSink.EXPECT().UpsertSection(gomock.Any(), gomock.Any()).Times(0)

	rec := do(r, http.MethodPost, "/admin/api/sections/upsert", map[string]any{"title": "Winter", "order": 2})
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
	conflict := decode(t, rec)["conflict"].(map[string]any)
	if conflict["title"] != "Best Sellers" {
		t.Fatalf("expected conflict with Best Sellers, got %v", conflict)
	}
}

func TestUpsertSectionDefaultsToNextOrder(t *testing.T) {
	r, d := newTestRouter(t)
	d.sectionSource.EXPECT().FetchSections(gomock.Any()).Return(fixtureSections(t), nil).Times(2)
	d.sectionSink.EXPECT().UpsertSection(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s *models.Section) error {
			if s.Order != 4 {
				t.Fatalf("expected default order 4, got %d", s.Order)
			}
			if len(s.ProductIDs) != 1 {
				t.Fatalf("expected duplicate product ids collapsed, got %v", s.ProductIDs)
			}
			s.ID = primitive.NewObjectID()
			return nil
		})

	rec := do(r, http.MethodPost, "/admin/api/sections/upsert", map[string]any{
		"title":      "Winter",
		"productIds": []string{orderA, orderA},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestUpsertSectionEditKeepsOrder(t *testing.T) {
	r, d := newTestRouter(t)
	d.sectionSource.EXPECT().FetchSections(gomock.Any()).Return(fixtureSections(t), nil).Times(2)
	d.sectionSink.EXPECT().UpsertSection(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s *models.Section) error {
			if s.Order != 2 || s.ID.Hex() != "5e0000000000000000000002" {
				t.Fatalf("expected section 2 to stay at order 2, got %s at %d", s.ID.Hex(), s.Order)
			}
			return nil
		})

	rec := do(r, http.MethodPost, "/admin/api/sections/upsert", map[string]any{
		"id":    "5e0000000000000000000002",
		"title": "Best Sellers 2025",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestUpsertSectionValidation(t *testing.T) {
	r, _ := newTestRouter(t)
	if rec := do(r, http.MethodPost, "/admin/api/sections/upsert", map[string]any{"order": 3}); rec.Code != http.StatusBadRequest {
		t.Fatalf("missing title: expected 400, got %d", rec.Code)
	}
	if rec := do(r, http.MethodPost, "/admin/api/sections/upsert", map[string]any{"title": "X", "order": -1}); rec.Code != http.StatusBadRequest {
		t.Fatalf("negative order: expected 400, got %d", rec.Code)
	}
	if rec := do(r, http.MethodPost, "/admin/api/sections/upsert", map[string]any{"title": "X", "productIds": []string{"nope"}}); rec.Code != http.StatusBadRequest {
		t.Fatalf("bad product id: expected 400, got %d", rec.Code)
	}
}

func TestCheckSectionOrder(t *testing.T) {
	r, d := newTestRouter(t)
	d.sectionSource.EXPECT().FetchSections(gomock.Any()).Return(fixtureSections(t), nil).Times(2)

	rec := do(r, http.MethodGet, "/admin/api/sections/check-order?order=2", nil)
	if decode(t, rec)["ok"] != false {
		t.Fatalf("expected a conflict, got %s", rec.Body.String())
	}
	rec = do(r, http.MethodGet, "/admin/api/sections/check-order?order=2&editingId=5e0000000000000000000002", nil)
	if decode(t, rec)["ok"] != true {
		t.Fatalf("expected self-exclusion, got %s", rec.Body.String())
	}
	if rec := do(r, http.MethodGet, "/admin/api/sections/check-order?order=two", nil); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a non-integer order, got %d", rec.Code)
	}
}

func TestSectionListAndNextOrder(t *testing.T) {
	r, d := newTestRouter(t)
	secs := []models.Section{{Title: "A", Order: 0}, {Title: "B", Order: 5}, {Title: "C", Order: 7}}
	d.sectionSource.EXPECT().FetchSections(gomock.Any()).Return(secs, nil).Times(2)

	if got := decode(t, do(r, http.MethodGet, "/admin/api/sections/next-order", nil))["nextOrder"]; got != float64(8) {
		t.Fatalf("expected next order 8, got %v", got)
	}
	body := decode(t, do(r, http.MethodGet, "/admin/api/sections", nil))
	if len(body["data"].([]any)) != 3 {
		t.Fatalf("expected 3 sections, got %v", body["data"])
	}
}

func TestDeleteSectionNotFound(t *testing.T) {
	r, d := newTestRouter(t)
	d.sectionSink.EXPECT().DeleteSection(gomock.Any(), "5e00000000000000000000ff").Return(sections.ErrSectionNotFound)
	if rec := do(r, http.MethodDelete, "/admin/api/sections/5e00000000000000000000ff", nil); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestPickerProducts(t *testing.T) {
	r, d := newTestRouter(t)
	products := []models.Product{
		{Name: "Linen Shirt", Category: "Men", Tags: models.StringList{"summer"}},
		{Name: "Sun Dress", Category: "Women", Tags: models.StringList{"summer"}},
	}
	d.productSource.EXPECT().FetchProducts(gomock.Any(), int64(200)).Return(products, nil)

	body := decode(t, do(r, http.MethodGet, "/admin/api/products?limit=200&category=Women", nil))
	if body["count"].(float64) != 1 || body["total"].(float64) != 2 {
		t.Fatalf("unexpected picker response %v", body)
	}

	if rec := do(r, http.MethodGet, "/admin/api/products?limit=0", nil); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for limit=0, got %d", rec.Code)
	}
}

type fakeAdmins struct{ account models.AdminAccount }

func (f fakeAdmins) FindAdminByEmail(_ context.Context, email string) (models.AdminAccount, error) {
	if email != f.account.Email {
		return models.AdminAccount{}, errors.New("admin not found")
	}
	return f.account, nil
}

func TestAdminLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	admins := fakeAdmins{account: models.AdminAccount{ID: primitive.NewObjectID(), Email: "ops@example.com", PasswordHash: string(hash)}}
	r := gin.New()
	r.POST("/admin/login", AdminLogin(admins, "secret", time.Minute))

	rec := do(r, http.MethodPost, "/admin/login", map[string]any{"email": "OPS@example.com", "password": "s3cret"})
	if rec.Code != http.StatusOK || decode(t, rec)["token"] == "" {
		t.Fatalf("expected a token, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec := do(r, http.MethodPost, "/admin/login", map[string]any{"email": "ops@example.com", "password": "wrong"}); rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: expected 401, got %d", rec.Code)
	}
	if rec := do(r, http.MethodPost, "/admin/login", map[string]any{"email": "not-an-email", "password": "x"}); rec.Code != http.StatusBadRequest {
		t.Fatalf("bad email: expected 400, got %d", rec.Code)
	}
}
