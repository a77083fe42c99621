package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"biaresh/config"
	apimiddleware "biaresh/internal/delivery/api/middleware"
	"biaresh/internal/delivery/api/router"
	"biaresh/internal/delivery/api/router/handler"
	"biaresh/internal/domain/entity"
	"biaresh/internal/infra/auth"
	"biaresh/internal/infra/clock"
	"biaresh/internal/infra/persistence/blob"
	"biaresh/internal/infra/qrcode"
	"biaresh/internal/infra/validation"
	"biaresh/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
	"golang.org/x/crypto/bcrypt"
)

type recordingPublisher struct {
	events []*entity.StoreEvent
}

func (p *recordingPublisher) PublishStoreEvent(_ context.Context, event *entity.StoreEvent) error {
	p.events = append(p.events, event)

	return nil
}

func (p *recordingPublisher) Close() error {
	return nil
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

type testServer struct {
	t         *testing.T
	echo      *echo.Echo
	publisher *recordingPublisher
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	repo := blob.NewSlotRepository(bucket, "")

	clk := clock.New()
	v := validation.New()
	publisher := &recordingPublisher{}
	seed := []entity.Product{
		{ID: 1, Name: "صابون گل سرخ", NameEn: "Rose Soap", Price: 120000, Category: entity.CategorySoaps, Image: "/img/rose.jpg", Images: []string{"/img/rose.jpg"}, Benefits: []string{}},
		{ID: 2, Name: "روغن بادام", NameEn: "Almond Oil", Price: 280000, Category: entity.CategoryOils, Image: "/img/almond.jpg", Images: []string{"/img/almond.jpg"}, Benefits: []string{}},
	}

	catalogUC := impl.NewCatalogService(logger, repo, cfg, clk, v, seed)
	cartUC := impl.NewCartService(logger, repo, cfg)
	orderUC := impl.NewOrderService(logger, repo, cfg, clk)
	messageUC := impl.NewMessageService(logger, repo, cfg, clk, v, publisher)
	sessionUC, err := impl.NewSessionService(logger, repo, cfg, auth.NewBcryptHasherWithCost(bcrypt.MinCost))
	require.NoError(t, err)

	routerParams := router.RouterParams{
		CatalogHandler: handler.NewCatalogHandler(handler.CatalogHandlerParams{
			CatalogUC: catalogUC,
			QRCodeSvc: qrcode.NewQRCodeService(128, "M", "https://biaresh.example"),
			Logger:    logger,
		}),
		CartHandler: handler.NewCartHandler(handler.CartHandlerParams{CartUC: cartUC, CatalogUC: catalogUC}),
		CheckoutHandler: handler.NewCheckoutHandler(handler.CheckoutHandlerParams{
			CheckoutUC: impl.NewCheckoutService(logger, cartUC, orderUC, v, publisher, clk),
			MessageUC:  messageUC,
		}),
		AdminHandler: handler.NewAdminHandler(handler.AdminHandlerParams{
			SessionUC:   sessionUC,
			CatalogUC:   catalogUC,
			OrderUC:     orderUC,
			MessageUC:   messageUC,
			DashboardUC: impl.NewDashboardService(catalogUC, orderUC, messageUC),
		}),
		AdminGuard: apimiddleware.NewAdminGuard(sessionUC),
	}

	return &testServer{
		t:         t,
		echo:      NewEcho(cfg, logger, v, routerParams),
		publisher: publisher,
	}
}

func (s *testServer) do(method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 && strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))

	return out
}

func validCheckout() map[string]any {
	return map[string]any{
		"customer": map[string]string{
			"firstName":  "سارا",
			"lastName":   "احمدی",
			"email":      "sara@example.com",
			"phone":      "09121234567",
			"address":    "خیابان ولیعصر",
			"city":       "تهران",
			"postalCode": "1234567890",
		},
	}
}

func TestServer_Health(t *testing.T) {
	srv := newTestServer(t)

	rec, _ := srv.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestServer_Catalog(t *testing.T) {
	srv := newTestServer(t)

	rec, env := srv.do(http.MethodGet, "/api/v1/products?category=oils", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	products := decodeData[[]entity.Product](t, env)
	require.Len(t, products, 1)
	assert.Equal(t, "Almond Oil", products[0].NameEn)
	assert.Equal(t, rec.Header().Get("X-Request-Id"), env.Meta.RequestID)

	rec, env = srv.do(http.MethodGet, "/api/v1/products/404", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PRODUCT_NOT_FOUND", env.Error.Code)

	rec, env = srv.do(http.MethodGet, "/api/v1/products/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)

	rec, env = srv.do(http.MethodGet, "/api/v1/products/1abc", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Rose Soap", decodeData[entity.Product](t, env).NameEn)

	rec, env = srv.do(http.MethodGet, "/api/v1/categories", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeData[[]entity.CategoryInfo](t, env), 4)

	rec, _ = srv.do(http.MethodGet, "/api/v1/products/1/qr", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))
}

func TestServer_CartAndCheckout(t *testing.T) {
	srv := newTestServer(t)

	rec, env := srv.do(http.MethodPost, "/api/v1/checkout", validCheckout())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "CART_EMPTY", env.Error.Code)

	srv.do(http.MethodPost, "/api/v1/cart/items", map[string]any{"productId": 1, "openDrawer": true})
	rec, env = srv.do(http.MethodPost, "/api/v1/cart/items", map[string]any{"productId": 1})
	require.Equal(t, http.StatusOK, rec.Code)
	summary := decodeData[entity.CartSummary](t, env)
	require.Len(t, summary.Lines, 1)
	assert.Equal(t, 2, summary.Lines[0].Quantity)
	assert.Equal(t, int64(240000), summary.TotalPrice)
	assert.True(t, summary.DrawerOpen)

	rec, env = srv.do(http.MethodPost, "/api/v1/cart/items", map[string]any{"productId": 2, "variant": map[string]string{"size": "60ml"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeData[entity.CartSummary](t, env).Lines, 2)

	rec, env = srv.do(http.MethodPost, "/api/v1/cart/items", map[string]any{"productId": 99})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PRODUCT_NOT_FOUND", env.Error.Code)

	rec, env = srv.do(http.MethodPut, "/api/v1/cart/items/missing", map[string]int{"quantity": 3})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "CART_LINE_NOT_FOUND", env.Error.Code)

	rec, env = srv.do(http.MethodPost, "/api/v1/checkout", validCheckout())
	require.Equal(t, http.StatusCreated, rec.Code)
	order := decodeData[entity.Order](t, env)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, int64(240000+280000), order.Total)
	assert.Equal(t, entity.OrderStatusPending, order.Status)

	_, env = srv.do(http.MethodGet, "/api/v1/cart", nil)
	assert.Empty(t, decodeData[entity.CartSummary](t, env).Lines)

	require.Len(t, srv.publisher.events, 1)
	assert.Equal(t, entity.EventOrderPlaced, srv.publisher.events[0].Type)
}

func TestServer_VariantLineByEscapedID(t *testing.T) {
	srv := newTestServer(t)

	rec, env := srv.do(http.MethodPost, "/api/v1/cart/items", map[string]any{"productId": 2, "variant": map[string]string{"size": "50 ml"}})
	require.Equal(t, http.StatusOK, rec.Code)
	lines := decodeData[entity.CartSummary](t, env).Lines
	require.Len(t, lines, 1)
	require.Equal(t, `2-{"size":"50 ml"}`, lines[0].ID)

	// encodeURIComponent output, with ':' escaped as well
	const escaped = "/api/v1/cart/items/2-%7B%22size%22%3A%2250%20ml%22%7D"

	rec, env = srv.do(http.MethodPut, escaped, map[string]int{"quantity": 3})
	require.Equal(t, http.StatusOK, rec.Code)
	lines = decodeData[entity.CartSummary](t, env).Lines
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)

	rec, env = srv.do(http.MethodDelete, escaped, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeData[entity.CartSummary](t, env).Lines)

	srv.do(http.MethodPost, "/api/v1/cart/items", map[string]any{"productId": 2, "variant": map[string]string{"size": "50 ml"}})
	rec, env = srv.do(http.MethodDelete, "/api/v1/cart/items/"+url.PathEscape(`2-{"size":"50 ml"}`), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeData[entity.CartSummary](t, env).Lines)
}

func TestServer_ValidationDetails(t *testing.T) {
	srv := newTestServer(t)

	rec, env := srv.do(http.MethodPost, "/api/v1/contact", map[string]string{
		"name":    "مریم",
		"phone":   "12345",
		"message": "سلام",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, map[string]string{"phone": "لطفاً یک شماره تلفن معتبر ایرانی یا ترکی وارد کنید"}, env.Error.Details)

	rec, _ = srv.do(http.MethodPost, "/api/v1/contact", map[string]string{
		"name":    "مریم",
		"phone":   "0935 123 4567",
		"message": "سلام",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestServer_AdminGuard(t *testing.T) {
	srv := newTestServer(t)

	rec, env := srv.do(http.MethodGet, "/admin/api/dashboard", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)

	rec, env = srv.do(http.MethodPost, "/admin/login", map[string]string{"username": "admin", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)

	rec, env = srv.do(http.MethodPost, "/admin/login", map[string]string{"username": "", "password": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, env.Error.Details, "username")

	rec, _ = srv.do(http.MethodPost, "/admin/login", map[string]string{"username": "admin", "password": "admin123"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env = srv.do(http.MethodGet, "/admin/api/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, decodeData[entity.Dashboard](t, env).TotalProducts)

	srv.do(http.MethodPost, "/admin/logout", nil)
	rec, _ = srv.do(http.MethodGet, "/admin/api/orders", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_AdminProductsAndOrders(t *testing.T) {
	srv := newTestServer(t)
	srv.do(http.MethodPost, "/admin/login", map[string]string{"username": "admin", "password": "admin123"})

	rec, env := srv.do(http.MethodPost, "/admin/api/products", map[string]any{
		"name":        "صابون اسطوخودوس",
		"nameEn":      "Lavender Soap",
		"price":       "135000",
		"image":       "/img/lavender.jpg",
		"description": "صابون دست‌ساز",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeData[entity.Product](t, env)
	assert.Equal(t, int64(135000), created.Price)

	rec, env = srv.do(http.MethodPost, "/admin/api/products", map[string]any{"price": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "قیمت باید بیشتر از صفر باشد", env.Error.Details["price"])

	rec, _ = srv.do(http.MethodDelete, "/admin/api/products/1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec, _ = srv.do(http.MethodDelete, "/admin/api/products/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	srv.do(http.MethodPost, "/api/v1/cart/items", map[string]any{"productId": 2})
	_, env = srv.do(http.MethodPost, "/api/v1/checkout", validCheckout())
	order := decodeData[entity.Order](t, env)

	rec, env = srv.do(http.MethodPut, "/admin/api/orders/"+jsonID(order.ID)+"/status", map[string]string{"status": "shipped"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.OrderStatusShipped, decodeData[entity.Order](t, env).Status)

	rec, env = srv.do(http.MethodPut, "/admin/api/orders/"+jsonID(order.ID)+"/status", map[string]string{"status": "lost"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ORDER_STATUS", env.Error.Code)

	rec, _ = srv.do(http.MethodPut, "/admin/api/orders/1/status", map[string]string{"status": "shipped"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, env = srv.do(http.MethodGet, "/admin/api/orders?status=shipped", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeData[[]entity.Order](t, env), 1)
}

func TestServer_AdminMessages(t *testing.T) {
	srv := newTestServer(t)
	srv.do(http.MethodPost, "/admin/login", map[string]string{"username": "admin", "password": "admin123"})

	_, env := srv.do(http.MethodPost, "/api/v1/contact", map[string]string{
		"name":    "علی",
		"phone":   "09121112233",
		"message": "قیمت عمده؟",
		"type":    "wholesale",
	})
	message := decodeData[entity.ContactMessage](t, env)

	rec, env := srv.do(http.MethodGet, "/admin/api/messages?filter=unread", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeData[[]entity.ContactMessage](t, env), 1)

	rec, _ = srv.do(http.MethodPut, "/admin/api/messages/"+jsonID(message.ID)+"/read", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	_, env = srv.do(http.MethodGet, "/admin/api/messages?filter=unread", nil)
	assert.Empty(t, decodeData[[]entity.ContactMessage](t, env))

	rec, _ = srv.do(http.MethodDelete, "/admin/api/messages/"+jsonID(message.ID), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec, _ = srv.do(http.MethodGet, "/admin/api/messages/"+jsonID(message.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_UnknownRoute(t *testing.T) {
	srv := newTestServer(t)

	rec, env := srv.do(http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ROUTE_NOT_FOUND", env.Error.Code)
}

func jsonID(id int64) string {
	raw, _ := json.Marshal(id)

	return string(raw)
}
