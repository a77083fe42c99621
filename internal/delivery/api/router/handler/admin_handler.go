package handler

import (
	"net/http"

	"biaresh/internal/delivery/api/response"
	"biaresh/internal/domain/entity"
	domainerrors "biaresh/internal/domain/errors"
	"biaresh/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	SessionUC   usecase.SessionUsecase
	CatalogUC   usecase.CatalogUsecase
	OrderUC     usecase.OrderUsecase
	MessageUC   usecase.MessageUsecase
	DashboardUC usecase.DashboardUsecase
}

// AdminHandler serves the back office
type AdminHandler struct {
	sessionUC   usecase.SessionUsecase
	catalogUC   usecase.CatalogUsecase
	orderUC     usecase.OrderUsecase
	messageUC   usecase.MessageUsecase
	dashboardUC usecase.DashboardUsecase
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		sessionUC:   params.SessionUC,
		catalogUC:   params.CatalogUC,
		orderUC:     params.OrderUC,
		messageUC:   params.MessageUC,
		dashboardUC: params.DashboardUC,
	}
}

// LoginRequest carries the back-office credentials
type LoginRequest struct {
	Username string `json:"username" validate:"trimmed_required" msg:"نام کاربری الزامی است"`
	Password string `json:"password" validate:"required" msg:"رمز عبور الزامی است"`
}

// SessionResponse reports the session flag
type SessionResponse struct {
	Authenticated bool `json:"authenticated"`
}

// StatusRequest changes an order status
type StatusRequest struct {
	Status entity.OrderStatus `json:"status"`
}

// Login sets the session flag on a credential match
func (h *AdminHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.sessionUC.Login(c.Request().Context(), req.Username, req.Password); err != nil {
		return err
	}

	return response.OK(c, SessionResponse{Authenticated: true})
}

// Logout clears the session flag
func (h *AdminHandler) Logout(c echo.Context) error {
	h.sessionUC.Logout(c.Request().Context())

	return response.OK(c, SessionResponse{Authenticated: false})
}

// Session reports whether an admin is logged in
func (h *AdminHandler) Session(c echo.Context) error {
	return response.OK(c, SessionResponse{Authenticated: h.sessionUC.IsAuthenticated(c.Request().Context())})
}

// Dashboard returns the overview figures
func (h *AdminHandler) Dashboard(c echo.Context) error {
	return response.OK(c, h.dashboardUC.Overview(c.Request().Context()))
}

// ListProducts filters by ?category= and ?q=
func (h *AdminHandler) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()

	return response.OK(c, h.catalogUC.Search(ctx, entity.Category(c.QueryParam("category")), c.QueryParam("q")))
}

// GetProduct returns one product for editing
func (h *AdminHandler) GetProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	product, found := h.catalogUC.GetByID(c.Request().Context(), id)
	if !found {
		return domainerrors.ErrProductNotFound
	}

	return response.OK(c, product)
}

// CreateProduct validates the form and appends a product
func (h *AdminHandler) CreateProduct(c echo.Context) error {
	var req usecase.ProductInput
	if err := bind(c, &req); err != nil {
		return err
	}

	product, err := h.catalogUC.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return response.Created(c, product)
}

// UpdateProduct validates the form and replaces the product
func (h *AdminHandler) UpdateProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req usecase.ProductInput
	if err := bind(c, &req); err != nil {
		return err
	}

	product, found, err := h.catalogUC.Update(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	if !found {
		return domainerrors.ErrProductNotFound
	}

	return response.OK(c, product)
}

// DeleteProduct removes a product; past orders keep their snapshot
func (h *AdminHandler) DeleteProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if !h.catalogUC.Delete(c.Request().Context(), id) {
		return domainerrors.ErrProductNotFound
	}

	return c.NoContent(http.StatusNoContent)
}

// ListOrders filters by ?status=
func (h *AdminHandler) ListOrders(c echo.Context) error {
	status := entity.OrderStatus(c.QueryParam("status"))
	if status != "" && !status.IsValid() {
		return domainerrors.ErrInvalidOrderStatus
	}

	return response.OK(c, h.orderUC.FilterByStatus(c.Request().Context(), status))
}

// GetOrder returns one order
func (h *AdminHandler) GetOrder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	order, found := h.orderUC.GetByID(c.Request().Context(), id)
	if !found {
		return domainerrors.ErrOrderNotFound
	}

	return response.OK(c, order)
}

// UpdateOrderStatus overwrites the status with any known value
func (h *AdminHandler) UpdateOrderStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req StatusRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if !req.Status.IsValid() {
		return domainerrors.ErrInvalidOrderStatus
	}

	order, found := h.orderUC.SetStatus(c.Request().Context(), id, req.Status)
	if !found {
		return domainerrors.ErrOrderNotFound
	}

	return response.OK(c, order)
}

// DeleteOrder removes an order
func (h *AdminHandler) DeleteOrder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if !h.orderUC.Delete(c.Request().Context(), id) {
		return domainerrors.ErrOrderNotFound
	}

	return c.NoContent(http.StatusNoContent)
}

// ListMessages filters by ?filter=all|read|unread
func (h *AdminHandler) ListMessages(c echo.Context) error {
	filter := entity.ReadFilter(c.QueryParam("filter"))

	return response.OK(c, h.messageUC.Filter(c.Request().Context(), filter))
}

// GetMessage returns one message
func (h *AdminHandler) GetMessage(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	message, found := h.messageUC.GetByID(c.Request().Context(), id)
	if !found {
		return domainerrors.ErrMessageNotFound
	}

	return response.OK(c, message)
}

// MarkMessageRead sets the read flag
func (h *AdminHandler) MarkMessageRead(c echo.Context) error {
	return h.setRead(c, true)
}

// MarkMessageUnread clears the read flag
func (h *AdminHandler) MarkMessageUnread(c echo.Context) error {
	return h.setRead(c, false)
}

func (h *AdminHandler) setRead(c echo.Context, read bool) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	message, found := h.messageUC.SetRead(c.Request().Context(), id, read)
	if !found {
		return domainerrors.ErrMessageNotFound
	}

	return response.OK(c, message)
}

// DeleteMessage removes a message
func (h *AdminHandler) DeleteMessage(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if !h.messageUC.Delete(c.Request().Context(), id) {
		return domainerrors.ErrMessageNotFound
	}

	return c.NoContent(http.StatusNoContent)
}
