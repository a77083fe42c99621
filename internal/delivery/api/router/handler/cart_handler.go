package handler

import (
	"biaresh/internal/delivery/api/response"
	"biaresh/internal/domain/entity"
	domainerrors "biaresh/internal/domain/errors"
	"biaresh/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC    usecase.CartUsecase
	CatalogUC usecase.CatalogUsecase
}

// CartHandler serves the shopper's cart
type CartHandler struct {
	cartUC    usecase.CartUsecase
	catalogUC usecase.CatalogUsecase
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC:    params.CartUC,
		catalogUC: params.CatalogUC,
	}
}

// AddItemRequest adds one unit of a product variant
type AddItemRequest struct {
	ProductID  int64          `json:"productId" validate:"required"`
	Variant    entity.Variant `json:"variant"`
	OpenDrawer bool           `json:"openDrawer"`
}

// UpdateItemRequest sets a line quantity; zero or less removes the line
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

// DrawerRequest opens or closes the cart drawer
type DrawerRequest struct {
	Open bool `json:"open"`
}

// GetCart returns lines with totals
func (h *CartHandler) GetCart(c echo.Context) error {
	return response.OK(c, h.cartUC.Summary(c.Request().Context()))
}

// AddItem resolves the product from the catalog and adds it to the cart
func (h *CartHandler) AddItem(c echo.Context) error {
	var req AddItemRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	product, found := h.catalogUC.GetByID(ctx, req.ProductID)
	if !found {
		return domainerrors.ErrProductNotFound
	}

	h.cartUC.AddLine(ctx, product, req.Variant, req.OpenDrawer)

	return response.OK(c, h.cartUC.Summary(ctx))
}

// UpdateItem sets the quantity of one line
func (h *CartHandler) UpdateItem(c echo.Context) error {
	var req UpdateItemRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	lineID := pathLineID(c, "lineId")
	ctx := c.Request().Context()
	if !h.cartUC.SetQuantity(ctx, lineID, req.Quantity) {
		return domainerrors.ErrCartLineNotFound
	}

	return response.OK(c, h.cartUC.Summary(ctx))
}

// RemoveItem deletes one line
func (h *CartHandler) RemoveItem(c echo.Context) error {
	lineID := pathLineID(c, "lineId")
	ctx := c.Request().Context()
	if !h.cartUC.RemoveLine(ctx, lineID) {
		return domainerrors.ErrCartLineNotFound
	}

	return response.OK(c, h.cartUC.Summary(ctx))
}

// ClearCart empties the cart
func (h *CartHandler) ClearCart(c echo.Context) error {
	ctx := c.Request().Context()
	h.cartUC.Clear(ctx)

	return response.OK(c, h.cartUC.Summary(ctx))
}

// GetDrawer reports whether the cart drawer is open
func (h *CartHandler) GetDrawer(c echo.Context) error {
	return response.OK(c, DrawerRequest{Open: h.cartUC.DrawerOpen()})
}

// SetDrawer opens or closes the cart drawer
func (h *CartHandler) SetDrawer(c echo.Context) error {
	var req DrawerRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	h.cartUC.SetDrawerOpen(req.Open)

	return response.OK(c, req)
}
