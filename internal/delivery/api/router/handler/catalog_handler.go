package handler

import (
	"log/slog"
	"net/http"

	"biaresh/internal/delivery/api/response"
	deliverycontext "biaresh/internal/delivery/context"
	"biaresh/internal/domain/entity"
	domainerrors "biaresh/internal/domain/errors"
	"biaresh/internal/domain/service"
	"biaresh/internal/errors"
	"biaresh/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	defaultFeaturedLimit = 4
	defaultRelatedLimit  = 4
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	QRCodeSvc service.QRCodeService
	Logger    *slog.Logger
}

// CatalogHandler serves the public storefront catalog
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	qrcodeSvc service.QRCodeService
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		qrcodeSvc: params.QRCodeSvc,
		logger:    params.Logger,
	}
}

// ListCategories returns the category filter options
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	return response.OK(c, h.catalogUC.Categories())
}

// ListProducts filters by ?category= and ?q=
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()
	category := entity.Category(c.QueryParam("category"))

	return response.OK(c, h.catalogUC.Search(ctx, category, c.QueryParam("q")))
}

// ListFeatured returns the first ?limit= products
func (h *CatalogHandler) ListFeatured(c echo.Context) error {
	return response.OK(c, h.catalogUC.Featured(c.Request().Context(), queryInt(c, "limit", defaultFeaturedLimit)))
}

// GetProduct returns one product
func (h *CatalogHandler) GetProduct(c echo.Context) error {
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

// ListRelated returns other products of the same category
func (h *CatalogHandler) ListRelated(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, found := h.catalogUC.GetByID(ctx, id); !found {
		return domainerrors.ErrProductNotFound
	}

	return response.OK(c, h.catalogUC.Related(ctx, id, queryInt(c, "limit", defaultRelatedLimit)))
}

// GetProductQR renders a PNG QR code pointing at the product page
func (h *CatalogHandler) GetProductQR(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if _, found := h.catalogUC.GetByID(c.Request().Context(), id); !found {
		return domainerrors.ErrProductNotFound
	}

	png, err := h.qrcodeSvc.GenerateProductQR(id)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Error("Failed to render product QR",
			slog.Int64("product_id", id),
			slog.Any("error", err),
		)

		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
