package impl

import (
	"context"
	"log/slog"
	"strings"

	"biaresh/config"
	"biaresh/internal/domain/entity"
	"biaresh/internal/domain/repository"
	"biaresh/internal/domain/service"
	"biaresh/internal/infra/persistence/store"
	"biaresh/internal/usecase"
)

const defaultRelatedLimit = 4

type catalogService struct {
	logger    *slog.Logger
	products  *store.Store[entity.Product, int64]
	clock     service.Clock
	validator service.InputValidator
}

// NewCatalogService creates the catalog. seed populates the slot the first
// time it is found absent and is never consulted again once written.
func NewCatalogService(
	logger *slog.Logger,
	repo repository.SlotRepository,
	cfg *config.Config,
	clock service.Clock,
	validator service.InputValidator,
	seed []entity.Product,
) usecase.CatalogUsecase {
	return &catalogService{
		logger: logger,
		products: store.New(repo, logger, store.Options[entity.Product, int64]{
			Key:      cfg.Slots.Catalog,
			Identity: func(p entity.Product) int64 { return p.ID },
			Seed:     func() []entity.Product { return seed },
			Clone:    entity.Product.Clone,
		}),
		clock:     clock,
		validator: validator,
	}
}

func (srv *catalogService) List(ctx context.Context) []entity.Product {
	return srv.products.Items(ctx)
}

func (srv *catalogService) Search(ctx context.Context, category entity.Category, query string) []entity.Product {
	query = strings.TrimSpace(query)
	lowerQuery := strings.ToLower(query)

	return srv.products.Filter(ctx, func(p entity.Product) bool {
		if category != "" && category != entity.CategoryAll && p.Category != category {
			return false
		}
		if query == "" {
			return true
		}

		return strings.Contains(p.Name, query) || strings.Contains(strings.ToLower(p.NameEn), lowerQuery)
	})
}

func (srv *catalogService) Categories() []entity.CategoryInfo {
	return entity.Categories()
}

func (srv *catalogService) CountByCategory(ctx context.Context) map[entity.Category]int {
	counts := map[entity.Category]int{
		entity.CategorySoaps:    0,
		entity.CategoryOils:     0,
		entity.CategoryGiftSets: 0,
	}
	for _, p := range srv.products.Items(ctx) {
		counts[p.Category]++
	}

	return counts
}

func (srv *catalogService) GetByID(ctx context.Context, id int64) (entity.Product, bool) {
	return srv.products.Get(ctx, id)
}

func (srv *catalogService) Related(ctx context.Context, id int64, limit int) []entity.Product {
	if limit <= 0 {
		limit = defaultRelatedLimit
	}

	product, found := srv.products.Get(ctx, id)
	if !found {
		return []entity.Product{}
	}

	related := srv.products.Filter(ctx, func(p entity.Product) bool {
		return p.Category == product.Category && p.ID != product.ID
	})
	if len(related) > limit {
		related = related[:limit]
	}

	return related
}

func (srv *catalogService) Featured(ctx context.Context, limit int) []entity.Product {
	products := srv.products.Items(ctx)
	if limit > 0 && len(products) > limit {
		products = products[:limit]
	}

	return products
}

func (srv *catalogService) Create(ctx context.Context, input usecase.ProductInput) (entity.Product, error) {
	if err := srv.validator.Struct(input); err != nil {
		return entity.Product{}, err
	}

	product := input.ToProduct(srv.clock.NextID())
	srv.products.Append(ctx, product)

	srv.log(ctx).Info("Product created", slog.Int64("product_id", product.ID))

	return product, nil
}

func (srv *catalogService) Update(ctx context.Context, id int64, input usecase.ProductInput) (entity.Product, bool, error) {
	if err := srv.validator.Struct(input); err != nil {
		return entity.Product{}, false, err
	}

	replacement := input.ToProduct(id)
	product, found := srv.products.Update(ctx, id, func(entity.Product) entity.Product {
		return replacement
	})
	if !found {
		return entity.Product{}, false, nil
	}

	srv.log(ctx).Info("Product updated", slog.Int64("product_id", id))

	return product, true, nil
}

func (srv *catalogService) Delete(ctx context.Context, id int64) bool {
	removed := srv.products.Remove(ctx, id)
	if removed {
		srv.log(ctx).Info("Product deleted", slog.Int64("product_id", id))
	}

	return removed
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger, "catalog")
}
