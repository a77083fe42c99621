package usecase

import (
	"context"

	"biaresh/internal/domain/entity"
)

// CatalogUsecase owns the product collection
type CatalogUsecase interface {
	List(ctx context.Context) []entity.Product

	// Search matches category ("all" or empty for any) and a query found in
	// the Persian name or, case-insensitively, the English name.
	Search(ctx context.Context, category entity.Category, query string) []entity.Product

	Categories() []entity.CategoryInfo
	CountByCategory(ctx context.Context) map[entity.Category]int

	GetByID(ctx context.Context, id int64) (entity.Product, bool)

	// Related returns up to limit other products of the same category
	Related(ctx context.Context, id int64, limit int) []entity.Product

	// Featured returns the first limit products in catalog order
	Featured(ctx context.Context, limit int) []entity.Product

	Create(ctx context.Context, input ProductInput) (entity.Product, error)

	// Update replaces the record, keeping its id. found is false when no
	// product has that id.
	Update(ctx context.Context, id int64, input ProductInput) (product entity.Product, found bool, err error)

	Delete(ctx context.Context, id int64) bool
}
