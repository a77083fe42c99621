// Package catalog embeds the product list used to seed an empty catalog.
package catalog

import (
	_ "embed"

	"biaresh/internal/domain/entity"
	"biaresh/internal/errors"

	"gopkg.in/yaml.v3"
)

//go:embed default_products.yaml
var defaultProductsYAML []byte

// DefaultProducts decodes the embedded seed catalog
func DefaultProducts() ([]entity.Product, error) {
	return Parse(defaultProductsYAML)
}

// Parse decodes a YAML product list and normalises every record
func Parse(raw []byte) ([]entity.Product, error) {
	var products []entity.Product
	if err := yaml.Unmarshal(raw, &products); err != nil {
		return nil, errors.Wrap(err, "failed to decode product seed")
	}

	seen := make(map[int64]struct{}, len(products))
	for i := range products {
		if _, dup := seen[products[i].ID]; dup {
			return nil, errors.Errorf("duplicate product id %d in seed", products[i].ID)
		}
		seen[products[i].ID] = struct{}{}
		products[i].Normalize()
	}

	if products == nil {
		products = []entity.Product{}
	}

	return products, nil
}
