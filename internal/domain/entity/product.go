package entity

import "slices"

// Category identifies a storefront product group
type Category string

const (
	CategoryAll      Category = "all"
	CategorySoaps    Category = "soaps"
	CategoryOils     Category = "oils"
	CategoryGiftSets Category = "gift-sets"
)

// CategoryInfo is a selectable category with its Persian label
type CategoryInfo struct {
	ID   Category `json:"id" yaml:"id"`
	Name string   `json:"name" yaml:"name"`
}

// Categories lists the storefront filter options in display order.
func Categories() []CategoryInfo {
	return []CategoryInfo{
		{ID: CategoryAll, Name: "همه محصولات"},
		{ID: CategorySoaps, Name: "صابون‌ها"},
		{ID: CategoryOils, Name: "روغن‌ها"},
		{ID: CategoryGiftSets, Name: "ست‌های هدیه"},
	}
}

// Product is a catalog record. Image mirrors Images[0].
type Product struct {
	ID           int64    `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	NameEn       string   `json:"nameEn" yaml:"nameEn"`
	Price        int64    `json:"price" yaml:"price"`
	Category     Category `json:"category" yaml:"category"`
	Image        string   `json:"image" yaml:"image"`
	Images       []string `json:"images" yaml:"images"`
	Description  string   `json:"description" yaml:"description"`
	ScentProfile string   `json:"scentProfile,omitempty" yaml:"scentProfile"`
	Benefits     []string `json:"benefits" yaml:"benefits"`
	Ingredients  string   `json:"ingredients,omitempty" yaml:"ingredients"`
	PerfectFor   string   `json:"perfectFor,omitempty" yaml:"perfectFor"`
}

// Clone returns a copy that shares no slices with p
func (p Product) Clone() Product {
	p.Images = slices.Clone(p.Images)
	p.Benefits = slices.Clone(p.Benefits)

	return p
}

// Normalize enforces the image invariants: Images is non-empty when any
// image is known and Image always equals Images[0].
func (p *Product) Normalize() {
	if len(p.Images) == 0 && p.Image != "" {
		p.Images = []string{p.Image}
	}
	if len(p.Images) > 0 {
		p.Image = p.Images[0]
	}
	if p.Benefits == nil {
		p.Benefits = []string{}
	}
}
