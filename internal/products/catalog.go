package products

import (
	"strings"

	"github.com/afromanapp/afroman-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// Product is an immutable catalog row fixed at build time. Checkout happens on
// the external Stripe-hosted payment link; no price is charged by this service.
type Product struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Price       decimal.Decimal       `json:"price"`
	ImageURL    string                `json:"image_url"`
	Category    enums.ProductCategory `json:"category"`
	Sizes       []string              `json:"sizes,omitempty"`
	CheckoutURL string                `json:"checkout_url"`
}

// HasSize reports whether the product is offered in the given size label.
func (p Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

var clothingSizes = []string{"S", "M", "L", "XL", "2X", "3X", "4X", "5X"}

var catalog = []Product{
	{
		ID:          "tshirt",
		Name:        "Classic Afroman T-Shirt",
		Description: "Official Afroman merchandise. Premium quality cotton t-shirt featuring iconic Afroman graphics. Available in sizes S through 5X. Sizes 4X and 5X include an additional $2 charge for extended sizing.",
		Price:       decimal.RequireFromString("29.99"),
		ImageURL:    "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=800&q=80",
		Category:    enums.ProductCategoryClothing,
		Sizes:       clothingSizes,
		CheckoutURL: "https://buy.stripe.com/bJe00l77D5xC49DeG96Na0a",
	},
	{
		ID:          "hoodie",
		Name:        "Afroman Hoodie",
		Description: "Stay warm in style with the official Afroman hoodie. Premium fleece material with bold Afroman branding. Available in sizes S through 5X. Sizes 4X and 5X include an additional $2 charge for extended sizing.",
		Price:       decimal.RequireFromString("39.99"),
		ImageURL:    "https://images.unsplash.com/photo-1556821840-3a63f95609a7?w=800&q=80",
		Category:    enums.ProductCategoryClothing,
		Sizes:       clothingSizes,
		CheckoutURL: "https://buy.stripe.com/cNiaEZ9fLf8c9tXapT6Na0b",
	},
	{
		ID:          "movie",
		Name:        "Happily Divorced - Digital Movie",
		Description: "Purchase and stream Afroman's exclusive movie \"Happily Divorced\" instantly. This is a digital purchase - you will receive access to stream the movie after completing your purchase through our secure payment system. One-time purchase for unlimited streaming access.",
		Price:       decimal.RequireFromString("24.99"),
		ImageURL:    "https://images.unsplash.com/photo-1489599849927-2ee91cede3ba?w=800&q=80",
		Category:    enums.ProductCategoryMovie,
		CheckoutURL: "https://buy.stripe.com/9B6cN7bnT6BG49DbtX6Na09",
	},
}

// Catalog exposes read access to the fixed product list.
type Catalog struct {
	products []Product
	byID     map[string]Product
}

// NewCatalog builds the default build-time catalog.
func NewCatalog() *Catalog {
	return newCatalog(catalog)
}

func newCatalog(items []Product) *Catalog {
	byID := make(map[string]Product, len(items))
	for _, p := range items {
		byID[p.ID] = p
	}
	return &Catalog{products: items, byID: byID}
}

// List returns all products in display order.
func (c *Catalog) List() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// FindByID looks up a product by its identifier.
func (c *Catalog) FindByID(id string) (Product, bool) {
	p, ok := c.byID[strings.TrimSpace(id)]
	return p, ok
}
