package cart

import (
	"github.com/afromanapp/afroman-backend/internal/products"
	"github.com/shopspring/decimal"
)

// oversizeSurcharge is the flat extra charged for extended sizing.
var oversizeSurcharge = decimal.RequireFromString("2.00")

var oversizedSizes = map[string]struct{}{
	"4X": {},
	"5X": {},
}

// FinalPrice computes the unit price for a product/size combination: base price
// plus the flat surcharge for 4X and 5X sizes.
func FinalPrice(product products.Product, size string) decimal.Decimal {
	if _, ok := oversizedSizes[size]; ok {
		return product.Price.Add(oversizeSurcharge)
	}
	return product.Price
}
