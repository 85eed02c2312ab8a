package cart

import (
	"github.com/shopspring/decimal"
)

// Entry is one cart line. FinalPrice is frozen when the entry is first created;
// repeat adds only bump Quantity and never reprice the line.
type Entry struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Size        string          `json:"size,omitempty"`
	Quantity    int             `json:"quantity"`
	FinalPrice  decimal.Decimal `json:"final_price"`
}

// Snapshot is the whole-cart state persisted on every mutation.
type Snapshot struct {
	Entries []Entry `json:"entries"`
}

// View is the snapshot plus its aggregates, as returned to callers.
type View struct {
	Entries []Entry         `json:"entries"`
	Total   decimal.Decimal `json:"total"`
	Count   int             `json:"count"`
}

// Total sums FinalPrice x Quantity across all entries.
func Total(entries []Entry) decimal.Decimal {
	total := decimal.Zero
	for _, entry := range entries {
		total = total.Add(entry.FinalPrice.Mul(decimal.NewFromInt(int64(entry.Quantity))))
	}
	return total
}

// Count sums quantities across all entries.
func Count(entries []Entry) int {
	count := 0
	for _, entry := range entries {
		count += entry.Quantity
	}
	return count
}
