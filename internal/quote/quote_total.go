package quote

import "math"

// ComputeTotal sums price * quantity * (1 + tax/100) over all items and
// rounds to cents, halves away from zero.
func ComputeTotal(items []Item) float64 {
	var subtotal, tax float64
	for _, it := range items {
		line := it.UnitPrice * it.Quantity
		subtotal += line
		tax += line * (it.TaxRate / 100)
	}
	return round2(subtotal + tax)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func itemsFromRequest(reqs []ItemRequest) []Item {
	items := make([]Item, 0, len(reqs))
	for _, r := range reqs {
		it := Item{
			Name:        r.Name,
			Description: r.Description,
			Quantity:    1,
		}
		if r.UnitPrice != nil {
			it.UnitPrice = *r.UnitPrice
		}
		if r.Quantity != nil {
			it.Quantity = *r.Quantity
		}
		if r.TaxRate != nil {
			it.TaxRate = *r.TaxRate
		}
		items = append(items, it)
	}
	return items
}
