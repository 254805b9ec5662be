package ordering

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/auy1jlll/pizza-vx-sub003/internal/catalog"
)

var oneHundred = decimal.NewFromInt(100)

// Price computes the selection's cost. It expects Validate to have
// passed already: an unknown item is a programmer error and comes back
// as a Go error, while unresolved option ids are skipped silently.
// All arithmetic is decimal and nothing is rounded here: two-place
// rounding belongs at the point of display.
func (e *Engine) Price(ctx context.Context, sel MenuItemSelection) (*PricingResult, error) {
	item, err := e.catalog.GetMenuItem(ctx, sel.MenuItemID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, fmt.Errorf("price: menu item %s not found", sel.MenuItemID)
		}
		return nil, fmt.Errorf("price: catalog lookup failed: %w", err)
	}

	index := buildOptionIndex(item)

	result := &PricingResult{
		BasePrice:          item.BasePrice,
		CustomizationPrice: decimal.Zero,
		Breakdown: []BreakdownEntry{{
			Name:  item.Name,
			Price: item.BasePrice,
			Kind:  KindBase,
		}},
	}

	for _, entry := range sel.Customizations {
		ref, ok := index[entry.CustomizationOptionID]
		if !ok {
			continue
		}

		price := optionPrice(item.BasePrice, ref.option, entryQuantity(entry))
		result.CustomizationPrice = result.CustomizationPrice.Add(price)

		// zero-cost picks are selected but not itemized: receipts
		// stay concise
		if !price.IsZero() {
			result.Breakdown = append(result.Breakdown, BreakdownEntry{
				Name:     ref.option.Name,
				Price:    price,
				Kind:     KindCustomization,
				Quantity: entry.Quantity,
			})
		}
	}

	result.TotalPrice = result.BasePrice.Add(result.CustomizationPrice)
	return result, nil
}

// optionPrice applies the option's price type. FLAT and PER_UNIT are
// numerically identical today; the branches stay separate because the
// intent differs and the arithmetic may diverge.
func optionPrice(basePrice decimal.Decimal, option *catalog.CustomizationOption, quantity int) decimal.Decimal {
	q := decimal.NewFromInt(int64(quantity))

	switch option.PriceType {
	case catalog.PricePercentage:
		return basePrice.Mul(option.PriceModifier).Div(oneHundred).Mul(q)
	case catalog.PricePerUnit:
		return option.PriceModifier.Mul(q)
	case catalog.PriceFlat:
		return option.PriceModifier.Mul(q)
	default:
		return decimal.Zero
	}
}
