package ordering

import (
	"context"
	"errors"
	"fmt"

	"github.com/auy1jlll/pizza-vx-sub003/internal/catalog"
)

// FormatForCart produces the display-ready order line: prices from
// Price (called once), customizations regrouped by customization
// group. Groups appear in discovery order, meaning the first time a
// selection entry references them. An option id living in more than one
// group is attributed to the first group in effective order.
// Display prices are rounded to two places here, at the display
// boundary.
func (e *Engine) FormatForCart(ctx context.Context, sel MenuItemSelection) (*FormattedCartItem, error) {
	item, err := e.catalog.GetMenuItem(ctx, sel.MenuItemID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, fmt.Errorf("format: menu item %s not found", sel.MenuItemID)
		}
		return nil, fmt.Errorf("format: catalog lookup failed: %w", err)
	}

	pricing, err := e.Price(ctx, sel)
	if err != nil {
		return nil, err
	}

	formatted := &FormattedCartItem{
		MenuItemID:   item.ID,
		ItemName:     item.Name,
		CategoryName: item.CategoryName,
		BasePrice:    pricing.BasePrice.Round(2),
		TotalPrice:   pricing.TotalPrice.Round(2),
	}

	index := buildOptionIndex(item)

	// ordered map by group id, discovery order
	groupPos := make(map[string]int)

	for _, entry := range sel.Customizations {
		ref, ok := index[entry.CustomizationOptionID]
		if !ok {
			continue
		}

		pos, seen := groupPos[ref.group.ID]
		if !seen {
			pos = len(formatted.Customizations)
			groupPos[ref.group.ID] = pos
			formatted.Customizations = append(formatted.Customizations, FormattedGroup{
				GroupName: ref.group.Name,
			})
		}

		price := optionPrice(item.BasePrice, ref.option, entryQuantity(entry))

		formatted.Customizations[pos].Selections = append(
			formatted.Customizations[pos].Selections,
			FormattedSelection{
				OptionName: ref.option.Name,
				Price:      price.Round(2),
				Quantity:   entry.Quantity,
			},
		)
	}

	return formatted, nil
}
