package ordering

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/auy1jlll/pizza-vx-sub003/internal/catalog"
)

// Validate checks a customer selection against the item's effective
// customization groups. User problems come back as ordered display
// strings; catalog failures never escape as errors: they collapse
// into a single generic entry so callers never handle an error from
// this method.
func (e *Engine) Validate(ctx context.Context, sel MenuItemSelection) ValidationResult {
	item, err := e.catalog.GetMenuItem(ctx, sel.MenuItemID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return ValidationResult{Errors: []string{"Menu item not found"}}
		}
		log.Printf("ordering: catalog lookup failed during validation: %v", err)
		return ValidationResult{Errors: []string{"An error occurred during validation"}}
	}

	var result ValidationResult
	matched := make(map[int]bool, len(sel.Customizations))

	for gi := range item.Groups {
		group := &item.Groups[gi]

		// entries belonging to this group, in pick order
		var partition []SelectionEntry
		for ei, entry := range sel.Customizations {
			if group.FindOption(entry.CustomizationOptionID) != nil {
				partition = append(partition, entry)
				matched[ei] = true
			}
		}

		// a required group with nothing picked reports only that;
		// min/max and per-entry checks are skipped for it
		if group.IsRequired && len(partition) == 0 {
			result.Errors = append(result.Errors,
				fmt.Sprintf("%s is required", group.Name))
			continue
		}

		if len(partition) < group.MinSelections {
			result.Errors = append(result.Errors,
				fmt.Sprintf("%s requires at least %d %s",
					group.Name, group.MinSelections, selectionWord(group.MinSelections)))
		}

		if group.MaxSelections != nil && len(partition) > *group.MaxSelections {
			result.Errors = append(result.Errors,
				fmt.Sprintf("%s allows maximum %d %s",
					group.Name, *group.MaxSelections, selectionWord(*group.MaxSelections)))
		}

		if group.Type == catalog.SpecialLogic && group.ExactCount != nil {
			result.Errors = append(result.Errors,
				validateExactCount(partition, *group.ExactCount)...)
		}

		result.Errors = append(result.Errors,
			validateEntries(group, partition)...)
	}

	// entries matching no effective group: ignored for legality
	// (they also price to nothing) but surfaced as warnings
	for ei, entry := range sel.Customizations {
		if !matched[ei] {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Customization %q does not apply to this item",
					entry.CustomizationOptionID))
		}
	}

	result.IsValid = len(result.Errors) == 0
	return result
}

// validateExactCount enforces the exactly-K rule for SPECIAL_LOGIC
// groups (dinner plates: pick exactly 2 sides, no repeats).
func validateExactCount(partition []SelectionEntry, k int) []string {
	var errs []string

	if len(partition) != k {
		errs = append(errs,
			fmt.Sprintf("You must choose exactly %d sides for dinner plates", k))
	}

	seen := make(map[string]bool, len(partition))
	for _, entry := range partition {
		if seen[entry.CustomizationOptionID] {
			errs = append(errs, "Cannot select the same side twice")
			break
		}
		seen[entry.CustomizationOptionID] = true
	}

	return errs
}

// validateEntries runs the per-entry checks: the picked option must be
// active within the group, quantity must respect the option cap, and
// QUANTITY_SELECT groups demand an explicit positive quantity.
func validateEntries(group *catalog.CustomizationGroup, partition []SelectionEntry) []string {
	var errs []string

	for _, entry := range partition {
		option := group.FindOption(entry.CustomizationOptionID)
		if option == nil || !option.IsActive {
			errs = append(errs,
				fmt.Sprintf("Invalid customization option selected in %s", group.Name))
			continue
		}

		if option.MaxQuantity != nil && entry.Quantity != nil && *entry.Quantity > *option.MaxQuantity {
			errs = append(errs,
				fmt.Sprintf("%s maximum quantity is %d", option.Name, *option.MaxQuantity))
		}

		if group.Type == catalog.QuantitySelect && (entry.Quantity == nil || *entry.Quantity < 1) {
			errs = append(errs,
				fmt.Sprintf("%s requires a quantity of at least 1", option.Name))
		}
	}

	return errs
}

func selectionWord(n int) string {
	if n == 1 {
		return "selection"
	}
	return "selections"
}
