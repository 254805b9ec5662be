package ordering

import (
	"context"
	"errors"
	"fmt"

	"github.com/auy1jlll/pizza-vx-sub003/internal/catalog"
)

// ErrNoSidesGroup is reported when an item carries no exactly-K side
// selection group.
var ErrNoSidesGroup = errors.New("menu item has no side selection group")

// GetChooseSides is the incremental UI helper for exactly-K side
// groups (dinner plates): as the customer picks sides one at a time,
// it reports what is available, what is picked, and how many picks
// remain. Unknown side ids are ignored, matching the engine's
// not-found policy. Final-submission legality stays with Validate.
func (e *Engine) GetChooseSides(
	ctx context.Context,
	menuItemID string,
	selectedOptionIDs []string,
) (*ChooseSidesResult, error) {

	item, err := e.catalog.GetMenuItem(ctx, menuItemID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, fmt.Errorf("choose sides: menu item %s not found", menuItemID)
		}
		return nil, fmt.Errorf("choose sides: catalog lookup failed: %w", err)
	}

	group := sidesGroup(item)
	if group == nil {
		return nil, ErrNoSidesGroup
	}
	k := *group.ExactCount

	result := &ChooseSidesResult{
		GroupName: group.Name,
	}

	for _, o := range group.ActiveOptions() {
		result.AvailableSides = append(result.AvailableSides, SideOption{
			ID:    o.ID,
			Name:  o.Name,
			Price: o.PriceModifier.Round(2),
		})
	}

	noDuplicates := true
	seen := make(map[string]bool, len(selectedOptionIDs))

	for _, id := range selectedOptionIDs {
		option := group.FindOption(id)
		if option == nil || !option.IsActive {
			continue
		}
		if seen[id] {
			noDuplicates = false
		}
		seen[id] = true

		// duplicates stay in the list and in the count: they occupy
		// picks, they just make the selection invalid
		result.SelectedSides = append(result.SelectedSides, SideOption{
			ID:    option.ID,
			Name:  option.Name,
			Price: option.PriceModifier.Round(2),
		})
	}

	picked := len(result.SelectedSides)

	result.RemainingSelections = max(0, k-picked)
	result.IsComplete = picked == k
	result.IsValid = picked <= k && noDuplicates

	return result, nil
}

// sidesGroup returns the first effective SPECIAL_LOGIC group carrying
// an exact count.
func sidesGroup(item *catalog.MenuItem) *catalog.CustomizationGroup {
	for i := range item.Groups {
		g := &item.Groups[i]
		if g.Type == catalog.SpecialLogic && g.ExactCount != nil {
			return g
		}
	}
	return nil
}
