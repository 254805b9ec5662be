package catalog

import (
	"regexp"
	"sort"
	"strconv"
)

// legacy convention: SPECIAL_LOGIC groups named "Choose 2 of 3 Sides"
// carried their count only in the display name.
var chooseKofN = regexp.MustCompile(`(?i)choose\s+(\d+)\s+of\s+\d+`)

// normalizeExactCount lifts the legacy name convention into the
// explicit ExactCount field so that no downstream code string-matches.
func normalizeExactCount(g *CustomizationGroup) {
	if g.Type != SpecialLogic || g.ExactCount != nil {
		return
	}
	m := chooseKofN.FindStringSubmatch(g.Name)
	if m == nil {
		return
	}
	if k, err := strconv.Atoi(m[1]); err == nil && k > 0 {
		g.ExactCount = &k
	}
}

// mergeEffectiveGroups builds an item's effective group list:
// category-level groups union item-level groups, with the item's
// association overriding is_required/sort_order on group-id collision.
// Output is ordered by effective sort order, name as tie-break.
func mergeEffectiveGroups(
	categoryGroups []CustomizationGroup,
	itemGroups []CustomizationGroup,
	assocs map[string]ItemGroupAssociation,
) []CustomizationGroup {

	byID := make(map[string]CustomizationGroup, len(categoryGroups)+len(itemGroups))
	for _, g := range categoryGroups {
		byID[g.ID] = g
	}

	// item-level entries replace category-level ones on collision
	for _, g := range itemGroups {
		byID[g.ID] = g
	}

	for id, assoc := range assocs {
		g, ok := byID[id]
		if !ok {
			continue
		}
		if assoc.IsRequired != nil {
			g.IsRequired = *assoc.IsRequired
		}
		if assoc.SortOrder != nil {
			g.SortOrder = *assoc.SortOrder
		}
		byID[id] = g
	}

	merged := make([]CustomizationGroup, 0, len(byID))
	for _, g := range byID {
		normalizeExactCount(&g)
		merged = append(merged, g)
	}

	sort.Slice(merged, func(i, j int) bool {
		if merged[i].SortOrder != merged[j].SortOrder {
			return merged[i].SortOrder < merged[j].SortOrder
		}
		return merged[i].Name < merged[j].Name
	})

	return merged
}
