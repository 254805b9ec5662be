package ordering

import (
	"github.com/auy1jlll/pizza-vx-sub003/internal/catalog"
)

// Engine is the menu customization and pricing engine. It is stateless
// across calls: every operation re-reads the catalog through the
// injected Reader, so concurrent calls need no coordination. The
// Reader's connection lifetime is owned by the caller.
type Engine struct {
	catalog catalog.Reader
}

func NewEngine(reader catalog.Reader) *Engine {
	return &Engine{catalog: reader}
}

// optionRef resolves an option id to its owning group in one hop.
type optionRef struct {
	group  *catalog.CustomizationGroup
	option *catalog.CustomizationOption
}

// buildOptionIndex maps option id -> (group, option) in a single pass
// over the item's effective groups, so pricing and formatting never
// rescan groups per selection entry. Only active options are indexed.
// If catalog data attaches one option id to several groups, the first
// group in effective order wins; later occurrences are ignored.
func buildOptionIndex(item *catalog.MenuItem) map[string]optionRef {
	index := make(map[string]optionRef)

	for gi := range item.Groups {
		g := &item.Groups[gi]
		for oi := range g.Options {
			o := &g.Options[oi]
			if !o.IsActive {
				continue
			}
			if _, seen := index[o.ID]; seen {
				continue
			}
			index[o.ID] = optionRef{group: g, option: o}
		}
	}

	return index
}

// entryQuantity applies the engine-wide default: a missing quantity
// means one unit.
func entryQuantity(e SelectionEntry) int {
	if e.Quantity == nil {
		return 1
	}
	return *e.Quantity
}
