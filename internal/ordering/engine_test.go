package ordering

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/auy1jlll/pizza-vx-sub003/internal/catalog"
)

func intPtr(n int) *int { return &n }

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

// seedCatalog builds the fixture menu:
//
//	Dinner Plates (category)
//	  category-level "Extras" (MULTI_SELECT, max 2)
//	  Dinner Plate $14.99
//	    "Choose 2 of 3 Sides" (SPECIAL_LOGIC, required, exactly 2)
//	Pizzas (category)
//	  Large Cheese Pizza $20.00
//	    "Crust Upgrade" (SINGLE_SELECT, max 1)
//	    "Wing Add-Ons" (QUANTITY_SELECT)
//	    "Dipping Sauces" (MULTI_SELECT, min 1)
func seedCatalog(t *testing.T) *catalog.InMemoryRepository {
	t.Helper()

	repo := catalog.NewInMemoryRepository()
	ctx := context.Background()

	dinnerCat := "cat-dinner"

	seed := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	seed(repo.CreateCategory(ctx, &catalog.MenuCategory{
		ID: dinnerCat, Name: "Dinner Plates", Slug: "dinner-plates", IsActive: true,
	}))
	seed(repo.CreateCategory(ctx, &catalog.MenuCategory{
		ID: "cat-pizza", Name: "Pizzas", Slug: "pizzas", IsActive: true,
	}))

	seed(repo.CreateMenuItem(ctx, &catalog.MenuItem{
		ID: "item-plate", CategoryID: dinnerCat, Name: "Dinner Plate",
		BasePrice: dec(t, "14.99"), IsActive: true,
	}))
	seed(repo.CreateMenuItem(ctx, &catalog.MenuItem{
		ID: "item-pizza", CategoryID: "cat-pizza", Name: "Large Cheese Pizza",
		BasePrice: dec(t, "20.00"), IsActive: true,
	}))

	// category-level group: applies to every dinner plate
	seed(repo.CreateGroup(ctx, &catalog.CustomizationGroup{
		ID: "grp-extras", CategoryID: &dinnerCat, Name: "Extras",
		Type: catalog.MultiSelect, MaxSelections: intPtr(2),
		SortOrder: 10, IsActive: true,
	}))
	seed(repo.CreateOption(ctx, &catalog.CustomizationOption{
		ID: "opt-bacon", GroupID: "grp-extras", Name: "Bacon",
		PriceModifier: dec(t, "2.00"), PriceType: catalog.PriceFlat, IsActive: true,
	}))
	seed(repo.CreateOption(ctx, &catalog.CustomizationOption{
		ID: "opt-cheese", GroupID: "grp-extras", Name: "Extra Cheese",
		PriceModifier: dec(t, "1.00"), PriceType: catalog.PriceFlat, IsActive: true,
	}))
	seed(repo.CreateOption(ctx, &catalog.CustomizationOption{
		ID: "opt-coupon", GroupID: "grp-extras", Name: "Loyalty Discount",
		PriceModifier: dec(t, "-1.00"), PriceType: catalog.PriceFlat, IsActive: true,
	}))
	seed(repo.CreateOption(ctx, &catalog.CustomizationOption{
		ID: "opt-legacy", GroupID: "grp-extras", Name: "Old Topping",
		PriceModifier: dec(t, "0.50"), PriceType: catalog.PriceFlat, IsActive: false,
	}))

	// dinner plate sides: exactly 2 of 3
	seed(repo.CreateGroup(ctx, &catalog.CustomizationGroup{
		ID: "grp-sides", Name: "Choose 2 of 3 Sides",
		Type: catalog.SpecialLogic, IsRequired: true, ExactCount: intPtr(2),
		SortOrder: 1, IsActive: true,
	}))
	seed(repo.CreateOption(ctx, &catalog.CustomizationOption{
		ID: "opt-fries", GroupID: "grp-sides", Name: "Fries",
		PriceModifier: decimal.Zero, PriceType: catalog.PriceFlat, IsActive: true,
	}))
	seed(repo.CreateOption(ctx, &catalog.CustomizationOption{
		ID: "opt-coleslaw", GroupID: "grp-sides", Name: "Coleslaw",
		PriceModifier: decimal.Zero, PriceType: catalog.PriceFlat, IsActive: true,
	}))
	seed(repo.CreateOption(ctx, &catalog.CustomizationOption{
		ID: "opt-soup", GroupID: "grp-sides", Name: "Soup",
		PriceModifier: dec(t, "1.50"), PriceType: catalog.PriceFlat, IsActive: true,
	}))
	seed(repo.AssociateGroup(ctx, &catalog.ItemGroupAssociation{
		MenuItemID: "item-plate", GroupID: "grp-sides",
	}))

	// pizza groups
	seed(repo.CreateGroup(ctx, &catalog.CustomizationGroup{
		ID: "grp-crust", Name: "Crust Upgrade",
		Type: catalog.SingleSelect, MaxSelections: intPtr(1),
		SortOrder: 1, IsActive: true,
	}))
	seed(repo.CreateOption(ctx, &catalog.CustomizationOption{
		ID: "opt-stuffed", GroupID: "grp-crust", Name: "Stuffed Crust",
		PriceModifier: dec(t, "10"), PriceType: catalog.PricePercentage, IsActive: true,
	}))
	seed(repo.CreateOption(ctx, &catalog.CustomizationOption{
		ID: "opt-thin", GroupID: "grp-crust", Name: "Thin Crust",
		PriceModifier: decimal.Zero, PriceType: catalog.PriceFlat, IsActive: true,
	}))
	seed(repo.AssociateGroup(ctx, &catalog.ItemGroupAssociation{
		MenuItemID: "item-pizza", GroupID: "grp-crust",
	}))

	seed(repo.CreateGroup(ctx, &catalog.CustomizationGroup{
		ID: "grp-wings", Name: "Wing Add-Ons",
		Type: catalog.QuantitySelect, SortOrder: 2, IsActive: true,
	}))
	seed(repo.CreateOption(ctx, &catalog.CustomizationOption{
		ID: "opt-wings", GroupID: "grp-wings", Name: "Buffalo Wings",
		PriceModifier: dec(t, "1.50"), PriceType: catalog.PricePerUnit,
		MaxQuantity: intPtr(5), IsActive: true,
	}))
	seed(repo.AssociateGroup(ctx, &catalog.ItemGroupAssociation{
		MenuItemID: "item-pizza", GroupID: "grp-wings",
	}))

	seed(repo.CreateGroup(ctx, &catalog.CustomizationGroup{
		ID: "grp-dips", Name: "Dipping Sauces",
		Type: catalog.MultiSelect, MinSelections: 1, SortOrder: 3, IsActive: true,
	}))
	seed(repo.CreateOption(ctx, &catalog.CustomizationOption{
		ID: "opt-marinara", GroupID: "grp-dips", Name: "Marinara",
		PriceModifier: dec(t, "0.50"), PriceType: catalog.PriceFlat, IsActive: true,
	}))
	seed(repo.AssociateGroup(ctx, &catalog.ItemGroupAssociation{
		MenuItemID: "item-pizza", GroupID: "grp-dips",
	}))

	return repo
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(seedCatalog(t))
}

func pick(ids ...string) []SelectionEntry {
	entries := make([]SelectionEntry, len(ids))
	for i, id := range ids {
		entries[i] = SelectionEntry{CustomizationOptionID: id}
	}
	return entries
}

func pickQty(id string, qty int) SelectionEntry {
	return SelectionEntry{CustomizationOptionID: id, Quantity: &qty}
}
