package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCreateMenuItemRejectsNegativeBasePrice(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	err := service.CreateMenuItem(context.Background(), &MenuItem{
		Name:       "Broken Plate",
		CategoryID: "cat-1",
		BasePrice:  decimal.New(-100, -2),
	})
	if err == nil {
		t.Fatalf("expected negative base price to be rejected")
	}
}

func TestCreateMenuItemAssignsID(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	item := &MenuItem{
		Name:       "Plain Plate",
		CategoryID: "cat-1",
		BasePrice:  decimal.New(999, -2),
	}
	if err := service.CreateMenuItem(context.Background(), item); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.ID == "" {
		t.Fatalf("expected a generated id")
	}
	if !item.IsActive {
		t.Fatalf("new items must start active")
	}
}

func TestCreateGroupValidation(t *testing.T) {
	service := NewService(NewInMemoryRepository())
	ctx := context.Background()

	cases := []struct {
		name  string
		group CustomizationGroup
	}{
		{"missing name", CustomizationGroup{Type: MultiSelect}},
		{"bad type", CustomizationGroup{Name: "Toppings", Type: "DROPDOWN"}},
		{"negative min", CustomizationGroup{Name: "Toppings", Type: MultiSelect, MinSelections: -1}},
		{"max below min", CustomizationGroup{Name: "Toppings", Type: MultiSelect, MinSelections: 3, MaxSelections: intPtr(2)}},
		{"exact count on plain group", CustomizationGroup{Name: "Toppings", Type: MultiSelect, ExactCount: intPtr(2)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := tc.group
			if err := service.CreateGroup(ctx, &g); err == nil {
				t.Fatalf("expected rejection")
			}
		})
	}

	valid := CustomizationGroup{
		Name: "Choose 2 of 3 Sides", Type: SpecialLogic,
		IsRequired: true, ExactCount: intPtr(2),
	}
	if err := service.CreateGroup(ctx, &valid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateOptionValidation(t *testing.T) {
	service := NewService(NewInMemoryRepository())
	ctx := context.Background()

	err := service.CreateOption(ctx, &CustomizationOption{
		Name: "Bacon", GroupID: "grp-1", PriceType: "FREEBIE",
	})
	if err == nil {
		t.Fatalf("expected invalid price type to be rejected")
	}

	err = service.CreateOption(ctx, &CustomizationOption{
		Name: "Bacon", GroupID: "grp-1", PriceType: PriceFlat, MaxQuantity: intPtr(0),
	})
	if err == nil {
		t.Fatalf("expected zero max quantity to be rejected")
	}
}

// The storefront read strips inactive options; the engine path keeps
// them so validation can name the group.
func TestServiceGetMenuItemStripsInactiveOptions(t *testing.T) {
	repo := seedItemWithCategoryGroup(t)
	ctx := context.Background()

	_ = repo.CreateOption(ctx, &CustomizationOption{
		ID: "opt-live", GroupID: "grp-shared", Name: "Cheddar",
		PriceType: PriceFlat, IsActive: true,
	})
	_ = repo.CreateOption(ctx, &CustomizationOption{
		ID: "opt-dead", GroupID: "grp-shared", Name: "Retired",
		PriceType: PriceFlat, IsActive: false,
	})

	service := NewService(repo)

	item, err := service.GetMenuItem(ctx, "item-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(item.Groups) != 1 || len(item.Groups[0].Options) != 1 {
		t.Fatalf("expected one active option, got %+v", item.Groups)
	}
	if item.Groups[0].Options[0].ID != "opt-live" {
		t.Fatalf("expected the active option only, got %+v", item.Groups[0].Options)
	}

	// raw repository read keeps the flagged row
	raw, err := repo.GetMenuItem(ctx, "item-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(raw.Groups[0].Options) != 2 {
		t.Fatalf("expected repository read to keep inactive rows, got %+v", raw.Groups[0].Options)
	}
}
