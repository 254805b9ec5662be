package ordering

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/auy1jlll/pizza-vx-sub003/internal/catalog"
)

func TestValidateUnknownMenuItem(t *testing.T) {
	engine := newTestEngine(t)

	result := engine.Validate(context.Background(), MenuItemSelection{
		MenuItemID: "no-such-item",
	})

	if result.IsValid {
		t.Fatalf("expected invalid result")
	}
	if !reflect.DeepEqual(result.Errors, []string{"Menu item not found"}) {
		t.Fatalf("expected only the not-found error, got %v", result.Errors)
	}
	if len(result.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", result.Warnings)
	}
}

func TestValidateRequiredGroupMissing(t *testing.T) {
	engine := newTestEngine(t)

	result := engine.Validate(context.Background(), MenuItemSelection{
		MenuItemID: "item-plate",
	})

	// exactly one error: the required sides group; min/max and the
	// exact-count rule must not pile on for the same group
	want := []string{"Choose 2 of 3 Sides is required"}
	if !reflect.DeepEqual(result.Errors, want) {
		t.Fatalf("expected %v, got %v", want, result.Errors)
	}
}

func TestValidateChooseTwoOfThree(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	cases := []struct {
		name    string
		picks   []SelectionEntry
		valid   bool
		errText string
	}{
		{"one side", pick("opt-fries"), false, "You must choose exactly 2 sides for dinner plates"},
		{"three sides", pick("opt-fries", "opt-coleslaw", "opt-soup"), false, "You must choose exactly 2 sides for dinner plates"},
		{"duplicate pair", pick("opt-fries", "opt-fries"), false, "Cannot select the same side twice"},
		{"two distinct sides", pick("opt-fries", "opt-soup"), true, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := engine.Validate(ctx, MenuItemSelection{
				MenuItemID:     "item-plate",
				Customizations: tc.picks,
			})

			if result.IsValid != tc.valid {
				t.Fatalf("expected valid=%v, got %v (errors: %v)", tc.valid, result.IsValid, result.Errors)
			}
			if tc.errText != "" {
				if len(result.Errors) == 0 || result.Errors[0] != tc.errText {
					t.Fatalf("expected first error %q, got %v", tc.errText, result.Errors)
				}
			}
		})
	}
}

func TestValidateMaxSelections(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	sides := pick("opt-fries", "opt-soup")

	// exactly at the limit: fine
	result := engine.Validate(ctx, MenuItemSelection{
		MenuItemID:     "item-plate",
		Customizations: append(sides, pick("opt-bacon", "opt-cheese")...),
	})
	if !result.IsValid {
		t.Fatalf("expected valid at the limit, got errors %v", result.Errors)
	}

	// one over
	result = engine.Validate(ctx, MenuItemSelection{
		MenuItemID:     "item-plate",
		Customizations: append(sides, pick("opt-bacon", "opt-cheese", "opt-coupon")...),
	})
	want := []string{"Extras allows maximum 2 selections"}
	if !reflect.DeepEqual(result.Errors, want) {
		t.Fatalf("expected %v, got %v", want, result.Errors)
	}
}

// Errors must come back in discovery order: groups by effective sort
// order, entries in pick order. Callers display the first one
// prominently.
func TestValidateErrorOrdering(t *testing.T) {
	engine := newTestEngine(t)

	result := engine.Validate(context.Background(), MenuItemSelection{
		MenuItemID: "item-pizza",
		Customizations: []SelectionEntry{
			{CustomizationOptionID: "opt-stuffed"},
			{CustomizationOptionID: "opt-thin"},
			{CustomizationOptionID: "opt-wings"}, // no quantity
		},
	})

	want := []string{
		"Crust Upgrade allows maximum 1 selection",
		"Buffalo Wings requires a quantity of at least 1",
		"Dipping Sauces requires at least 1 selection",
	}
	if !reflect.DeepEqual(result.Errors, want) {
		t.Fatalf("expected exact order %v, got %v", want, result.Errors)
	}
}

func TestValidateQuantityBounds(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	base := []SelectionEntry{{CustomizationOptionID: "opt-marinara"}}

	// over the option's cap
	result := engine.Validate(ctx, MenuItemSelection{
		MenuItemID:     "item-pizza",
		Customizations: append([]SelectionEntry{pickQty("opt-wings", 6)}, base...),
	})
	want := []string{"Buffalo Wings maximum quantity is 5"}
	if !reflect.DeepEqual(result.Errors, want) {
		t.Fatalf("expected %v, got %v", want, result.Errors)
	}

	// zero quantity on a QUANTITY_SELECT group
	result = engine.Validate(ctx, MenuItemSelection{
		MenuItemID:     "item-pizza",
		Customizations: append([]SelectionEntry{pickQty("opt-wings", 0)}, base...),
	})
	want = []string{"Buffalo Wings requires a quantity of at least 1"}
	if !reflect.DeepEqual(result.Errors, want) {
		t.Fatalf("expected %v, got %v", want, result.Errors)
	}

	// in range
	result = engine.Validate(ctx, MenuItemSelection{
		MenuItemID:     "item-pizza",
		Customizations: append([]SelectionEntry{pickQty("opt-wings", 3)}, base...),
	})
	if !result.IsValid {
		t.Fatalf("expected valid, got errors %v", result.Errors)
	}
}

func TestValidateInactiveOption(t *testing.T) {
	engine := newTestEngine(t)

	result := engine.Validate(context.Background(), MenuItemSelection{
		MenuItemID:     "item-plate",
		Customizations: append(pick("opt-fries", "opt-soup"), pick("opt-legacy")...),
	})

	want := []string{"Invalid customization option selected in Extras"}
	if !reflect.DeepEqual(result.Errors, want) {
		t.Fatalf("expected %v, got %v", want, result.Errors)
	}
}

func TestValidateUnknownOptionIgnoredWithWarning(t *testing.T) {
	engine := newTestEngine(t)

	result := engine.Validate(context.Background(), MenuItemSelection{
		MenuItemID:     "item-plate",
		Customizations: append(pick("opt-fries", "opt-soup"), pick("opt-from-another-menu")...),
	})

	if !result.IsValid {
		t.Fatalf("stray option ids must not invalidate the selection, got %v", result.Errors)
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("expected one warning, got %v", result.Warnings)
	}
}

type failingReader struct{}

func (failingReader) GetMenuItem(ctx context.Context, id string) (*catalog.MenuItem, error) {
	return nil, errors.New("connection refused")
}

func (failingReader) GetCategoryBySlug(ctx context.Context, slug string) (*catalog.MenuCategory, error) {
	return nil, errors.New("connection refused")
}

func (failingReader) GetOption(ctx context.Context, id string) (*catalog.CustomizationOption, error) {
	return nil, errors.New("connection refused")
}

// Catalog failures must not escape Validate: they collapse into one
// generic error entry.
func TestValidateCatalogFailure(t *testing.T) {
	engine := NewEngine(failingReader{})

	result := engine.Validate(context.Background(), MenuItemSelection{
		MenuItemID: "item-plate",
	})

	want := []string{"An error occurred during validation"}
	if !reflect.DeepEqual(result.Errors, want) {
		t.Fatalf("expected %v, got %v", want, result.Errors)
	}
}
