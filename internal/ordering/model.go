package ordering

import "github.com/shopspring/decimal"

// --------------------------------------------------
// INPUT
// --------------------------------------------------

// MenuItemSelection is the caller-supplied cart line: an item plus the
// customer's chosen customizations, in pick order.
type MenuItemSelection struct {
	MenuItemID     string           `json:"menu_item_id" binding:"required"`
	Customizations []SelectionEntry `json:"customizations"`
}

type SelectionEntry struct {
	CustomizationOptionID string `json:"customization_option_id"`
	Quantity              *int   `json:"quantity,omitempty"`
}

// --------------------------------------------------
// OUTPUTS (transient, built per call)
// --------------------------------------------------

// ValidationResult carries user-facing problems as ordered display
// strings. Errors are never returned as Go errors so the UI can show
// the whole list in one pass.
type ValidationResult struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

type BreakdownKind string

const (
	KindBase          BreakdownKind = "base"
	KindCustomization BreakdownKind = "customization"
)

type PricingResult struct {
	BasePrice decimal.Decimal `json:"base_price"`

	// Signed: discount options can push this negative.
	CustomizationPrice decimal.Decimal `json:"customization_price"`

	TotalPrice decimal.Decimal  `json:"total_price"`
	Breakdown  []BreakdownEntry `json:"breakdown"`
}

type BreakdownEntry struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Kind     BreakdownKind   `json:"kind"`
	Quantity *int            `json:"quantity,omitempty"`
}

// FormattedCartItem is the denormalized, display-ready view persisted
// as an order line: customizations regrouped by customization group.
type FormattedCartItem struct {
	MenuItemID     string           `json:"menu_item_id"`
	ItemName       string           `json:"item_name"`
	CategoryName   string           `json:"category_name"`
	BasePrice      decimal.Decimal  `json:"base_price"`
	TotalPrice     decimal.Decimal  `json:"total_price"`
	Customizations []FormattedGroup `json:"customizations"`
}

type FormattedGroup struct {
	GroupName  string               `json:"group_name"`
	Selections []FormattedSelection `json:"selections"`
}

type FormattedSelection struct {
	OptionName string          `json:"option_name"`
	Price      decimal.Decimal `json:"price"`
	Quantity   *int            `json:"quantity,omitempty"`
}

// --------------------------------------------------
// CHOOSE-SIDES HELPER (incremental UI feedback)
// --------------------------------------------------

type SideOption struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type ChooseSidesResult struct {
	GroupName           string       `json:"group_name"`
	AvailableSides      []SideOption `json:"available_sides"`
	SelectedSides       []SideOption `json:"selected_sides"`
	RemainingSelections int          `json:"remaining_selections"`
	IsComplete          bool         `json:"is_complete"`
	IsValid             bool         `json:"is_valid"`
}
