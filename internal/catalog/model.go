package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// --------------------------------------------------
// ENUMS
// --------------------------------------------------

type SelectionType string

const (
	SingleSelect   SelectionType = "SINGLE_SELECT"
	MultiSelect    SelectionType = "MULTI_SELECT"
	QuantitySelect SelectionType = "QUANTITY_SELECT"
	SpecialLogic   SelectionType = "SPECIAL_LOGIC"
)

type PriceType string

const (
	// PriceFlat and PricePerUnit compute the same amount today.
	// They stay distinct because the intent differs: FLAT is a one-time
	// adjustment, PER_UNIT is multiplied by a customer-chosen count.
	PriceFlat       PriceType = "FLAT"
	PricePercentage PriceType = "PERCENTAGE"
	PricePerUnit    PriceType = "PER_UNIT"
)

// --------------------------------------------------
// CATALOG ENTITIES (owned by admin flows, read-only here)
// --------------------------------------------------

type MenuCategory struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	SortOrder int       `json:"sort_order"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// MenuItem as read by the ordering engine: category name is denormalized
// and Groups holds the EFFECTIVE customization groups (category-level
// merged with item-level associations, ordered by sort order).
type MenuItem struct {
	ID           string          `json:"id"`
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Name         string          `json:"name"`
	BasePrice    decimal.Decimal `json:"base_price"`
	IsActive     bool            `json:"is_active"`
	SortOrder    int             `json:"sort_order"`
	CreatedAt    time.Time       `json:"created_at"`

	Groups []CustomizationGroup `json:"customization_groups"`
}

type CustomizationGroup struct {
	ID string `json:"id"`

	// CategoryID is set for category-level groups that apply to every
	// item in the category. Item-level groups attach through
	// ItemGroupAssociation instead.
	CategoryID *string `json:"category_id,omitempty"`

	Name          string        `json:"name"`
	Type          SelectionType `json:"type"`
	IsRequired    bool          `json:"is_required"`
	MinSelections int           `json:"min_selections"`
	MaxSelections *int          `json:"max_selections,omitempty"` // nil = unbounded

	// ExactCount drives the exactly-K rule for SPECIAL_LOGIC groups
	// ("Choose 2 of 3 Sides"). Legacy rows that encode K in the group
	// name are normalized into this field at read time.
	ExactCount *int `json:"exact_count,omitempty"`

	SortOrder int  `json:"sort_order"`
	IsActive  bool `json:"is_active"`

	Options []CustomizationOption `json:"options"`
}

// CustomizationOption rows keep IsActive even on engine reads: the
// validator needs to tell "picked an inactive option" apart from
// "picked an id this item has never heard of".
type CustomizationOption struct {
	ID            string          `json:"id"`
	GroupID       string          `json:"group_id"`
	Name          string          `json:"name"`
	PriceModifier decimal.Decimal `json:"price_modifier"`
	PriceType     PriceType       `json:"price_type"`
	IsActive      bool            `json:"is_active"`
	MaxQuantity   *int            `json:"max_quantity,omitempty"`
	SortOrder     int             `json:"sort_order"`
}

// ItemGroupAssociation links a menu item to a customization group with
// item-specific overrides. At most one association per (item, group).
type ItemGroupAssociation struct {
	MenuItemID string `json:"menu_item_id"`
	GroupID    string `json:"group_id"`
	IsRequired *bool  `json:"is_required,omitempty"`
	SortOrder  *int   `json:"sort_order,omitempty"`
}

// ActiveOptions returns the selectable subset of a group's options.
func (g *CustomizationGroup) ActiveOptions() []CustomizationOption {
	active := make([]CustomizationOption, 0, len(g.Options))
	for _, o := range g.Options {
		if o.IsActive {
			active = append(active, o)
		}
	}
	return active
}

// FindOption looks an option up by id inside the group, active or not.
func (g *CustomizationGroup) FindOption(optionID string) *CustomizationOption {
	for i := range g.Options {
		if g.Options[i].ID == optionID {
			return &g.Options[i]
		}
	}
	return nil
}
