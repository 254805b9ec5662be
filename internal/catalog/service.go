package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

var validSelectionTypes = map[SelectionType]bool{
	SingleSelect:   true,
	MultiSelect:    true,
	QuantitySelect: true,
	SpecialLogic:   true,
}

var validPriceTypes = map[PriceType]bool{
	PriceFlat:       true,
	PricePercentage: true,
	PricePerUnit:    true,
}

// --------------------------------------------------
// STOREFRONT READS
// --------------------------------------------------

// GetMenuItem returns the storefront view: inactive options are
// stripped, per the catalog read contract.
func (s *Service) GetMenuItem(ctx context.Context, id string) (*MenuItem, error) {
	item, err := s.repo.GetMenuItem(ctx, id)
	if err != nil {
		return nil, err
	}

	for i := range item.Groups {
		item.Groups[i].Options = item.Groups[i].ActiveOptions()
	}

	return item, nil
}

func (s *Service) GetCategoryBySlug(ctx context.Context, slug string) (*MenuCategory, error) {
	return s.repo.GetCategoryBySlug(ctx, slug)
}

func (s *Service) GetOption(ctx context.Context, id string) (*CustomizationOption, error) {
	return s.repo.GetOption(ctx, id)
}

func (s *Service) ListItemsByCategory(ctx context.Context, categoryID string) ([]MenuItem, error) {
	return s.repo.ListItemsByCategory(ctx, categoryID)
}

// --------------------------------------------------
// ADMIN WRITES
// --------------------------------------------------

func (s *Service) CreateCategory(ctx context.Context, category *MenuCategory) error {
	if strings.TrimSpace(category.Name) == "" {
		return errors.New("category name is required")
	}
	if strings.TrimSpace(category.Slug) == "" {
		return errors.New("category slug is required")
	}

	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	category.IsActive = true

	return s.repo.CreateCategory(ctx, category)
}

func (s *Service) CreateMenuItem(ctx context.Context, item *MenuItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return errors.New("item name is required")
	}
	if item.CategoryID == "" {
		return errors.New("category_id is required")
	}
	if item.BasePrice.IsNegative() {
		return errors.New("base price cannot be negative")
	}

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.IsActive = true

	return s.repo.CreateMenuItem(ctx, item)
}

func (s *Service) CreateGroup(ctx context.Context, group *CustomizationGroup) error {
	if strings.TrimSpace(group.Name) == "" {
		return errors.New("group name is required")
	}
	if !validSelectionTypes[group.Type] {
		return errors.New("invalid selection type")
	}
	if group.MinSelections < 0 {
		return errors.New("min_selections cannot be negative")
	}
	if group.MaxSelections != nil && *group.MaxSelections < group.MinSelections {
		return errors.New("max_selections cannot be below min_selections")
	}
	if group.ExactCount != nil && group.Type != SpecialLogic {
		return errors.New("exact_count is only valid on SPECIAL_LOGIC groups")
	}

	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	group.IsActive = true

	return s.repo.CreateGroup(ctx, group)
}

func (s *Service) CreateOption(ctx context.Context, option *CustomizationOption) error {
	if strings.TrimSpace(option.Name) == "" {
		return errors.New("option name is required")
	}
	if option.GroupID == "" {
		return errors.New("group_id is required")
	}
	if !validPriceTypes[option.PriceType] {
		return errors.New("invalid price type")
	}
	if option.MaxQuantity != nil && *option.MaxQuantity < 1 {
		return errors.New("max_quantity must be at least 1")
	}

	if option.ID == "" {
		option.ID = uuid.New().String()
	}
	option.IsActive = true

	return s.repo.CreateOption(ctx, option)
}

func (s *Service) AssociateGroup(ctx context.Context, assoc *ItemGroupAssociation) error {
	if assoc.MenuItemID == "" || assoc.GroupID == "" {
		return errors.New("menu_item_id and group_id are required")
	}
	return s.repo.AssociateGroup(ctx, assoc)
}
