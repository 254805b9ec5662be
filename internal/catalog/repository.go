package catalog

import (
	"context"
	"errors"
)

// ErrNotFound is returned for lookups that match no active record.
var ErrNotFound = errors.New("catalog record not found")

// Reader is the narrow read contract the ordering engine depends on.
// Engine code depends ONLY on this interface.
type Reader interface {

	// Item with its effective customization groups: category-level
	// groups merged with item-level associations (item overrides win
	// on group-id collision), ordered by sort order. Inactive items
	// and groups are invisible; option rows keep their IsActive flag.
	GetMenuItem(ctx context.Context, id string) (*MenuItem, error)

	GetCategoryBySlug(ctx context.Context, slug string) (*MenuCategory, error)

	// Active options only; inactive ids report ErrNotFound.
	GetOption(ctx context.Context, id string) (*CustomizationOption, error)
}

// Repository adds the admin write operations on top of Reader.
type Repository interface {
	Reader

	CreateCategory(ctx context.Context, category *MenuCategory) error
	CreateMenuItem(ctx context.Context, item *MenuItem) error
	CreateGroup(ctx context.Context, group *CustomizationGroup) error
	CreateOption(ctx context.Context, option *CustomizationOption) error

	// At most one association per (item, group) pair.
	AssociateGroup(ctx context.Context, assoc *ItemGroupAssociation) error

	ListItemsByCategory(ctx context.Context, categoryID string) ([]MenuItem, error)
}
