package catalog

import (
	"context"
	"sort"
	"sync"
)

// InMemoryRepository backs tests and local development without a
// database. Safe for concurrent reads and writes.
type InMemoryRepository struct {
	mu sync.RWMutex

	categories map[string]MenuCategory
	items      map[string]MenuItem
	groups     map[string]CustomizationGroup
	options    map[string]CustomizationOption

	// keyed by (menu_item_id, group_id); at most one per pair
	assocs map[[2]string]ItemGroupAssociation
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		categories: make(map[string]MenuCategory),
		items:      make(map[string]MenuItem),
		groups:     make(map[string]CustomizationGroup),
		options:    make(map[string]CustomizationOption),
		assocs:     make(map[[2]string]ItemGroupAssociation),
	}
}

// --------------------------------------------------
// READS
// --------------------------------------------------

func (r *InMemoryRepository) GetMenuItem(
	ctx context.Context,
	id string,
) (*MenuItem, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok || !item.IsActive {
		return nil, ErrNotFound
	}

	cat, ok := r.categories[item.CategoryID]
	if !ok || !cat.IsActive {
		return nil, ErrNotFound
	}
	item.CategoryName = cat.Name

	var categoryGroups []CustomizationGroup
	for _, g := range r.groups {
		if g.CategoryID != nil && *g.CategoryID == item.CategoryID && g.IsActive {
			categoryGroups = append(categoryGroups, r.withOptions(g))
		}
	}

	var itemGroups []CustomizationGroup
	assocs := make(map[string]ItemGroupAssociation)
	for key, a := range r.assocs {
		if key[0] != item.ID {
			continue
		}
		g, ok := r.groups[a.GroupID]
		if !ok || !g.IsActive {
			continue
		}
		itemGroups = append(itemGroups, r.withOptions(g))
		assocs[g.ID] = a
	}

	item.Groups = mergeEffectiveGroups(categoryGroups, itemGroups, assocs)

	return &item, nil
}

func (r *InMemoryRepository) GetCategoryBySlug(
	ctx context.Context,
	slug string,
) (*MenuCategory, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, cat := range r.categories {
		if cat.Slug == slug && cat.IsActive {
			c := cat
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (r *InMemoryRepository) GetOption(
	ctx context.Context,
	id string,
) (*CustomizationOption, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	opt, ok := r.options[id]
	if !ok || !opt.IsActive {
		return nil, ErrNotFound
	}
	o := opt
	return &o, nil
}

func (r *InMemoryRepository) ListItemsByCategory(
	ctx context.Context,
	categoryID string,
) ([]MenuItem, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	var items []MenuItem
	for _, item := range r.items {
		if item.CategoryID == categoryID && item.IsActive {
			items = append(items, item)
		}
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].SortOrder != items[j].SortOrder {
			return items[i].SortOrder < items[j].SortOrder
		}
		return items[i].Name < items[j].Name
	})

	return items, nil
}

// --------------------------------------------------
// WRITES
// --------------------------------------------------

func (r *InMemoryRepository) CreateCategory(ctx context.Context, category *MenuCategory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories[category.ID] = *category
	return nil
}

func (r *InMemoryRepository) CreateMenuItem(ctx context.Context, item *MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *item
	stored.Groups = nil
	r.items[item.ID] = stored
	return nil
}

func (r *InMemoryRepository) CreateGroup(ctx context.Context, group *CustomizationGroup) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *group
	stored.Options = nil
	r.groups[group.ID] = stored
	return nil
}

func (r *InMemoryRepository) CreateOption(ctx context.Context, option *CustomizationOption) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.options[option.ID] = *option
	return nil
}

func (r *InMemoryRepository) AssociateGroup(ctx context.Context, assoc *ItemGroupAssociation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.assocs[[2]string{assoc.MenuItemID, assoc.GroupID}] = *assoc
	return nil
}

// withOptions clones a group with its options attached, ordered the
// same way the database reads them.
func (r *InMemoryRepository) withOptions(g CustomizationGroup) CustomizationGroup {
	var opts []CustomizationOption
	for _, o := range r.options {
		if o.GroupID == g.ID {
			opts = append(opts, o)
		}
	}

	sort.Slice(opts, func(i, j int) bool {
		if opts[i].SortOrder != opts[j].SortOrder {
			return opts[i].SortOrder < opts[j].SortOrder
		}
		return opts[i].Name < opts[j].Name
	})

	g.Options = opts
	return g
}
