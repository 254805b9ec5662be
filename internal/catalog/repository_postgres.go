package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// GET MENU ITEM (with effective groups)
// --------------------------------------------------
func (r *PostgresRepository) GetMenuItem(
	ctx context.Context,
	id string,
) (*MenuItem, error) {

	var (
		item     MenuItem
		rawPrice string
	)

	err := r.db.QueryRow(ctx, `
		SELECT
			i.id,
			i.category_id,
			c.name,
			i.name,
			i.base_price::text,
			i.is_active,
			i.sort_order,
			i.created_at
		FROM menu_items i
		JOIN menu_categories c ON c.id = i.category_id
		WHERE i.id = $1
		  AND i.is_active = TRUE
		  AND c.is_active = TRUE
	`, id).Scan(
		&item.ID,
		&item.CategoryID,
		&item.CategoryName,
		&item.Name,
		&rawPrice,
		&item.IsActive,
		&item.SortOrder,
		&item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if item.BasePrice, err = decimal.NewFromString(rawPrice); err != nil {
		return nil, err
	}

	categoryGroups, err := r.groupsForCategory(ctx, item.CategoryID)
	if err != nil {
		return nil, err
	}

	itemGroups, assocs, err := r.groupsForItem(ctx, item.ID)
	if err != nil {
		return nil, err
	}

	item.Groups = mergeEffectiveGroups(categoryGroups, itemGroups, assocs)

	if err := r.attachOptions(ctx, item.Groups); err != nil {
		return nil, err
	}

	return &item, nil
}

// --------------------------------------------------
// GET CATEGORY BY SLUG
// --------------------------------------------------
func (r *PostgresRepository) GetCategoryBySlug(
	ctx context.Context,
	slug string,
) (*MenuCategory, error) {

	var cat MenuCategory

	err := r.db.QueryRow(ctx, `
		SELECT id, name, slug, sort_order, is_active, created_at
		FROM menu_categories
		WHERE slug = $1
		  AND is_active = TRUE
	`, slug).Scan(
		&cat.ID,
		&cat.Name,
		&cat.Slug,
		&cat.SortOrder,
		&cat.IsActive,
		&cat.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &cat, nil
}

// --------------------------------------------------
// GET OPTION (active only)
// --------------------------------------------------
func (r *PostgresRepository) GetOption(
	ctx context.Context,
	id string,
) (*CustomizationOption, error) {

	row := r.db.QueryRow(ctx, `
		SELECT
			id,
			group_id,
			name,
			price_modifier::text,
			price_type,
			is_active,
			max_quantity,
			sort_order
		FROM customization_options
		WHERE id = $1
		  AND is_active = TRUE
	`, id)

	opt, err := scanOption(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return opt, nil
}

// --------------------------------------------------
// ADMIN WRITES
// --------------------------------------------------
func (r *PostgresRepository) CreateCategory(
	ctx context.Context,
	category *MenuCategory,
) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO menu_categories (id, name, slug, sort_order, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`,
		category.ID,
		category.Name,
		category.Slug,
		category.SortOrder,
		category.IsActive,
	).Scan(&category.CreatedAt)
}

func (r *PostgresRepository) CreateMenuItem(
	ctx context.Context,
	item *MenuItem,
) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO menu_items (id, category_id, name, base_price, sort_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`,
		item.ID,
		item.CategoryID,
		item.Name,
		item.BasePrice.StringFixed(2),
		item.SortOrder,
		item.IsActive,
	).Scan(&item.CreatedAt)
}

func (r *PostgresRepository) CreateGroup(
	ctx context.Context,
	group *CustomizationGroup,
) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO customization_groups (
			id,
			category_id,
			name,
			type,
			is_required,
			min_selections,
			max_selections,
			exact_count,
			sort_order,
			is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`,
		group.ID,
		group.CategoryID,
		group.Name,
		group.Type,
		group.IsRequired,
		group.MinSelections,
		group.MaxSelections,
		group.ExactCount,
		group.SortOrder,
		group.IsActive,
	)
	return err
}

func (r *PostgresRepository) CreateOption(
	ctx context.Context,
	option *CustomizationOption,
) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO customization_options (
			id,
			group_id,
			name,
			price_modifier,
			price_type,
			is_active,
			max_quantity,
			sort_order
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		option.ID,
		option.GroupID,
		option.Name,
		option.PriceModifier.StringFixed(2),
		option.PriceType,
		option.IsActive,
		option.MaxQuantity,
		option.SortOrder,
	)
	return err
}

// AssociateGroup upserts so re-associating an item to the same group
// updates the overrides instead of violating the unique pair.
func (r *PostgresRepository) AssociateGroup(
	ctx context.Context,
	assoc *ItemGroupAssociation,
) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO item_group_associations (menu_item_id, group_id, is_required, sort_order)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (menu_item_id, group_id)
		DO UPDATE SET
			is_required = EXCLUDED.is_required,
			sort_order  = EXCLUDED.sort_order
	`,
		assoc.MenuItemID,
		assoc.GroupID,
		assoc.IsRequired,
		assoc.SortOrder,
	)
	return err
}

func (r *PostgresRepository) ListItemsByCategory(
	ctx context.Context,
	categoryID string,
) ([]MenuItem, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id, category_id, name, base_price::text, is_active, sort_order, created_at
		FROM menu_items
		WHERE category_id = $1
		  AND is_active = TRUE
		ORDER BY sort_order, name
	`, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []MenuItem

	for rows.Next() {
		var (
			item     MenuItem
			rawPrice string
		)
		if err := rows.Scan(
			&item.ID,
			&item.CategoryID,
			&item.Name,
			&rawPrice,
			&item.IsActive,
			&item.SortOrder,
			&item.CreatedAt,
		); err != nil {
			return nil, err
		}
		if item.BasePrice, err = decimal.NewFromString(rawPrice); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// --------------------------------------------------
// INTERNAL QUERIES
// --------------------------------------------------

const groupColumns = `
	g.id,
	g.category_id,
	g.name,
	g.type,
	g.is_required,
	g.min_selections,
	g.max_selections,
	g.exact_count,
	g.sort_order,
	g.is_active
`

func (r *PostgresRepository) groupsForCategory(
	ctx context.Context,
	categoryID string,
) ([]CustomizationGroup, error) {

	rows, err := r.db.Query(ctx, `
		SELECT `+groupColumns+`
		FROM customization_groups g
		WHERE g.category_id = $1
		  AND g.is_active = TRUE
	`, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanGroups(rows)
}

func (r *PostgresRepository) groupsForItem(
	ctx context.Context,
	itemID string,
) ([]CustomizationGroup, map[string]ItemGroupAssociation, error) {

	rows, err := r.db.Query(ctx, `
		SELECT `+groupColumns+`, a.is_required, a.sort_order
		FROM item_group_associations a
		JOIN customization_groups g ON g.id = a.group_id
		WHERE a.menu_item_id = $1
		  AND g.is_active = TRUE
	`, itemID)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var groups []CustomizationGroup
	assocs := make(map[string]ItemGroupAssociation)

	for rows.Next() {
		var (
			g     CustomizationGroup
			assoc ItemGroupAssociation
		)
		if err := rows.Scan(
			&g.ID,
			&g.CategoryID,
			&g.Name,
			&g.Type,
			&g.IsRequired,
			&g.MinSelections,
			&g.MaxSelections,
			&g.ExactCount,
			&g.SortOrder,
			&g.IsActive,
			&assoc.IsRequired,
			&assoc.SortOrder,
		); err != nil {
			return nil, nil, err
		}

		assoc.MenuItemID = itemID
		assoc.GroupID = g.ID

		groups = append(groups, g)
		assocs[g.ID] = assoc
	}

	return groups, assocs, rows.Err()
}

// attachOptions loads every group's options in one query.
func (r *PostgresRepository) attachOptions(
	ctx context.Context,
	groups []CustomizationGroup,
) error {

	if len(groups) == 0 {
		return nil
	}

	ids := make([]string, len(groups))
	index := make(map[string]*CustomizationGroup, len(groups))
	for i := range groups {
		ids[i] = groups[i].ID
		index[groups[i].ID] = &groups[i]
	}

	rows, err := r.db.Query(ctx, `
		SELECT
			id,
			group_id,
			name,
			price_modifier::text,
			price_type,
			is_active,
			max_quantity,
			sort_order
		FROM customization_options
		WHERE group_id = ANY($1)
		ORDER BY sort_order, name
	`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		opt, err := scanOption(rows)
		if err != nil {
			return err
		}
		if g, ok := index[opt.GroupID]; ok {
			g.Options = append(g.Options, *opt)
		}
	}

	return rows.Err()
}

func scanGroups(rows pgx.Rows) ([]CustomizationGroup, error) {
	var groups []CustomizationGroup

	for rows.Next() {
		var g CustomizationGroup
		if err := rows.Scan(
			&g.ID,
			&g.CategoryID,
			&g.Name,
			&g.Type,
			&g.IsRequired,
			&g.MinSelections,
			&g.MaxSelections,
			&g.ExactCount,
			&g.SortOrder,
			&g.IsActive,
		); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}

	return groups, rows.Err()
}

func scanOption(row pgx.Row) (*CustomizationOption, error) {
	var (
		opt      CustomizationOption
		rawPrice string
	)

	if err := row.Scan(
		&opt.ID,
		&opt.GroupID,
		&opt.Name,
		&rawPrice,
		&opt.PriceType,
		&opt.IsActive,
		&opt.MaxQuantity,
		&opt.SortOrder,
	); err != nil {
		return nil, err
	}

	modifier, err := decimal.NewFromString(rawPrice)
	if err != nil {
		return nil, err
	}
	opt.PriceModifier = modifier

	return &opt, nil
}
