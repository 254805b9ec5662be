package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the catalog schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// MENU CATEGORIES
	// -------------------------------
	categoriesSQL := `
		CREATE TABLE IF NOT EXISTS menu_categories (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			slug VARCHAR(255) UNIQUE NOT NULL,
			sort_order INT NOT NULL DEFAULT 0,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, categoriesSQL); err != nil {
		return err
	}

	// -------------------------------
	// MENU ITEMS
	// -------------------------------
	itemsSQL := `
		CREATE TABLE IF NOT EXISTS menu_items (
			id UUID PRIMARY KEY,
			category_id UUID NOT NULL REFERENCES menu_categories(id),
			name VARCHAR(255) NOT NULL,
			base_price NUMERIC(10,2) NOT NULL CHECK (base_price >= 0),
			sort_order INT NOT NULL DEFAULT 0,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, itemsSQL); err != nil {
		return err
	}

	// -------------------------------
	// CUSTOMIZATION GROUPS
	// category_id set = category-level group (applies to all items)
	// -------------------------------
	groupsSQL := `
		CREATE TABLE IF NOT EXISTS customization_groups (
			id UUID PRIMARY KEY,
			category_id UUID NULL REFERENCES menu_categories(id),
			name VARCHAR(255) NOT NULL,
			type VARCHAR(50) NOT NULL,
			is_required BOOLEAN NOT NULL DEFAULT FALSE,
			min_selections INT NOT NULL DEFAULT 0 CHECK (min_selections >= 0),
			max_selections INT NULL,
			exact_count INT NULL,
			sort_order INT NOT NULL DEFAULT 0,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, groupsSQL); err != nil {
		return err
	}

	// exact_count arrived after the first release
	addExactCountSQL := `
		ALTER TABLE customization_groups
		ADD COLUMN IF NOT EXISTS exact_count INT NULL
	`
	if _, err := db.Exec(ctx, addExactCountSQL); err != nil {
		log.Println("Note: exact_count column may already exist")
	}

	// -------------------------------
	// CUSTOMIZATION OPTIONS
	// -------------------------------
	optionsSQL := `
		CREATE TABLE IF NOT EXISTS customization_options (
			id UUID PRIMARY KEY,
			group_id UUID NOT NULL REFERENCES customization_groups(id),
			name VARCHAR(255) NOT NULL,
			price_modifier NUMERIC(10,2) NOT NULL DEFAULT 0,
			price_type VARCHAR(50) NOT NULL DEFAULT 'FLAT',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			max_quantity INT NULL,
			sort_order INT NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, optionsSQL); err != nil {
		return err
	}

	// -------------------------------
	// ITEM <-> GROUP ASSOCIATIONS
	// -------------------------------
	assocSQL := `
		CREATE TABLE IF NOT EXISTS item_group_associations (
			id SERIAL PRIMARY KEY,
			menu_item_id UUID NOT NULL REFERENCES menu_items(id),
			group_id UUID NOT NULL REFERENCES customization_groups(id),
			is_required BOOLEAN NULL,
			sort_order INT NULL,
			UNIQUE (menu_item_id, group_id)
		)
	`
	if _, err := db.Exec(ctx, assocSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
