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

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(pool); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return pool
}

// initSchema creates or updates the database schema
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS
	// -------------------------------
	userTableSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'CREW',
			company_id UUID NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, userTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// VESSELS (TENANT UNIT)
	// -------------------------------
	vesselTableSQL := `
		CREATE TABLE IF NOT EXISTS vessels (
			id UUID PRIMARY KEY,
			company_id UUID NOT NULL,
			name VARCHAR(255) NOT NULL,
			crew_count INT NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, vesselTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// INGREDIENT CATALOG
	// -------------------------------
	ingredientTableSQL := `
		CREATE TABLE IF NOT EXISTS ingredients (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) UNIQUE NOT NULL,
			unit VARCHAR(50) NOT NULL,
			storage_type VARCHAR(50) NOT NULL DEFAULT 'dry',
			ref_unit_price NUMERIC NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, ingredientTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// RECIPES + COMPOSITION
	// -------------------------------
	recipeTablesSQL := `
		CREATE TABLE IF NOT EXISTS recipes (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			servings INT NOT NULL DEFAULT 1,
			health_score NUMERIC NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS recipe_ingredients (
			recipe_id INT NOT NULL REFERENCES recipes(id),
			ingredient_id INT NOT NULL REFERENCES ingredients(id),
			amount_per_serving NUMERIC NOT NULL,
			PRIMARY KEY (recipe_id, ingredient_id)
		);
	`
	if _, err := pool.Exec(ctx, recipeTablesSQL); err != nil {
		return err
	}

	// -------------------------------
	// MENU PLAN ENTRIES
	// -------------------------------
	planTableSQL := `
		CREATE TABLE IF NOT EXISTS menu_plan_entries (
			id SERIAL PRIMARY KEY,
			vessel_id UUID NOT NULL REFERENCES vessels(id),
			plan_date DATE NOT NULL,
			meal_type VARCHAR(50) NOT NULL,
			recipe_ids INT[] NOT NULL DEFAULT '{}',
			health_score NUMERIC NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (vessel_id, plan_date, meal_type)
		)
	`
	if _, err := pool.Exec(ctx, planTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// PROCUREMENT ADJUSTMENTS
	// (UNIQUE KEY = UPSERT KEY, LAST WRITE WINS)
	// -------------------------------
	adjustmentTableSQL := `
		CREATE TABLE IF NOT EXISTS procurement_adjustments (
			id SERIAL PRIMARY KEY,
			vessel_id UUID NOT NULL REFERENCES vessels(id),
			ingredient_id INT NOT NULL REFERENCES ingredients(id),
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			planned_amount NUMERIC NOT NULL DEFAULT 0,
			order_amount NUMERIC NOT NULL DEFAULT 0,
			in_stock BOOLEAN NOT NULL DEFAULT FALSE,
			unit_price NUMERIC NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (vessel_id, ingredient_id, start_date, end_date)
		)
	`
	if _, err := pool.Exec(ctx, adjustmentTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// MEAL FEEDBACK
	// -------------------------------
	feedbackTableSQL := `
		CREATE TABLE IF NOT EXISTS meal_feedback (
			id SERIAL PRIMARY KEY,
			vessel_id UUID NOT NULL REFERENCES vessels(id),
			user_id UUID NOT NULL REFERENCES users(id),
			meal_date DATE NOT NULL,
			meal_type VARCHAR(50) NOT NULL,
			rating INT NOT NULL,
			comment TEXT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (vessel_id, user_id, meal_date, meal_type)
		)
	`
	if _, err := pool.Exec(ctx, feedbackTableSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
