package menu

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// UPSERT PLAN ENTRY (ONE PER VESSEL+DATE+MEAL)
// --------------------------------------------------
func (r *PostgresRepository) UpsertEntry(ctx context.Context, e *PlanEntry) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO menu_plan_entries (
			vessel_id,
			plan_date,
			meal_type,
			recipe_ids,
			health_score,
			created_at,
			updated_at
		)
		VALUES ($1, $2, $3, $4, $5, now(), now())
		ON CONFLICT (vessel_id, plan_date, meal_type)
		DO UPDATE SET
			recipe_ids = EXCLUDED.recipe_ids,
			health_score = EXCLUDED.health_score,
			updated_at = now()
		RETURNING id
	`, e.VesselID, e.Date, e.MealType, e.RecipeIDs, e.HealthScore).Scan(&e.ID)
}

func (r *PostgresRepository) ListRange(
	ctx context.Context,
	vesselID string,
	from, to time.Time,
) ([]PlanEntry, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id, vessel_id, plan_date, meal_type, recipe_ids, health_score
		FROM menu_plan_entries
		WHERE vessel_id = $1
		  AND plan_date BETWEEN $2 AND $3
		ORDER BY plan_date ASC, meal_type ASC
	`, vesselID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []PlanEntry

	for rows.Next() {
		var e PlanEntry
		if err := rows.Scan(
			&e.ID,
			&e.VesselID,
			&e.Date,
			&e.MealType,
			&e.RecipeIDs,
			&e.HealthScore,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (r *PostgresRepository) ListDates(
	ctx context.Context,
	vesselID string,
) ([]time.Time, error) {

	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT plan_date
		FROM menu_plan_entries
		WHERE vessel_id = $1
		ORDER BY plan_date ASC
	`, vesselID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []time.Time

	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}

	return dates, rows.Err()
}

// --------------------------------------------------
// SWAP RECIPE INSIDE AN ENTRY
// --------------------------------------------------
func (r *PostgresRepository) SwapRecipe(
	ctx context.Context,
	vesselID string,
	entryID int,
	fromRecipeID, toRecipeID int,
) error {

	cmd, err := r.db.Exec(ctx, `
		UPDATE menu_plan_entries
		SET recipe_ids = array_replace(recipe_ids, $1, $2),
		    updated_at = now()
		WHERE id = $3
		  AND vessel_id = $4
		  AND $1 = ANY(recipe_ids)
	`, fromRecipeID, toRecipeID, entryID, vesselID)

	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return errors.New("plan entry not found or recipe not on it")
	}

	return nil
}
