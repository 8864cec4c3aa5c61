package procurement

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresAdjustmentStore struct {
	db *pgxpool.Pool
}

func NewPostgresAdjustmentStore(db *pgxpool.Pool) *PostgresAdjustmentStore {
	return &PostgresAdjustmentStore{db: db}
}

// --------------------------------------------------
// UPSERT (IDEMPOTENT ON VESSEL+INGREDIENT+RANGE)
// --------------------------------------------------
func (r *PostgresAdjustmentStore) Upsert(ctx context.Context, adj *Adjustment) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO procurement_adjustments (
			vessel_id,
			ingredient_id,
			start_date,
			end_date,
			planned_amount,
			order_amount,
			in_stock,
			unit_price,
			created_at,
			updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
		ON CONFLICT (vessel_id, ingredient_id, start_date, end_date)
		DO UPDATE SET
			planned_amount = EXCLUDED.planned_amount,
			order_amount = EXCLUDED.order_amount,
			in_stock = EXCLUDED.in_stock,
			unit_price = EXCLUDED.unit_price,
			updated_at = now()
		RETURNING id, updated_at
	`, adj.VesselID, adj.IngredientID, adj.StartDate, adj.EndDate,
		adj.PlannedAmount, adj.OrderAmount, adj.InStock, adj.UnitPrice,
	).Scan(&adj.ID, &adj.UpdatedAt)
}

// --------------------------------------------------
// LIST RANGES OVERLAPPING A WINDOW
// --------------------------------------------------
func (r *PostgresAdjustmentStore) ListOverlapping(
	ctx context.Context,
	vesselID string,
	windowStart, windowEnd time.Time,
) ([]Adjustment, error) {

	rows, err := r.db.Query(ctx, `
		SELECT
			id,
			vessel_id,
			ingredient_id,
			start_date,
			end_date,
			planned_amount,
			order_amount,
			in_stock,
			unit_price,
			updated_at
		FROM procurement_adjustments
		WHERE vessel_id = $1
		  AND start_date <= $3
		  AND end_date >= $2
		ORDER BY updated_at ASC, id ASC
	`, vesselID, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var adjustments []Adjustment

	for rows.Next() {
		var adj Adjustment
		if err := rows.Scan(
			&adj.ID,
			&adj.VesselID,
			&adj.IngredientID,
			&adj.StartDate,
			&adj.EndDate,
			&adj.PlannedAmount,
			&adj.OrderAmount,
			&adj.InStock,
			&adj.UnitPrice,
			&adj.UpdatedAt,
		); err != nil {
			return nil, err
		}
		adjustments = append(adjustments, adj)
	}

	return adjustments, rows.Err()
}
