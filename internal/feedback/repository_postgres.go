package feedback

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Upsert(ctx context.Context, f *Feedback) error {
	var comment *string
	if f.Comment != "" {
		comment = &f.Comment
	}

	return r.db.QueryRow(ctx, `
		INSERT INTO meal_feedback (
			vessel_id,
			user_id,
			meal_date,
			meal_type,
			rating,
			comment,
			created_at,
			updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())
		ON CONFLICT (vessel_id, user_id, meal_date, meal_type)
		DO UPDATE SET
			rating = EXCLUDED.rating,
			comment = EXCLUDED.comment,
			updated_at = now()
		RETURNING id
	`, f.VesselID, f.UserID, f.Date, f.MealType, f.Rating, comment).Scan(&f.ID)
}

func (r *PostgresRepository) ListRange(
	ctx context.Context,
	vesselID string,
	from, to time.Time,
) ([]Feedback, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id, vessel_id, user_id, meal_date, meal_type, rating, COALESCE(comment, '')
		FROM meal_feedback
		WHERE vessel_id = $1
		  AND meal_date BETWEEN $2 AND $3
		ORDER BY meal_date ASC, meal_type ASC
	`, vesselID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var feedback []Feedback

	for rows.Next() {
		var f Feedback
		if err := rows.Scan(
			&f.ID,
			&f.VesselID,
			&f.UserID,
			&f.Date,
			&f.MealType,
			&f.Rating,
			&f.Comment,
		); err != nil {
			return nil, err
		}
		feedback = append(feedback, f)
	}

	return feedback, rows.Err()
}
