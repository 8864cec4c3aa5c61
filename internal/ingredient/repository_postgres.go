package ingredient

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]Ingredient, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, unit, storage_type, ref_unit_price
		FROM ingredients
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Ingredient

	for rows.Next() {
		var ing Ingredient
		if err := rows.Scan(
			&ing.ID,
			&ing.Name,
			&ing.Unit,
			&ing.StorageType,
			&ing.RefUnitPrice,
		); err != nil {
			return nil, err
		}
		items = append(items, ing)
	}

	return items, rows.Err()
}

func (r *PostgresRepository) GetByIDs(
	ctx context.Context,
	ids []int,
) (map[int]Ingredient, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id, name, unit, storage_type, ref_unit_price
		FROM ingredients
		WHERE id = ANY($1)
	`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[int]Ingredient, len(ids))

	for rows.Next() {
		var ing Ingredient
		if err := rows.Scan(
			&ing.ID,
			&ing.Name,
			&ing.Unit,
			&ing.StorageType,
			&ing.RefUnitPrice,
		); err != nil {
			return nil, err
		}
		result[ing.ID] = ing
	}

	return result, rows.Err()
}

func (r *PostgresRepository) Create(ctx context.Context, ing *Ingredient) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO ingredients (name, unit, storage_type, ref_unit_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, ing.Name, ing.Unit, ing.StorageType, ing.RefUnitPrice).Scan(&ing.ID)
}
