package recipe

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, rec *Recipe) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO recipes (name, servings, health_score)
		VALUES ($1, $2, $3)
		RETURNING id
	`, rec.Name, rec.Servings, rec.HealthScore).Scan(&rec.ID)
	if err != nil {
		return err
	}

	for _, ref := range rec.Ingredients {
		_, err := tx.Exec(ctx, `
			INSERT INTO recipe_ingredients (recipe_id, ingredient_id, amount_per_serving)
			VALUES ($1, $2, $3)
		`, rec.ID, ref.IngredientID, ref.AmountPerServing)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepository) GetByID(ctx context.Context, recipeID int) (*Recipe, error) {
	rec := &Recipe{}

	err := r.db.QueryRow(ctx, `
		SELECT id, name, servings, health_score
		FROM recipes
		WHERE id = $1
	`, recipeID).Scan(&rec.ID, &rec.Name, &rec.Servings, &rec.HealthScore)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New("recipe not found")
		}
		return nil, err
	}

	comp, err := r.GetComposition(ctx, []int{recipeID})
	if err != nil {
		return nil, err
	}
	rec.Ingredients = comp[recipeID]

	return rec, nil
}

func (r *PostgresRepository) GetComposition(
	ctx context.Context,
	recipeIDs []int,
) (map[int][]IngredientRef, error) {

	result := make(map[int][]IngredientRef, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return result, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT recipe_id, ingredient_id, amount_per_serving
		FROM recipe_ingredients
		WHERE recipe_id = ANY($1)
	`, recipeIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var recipeID int
		var ref IngredientRef
		if err := rows.Scan(&recipeID, &ref.IngredientID, &ref.AmountPerServing); err != nil {
			return nil, err
		}
		result[recipeID] = append(result[recipeID], ref)
	}

	return result, rows.Err()
}
