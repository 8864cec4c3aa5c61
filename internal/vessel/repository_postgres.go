package vessel

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, v *Vessel) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}

	return r.db.QueryRow(ctx, `
		INSERT INTO vessels (id, company_id, name, crew_count)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, v.ID, v.CompanyID, v.Name, v.CrewCount).Scan(&v.CreatedAt)
}

func (r *PostgresRepository) ListByCompany(
	ctx context.Context,
	companyID string,
) ([]*Vessel, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id, company_id, name, crew_count, created_at
		FROM vessels
		WHERE company_id = $1
		ORDER BY name ASC
	`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vessels []*Vessel

	for rows.Next() {
		v := &Vessel{}
		if err := rows.Scan(
			&v.ID,
			&v.CompanyID,
			&v.Name,
			&v.CrewCount,
			&v.CreatedAt,
		); err != nil {
			return nil, err
		}
		vessels = append(vessels, v)
	}

	return vessels, rows.Err()
}

func (r *PostgresRepository) GetByID(
	ctx context.Context,
	vesselID string,
) (*Vessel, error) {

	v := &Vessel{}

	err := r.db.QueryRow(ctx, `
		SELECT id, company_id, name, crew_count, created_at
		FROM vessels
		WHERE id = $1
	`, vesselID).Scan(&v.ID, &v.CompanyID, &v.Name, &v.CrewCount, &v.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New("vessel not found")
		}
		return nil, err
	}

	return v, nil
}

func (r *PostgresRepository) GetCrewCount(
	ctx context.Context,
	vesselID string,
) (int, error) {

	var count int

	err := r.db.QueryRow(ctx, `
		SELECT crew_count
		FROM vessels
		WHERE id = $1
	`, vesselID).Scan(&count)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, errors.New("vessel not found")
		}
		return 0, err
	}

	return count, nil
}

func (r *PostgresRepository) UpdateCrewCount(
	ctx context.Context,
	vesselID string,
	crewCount int,
) error {

	cmd, err := r.db.Exec(ctx, `
		UPDATE vessels
		SET crew_count = $1,
		    updated_at = now()
		WHERE id = $2
	`, crewCount, vesselID)

	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return errors.New("vessel not found")
	}

	return nil
}

func (r *PostgresRepository) IsManagedBy(
	ctx context.Context,
	vesselID string,
	companyID string,
) (bool, error) {

	var one int

	err := r.db.QueryRow(ctx, `
		SELECT 1
		FROM vessels
		WHERE id = $1
		  AND company_id = $2
	`, vesselID, companyID).Scan(&one)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
