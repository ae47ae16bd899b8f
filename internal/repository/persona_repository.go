package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/thrift-store-api/internal/domain"
)

// PersonaRepository defines persistence access for personas.
type PersonaRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Persona, error)
	List(ctx context.Context) ([]domain.Persona, error)
	Delete(ctx context.Context, id int64) error
}

type personaRepository struct {
	pool *pgxpool.Pool
}

// NewPersonaRepository returns a Postgres-backed implementation.
func NewPersonaRepository(pool *pgxpool.Pool) PersonaRepository {
	return &personaRepository{pool: pool}
}

func (r *personaRepository) GetByID(ctx context.Context, id int64) (*domain.Persona, error) {
	const query = `
        SELECT id, full_name, national_id, address, birth_date
        FROM personas WHERE id=$1`

	var persona domain.Persona
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&persona.ID,
		&persona.FullName,
		&persona.NationalID,
		&persona.Address,
		&persona.BirthDate,
	); err != nil {
		return nil, err
	}
	return &persona, nil
}

func (r *personaRepository) List(ctx context.Context) ([]domain.Persona, error) {
	const query = `
        SELECT id, full_name, national_id, address, birth_date
        FROM personas ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var personas []domain.Persona
	for rows.Next() {
		var persona domain.Persona
		if err := rows.Scan(
			&persona.ID,
			&persona.FullName,
			&persona.NationalID,
			&persona.Address,
			&persona.BirthDate,
		); err != nil {
			return nil, err
		}
		personas = append(personas, persona)
	}
	return personas, rows.Err()
}

func (r *personaRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM personas WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
