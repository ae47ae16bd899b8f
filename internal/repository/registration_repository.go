package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/thrift-store-api/internal/domain"
)

// RegistrationRepository creates a persona and its owning user as a unit.
// Both inserts run inside a single transaction so a failed user insert never
// leaves an orphan persona behind.
type RegistrationRepository interface {
	Register(ctx context.Context, persona *domain.Persona, user *domain.User) error
}

type registrationRepository struct {
	pool *pgxpool.Pool
}

// NewRegistrationRepository returns a Postgres-backed implementation.
func NewRegistrationRepository(pool *pgxpool.Pool) RegistrationRepository {
	return &registrationRepository{pool: pool}
}

func (r *registrationRepository) Register(ctx context.Context, persona *domain.Persona, user *domain.User) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const personaQuery = `
        INSERT INTO personas (full_name, national_id, address, birth_date)
        VALUES ($1, $2, $3, $4)
        RETURNING id`

	if err := tx.QueryRow(ctx, personaQuery,
		persona.FullName,
		persona.NationalID,
		persona.Address,
		persona.BirthDate,
	).Scan(&persona.ID); err != nil {
		return err
	}

	const userQuery = `
        INSERT INTO users (name, email, password_hash, persona_id, role_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	user.PersonaID = persona.ID
	if err := tx.QueryRow(ctx, userQuery,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.PersonaID,
		user.RoleID,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
