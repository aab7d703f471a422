package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-api/internal/domain/entity"
	"portfolio-api/internal/domain/repository"
)

type ExperienceRepository struct {
	pool *pgxpool.Pool
}

func NewExperienceRepository(pool *pgxpool.Pool) *ExperienceRepository {
	return &ExperienceRepository{pool: pool}
}

func (r *ExperienceRepository) Create(e *entity.Experience) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO experiences (user_id, title, start_label, end_label, details)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, e.UserID, e.Title, e.Start, e.End, e.Details)

	return row.Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

func (r *ExperienceRepository) GetByID(id, userID string) (*entity.Experience, error) {
	ctx := context.Background()
	e := &entity.Experience{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, title, start_label, end_label, details, created_at, updated_at
		FROM experiences
		WHERE id = $1 AND user_id = $2
	`, id, userID)

	if err := row.Scan(&e.ID, &e.UserID, &e.Title, &e.Start, &e.End, &e.Details,
		&e.CreatedAt, &e.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return e, nil
}

func (r *ExperienceRepository) Update(e *entity.Experience) error {
	ctx := context.Background()
	e.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE experiences
		SET title = $1, start_label = $2, end_label = $3, details = $4, updated_at = $5
		WHERE id = $6 AND user_id = $7
	`, e.Title, e.Start, e.End, e.Details, e.UpdatedAt, e.ID, e.UserID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete removes the record and its ownership link in one statement;
// there is no separate reference list to unlink.
func (r *ExperienceRepository) Delete(id, userID string) error {
	ctx := context.Background()

	res, err := r.pool.Exec(ctx, `
		DELETE FROM experiences
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *ExperienceRepository) ListByUser(userID string) ([]entity.Experience, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, title, start_label, end_label, details, created_at, updated_at
		FROM experiences
		WHERE user_id = $1
		ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Experience, 0)
	for rows.Next() {
		var e entity.Experience
		if err := rows.Scan(&e.ID, &e.UserID, &e.Title, &e.Start, &e.End, &e.Details,
			&e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

var _ repository.ExperienceRepository = (*ExperienceRepository)(nil)
