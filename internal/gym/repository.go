package gym

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var (
	ErrGymNotFound    = errors.New("gym not found")
	ErrBranchNotFound = errors.New("branch not found")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetGyms(ctx context.Context) ([]Gym, error) {
	query := `
		SELECT id, slug, name_en, name_ar
		FROM gyms
		ORDER BY name_en ASC
	`

	gyms := []Gym{}
	if err := r.db.SelectContext(ctx, &gyms, query); err != nil {
		return nil, err
	}

	return gyms, nil
}

func (r *repository) GetGymBySlug(ctx context.Context, slug string) (*Gym, error) {
	query := `
		SELECT id, slug, name_en, name_ar
		FROM gyms
		WHERE slug = $1
	`

	var gym Gym
	err := r.db.GetContext(ctx, &gym, query, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGymNotFound
	}
	if err != nil {
		return nil, err
	}

	return &gym, nil
}

func (r *repository) GetBranchesByGym(ctx context.Context, gymID uuid.UUID) ([]Branch, error) {
	query := `
		SELECT b.id, b.gym_id, g.slug AS gym_slug, b.slug, b.name_en, b.name_ar,
		       b.address_en, b.address_ar, b.is_active
		FROM branches b
		JOIN gyms g ON g.id = b.gym_id
		WHERE b.gym_id = $1 AND b.is_active = TRUE
		ORDER BY b.name_en ASC
	`

	branches := []Branch{}
	if err := r.db.SelectContext(ctx, &branches, query, gymID); err != nil {
		return nil, err
	}

	return branches, nil
}

func (r *repository) GetActiveBranches(ctx context.Context) ([]Branch, error) {
	query := `
		SELECT b.id, b.gym_id, g.slug AS gym_slug, b.slug, b.name_en, b.name_ar,
		       b.address_en, b.address_ar, b.is_active
		FROM branches b
		JOIN gyms g ON g.id = b.gym_id
		WHERE b.is_active = TRUE
		ORDER BY b.name_en ASC
	`

	branches := []Branch{}
	if err := r.db.SelectContext(ctx, &branches, query); err != nil {
		return nil, err
	}

	return branches, nil
}

// GetBranchID resolves a (gym slug, branch slug) pair to exactly one active branch.
func (r *repository) GetBranchID(ctx context.Context, gymSlug, branchSlug string) (uuid.UUID, error) {
	query := `
		SELECT b.id
		FROM branches b
		JOIN gyms g ON g.id = b.gym_id
		WHERE g.slug = $1 AND b.slug = $2 AND b.is_active = TRUE
	`

	var ids []uuid.UUID
	if err := r.db.SelectContext(ctx, &ids, query, gymSlug, branchSlug); err != nil {
		return uuid.Nil, err
	}
	if len(ids) != 1 {
		return uuid.Nil, ErrBranchNotFound
	}

	return ids[0], nil
}
