package gym

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	GetGyms(ctx context.Context) ([]Gym, error)
	GetGymBySlug(ctx context.Context, slug string) (*Gym, error)
	GetBranchesByGym(ctx context.Context, gymID uuid.UUID) ([]Branch, error)
	GetActiveBranches(ctx context.Context) ([]Branch, error)
	GetBranchID(ctx context.Context, gymSlug, branchSlug string) (uuid.UUID, error)
}
