package content

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	FindByType(ctx context.Context, branchID uuid.UUID, dataType DataType, opts FetchOptions) ([]Record, error)
}

// BranchResolver maps a (gym slug, branch slug) pair to the branch id.
type BranchResolver interface {
	GetBranchID(ctx context.Context, gymSlug, branchSlug string) (uuid.UUID, error)
}
