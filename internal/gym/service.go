package gym

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type Service interface {
	GetGyms(ctx context.Context) ([]Gym, error)
	GetGymBySlug(ctx context.Context, slug string) (*Gym, error)
	GetBranches(ctx context.Context, gymSlug string) ([]Branch, error)
	GetBranchID(ctx context.Context, gymSlug, branchSlug string) (uuid.UUID, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) GetGyms(ctx context.Context) ([]Gym, error) {
	return s.repo.GetGyms(ctx)
}

func (s *service) GetGymBySlug(ctx context.Context, slug string) (*Gym, error) {
	return s.repo.GetGymBySlug(ctx, slug)
}

// GetBranches lists the active branches of gymSlug, or of every gym when
// gymSlug is empty.
func (s *service) GetBranches(ctx context.Context, gymSlug string) ([]Branch, error) {
	if gymSlug == "" {
		return s.repo.GetActiveBranches(ctx)
	}

	gym, err := s.repo.GetGymBySlug(ctx, gymSlug)
	if err != nil {
		if errors.Is(err, ErrGymNotFound) {
			return nil, ErrGymNotFound
		}
		return nil, err
	}

	return s.repo.GetBranchesByGym(ctx, gym.ID)
}

func (s *service) GetBranchID(ctx context.Context, gymSlug, branchSlug string) (uuid.UUID, error) {
	return s.repo.GetBranchID(ctx, gymSlug, branchSlug)
}
