package content

import (
	"context"
	"errors"
	"sync"

	"eaglegym/internal/gym"
	"eaglegym/internal/logger"
	"eaglegym/internal/metrics"

	"github.com/google/uuid"
)

// Service reads branch content for one active (gym, branch) pair.
type Service interface {
	SetBranch(gymSlug, branchSlug string)
	ActiveBranch() (gymSlug, branchSlug string)
	ResolveActiveBranchID(ctx context.Context) (uuid.UUID, error)
	FetchByType(ctx context.Context, dataType DataType, opts FetchOptions) ([]Record, error)

	GetOffers(ctx context.Context) ([]Offer, error)
	GetCoaches(ctx context.Context) ([]Coach, error)
	GetClasses(ctx context.Context) ([]ClassSession, error)
	GetPtPackages(ctx context.Context) ([]PtPackage, error)
	GetSpecialOffers(ctx context.Context, offerType string) ([]SpecialOffer, error)
}

type service struct {
	repo     Repository
	resolver BranchResolver
	media    *MediaResolver

	mu         sync.Mutex
	gymSlug    string
	branchSlug string
	branchID   *uuid.UUID
	generation uint64
}

func NewService(repo Repository, resolver BranchResolver, media *MediaResolver) Service {
	return &service{
		repo:     repo,
		resolver: resolver,
		media:    media,
	}
}

// SetBranch replaces the active pair and drops the cached branch id.
func (s *service) SetBranch(gymSlug, branchSlug string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gymSlug == gymSlug && s.branchSlug == branchSlug {
		return
	}
	s.gymSlug = gymSlug
	s.branchSlug = branchSlug
	s.branchID = nil
	s.generation++
}

func (s *service) ActiveBranch() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gymSlug, s.branchSlug
}

func (s *service) ResolveActiveBranchID(ctx context.Context) (uuid.UUID, error) {
	s.mu.Lock()
	if s.branchID != nil {
		id := *s.branchID
		s.mu.Unlock()
		metrics.RecordBranchResolution("cached")
		return id, nil
	}
	gymSlug, branchSlug, generation := s.gymSlug, s.branchSlug, s.generation
	s.mu.Unlock()

	if gymSlug == "" || branchSlug == "" {
		metrics.RecordBranchResolution("not_found")
		return uuid.Nil, ErrBranchNotFound
	}

	id, err := s.resolver.GetBranchID(ctx, gymSlug, branchSlug)
	if err != nil {
		if errors.Is(err, gym.ErrBranchNotFound) {
			metrics.RecordBranchResolution("not_found")
			logger.Warn("Branch not found", "gym", gymSlug, "branch", branchSlug)
			return uuid.Nil, ErrBranchNotFound
		}
		metrics.RecordBranchResolution("error")
		logger.WithError(err).Error("Failed to resolve branch", "gym", gymSlug, "branch", branchSlug)
		return uuid.Nil, &QueryError{Op: "resolve branch", Err: err}
	}

	s.mu.Lock()
	// A SetBranch that ran while we were querying owns the cache now.
	if s.generation == generation {
		s.branchID = &id
	}
	s.mu.Unlock()

	metrics.RecordBranchResolution("resolved")
	return id, nil
}

func (s *service) FetchByType(ctx context.Context, dataType DataType, opts FetchOptions) ([]Record, error) {
	branchID, err := s.ResolveActiveBranchID(ctx)
	if err != nil {
		metrics.RecordBranchDataQuery(string(dataType), "unresolved")
		return []Record{}, err
	}

	records, err := s.repo.FindByType(ctx, branchID, dataType, opts)
	if err != nil {
		metrics.RecordBranchDataQuery(string(dataType), "error")
		logger.WithFields(map[string]interface{}{
			"branch_id": branchID.String(),
			"data_type": string(dataType),
		}).Error("Failed to fetch branch data", "error", err)
		return []Record{}, &QueryError{Op: "fetch " + string(dataType), Err: err}
	}

	visible := make([]Record, 0, len(records))
	for _, r := range records {
		if r.IsActive && r.DataType == dataType && r.BranchID == branchID {
			visible = append(visible, r)
		}
	}

	metrics.RecordBranchDataQuery(string(dataType), "ok")
	return visible, nil
}

func mapRecords[T any](records []Record, fn func(Variant) T) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		out = append(out, fn(Classify(r)))
	}
	return out
}

func (s *service) GetOffers(ctx context.Context) ([]Offer, error) {
	records, err := s.FetchByType(ctx, DataTypeMembership, FetchOptions{})
	return mapRecords(records, toOffer), err
}

func (s *service) GetCoaches(ctx context.Context) ([]Coach, error) {
	records, err := s.FetchByType(ctx, DataTypeCoach, FetchOptions{})
	return mapRecords(records, func(v Variant) Coach { return toCoach(v, s.media) }), err
}

func (s *service) GetClasses(ctx context.Context) ([]ClassSession, error) {
	records, err := s.FetchByType(ctx, DataTypeClass, FetchOptions{})
	return mapRecords(records, toClassSession), err
}

func (s *service) GetPtPackages(ctx context.Context) ([]PtPackage, error) {
	records, err := s.FetchByType(ctx, DataTypePTPackage, FetchOptions{})
	return mapRecords(records, toPtPackage), err
}

func (s *service) GetSpecialOffers(ctx context.Context, offerType string) ([]SpecialOffer, error) {
	records, err := s.FetchByType(ctx, DataTypeOffer, FetchOptions{OfferType: offerType})
	return mapRecords(records, func(v Variant) SpecialOffer { return toSpecialOffer(v, s.media) }), err
}
