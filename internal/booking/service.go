package booking

import (
	"context"
	"errors"

	"eaglegym/internal/content"
	"eaglegym/internal/metrics"

	"github.com/google/uuid"
)

var ErrUnknownItem = errors.New("item not offered at this branch")

// Catalog is the part of content.Service booking needs.
type Catalog interface {
	GetOffers(ctx context.Context) ([]content.Offer, error)
	GetPtPackages(ctx context.Context) ([]content.PtPackage, error)
}

type Service interface {
	MembershipLink(ctx context.Context, catalog Catalog, offerID uuid.UUID) (Link, error)
	PersonalTrainingLink(ctx context.Context, catalog Catalog, packageID uuid.UUID) (Link, error)
}

type service struct {
	linker *Linker
}

func NewService(linker *Linker) Service {
	return &service{
		linker: linker,
	}
}

// MembershipLink looks offerID up in the active branch's offers.
func (s *service) MembershipLink(ctx context.Context, catalog Catalog, offerID uuid.UUID) (Link, error) {
	offers, err := catalog.GetOffers(ctx)
	for _, o := range offers {
		if o.ID == offerID {
			metrics.RecordBookingLink(string(KindMembership))
			return s.linker.MembershipLink(o), nil
		}
	}
	if err != nil {
		return Link{}, err
	}
	return Link{}, ErrUnknownItem
}

func (s *service) PersonalTrainingLink(ctx context.Context, catalog Catalog, packageID uuid.UUID) (Link, error) {
	packages, err := catalog.GetPtPackages(ctx)
	for _, p := range packages {
		if p.ID == packageID {
			metrics.RecordBookingLink(string(KindPersonalTraining))
			return s.linker.PersonalTrainingLink(p), nil
		}
	}
	if err != nil {
		return Link{}, err
	}
	return Link{}, ErrUnknownItem
}
