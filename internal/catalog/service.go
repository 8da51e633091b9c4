package catalog

import (
	"context"
	"fmt"

	"github.com/orderdesk/orderdesk-backend/pkg/db"
	pkgerrors "github.com/orderdesk/orderdesk-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

// Service exposes catalog reads to the API and web layers.
type Service interface {
	ListPartners(ctx context.Context) ([]PartnerDTO, error)
	ListProducts(ctx context.Context) ([]ProductDTO, error)
	GetPartner(ctx context.Context, id int64) (*PartnerDTO, error)
	GetProductPrice(ctx context.Context, id int64) (decimal.Decimal, error)
}

type service struct {
	repo *Repository
}

// NewService constructs a catalog service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListPartners(ctx context.Context) ([]PartnerDTO, error) {
	partners, err := s.repo.ListPartners(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list partners")
	}
	dtos := make([]PartnerDTO, len(partners))
	for i, partner := range partners {
		dtos[i] = PartnerDTO{
			ID:          partner.ID,
			Name:        partner.Name,
			ContactInfo: partner.ContactInfo,
		}
	}
	return dtos, nil
}

func (s *service) ListProducts(ctx context.Context) ([]ProductDTO, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}
	dtos := make([]ProductDTO, len(products))
	for i, product := range products {
		dtos[i] = ProductDTO{
			ID:       product.ID,
			Name:     product.Name,
			MinPrice: product.MinPrice,
		}
	}
	return dtos, nil
}

func (s *service) GetPartner(ctx context.Context, id int64) (*PartnerDTO, error) {
	partner, err := s.repo.FindPartner(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "partner not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find partner")
	}
	return &PartnerDTO{ID: partner.ID, Name: partner.Name, ContactInfo: partner.ContactInfo}, nil
}

func (s *service) GetProductPrice(ctx context.Context, id int64) (decimal.Decimal, error) {
	price, err := s.repo.GetProductPrice(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return decimal.Decimal{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return decimal.Decimal{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "get product price")
	}
	return price, nil
}
