package discovery

import (
	"context"

	"github.com/BruksfildServices01/nearbiz/internal/domain/business"
	"github.com/BruksfildServices01/nearbiz/internal/domain/geo"
	"github.com/BruksfildServices01/nearbiz/internal/httperr"
)

var ErrBusinessWithoutLocation = httperr.ErrBusiness("business_without_location")

type RouteOutput struct {
	Business business.Business `json:"business"`
	Origin   geo.Coordinate    `json:"origin"`
	Region   geo.Region        `json:"region"`
}

type GetRoute struct {
	catalog Catalog
}

func NewGetRoute(catalog Catalog) *GetRoute {
	return &GetRoute{catalog: catalog}
}

// Execute frames origin and the business on one map.
func (uc *GetRoute) Execute(ctx context.Context, businessID int64, origin geo.Coordinate) (*RouteOutput, error) {
	b, err := uc.catalog.GetBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}

	dest, ok := b.Location()
	if !ok || !dest.Valid() {
		return nil, ErrBusinessWithoutLocation
	}

	return &RouteOutput{
		Business: *b,
		Origin:   origin,
		Region:   geo.RegionBetween(origin, dest),
	}, nil
}
