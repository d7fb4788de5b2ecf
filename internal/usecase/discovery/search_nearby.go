package discovery

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/nearbiz/internal/domain/business"
	"github.com/BruksfildServices01/nearbiz/internal/domain/geo"
)

type Catalog interface {
	ListBusinesses(ctx context.Context) ([]business.Business, error)
	GetBusiness(ctx context.Context, id int64) (*business.Business, error)
	RatingSummaries(ctx context.Context) (map[int64]business.Summary, error)
}

type SearchNearbyInput struct {
	// Origin is nil when the device did not share its location.
	Origin   *geo.Coordinate
	RadiusKm float64
	Category string
	Query    string
}

type NearbyBusiness struct {
	business.Business
	CategoryName string            `json:"category_name"`
	DistanceKm   float64           `json:"distance_km"`
	Rating       *business.Summary `json:"rating"`
	OpenNow      bool              `json:"open_now"`
	DaysSummary  string            `json:"days_summary"`
	TodayHours   string            `json:"today_hours"`
}

type SearchNearbyOutput struct {
	Origin          geo.Coordinate   `json:"origin"`
	DefaultLocation bool             `json:"default_location"`
	RadiusKm        float64          `json:"radius_km"`
	Businesses      []NearbyBusiness `json:"businesses"`
}

type SearchNearby struct {
	catalog         Catalog
	defaultLocation geo.Coordinate
	defaultRadiusKm float64
	now             func() time.Time
	log             *zap.Logger
}

func NewSearchNearby(
	catalog Catalog,
	defaultLocation geo.Coordinate,
	defaultRadiusKm float64,
	now func() time.Time,
	log *zap.Logger,
) *SearchNearby {
	return &SearchNearby{
		catalog:         catalog,
		defaultLocation: defaultLocation,
		defaultRadiusKm: defaultRadiusKm,
		now:             now,
		log:             log,
	}
}

func (uc *SearchNearby) Execute(ctx context.Context, in SearchNearbyInput) (*SearchNearbyOutput, error) {

	// --------------------------------------------------
	// 1️⃣ Origin and radius
	// --------------------------------------------------
	out := &SearchNearbyOutput{RadiusKm: in.RadiusKm}
	if in.Origin != nil {
		out.Origin = *in.Origin
	} else {
		out.Origin = uc.defaultLocation
		out.DefaultLocation = true
		uc.log.Warn("no device location, using default", zap.Any("origin", out.Origin))
	}
	if out.RadiusKm <= 0 {
		out.RadiusKm = uc.defaultRadiusKm
	}

	// --------------------------------------------------
	// 2️⃣ Filter and rank
	// --------------------------------------------------
	all, err := uc.catalog.ListBusinesses(ctx)
	if err != nil {
		return nil, err
	}

	ranked := geo.FilterAndRank(all, out.Origin, geo.FilterOptions{
		MaxRadiusKm: out.RadiusKm,
		CategoryID:  in.Category,
		SearchText:  in.Query,
	})

	// --------------------------------------------------
	// 3️⃣ Enrichment (ratings are optional)
	// --------------------------------------------------
	ratings, err := uc.catalog.RatingSummaries(ctx)
	if err != nil {
		uc.log.Warn("ratings unavailable", zap.Error(err))
	}

	now := uc.now()
	out.Businesses = make([]NearbyBusiness, 0, len(ranked))
	for _, r := range ranked {
		b := r.Place
		nb := NearbyBusiness{
			Business:     b,
			CategoryName: b.CategoryName(),
			DistanceKm:   r.DistanceKm,
			OpenNow:      b.Hours.IsOpenAt(now),
			DaysSummary:  b.Hours.DaysSummary(),
			TodayHours:   b.Hours.TodayLabel(now),
		}
		if s, ok := ratings[b.ID]; ok {
			nb.Rating = &s
		}
		out.Businesses = append(out.Businesses, nb)
	}

	return out, nil
}
