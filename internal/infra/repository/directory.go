package repository

import (
	"context"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/nearbiz/internal/domain/appointment"
	"github.com/BruksfildServices01/nearbiz/internal/domain/business"
	"github.com/BruksfildServices01/nearbiz/internal/infra/cache"
)

// Upstream is the subset of the NearBiz client the directory reads through.
type Upstream interface {
	ListBusinesses(ctx context.Context) ([]business.Business, error)
	ListRatings(ctx context.Context) ([]business.Rating, error)
	ListTechnicians(ctx context.Context, businessID int64) ([]appointment.Technician, error)
	ListServices(ctx context.Context, businessID int64) ([]appointment.Service, error)
	ListClients(ctx context.Context) ([]appointment.Client, error)
	ListBookings(ctx context.Context, technicianID int64) ([]appointment.Booking, error)
	CreateBooking(ctx context.Context, b appointment.NewBooking) (*appointment.Booking, error)
}

// Directory serves upstream lookups through the cache. Bookings always go
// to the upstream.
type Directory struct {
	upstream Upstream
	cache    cache.Cache
	ttl      time.Duration
	log      *zap.Logger
}

func NewDirectory(upstream Upstream, c cache.Cache, ttl time.Duration, log *zap.Logger) *Directory {
	return &Directory{upstream: upstream, cache: c, ttl: ttl, log: log}
}

var _ appointment.Directory = (*Directory)(nil)

// --------------------------------------------------
// Businesses
// --------------------------------------------------

func (d *Directory) ListBusinesses(ctx context.Context) ([]business.Business, error) {
	return cached(ctx, d, "businesses", d.upstream.ListBusinesses)
}

func (d *Directory) GetBusiness(ctx context.Context, id int64) (*business.Business, error) {
	all, err := d.ListBusinesses(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, appointment.ErrBusinessNotFound
}

func (d *Directory) RatingSummaries(ctx context.Context) (map[int64]business.Summary, error) {
	ratings, err := cached(ctx, d, "ratings", d.upstream.ListRatings)
	if err != nil {
		return nil, err
	}
	return business.SummarizeRatings(ratings), nil
}

// --------------------------------------------------
// Staff
// --------------------------------------------------

func (d *Directory) ListTechnicians(ctx context.Context, businessID int64) ([]appointment.Technician, error) {
	return cached(ctx, d, "technicians:"+strconv.FormatInt(businessID, 10),
		func(ctx context.Context) ([]appointment.Technician, error) {
			return d.upstream.ListTechnicians(ctx, businessID)
		})
}

func (d *Directory) ListServices(ctx context.Context, businessID int64) ([]appointment.Service, error) {
	return cached(ctx, d, "services:"+strconv.FormatInt(businessID, 10),
		func(ctx context.Context) ([]appointment.Service, error) {
			return d.upstream.ListServices(ctx, businessID)
		})
}

// --------------------------------------------------
// Clients
// --------------------------------------------------

// FindClientByEmail returns nil when no upstream client has that address.
func (d *Directory) FindClientByEmail(ctx context.Context, email string) (*appointment.Client, error) {
	clients, err := cached(ctx, d, "clients", d.upstream.ListClients)
	if err != nil {
		return nil, err
	}
	for i := range clients {
		if equalEmail(clients[i].Email, email) {
			return &clients[i], nil
		}
	}
	return nil, nil
}

// --------------------------------------------------
// Bookings
// --------------------------------------------------

func (d *Directory) ListBookings(ctx context.Context, technicianID int64) ([]appointment.Booking, error) {
	return d.upstream.ListBookings(ctx, technicianID)
}

func (d *Directory) CreateBooking(ctx context.Context, b appointment.NewBooking) (*appointment.Booking, error) {
	return d.upstream.CreateBooking(ctx, b)
}

// cached reads key from the cache or loads and stores it. Cache failures are
// logged and never surface to the caller.
func cached[T any](
	ctx context.Context,
	d *Directory,
	key string,
	load func(context.Context) (T, error),
) (T, error) {

	var v T
	found, err := d.cache.Get(ctx, key, &v)
	if err != nil {
		d.log.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	} else if found {
		return v, nil
	}

	v, err = load(ctx)
	if err != nil {
		return v, err
	}

	if err := d.cache.Set(ctx, key, v, d.ttl); err != nil {
		d.log.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
	return v, nil
}

func equalEmail(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
