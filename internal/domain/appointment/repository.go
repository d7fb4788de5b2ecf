package appointment

import (
	"context"

	"github.com/BruksfildServices01/nearbiz/internal/domain/business"
)

// Directory is the read/write view of the upstream backend the booking use
// cases need.
type Directory interface {
	// -------- Business --------
	GetBusiness(
		ctx context.Context,
		id int64,
	) (*business.Business, error)

	// -------- Staff --------
	ListTechnicians(
		ctx context.Context,
		businessID int64,
	) ([]Technician, error)

	ListServices(
		ctx context.Context,
		businessID int64,
	) ([]Service, error)

	// -------- Bookings --------

	// ListBookings always returns fresh data.
	ListBookings(
		ctx context.Context,
		technicianID int64,
	) ([]Booking, error)

	CreateBooking(
		ctx context.Context,
		b NewBooking,
	) (*Booking, error)
}

// FindTechnician returns the technician with id among techs.
func FindTechnician(techs []Technician, id int64) (*Technician, error) {
	for i := range techs {
		if techs[i].ID == id {
			return &techs[i], nil
		}
	}
	return nil, ErrTechnicianNotFound
}

// FindService returns the service with id among services.
func FindService(services []Service, id int64) (*Service, error) {
	for i := range services {
		if services[i].ID == id {
			return &services[i], nil
		}
	}
	return nil, ErrServiceNotFound
}
