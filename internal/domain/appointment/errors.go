package appointment

import "github.com/BruksfildServices01/nearbiz/internal/httperr"

var (
	ErrBusinessNotFound    = httperr.ErrBusiness("business_not_found")
	ErrTechnicianNotFound  = httperr.ErrBusiness("technician_not_found")
	ErrServiceNotFound     = httperr.ErrBusiness("service_not_found")
	ErrSlotTaken           = httperr.ErrBusiness("slot_taken")
	ErrDateInPast          = httperr.ErrBusiness("date_in_past")
	ErrOutsideWorkingHours = httperr.ErrBusiness("outside_working_hours")
	ErrBusinessClosed      = httperr.ErrBusiness("business_closed")
	ErrInvalidDateOrTime   = httperr.ErrBusiness("invalid_date_or_time")
	ErrBookingRejected     = httperr.ErrBusiness("booking_rejected")
)
