package appointment

import "github.com/BruksfildServices01/nearbiz/internal/textnorm"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusRejected  Status = "rejected"
)

var statusAliases = map[string]Status{
	"pending":    StatusPending,
	"pendiente":  StatusPending,
	"confirmed":  StatusConfirmed,
	"confirmada": StatusConfirmed,
	"confirmado": StatusConfirmed,
	"cancelled":  StatusCancelled,
	"canceled":   StatusCancelled,
	"cancelada":  StatusCancelled,
	"cancelado":  StatusCancelled,
	"rejected":   StatusRejected,
	"rechazada":  StatusRejected,
	"rechazado":  StatusRejected,
}

var upstreamNames = map[Status]string{
	StatusPending:   "pendiente",
	StatusConfirmed: "confirmada",
	StatusCancelled: "cancelada",
	StatusRejected:  "rechazada",
}

// ParseStatus maps the English or Spanish status name onto a Status.
// Unknown values are kept as-is and treated as blocking.
func ParseStatus(s string) Status {
	folded := textnorm.Fold(s)
	if st, ok := statusAliases[folded]; ok {
		return st
	}
	return Status(folded)
}

// ===============================
// Rules
// ===============================

// Blocks reports whether a booking in this status occupies its slot.
func (s Status) Blocks() bool {
	return s != StatusCancelled && s != StatusRejected
}

// Upstream is the Spanish name the bookings API stores.
func (s Status) Upstream() string {
	if name, ok := upstreamNames[s]; ok {
		return name
	}
	return string(s)
}

// InitialStatus is the status of every booking the app submits.
func InitialStatus() Status {
	return StatusPending
}
