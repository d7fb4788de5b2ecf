package nearbiz

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/nearbiz/internal/domain/appointment"
)

// bookingPayload is the write schema of POST /citas.
type bookingPayload struct {
	ClientID          int64   `json:"id_cliente"`
	TechnicianID      int64   `json:"id_tecnico"`
	ServiceID         int64   `json:"id_servicio"`
	Date              string  `json:"fecha_cita"`
	Start             string  `json:"hora_inicio"`
	End               string  `json:"hora_fin"`
	Status            string  `json:"estado"`
	CancellationCause *string `json:"motivo_cancelacion"`
}

// ListBookings returns the bookings of technicianID. Upstream may ignore the
// filter, so it is applied again here.
func (c *Client) ListBookings(ctx context.Context, technicianID int64) ([]appointment.Booking, error) {
	q := url.Values{}
	q.Set("idTecnico", strconv.FormatInt(technicianID, 10))

	recs, err := c.getRecords(ctx, "/citas", q)
	if err != nil {
		return nil, err
	}

	out := make([]appointment.Booking, 0, len(recs))
	for _, r := range recs {
		b, ok := toBooking(r)
		if !ok {
			c.log.Warn("skipping unreadable booking",
				zap.Int64("technician_id", technicianID),
				zap.String("booking_id", r.str("idcita", "id")),
				zap.String("fecha", r.str("fechacita", "fecha", "date")),
				zap.String("hora_inicio", r.str("horainicio", "starttime", "start")),
			)
			continue
		}
		if b.TechnicianID != technicianID {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

// CreateBooking posts a new booking to the booking deployment.
func (c *Client) CreateBooking(ctx context.Context, nb appointment.NewBooking) (*appointment.Booking, error) {
	status := nb.Status
	if status == "" {
		status = appointment.InitialStatus()
	}

	payload := bookingPayload{
		ClientID:     nb.ClientID,
		TechnicianID: nb.TechnicianID,
		ServiceID:    nb.ServiceID,
		Date:         nb.Date.Format(time.DateOnly),
		Start:        nb.Start.Wire(),
		End:          nb.End.Wire(),
		Status:       status.Upstream(),
	}

	body, err := c.postJSON(ctx, c.bookingURL+"/citas", payload)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && isRejection(se.StatusCode) {
			return nil, fmt.Errorf("%w: %w", appointment.ErrBookingRejected, err)
		}
		if errors.As(err, &se) {
			return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		return nil, err
	}

	created := appointment.Booking{
		ClientID:     nb.ClientID,
		TechnicianID: nb.TechnicianID,
		ServiceID:    nb.ServiceID,
		Date:         nb.Date,
		Start:        nb.Start,
		End:          nb.End,
		Status:       status,
	}

	// The echo is optional; some deployments answer 201 with no body.
	if recs, err := decodeRecords(body); err == nil && len(recs) == 1 {
		if id, ok := recs[0].int("idcita", "id"); ok {
			created.ID = id
		}
		if s := recs[0].str("estado", "status"); s != "" {
			created.Status = appointment.ParseStatus(s)
		}
	}

	return &created, nil
}

func isRejection(code int) bool {
	return code == http.StatusBadRequest ||
		code == http.StatusConflict ||
		code == http.StatusUnprocessableEntity
}

func toBooking(r record) (appointment.Booking, bool) {
	tech, ok := r.int("idtecnico", "tecnicoid", "technicianid")
	if !ok {
		return appointment.Booking{}, false
	}
	date, ok := r.date("fechacita", "fecha", "date")
	if !ok {
		return appointment.Booking{}, false
	}
	start, err := r.clock("horainicio", "starttime", "start")
	if err != nil {
		return appointment.Booking{}, false
	}
	end, err := r.clock("horafin", "endtime", "end")
	if err != nil || end <= start {
		end = start.Add(appointment.DefaultServiceDuration)
	}

	id, _ := r.int("idcita", "id")
	client, _ := r.int("idcliente", "clienteid", "clientid")
	service, _ := r.int("idservicio", "servicioid", "serviceid")

	return appointment.Booking{
		ID:           id,
		ClientID:     client,
		TechnicianID: tech,
		ServiceID:    service,
		Date:         date,
		Start:        start,
		End:          end,
		Status:       appointment.ParseStatus(r.str("estado", "status")),
	}, true
}
