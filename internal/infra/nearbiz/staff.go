package nearbiz

import (
	"context"
	"net/url"
	"strconv"

	"github.com/BruksfildServices01/nearbiz/internal/domain/appointment"
)

func (c *Client) ListTechnicians(ctx context.Context, businessID int64) ([]appointment.Technician, error) {
	recs, err := c.getRecords(ctx, "/Personal/by-negocio/"+strconv.FormatInt(businessID, 10), nil)
	if err != nil {
		return nil, err
	}

	out := make([]appointment.Technician, 0, len(recs))
	for _, r := range recs {
		id, ok := r.int("idtecnico", "idpersonal", "id")
		if !ok {
			continue
		}
		owner, ok := r.int("idnegocio", "negocioid", "businessid")
		if !ok {
			owner = businessID
		}
		if owner != businessID {
			continue
		}
		out = append(out, appointment.Technician{
			ID:         id,
			BusinessID: owner,
			Name:       r.str("nombre", "name"),
		})
	}
	return out, nil
}

func (c *Client) ListServices(ctx context.Context, businessID int64) ([]appointment.Service, error) {
	q := url.Values{}
	q.Set("idNegocio", strconv.FormatInt(businessID, 10))

	recs, err := c.getRecords(ctx, "/servicios", q)
	if err != nil {
		return nil, err
	}

	out := make([]appointment.Service, 0, len(recs))
	for _, r := range recs {
		id, ok := r.int("idservicio", "id")
		if !ok {
			continue
		}
		owner, ok := r.int("idnegocio", "negocioid", "businessid")
		if !ok {
			owner = businessID
		}
		if owner != businessID {
			continue
		}
		duration, _ := r.int("duracionminutos", "duracion", "durationminutes", "duration")
		price, _ := r.float("precio", "price")

		out = append(out, appointment.Service{
			ID:              id,
			BusinessID:      owner,
			Name:            r.str("nombre", "name"),
			DurationMinutes: int(duration),
			Price:           price,
		})
	}
	return out, nil
}
