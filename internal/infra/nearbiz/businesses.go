package nearbiz

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/nearbiz/internal/domain/business"
	"github.com/BruksfildServices01/nearbiz/internal/domain/geo"
	"github.com/BruksfildServices01/nearbiz/internal/domain/schedule"
)

func (c *Client) ListBusinesses(ctx context.Context) ([]business.Business, error) {
	recs, err := c.getRecords(ctx, "/Negocios", nil)
	if err != nil {
		return nil, err
	}

	out := make([]business.Business, 0, len(recs))
	for _, r := range recs {
		b := toBusiness(r)
		if b.Hours.Format == schedule.FormatInvalid {
			c.log.Warn("unreadable business hours",
				zap.Int64("business_id", b.ID),
			)
		}
		out = append(out, b)
	}
	return out, nil
}

func (c *Client) ListRatings(ctx context.Context) ([]business.Rating, error) {
	recs, err := c.getRecords(ctx, "/Valoraciones", nil)
	if err != nil {
		return nil, err
	}

	out := make([]business.Rating, 0, len(recs))
	for _, r := range recs {
		id, ok := r.int("idnegocio", "negocioid", "businessid")
		if !ok {
			continue
		}
		score, ok := r.float("calificacion", "puntuacion", "score", "rating")
		if !ok {
			continue
		}
		out = append(out, business.Rating{BusinessID: id, Score: score})
	}
	return out, nil
}

func toBusiness(r record) business.Business {
	id, _ := r.int("idnegocio", "id")
	category, _ := r.int("idcategoria", "categoriaid", "categoryid")

	return business.Business{
		ID:          id,
		Name:        r.str("nombre", "name"),
		CategoryID:  category,
		Address:     r.str("direccion", "address"),
		Phone:       r.str("telefonocontacto", "telefono", "phone"),
		Coordinates: coordinates(r),
		Hours:       hours(r),
		Description: r.str("descripcion", "description"),
		ImageURL:    r.str("logo", "imagen", "logourl", "image"),
	}
}

func coordinates(r record) *geo.Coordinate {
	lat, ok := r.float("coordenadaslat", "latitud", "latitude", "lat")
	if !ok {
		return nil
	}
	lng, ok := r.float("coordenadaslng", "longitud", "longitude", "lng")
	if !ok {
		return nil
	}
	return &geo.Coordinate{Latitude: lat, Longitude: lng}
}

func hours(r record) schedule.Hours {
	v, ok := r.value("horarioatencion", "horario", "hours")
	if !ok {
		return schedule.Hours{Format: schedule.FormatNone}
	}
	if s, ok := v.(string); ok {
		return schedule.DecodeHoursString(s)
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return schedule.Hours{Format: schedule.FormatInvalid}
	}
	return schedule.DecodeHours(raw)
}
