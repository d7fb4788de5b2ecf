package nearbiz

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/BruksfildServices01/nearbiz/internal/domain/appointment"
	"github.com/BruksfildServices01/nearbiz/internal/domain/schedule"
	"github.com/BruksfildServices01/nearbiz/internal/httperr"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL + "/api", Timeout: time.Second}, zap.NewNop())
}

func TestListBusinesses_MixedCasing(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/Negocios", r.URL.Path)
		_, _ = io.WriteString(w, `[
			{"IdNegocio": 1, "Nombre": "Barbería Centro", "IdCategoria": 2,
			 "CoordenadasLat": "21.1210", "CoordenadasLng": -101.6823,
			 "HorarioAtencion": "[{\"dia\":\"Lunes\",\"inicio\":\"09:00\",\"fin\":\"18:00\",\"activo\":true}]",
			 "TelefonoContacto": "477 000 0000"},
			{"id_negocio": "2", "nombre": "Taller", "id_categoria": 8,
			 "coordenadas_lat": null, "coordenadas_lng": null,
			 "horario_atencion": "L-S 10:00-19:00"},
			{"idNegocio": 3, "nombre": "Spa", "coordenadasLat": "n/a", "coordenadasLng": "x",
			 "horarioAtencion": [{"day": "monday", "start": "10:00", "end": "14:00"}]}
		]`)
	})

	got, err := c.ListBusinesses(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, "Barbería Centro", got[0].Name)
	assert.Equal(t, int64(2), got[0].CategoryID)
	assert.Equal(t, "477 000 0000", got[0].Phone)
	require.NotNil(t, got[0].Coordinates)
	assert.InDelta(t, 21.1210, got[0].Coordinates.Latitude, 1e-9)
	assert.Equal(t, schedule.FormatStructured, got[0].Hours.Format)

	assert.Equal(t, int64(2), got[1].ID)
	assert.Nil(t, got[1].Coordinates)
	assert.Equal(t, schedule.FormatText, got[1].Hours.Format)

	assert.Nil(t, got[2].Coordinates)
	assert.Equal(t, schedule.FormatStructured, got[2].Hours.Format)
	d, ok, err := got[2].Hours.For(time.Monday)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, schedule.At(14, 0), d.End)
}

func TestListRatings(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"IdNegocio":1,"Calificacion":"4"},{"IdNegocio":1,"Calificacion":5},{"Calificacion":3}]`)
	})

	got, err := c.ListRatings(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, 4.0, got[0].Score)
}

func TestListTechniciansAndServices(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/Personal/by-negocio/5":
			_, _ = io.WriteString(w, `[{"IdPersonal":1,"IdNegocio":5,"Nombre":"Juan"},{"IdPersonal":2,"IdNegocio":6,"Nombre":"Otro"}]`)
		case "/api/servicios":
			assert.Equal(t, "5", r.URL.Query().Get("idNegocio"))
			_, _ = io.WriteString(w, `{"data":[{"idServicio":3,"nombre":"Corte","duracion":"30","precio":150.5}]}`)
		default:
			http.NotFound(w, r)
		}
	})

	techs, err := c.ListTechnicians(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, []appointment.Technician{{ID: 1, BusinessID: 5, Name: "Juan"}}, techs)

	services, err := c.ListServices(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, []appointment.Service{{ID: 3, BusinessID: 5, Name: "Corte", DurationMinutes: 30, Price: 150.5}}, services)
}

func TestListBookings(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "7", r.URL.Query().Get("idTecnico"))
		_, _ = io.WriteString(w, `[
			{"idCita":1,"idTecnico":7,"fechaCita":"2026-03-09","horaInicio":"10:00:00","horaFin":"10:30:00","estado":"confirmada"},
			{"IdCita":2,"IdTecnico":"7","FechaCita":"2026-03-09T00:00:00Z","HoraInicio":"11:00:00","Estado":"cancelada"},
			{"id_cita":3,"id_tecnico":8,"fecha_cita":"2026-03-09","hora_inicio":"10:00:00","hora_fin":"10:30:00"},
			{"idCita":4,"idTecnico":7,"fechaCita":"","horaInicio":"10:00:00"}
		]`)
	})

	got, err := c.ListBookings(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, appointment.StatusConfirmed, got[0].Status)
	assert.Equal(t, schedule.At(10, 30), got[0].End)
	assert.Equal(t, "2026-03-09", got[1].Date.Format(time.DateOnly))
	assert.Equal(t, appointment.StatusCancelled, got[1].Status)
	assert.Equal(t, schedule.At(11, 15), got[1].End)
}

func TestListBookings_SQLAndISOTimes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[
			{"idCita":1,"idTecnico":7,"fechaCita":"2026-03-09","horaInicio":"10:00:00.0000000","horaFin":"10:30:00.0000000"},
			{"idCita":2,"idTecnico":7,"fechaCita":"2026-03-09","horaInicio":"2026-03-09T11:00:00","horaFin":"2026-03-09T11:45:00Z"},
			{"idCita":3,"idTecnico":7,"fechaCita":"2026-03-09","horaInicio":"once"}
		]`)
	}))
	defer srv.Close()

	core, logs := observer.New(zap.WarnLevel)
	c := NewClient(Config{BaseURL: srv.URL + "/api", Timeout: time.Second}, zap.New(core))

	got, err := c.ListBookings(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, schedule.At(10, 0), got[0].Start)
	assert.Equal(t, schedule.At(10, 30), got[0].End)
	assert.Equal(t, schedule.At(11, 0), got[1].Start)
	assert.Equal(t, schedule.At(11, 45), got[1].End)

	skipped := logs.FilterMessage("skipping unreadable booking").All()
	require.Len(t, skipped, 1)
	assert.Equal(t, "3", skipped[0].ContextMap()["booking_id"])
	assert.Equal(t, "once", skipped[0].ContextMap()["hora_inicio"])
}

func TestCreateBooking_SnakeCasePayloadToBookingURL(t *testing.T) {
	var got map[string]any
	booking := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/citas", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"IdCita": 42, "Estado": "pendiente"}`)
	}))
	defer booking.Close()

	c := NewClient(Config{BaseURL: "http://reads.invalid/api", BookingURL: booking.URL + "/api/"}, zap.NewNop())

	created, err := c.CreateBooking(context.Background(), appointment.NewBooking{
		ClientID:     3,
		TechnicianID: 7,
		ServiceID:    1,
		Date:         time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		Start:        schedule.At(10, 0),
		End:          schedule.At(10, 15),
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"id_cliente":         float64(3),
		"id_tecnico":         float64(7),
		"id_servicio":        float64(1),
		"fecha_cita":         "2026-03-09",
		"hora_inicio":        "10:00:00",
		"hora_fin":           "10:15:00",
		"estado":             "pendiente",
		"motivo_cancelacion": nil,
	}, got)
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, appointment.StatusPending, created.Status)
}

func TestCreateBooking_Rejected(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = io.WriteString(w, `{"message":"horario ocupado"}`)
	})

	_, err := c.CreateBooking(context.Background(), appointment.NewBooking{Date: time.Now()})

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "booking_rejected"))
	assert.True(t, IsStatus(err, http.StatusConflict))
}

func TestUpstreamFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.ListBusinesses(context.Background())
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusBadGateway))

	_, err = c.CreateBooking(context.Background(), appointment.NewBooking{Date: time.Now()})
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestListClients(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/clientes", r.URL.Path)
		_, _ = io.WriteString(w, `[{"IdCliente":9,"Nombre":"Ana","Email":"Ana@Example.com"},{"Nombre":"sin id"}]`)
	})

	got, err := c.ListClients(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []appointment.Client{{ID: 9, Name: "Ana", Email: "Ana@Example.com"}}, got)
}

func TestRegisterAppUser(t *testing.T) {
	var got map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/registroapp", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	})

	require.NoError(t, c.RegisterAppUser(context.Background(), "Ana", "ana@example.com", "$2a$10$hash"))
	assert.Equal(t, map[string]any{
		"Nombre":         "Ana",
		"Email":          "ana@example.com",
		"ContrasenaHash": "$2a$10$hash",
		"IdRol":          float64(4),
		"Token":          nil,
	}, got)
}
