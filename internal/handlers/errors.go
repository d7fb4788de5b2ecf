package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/nearbiz/internal/domain/appointment"
	"github.com/BruksfildServices01/nearbiz/internal/httperr"
	"github.com/BruksfildServices01/nearbiz/internal/infra/nearbiz"
)

// ======================================================
// BUSINESS ERROR MAPPING
// ======================================================

var businessStatus = map[string]int{
	"business_not_found":   http.StatusNotFound,
	"technician_not_found": http.StatusNotFound,
	"service_not_found":    http.StatusNotFound,
	"user_not_found":       http.StatusNotFound,

	"slot_taken":       http.StatusConflict,
	"email_taken":      http.StatusConflict,
	"booking_rejected": http.StatusConflict,

	"invalid_credentials": http.StatusUnauthorized,

	"client_not_linked":         http.StatusUnprocessableEntity,
	"business_without_location": http.StatusUnprocessableEntity,
}

var businessMessage = map[string]string{
	"business_not_found":        "Negocio no encontrado.",
	"technician_not_found":      "Técnico no encontrado para este negocio.",
	"service_not_found":         "Servicio no encontrado para este negocio.",
	"user_not_found":            "Usuario no encontrado.",
	"slot_taken":                "El horario ya está ocupado.",
	"email_taken":               "El correo ya está registrado.",
	"booking_rejected":          "El servidor rechazó la cita.",
	"invalid_credentials":       "Correo o contraseña incorrectos.",
	"client_not_linked":         "Tu cuenta no está vinculada a un cliente.",
	"business_without_location": "El negocio no tiene ubicación registrada.",
	"date_in_past":              "La fecha u hora ya pasó.",
	"outside_working_hours":     "El horario está fuera del horario de atención.",
	"business_closed":           "El negocio está cerrado ese día.",
	"invalid_date_or_time":      "Fecha u hora inválida.",
	"name_required":             "El nombre es obligatorio.",
	"invalid_email":             "Correo inválido.",
	"invalid_email_domain":      "El dominio del correo no existe.",
	"weak_password":             "La contraseña debe tener al menos 6 caracteres.",
}

// respondError turns use case errors into HTTP responses.
func respondError(c *gin.Context, err error) {
	var be httperr.BusinessError

	switch {
	case errors.As(err, &be):
		status, ok := businessStatus[be.Code]
		if !ok {
			status = http.StatusBadRequest
		}
		httperr.Write(c, status, be.Code, businessMessage[be.Code])

	case errors.Is(err, domain.ErrCrossesMidnight):
		httperr.BadRequest(c, "crosses_midnight", "El servicio terminaría después de medianoche.")

	case errors.Is(err, nearbiz.ErrUnavailable):
		zap.L().Warn("upstream unavailable", zap.String("path", c.FullPath()), zap.Error(err))
		httperr.BadGateway(c, "upstream_unavailable", "El servicio de negocios no está disponible.")

	default:
		zap.L().Error("unhandled error", zap.String("path", c.FullPath()), zap.Error(err))
		httperr.Internal(c, "internal_error", "Error interno.")
	}
}
