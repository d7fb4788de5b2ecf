package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/nearbiz/internal/domain/geo"
	"github.com/BruksfildServices01/nearbiz/internal/httperr"
)

// pathID reads a positive integer path parameter, writing a 400 otherwise.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return id, true
}

// queryID reads an optional positive integer query parameter. Zero means absent.
func queryID(c *gin.Context, name string) (int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		httperr.BadRequest(c, "invalid_"+name, "Parámetro inválido: "+name+".")
		return 0, false
	}
	return id, true
}

// queryOrigin reads lat/lng. Both must be present or both absent.
func queryOrigin(c *gin.Context) (*geo.Coordinate, bool) {
	latRaw, lngRaw := c.Query("lat"), c.Query("lng")
	if latRaw == "" && lngRaw == "" {
		return nil, true
	}

	lat, errLat := strconv.ParseFloat(latRaw, 64)
	lng, errLng := strconv.ParseFloat(lngRaw, 64)
	origin := geo.Coordinate{Latitude: lat, Longitude: lng}
	if errLat != nil || errLng != nil || !origin.Valid() {
		httperr.BadRequest(c, "invalid_location", "Coordenadas inválidas.")
		return nil, false
	}
	return &origin, true
}
