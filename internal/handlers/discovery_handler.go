package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/nearbiz/internal/domain/business"
	"github.com/BruksfildServices01/nearbiz/internal/domain/geo"
	"github.com/BruksfildServices01/nearbiz/internal/httperr"
	"github.com/BruksfildServices01/nearbiz/internal/httpresp"
	"github.com/BruksfildServices01/nearbiz/internal/usecase/discovery"
)

// ======================================================
// HANDLER
// ======================================================

type DiscoveryHandler struct {
	search          *discovery.SearchNearby
	route           *discovery.GetRoute
	defaultLocation geo.Coordinate
}

func NewDiscoveryHandler(
	search *discovery.SearchNearby,
	route *discovery.GetRoute,
	defaultLocation geo.Coordinate,
) *DiscoveryHandler {
	return &DiscoveryHandler{
		search:          search,
		route:           route,
		defaultLocation: defaultLocation,
	}
}

// ======================================================
// NEARBY
// ======================================================

func (h *DiscoveryHandler) Nearby(c *gin.Context) {
	origin, ok := queryOrigin(c)
	if !ok {
		return
	}

	var radius float64
	if raw := c.Query("radius_km"); raw != "" {
		r, err := strconv.ParseFloat(raw, 64)
		if err != nil || r <= 0 {
			httperr.BadRequest(c, "invalid_radius", "Radio inválido.")
			return
		}
		radius = r
	}

	query := c.Query("query")
	if query == "" {
		query = c.Query("q")
	}

	out, err := h.search.Execute(c.Request.Context(), discovery.SearchNearbyInput{
		Origin:   origin,
		RadiusKm: radius,
		Category: c.Query("category"),
		Query:    query,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, out)
}

// ======================================================
// ROUTE
// ======================================================

func (h *DiscoveryHandler) Route(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	origin, ok := queryOrigin(c)
	if !ok {
		return
	}
	if origin == nil {
		origin = &h.defaultLocation
	}

	out, err := h.route.Execute(c.Request.Context(), id, *origin)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, out)
}

func (h *DiscoveryHandler) Categories(c *gin.Context) {
	httpresp.List(c, business.Categories())
}
