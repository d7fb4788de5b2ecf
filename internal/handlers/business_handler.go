package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/nearbiz/internal/domain/appointment"
	"github.com/BruksfildServices01/nearbiz/internal/httpresp"
)

type BusinessHandler struct {
	repo domain.Directory
}

func NewBusinessHandler(repo domain.Directory) *BusinessHandler {
	return &BusinessHandler{repo: repo}
}

func (h *BusinessHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	biz, err := h.repo.GetBusiness(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, biz)
}

func (h *BusinessHandler) Technicians(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if _, err := h.repo.GetBusiness(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	techs, err := h.repo.ListTechnicians(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, techs)
}

func (h *BusinessHandler) Services(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if _, err := h.repo.GetBusiness(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	services, err := h.repo.ListServices(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, services)
}
