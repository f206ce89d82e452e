package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/nntexpressinc/blackhawks.tms-sub001/pkg/resp"
	"github.com/nntexpressinc/blackhawks.tms-sub001/services"
	"github.com/nntexpressinc/blackhawks.tms-sub001/utils"
)

type UnitController struct {
	service *services.UnitService
}

func NewUnitController(s *services.UnitService) *UnitController {
	return &UnitController{s}
}

// GET /units
func (ctl *UnitController) List(c *gin.Context) {
	units, err := ctl.service.List(utils.CurrentCapabilities(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, units)
}

// GET /units/:id
func (ctl *UnitController) Detail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	unit, err := ctl.service.Get(utils.CurrentCapabilities(c), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, unit)
}

// GET /trailers/:id — trailer metadata for equipment inference
func (ctl *UnitController) TrailerDetail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	trailer, err := ctl.service.GetTrailer(utils.CurrentCapabilities(c), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, trailer)
}
