package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nntexpressinc/blackhawks.tms-sub001/pkg/resp"
	"github.com/nntexpressinc/blackhawks.tms-sub001/services"
	"github.com/nntexpressinc/blackhawks.tms-sub001/utils"
)

type LoadController struct {
	service *services.LoadService
}

func NewLoadController(s *services.LoadService) *LoadController {
	return &LoadController{s}
}

func paramID(c *gin.Context) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id64), true
}

// GET /loads
func (ctl *LoadController) List(c *gin.Context) {
	loads, err := ctl.service.List(utils.CurrentCapabilities(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, loads)
}

// GET /loads/:id
func (ctl *LoadController) Detail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	load, err := ctl.service.Get(utils.CurrentCapabilities(c), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	// the record carries bare ids; resolved entities ride alongside so the
	// client never sees a mixed id-or-object shape
	resp.OK(c, gin.H{
		"load": load,
		"resolved": gin.H{
			"customer_broker": load.CustomerBroker,
			"driver":          load.Driver,
			"dispatcher":      load.Dispatcher,
			"truck":           load.Truck,
			"trailer":         load.Trailer,
		},
		"stops": load.Stops,
	})
}

// POST /loads — draft creation, the minimal triple
func (ctl *LoadController) CreateDraft(c *gin.Context) {
	var req services.CreateDraftReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request")
		return
	}

	load, err := ctl.service.CreateDraft(utils.CurrentCapabilities(c), utils.CurrentUserID(c), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, load)
}

// PATCH /loads/:id?version=N — stage-flow partial update
func (ctl *LoadController) Patch(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	version, ok := queryVersion(c)
	if !ok {
		return
	}

	var patch services.LoadPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		resp.BadRequest(c, "invalid request")
		return
	}

	load, err := ctl.service.PatchStage(utils.CurrentCapabilities(c), id, version, &patch)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, load)
}

// PUT /loads/:id?version=N — ad hoc full save, never touches load_status
func (ctl *LoadController) Save(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	version, ok := queryVersion(c)
	if !ok {
		return
	}

	var req services.SaveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request")
		return
	}

	load, err := ctl.service.Save(utils.CurrentCapabilities(c), id, version, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, load)
}

// POST /loads/:id/advance
func (ctl *LoadController) Advance(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req struct {
		Version uint `json:"version"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request")
		return
	}

	load, err := ctl.service.Advance(utils.CurrentCapabilities(c), id, req.Version)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, load)
}

// POST /loads/:id/unit — assign or clear the unit cascade
func (ctl *LoadController) ApplyUnit(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req struct {
		UnitID  *uint `json:"unit_id"`
		Version uint  `json:"version"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request")
		return
	}

	load, err := ctl.service.ApplyUnit(utils.CurrentCapabilities(c), id, req.Version, req.UnitID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, load)
}

func queryVersion(c *gin.Context) (uint, bool) {
	v64, err := strconv.ParseUint(c.Query("version"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "version query parameter required")
		return 0, false
	}
	return uint(v64), true
}
