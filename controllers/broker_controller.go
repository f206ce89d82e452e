package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/nntexpressinc/blackhawks.tms-sub001/pkg/resp"
	"github.com/nntexpressinc/blackhawks.tms-sub001/services"
	"github.com/nntexpressinc/blackhawks.tms-sub001/utils"
)

type BrokerController struct {
	service *services.BrokerService
}

func NewBrokerController(s *services.BrokerService) *BrokerController {
	return &BrokerController{s}
}

// GET /customer_brokers
func (ctl *BrokerController) List(c *gin.Context) {
	brokers, err := ctl.service.List(utils.CurrentCapabilities(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, brokers)
}

// POST /customer_brokers — inline creation during the load flow
func (ctl *BrokerController) Create(c *gin.Context) {
	var req services.CreateBrokerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request")
		return
	}

	broker, err := ctl.service.CreateInline(utils.CurrentCapabilities(c), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, broker)
}
