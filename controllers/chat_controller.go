package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/nntexpressinc/blackhawks.tms-sub001/pkg/resp"
	"github.com/nntexpressinc/blackhawks.tms-sub001/services"
	"github.com/nntexpressinc/blackhawks.tms-sub001/utils"
	"github.com/nntexpressinc/blackhawks.tms-sub001/ws"
)

type ChatController struct {
	service *services.ChatService
	hub     *ws.LoadChannelHub
}

func NewChatController(s *services.ChatService, hub *ws.LoadChannelHub) *ChatController {
	return &ChatController{service: s, hub: hub}
}

// GET /loads/:id/chat — transcript in chronological order
func (ctl *ChatController) ListMessages(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	msgs, err := ctl.service.ListMessages(utils.CurrentCapabilities(c), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, msgs)
}

// POST /loads/:id/chat
func (ctl *ChatController) PostMessage(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request")
		return
	}

	msg, err := ctl.service.PostMessage(utils.CurrentCapabilities(c), id, utils.CurrentUserID(c), req.Message)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	// websocket watchers get the message without re-fetching
	ctl.hub.Publish(id, msg)

	resp.Created(c, msg)
}
