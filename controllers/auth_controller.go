package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/nntexpressinc/blackhawks.tms-sub001/pkg/resp"
	"github.com/nntexpressinc/blackhawks.tms-sub001/services"
	"github.com/nntexpressinc/blackhawks.tms-sub001/utils"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(s *services.AuthService) *AuthController {
	return &AuthController{s}
}

// POST /auth/register
func (ctl *AuthController) Register(c *gin.Context) {
	var req struct {
		Email     string `json:"email" binding:"required,email"`
		Password  string `json:"password" binding:"required,min=8"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := ctl.service.Register(req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, user)
}

// POST /auth/login — returns the token plus the decoded capability map so
// the client can hide actions it may not invoke
func (ctl *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request")
		return
	}

	token, user, err := ctl.service.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}

	resp.OK(c, gin.H{
		"token":       token,
		"user":        user,
		"permissions": utils.RoleCapabilities(user.Role),
	})
}
