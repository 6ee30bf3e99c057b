package controllers

import (
	"net/http"

	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/pkg/resp"
	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/services"
	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/utils"
	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Svc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{Svc: svc}
}

// POST /login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Svc.Login(req.Username, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"user":  user,
	})
}

// GET /me
func (a *AuthController) Me(c *gin.Context) {
	resp.OK(c, utils.CurrentUser(c))
}
