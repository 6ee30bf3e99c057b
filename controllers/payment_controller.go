package controllers

import (
	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/pkg/resp"
	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/services"
	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/utils"
	"github.com/gin-gonic/gin"
)

type UpdatePaymentMethodRequest struct {
	Type string `json:"type" binding:"required"`
}

type PaymentController struct {
	Svc *services.PaymentService
}

func NewPaymentController(svc *services.PaymentService) *PaymentController {
	return &PaymentController{Svc: svc}
}

// GET /payment-methods
func (p *PaymentController) List(c *gin.Context) {
	out, err := p.Svc.List(utils.CurrentUser(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, out)
}

// PUT /payment-methods/:id
func (p *PaymentController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	pm, err := p.Svc.UpdateType(utils.CurrentUser(c), id, req.Type)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, pm)
}
