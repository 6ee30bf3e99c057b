package controllers

import (
	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/pkg/resp"
	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/services"
	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/utils"
	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

// POST /orders
func (o *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := o.Svc.Create(utils.CurrentUser(c), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders
func (o *OrderController) List(c *gin.Context) {
	out, err := o.Svc.List(utils.CurrentUser(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /orders/:id/checkout
func (o *OrderController) Checkout(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	order, err := o.Svc.Checkout(utils.CurrentUser(c), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, order)
}

// POST /orders/:id/cancel
func (o *OrderController) Cancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	order, err := o.Svc.Cancel(utils.CurrentUser(c), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, order)
}
