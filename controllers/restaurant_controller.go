package controllers

import (
	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/pkg/resp"
	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/services"
	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/utils"
	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	Svc *services.RestaurantService
}

func NewRestaurantController(svc *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Svc: svc}
}

// GET /restaurants
func (r *RestaurantController) List(c *gin.Context) {
	out, err := r.Svc.List(utils.CurrentUser(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /restaurants/:id
func (r *RestaurantController) Detail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	rest, err := r.Svc.Get(utils.CurrentUser(c), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, rest)
}
