package dish

import (
	"net/http"

	"mealtracker-go-api/controllers/respond"
	dishSvc "mealtracker-go-api/services/dish"
	"mealtracker-go-api/structs"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	Service *dishSvc.DishService
}

func NewController(service *dishSvc.DishService) *Controller {
	return &Controller{Service: service}
}

func (ct *Controller) List(c *gin.Context) {
	entities, err := ct.Service.List()
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, entities)
}

func (ct *Controller) Get(c *gin.Context) {
	id, ok := respond.ID(c)
	if !ok {
		return
	}
	entity, err := ct.Service.Get(id)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, entity)
}

func (ct *Controller) Create(c *gin.Context) {
	var param structs.DishParam
	if err := c.ShouldBindJSON(&param); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entity, err := ct.Service.Create(param)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, entity)
}

func (ct *Controller) Update(c *gin.Context) {
	id, ok := respond.ID(c)
	if !ok {
		return
	}
	var param structs.DishParam
	if err := c.ShouldBindJSON(&param); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entity, err := ct.Service.Update(id, param)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, entity)
}

func (ct *Controller) Delete(c *gin.Context) {
	id, ok := respond.ID(c)
	if !ok {
		return
	}
	if err := ct.Service.Delete(id); err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Dish deleted"})
}
