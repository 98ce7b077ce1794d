package menu

import (
	"net/http"

	"mealtracker-go-api/controllers/respond"
	grocerySvc "mealtracker-go-api/services/grocery"
	menuSvc "mealtracker-go-api/services/menu"
	"mealtracker-go-api/structs"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	Service *menuSvc.MenuService
	Grocery *grocerySvc.GroceryService
}

func NewController(service *menuSvc.MenuService, grocery *grocerySvc.GroceryService) *Controller {
	return &Controller{Service: service, Grocery: grocery}
}

func (ct *Controller) List(c *gin.Context) {
	entities, err := ct.Service.List(c.Query("period"))
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
	var param structs.MenuItemParam
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
	var patch structs.MenuItemPatchParam
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entity, err := ct.Service.Update(id, patch)
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
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}

// GroceryForItem renders the shopping list of one menu item.
func (ct *Controller) GroceryForItem(c *gin.Context) {
	id, ok := respond.ID(c)
	if !ok {
		return
	}
	lines, err := ct.Grocery.Generate(id)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, lines)
}

// GroceryForPeriod renders the merged shopping list across every menu item
// in the period window.
func (ct *Controller) GroceryForPeriod(c *gin.Context) {
	lines, err := ct.Grocery.GenerateForPeriod(c.Query("period"))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, lines)
}
