package router

import (
	checkCtl "mealtracker-go-api/controllers/check"
	dishCtl "mealtracker-go-api/controllers/dish"
	ingredientCtl "mealtracker-go-api/controllers/ingredient"
	menuCtl "mealtracker-go-api/controllers/menu"
	"mealtracker-go-api/controllers/readProbe"

	"github.com/gin-gonic/gin"
)

func Router(ingredient *ingredientCtl.Controller, dish *dishCtl.Controller, menu *menuCtl.Controller, check *checkCtl.Controller) *gin.Engine {
	route := gin.Default()

	route.GET("/read-probe", readProbe.Probe)
	route.GET("/check-live", check.CheckAlive)

	api := route.Group("/api")

	ingredients := api.Group("/ingredients")
	ingredients.GET("", ingredient.List)
	ingredients.GET("/:id", ingredient.Get)
	ingredients.POST("", ingredient.Create)
	ingredients.PATCH("/:id", ingredient.Update)
	ingredients.DELETE("/:id", ingredient.Delete)

	dishes := api.Group("/dishes")
	dishes.GET("", dish.List)
	dishes.GET("/:id", dish.Get)
	dishes.POST("", dish.Create)
	dishes.PATCH("/:id", dish.Update)
	dishes.DELETE("/:id", dish.Delete)

	menuItems := api.Group("/menu")
	menuItems.GET("", menu.List)
	menuItems.GET("/:id", menu.Get)
	menuItems.POST("", menu.Create)
	menuItems.PATCH("/:id", menu.Update)
	menuItems.DELETE("/:id", menu.Delete)
	menuItems.GET("/:id/grocery", menu.GroceryForItem)

	// merged list across the whole period window
	api.GET("/grocery", menu.GroceryForPeriod)

	return route
}
