package main

import (
	"fmt"
	"net/http"

	"mealtracker-go-api/controllers/check"
	dishCtl "mealtracker-go-api/controllers/dish"
	ingredientCtl "mealtracker-go-api/controllers/ingredient"
	menuCtl "mealtracker-go-api/controllers/menu"
	"mealtracker-go-api/database"
	"mealtracker-go-api/router"
	"mealtracker-go-api/services"
	"mealtracker-go-api/services/activity"
	"mealtracker-go-api/services/dish"
	"mealtracker-go-api/services/grocery"
	"mealtracker-go-api/services/ingredient"
	logLib "mealtracker-go-api/services/log"
	"mealtracker-go-api/services/menu"
	"mealtracker-go-api/services/rabbitmq"
	"mealtracker-go-api/services/trackLog"
	"mealtracker-go-api/utils"

	"log"

	"github.com/sirupsen/logrus"
)

func main() {

	var envService utils.EnvService
	envService.InitEnv()
	fmt.Println("env loaded...")

	db, err := database.Open(utils.EnvConfig)
	failOnError(err, "Failed to connect to database")
	defer db.Close()
	failOnError(database.Migrate(db), "Failed to migrate database")

	trackLog.LogTrackInit()

	defer func() {
		var logService logLib.LogService
		logwr := logService.LoggerInit("main")
		logwr.WithFields(logrus.Fields{"task": "main"}).Error("api shutdown")
		crashEmailAlert()
		fmt.Println("api shutdown")
	}()

	// activity events go to rabbitmq only when enabled
	var publisher *rabbitmq.Connection
	if utils.EnvConfig.RabbitMQ.Enable == 1 {
		publisher = rabbitmq.NewConnection("mealtracker", utils.EnvConfig.RabbitMQ.Exchange)
		failOnError(publisher.Connect(), "Failed to connect to RabbitMQ")
		failOnError(publisher.DeclareExchange(), "Failed to declare exchange")
	}

	activityService := activity.NewActivityService(db, publisher)
	ingredientService := ingredient.NewIngredientService(db, activityService)
	dishService := dish.NewDishService(db, activityService)
	menuService := menu.NewMenuService(db, activityService)
	groceryService := grocery.NewGroceryService(db)

	route := router.Router(
		ingredientCtl.NewController(ingredientService),
		dishCtl.NewController(dishService),
		menuCtl.NewController(menuService, groceryService),
		check.NewController(db),
	)

	trackLog.Info(fmt.Sprintf("listening on :%d", utils.EnvConfig.Router.Port), true)
	if err := route.Run(fmt.Sprintf(":%d", utils.EnvConfig.Router.Port)); err != nil {
		trackLog.Error(err.Error(), true)
	}
}

func crashEmailAlert() {
	api := utils.EnvConfig.Email.APIUrl
	if api == "" {
		return
	}
	if _, err := services.HttpRequest(http.MethodPost, api, nil, "mealtracker api down"); err != nil {
		trackLog.Error(err.Error(), false)
	}
}

func failOnError(err error, msg string) {
	if err != nil {
		log.Fatalf("%s: %s", msg, err)
	}
}
