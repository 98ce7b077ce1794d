package check

import (
	"net/http"
	"runtime"

	"mealtracker-go-api/services/trackLog"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

type AliveResponse struct {
	Success  bool      `json:"success"`
	Messsage string    `json:"message"`
	Info     CheckInfo `json:"info"`
}

type CheckInfo struct {
	Database   string `json:"database"`
	RoutineNum int    `json:"routine_num"`
}

type Controller struct {
	DB *gorm.DB
}

func NewController(db *gorm.DB) *Controller {
	return &Controller{DB: db}
}

func (ct *Controller) CheckAlive(c *gin.Context) {
	resMsg := "main thread alive"
	checkInfo := CheckInfo{Database: "ok"}

	if err := ct.DB.DB().Ping(); err != nil {
		resMsg = "database ping failed"
		checkInfo.Database = err.Error()
		trackLog.Error(resMsg, false)
	}

	checkInfo.RoutineNum = runtime.NumGoroutine()

	c.JSON(http.StatusOK, AliveResponse{checkInfo.Database == "ok", resMsg, checkInfo})
}
