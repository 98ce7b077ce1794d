package respond

import (
	"net/http"
	"strconv"

	"mealtracker-go-api/structs"

	"github.com/gin-gonic/gin"
)

// Error maps a service error onto its HTTP status: missing entities are 404,
// validation and reference failures are 400, anything else is 500.
func Error(c *gin.Context, err error) {
	switch structs.KindOf(err) {
	case structs.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case structs.ErrValidation, structs.ErrInvalidReference:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// ID parses the :id path parameter, replying 400 itself on garbage input.
func ID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
