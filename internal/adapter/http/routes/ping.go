package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Ping godoc
// @Summary  Liveness probe
// @Tags     health
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   /ping [get]
func ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

func addPingRoutes(router gin.IRoutes) {
	router.GET("/ping", ping)
}
