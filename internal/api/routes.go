package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func SetupRoutes(router *gin.Engine, store Store, logger *logrus.Logger) {
	handler := NewHandler(store, logger)

	router.GET("/", handler.Root)

	router.GET("/allProperties", handler.GetAllProperties)
	router.GET("/allProperties/:id", handler.GetProperty)
	router.POST("/allProperties", handler.CreateProperty)
	router.PUT("/allProperties/:id", handler.UpdateProperty)

	// Deletion historically lives under the /myProperties prefix; existing
	// clients depend on it, so the asymmetry stays
	router.DELETE("/myProperties/:id", handler.DeleteProperty)
	router.GET("/myProperties", handler.GetMyProperties)

	router.POST("/myRating", handler.CreateRating)
	router.GET("/myRating", handler.GetMyRatings)
}
