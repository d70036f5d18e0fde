package router

import (
	"net/http"

	"github.com/RigelNana/arkclinic/gateway/docs"
	"github.com/RigelNana/arkclinic/gateway/handler"
	ginMetrics "github.com/RigelNana/arkclinic/pkg/metrics/gin"
	"github.com/gin-gonic/gin"
)

func Setup(trialHandler *handler.TrialHandler, auth gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), ginMetrics.PrometheusMiddleware("gateway"))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	docs.RegisterRoutes(r)

	api := r.Group("/api", auth)
	{
		api.POST("/files/upload", trialHandler.UploadFile)
		api.GET("/files", trialHandler.ListFiles)
		api.GET("/files/:id", trialHandler.GetFile)

		api.POST("/reports", trialHandler.CreateReport)
		api.GET("/reports", trialHandler.ListReports)
		api.GET("/reports/:id", trialHandler.GetReport)
		api.GET("/reports/:id/download", trialHandler.DownloadReport)
	}
	return r
}
