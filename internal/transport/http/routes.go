package httpt

import (
	"net/http"

	_ "github.com/Kabir14815/rr/docs" // for swagger

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title        Consignment Desk API
// @version      1.0
// @description  Draft, submit and export consignments; track and quote for the storefront.
// @host         localhost:8080
// @BasePath     /api/v1
// @schemes      http https
func (h *Handler) setupRoutes() {
	h.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{Status: "ok", Version: h.version})
	})

	api := h.router.Group("/api/v1")

	api.GET("/reference", h.getReference)
	api.GET("/dashboard", h.getDashboard)

	consignments := api.Group("/consignments")
	{
		consignments.GET("", h.listConsignments)
		consignments.POST("/export", h.exportConsignments)
		consignments.GET("/:id", h.getConsignment)
		consignments.DELETE("/:id", h.deleteConsignment)
	}

	drafts := api.Group("/drafts")
	{
		drafts.POST("", h.openDraft)
		drafts.GET("/:id", h.getDraft)
		drafts.PATCH("/:id", h.updateDraft)
		drafts.POST("/:id/rate-card/retry", h.retryRateCard)
		drafts.POST("/:id/submit", h.submitDraft)
		drafts.DELETE("/:id", h.discardDraft)
	}

	api.GET("/track/:code", h.trackShipment)
	api.POST("/quote", h.calculateQuote)

	h.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
