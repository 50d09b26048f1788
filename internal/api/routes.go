package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api")
	{
		api.GET("/health", h.health)
		api.GET("/products", h.listProducts)
		api.GET("/products/demo", h.demoProducts)
		api.GET("/render/:id", h.renderProduct)
		api.GET("/export/:id", h.exportProduct)
		api.GET("/qr", h.productQR)
	}
}
