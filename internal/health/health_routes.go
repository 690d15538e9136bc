package health

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, handler *Handler) {
	r.GET("/", handler.Root)
	r.GET("/test", handler.Diagnostics)
}
