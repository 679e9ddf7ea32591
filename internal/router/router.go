package router

import (
	"github.com/gin-gonic/gin"

	"github.com/seiflotfy/huffpack/internal/handler"
)

type Dependencies struct {
	ArchiveHandler *handler.ArchiveHandler
}

func Register(r *gin.Engine, d Dependencies) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	v1 := r.Group("/api/v1")
	{
		archives := v1.Group("/archives")
		{
			archives.POST("", d.ArchiveHandler.Create)
			archives.GET("/:id", d.ArchiveHandler.GetByID)
		}
		v1.POST("/decompress", d.ArchiveHandler.Decompress)
	}
}
