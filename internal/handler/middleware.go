package handler

import (
	"time"

	"github.com/rachelL-tech/taipei-day-trip/internal/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger - middleware, пишущее структурированную запись о каждом запросе:
// метод, путь, статус и длительность обработки.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Request(c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
