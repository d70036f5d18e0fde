package gin

import (
	"strconv"
	"time"

	"github.com/RigelNana/arkclinic/pkg/metrics"
	"github.com/gin-gonic/gin"
)

// PrometheusMiddleware records one request sample per handled route.
// Requests that match no route share the "unmatched" label so that
// scanners cannot blow up label cardinality.
func PrometheusMiddleware(serviceName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RecordRequest(serviceName, c.Request.Method+" "+route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
