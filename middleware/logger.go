package middleware

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
)

// RequestLogger writes one line per request to out, e.g.
//
//	GET /?page=2 200 0.412 ms - 44
func RequestLogger(out io.Writer) gin.HandlerFunc {
	return gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: devLogFormatter,
		Output:    out,
	})
}

func devLogFormatter(param gin.LogFormatterParams) string {
	var statusColor, resetColor string
	if param.IsOutputColor() {
		statusColor = param.StatusCodeColor()
		resetColor = param.ResetColor()
	}

	size := "-"
	if param.BodySize >= 0 {
		size = strconv.Itoa(param.BodySize)
	}

	return fmt.Sprintf("%s %s %s%d%s %.3f ms - %s\n",
		param.Method,
		param.Path,
		statusColor, param.StatusCode, resetColor,
		float64(param.Latency.Microseconds())/1000,
		size,
	)
}
