package middleware

import (
	"net/http"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/unicsmcr/hs_app/config"
)

const anyValue = "*"

// CORS adds cross-origin headers to responses and answers preflight requests.
// An empty origin list or one containing "*" allows any origin. Likewise an empty
// header list or one containing "*" allows whatever headers the preflight asks for.
func CORS(cfg config.CORSConfig) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods: cfg.AllowMethods,
		MaxAge:       cfg.MaxAge,
	}

	anyOrigin := allowsAny(cfg.AllowOrigins)
	if anyOrigin {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowOrigins
	}

	anyHeader := allowsAny(cfg.AllowHeaders)
	if !anyHeader {
		corsConfig.AllowHeaders = cfg.AllowHeaders
	}

	handler := cors.New(corsConfig)
	if !anyHeader {
		return handler
	}

	return func(ctx *gin.Context) {
		// cors writes the preflight response itself, so the header has to be in place first
		if ctx.Request.Method == http.MethodOptions && (anyOrigin || slices.Contains(cfg.AllowOrigins, ctx.GetHeader("Origin"))) {
			if requested := ctx.GetHeader("Access-Control-Request-Headers"); requested != "" {
				ctx.Header("Access-Control-Allow-Headers", requested)
			}
		}
		handler(ctx)
	}
}

func allowsAny(values []string) bool {
	return len(values) == 0 || slices.Contains(values, anyValue)
}
