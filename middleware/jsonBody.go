package middleware

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_app/config"
	"github.com/unicsmcr/hs_app/routers/api/models"
)

// JSONBodyKey is the context key under which JSONBody stores the parsed request body
const JSONBodyKey = "jsonBody"

// JSONBody parses application/json request bodies before they reach route handlers.
// Malformed bodies are rejected with 400 and oversized ones with 413, while an empty
// body is stored as an empty object. The raw bytes stay cached on the context, so
// handlers can still use ShouldBindBodyWith.
func JSONBody(cfg config.JSONConfig) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.ContentType() != binding.MIMEJSON {
			ctx.Next()
			return
		}
		if ctx.Request.Body == nil || ctx.Request.ContentLength == 0 {
			ctx.Set(JSONBodyKey, map[string]interface{}{})
			ctx.Next()
			return
		}

		if cfg.Limit > 0 {
			if ctx.Request.ContentLength > cfg.Limit {
				sendBodyTooLarge(ctx, cfg.Limit)
				return
			}
			ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, cfg.Limit)
		}

		raw, err := io.ReadAll(ctx.Request.Body)
		if err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				sendBodyTooLarge(ctx, cfg.Limit)
				return
			}
			models.SendAPIError(ctx, http.StatusBadRequest, "could not read request body")
			return
		}
		ctx.Set(gin.BodyBytesKey, raw)

		// chunked requests report an unknown length, so emptiness is only known after reading
		if len(bytes.TrimSpace(raw)) == 0 {
			ctx.Set(JSONBodyKey, map[string]interface{}{})
			ctx.Next()
			return
		}

		var body interface{}
		err = binding.JSON.BindBody(raw, &body)
		if err != nil {
			models.SendAPIError(ctx, http.StatusBadRequest, "malformed JSON request body")
			return
		}

		if cfg.Strict && !isObjectOrArray(body) {
			models.SendAPIError(ctx, http.StatusBadRequest, "JSON request body must be an object or an array")
			return
		}

		ctx.Set(JSONBodyKey, body)
		ctx.Next()
	}
}

func isObjectOrArray(body interface{}) bool {
	switch body.(type) {
	case map[string]interface{}, []interface{}:
		return true
	default:
		return false
	}
}

func sendBodyTooLarge(ctx *gin.Context, limit int64) {
	models.SendAPIError(ctx, http.StatusRequestEntityTooLarge, fmt.Sprintf("request body exceeds %d bytes", limit))
}
