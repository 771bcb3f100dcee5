package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"venue-content-backend/pkg/cache"
)

// InvalidateOnWrite drops the keys matching pattern after any successful non-GET
// request, so public pages pick up admin edits. Stale fallback copies are kept.
func InvalidateOnWrite(c cache.Cache, pattern string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Next()

		if c == nil || ctx.Request.Method == http.MethodGet {
			return
		}
		if status := ctx.Writer.Status(); status < 200 || status >= 300 {
			return
		}
		if err := c.DeletePattern(ctx.Request.Context(), pattern); err != nil {
			log.Warn().Err(err).Str("pattern", pattern).Msg("cache invalidation failed")
		}
	}
}
