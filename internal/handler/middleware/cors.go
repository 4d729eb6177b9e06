package middleware

import (
	"log/slog"
	"slices"

	"stokship/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// headers clients need to read for retries and tracing
var requiredExposeHeaders = []string{"Retry-After", requestIDHeader}

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	if len(cfg.AllowOrigins) == 0 {
		slog.Info("CORS disabled, no allowed origins configured")
		return func(c *gin.Context) { c.Next() }
	}

	expose := slices.Clone(cfg.ExposeHeaders)
	for _, h := range requiredExposeHeaders {
		if !slices.Contains(expose, h) {
			expose = append(expose, h)
		}
	}

	allowAll := slices.Contains(cfg.AllowOrigins, "*")
	credentials := cfg.AllowCredentials
	if allowAll && credentials {
		// browsers reject credentialed responses with a wildcard origin
		slog.Warn("CORS credentials disabled for wildcard origin")
		credentials = false
	}

	corsCfg := cors.Config{
		AllowAllOrigins:  allowAll,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    expose,
		AllowCredentials: credentials,
		MaxAge:           cfg.MaxAge,
	}
	if !allowAll {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}

	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins, "credentials", credentials)
	return cors.New(corsCfg)
}
