package middleware

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"stokship/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxRequestIDKey = "request_id"
	requestIDHeader = "X-Request-ID"
	maxRequestIDLen = 128
)

type Logger struct {
	logger *slog.Logger
	cfg    config.LogConfig
}

func NewLogger(cfg config.LogConfig) *Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.UTC().Format(cfg.TimeFormat))
				}
			}
			return a
		},
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	case "text":
		handler = slog.NewTextHandler(os.Stdout, opts)
	default:
		if gin.Mode() == gin.ReleaseMode {
			handler = slog.NewJSONHandler(os.Stdout, opts)
		} else {
			handler = slog.NewTextHandler(os.Stdout, opts)
		}
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return &Logger{logger: logger, cfg: cfg}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *Logger) GetSlogLogger() *slog.Logger {
	return l.logger
}

func (l *Logger) LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		requestID := requestIDFrom(c)

		c.Set(ctxRequestIDKey, requestID)
		c.Header(requestIDHeader, requestID)

		logAttrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("route", c.FullPath()),
			slog.String("client_ip", c.ClientIP()),
		}
		if key := c.GetHeader("Idempotency-Key"); key != "" {
			logAttrs = append(logAttrs, slog.String("idempotency_key", key))
		}

		l.logger.LogAttrs(c.Request.Context(), slog.LevelDebug, "Request started", logAttrs...)

		c.Next()

		// auth runs inside the route group, so the actor is only known afterwards
		if actor, ok := GetActor(c); ok {
			logAttrs = append(logAttrs, slog.String("actor", actor.String()))
		}
		if id := c.Param("id"); id != "" {
			logAttrs = append(logAttrs, slog.String(resourceKey(c.FullPath()), id))
		}
		if paymentID := c.Param("paymentId"); paymentID != "" {
			logAttrs = append(logAttrs, slog.String("payment_id", paymentID))
		}

		statusCode := c.Writer.Status()
		logAttrs = append(logAttrs,
			slog.Int("status_code", statusCode),
			slog.Duration("duration", time.Since(startTime)),
		)
		if size := c.Writer.Size(); size > 0 {
			logAttrs = append(logAttrs, slog.Int("response_size", size))
		}
		if len(c.Errors) > 0 {
			logAttrs = append(logAttrs, slog.String("errors", c.Errors.String()))
		}

		logLevel := slog.LevelInfo
		switch {
		case statusCode >= 500:
			logLevel = slog.LevelError
		case statusCode >= 400:
			logLevel = slog.LevelWarn
		}

		l.logger.LogAttrs(c.Request.Context(), logLevel, "Request completed", logAttrs...)
	}
}

func GetRequestID(c *gin.Context) string {
	if v, exists := c.Get(ctxRequestIDKey); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// upstream proxies may already have assigned an id
func requestIDFrom(c *gin.Context) string {
	if id := strings.TrimSpace(c.GetHeader(requestIDHeader)); id != "" && len(id) <= maxRequestIDLen {
		return id
	}
	return uuid.NewString()
}

func resourceKey(route string) string {
	switch {
	case strings.HasPrefix(route, "/api/deals"):
		return "deal_id"
	case strings.HasPrefix(route, "/api/offer-items"):
		return "offer_item_id"
	default:
		return "resource_id"
	}
}
