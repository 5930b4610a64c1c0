package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"skydry-api/pkg/log"
	"skydry-api/pkg/msg"
)

var quietPaths = []string{"/health", "/swagger/"}

// SetupRequestLogger assigns a request id to every request and logs each
// finished request with the profile it was served for.
func SetupRequestLogger(e *echo.Echo) {
	e.Use(echomw.RequestID())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogError:     true,
		LogRequestID: true,
		Skipper: func(c echo.Context) bool {
			return isQuietPath(c.Request().URL.Path)
		},
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := requestFields(c, v)
			if v.Error != nil {
				log.Error(msg.GetMessage("app.req-fail", v.Method, v.URI, v.Status, v.Latency, v.RequestID, v.Error),
					append(fields, zap.Error(v.Error))...)
				return nil
			}
			if v.Status >= 500 {
				log.Warn(msg.GetMessage("app.req-end", v.Method, v.URI, v.Status, v.Latency, v.RequestID), fields...)
				return nil
			}
			log.Info(msg.GetMessage("app.req-end", v.Method, v.URI, v.Status, v.Latency, v.RequestID), fields...)
			return nil
		},
	}))
}

// isQuietPath reports whether requests to path are too frequent to be worth logging
func isQuietPath(path string) bool {
	for _, quiet := range quietPaths {
		if strings.Contains(path, quiet) {
			return true
		}
	}
	return false
}

func requestFields(c echo.Context, v echomw.RequestLoggerValues) []zap.Field {
	return []zap.Field{
		zap.String("method", v.Method),
		zap.String("uri", v.URI),
		zap.Int("status", v.Status),
		zap.Duration("latency", v.Latency),
		zap.String("request_id", v.RequestID),
		zap.String("profile_id", ProfileID(c)),
	}
}
