package http

import (
	"strings"

	"go.uber.org/zap"

	"skydry-api/pkg/log"
)

// ZapLogger writes outbound HTTP traffic through the application logger.
// Bodies are only logged at debug level.
type ZapLogger struct {
	Name string
}

func NewZapLogger(name string) *ZapLogger {
	return &ZapLogger{Name: name}
}

func (l *ZapLogger) LogRequest(method, url string, headers map[string]string, body string) {
	log.Debug("http request",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", stripQuery(url)),
		zap.String("body", body))
}

func (l *ZapLogger) LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64) {
	log.Info("http response",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", stripQuery(url)),
		zap.Int("status", httpStatus),
		zap.Int64("latencyMs", latency))
	log.Debug("http response body", zap.String("client", l.Name), zap.String("body", responseBody))
}

func (l *ZapLogger) LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error) {
	log.Warn("http request failed",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", stripQuery(url)),
		zap.Int("status", httpStatus),
		zap.Int64("latencyMs", latency),
		zap.Error(err))
}

func (l *ZapLogger) LogRequestRetry(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error, retryCount, maxRetries int) {
	log.Warn("http request retry",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", stripQuery(url)),
		zap.Int("status", httpStatus),
		zap.Int("retry", retryCount),
		zap.Int("maxRetries", maxRetries),
		zap.Error(err))
}

// stripQuery drops the query string, which may carry API keys.
func stripQuery(url string) string {
	if i := strings.IndexByte(url, '?'); i >= 0 {
		return url[:i]
	}
	return url
}
