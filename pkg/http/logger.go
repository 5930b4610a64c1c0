package http

// HTTPLogger receives the lifecycle events of every outbound request.
type HTTPLogger interface {
	// LogRequest is called before each attempt is sent
	LogRequest(method, url string, headers map[string]string, body string)

	// LogResponseSuccess is called once the final attempt succeeded
	LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called once the final attempt failed, by status or transport error
	LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error)

	// LogRequestRetry is called when a backoff applies and another attempt is about to be made
	LogRequestRetry(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error, retryCount, maxRetries int)
}
