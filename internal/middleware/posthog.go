package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/treasury_ledger/internal/utils/analytics"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health": true,
}

// PosthogMiddleware creates a Gin middleware handler that tracks successful API calls with PostHog.
// Failed calls are left to the request log.
func PosthogMiddleware(posthogClient *analytics.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		// A nil or keyless wrapper reports not initialized.
		if !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		// Status and route are only known once the handler has run.
		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		// Set by AuthMiddleware; anonymous calls are not tracked.
		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		// "/api/v1/shifts/:shiftID/close" -> "api_v1_shifts_:shiftID_close"
		eventName := strings.TrimPrefix(c.FullPath(), "/")
		eventName = strings.ReplaceAll(eventName, "/", "_")
		if eventName == "" {
			// unmatched route
			return
		}

		props := requestProperties(c, nil)
		props["status_code"] = c.Writer.Status()
		if len(c.Params) > 0 {
			params := make(map[string]string)
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		posthogClient.Enqueue(userID, eventName, props)
	}
}

// PosthogEvent sends a treasury event (transfer created, shift closed, ...) from a handler
// on behalf of the authenticated user.
func PosthogEvent(c *gin.Context, posthogClient *analytics.PosthogClientWrapper, eventName string, properties map[string]any) {
	if !posthogClient.IsInitialized() {
		return
	}

	userID, exists := GetUserIDFromContext(c)
	if !exists {
		return
	}

	posthogClient.Enqueue(userID, eventName, requestProperties(c, properties))
}

// requestProperties adds the request method, path and request id to properties.
// The request id ties an event to its request log line.
func requestProperties(c *gin.Context, properties map[string]any) map[string]any {
	if properties == nil {
		properties = make(map[string]any)
	}
	properties["method"] = c.Request.Method
	properties["path"] = c.Request.URL.Path
	if requestID := c.Writer.Header().Get("X-Request-ID"); requestID != "" {
		properties["request_id"] = requestID
	}
	return properties
}
