package engine

import (
	"net/url"
	"strings"
)

// positiveTokens is the fixed set a health endpoint's body must contain for
// an otherwise-passing response to count as healthy.
var positiveTokens = []string{"ok", "success", "healthy", "up"}

var healthPathMarkers = []string{"health", "status"}

// isHealthEndpoint reports whether the URL path looks like a health or
// status endpoint, which opts the probe into the body content check.
func isHealthEndpoint(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	path := strings.ToLower(u.Path)
	for _, marker := range healthPathMarkers {
		if strings.Contains(path, marker) {
			return true
		}
	}
	return false
}

func containsPositiveToken(body string) bool {
	body = strings.ToLower(body)
	for _, token := range positiveTokens {
		if strings.Contains(body, token) {
			return true
		}
	}
	return false
}

// classifyStatus maps the raw HTTP status and body to the recorded status
// code. A status in [200,400) stays as-is unless the URL is a health
// endpoint whose body lacks every positive token; that degrades to 0, the
// same code used for network and timeout failures. Statuses outside the
// range are recorded untouched and are unhealthy by definition.
func classifyStatus(rawURL string, statusCode int, body string) int {
	if statusCode >= 200 && statusCode < 400 {
		if isHealthEndpoint(rawURL) && !containsPositiveToken(body) {
			return 0
		}
	}
	return statusCode
}
