package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client used for
// outbound calls to third-party APIs such as the asset host.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient bound to baseURL.
//
// A non-positive timeout leaves the resty default (no timeout) in place.
// Retries are not configured: a failed call is reported to the caller as is.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://api.cloudinary.com", 30*time.Second)
//	resp, err := client.R().Post("/v1_1/demo/image/upload")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().SetBaseURL(strings.TrimRight(baseURL, "/"))
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
