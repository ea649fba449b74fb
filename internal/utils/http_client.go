package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient bound to baseURL whose requests are
// bounded by timeout. A zero timeout leaves resty's default in place.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://mail.example.com", 5*time.Second)
//	resp, err := client.R().SetBody(payload).Post("/api/mail/confirmation")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().SetBaseURL(baseURL)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
