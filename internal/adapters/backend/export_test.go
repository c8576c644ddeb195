package backend

import (
	"net/http"

	"go.trai.ch/eagroute/internal/core/domain"
	"go.trai.ch/eagroute/internal/core/ports"
)

// NewClientWithHTTPForTest exports newClientWithHTTP for testing purposes.
func NewClientWithHTTPForTest(settings domain.BackendSettings, tracer ports.Tracer, httpClient *http.Client) (*Client, error) {
	return newClientWithHTTP(settings, tracer, httpClient)
}

// ParseDetailForTest exports parseDetail for testing purposes.
func ParseDetailForTest(body []byte) string {
	return parseDetail(body)
}
