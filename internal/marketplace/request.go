// Package marketplace composes search requests for the remote plugin
// catalog. It only builds URLs; issuing them is the HTTP caller's job.
package marketplace

import (
	"net/url"
	"strings"

	"plugdeck/internal/query"
)

// RequestBuilder turns parsed marketplace queries into request URLs
type RequestBuilder struct {
	baseURL           string
	defaultRepository string
}

// NewRequestBuilder creates a request builder for the configured endpoint
func NewRequestBuilder(baseURL, defaultRepository string) *RequestBuilder {
	return &RequestBuilder{
		baseURL:           baseURL,
		defaultRepository: defaultRepository,
	}
}

// SearchURL appends the serialized query to the base URL. The repository
// channel comes from the query when present, the configured default
// otherwise.
func (b *RequestBuilder) SearchURL(q *query.Trending) string {
	base := strings.TrimSuffix(b.baseURL, "?")

	repository := q.Repository
	if repository == "" {
		repository = b.defaultRepository
	}

	u := base + "?channel=" + url.QueryEscape(repository)
	if qs := q.URLQuery(); qs != "" {
		u += "&" + qs
	}
	return u
}
