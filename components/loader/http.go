package loader

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bububa/food-agents/components"
)

// HttpDoer is satisfied by *http.Client
type HttpDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Http downloads an image with a GET request
type Http struct {
	client  HttpDoer
	link    string
	maxSize int64
}

var _ Loader = (*Http)(nil)

func NewHttp(link string, client HttpDoer, maxSize int64) *Http {
	if client == nil {
		client = http.DefaultClient
	}
	return &Http{
		client:  client,
		link:    link,
		maxSize: maxSize,
	}
}

func (h *Http) Load(ctx context.Context) (*components.Image, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, h.link, nil)
	if err != nil {
		return nil, err
	}
	httpResp, err := h.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()
	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download %s: %s", h.link, httpResp.Status)
	}
	if h.maxSize > 0 && httpResp.ContentLength > h.maxSize {
		return nil, fmt.Errorf("%w: %s is %d bytes", ErrTooLarge, h.link, httpResp.ContentLength)
	}
	return readLimited(httpResp.Body, h.maxSize)
}
