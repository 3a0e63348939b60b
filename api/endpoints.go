package api

import (
	"context"
	"mime"
	"net/http"

	"github.com/gabriel-vasile/mimetype"
)

// Qualities resolves a source URL to its available renditions, best first.
func (c *Client) Qualities(ctx context.Context, sourceURL string) (*Qualities, error) {
	_, data, err := c.do(ctx, http.MethodPost, qualitiesPath, qualitiesRequest{URL: sourceURL}, qualitiesFailed)
	if err != nil {
		return nil, err
	}

	var qualities Qualities
	if err := decode(data, &qualities, qualitiesFailed); err != nil {
		return nil, err
	}
	return &qualities, nil
}

// Download asks the backend to fetch the chosen rendition and returns where the media can be played from.
func (c *Client) Download(ctx context.Context, sourceURL, quality string) (*MediaResult, error) {
	_, data, err := c.do(ctx, http.MethodPost, downloadPath, downloadRequest{URL: sourceURL, Quality: quality}, downloadFailed)
	if err != nil {
		return nil, err
	}

	var result MediaResult
	if err := decode(data, &result, downloadFailed); err != nil {
		return nil, err
	}
	return &result, nil
}

// ProxyDownload fetches the raw bytes of mediaURL through the backend.
func (c *Client) ProxyDownload(ctx context.Context, mediaURL string) (*Media, error) {
	resp, data, err := c.do(ctx, http.MethodPost, proxyPath, proxyRequest{VideoURL: mediaURL}, downloadFailed)
	if err != nil {
		return nil, err
	}

	contentType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || contentType == "application/octet-stream" {
		// sniffed types may carry parameters, e.g. "text/plain; charset=utf-8"
		contentType, _, _ = mime.ParseMediaType(mimetype.Detect(data).String())
	}

	return &Media{Data: data, ContentType: contentType}, nil
}

// Health reports whether the backend is up.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	_, data, err := c.do(ctx, http.MethodGet, healthPath, nil, healthFailed)
	if err != nil {
		return nil, err
	}

	var health Health
	if err := decode(data, &health, healthFailed); err != nil {
		return nil, err
	}
	return &health, nil
}
