package api

import (
	"context"
	"io"
)

// Upload forwards an image file to the backend upload endpoint and returns
// the hosted reference. Storage itself is the backend's concern.
func (c *Client) Upload(ctx context.Context, token, filename string, file io.Reader) (UploadResult, error) {
	var out UploadResult
	err := c.upload(ctx, "/upload", token, filename, file, &out)
	return out, err
}
