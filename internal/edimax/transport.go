package edimax

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"
)

// postCommand submits one XML command as a multipart file-form POST and
// returns the parsed reply. The firmware insists on the multipart shape;
// a plain XML body is ignored by some revisions.
func (c *Client) postCommand(ctx context.Context, command []byte) (*cmdResponse, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fw, err := w.CreateFormFile("file", "smartplug.xml")
	if err != nil {
		return nil, err
	}
	if _, err := fw.Write(command); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body.Bytes()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	if !c.digest {
		req.SetBasicAuth(c.username, c.password)
	}

	start := time.Now()
	slog.Debug("edimax: request", "endpoint", c.endpoint, "bytes", len(command))
	resp, err := c.HTTP.Do(req)
	if err != nil {
		slog.Debug("edimax: request failed", "endpoint", c.endpoint, "elapsed", time.Since(start).String(), "err", err.Error())
		return nil, &ConnectionError{Host: c.Host, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slog.Debug("edimax: response", "endpoint", c.endpoint, "status", resp.StatusCode, "elapsed", time.Since(start).String())
		return nil, &TransportError{StatusCode: resp.StatusCode}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, &ConnectionError{Host: c.Host, Err: err}
	}
	slog.Debug("edimax: response", "endpoint", c.endpoint, "status", resp.StatusCode, "bytes", len(raw), "elapsed", time.Since(start).String())

	return parseCommandResponse(raw)
}
