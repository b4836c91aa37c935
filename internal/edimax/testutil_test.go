package edimax

import (
	"bytes"
	"io"
	"net/http"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func httpResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
		Header:     make(http.Header),
	}
}

func newTestClient(rt http.RoundTripper) *Client {
	return &Client{
		Host:     "192.0.2.10",
		HTTP:     &http.Client{Transport: rt},
		endpoint: endpointURL("192.0.2.10"),
		username: "admin",
		password: "1234",
	}
}

// plugResponse wraps inner in the envelope the firmware actually sends,
// including its non-standard UTF8 encoding label.
func plugResponse(inner string) string {
	return `<?xml version="1.0" encoding="UTF8"?><SMARTPLUG id="edimax">` + inner + `</SMARTPLUG>`
}
