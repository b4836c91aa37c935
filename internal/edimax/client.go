package edimax

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/icholy/digest"
)

// State is the power state of the plug relay.
type State string

const (
	StateOn  State = "ON"
	StateOff State = "OFF"
)

// ParseState canonicalizes case-insensitive on/off input.
func ParseState(s string) (State, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ON":
		return StateOn, nil
	case "OFF":
		return StateOff, nil
	}
	return "", fmt.Errorf("invalid state %q (expected on or off)", s)
}

// Client talks to a single Edimax SP-1101W/SP-2101W smart plug over its
// HTTP/XML control endpoint. Every accessor is one blocking round trip;
// a Client is not safe for concurrent use.
type Client struct {
	Host string
	HTTP *http.Client

	endpoint string
	username string
	password string
	digest   bool
}

// New builds the fixed control endpoint for host (port 10000 unless host
// already carries one) and probes it once, unauthenticated, to detect the
// HTTP auth scheme: a WWW-Authenticate challenge starting with "Digest"
// switches the client to digest auth, anything else means basic auth.
// An unreachable host fails with *ConnectionError.
func New(ctx context.Context, host, username, password string, timeout time.Duration) (*Client, error) {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	c := &Client{
		Host:     host,
		HTTP:     &http.Client{Timeout: timeout},
		endpoint: endpointURL(host),
		username: username,
		password: password,
	}
	if err := c.probeAuth(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

func endpointURL(host string) string {
	if !strings.Contains(host, ":") {
		host = net.JoinHostPort(host, "10000")
	}
	return "http://" + host + "/smartplug.cgi"
}

func (c *Client) probeAuth(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.endpoint, nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return &ConnectionError{Host: c.Host, Err: err}
	}
	defer resp.Body.Close()

	// The scheme is resolved once and never changes for this instance.
	if strings.HasPrefix(resp.Header.Get("WWW-Authenticate"), "Digest") {
		c.digest = true
		c.HTTP.Transport = &digest.Transport{
			Username:  c.username,
			Password:  c.password,
			Transport: c.HTTP.Transport,
		}
	}
	return nil
}
